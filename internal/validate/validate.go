package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/arroyodev/illumibot-waitlist/pkg/errors"
)

// User-facing rejection messages. The same strings are rendered by the
// client-side checks in the page templates; the server-side check here is
// the authoritative one.
const (
	MsgRequiredFieldsMissing = "All required fields must be filled."
	MsgInvalidEmail          = "Invalid email address."
	MsgInvalidContactEmail   = "Please provide a valid email address."
)

// Deliberately permissive syntax check, not full RFC validation:
// something, an @, something, a dot, something — none containing
// whitespace or a second @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// WaitlistSubmission is the validated shape of a waitlist form post.
// Notes is always optional and defaults to the empty string.
type WaitlistSubmission struct {
	Company   string `json:"company" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,contact_email"`
	Phone     string `json:"phone" validate:"required"`
	Notes     string `json:"notes"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Registration only fails for a nil func or empty tag.
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return v
}

// IsValidEmail reports whether s matches the permissive email pattern.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// WaitlistFields checks required-field presence and email syntax for the
// waitlist flow. Missing fields take precedence over a malformed email.
func WaitlistFields(sub *WaitlistSubmission) error {
	if sub == nil {
		return apperrors.NewInvalidRequestError(MsgRequiredFieldsMissing, nil)
	}

	err := validate.Struct(sub)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewInvalidRequestError(MsgRequiredFieldsMissing, err)
	}

	for _, fieldError := range validationErrors {
		if fieldError.Tag() == "required" {
			return apperrors.NewInvalidRequestError(MsgRequiredFieldsMissing, err)
		}
	}

	return apperrors.NewInvalidRequestError(MsgInvalidEmail, err)
}

// ContactEmail checks the single email field of the contact flow.
func ContactEmail(email string) error {
	if !IsValidEmail(email) {
		return apperrors.NewInvalidRequestError(MsgInvalidContactEmail, nil)
	}
	return nil
}

package contact

import (
	"context"
	"time"

	"github.com/arroyodev/illumibot-waitlist/internal/log"
	"github.com/arroyodev/illumibot-waitlist/internal/validate"
	"github.com/arroyodev/illumibot-waitlist/pkg/constants"
)

// CardSender delivers the contact-card email.
type CardSender interface {
	SendContactCard(ctx context.Context, toEmail string) error
}

// SubmissionMirror receives the best-effort record of who asked for the
// card.
type SubmissionMirror interface {
	ContactSubmission(ctx context.Context, email, submittedAt string) error
}

type ContactService interface {
	// ShareCard validates the address, sends the contact card (fatal on
	// failure), then records the submission in the mirror. The mirror
	// write is awaited but its failure never fails the request: the email
	// already went out.
	ShareCard(ctx context.Context, req *ShareContactRequest) error
}

type contactService struct {
	logger *log.Logger
	mailer CardSender
	mirror SubmissionMirror
}

func NewContactService(logger *log.Logger, mailer CardSender, mirror SubmissionMirror) ContactService {
	return &contactService{logger: logger, mailer: mailer, mirror: mirror}
}

func (s *contactService) ShareCard(ctx context.Context, req *ShareContactRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	email := ""
	if req != nil {
		email = req.Email
	}

	if err := validate.ContactEmail(email); err != nil {
		return err
	}

	if err := s.mailer.SendContactCard(ctx, email); err != nil {
		logger.Error("Contact card delivery failed", "error", err, "email", email)
		return err
	}

	submittedAt := time.Now().UTC().Format(constants.RFC3339DateTimeFormat)
	if err := s.mirror.ContactSubmission(ctx, email, submittedAt); err != nil {
		logger.Error("Contact submission mirror write failed", "error", err, "email", email)
	}

	return nil
}

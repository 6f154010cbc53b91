package waitlist

import (
	"github.com/arroyodev/illumibot-waitlist/internal/models"
	"github.com/arroyodev/illumibot-waitlist/internal/validate"
)

// CreateWaitlistEntryRequest is the JSON body of POST /api/waitlist. Field
// presence and email syntax are checked by the validator, not binding tags,
// so the endpoint can answer with the fixed form-level messages.
type CreateWaitlistEntryRequest struct {
	Company   string `json:"company"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// ========================================
// Mappers
// ========================================

func ToSubmission(req *CreateWaitlistEntryRequest) *validate.WaitlistSubmission {
	if req == nil {
		return nil
	}
	return &validate.WaitlistSubmission{
		Company:   req.Company,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
	}
}

func ToWaitlistEntryModel(req *CreateWaitlistEntryRequest, timestamp string) *models.WaitlistEntry {
	if req == nil {
		return nil
	}
	return &models.WaitlistEntry{
		Company:   req.Company,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes, // zero value keeps the "empty string" default
		Timestamp: timestamp,
	}
}

package waitlist

import (
	"context"
	"time"

	"github.com/arroyodev/illumibot-waitlist/internal/log"
	"github.com/arroyodev/illumibot-waitlist/internal/models"
	"github.com/arroyodev/illumibot-waitlist/internal/validate"
	"github.com/arroyodev/illumibot-waitlist/pkg/constants"
	apperrors "github.com/arroyodev/illumibot-waitlist/pkg/errors"
)

// ServerErrorMessage is the fixed body of a 500 on this endpoint.
const ServerErrorMessage = "Server error. Please try again."

const mirrorWriteTimeout = 5 * time.Second

// EntryStore is the durable log the pipeline appends to.
type EntryStore interface {
	Append(ctx context.Context, entry *models.WaitlistEntry) error
}

// EntryMirror receives the best-effort secondary write.
type EntryMirror interface {
	WaitlistEntry(ctx context.Context, entry *models.WaitlistEntry) error
}

type WaitlistService interface {
	// SubmitEntry runs the waitlist intake pipeline for one submission:
	// validate, append to the durable log (fatal on failure), then mirror
	// fire-and-forget. Resubmitting identical fields creates a new
	// independent record; duplicates are not deduplicated.
	SubmitEntry(ctx context.Context, req *CreateWaitlistEntryRequest) error
}

type waitlistService struct {
	logger *log.Logger
	store  EntryStore
	mirror EntryMirror
}

func NewWaitlistService(logger *log.Logger, store EntryStore, mirror EntryMirror) WaitlistService {
	return &waitlistService{logger: logger, store: store, mirror: mirror}
}

func (s *waitlistService) SubmitEntry(ctx context.Context, req *CreateWaitlistEntryRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if err := validate.WaitlistFields(ToSubmission(req)); err != nil {
		return err
	}

	entry := ToWaitlistEntryModel(req, time.Now().UTC().Format(constants.RFC3339DateTimeFormat))

	if err := s.store.Append(ctx, entry); err != nil {
		logger.Error("Failed to append waitlist entry", "error", err)
		return apperrors.NewStoreError(ServerErrorMessage, err)
	}

	// Fire-and-forget: the response does not wait for the mirror and a
	// mirror failure never affects it. Detached from the request context
	// so a completed response cannot cancel the write.
	go func(entry *models.WaitlistEntry) {
		mirrorCtx, cancel := context.WithTimeout(context.Background(), mirrorWriteTimeout)
		defer cancel()

		if err := s.mirror.WaitlistEntry(mirrorCtx, entry); err != nil {
			s.logger.Error("Waitlist mirror write failed", "error", err, "email", entry.Email)
		}
	}(entry)

	return nil
}

package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arroyodev/illumibot-waitlist/internal/log"
	"github.com/arroyodev/illumibot-waitlist/internal/validate"
	"github.com/arroyodev/illumibot-waitlist/pkg/constants"
	apperrors "github.com/arroyodev/illumibot-waitlist/pkg/errors"
)

func TestContactService_ShareCard(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()

	t.Run("sends the card then records the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := NewMockCardSender(ctrl)
		mockMirror := NewMockSubmissionMirror(ctrl)
		service := NewContactService(logger, mockMailer, mockMirror)

		var recordedAt string
		gomock.InOrder(
			mockMailer.EXPECT().SendContactCard(gomock.Any(), "lead@example.com").Return(nil),
			mockMirror.EXPECT().
				ContactSubmission(gomock.Any(), "lead@example.com", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, submittedAt string) error {
					recordedAt = submittedAt
					return nil
				}),
		)

		err := service.ShareCard(context.Background(), &ShareContactRequest{Email: "lead@example.com"})
		require.NoError(t, err)

		parsed, parseErr := time.Parse(constants.RFC3339DateTimeFormat, recordedAt)
		require.NoError(t, parseErr)
		assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
	})

	t.Run("invalid email never reaches the mailer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := NewMockCardSender(ctrl)
		mockMirror := NewMockSubmissionMirror(ctrl)
		service := NewContactService(logger, mockMailer, mockMirror)

		for _, email := range []string{"", "nope", "user@nodot"} {
			err := service.ShareCard(context.Background(), &ShareContactRequest{Email: email})
			require.Error(t, err, "email %q", email)
			assert.Equal(t, validate.MsgInvalidContactEmail, apperrors.GetHumanReadableMessage(err))
			assert.Equal(t, 400, apperrors.HTTPStatusCode(err))
		}
	})

	t.Run("nil request is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewContactService(logger, NewMockCardSender(ctrl), NewMockSubmissionMirror(ctrl))

		err := service.ShareCard(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, validate.MsgInvalidContactEmail, apperrors.GetHumanReadableMessage(err))
	})

	t.Run("send failure is fatal and skips the mirror", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := NewMockCardSender(ctrl)
		mockMirror := NewMockSubmissionMirror(ctrl)
		service := NewContactService(logger, mockMailer, mockMirror)

		mockMailer.EXPECT().
			SendContactCard(gomock.Any(), "lead@example.com").
			Return(apperrors.NewMailError("Failed to send email. Please try again.", errors.New("dial tcp: refused")))

		err := service.ShareCard(context.Background(), &ShareContactRequest{Email: "lead@example.com"})
		require.Error(t, err)
		assert.Equal(t, "Failed to send email. Please try again.", apperrors.GetHumanReadableMessage(err))
		assert.Equal(t, 500, apperrors.HTTPStatusCode(err))
	})

	t.Run("mirror failure is swallowed after a successful send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := NewMockCardSender(ctrl)
		mockMirror := NewMockSubmissionMirror(ctrl)
		service := NewContactService(logger, mockMailer, mockMirror)

		mockMailer.EXPECT().SendContactCard(gomock.Any(), "lead@example.com").Return(nil)
		mockMirror.EXPECT().
			ContactSubmission(gomock.Any(), "lead@example.com", gomock.Any()).
			Return(apperrors.NewMirrorError("mirror write failed", errors.New("timeout")))

		assert.NoError(t, service.ShareCard(context.Background(), &ShareContactRequest{Email: "lead@example.com"}))
	})
}

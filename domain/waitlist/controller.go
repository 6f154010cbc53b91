package waitlist

import (
	"github.com/arroyodev/illumibot-waitlist/config/router"
	"github.com/arroyodev/illumibot-waitlist/internal/validate"
	"github.com/arroyodev/illumibot-waitlist/pkg/constants"
	apperrors "github.com/arroyodev/illumibot-waitlist/pkg/errors"
)

// NewWaitlistController mounts POST /api/waitlist with its own submission
// limiter (per client IP, fixed rejection message).
func NewWaitlistController(service WaitlistService) *router.RESTController {
	return router.NewRESTController("waitlist", "/api/waitlist", func(rs *router.RouterService, controller *router.RESTController) {
		limit := &router.RateLimitOption{
			Limiter: rs.NewRateLimiter(constants.WaitlistSubmissionsPerWindow, constants.SubmissionWindow()),
			Message: constants.WaitlistRateLimitMessage,
		}

		rs.AddPostHandler(controller, limit, "", func(ctx *router.RequestContext) *router.ServiceResult {
			return createWaitlistEntry(ctx, service)
		})
	})
}

func createWaitlistEntry(ctx *router.RequestContext, service WaitlistService) *router.ServiceResult {
	logger := router.GetLogger(ctx)

	var req CreateWaitlistEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to decode waitlist submission",
			"error", err,
			"details", apperrors.FormatValidationErrors(err, &req),
		)
		return router.BadRequestResult(validate.MsgRequiredFieldsMissing)
	}

	if err := service.SubmitEntry(ctx.Request.Context(), &req); err != nil {
		logger.Error("Waitlist submission rejected", "error", err)
		return router.ErrorResult(apperrors.HTTPStatusCode(err), apperrors.GetHumanReadableMessage(err))
	}

	return router.OKResult(nil)
}

package contact

import (
	"github.com/arroyodev/illumibot-waitlist/config/router"
	"github.com/arroyodev/illumibot-waitlist/internal/validate"
	"github.com/arroyodev/illumibot-waitlist/pkg/constants"
	apperrors "github.com/arroyodev/illumibot-waitlist/pkg/errors"
)

// NewContactController mounts POST /api/contact with its own request
// limiter, tighter than the waitlist one since every hit sends email.
func NewContactController(service ContactService) *router.RESTController {
	return router.NewRESTController("contact", "/api/contact", func(rs *router.RouterService, controller *router.RESTController) {
		limit := &router.RateLimitOption{
			Limiter: rs.NewRateLimiter(constants.ContactRequestsPerWindow, constants.SubmissionWindow()),
			Message: constants.ContactRateLimitMessage,
		}

		rs.AddPostHandler(controller, limit, "", func(ctx *router.RequestContext) *router.ServiceResult {
			return shareContactCard(ctx, service)
		})
	})
}

func shareContactCard(ctx *router.RequestContext, service ContactService) *router.ServiceResult {
	logger := router.GetLogger(ctx)

	var req ShareContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to decode contact request", "error", err)
		return router.BadRequestResult(validate.MsgInvalidContactEmail)
	}

	if err := service.ShareCard(ctx.Request.Context(), &req); err != nil {
		logger.Error("Contact card request rejected", "error", err)
		return router.ErrorResult(apperrors.HTTPStatusCode(err), apperrors.GetHumanReadableMessage(err))
	}

	return router.OKResult(nil)
}

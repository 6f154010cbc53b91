package monitoring

import (
	"context"
	"net/http"
	"time"

	"github.com/arroyodev/illumibot-waitlist/config/router"
)

// StorePinger reports whether the durable log is readable.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// MirrorPinger reports mirror reachability. A disabled mirror is healthy.
type MirrorPinger interface {
	Ping(ctx context.Context) error
	Enabled() bool
}

var startTime = time.Now()

type healthReport struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Store         string `json:"store"`
	Mirror        string `json:"mirror"`
}

// NewMonitoringController mounts GET /health. The store is the only hard
// dependency; a degraded mirror is reported but does not fail the check.
func NewMonitoringController(store StorePinger, mirror MirrorPinger) *router.RESTController {
	return router.NewRESTController("monitoring", "/health", func(rs *router.RouterService, controller *router.RESTController) {
		rs.AddGetHandler(controller, nil, "", func(ctx *router.RequestContext) *router.ServiceResult {
			return healthCheck(ctx, store, mirror)
		})
	})
}

func healthCheck(ctx *router.RequestContext, store StorePinger, mirror MirrorPinger) *router.ServiceResult {
	logger := router.GetLogger(ctx)
	reqCtx := ctx.Request.Context()

	report := &healthReport{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(startTime).Seconds()),
		Store:         "ok",
		Mirror:        "ok",
	}

	if err := store.Ping(reqCtx); err != nil {
		logger.Error("Health check: store unavailable", "error", err)
		return router.ErrorResult(http.StatusServiceUnavailable, "Service unhealthy")
	}

	switch {
	case !mirror.Enabled():
		report.Mirror = "disabled"
	default:
		if err := mirror.Ping(reqCtx); err != nil {
			logger.Warn("Health check: mirror unreachable", "error", err)
			report.Mirror = "unavailable"
			report.Status = "degraded"
		}
	}

	return router.OKResult(report)
}

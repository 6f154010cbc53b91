package domain

import (
	"github.com/arroyodev/illumibot-waitlist/config"
	"github.com/arroyodev/illumibot-waitlist/domain/contact"
	"github.com/arroyodev/illumibot-waitlist/domain/monitoring"
	"github.com/arroyodev/illumibot-waitlist/domain/pages"
	"github.com/arroyodev/illumibot-waitlist/domain/waitlist"
)

// SetupCoreDomain wires the services and mounts every controller on the
// router.
func SetupCoreDomain(app *config.ApplicationConfig) {
	routerService := app.RouterService

	waitlistService := waitlist.NewWaitlistService(app.Logger, app.Store, app.Mirror)
	contactService := contact.NewContactService(app.Logger, app.Mailer, app.Mirror)

	routerService.MountController(waitlist.NewWaitlistController(waitlistService))
	routerService.MountController(contact.NewContactController(contactService))
	routerService.MountController(pages.NewPagesController(app.Config.BaseURL))
	routerService.MountController(monitoring.NewMonitoringController(app.Store, app.Mirror))
}

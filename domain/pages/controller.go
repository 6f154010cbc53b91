package pages

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/arroyodev/illumibot-waitlist/config/router"
	"github.com/arroyodev/illumibot-waitlist/pkg/qr"
)

// NewPagesController mounts the public HTML pages: the waitlist form at /,
// the contact-share form at /contact, and the printable QR page at /qr.
// baseURL is the public root the QR codes point at.
func NewPagesController(baseURL string) *router.RESTController {
	return router.NewRESTController("pages", "/", func(rs *router.RouterService, controller *router.RESTController) {
		rs.AddGetPageHandler(controller, nil, "", func(ctx *router.RequestContext) *router.PageResult {
			return staticPage(ctx, "Installer Waitlist", "waitlist.html.tmpl")
		})

		rs.AddGetPageHandler(controller, nil, "contact", func(ctx *router.RequestContext) *router.PageResult {
			return staticPage(ctx, "Ross's Contact", "contact.html.tmpl")
		})

		rs.AddGetPageHandler(controller, nil, "qr", func(ctx *router.RequestContext) *router.PageResult {
			return qrPage(ctx, baseURL)
		})
	})
}

func staticPage(ctx *router.RequestContext, title, contentTemplate string) *router.PageResult {
	body, err := renderPage(title, contentTemplate, nil)
	if err != nil {
		router.GetLogger(ctx).Error("Failed to render page", "template", contentTemplate, "error", err)
		return router.PageErrorResult(http.StatusInternalServerError, "Internal server error")
	}

	return router.HTMLResult(body)
}

type qrPageData struct {
	// template.URL keeps html/template from rejecting the data: scheme.
	WaitlistQR template.URL
	ContactQR  template.URL
}

func qrPage(ctx *router.RequestContext, baseURL string) *router.PageResult {
	logger := router.GetLogger(ctx)
	root := strings.TrimRight(baseURL, "/")
	opts := qr.DefaultOptions()

	waitlistQR, err := qr.DataURL(root+"/", opts)
	if err != nil {
		logger.Error("Failed to generate waitlist QR code", "error", err)
		return router.PageErrorResult(http.StatusInternalServerError, "Error generating QR codes")
	}

	contactQR, err := qr.DataURL(root+"/contact", opts)
	if err != nil {
		logger.Error("Failed to generate contact QR code", "error", err)
		return router.PageErrorResult(http.StatusInternalServerError, "Error generating QR codes")
	}

	body, err := renderPage("QR Codes", "qr.html.tmpl", &qrPageData{
		WaitlistQR: template.URL(waitlistQR),
		ContactQR:  template.URL(contactQR),
	})
	if err != nil {
		logger.Error("Failed to render QR page", "error", err)
		return router.PageErrorResult(http.StatusInternalServerError, "Error generating QR codes")
	}

	return router.HTMLResult(body)
}

package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// layoutData fills the shared document shell. Body is pre-rendered content
// markup, trusted because it only ever comes from the embedded templates.
type layoutData struct {
	Title string
	Body  template.HTML
}

func renderPage(title, contentTemplate string, data any) ([]byte, error) {
	var body bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&body, contentTemplate, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", contentTemplate, err)
	}

	var page bytes.Buffer
	err := pageTemplates.ExecuteTemplate(&page, "layout.html.tmpl", &layoutData{
		Title: title,
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("render layout: %w", err)
	}

	return page.Bytes(), nil
}

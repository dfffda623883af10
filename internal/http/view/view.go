package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Views renders the embedded html templates. Markup is deliberately plain;
// styling belongs to whoever fronts this service.
type Views struct {
	templates *template.Template
}

func New() (*Views, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Views{
		templates: tmpl,
	}, nil
}

func (v *Views) Render(w io.Writer, name string, data any) error {
	if err := v.templates.ExecuteTemplate(w, name+".html", data); err != nil {
		return fmt.Errorf("render template %q: %w", name, err)
	}
	return nil
}

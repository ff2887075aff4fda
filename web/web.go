// Package web holds the embedded HTML templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"groomer-directory/internal/slug"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template with the shared helpers.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: failed to parse templates: %w", err)
	}
	return t, nil
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"rating": func(r *float64) string {
			if r == nil {
				return "No rating"
			}
			return fmt.Sprintf("%.1f", *r)
		},
		"jsonld": func(s string) template.JS {
			return template.JS(s)
		},
		"lower": strings.ToLower,
		"slug":  slug.Normalize,
		"price": func(from, to *float64) string {
			switch {
			case from != nil && to != nil:
				return fmt.Sprintf("£%g-£%g", *from, *to)
			case from != nil:
				return fmt.Sprintf("£%g", *from)
			case to != nil:
				return fmt.Sprintf("£%g", *to)
			}
			return ""
		},
	}
}

package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	City string
	View View
}

// RenderPage writes the search page for v. city is echoed back into the input.
func RenderPage(w io.Writer, v View, city string) error {
	if err := pageTemplate.Execute(w, pageData{City: city, View: v}); err != nil {
		return fmt.Errorf("web: failed to render page: %w", err)
	}
	return nil
}

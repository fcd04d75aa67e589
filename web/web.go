// Package web holds the embedded admin page templates. Every page shares the
// same chrome (header, navigation, footer) and contributes only its form body.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Templates parses the embedded admin templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFiles, "templates/*.html"))
}

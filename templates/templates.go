// Package templates embeds the HTML served at the site root.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded page
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}

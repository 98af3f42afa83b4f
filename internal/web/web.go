// Package web holds the storefront pages: embedded templates, static assets and page data.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the page templates. Names are the file base names ("index.html").
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"join": joinStrings,
	}).ParseFS(templateFS, "templates/*.html")
}

// Static serves files under static/ at the root of the returned filesystem.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

package govbr

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can serve or
// override the built-in component markup.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

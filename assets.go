package govbrds

import (
	"html"
	"io/fs"
	"strings"

	"github.com/goliatone/go-govbrds/pkg/renderers/govbr"
)

// EmbeddedTemplates exposes the built-in component templates so hosts can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return govbr.TemplatesFS()
}

// CSSURL returns the resolved stylesheet URL.
func (e *Engine) CSSURL() string {
	return e.settings.CSSURL()
}

// JavascriptURL returns the resolved script URL.
func (e *Engine) JavascriptURL() string {
	return e.settings.JavascriptURL()
}

// ThemeURL returns the resolved theme stylesheet URL, empty when no theme is
// configured.
func (e *Engine) ThemeURL() string {
	return e.settings.ThemeURL()
}

// CSSTags renders the link tags for the configured stylesheets: the base
// stylesheet first, then the theme stylesheet when one is set.
func (e *Engine) CSSTags() string {
	var b strings.Builder
	if url := e.CSSURL(); url != "" {
		b.WriteString(linkTag(url))
	}
	if url := e.ThemeURL(); url != "" {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(linkTag(url))
	}
	return b.String()
}

// JavascriptTag renders the script tag for the configured script URL, empty
// when none is set.
func (e *Engine) JavascriptTag() string {
	url := e.JavascriptURL()
	if url == "" {
		return ""
	}
	return `<script src="` + html.EscapeString(url) + `"></script>`
}

func linkTag(url string) string {
	return `<link rel="stylesheet" href="` + html.EscapeString(url) + `">`
}

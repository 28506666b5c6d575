// Package template defines the rendering-engine seam the component renderers
// depend on, keeping the concrete engine swappable.
package template

import (
	"io"
)

// TemplateRenderer is the engine contract component renderers rely on. The
// pongo subpackage provides the default implementation.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

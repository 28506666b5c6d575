// Package render defines the renderer contract plus the capability registry
// that maps an abstract "render this widget under that layout" request to a
// concrete renderer.
package render

import (
	"context"
)

// Capability names for the built-in component renderers.
const (
	CapabilityForm       = "form"
	CapabilityFormset    = "formset"
	CapabilityField      = "field"
	CapabilityLabel      = "label"
	CapabilityButton     = "button"
	CapabilityAlert      = "alert"
	CapabilityMessages   = "messages"
	CapabilityPagination = "pagination"
)

// DefaultVariant is the layout key every capability must provide; lookups
// for an unregistered layout fall back to it.
const DefaultVariant = "default"

// Context carries the inputs a renderer receives for one invocation: the
// subject being rendered, the resolved layout key and the remaining keyword
// options after the settings cascade ran.
type Context struct {
	// Subject is the entity to render: a *Form, *Field, *Formset, a
	// pagination context, button/alert content, or a message list.
	Subject any
	// Layout is the resolved layout key; empty means no explicit layout.
	Layout string
	// Options holds the remaining resolved keyword options by name.
	Options map[string]any
}

// Option returns a keyword option, falling back when it is absent.
func (c Context) Option(name string, fallback any) any {
	if value, ok := c.Options[name]; ok {
		return value
	}
	return fallback
}

// StringOption returns a keyword option coerced to string; absent or
// non-string options yield fallback.
func (c Context) StringOption(name, fallback string) string {
	if value, ok := c.Options[name].(string); ok {
		return value
	}
	return fallback
}

// BoolOption returns a boolean keyword option, or fallback when absent.
func (c Context) BoolOption(name string, fallback bool) bool {
	if value, ok := c.Options[name].(bool); ok {
		return value
	}
	return fallback
}

// Renderer produces markup for one component invocation.
type Renderer interface {
	Name() string
	Render(ctx context.Context, rc Context) (string, error)
}

// Func adapts a plain function into a Renderer.
type Func struct {
	RendererName string
	RenderFunc   func(ctx context.Context, rc Context) (string, error)
}

// Name reports the renderer identifier.
func (f Func) Name() string { return f.RendererName }

// Render delegates to the wrapped function.
func (f Func) Render(ctx context.Context, rc Context) (string, error) {
	return f.RenderFunc(ctx, rc)
}

// Package govbr provides the built-in GovBR-DS component renderers: form,
// formset, field, label, button, alert, messages and pagination markup backed
// by embedded templates.
package govbr

import (
	"fmt"

	"github.com/goliatone/go-govbrds/pkg/config"
	"github.com/goliatone/go-govbrds/pkg/render"
	"github.com/goliatone/go-govbrds/pkg/template"
	"github.com/goliatone/go-govbrds/pkg/template/pongo"
)

// Option configures the renderer set.
type Option func(*options)

type options struct {
	settings *config.Settings
	engine   template.TemplateRenderer
}

// WithSettings injects the settings table the renderers resolve defaults
// from. When omitted the library defaults apply.
func WithSettings(settings *config.Settings) Option {
	return func(o *options) {
		if settings != nil {
			o.settings = settings
		}
	}
}

// WithTemplateEngine injects a custom template engine, replacing the
// embedded pongo2 bundle.
func WithTemplateEngine(engine template.TemplateRenderer) Option {
	return func(o *options) {
		if engine != nil {
			o.engine = engine
		}
	}
}

// base carries the shared dependencies of every component renderer.
type base struct {
	settings *config.Settings
	engine   template.TemplateRenderer
}

// resolve runs a keyword option named like its setting through the full
// cascade: caller option, host settings, library defaults.
func (b base) resolve(rc render.Context, name string) string {
	caller := config.Unset
	if value, ok := rc.Options[name]; ok {
		caller = value
	}
	value := b.settings.Resolve(name, caller)
	if config.IsUnset(value) || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// resolveString is resolve with an explicit fallback for names that have no
// library default.
func (b base) resolveString(rc render.Context, name, fallback string) string {
	caller := config.Unset
	if value, ok := rc.Options[name]; ok {
		caller = value
	}
	value := b.settings.ResolveDefault(name, caller, fallback)
	if value == nil {
		return fallback
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func (b base) resolveBool(rc render.Context, name string, fallback bool) bool {
	caller := config.Unset
	if value, ok := rc.Options[name]; ok {
		caller = value
	}
	value := b.settings.ResolveDefault(name, caller, fallback)
	if v, ok := value.(bool); ok {
		return v
	}
	return fallback
}

func newBase(opts ...Option) (base, error) {
	o := &options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}

	if o.settings == nil {
		settings, err := config.New()
		if err != nil {
			return base{}, fmt.Errorf("govbr: default settings: %w", err)
		}
		o.settings = settings
	}
	if o.engine == nil {
		engine, err := pongo.New(pongo.WithFS(TemplatesFS()))
		if err != nil {
			return base{}, fmt.Errorf("govbr: configure template engine: %w", err)
		}
		o.engine = engine
	}

	return base{settings: o.settings, engine: o.engine}, nil
}

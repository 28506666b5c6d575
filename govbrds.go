// Package govbrds renders GovBR-DS form, alert, messages and pagination
// markup from host-supplied data. The root package is the facade: it wires
// the settings cascade, the renderer registry and the template engine
// together and exposes one method per component.
package govbrds

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goliatone/go-govbrds/pkg/config"
	"github.com/goliatone/go-govbrds/pkg/css"
	"github.com/goliatone/go-govbrds/pkg/forms"
	"github.com/goliatone/go-govbrds/pkg/messages"
	"github.com/goliatone/go-govbrds/pkg/pagination"
	"github.com/goliatone/go-govbrds/pkg/render"
	"github.com/goliatone/go-govbrds/pkg/renderers/govbr"
	"github.com/goliatone/go-govbrds/pkg/template"
)

// Re-exported model types so most hosts only import the root package.
type (
	// Form is a bound form: ordered fields plus form-level errors.
	Form = forms.Form
	// Field is a single bound form field.
	Field = forms.Field
	// Formset is an ordered collection of forms sharing one schema.
	Formset = forms.Formset
	// Widget describes the control rendered for a field.
	Widget = forms.Widget
	// Message is one queued flash message.
	Message = messages.Message
	// PaginationContext is the resolved input of the pagination renderer.
	PaginationContext = govbr.PaginationContext
	// Options carries per-call keyword options, mirroring template tag
	// keyword arguments.
	Options = map[string]any
)

// DefaultPagesToShow is the window width used when the caller does not pass
// pages_to_show.
const DefaultPagesToShow = 11

// DefaultPageParameter is the query parameter carrying the page number.
const DefaultPageParameter = "page"

// Option configures an Engine.
type Option func(*Engine)

// WithSettings injects the resolved settings table. Defaults to the library
// defaults with no host overrides.
func WithSettings(settings *config.Settings) Option {
	return func(e *Engine) {
		if settings != nil {
			e.settings = settings
		}
	}
}

// WithRegistry injects a pre-populated renderer registry. Hosts use this to
// swap variants in; the default registry carries the built-in GovBR-DS
// renderer for every capability.
func WithRegistry(registry *render.Registry) Option {
	return func(e *Engine) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// WithTemplateEngine replaces the embedded pongo2 template bundle in the
// default renderers.
func WithTemplateEngine(engine template.TemplateRenderer) Option {
	return func(e *Engine) {
		if engine != nil {
			e.engine = engine
		}
	}
}

// Engine is the rendering facade. It is safe for concurrent use once
// constructed: settings and the registry are read-only afterwards.
type Engine struct {
	settings *config.Settings
	registry *render.Registry
	engine   template.TemplateRenderer

	formErrors    *govbr.FormErrorsRenderer
	formsetErrors *govbr.FormsetErrorsRenderer
}

// New constructs an Engine, filling every dependency the options leave out.
func New(options ...Option) (*Engine, error) {
	e := &Engine{}
	for _, option := range options {
		if option != nil {
			option(e)
		}
	}
	if err := e.applyDefaults(); err != nil {
		return nil, err
	}
	return e, nil
}

// Must is New panicking on error, for hosts wiring the engine at startup.
func Must(options ...Option) *Engine {
	e, err := New(options...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) applyDefaults() error {
	if e.settings == nil {
		settings, err := config.New()
		if err != nil {
			return fmt.Errorf("govbrds: default settings: %w", err)
		}
		e.settings = settings
	}

	govbrOptions := []govbr.Option{govbr.WithSettings(e.settings)}
	if e.engine != nil {
		govbrOptions = append(govbrOptions, govbr.WithTemplateEngine(e.engine))
	}

	if e.registry == nil {
		registry := render.NewRegistry()
		if err := govbr.RegisterDefaults(registry, govbrOptions...); err != nil {
			return fmt.Errorf("govbrds: register default renderers: %w", err)
		}
		e.registry = registry
	}

	formErrors, err := govbr.NewFormErrorsRenderer(govbrOptions...)
	if err != nil {
		return err
	}
	formsetErrors, err := govbr.NewFormsetErrorsRenderer(govbrOptions...)
	if err != nil {
		return err
	}
	e.formErrors = formErrors
	e.formsetErrors = formsetErrors
	return nil
}

// Settings exposes the engine's resolved settings, mainly for asset helpers
// and diagnostics.
func (e *Engine) Settings() *config.Settings {
	return e.settings
}

// Registry exposes the renderer registry so hosts can inspect or extend the
// variants before serving.
func (e *Engine) Registry() *render.Registry {
	return e.registry
}

func (e *Engine) render(ctx context.Context, capability string, rc render.Context) (string, error) {
	renderer, err := e.registry.Resolve(capability, rc.Layout)
	if err != nil {
		return "", err
	}
	return renderer.Render(ctx, rc)
}

// RenderForm renders a whole form: error summary plus every visible field.
func (e *Engine) RenderForm(ctx context.Context, form Form, layout string, options Options) (string, error) {
	return e.render(ctx, render.CapabilityForm, render.Context{Subject: form, Layout: layout, Options: options})
}

// RenderFormset renders every member form of a formset.
func (e *Engine) RenderFormset(ctx context.Context, formset Formset, layout string, options Options) (string, error) {
	return e.render(ctx, render.CapabilityFormset, render.Context{Subject: formset, Layout: layout, Options: options})
}

// RenderField renders one bound field with its wrapper, label, control and
// validation chrome.
func (e *Engine) RenderField(ctx context.Context, field Field, layout string, options Options) (string, error) {
	return e.render(ctx, render.CapabilityField, render.Context{Subject: field, Layout: layout, Options: options})
}

// RenderLabel renders a standalone label element around content.
func (e *Engine) RenderLabel(ctx context.Context, content string, options Options) (string, error) {
	return e.render(ctx, render.CapabilityLabel, render.Context{Subject: content, Options: options})
}

// RenderButton renders a button, or a link styled as one when options carry
// an href.
func (e *Engine) RenderButton(ctx context.Context, content string, options Options) (string, error) {
	return e.render(ctx, render.CapabilityButton, render.Context{Subject: content, Options: options})
}

// RenderAlert renders an alert box around content. Content is sanitized
// before being embedded unescaped.
func (e *Engine) RenderAlert(ctx context.Context, content string, options Options) (string, error) {
	return e.render(ctx, render.CapabilityAlert, render.Context{Subject: content, Options: options})
}

// RenderMessages renders queued flash messages as a list of alerts.
func (e *Engine) RenderMessages(ctx context.Context, list []Message, options Options) (string, error) {
	return e.render(ctx, render.CapabilityMessages, render.Context{Subject: list, Options: options})
}

// RenderFormErrors renders only a form's error summary, filtered by the
// type option: all, fields or non_fields.
func (e *Engine) RenderFormErrors(ctx context.Context, form Form, options Options) (string, error) {
	return e.formErrors.Render(ctx, render.Context{Subject: form, Options: options})
}

// RenderFormsetErrors renders only a formset's error summary.
func (e *Engine) RenderFormsetErrors(ctx context.Context, formset Formset, options Options) (string, error) {
	return e.formsetErrors.Render(ctx, render.Context{Subject: formset, Options: options})
}

// PaginationContext computes the page window for currentPage/totalPages and
// resolves the link URL and CSS chrome from options: pages_to_show, url,
// extra, size, justify_content and parameter_name.
func (e *Engine) PaginationContext(currentPage, totalPages int, options Options) (PaginationContext, error) {
	rc := render.Context{Options: options}

	pagesToShow, err := intOption(rc, "pages_to_show", DefaultPagesToShow)
	if err != nil {
		return PaginationContext{}, err
	}

	plan, err := pagination.ComputeWindow(pagination.Spec{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PagesToShow: pagesToShow,
	})
	if err != nil {
		return PaginationContext{}, err
	}

	classes, err := css.PaginationClasses(
		rc.StringOption("size", ""),
		rc.StringOption("justify_content", ""),
	)
	if err != nil {
		return PaginationContext{}, err
	}

	url := rc.StringOption("url", "")
	if extra := rc.StringOption("extra", ""); extra != "" {
		url = pagination.RebuildURL(url, pagination.ParseQuery(extra))
	}

	parameterName := rc.StringOption("parameter_name", DefaultPageParameter)

	return PaginationContext{
		Plan:          plan,
		URL:           url,
		Classes:       classes,
		ParameterName: parameterName,
	}, nil
}

// RenderPagination computes the pagination context and renders the control
// in one step.
func (e *Engine) RenderPagination(ctx context.Context, currentPage, totalPages int, options Options) (string, error) {
	pc, err := e.PaginationContext(currentPage, totalPages, options)
	if err != nil {
		return "", err
	}
	return e.render(ctx, render.CapabilityPagination, render.Context{Subject: pc, Options: options})
}

func intOption(rc render.Context, name string, fallback int) (int, error) {
	value, ok := rc.Options[name]
	if !ok || value == nil {
		return fallback, nil
	}
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("govbrds: option %s: %w", name, err)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("govbrds: option %s must be an integer, got %T", name, value)
}

package govbr

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-govbrds/pkg/forms"
	"github.com/goliatone/go-govbrds/pkg/render"
)

// Error type filters accepted by the form/form-errors renderers.
const (
	ErrorTypeAll       = "all"
	ErrorTypeFields    = "fields"
	ErrorTypeNonFields = "non_fields"
)

// FormRenderer renders a whole form: an error alert followed by every
// visible field, each rendered through the field renderer so per-field
// options and layout apply uniformly.
type FormRenderer struct {
	base
	fields *FieldRenderer
	errors *FormErrorsRenderer
}

// NewFormRenderer constructs the form renderer and its collaborators.
func NewFormRenderer(opts ...Option) (*FormRenderer, error) {
	b, err := newBase(opts...)
	if err != nil {
		return nil, err
	}
	fields := &FieldRenderer{base: b}
	errors := &FormErrorsRenderer{base: b}
	return &FormRenderer{base: b, fields: fields, errors: errors}, nil
}

// Name reports the renderer identifier.
func (r *FormRenderer) Name() string { return "govbr-form" }

// Render produces the form markup.
func (r *FormRenderer) Render(ctx context.Context, rc render.Context) (string, error) {
	form, err := formSubject(rc.Subject)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	alertErrorType := rc.StringOption("alert_error_type", ErrorTypeNonFields)
	errorsHTML, err := r.errors.render(form, alertErrorType, rc.Layout)
	if err != nil {
		return "", err
	}
	b.WriteString(errorsHTML)

	exclude := splitNames(rc.StringOption("exclude", ""))
	for _, field := range form.Visible(exclude) {
		fieldRC := render.Context{Subject: field, Layout: rc.Layout, Options: rc.Options}
		fieldHTML, err := r.fields.Render(ctx, fieldRC)
		if err != nil {
			return "", fmt.Errorf("govbr: render field %q: %w", field.Name, err)
		}
		b.WriteString(fieldHTML)
	}

	return b.String(), nil
}

func formSubject(subject any) (forms.Form, error) {
	switch v := subject.(type) {
	case forms.Form:
		return v, nil
	case *forms.Form:
		if v != nil {
			return *v, nil
		}
	}
	return forms.Form{}, fmt.Errorf("govbr: form renderer needs a forms.Form subject, got %T", subject)
}

func splitNames(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// FormErrorsRenderer renders only the error summary of a form, filtered by
// the type option: all, fields or non_fields.
type FormErrorsRenderer struct {
	base
}

// NewFormErrorsRenderer constructs the form-errors renderer.
func NewFormErrorsRenderer(opts ...Option) (*FormErrorsRenderer, error) {
	b, err := newBase(opts...)
	if err != nil {
		return nil, err
	}
	return &FormErrorsRenderer{base: b}, nil
}

// Name reports the renderer identifier.
func (r *FormErrorsRenderer) Name() string { return "govbr-form-errors" }

// Render produces the error summary markup.
func (r *FormErrorsRenderer) Render(_ context.Context, rc render.Context) (string, error) {
	form, err := formSubject(rc.Subject)
	if err != nil {
		return "", err
	}
	return r.render(form, rc.StringOption("type", ErrorTypeAll), rc.Layout)
}

func (r *FormErrorsRenderer) render(form forms.Form, errorType, layout string) (string, error) {
	var errors []string
	switch errorType {
	case ErrorTypeAll:
		errors = append(form.NonFieldErrors, form.FieldErrors()...)
	case ErrorTypeFields:
		errors = form.FieldErrors()
	case ErrorTypeNonFields, "":
		errors = form.NonFieldErrors
	default:
		return "", fmt.Errorf("govbr: invalid error type %q, valid values are all, fields, non_fields", errorType)
	}

	if len(errors) == 0 {
		return "", nil
	}
	return r.engine.RenderTemplate("templates/form_errors", map[string]any{
		"errors": errors,
		"layout": layout,
	})
}

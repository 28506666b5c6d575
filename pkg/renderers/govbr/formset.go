package govbr

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-govbrds/pkg/forms"
	"github.com/goliatone/go-govbrds/pkg/render"
)

// FormsetRenderer renders every member form of a formset, preceded by the
// formset-level error summary.
type FormsetRenderer struct {
	base
	form *FormRenderer
}

// NewFormsetRenderer constructs the formset renderer.
func NewFormsetRenderer(opts ...Option) (*FormsetRenderer, error) {
	form, err := NewFormRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &FormsetRenderer{base: form.base, form: form}, nil
}

// Name reports the renderer identifier.
func (r *FormsetRenderer) Name() string { return "govbr-formset" }

// Render produces the formset markup.
func (r *FormsetRenderer) Render(ctx context.Context, rc render.Context) (string, error) {
	formset, err := formsetSubject(rc.Subject)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	if len(formset.Errors) > 0 {
		errorsHTML, err := r.engine.RenderTemplate("templates/form_errors", map[string]any{
			"errors": formset.Errors,
			"layout": rc.Layout,
		})
		if err != nil {
			return "", err
		}
		b.WriteString(errorsHTML)
	}

	for i, form := range formset.Forms {
		formRC := render.Context{Subject: form, Layout: rc.Layout, Options: rc.Options}
		formHTML, err := r.form.Render(ctx, formRC)
		if err != nil {
			return "", fmt.Errorf("govbr: render formset form %d: %w", i, err)
		}
		b.WriteString(formHTML)
	}

	return b.String(), nil
}

// FormsetErrorsRenderer renders only the formset-level error summary.
type FormsetErrorsRenderer struct {
	base
}

// NewFormsetErrorsRenderer constructs the formset-errors renderer.
func NewFormsetErrorsRenderer(opts ...Option) (*FormsetErrorsRenderer, error) {
	b, err := newBase(opts...)
	if err != nil {
		return nil, err
	}
	return &FormsetErrorsRenderer{base: b}, nil
}

// Name reports the renderer identifier.
func (r *FormsetErrorsRenderer) Name() string { return "govbr-formset-errors" }

// Render produces the error summary markup.
func (r *FormsetErrorsRenderer) Render(_ context.Context, rc render.Context) (string, error) {
	formset, err := formsetSubject(rc.Subject)
	if err != nil {
		return "", err
	}
	if len(formset.Errors) == 0 {
		return "", nil
	}
	return r.engine.RenderTemplate("templates/form_errors", map[string]any{
		"errors": formset.Errors,
		"layout": rc.Layout,
	})
}

func formsetSubject(subject any) (forms.Formset, error) {
	switch v := subject.(type) {
	case forms.Formset:
		return v, nil
	case *forms.Formset:
		if v != nil {
			return *v, nil
		}
	}
	return forms.Formset{}, fmt.Errorf("govbr: formset renderer needs a forms.Formset subject, got %T", subject)
}

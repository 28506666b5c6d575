package govbr

import (
	"context"
	"fmt"

	"github.com/goliatone/go-govbrds/pkg/render"
)

// LabelRenderer renders a standalone label element.
type LabelRenderer struct {
	base
}

// NewLabelRenderer constructs the label renderer.
func NewLabelRenderer(opts ...Option) (*LabelRenderer, error) {
	b, err := newBase(opts...)
	if err != nil {
		return nil, err
	}
	return &LabelRenderer{base: b}, nil
}

// Name reports the renderer identifier.
func (r *LabelRenderer) Name() string { return "govbr-label" }

// Render produces the label markup. The subject is the label content.
func (r *LabelRenderer) Render(_ context.Context, rc render.Context) (string, error) {
	content, ok := rc.Subject.(string)
	if !ok {
		return "", fmt.Errorf("govbr: label renderer needs a string subject, got %T", rc.Subject)
	}

	data := map[string]any{
		"content":     sanitizeHTML(content),
		"label_for":   rc.StringOption("label_for", ""),
		"label_class": rc.StringOption("label_class", ""),
		"label_title": rc.StringOption("label_title", ""),
	}
	return r.engine.RenderTemplate("templates/label", data)
}

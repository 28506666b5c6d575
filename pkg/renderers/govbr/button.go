package govbr

import (
	"context"
	"fmt"
	"sort"

	"github.com/goliatone/go-govbrds/pkg/css"
	"github.com/goliatone/go-govbrds/pkg/render"
)

// Button types accepted by the button renderer.
const (
	ButtonTypeSubmit = "submit"
	ButtonTypeReset  = "reset"
	ButtonTypeButton = "button"
	ButtonTypeLink   = "link"
)

// ButtonRenderer renders a button or, when an href is given, a link styled
// as one.
type ButtonRenderer struct {
	base
}

// NewButtonRenderer constructs the button renderer.
func NewButtonRenderer(opts ...Option) (*ButtonRenderer, error) {
	b, err := newBase(opts...)
	if err != nil {
		return nil, err
	}
	return &ButtonRenderer{base: b}, nil
}

// Name reports the renderer identifier.
func (r *ButtonRenderer) Name() string { return "govbr-button" }

// Render produces the button markup. The subject is the button content.
func (r *ButtonRenderer) Render(_ context.Context, rc render.Context) (string, error) {
	content, ok := rc.Subject.(string)
	if !ok {
		return "", fmt.Errorf("govbr: button renderer needs a string subject, got %T", rc.Subject)
	}

	buttonType := rc.StringOption("button_type", ButtonTypeButton)
	switch buttonType {
	case ButtonTypeSubmit, ButtonTypeReset, ButtonTypeButton, ButtonTypeLink:
	default:
		return "", fmt.Errorf("govbr: invalid button_type %q, valid values are submit, reset, button, link", buttonType)
	}

	href := rc.StringOption("href", "")
	if _, explicit := rc.Options["button_type"]; explicit && href != "" && buttonType != ButtonTypeLink {
		return "", fmt.Errorf("govbr: button with href must use button_type %q, got %q", ButtonTypeLink, buttonType)
	}

	sizeClass, err := css.SizeClass(rc.StringOption("size", ""), "btn")
	if err != nil {
		return "", err
	}
	classes := css.MergeClasses(
		"btn",
		rc.StringOption("button_class", "btn-primary"),
		sizeClass,
		rc.StringOption("extra_classes", ""),
	)

	data := map[string]any{
		"content":     sanitizeHTML(content),
		"button_type": buttonType,
		"classes":     classes,
		"href":        href,
		"name":        rc.StringOption("name", ""),
		"value":       rc.StringOption("value", ""),
		"extra_attrs": extraAttrs(rc.Options),
	}
	return r.engine.RenderTemplate("templates/button", data)
}

// knownButtonOptions are consumed by the renderer itself; everything else
// passes through as an HTML attribute.
var knownButtonOptions = map[string]struct{}{
	"button_type":   {},
	"button_class":  {},
	"extra_classes": {},
	"size":          {},
	"href":          {},
	"name":          {},
	"value":         {},
	"layout":        {},
}

func extraAttrs(options map[string]any) []map[string]string {
	names := make([]string, 0, len(options))
	for name := range options {
		if _, known := knownButtonOptions[name]; known {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]map[string]string, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]string{
			"name":  name,
			"value": fmt.Sprintf("%v", options[name]),
		})
	}
	return out
}

package govbr

import (
	"context"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-govbrds/pkg/css"
	"github.com/goliatone/go-govbrds/pkg/render"
)

var (
	sanitizerOnce sync.Once
	sanitizer     *bluemonday.Policy
)

// sanitizeHTML strips unsafe markup from caller-supplied content before it
// is embedded unescaped into component templates.
func sanitizeHTML(content string) string {
	sanitizerOnce.Do(func() {
		sanitizer = bluemonday.UGCPolicy()
	})
	return sanitizer.Sanitize(content)
}

// AlertRenderer renders an alert box around caller-supplied HTML content.
type AlertRenderer struct {
	base
}

// NewAlertRenderer constructs the alert renderer.
func NewAlertRenderer(opts ...Option) (*AlertRenderer, error) {
	b, err := newBase(opts...)
	if err != nil {
		return nil, err
	}
	return &AlertRenderer{base: b}, nil
}

// Name reports the renderer identifier.
func (r *AlertRenderer) Name() string { return "govbr-alert" }

// Render produces the alert markup. The subject is the alert content.
func (r *AlertRenderer) Render(_ context.Context, rc render.Context) (string, error) {
	content, ok := rc.Subject.(string)
	if !ok {
		return "", fmt.Errorf("govbr: alert renderer needs a string subject, got %T", rc.Subject)
	}

	alertType := rc.StringOption("alert_type", "info")
	dismissible := rc.BoolOption("dismissible", true)

	classes := []string{"alert", "alert-" + alertType}
	if dismissible {
		classes = append(classes, "alert-dismissible", "fade", "show")
	}
	classes = append(classes, rc.StringOption("extra_classes", ""))

	data := map[string]any{
		"content":     sanitizeHTML(content),
		"classes":     css.MergeClasses(classes...),
		"dismissible": dismissible,
	}
	return r.engine.RenderTemplate("templates/alert", data)
}

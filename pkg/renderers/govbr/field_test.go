package govbr_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-govbrds/pkg/config"
	"github.com/goliatone/go-govbrds/pkg/css"
	"github.com/goliatone/go-govbrds/pkg/forms"
	"github.com/goliatone/go-govbrds/pkg/render"
	"github.com/goliatone/go-govbrds/pkg/renderers/govbr"
)

func newFieldRenderer(t *testing.T, opts ...govbr.Option) *govbr.FieldRenderer {
	t.Helper()
	renderer, err := govbr.NewFieldRenderer(opts...)
	if err != nil {
		t.Fatalf("new field renderer: %v", err)
	}
	return renderer
}

func TestFieldRenderer_DefaultLayout(t *testing.T) {
	renderer := newFieldRenderer(t)

	got, err := renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{
			Name:     "email",
			Label:    "Email address",
			HelpText: "We never share it.",
			Required: true,
			Widget:   forms.Widget{Type: "email"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		`class="mb-3"`,
		`<label class="form-label" for="id_email">Email address</label>`,
		`type="email"`,
		`name="email"`,
		`id="id_email"`,
		`placeholder="Email address"`,
		`class="form-control"`,
		`We never share it.`,
		` required`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
}

func TestFieldRenderer_HorizontalLayout(t *testing.T) {
	renderer := newFieldRenderer(t)

	got, err := renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{Name: "name", Label: "Name"},
		Layout:  govbr.LayoutHorizontal,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		`class="row mb-3"`,
		`class="col-form-label col-sm-2"`,
		`<div class="col-sm-10">`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
}

func TestFieldRenderer_HorizontalOffsetWhenLabelSkipped(t *testing.T) {
	renderer := newFieldRenderer(t)

	got, err := renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{Name: "name", Label: "Name"},
		Layout:  govbr.LayoutHorizontal,
		Options: map[string]any{"show_label": "skip"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(got, "<label") {
		t.Fatalf("label should be skipped:\n%s", got)
	}
	if !strings.Contains(got, "offset-sm-2") {
		t.Fatalf("missing offset class in:\n%s", got)
	}
}

func TestFieldRenderer_ValidationChrome(t *testing.T) {
	renderer := newFieldRenderer(t)

	got, err := renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{
			Name:      "email",
			Label:     "Email",
			Validated: true,
			Errors:    []string{"Enter a valid email address."},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "is-invalid") {
		t.Fatalf("missing is-invalid in:\n%s", got)
	}
	if !strings.Contains(got, `<div class="invalid-feedback">Enter a valid email address.</div>`) {
		t.Fatalf("missing feedback in:\n%s", got)
	}

	got, err = renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{Name: "email", Label: "Email", Validated: true},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "is-valid") {
		t.Fatalf("missing is-valid in:\n%s", got)
	}
}

func TestFieldRenderer_ValidationChromeDisabledBySetting(t *testing.T) {
	settings, err := config.New(config.WithSetting(config.SettingServerSideValidation, false))
	if err != nil {
		t.Fatalf("new settings: %v", err)
	}
	renderer := newFieldRenderer(t, govbr.WithSettings(settings))

	got, err := renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{Name: "email", Validated: true, Errors: []string{"bad"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "is-invalid") {
		t.Fatalf("validation chrome should be off:\n%s", got)
	}
}

func TestFieldRenderer_CallerOptionBeatsSetting(t *testing.T) {
	renderer := newFieldRenderer(t)

	got, err := renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{Name: "email", Label: "Email"},
		Options: map[string]any{config.SettingWrapperClass: "custom-wrapper"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `class="custom-wrapper"`) {
		t.Fatalf("caller wrapper_class should win:\n%s", got)
	}
}

func TestFieldRenderer_Checkbox(t *testing.T) {
	renderer := newFieldRenderer(t)

	got, err := renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{
			Name:   "accept",
			Label:  "Accept terms",
			Value:  "true",
			Widget: forms.Widget{Type: "checkbox"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"form-check",
		"form-check-input",
		"form-check-label",
		`type="checkbox"`,
		`checked="checked"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "placeholder=") {
		t.Fatalf("checkbox should not get a placeholder:\n%s", got)
	}
}

func TestFieldRenderer_Textarea(t *testing.T) {
	renderer := newFieldRenderer(t)

	got, err := renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{
			Name:   "body",
			Label:  "Body",
			Value:  "line <1>",
			Widget: forms.Widget{Type: "textarea"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "<textarea") || !strings.Contains(got, "line &lt;1&gt;</textarea>") {
		t.Fatalf("unexpected textarea markup:\n%s", got)
	}
}

func TestFieldRenderer_HostWidgetHTMLPassesThrough(t *testing.T) {
	renderer := newFieldRenderer(t)

	hostHTML := `<select name="color"><option>red</option></select>`
	got, err := renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{Name: "color", Label: "Color", Widget: forms.Widget{HTML: hostHTML}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, hostHTML) {
		t.Fatalf("host widget markup should embed unchanged:\n%s", got)
	}
}

func TestFieldRenderer_InvalidSize(t *testing.T) {
	renderer := newFieldRenderer(t)

	_, err := renderer.Render(context.Background(), render.Context{
		Subject: forms.Field{Name: "email"},
		Options: map[string]any{"size": "enormous"},
	})
	if !errors.Is(err, css.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestFieldRenderer_RejectsWrongSubject(t *testing.T) {
	renderer := newFieldRenderer(t)

	if _, err := renderer.Render(context.Background(), render.Context{Subject: 42}); err == nil {
		t.Fatal("expected subject type error")
	}
}

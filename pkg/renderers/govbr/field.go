package govbr

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-govbrds/pkg/config"
	"github.com/goliatone/go-govbrds/pkg/css"
	"github.com/goliatone/go-govbrds/pkg/forms"
	"github.com/goliatone/go-govbrds/pkg/render"
)

// Layout keys understood by the field renderer.
const (
	LayoutHorizontal = "horizontal"
	LayoutInline     = "inline"
	LayoutFloating   = "floating"
)

// FieldRenderer renders a single bound field: wrapper, label, control, help
// text and validation feedback, honouring the layout and the settings
// cascade for every class option.
type FieldRenderer struct {
	base
}

// NewFieldRenderer constructs the field renderer.
func NewFieldRenderer(opts ...Option) (*FieldRenderer, error) {
	b, err := newBase(opts...)
	if err != nil {
		return nil, err
	}
	return &FieldRenderer{base: b}, nil
}

// Name reports the renderer identifier.
func (r *FieldRenderer) Name() string { return "govbr-field" }

// Render produces the field markup.
func (r *FieldRenderer) Render(_ context.Context, rc render.Context) (string, error) {
	field, err := fieldSubject(rc.Subject)
	if err != nil {
		return "", err
	}

	layout := rc.Layout
	if layout == "" {
		layout = r.resolveString(rc, "layout", "")
	}

	widgetHTML, err := r.widgetHTML(field, rc, layout)
	if err != nil {
		return "", err
	}

	showLabel, hiddenLabel := labelMode(rc.Option("show_label", true))

	labelClasses := "form-label"
	if field.IsCheckbox() {
		labelClasses = "form-check-label"
	}
	if layout == LayoutHorizontal {
		labelClasses = css.MergeClasses("col-form-label", r.resolve(rc, config.SettingHorizontalLabelClass))
	}
	labelClasses = css.MergeClasses(labelClasses, r.resolveString(rc, "label_class", ""))
	if hiddenLabel {
		labelClasses = css.MergeClasses(labelClasses, "visually-hidden")
	}

	helpText := ""
	if rc.BoolOption("show_help", true) {
		helpText = field.HelpText
	}

	data := map[string]any{
		"wrapper_classes":      r.wrapperClasses(field, rc, layout),
		"show_label":           showLabel && field.Label != "",
		"label_classes":        labelClasses,
		"label":                field.Label,
		"field_id":             field.ID(),
		"horizontal":           layout == LayoutHorizontal,
		"field_column_classes": r.fieldColumnClasses(rc, showLabel),
		"widget_html":          widgetHTML,
		"help_text":            helpText,
		"errors":               field.Errors,
	}

	return r.engine.RenderTemplate("templates/field", data)
}

func fieldSubject(subject any) (forms.Field, error) {
	switch v := subject.(type) {
	case forms.Field:
		return v, nil
	case *forms.Field:
		if v != nil {
			return *v, nil
		}
	}
	return forms.Field{}, fmt.Errorf("govbr: field renderer needs a forms.Field subject, got %T", subject)
}

// labelMode interprets the show_label option: true renders the label, false
// and "visually-hidden" render it for assistive tech only, "skip" omits it.
func labelMode(value any) (show, hidden bool) {
	switch v := value.(type) {
	case bool:
		if v {
			return true, false
		}
		return true, true
	case string:
		switch v {
		case "skip":
			return false, false
		case "visually-hidden", "false":
			return true, true
		}
	}
	return true, false
}

func (r *FieldRenderer) wrapperClasses(field forms.Field, rc render.Context, layout string) string {
	wrapper := r.resolve(rc, config.SettingWrapperClass)
	if layout == LayoutInline {
		wrapper = r.resolve(rc, config.SettingInlineWrapperClass)
	}

	classes := []string{wrapper}
	if layout == LayoutHorizontal {
		classes = append([]string{"row"}, classes...)
	}
	if layout == LayoutFloating {
		classes = append(classes, "form-floating")
	}
	if field.IsCheckbox() {
		classes = append(classes, "form-check")
	}
	if field.Required {
		classes = append(classes, r.resolve(rc, config.SettingRequiredCSSClass))
	}
	if field.HasErrors() {
		classes = append(classes, r.resolve(rc, config.SettingErrorCSSClass))
	} else if field.IsValid() {
		classes = append(classes, r.resolve(rc, config.SettingSuccessCSSClass))
	}
	return css.MergeClasses(classes...)
}

func (r *FieldRenderer) fieldColumnClasses(rc render.Context, labelShown bool) string {
	column := r.resolve(rc, config.SettingHorizontalFieldClass)
	if !labelShown {
		column = css.MergeClasses(column, r.resolve(rc, config.SettingHorizontalFieldOffset))
	}
	return column
}

// widgetHTML returns the control markup: host-supplied widget HTML when
// present, otherwise a basic input/textarea/checkbox built from the field.
func (r *FieldRenderer) widgetHTML(field forms.Field, rc render.Context, layout string) (string, error) {
	if field.Widget.HTML != "" {
		return field.Widget.HTML, nil
	}

	controlClass := "form-control"
	switch {
	case field.IsCheckbox():
		controlClass = "form-check-input"
	case strings.EqualFold(field.Widget.Type, "select"):
		controlClass = "form-select"
	case strings.EqualFold(field.Widget.Type, "range"):
		controlClass = "form-range"
	}

	sizeClass, err := css.SizeClass(r.resolveString(rc, "size", ""), controlClass)
	if err != nil {
		return "", err
	}

	classes := []string{controlClass, sizeClass, field.Widget.Class()}
	if r.settings.ServerSideValidation() && field.Validated {
		if field.HasErrors() {
			classes = append(classes, "is-invalid")
		} else {
			classes = append(classes, "is-valid")
		}
	}

	attrs := map[string]string{
		"name":  field.Name,
		"class": css.MergeClasses(classes...),
	}
	if id := field.ID(); id != "" {
		attrs["id"] = id
	}
	if field.HelpText != "" {
		attrs["aria-describedby"] = field.ID() + "_helptext"
	}
	for name, value := range field.Widget.Attrs {
		if name == "class" || name == "id" {
			continue
		}
		attrs[name] = value
	}

	if !field.IsCheckbox() {
		placeholder := r.resolveString(rc, "placeholder", "")
		if placeholder == "" && r.resolveBool(rc, config.SettingSetPlaceholder, true) {
			placeholder = field.Placeholder
			if placeholder == "" && layout != LayoutHorizontal {
				placeholder = field.Label
			}
		}
		if placeholder != "" {
			attrs["placeholder"] = placeholder
		}
	}

	switch {
	case strings.EqualFold(field.Widget.Type, "textarea"):
		return "<textarea" + attrString(attrs, field.Required, field.Disabled) + ">" +
			html.EscapeString(field.Value) + "</textarea>", nil
	case field.IsCheckbox():
		attrs["type"] = "checkbox"
		if field.Value == "true" || field.Value == "on" {
			attrs["checked"] = "checked"
		}
		return "<input" + attrString(attrs, field.Required, field.Disabled) + ">", nil
	default:
		inputType := field.Widget.Type
		if inputType == "" {
			inputType = "text"
		}
		attrs["type"] = inputType
		if field.Value != "" {
			attrs["value"] = field.Value
		}
		return "<input" + attrString(attrs, field.Required, field.Disabled) + ">", nil
	}
}

func attrString(attrs map[string]string, required, disabled bool) string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrs[name]))
		b.WriteByte('"')
	}
	if required {
		b.WriteString(" required")
	}
	if disabled {
		b.WriteString(" disabled")
	}
	return b.String()
}

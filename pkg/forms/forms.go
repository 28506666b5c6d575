// Package forms holds the host-agnostic form model the component renderers
// consume. Host applications map their own form layer onto these types; the
// renderers never reach back into the host.
package forms

import (
	"strings"
)

// Widget describes the control rendered for a field. When HTML is set the
// host supplies pre-rendered control markup and the field template embeds it
// unchanged; otherwise the template builds a basic input from Type and Attrs.
type Widget struct {
	Type  string
	Attrs map[string]string
	HTML  string
}

// Class returns the widget's class attribute.
func (w Widget) Class() string {
	return w.Attrs["class"]
}

// Field is a single bound form field.
type Field struct {
	Name        string
	Label       string
	Value       string
	HelpText    string
	Placeholder string
	Required    bool
	Disabled    bool
	// Errors holds server-side validation messages for this field.
	Errors []string
	// Validated marks that server-side validation ran, enabling success
	// chrome for fields without errors.
	Validated bool
	Widget    Widget
}

// ID returns the element id for the field control, derived from the name
// unless the widget declares its own.
func (f Field) ID() string {
	if id, ok := f.Widget.Attrs["id"]; ok && id != "" {
		return id
	}
	if f.Name == "" {
		return ""
	}
	return "id_" + f.Name
}

// HasErrors reports whether the field carries validation errors.
func (f Field) HasErrors() bool {
	return len(f.Errors) > 0
}

// IsValid reports whether the field was validated and passed.
func (f Field) IsValid() bool {
	return f.Validated && len(f.Errors) == 0
}

// IsCheckbox reports whether the field renders as a checkbox control.
func (f Field) IsCheckbox() bool {
	return strings.EqualFold(f.Widget.Type, "checkbox")
}

// Form is a bound form: ordered fields plus form-level errors.
type Form struct {
	Fields []Field
	// NonFieldErrors holds errors not attached to a single field.
	NonFieldErrors []string
}

// FieldErrors collects every field-level error message in field order.
func (f Form) FieldErrors() []string {
	var out []string
	for _, field := range f.Fields {
		out = append(out, field.Errors...)
	}
	return out
}

// Visible filters fields by name against an exclusion list.
func (f Form) Visible(exclude []string) []Field {
	if len(exclude) == 0 {
		return f.Fields
	}
	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		skip[trimmed] = struct{}{}
	}
	out := make([]Field, 0, len(f.Fields))
	for _, field := range f.Fields {
		if _, excluded := skip[field.Name]; excluded {
			continue
		}
		out = append(out, field)
	}
	return out
}

// Formset is an ordered collection of forms sharing one schema.
type Formset struct {
	Forms []Form
	// Errors holds formset-level errors (e.g. management or uniqueness
	// violations spanning member forms).
	Errors []string
}

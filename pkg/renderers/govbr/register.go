package govbr

import (
	"github.com/goliatone/go-govbrds/pkg/render"
)

// RegisterDefaults wires the built-in renderer for every capability into the
// registry under the "default" variant. The field renderer handles the
// horizontal/inline/floating layouts itself, so hosts only register explicit
// variants when they need a wholly different rendering strategy.
func RegisterDefaults(reg *render.Registry, opts ...Option) error {
	b, err := newBase(opts...)
	if err != nil {
		return err
	}

	field := &FieldRenderer{base: b}
	formErrors := &FormErrorsRenderer{base: b}
	form := &FormRenderer{base: b, fields: field, errors: formErrors}

	entries := []struct {
		capability string
		renderer   render.Renderer
	}{
		{render.CapabilityForm, form},
		{render.CapabilityFormset, &FormsetRenderer{base: b, form: form}},
		{render.CapabilityField, field},
		{render.CapabilityLabel, &LabelRenderer{base: b}},
		{render.CapabilityButton, &ButtonRenderer{base: b}},
		{render.CapabilityAlert, &AlertRenderer{base: b}},
		{render.CapabilityMessages, &MessagesRenderer{base: b, alert: &AlertRenderer{base: b}}},
		{render.CapabilityPagination, &PaginationRenderer{base: b}},
	}
	for _, entry := range entries {
		if err := reg.Register(entry.capability, render.DefaultVariant, entry.renderer); err != nil {
			return err
		}
	}
	return nil
}

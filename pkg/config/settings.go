package config

import (
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// unsetSentinel backs the Unset marker. A dedicated type keeps it impossible
// to collide with real setting values, including nil.
type unsetSentinel struct{}

// Unset marks a caller option that was not supplied. Resolve treats any other
// value, nil included, as an explicit caller override.
var Unset any = unsetSentinel{}

// IsUnset reports whether v is the Unset sentinel.
func IsUnset(v any) bool {
	_, ok := v.(unsetSentinel)
	return ok
}

// Option customises Settings construction.
type Option func(*builder)

type builder struct {
	overrides     map[string]any
	yamlDocs      [][]byte
	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string
	err           error
}

// WithOverrides merges host-application settings into the override table.
// Later options win over earlier ones for the same name.
func WithOverrides(values map[string]any) Option {
	return func(b *builder) {
		for name, value := range values {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				continue
			}
			b.overrides[trimmed] = value
		}
	}
}

// WithSetting sets a single host-application override.
func WithSetting(name string, value any) Option {
	return func(b *builder) {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return
		}
		b.overrides[trimmed] = value
	}
}

// WithYAML queues a YAML document holding a flat mapping of setting names to
// values. Parsing happens in New so malformed documents fail construction.
func WithYAML(data []byte) Option {
	return func(b *builder) {
		if len(data) == 0 {
			return
		}
		b.yamlDocs = append(b.yamlDocs, data)
	}
}

// WithYAMLFile reads a settings document from the provided filesystem.
func WithYAMLFile(fsys fs.FS, path string) Option {
	return func(b *builder) {
		if fsys == nil || strings.TrimSpace(path) == "" {
			return
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			if b.err == nil {
				b.err = fmt.Errorf("config: read settings file %s: %w", path, err)
			}
			return
		}
		b.yamlDocs = append(b.yamlDocs, data)
	}
}

// WithThemeSelector resolves asset URLs from a go-theme selection at
// construction time. Manifest tokens named css_url, javascript_url and
// theme_url populate the host-settings layer when present.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(b *builder) {
		b.themeSelector = selector
		b.themeName = name
		b.themeVariant = variant
	}
}

// Settings resolves named configuration values through the cascade
// caller override -> host settings -> library defaults -> supplied fallback.
// Instances are immutable after New and safe for concurrent readers.
type Settings struct {
	overrides map[string]any
	defaults  map[string]any
	selection *theme.Selection
}

// New constructs an immutable Settings table applying any provided options.
func New(options ...Option) (*Settings, error) {
	b := &builder{overrides: make(map[string]any)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	if b.err != nil {
		return nil, b.err
	}

	merged := make(map[string]any)
	for _, doc := range b.yamlDocs {
		parsed := map[string]any{}
		if err := yaml.Unmarshal(doc, &parsed); err != nil {
			return nil, fmt.Errorf("config: parse settings document: %w", err)
		}
		for name, value := range parsed {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				continue
			}
			merged[trimmed] = value
		}
	}
	// Explicit overrides win over YAML-provided values.
	for name, value := range b.overrides {
		merged[name] = value
	}

	settings := &Settings{
		overrides: merged,
		defaults:  Defaults(),
	}

	if b.themeSelector != nil {
		selection, err := b.themeSelector.Select(b.themeName, b.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("config: select theme %q/%q: %w", b.themeName, b.themeVariant, err)
		}
		settings.selection = selection
		settings.applyThemeTokens()
	}

	return settings, nil
}

// Must constructs Settings and panics on failure. Useful for init-time wiring.
func Must(options ...Option) *Settings {
	settings, err := New(options...)
	if err != nil {
		panic(err)
	}
	return settings
}

func (s *Settings) applyThemeTokens() {
	if s.selection == nil || s.selection.Manifest == nil {
		return
	}
	for _, name := range []string{"css_url", "javascript_url", "theme_url"} {
		if url, ok := s.selection.Manifest.Tokens[name]; ok && strings.TrimSpace(url) != "" {
			if _, overridden := s.overrides[name]; !overridden {
				s.overrides[name] = url
			}
		}
	}
}

// ThemeSelection exposes the resolved go-theme selection, when one was
// configured.
func (s *Settings) ThemeSelection() *theme.Selection {
	if s == nil {
		return nil
	}
	return s.selection
}

// Resolve returns caller when it is not the Unset sentinel, then the
// host-application value for name, then the library default. Unknown names
// resolve to Unset; absence is not an error.
func (s *Settings) Resolve(name string, caller any) any {
	return s.ResolveDefault(name, caller, Unset)
}

// ResolveDefault behaves like Resolve but returns fallback instead of the
// Unset sentinel when every layer misses.
func (s *Settings) ResolveDefault(name string, caller, fallback any) any {
	if !IsUnset(caller) {
		return caller
	}
	if s != nil {
		if value, ok := s.overrides[name]; ok {
			return value
		}
		if value, ok := s.defaults[name]; ok {
			return value
		}
	}
	return fallback
}

// String resolves name and coerces the result to a string. Unset and non
// string values yield the empty string.
func (s *Settings) String(name string) string {
	value := s.Resolve(name, Unset)
	if IsUnset(value) || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Bool resolves name to a boolean, returning fallback when the value is
// absent or not a bool.
func (s *Settings) Bool(name string, fallback bool) bool {
	value := s.Resolve(name, Unset)
	if b, ok := value.(bool); ok {
		return b
	}
	return fallback
}

// Typed accessors for the settings the built-in renderers consume.

// CSSURL returns the stylesheet URL for the design system.
func (s *Settings) CSSURL() string { return s.String("css_url") }

// JavascriptURL returns the script URL for the design system.
func (s *Settings) JavascriptURL() string { return s.String("javascript_url") }

// ThemeURL returns the optional theme stylesheet URL.
func (s *Settings) ThemeURL() string { return s.String("theme_url") }

// ColorMode returns the configured color mode, empty when unset.
func (s *Settings) ColorMode() string { return s.String("color_mode") }

// JavascriptInHead reports whether script tags belong in the document head.
func (s *Settings) JavascriptInHead() bool { return s.Bool("javascript_in_head", false) }

// WrapperClass returns the CSS class for the div wrapping a field.
func (s *Settings) WrapperClass() string { return s.String("wrapper_class") }

// InlineWrapperClass returns the wrapper class used by the inline layout.
func (s *Settings) InlineWrapperClass() string { return s.String("inline_wrapper_class") }

// HorizontalLabelClass returns the label column class for horizontal layout.
func (s *Settings) HorizontalLabelClass() string { return s.String("horizontal_label_class") }

// HorizontalFieldClass returns the field column class for horizontal layout.
func (s *Settings) HorizontalFieldClass() string { return s.String("horizontal_field_class") }

// HorizontalFieldOffsetClass returns the offset class used when a horizontal
// row renders without a label.
func (s *Settings) HorizontalFieldOffsetClass() string {
	return s.String("horizontal_field_offset_class")
}

// SetPlaceholder reports whether text inputs receive the label as
// placeholder.
func (s *Settings) SetPlaceholder() bool { return s.Bool("set_placeholder", true) }

// RequiredCSSClass returns the class marking required fields.
func (s *Settings) RequiredCSSClass() string { return s.String("required_css_class") }

// ErrorCSSClass returns the class marking invalid fields.
func (s *Settings) ErrorCSSClass() string { return s.String("error_css_class") }

// SuccessCSSClass returns the class marking valid fields.
func (s *Settings) SuccessCSSClass() string { return s.String("success_css_class") }

// ServerSideValidation reports whether is-valid/is-invalid chrome is applied
// from server-side validation state.
func (s *Settings) ServerSideValidation() bool { return s.Bool("server_side_validation", true) }

package config

// Setting names recognised by the built-in renderers. Host applications can
// override any of them; unknown names are carried through untouched so custom
// renderers can define their own options.
const (
	SettingCSSURL                = "css_url"
	SettingJavascriptURL         = "javascript_url"
	SettingThemeURL              = "theme_url"
	SettingColorMode             = "color_mode"
	SettingJavascriptInHead      = "javascript_in_head"
	SettingWrapperClass          = "wrapper_class"
	SettingInlineWrapperClass    = "inline_wrapper_class"
	SettingHorizontalLabelClass  = "horizontal_label_class"
	SettingHorizontalFieldClass  = "horizontal_field_class"
	SettingHorizontalFieldOffset = "horizontal_field_offset_class"
	SettingSetPlaceholder        = "set_placeholder"
	SettingCheckboxLayout        = "checkbox_layout"
	SettingCheckboxStyle         = "checkbox_style"
	SettingRequiredCSSClass      = "required_css_class"
	SettingErrorCSSClass         = "error_css_class"
	SettingSuccessCSSClass       = "success_css_class"
	SettingServerSideValidation  = "server_side_validation"
)

// Defaults returns a fresh copy of the library default table. Callers may
// mutate the returned map freely; Settings keeps its own copy.
func Defaults() map[string]any {
	return map[string]any{
		SettingCSSURL:                "govbrds/css/style.min.css",
		SettingJavascriptURL:         "govbrds/js/script.js",
		SettingThemeURL:              nil,
		SettingColorMode:             nil,
		SettingJavascriptInHead:      false,
		SettingWrapperClass:          "mb-3",
		SettingInlineWrapperClass:    "",
		SettingHorizontalLabelClass:  "col-sm-2",
		SettingHorizontalFieldClass:  "col-sm-10",
		SettingHorizontalFieldOffset: "offset-sm-2",
		SettingSetPlaceholder:        true,
		SettingCheckboxLayout:        nil,
		SettingCheckboxStyle:         nil,
		SettingRequiredCSSClass:      "",
		SettingErrorCSSClass:         "",
		SettingSuccessCSSClass:       "",
		SettingServerSideValidation:  true,
	}
}

// Package css provides the class-string helpers shared by the GovBR-DS
// renderers: merging, size suffixes and pagination chrome.
package css

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize is returned for a size value outside small/medium/large.
var ErrInvalidSize = errors.New("css: invalid size")

// ErrInvalidJustify is returned for a justify_content value outside
// start/center/end.
var ErrInvalidJustify = errors.New("css: invalid justify_content")

// ClassList splits a class attribute string into its individual classes,
// dropping empty tokens.
func ClassList(value string) []string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// MergeClasses joins class strings into a single attribute value, keeping the
// first occurrence of each class and discarding duplicates.
func MergeClasses(values ...string) string {
	var out []string
	seen := make(map[string]struct{})
	for _, value := range values {
		for _, class := range ClassList(value) {
			if _, exists := seen[class]; exists {
				continue
			}
			seen[class] = struct{}{}
			out = append(out, class)
		}
	}
	return strings.Join(out, " ")
}

// SizeClass converts a size option into a suffixed CSS class, e.g.
// SizeClass("large", "btn") == "btn-lg". Medium is the design system default
// and produces no class. Unknown sizes return ErrInvalidSize.
func SizeClass(size, prefix string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(size)) {
	case "":
		return "", nil
	case "sm", "small":
		return prefix + "-sm", nil
	case "md", "medium":
		return "", nil
	case "lg", "large":
		return prefix + "-lg", nil
	default:
		return "", fmt.Errorf("%w: %q, valid values are sm/small, md/medium, lg/large", ErrInvalidSize, size)
	}
}

// JustifyClass converts a justify_content option into its flexbox utility
// class. The empty string means no alignment and yields no class.
func JustifyClass(value string) (string, error) {
	switch value {
	case "":
		return "", nil
	case "start", "center", "end":
		return "justify-content-" + value, nil
	default:
		return "", fmt.Errorf("%w: %q, valid values are start, center, end", ErrInvalidJustify, value)
	}
}

// ValidationClasses filters a widget class attribute down to the server-side
// validation chrome classes.
func ValidationClasses(classAttr string) string {
	var out []string
	for _, class := range ClassList(classAttr) {
		if class == "is-valid" || class == "is-invalid" {
			out = append(out, class)
		}
	}
	return strings.Join(out, " ")
}

// PaginationClasses assembles the class attribute for the pagination control
// from the size and justify_content options.
func PaginationClasses(size, justify string) (string, error) {
	classes := []string{"pagination"}

	sizeClass, err := SizeClass(size, "pagination")
	if err != nil {
		return "", err
	}
	if sizeClass != "" {
		classes = append(classes, sizeClass)
	}

	justifyClass, err := JustifyClass(justify)
	if err != nil {
		return "", err
	}
	if justifyClass != "" {
		classes = append(classes, justifyClass)
	}

	return strings.Join(classes, " "), nil
}

package css_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-govbrds/pkg/css"
)

func TestMergeClasses(t *testing.T) {
	cases := []struct {
		name   string
		inputs []string
		want   string
	}{
		{name: "empty", inputs: nil, want: ""},
		{name: "single", inputs: []string{"btn"}, want: "btn"},
		{name: "dedup keeps first", inputs: []string{"btn btn-primary", "btn btn-lg"}, want: "btn btn-primary btn-lg"},
		{name: "whitespace normalised", inputs: []string{"  a   b ", "c"}, want: "a b c"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := css.MergeClasses(tc.inputs...); got != tc.want {
				t.Fatalf("merge %v: want %q, got %q", tc.inputs, tc.want, got)
			}
		})
	}
}

func TestClassList(t *testing.T) {
	got := css.ClassList(" form-control  is-invalid ")
	want := []string{"form-control", "is-invalid"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("class list mismatch (-want +got):\n%s", diff)
	}
	if css.ClassList("   ") != nil {
		t.Fatal("blank input should yield nil")
	}
}

func TestSizeClass(t *testing.T) {
	cases := []struct {
		size string
		want string
	}{
		{size: "", want: ""},
		{size: "sm", want: "btn-sm"},
		{size: "small", want: "btn-sm"},
		{size: "md", want: ""},
		{size: "medium", want: ""},
		{size: "lg", want: "btn-lg"},
		{size: "Large", want: "btn-lg"},
	}
	for _, tc := range cases {
		got, err := css.SizeClass(tc.size, "btn")
		if err != nil {
			t.Fatalf("size %q: unexpected error %v", tc.size, err)
		}
		if got != tc.want {
			t.Fatalf("size %q: want %q, got %q", tc.size, tc.want, got)
		}
	}

	if _, err := css.SizeClass("huge", "btn"); !errors.Is(err, css.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestJustifyClass(t *testing.T) {
	for _, value := range []string{"start", "center", "end"} {
		got, err := css.JustifyClass(value)
		if err != nil {
			t.Fatalf("justify %q: unexpected error %v", value, err)
		}
		if got != "justify-content-"+value {
			t.Fatalf("justify %q: got %q", value, got)
		}
	}
	if got, err := css.JustifyClass(""); err != nil || got != "" {
		t.Fatalf("empty justify: got %q, %v", got, err)
	}
	if _, err := css.JustifyClass("middle"); !errors.Is(err, css.ErrInvalidJustify) {
		t.Fatalf("expected ErrInvalidJustify, got %v", err)
	}
}

func TestValidationClasses(t *testing.T) {
	if got := css.ValidationClasses("form-control is-invalid custom"); got != "is-invalid" {
		t.Fatalf("got %q", got)
	}
	if got := css.ValidationClasses("is-valid is-invalid"); got != "is-valid is-invalid" {
		t.Fatalf("got %q", got)
	}
	if got := css.ValidationClasses("form-control"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestPaginationClasses(t *testing.T) {
	got, err := css.PaginationClasses("large", "center")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "pagination pagination-lg justify-content-center" {
		t.Fatalf("got %q", got)
	}

	got, err = css.PaginationClasses("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "pagination" {
		t.Fatalf("got %q", got)
	}

	if _, err := css.PaginationClasses("", "middle"); !errors.Is(err, css.ErrInvalidJustify) {
		t.Fatalf("expected ErrInvalidJustify, got %v", err)
	}
}

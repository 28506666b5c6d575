package pongo_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-govbrds/pkg/template/pongo"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
		"loop.tmpl":     &fstest.MapFile{Data: []byte("{% for page in pages %}{{ page }} {% endfor %}")},
	}
}

func TestNew_RequiresTemplateSource(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatal("expected error without template source")
	}
}

func TestRenderTemplate(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("greeting", map[string]any{"name": "world"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello world!" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderTemplate_IteratesSlices(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("loop", map[string]any{"pages": []int{1, 2, 3}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(got) != "1 2 3" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderString(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString("{{ a }}-{{ b }}", map[string]any{"a": "x", "b": "y"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "x-y" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_DispatchesOnMarkup(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	inline, err := engine.Render("{{ name }}", map[string]any{"name": "inline"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "inline" {
		t.Fatalf("got %q", inline)
	}

	file, err := engine.Render("greeting", map[string]any{"name": "file"})
	if err != nil {
		t.Fatalf("render file: %v", err)
	}
	if file != "Hello file!" {
		t.Fatalf("got %q", file)
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := pongo.New(
		pongo.WithFS(testFS()),
		pongo.WithGlobalData(map[string]any{"name": "global"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("greeting", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello global!" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderTemplate_MissingTemplate(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("nope", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

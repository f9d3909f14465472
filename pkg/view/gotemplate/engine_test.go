package gotemplate_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formfield/pkg/view/gotemplate"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"field.tpl": &fstest.MapFile{
			Data: []byte(`<label>{{ label }}</label>`),
		},
		"input.html": &fstest.MapFile{
			Data: []byte(`<input name="{{ name }}" {{ attrs }}/>`),
		},
	}
}

func TestEngine_RenderNamedTemplate(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.Render("field", map[string]any{"label": "First name"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<label>First name</label>" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestEngine_RenderAppendsExtension(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(testFS()),
		gotemplate.WithExtension("html"),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.Render("input", map[string]any{
		"name":  "email",
		"attrs": `class="form-control" `,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `name="email"`) {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestEngine_RenderStringAndWriterTee(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	got, err := engine.RenderString(`{{ greeting }}, {{ name }}`, map[string]any{
		"greeting": "Hello",
		"name":     "form",
	}, &buf)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Hello, form" {
		t.Fatalf("unexpected output: %q", got)
	}
	if buf.String() != got {
		t.Fatalf("writer should receive the same output, got %q", buf.String())
	}
}

func TestEngine_GlobalsAvailableEverywhere(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(testFS()),
		gotemplate.WithGlobals(map[string]any{"brand": "acme"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString(`{{ brand }}`, nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "acme" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(testFS()),
		gotemplate.WithFilter("formfield_upper", func(input any, _ any) (any, error) {
			str, _ := input.(string)
			return strings.ToUpper(str), nil
		}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString(`{{ word|formfield_upper }}`, map[string]any{"word": "shout"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "SHOUT" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestEngine_SharedFilterNameAcrossEngines(t *testing.T) {
	upper := func(input any, _ any) (any, error) {
		str, _ := input.(string)
		return strings.ToUpper(str), nil
	}

	first, err := gotemplate.New(
		gotemplate.WithFS(testFS()),
		gotemplate.WithFilter("formfield_shared_upper", upper),
	)
	if err != nil {
		t.Fatalf("first engine: %v", err)
	}

	second, err := gotemplate.New(
		gotemplate.WithFS(testFS()),
		gotemplate.WithFilter("formfield_shared_upper", upper),
	)
	if err != nil {
		t.Fatalf("second engine should tolerate the existing filter: %v", err)
	}

	for _, engine := range []*gotemplate.Engine{first, second} {
		got, err := engine.RenderString(`{{ word|formfield_shared_upper }}`, map[string]any{"word": "loud"})
		if err != nil {
			t.Fatalf("render string: %v", err)
		}
		if got != "LOUD" {
			t.Fatalf("unexpected output: %q", got)
		}
	}
}

func TestEngine_RequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected construction without sources to fail")
	}
}

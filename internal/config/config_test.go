package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/internal/config"
)

func TestSource_GetDottedPath(t *testing.T) {
	src := config.FromMap(map[string]any{
		"defaults": map[string]any{
			"wrapper_class": "form-group",
			"field": map[string]any{
				"class": "form-control",
			},
		},
	})

	if got := src.Get("defaults.field.class", ""); got != "form-control" {
		t.Fatalf("unexpected value: %v", got)
	}
	if got := src.Get("defaults.missing", "fallback"); got != "fallback" {
		t.Fatalf("expected default for missing key, got %v", got)
	}
	if got := src.Get("defaults.wrapper_class.nested", "fallback"); got != "fallback" {
		t.Fatalf("expected default when path hits a scalar, got %v", got)
	}
}

func TestSource_StringMap(t *testing.T) {
	src := config.FromMap(map[string]any{
		"custom_fields": map[string]any{
			"gmap":    "acme.GoogleMap",
			"invalid": 42,
		},
	})

	got := src.StringMap("custom_fields")
	want := map[string]string{"gmap": "acme.GoogleMap"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected map (-want +got):\n%s", diff)
	}

	if src.StringMap("missing") != nil {
		t.Fatal("missing key should yield nil")
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("FORMFIELD_THEME", "midnight")

	dir := t.TempDir()
	path := filepath.Join(dir, "formfield.yaml")
	payload := []byte("theme: ${FORMFIELD_THEME}\ncustom_fields:\n  gmap: acme.GoogleMap\n")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	src, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := src.Get("theme", ""); got != "midnight" {
		t.Fatalf("env expansion failed, got %v", got)
	}
	if got := src.StringMap("custom_fields")["gmap"]; got != "acme.GoogleMap" {
		t.Fatalf("unexpected custom field: %v", got)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected missing file to fail")
	}
}

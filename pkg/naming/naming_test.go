package naming_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formfield/pkg/naming"
)

func TestDotPath(t *testing.T) {
	cases := map[string]string{
		"a.b[c][]":            "a_b.c",
		"address[street]":     "address.street",
		"tags[]":              "tags",
		"items[0][name]":      "items.0.name",
		"plain":               "plain",
		"nested[a][b][c]":     "nested.a.b.c",
		"dotted.name[child]":  "dotted_name.child",
		"list[][child]":       "list.child",
		"config[env.primary]": "config.env_primary",
	}
	for in, want := range cases {
		if got := naming.DotPath(in); got != want {
			t.Fatalf("DotPath(%q): want %q, got %q", in, want, got)
		}
	}
}

func TestValidate_EmptyNameFails(t *testing.T) {
	for _, name := range []string{"", "  ", "\t\n"} {
		err := naming.Validate(name, "contactForm")
		if err == nil {
			t.Fatalf("expected blank name %q to fail", name)
		}
		if !errors.Is(err, naming.ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
		if !strings.Contains(err.Error(), "contactForm") {
			t.Fatalf("error should name the owner: %s", err)
		}
	}
}

func TestValidate_ReservedNameFails(t *testing.T) {
	err := naming.Validate("save", "contactForm")
	if err == nil {
		t.Fatal("expected reserved name to fail")
	}
	if !errors.Is(err, naming.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if !strings.Contains(err.Error(), `"save"`) {
		t.Fatalf("error should name the offending field: %s", err)
	}
}

func TestValidate_RegularNamesPass(t *testing.T) {
	for _, name := range []string{"email", "first_name", "items[0][name]", "saved"} {
		if err := naming.Validate(name, "contactForm"); err != nil {
			t.Fatalf("expected %q to validate, got %v", name, err)
		}
	}
}

func TestReserved_ReturnsCopy(t *testing.T) {
	reserved := naming.Reserved()
	if len(reserved) == 0 {
		t.Fatal("reserved set should not be empty")
	}
	reserved[0] = "mutated"
	if naming.IsReserved("mutated") {
		t.Fatal("mutating the returned slice must not affect the reserved set")
	}
	if !naming.IsReserved("save") {
		t.Fatal("save should stay reserved")
	}
}

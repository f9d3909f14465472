package naming

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName is wrapped by every name-validation failure.
var ErrInvalidName = errors.New("naming: invalid field name")

// reservedNames can never be used as form field identifiers; they collide
// with generated form controls.
var reservedNames = []string{"save"}

// dotPathReplacer rewrites bracketed array names into dot paths. Literal
// dots become underscores first so they cannot collide with the separator;
// empty brackets (unkeyed list segments) vanish entirely.
var dotPathReplacer = strings.NewReplacer(
	".", "_",
	"[]", "",
	"[", ".",
	"]", "",
)

// DotPath converts a bracketed field name into dot-path notation used for
// nested data binding: `a.b[c][]` becomes `a_b.c`.
func DotPath(name string) string {
	return dotPathReplacer.Replace(name)
}

// Reserved returns the reserved field names.
func Reserved() []string {
	return append([]string(nil), reservedNames...)
}

// IsReserved reports whether a name is in the reserved set.
func IsReserved(name string) bool {
	for _, reserved := range reservedNames {
		if name == reserved {
			return true
		}
	}
	return false
}

// Validate rejects blank and reserved field names. The owner identifier
// feeds the error message so callers can tell which form class tripped.
func Validate(name, owner string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("field name in %q cannot be empty: %w", owner, ErrInvalidName)
	}
	if IsReserved(name) {
		return fmt.Errorf(
			"field name %q in %q is reserved, rename it (reserved names: %s): %w",
			name, owner, strings.Join(reservedNames, ", "), ErrInvalidName,
		)
	}
	return nil
}

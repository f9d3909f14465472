package fieldtypes

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// FieldClass identifies the rendering implementation behind a field type
// name. Built-in classes map many aliases (text, email, url, ...) onto a
// small closed set; custom registrations may point at any identifier.
type FieldClass string

// Built-in field classes.
const (
	ClassInput      FieldClass = "formfield.Input"
	ClassTextarea   FieldClass = "formfield.Textarea"
	ClassSelect     FieldClass = "formfield.Select"
	ClassCheckable  FieldClass = "formfield.Checkable"
	ClassChoice     FieldClass = "formfield.Choice"
	ClassButton     FieldClass = "formfield.Button"
	ClassStatic     FieldClass = "formfield.Static"
	ClassEntity     FieldClass = "formfield.Entity"
	ClassChildForm  FieldClass = "formfield.ChildForm"
	ClassCollection FieldClass = "formfield.Collection"
	ClassRepeated   FieldClass = "formfield.Repeated"
)

// builtinTypes is the closed alias table. Lookups are case-sensitive and
// the table is never mutated after init; custom types live on the Registry.
var builtinTypes = map[string]FieldClass{
	"text":           ClassInput,
	"email":          ClassInput,
	"url":            ClassInput,
	"tel":            ClassInput,
	"search":         ClassInput,
	"password":       ClassInput,
	"hidden":         ClassInput,
	"number":         ClassInput,
	"date":           ClassInput,
	"datetime-local": ClassInput,
	"month":          ClassInput,
	"range":          ClassInput,
	"time":           ClassInput,
	"week":           ClassInput,
	"color":          ClassInput,
	"file":           ClassInput,
	"textarea":       ClassTextarea,
	"select":         ClassSelect,
	"checkbox":       ClassCheckable,
	"radio":          ClassCheckable,
	"choice":         ClassChoice,
	"button":         ClassButton,
	"submit":         ClassButton,
	"reset":          ClassButton,
	"static":         ClassStatic,
	"entity":         ClassEntity,
	"form":           ClassChildForm,
	"collection":     ClassCollection,
	"repeated":       ClassRepeated,
}

// Registry resolves field type names to classes. Custom registrations take
// precedence over the built-in table, preserving alias extension semantics.
type Registry struct {
	mu     sync.RWMutex
	custom map[string]FieldClass
}

// NewRegistry constructs a registry with no custom types.
func NewRegistry() *Registry {
	return &Registry{
		custom: make(map[string]FieldClass),
	}
}

// Register adds a custom type name. Registering the same name twice is an
// error; shadowing a built-in name is allowed and wins on resolution.
func (r *Registry) Register(name string, class FieldClass) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("fieldtypes: custom type name is required: %w", ErrInvalidArgument)
	}
	if class == "" {
		return fmt.Errorf("fieldtypes: custom type %q needs a field class: %w", trimmed, ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.custom[trimmed]; exists {
		return fmt.Errorf("fieldtypes: custom type %q already registered: %w", trimmed, ErrInvalidArgument)
	}
	r.custom[trimmed] = class
	return nil
}

// Resolve returns the class for a type name, checking custom registrations
// before the built-in table. Names are trimmed the same way Register trims
// them, so a type stored as "gmap" resolves for " gmap " too.
func (r *Registry) Resolve(name string) (FieldClass, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("fieldtypes: field type name is required: %w", ErrInvalidArgument)
	}

	r.mu.RLock()
	class, ok := r.custom[trimmed]
	r.mu.RUnlock()
	if ok {
		return class, nil
	}

	if class, ok := builtinTypes[trimmed]; ok {
		return class, nil
	}
	return "", &UnsupportedTypeError{Name: trimmed, Known: r.Known()}
}

// Has reports whether a type name resolves, via either table.
func (r *Registry) Has(name string) bool {
	trimmed := strings.TrimSpace(name)
	r.mu.RLock()
	_, ok := r.custom[trimmed]
	r.mu.RUnlock()
	if ok {
		return true
	}
	_, ok = builtinTypes[trimmed]
	return ok
}

// Known returns the sorted union of built-in and custom type names.
func (r *Registry) Known() []string {
	r.mu.RLock()
	names := make([]string, 0, len(builtinTypes)+len(r.custom))
	seen := make(map[string]struct{}, len(builtinTypes)+len(r.custom))
	for name := range r.custom {
		names = append(names, name)
		seen[name] = struct{}{}
	}
	r.mu.RUnlock()

	for name := range builtinTypes {
		if _, ok := seen[name]; ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns the class for a built-in name, bypassing custom
// registrations. Mostly useful to detect shadowing.
func Builtin(name string) (FieldClass, bool) {
	class, ok := builtinTypes[name]
	return class, ok
}

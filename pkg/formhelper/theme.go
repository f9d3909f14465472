package formhelper

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/htmlattr"
)

// defaultFieldClassKey is the configuration fallback applied when no theme
// token covers a component.
const defaultFieldClassKey = "defaults.field_class"

type themeDefaults struct {
	selection *theme.Selection
}

// classFor resolves the CSS class token for a component, variant tokens
// shadowing the base manifest.
func (t *themeDefaults) classFor(component string) string {
	if t == nil || t.selection == nil || t.selection.Manifest == nil {
		return ""
	}
	key := "forms." + component + ".class"
	if variant, ok := t.selection.Manifest.Variants[t.selection.Variant]; ok {
		if value := variant.Tokens[key]; value != "" {
			return value
		}
	}
	return t.selection.Manifest.Tokens[key]
}

// ThemeClass returns the themed CSS class for a component name, or the
// empty string when no theme selection is wired.
func (h *Helper) ThemeClass(component string) string {
	return h.theme.classFor(component)
}

// DefaultAttributes builds the starting attribute bag for a component:
// the configured default field class, with the theme token taking over
// when the selection provides one. Callers merge field-specific options
// on top.
func (h *Helper) DefaultAttributes(component string) *htmlattr.Attributes {
	attrs := htmlattr.New()
	if class, ok := h.ConfigValue(defaultFieldClassKey, nil).(string); ok && class != "" {
		attrs.Set("class", class)
	}
	if class := h.ThemeClass(component); class != "" {
		attrs.Set("class", class)
	}
	return attrs
}

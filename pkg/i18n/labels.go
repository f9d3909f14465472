package i18n

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label turns a field name into a display label. A translation that exists
// and resolves to a string wins verbatim; everything else falls back to
// Humanize. Empty input yields an empty label.
func Label(t Translator, name string) string {
	if name == "" {
		return ""
	}
	if t != nil && t.Has(name) {
		if translated, ok := t.Get(name).(string); ok {
			return translated
		}
	}
	return Humanize(name)
}

// Humanize converts snake_case field names into sentence-style labels:
// underscores become spaces and the first rune is upper-cased.
func Humanize(name string) string {
	spaced := strings.ReplaceAll(name, "_", " ")
	if spaced == "" {
		return spaced
	}
	first, size := utf8.DecodeRuneInString(spaced)
	return string(unicode.ToUpper(first)) + spaced[size:]
}

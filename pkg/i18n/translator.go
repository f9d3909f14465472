package i18n

// Translator is the consumed translation contract. Get may return any
// value a catalogue holds (nested maps included); only string results are
// usable as labels.
type Translator interface {
	Has(key string) bool
	Get(key string) any
}

// StaticTranslator is a map-backed Translator for tests and small apps.
type StaticTranslator map[string]any

// Has reports whether a key exists in the catalogue.
func (t StaticTranslator) Has(key string) bool {
	_, ok := t[key]
	return ok
}

// Get returns the raw catalogue value for a key.
func (t StaticTranslator) Get(key string) any {
	return t[key]
}

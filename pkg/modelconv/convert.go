package modelconv

// MapConvertible marks record types (ORM models and friends) that can
// flatten themselves into a plain mapping for value binding.
type MapConvertible interface {
	ToMap() map[string]any
}

// Collection marks list-like containers that can materialize into an
// ordered sequence.
type Collection interface {
	All() []any
}

// Convert normalizes a model-like value: convertible records flatten to
// their map form, collections materialize to a slice, everything else
// passes through untouched. Nil stays nil.
func Convert(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case MapConvertible:
		return v.ToMap()
	case Collection:
		return v.All()
	default:
		return value
	}
}

package htmlattr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type pair struct {
	name       string
	value      any
	positional bool
}

// Attributes is an insertion-ordered attribute bag. Positional entries
// (added with Flag, or named with a bare numeric key) render as boolean
// attributes where the value doubles as the attribute name.
type Attributes struct {
	pairs []pair
}

// New returns an empty bag.
func New() *Attributes {
	return &Attributes{}
}

// FromMap builds a bag from a plain map. Keys are sorted so the resulting
// order, and therefore String output, is deterministic.
func FromMap(values map[string]any) *Attributes {
	attrs := New()
	if len(values) == 0 {
		return attrs
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		attrs.Set(key, values[key])
	}
	return attrs
}

// Set stores a named attribute, replacing an existing entry in place so the
// original position is kept. Numeric names degrade to positional entries.
func (a *Attributes) Set(name string, value any) *Attributes {
	if a == nil {
		return a
	}
	if _, err := strconv.Atoi(name); err == nil {
		return a.Flag(value)
	}
	for i := range a.pairs {
		if !a.pairs[i].positional && a.pairs[i].name == name {
			a.pairs[i].value = value
			return a
		}
	}
	a.pairs = append(a.pairs, pair{name: name, value: value})
	return a
}

// Flag appends a positional entry rendered as a boolean attribute, e.g.
// Flag("checked") serializes as `checked="checked" `.
func (a *Attributes) Flag(value any) *Attributes {
	if a == nil {
		return a
	}
	a.pairs = append(a.pairs, pair{value: value, positional: true})
	return a
}

// Get returns the value stored under a named attribute.
func (a *Attributes) Get(name string) (any, bool) {
	if a == nil {
		return nil, false
	}
	for _, entry := range a.pairs {
		if !entry.positional && entry.name == name {
			return entry.value, true
		}
	}
	return nil, false
}

// Len reports the number of entries, positional ones included.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.pairs)
}

// Merge folds another bag into this one: named entries replace in place,
// nested bags merge recursively, positional entries replace by index with
// any surplus appended. Returns the receiver for chaining.
func (a *Attributes) Merge(other *Attributes) *Attributes {
	if a == nil || other == nil {
		return a
	}
	posIndex := 0
	for _, entry := range other.pairs {
		if entry.positional {
			if idx, ok := a.positionalAt(posIndex); ok {
				a.pairs[idx].value = entry.value
			} else {
				a.pairs = append(a.pairs, entry)
			}
			posIndex++
			continue
		}

		if existing, ok := a.Get(entry.name); ok {
			if current, ok := existing.(*Attributes); ok {
				if incoming, ok := entry.value.(*Attributes); ok {
					current.Merge(incoming)
					continue
				}
			}
		}
		a.Set(entry.name, entry.value)
	}
	return a
}

func (a *Attributes) positionalAt(n int) (int, bool) {
	count := 0
	for i := range a.pairs {
		if !a.pairs[i].positional {
			continue
		}
		if count == n {
			return i, true
		}
		count++
	}
	return 0, false
}

// Clone returns a shallow copy; nested bags are cloned so merges into the
// copy do not leak back.
func (a *Attributes) Clone() *Attributes {
	if a == nil {
		return nil
	}
	clone := &Attributes{pairs: make([]pair, len(a.pairs))}
	copy(clone.pairs, a.pairs)
	for i := range clone.pairs {
		if nested, ok := clone.pairs[i].value.(*Attributes); ok {
			clone.pairs[i].value = nested.Clone()
		}
	}
	return clone
}

// String serializes the bag to an attribute string. Entries with a nil
// value are skipped, positional values render as boolean attributes, and
// every rendered entry carries a trailing space. Values are emitted raw:
// callers owning untrusted input should run the bag through Sanitize
// first, since no quoting or escaping happens here.
func (a *Attributes) String() string {
	if a == nil || len(a.pairs) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, entry := range a.pairs {
		if entry.value == nil {
			continue
		}
		value := formatValue(entry.value)
		name := entry.name
		if entry.positional {
			name = value
		}
		builder.WriteString(name)
		builder.WriteString(`="`)
		builder.WriteString(value)
		builder.WriteString(`" `)
	}
	return builder.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

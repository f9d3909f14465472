package htmlattr

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	valuePolicyOnce sync.Once
	valuePolicy     *bluemonday.Policy
)

// Sanitize returns a copy of the bag with every string value stripped of
// markup. The serializer itself emits values raw, so this is the opt-in
// seam for bags populated from untrusted input.
func Sanitize(attrs *Attributes) *Attributes {
	if attrs == nil {
		return nil
	}
	clean := attrs.Clone()
	for i := range clean.pairs {
		switch value := clean.pairs[i].value.(type) {
		case string:
			clean.pairs[i].value = SanitizeValue(value)
		case *Attributes:
			clean.pairs[i].value = Sanitize(value)
		}
	}
	return clean
}

// SanitizeValue strips markup from a single attribute value.
func SanitizeValue(raw string) string {
	return strings.TrimSpace(sanitizer().Sanitize(raw))
}

func sanitizer() *bluemonday.Policy {
	valuePolicyOnce.Do(func() {
		valuePolicy = bluemonday.StrictPolicy()
	})
	return valuePolicy
}

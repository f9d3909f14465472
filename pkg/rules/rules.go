package rules

// RuleSet is the validation triple a field contributes: rule expressions
// keyed by field name, display names for error interpolation, and per-rule
// message overrides.
type RuleSet struct {
	Rules      map[string]any
	Attributes map[string]string
	Messages   map[string]string
}

// Provider exposes a field's validation rules. A nil result means the
// field contributes nothing to the merged set.
type Provider interface {
	ValidationRules() *RuleSet
}

// Merge unions the rule sets of the supplied providers. Later providers
// win on key collisions in all three maps. The result always carries
// non-nil maps so callers can index without guarding.
func Merge(providers ...Provider) RuleSet {
	merged := RuleSet{
		Rules:      make(map[string]any),
		Attributes: make(map[string]string),
		Messages:   make(map[string]string),
	}

	for _, provider := range providers {
		if provider == nil {
			continue
		}
		set := provider.ValidationRules()
		if set == nil {
			continue
		}
		for key, rule := range set.Rules {
			merged.Rules[key] = rule
		}
		for key, attr := range set.Attributes {
			merged.Attributes[key] = attr
		}
		for key, message := range set.Messages {
			merged.Messages[key] = message
		}
	}
	return merged
}

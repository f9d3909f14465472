package rules_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/rules"
)

type stubField struct {
	set *rules.RuleSet
}

func (f stubField) ValidationRules() *rules.RuleSet { return f.set }

func TestMerge_LaterFieldWinsOnCollision(t *testing.T) {
	first := stubField{set: &rules.RuleSet{
		Rules:      map[string]any{"email": "required|email", "name": "required"},
		Attributes: map[string]string{"email": "Email address"},
		Messages:   map[string]string{"email.required": "We need your email"},
	}}
	second := stubField{set: &rules.RuleSet{
		Rules:      map[string]any{"email": "required|email|unique:users"},
		Attributes: map[string]string{"email": "Work email"},
	}}

	merged := rules.Merge(first, second)

	want := rules.RuleSet{
		Rules: map[string]any{
			"email": "required|email|unique:users",
			"name":  "required",
		},
		Attributes: map[string]string{"email": "Work email"},
		Messages:   map[string]string{"email.required": "We need your email"},
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("unexpected merge result (-want +got):\n%s", diff)
	}
}

func TestMerge_FieldsWithoutRulesContributeNothing(t *testing.T) {
	withRules := stubField{set: &rules.RuleSet{
		Rules: map[string]any{"title": "required|max:120"},
	}}
	withoutRules := stubField{}

	merged := rules.Merge(withoutRules, withRules, nil)

	if len(merged.Rules) != 1 {
		t.Fatalf("expected a single rule, got %v", merged.Rules)
	}
	if merged.Rules["title"] != "required|max:120" {
		t.Fatalf("unexpected rule value: %v", merged.Rules["title"])
	}
}

func TestMerge_EmptyInputYieldsUsableMaps(t *testing.T) {
	merged := rules.Merge()
	if merged.Rules == nil || merged.Attributes == nil || merged.Messages == nil {
		t.Fatal("merged set should carry non-nil maps")
	}
	if len(merged.Rules) != 0 {
		t.Fatalf("expected empty rules, got %v", merged.Rules)
	}
}

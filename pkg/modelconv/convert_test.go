package modelconv_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/modelconv"
)

type article struct {
	Title string
	Draft bool
}

func (a article) ToMap() map[string]any {
	return map[string]any{"title": a.Title, "draft": a.Draft}
}

type articleList []article

func (l articleList) All() []any {
	out := make([]any, len(l))
	for i, item := range l {
		out[i] = item
	}
	return out
}

func TestConvert_ConvertibleRecordFlattens(t *testing.T) {
	got := modelconv.Convert(article{Title: "Hello", Draft: true})

	want := map[string]any{"title": "Hello", "draft": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected conversion (-want +got):\n%s", diff)
	}
}

func TestConvert_CollectionMaterializes(t *testing.T) {
	got := modelconv.Convert(articleList{{Title: "One"}, {Title: "Two"}})

	items, ok := got.([]any)
	if !ok {
		t.Fatalf("expected []any, got %T", got)
	}
	if len(items) != 2 {
		t.Fatalf("expected two items, got %d", len(items))
	}
}

func TestConvert_PlainValuesPassThrough(t *testing.T) {
	for _, value := range []any{42, "title", map[string]any{"k": "v"}, []string{"a"}} {
		if got := modelconv.Convert(value); !cmp.Equal(got, value) {
			t.Fatalf("expected %v to pass through, got %v", value, got)
		}
	}
}

func TestConvert_PassThroughDoesNotAllocate(t *testing.T) {
	values := []any{"title", 42, map[string]any{"k": "v"}}

	for _, value := range values {
		value := value
		allocs := testing.AllocsPerRun(100, func() {
			_ = modelconv.Convert(value)
		})
		if allocs != 0 {
			t.Fatalf("pass-through of %T allocated %.0f times per run", value, allocs)
		}
	}
}

func TestConvert_NilStaysNil(t *testing.T) {
	if got := modelconv.Convert(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

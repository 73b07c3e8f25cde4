package cli

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/tinkerkit/graphson/pkg/graph"
	"github.com/tinkerkit/graphson/pkg/traversal"
)

func TestPlainifyVertex(t *testing.T) {
	got := plainify(graph.NewVertex(int64(1), "person"))
	want := map[string]any{"id": int64(1), "label": "person"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("plainify(vertex) = %v, want %v", got, want)
	}
}

func TestPlainifyEdge(t *testing.T) {
	e := &graph.Edge{
		Element: graph.Element{ID: int64(7), Label: "knows"},
		OutV:    graph.NewVertex(int64(1), ""),
		InV:     graph.NewVertex(int64(2), ""),
	}

	got := plainify(e)
	want := map[string]any{"id": int64(7), "label": "knows", "outV": int64(1), "inV": int64(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("plainify(edge) = %v, want %v", got, want)
	}
}

func TestPlainifyNested(t *testing.T) {
	tr := &graph.Traverser{Value: graph.NewVertex(int32(3), "software"), Bulk: 2}

	got := plainify([]any{tr, "plain"})
	want := []any{
		map[string]any{
			"value": map[string]any{"id": int32(3), "label": "software"},
			"bulk":  int64(2),
		},
		"plain",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("plainify(nested) = %v, want %v", got, want)
	}
}

func TestPlainifyUUID(t *testing.T) {
	u := uuid.MustParse("41d2e28a-20a4-4ab0-b379-d810dede3786")
	if got := plainify(u); got != "41d2e28a-20a4-4ab0-b379-d810dede3786" {
		t.Errorf("plainify(uuid) = %v, want string form", got)
	}
}

func TestRetag(t *testing.T) {
	c := testCLI()

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"Integral", json.Number("42"), int64(42)},
		{"Fractional", json.Number("3.14"), float64(3.14)},
		{"NestedMap", map[string]any{"n": json.Number("1")}, map[string]any{"n": int64(1)}},
		{"NestedSlice", []any{json.Number("1"), true}, []any{int64(1), true}},
		{"String", "hello", "hello"},
		{"Bool", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.retag(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("retag(%v) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestRetagLambda(t *testing.T) {
	c := testCLI()
	c.Config.LambdaLanguage = "gremlin-groovy"

	got := c.retag(map[string]any{"@lambda": "it.get()"})
	l, ok := got.(traversal.Lambda)
	if !ok {
		t.Fatalf("retag(@lambda) = %T, want traversal.Lambda", got)
	}
	script, lang := l()
	if script != "it.get()" || lang != "gremlin-groovy" {
		t.Errorf("lambda = (%q, %q), want the script with the configured language", script, lang)
	}

	// A second key means an ordinary object, not the lambda shorthand.
	plain := c.retag(map[string]any{"@lambda": "x", "other": true})
	if _, ok := plain.(map[string]any); !ok {
		t.Errorf("two-key object = %T, want plain map", plain)
	}
}

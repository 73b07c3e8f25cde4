package render

import (
	"strings"
	"testing"

	"github.com/tinkerkit/graphson/pkg/errors"
	"github.com/tinkerkit/graphson/pkg/graph"
)

func TestCollect(t *testing.T) {
	v1 := graph.NewVertex(1, "person")
	v2 := graph.NewVertex(2, "person")
	e := &graph.Edge{
		Element: graph.Element{ID: 7, Label: "knows"},
		OutV:    graph.NewVertex(1, ""),
		InV:     graph.NewVertex(2, ""),
	}

	tree := []any{
		v1,
		&graph.Traverser{Value: v2, Bulk: 1},
		map[string]any{"result": e},
		&graph.Path{Labels: [][]string{{"a"}}, Objects: []any{graph.NewVertex(3, "")}},
	}

	els := Collect(tree)
	if len(els.Vertices) != 3 {
		t.Errorf("collected %d vertices, want 3", len(els.Vertices))
	}
	if len(els.Edges) != 1 {
		t.Errorf("collected %d edges, want 1", len(els.Edges))
	}
}

func TestToDOT(t *testing.T) {
	t.Run("VerticesAndEdges", func(t *testing.T) {
		els := &Elements{
			Vertices: []*graph.Vertex{graph.NewVertex(1, "person")},
			Edges: []*graph.Edge{{
				Element: graph.Element{ID: 7, Label: "knows"},
				OutV:    graph.NewVertex(1, ""),
				InV:     graph.NewVertex(2, ""),
			}},
		}

		dot, err := ToDOT(els, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(dot, `"1" -> "2" [label="knows"];`) {
			t.Errorf("missing edge line in:\n%s", dot)
		}
		// Endpoint 2 had no collected vertex but must still be declared.
		if !strings.Contains(dot, `"2";`) {
			t.Errorf("missing implicit endpoint node in:\n%s", dot)
		}
	})

	t.Run("DetailedLabels", func(t *testing.T) {
		els := &Elements{Vertices: []*graph.Vertex{graph.NewVertex(1, "person")}}
		dot, err := ToDOT(els, Options{Detailed: true})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(dot, `label="1\nperson"`) {
			t.Errorf("missing detailed label in:\n%s", dot)
		}
	})

	t.Run("EmptyFails", func(t *testing.T) {
		_, err := ToDOT(&Elements{}, Options{})
		if !errors.Is(err, errors.ErrCodeInvalidGraph) {
			t.Errorf("err = %v, want INVALID_GRAPH", err)
		}
	})
}

package graph

import "testing"

func TestStrings(t *testing.T) {
	tests := []struct {
		name string
		val  interface{ String() string }
		want string
	}{
		{"Vertex", NewVertex(1, "person"), "v[1]"},
		{"Edge", &Edge{Element{ID: 7, Label: "knows"}, NewVertex(1, ""), NewVertex(2, "")}, "e[7][1-knows->2]"},
		{"VertexProperty", &VertexProperty{Element{ID: 3, Label: "name"}, "marko"}, "vp[name->marko]"},
		{"Property", &Property{Key: "weight", Value: 0.5}, "p[weight->0.5]"},
		{"Traverser", &Traverser{Value: "x", Bulk: 2}, "traverser[x]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathAt(t *testing.T) {
	p := &Path{
		Labels:  [][]string{{}, {"a", "b"}, {"c"}},
		Objects: []any{1, 2, 3},
	}

	if got := p.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	tests := []struct {
		label string
		want  any
		found bool
	}{
		{"a", 2, true},
		{"b", 2, true},
		{"c", 3, true},
		{"missing", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := p.At(tt.label)
			if ok != tt.found {
				t.Fatalf("At(%q) found = %v, want %v", tt.label, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("At(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

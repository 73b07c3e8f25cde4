// Package graph defines the element value types returned by a graph-processing
// service: vertices, edges, properties, paths, and traversers.
//
// These are plain data carriers with no behavior of their own. The attribute
// names and defaults form a stable contract with the GraphSON codec in
// [github.com/tinkerkit/graphson/pkg/graphson]: equality and identity logic
// downstream may depend on the exact label defaults, so they are never
// normalized here.
package graph

import (
	"fmt"
	"slices"
)

// Element is the common identity pair shared by vertices, edges, and
// vertex properties. IDs are opaque to the client; the server decides
// whether they are numbers, strings, or UUIDs.
type Element struct {
	ID    any
	Label string
}

// Vertex is a graph vertex. A vertex decoded from a server response without
// an explicit label carries the empty string, not a placeholder name.
type Vertex struct {
	Element
}

// NewVertex creates a vertex with the given id and label.
func NewVertex(id any, label string) *Vertex {
	return &Vertex{Element{ID: id, Label: label}}
}

func (v *Vertex) String() string {
	return fmt.Sprintf("v[%v]", v.ID)
}

// Edge is a directed edge between two vertices. The endpoint vertices are
// usually shells carrying only an id: server responses reference endpoints
// by id, not by value.
type Edge struct {
	Element
	OutV *Vertex
	InV  *Vertex
}

func (e *Edge) String() string {
	return fmt.Sprintf("e[%v][%v-%s->%v]", e.ID, e.OutV.ID, e.Label, e.InV.ID)
}

// VertexProperty is a property attached to a vertex. Unlike Property it has
// its own identity and label.
type VertexProperty struct {
	Element
	Value any
}

func (vp *VertexProperty) String() string {
	return fmt.Sprintf("vp[%s->%v]", vp.Label, vp.Value)
}

// Property is a key/value pair attached to an edge or vertex property.
type Property struct {
	Key   string
	Value any
}

func (p *Property) String() string {
	return fmt.Sprintf("p[%s->%v]", p.Key, p.Value)
}

// Path is the ordered trace of a traversal. Labels[i] holds the step labels
// for Objects[i]; the two slices are always the same length and their
// pairing is significant.
type Path struct {
	Labels  [][]string
	Objects []any
}

// At returns the first object whose step labels contain label.
func (p *Path) At(label string) (any, bool) {
	for i, ls := range p.Labels {
		if slices.Contains(ls, label) {
			return p.Objects[i], true
		}
	}
	return nil, false
}

// Len returns the number of steps in the path.
func (p *Path) Len() int { return len(p.Objects) }

func (p *Path) String() string {
	return fmt.Sprintf("path[%v]", p.Objects)
}

// Traverser pairs a traversal result with its bulk: the number of times the
// same value occurred, collapsed server-side into a single message.
type Traverser struct {
	Value any
	Bulk  int64
}

func (t *Traverser) String() string {
	return fmt.Sprintf("traverser[%v]", t.Value)
}

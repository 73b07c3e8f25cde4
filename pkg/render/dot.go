// Package render turns decoded graph elements into Graphviz visualizations.
//
// The input is whatever a decode of a server response produced: vertices and
// edges collected from the tree. [Collect] gathers them, [ToDOT] lays them
// out as a DOT digraph, and [RenderSVG] rasterizes the DOT text through the
// embedded Graphviz engine (no external binary required).
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/tinkerkit/graphson/pkg/errors"
	"github.com/tinkerkit/graphson/pkg/graph"
)

// Elements is a decoded response's graph content.
type Elements struct {
	Vertices []*graph.Vertex
	Edges    []*graph.Edge
}

// Collect walks a decoded value tree and gathers every vertex and edge it
// contains, descending through slices, maps, paths, and traversers.
func Collect(v any) *Elements {
	els := &Elements{}
	collect(v, els)
	return els
}

func collect(v any, els *Elements) {
	switch val := v.(type) {
	case *graph.Vertex:
		els.Vertices = append(els.Vertices, val)
	case *graph.Edge:
		els.Edges = append(els.Edges, val)
	case *graph.Path:
		for _, obj := range val.Objects {
			collect(obj, els)
		}
	case *graph.Traverser:
		collect(val.Value, els)
	case []any:
		for _, item := range val {
			collect(item, els)
		}
	case map[string]any:
		for _, item := range val {
			collect(item, els)
		}
	}
}

// Options configures DOT generation.
type Options struct {
	// Detailed includes element labels alongside ids in node text.
	Detailed bool
}

// ToDOT converts collected elements to Graphviz DOT format. Vertices become
// boxes; edges draw their endpoints even when no matching vertex was
// collected, so an edge-only response still renders.
func ToDOT(els *Elements, opts Options) (string, error) {
	if len(els.Vertices) == 0 && len(els.Edges) == 0 {
		return "", errors.New(errors.ErrCodeInvalidGraph, "no vertices or edges to render")
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	seen := map[string]bool{}
	for _, v := range els.Vertices {
		id := fmt.Sprint(v.ID)
		seen[id] = true
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, vertexLabel(v, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range els.Edges {
		out := fmt.Sprint(e.OutV.ID)
		in := fmt.Sprint(e.InV.ID)
		for _, id := range []string{out, in} {
			if !seen[id] {
				seen[id] = true
				fmt.Fprintf(&buf, "  %q;\n", id)
			}
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", out, in, e.Label)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func vertexLabel(v *graph.Vertex, detailed bool) string {
	id := fmt.Sprint(v.ID)
	if !detailed || v.Label == "" {
		return id
	}
	return id + "\n" + v.Label
}

// RenderSVG renders DOT text to SVG using the embedded Graphviz engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer func() { _ = g.Close() }()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

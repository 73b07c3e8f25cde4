// Package pkg provides the core libraries for GraphSON translation.
//
// # Overview
//
// Graphson translates between in-memory graph and traversal values and the
// type-tagged JSON wire format spoken by remote graph-processing services.
// The pkg directory is organized into five main areas:
//
//  1. [graphson] - The codec itself (mapper, registry, per-type units)
//  2. [graph] - Graph element types (vertices, edges, paths, traversers)
//  3. [traversal] - Traversal machinery (bytecode, predicates, enums, lambdas)
//  4. [render] - Graphviz visualization of decoded elements
//  5. [observability] - Hook points for codec instrumentation
//
// # Architecture
//
// The typical data flow through graphson:
//
//	Domain values (graph / traversal packages)
//	         ↓
//	    [graphson] package (encode: registry dispatch + envelope wrapping)
//	         ↓
//	    Compact type-tagged JSON text
//	         ↓
//	    [graphson] package (decode: tag lookup + payload reconstruction)
//	         ↓
//	    Domain values again
//
// # Quick Start
//
// Encode a traversal and decode a server response:
//
//	import (
//	    "github.com/tinkerkit/graphson/pkg/graphson"
//	    "github.com/tinkerkit/graphson/pkg/traversal"
//	)
//
//	bc := traversal.NewBytecode()
//	bc.AddStep("V").AddStep("has", "name", "marko")
//
//	m := graphson.NewMapper()
//	text, err := m.Write(bc)
//	if err != nil {
//	    return err
//	}
//
//	result, err := m.Read(responseText)
//	if err != nil {
//	    return err
//	}
//
// Sessions are cheap to construct and safe for concurrent use; build one per
// custom-type configuration and share it.
package pkg

package cli

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/tinkerkit/graphson/pkg/graph"
	"github.com/tinkerkit/graphson/pkg/traversal"
)

// plainify flattens a decoded domain tree into JSON-marshalable plain
// values: elements become ordinary objects, numerics keep their width, and
// everything else passes through. This is lossy by design — the envelope
// tags are gone — which is exactly what "decode to plain JSON" means.
func plainify(v any) any {
	switch val := v.(type) {
	case *graph.Vertex:
		return map[string]any{"id": plainify(val.ID), "label": val.Label}
	case *graph.Edge:
		return map[string]any{
			"id":    plainify(val.ID),
			"label": val.Label,
			"outV":  plainify(val.OutV.ID),
			"inV":   plainify(val.InV.ID),
		}
	case *graph.VertexProperty:
		return map[string]any{"id": plainify(val.ID), "label": val.Label, "value": plainify(val.Value)}
	case *graph.Property:
		return map[string]any{"key": val.Key, "value": plainify(val.Value)}
	case *graph.Path:
		return map[string]any{"labels": val.Labels, "objects": plainifySlice(val.Objects)}
	case *graph.Traverser:
		return map[string]any{"value": plainify(val.Value), "bulk": val.Bulk}
	case uuid.UUID:
		return val.String()
	case []any:
		return plainifySlice(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = plainify(item)
		}
		return out
	default:
		return v
	}
}

func plainifySlice(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = plainify(item)
	}
	return out
}

// lambdaKey marks a lambda script in plain encode input: a single-key
// object {"@lambda":"x: x + 1"} becomes a full Lambda envelope, since plain
// JSON has no way to say "this string is a script".
const lambdaKey = "@lambda"

// retag prepares a plain JSON tree (parsed with json.Number) for encoding:
// integral numbers become int64 and fractional ones float64, so the codec
// wraps them in Int64/Double envelopes, and "@lambda" objects become lambda
// values in the configured language. Everything else keeps its shape.
func (c *CLI) retag(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = c.retag(item)
		}
		return out
	case map[string]any:
		if script, ok := val[lambdaKey].(string); ok && len(val) == 1 {
			return traversal.NewLambda(script, c.Config.LambdaLanguage)
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = c.retag(item)
		}
		return out
	default:
		return v
	}
}

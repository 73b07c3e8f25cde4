// Package graphson implements the GraphSON wire format: a bidirectional
// codec between domain values (graph elements, traversal bytecode,
// predicates, bindings, enums, lambdas, numerics) and type-tagged JSON.
//
// Every value crossing the wire is either a plain JSON scalar/collection or
// an envelope of the form
//
//	{"@type":"<namespace>:<TypeName>","@value":<payload>}
//
// Encoding walks the value tree, consulting a registry of per-type encoders;
// decoding walks the parsed JSON tree, resolving "@type" tags through the
// decoder registry. Both directions are pure, synchronous transforms with no
// shared mutable state beyond the registry, which is frozen at mapper
// construction: a Mapper may be shared across goroutines.
//
// # Permissive edges
//
// Two lookup failures deliberately do not fail. A value with no registered
// encoder passes through unchanged (the zoo of JSON-primitive types needs no
// tagging, and foreign values degrade to best-effort output), and an
// envelope with an unregistered tag decodes structurally as a plain map.
// Both cases are reported through [pkg/observability] hooks so callers who
// consider passthrough a bug can observe it without the codec growing a
// failure path.
//
// # Customization
//
//	m := graphson.NewMapper(
//	    graphson.WithDecoder("g:Vertex", myVertexDecoder),
//	)
//
// Overrides replace default entries per key and never leak into other
// mappers or the process-wide defaults.
package graphson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/tinkerkit/graphson/pkg/errors"
	"github.com/tinkerkit/graphson/pkg/observability"
)

// Envelope keys and the default tag namespace. The keys are literal and
// case-sensitive; peer implementations match them byte for byte.
const (
	TypeKey          = "@type"
	ValueKey         = "@value"
	DefaultNamespace = "g"
)

// Mapper is a codec session: an immutable registry snapshot, the envelope
// namespace, and the recursive encode/decode tree-walkers.
type Mapper struct {
	reg *Registry
	ns  string
}

// Option customizes a Mapper at construction time.
type Option func(*Mapper)

// WithEncoder overrides the encoder for the concrete type of prototype.
func WithEncoder(prototype any, fn EncodeFunc) Option {
	return func(m *Mapper) { m.reg.RegisterEncoder(prototype, fn) }
}

// WithCapabilityEncoder overrides the encoder for an interface type,
// given as a nil interface pointer such as (*traversal.Enum)(nil).
func WithCapabilityEncoder(ifacePtr any, fn EncodeFunc) Option {
	return func(m *Mapper) { m.reg.RegisterCapabilityEncoder(ifacePtr, fn) }
}

// WithDecoder overrides the decoder for a wire tag.
func WithDecoder(tag string, fn DecodeFunc) Option {
	return func(m *Mapper) { m.reg.RegisterDecoder(tag, fn) }
}

// WithNamespace sets the namespace this session's encoders tag envelopes
// with, replacing the default "g". Decoding is unaffected: registered tags
// carry their namespace already.
func WithNamespace(ns string) Option {
	return func(m *Mapper) { m.ns = ns }
}

// NewMapper creates a Mapper from a copy of the default registry with the
// given overrides layered on top. The defaults are never mutated.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{reg: defaults.clone(), ns: DefaultNamespace}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Encode converts a domain value into its wire tree.
//
// Dispatch order: exact type, then capability interfaces in registration
// order, then element-wise slice/array and map handling, then passthrough.
// Map keys must encode to strings, since JSON objects cannot carry anything
// else as a key.
func (m *Mapper) Encode(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	t := reflect.TypeOf(v)
	if fn, ok := m.reg.lookupEncoder(t); ok {
		return fn(v, m)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, err := m.Encode(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil

	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			ek, err := m.Encode(iter.Key().Interface())
			if err != nil {
				return nil, err
			}
			ks, ok := ek.(string)
			if !ok {
				return nil, errors.New(errors.ErrCodeUnsupportedKey,
					"map key %v (%T) does not encode to a string", iter.Key().Interface(), ek)
			}
			evv, err := m.Encode(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[ks] = evv
		}
		return out, nil

	case reflect.Struct, reflect.Pointer, reflect.Func, reflect.Chan:
		// Unknown non-primitive: passthrough is the documented contract,
		// but surface it so callers can treat it as a defect if they want.
		observability.Codec().OnPassthrough(fmt.Sprintf("%T", v))
	}

	return v, nil
}

// Decode converts a parsed JSON tree back into domain values.
//
// A map carrying a registered "@type" tag is delegated to its decoder with
// the unwrapped "@value" payload (nil when omitted). Unknown tags fall back
// to structural map decoding. Sequences decode element-wise; scalars pass
// through.
func (m *Mapper) Decode(w any) (any, error) {
	switch val := w.(type) {
	case map[string]any:
		if tag, ok := val[TypeKey].(string); ok {
			if fn, ok := m.reg.decoders[tag]; ok {
				return fn(val[ValueKey], m)
			}
			observability.Codec().OnUnknownTag(tag)
		}
		// Plain map: keys of a parsed JSON object are already strings,
		// so only the values need the recursive walk.
		out := make(map[string]any, len(val))
		for k, v := range val {
			dv, err := m.Decode(v)
			if err != nil {
				return nil, err
			}
			out[k] = dv
		}
		return out, nil

	case []any:
		out := make([]any, len(val))
		for i, v := range val {
			dv, err := m.Decode(v)
			if err != nil {
				return nil, err
			}
			out[i] = dv
		}
		return out, nil

	default:
		return w, nil
	}
}

// TypedValue wraps value in an envelope under the session's namespace
// ("g" unless [WithNamespace] changed it). The "@value" key is omitted when
// value is nil.
func (m *Mapper) TypedValue(name string, value any) map[string]any {
	return m.TypedValueNS(m.ns, name, value)
}

// TypedValueNS wraps value in an envelope under an explicit namespace.
func (m *Mapper) TypedValueNS(namespace, name string, value any) map[string]any {
	out := map[string]any{TypeKey: namespace + ":" + name}
	if value != nil {
		out[ValueKey] = value
	}
	return out
}

// Write encodes v and serializes the result as compact JSON: no whitespace
// after separators, no HTML escaping, no trailing newline. Peers compare
// this output byte for byte.
func (m *Mapper) Write(v any) (string, error) {
	d, err := m.Encode(v)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidJSON, err, "serialize wire value")
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Read parses GraphSON text and decodes the resulting tree. Numbers are
// parsed as json.Number so the numeric decoders own width truncation
// instead of losing precision to float64.
func (m *Mapper) Read(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "parse GraphSON text")
	}
	return m.Decode(tree)
}

// payloadMap asserts that an envelope payload is a JSON object.
func payloadMap(payload any) (map[string]any, error) {
	d, ok := payload.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "payload is %T, want object", payload)
	}
	return d, nil
}

// requireField fetches a required payload field by name.
func requireField(d map[string]any, key string) (any, error) {
	v, ok := d[key]
	if !ok {
		return nil, errors.New(errors.ErrCodeMissingField, "payload lacks %q", key)
	}
	return v, nil
}

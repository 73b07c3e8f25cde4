package graphson

import (
	"reflect"
)

// EncodeFunc turns a domain value into its wire form: usually an envelope
// map, but bare scalars are allowed (booleans bypass the envelope entirely).
// The mapper is passed in so encoders can recursively encode nested values.
type EncodeFunc func(v any, m *Mapper) (any, error)

// DecodeFunc reconstructs a domain value from an envelope payload. The
// payload is the raw "@value" content, nil when the envelope omitted it.
type DecodeFunc func(payload any, m *Mapper) (any, error)

// Registry holds the two dispatch tables of the codec: domain type to
// encoder, and wire tag to decoder.
//
// Encode dispatch is deterministic: the exact-type table is consulted first,
// then the capability entries in registration order. Registering twice for
// the same type, capability, or tag replaces the earlier entry; a capability
// replacement keeps its original position so override never reshuffles
// dispatch order.
type Registry struct {
	exact        map[reflect.Type]EncodeFunc
	capabilities []capabilityEncoder
	decoders     map[string]DecodeFunc
}

type capabilityEncoder struct {
	iface reflect.Type
	fn    EncodeFunc
}

func newRegistry() *Registry {
	return &Registry{
		exact:    make(map[reflect.Type]EncodeFunc),
		decoders: make(map[string]DecodeFunc),
	}
}

// RegisterEncoder maps the concrete type of prototype to fn.
func (r *Registry) RegisterEncoder(prototype any, fn EncodeFunc) {
	r.exact[reflect.TypeOf(prototype)] = fn
}

// RegisterCapabilityEncoder maps an interface to fn. The argument is a nil
// pointer to the interface type, e.g. (*traversal.Enum)(nil). Capability
// entries only match values whose concrete type has no exact entry.
func (r *Registry) RegisterCapabilityEncoder(ifacePtr any, fn EncodeFunc) {
	iface := reflect.TypeOf(ifacePtr).Elem()
	for i, ce := range r.capabilities {
		if ce.iface == iface {
			r.capabilities[i].fn = fn
			return
		}
	}
	r.capabilities = append(r.capabilities, capabilityEncoder{iface: iface, fn: fn})
}

// RegisterDecoder maps a wire tag (e.g. "g:Vertex") to fn.
func (r *Registry) RegisterDecoder(tag string, fn DecodeFunc) {
	r.decoders[tag] = fn
}

func (r *Registry) lookupEncoder(t reflect.Type) (EncodeFunc, bool) {
	if fn, ok := r.exact[t]; ok {
		return fn, true
	}
	for _, ce := range r.capabilities {
		if t.Implements(ce.iface) {
			return ce.fn, true
		}
	}
	return nil, false
}

func (r *Registry) clone() *Registry {
	out := &Registry{
		exact:        make(map[reflect.Type]EncodeFunc, len(r.exact)),
		capabilities: make([]capabilityEncoder, len(r.capabilities)),
		decoders:     make(map[string]DecodeFunc, len(r.decoders)),
	}
	for t, fn := range r.exact {
		out.exact[t] = fn
	}
	copy(out.capabilities, r.capabilities)
	for tag, fn := range r.decoders {
		out.decoders[tag] = fn
	}
	return out
}

// defaults is the process-wide registry every Mapper starts from. It is
// built once by the explicit registration calls below and treated as
// immutable afterwards; mappers clone it before layering overrides.
var defaults = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := newRegistry()
	registerNumbers(r)
	registerElements(r)
	registerProcess(r)
	registerLambdas(r)
	registerUUID(r)
	return r
}

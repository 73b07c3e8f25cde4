package graphson

import (
	"github.com/tinkerkit/graphson/pkg/traversal"
)

// Traversal process units: bytecode, strategies, predicates, bindings, and
// enum constants. Encode-only; the server never returns these.
func registerProcess(r *Registry) {
	// *Bytecode also satisfies traversal.Traversal; the exact entry wins,
	// the capability entry catches every other Traversal implementation.
	r.RegisterEncoder(&traversal.Bytecode{}, encodeBytecode)
	r.RegisterCapabilityEncoder((*traversal.Traversal)(nil), encodeTraversal)

	r.RegisterEncoder(&traversal.Strategy{}, encodeStrategy)
	r.RegisterEncoder(&traversal.P{}, encodeP)
	r.RegisterEncoder(&traversal.Binding{}, encodeBinding)
	r.RegisterCapabilityEncoder((*traversal.Enum)(nil), encodeEnum)
}

func encodeTraversal(v any, m *Mapper) (any, error) {
	return encodeBytecode(v.(traversal.Traversal).Bytecode(), m)
}

// encodeBytecode emits the two instruction arrays under "source" and
// "step". An empty list omits its key entirely; peers distinguish a missing
// key from an empty array, so {"source":[]} would not be equivalent.
func encodeBytecode(v any, m *Mapper) (any, error) {
	b := v.(*traversal.Bytecode)

	out := map[string]any{}
	if len(b.SourceInstructions) > 0 {
		insts, err := encodeInstructions(b.SourceInstructions, m)
		if err != nil {
			return nil, err
		}
		out["source"] = insts
	}
	if len(b.StepInstructions) > 0 {
		insts, err := encodeInstructions(b.StepInstructions, m)
		if err != nil {
			return nil, err
		}
		out["step"] = insts
	}
	return m.TypedValue("Bytecode", out), nil
}

// encodeInstructions encodes each instruction as [op, arg, arg, ...]. The
// operator name stays a bare string; only arguments are recursively encoded.
func encodeInstructions(insts []traversal.Instruction, m *Mapper) ([]any, error) {
	out := make([]any, len(insts))
	for i, inst := range insts {
		enc := make([]any, 0, len(inst.Args)+1)
		enc = append(enc, inst.Op)
		for _, arg := range inst.Args {
			ea, err := m.Encode(arg)
			if err != nil {
				return nil, err
			}
			enc = append(enc, ea)
		}
		out[i] = enc
	}
	return out, nil
}

// encodeStrategy tags the envelope with the strategy's own name rather than
// a fixed type constant.
func encodeStrategy(v any, m *Mapper) (any, error) {
	s := v.(*traversal.Strategy)

	config := s.Configuration
	if config == nil {
		config = map[string]any{}
	}
	enc, err := m.Encode(config)
	if err != nil {
		return nil, err
	}
	return m.TypedValue(s.Name, enc), nil
}

// encodeP emits "value" as a bare operand for single-operand predicates and
// as a two-element array when a second operand is present. Both shapes are
// part of the wire contract.
func encodeP(v any, m *Mapper) (any, error) {
	p := v.(*traversal.P)

	value, err := m.Encode(p.Value)
	if err != nil {
		return nil, err
	}
	if p.Other != nil {
		other, err := m.Encode(p.Other)
		if err != nil {
			return nil, err
		}
		value = []any{value, other}
	}

	return m.TypedValue("P", map[string]any{
		"predicate": p.Operator,
		"value":     value,
	}), nil
}

func encodeBinding(v any, m *Mapper) (any, error) {
	b := v.(*traversal.Binding)

	value, err := m.Encode(b.Value)
	if err != nil {
		return nil, err
	}
	return m.TypedValue("Binding", map[string]any{
		"key":   b.Key,
		"value": value,
	}), nil
}

// symbolMap reverses the trailing-underscore convention that keeps enum
// member and type identifiers from clashing with reserved words in other
// host grammars. Identifiers outside this table pass through unchanged.
var symbolMap = map[string]string{
	"global_": "global",
	"as_":     "as",
	"in_":     "in",
	"and_":    "and",
	"or_":     "or",
	"is_":     "is",
	"not_":    "not",
	"from_":   "from",
	"set_":    "set",
	"list_":   "list",
	"all_":    "all",
}

func unmangleKeyword(symbol string) string {
	if bare, ok := symbolMap[symbol]; ok {
		return bare
	}
	return symbol
}

// encodeEnum uses the unmangled type name as the tag and the unmangled
// member name as the bare payload string.
func encodeEnum(v any, m *Mapper) (any, error) {
	e := v.(traversal.Enum)
	return m.TypedValue(unmangleKeyword(e.EnumType()), unmangleKeyword(e.EnumName())), nil
}

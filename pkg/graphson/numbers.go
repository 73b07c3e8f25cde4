package graphson

import (
	"encoding/json"

	"github.com/tinkerkit/graphson/pkg/errors"
)

// Numeric codec units. Four width/kind variants, each owning a fixed tag.
// Width truncation on decode is deliberate: the wire payload is a plain JSON
// number and the tag alone decides the reconstructed Go type.
func registerNumbers(r *Registry) {
	// Booleans are never numeric: they bypass the envelope and hit the
	// wire as bare JSON booleans. Registered ahead of the numeric kinds
	// so no width variant can ever claim them.
	r.RegisterEncoder(false, encodeBare)

	r.RegisterEncoder(int32(0), encodeInt32)
	r.RegisterEncoder(int64(0), encodeInt64)
	r.RegisterEncoder(int(0), encodeInt64)
	r.RegisterEncoder(float32(0), encodeFloat)
	r.RegisterEncoder(float64(0), encodeDouble)

	r.RegisterDecoder("g:Int32", decodeInt32)
	r.RegisterDecoder("g:Int64", decodeInt64)
	r.RegisterDecoder("g:Float", decodeFloat)
	r.RegisterDecoder("g:Double", decodeDouble)
}

func encodeBare(v any, _ *Mapper) (any, error) {
	return v, nil
}

func encodeInt32(v any, m *Mapper) (any, error) {
	return m.TypedValue("Int32", v), nil
}

// encodeInt64 covers both int and int64; Go's int is transmitted at full
// 64-bit width rather than guessing at the peer's platform word size.
func encodeInt64(v any, m *Mapper) (any, error) {
	return m.TypedValue("Int64", v), nil
}

func encodeFloat(v any, m *Mapper) (any, error) {
	return m.TypedValue("Float", v), nil
}

func encodeDouble(v any, m *Mapper) (any, error) {
	return m.TypedValue("Double", v), nil
}

func decodeInt32(payload any, _ *Mapper) (any, error) {
	n, err := toInt64(payload)
	if err != nil {
		return nil, err
	}
	return int32(n), nil
}

func decodeInt64(payload any, _ *Mapper) (any, error) {
	return toInt64(payload)
}

func decodeFloat(payload any, _ *Mapper) (any, error) {
	f, err := toFloat64(payload)
	if err != nil {
		return nil, err
	}
	return float32(f), nil
}

func decodeDouble(payload any, _ *Mapper) (any, error) {
	return toFloat64(payload)
}

// toInt64 normalizes the number representations a payload can arrive in:
// json.Number from Read, float64 from a vanilla json.Unmarshal tree, or a
// native integer from a hand-built tree.
func toInt64(payload any) (int64, error) {
	switch n := payload.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "integer payload %q", n.String())
		}
		return i, nil
	case float64:
		return int64(n), nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidInput, "numeric payload is %T, want number", payload)
	}
}

func toFloat64(payload any) (float64, error) {
	switch n := payload.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "float payload %q", n.String())
		}
		return f, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidInput, "numeric payload is %T, want number", payload)
	}
}

package graphson

import (
	"github.com/google/uuid"

	"github.com/tinkerkit/graphson/pkg/errors"
)

// g:UUID carries element ids on servers configured for UUID identifiers.
// The payload is the canonical 8-4-4-4-12 string form.
func registerUUID(r *Registry) {
	r.RegisterEncoder(uuid.UUID{}, encodeUUID)
	r.RegisterDecoder("g:UUID", decodeUUID)
}

func encodeUUID(v any, m *Mapper) (any, error) {
	return m.TypedValue("UUID", v.(uuid.UUID).String()), nil
}

func decodeUUID(payload any, _ *Mapper) (any, error) {
	s, ok := payload.(string)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidUUID, "uuid payload is %T, want string", payload)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidUUID, err, "parse uuid %q", s)
	}
	return u, nil
}

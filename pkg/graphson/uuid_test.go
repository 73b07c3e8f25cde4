package graphson

import (
	"testing"

	"github.com/google/uuid"

	"github.com/tinkerkit/graphson/pkg/errors"
)

func TestUUIDRoundTrip(t *testing.T) {
	m := NewMapper()

	id := uuid.MustParse("41d2e28a-20a4-4ab0-b379-d810dede3786")
	text, err := m.Write(id)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"@type":"g:UUID","@value":"41d2e28a-20a4-4ab0-b379-d810dede3786"}`
	if text != want {
		t.Errorf("Write = %s, want %s", text, want)
	}

	got, err := m.Read(text)
	if err != nil {
		t.Fatal(err)
	}
	if got != id {
		t.Errorf("Read = %v, want %v", got, id)
	}
}

func TestUUIDDecodeErrors(t *testing.T) {
	m := NewMapper()

	_, err := m.Read(`{"@type":"g:UUID","@value":"not-a-uuid"}`)
	if !errors.Is(err, errors.ErrCodeInvalidUUID) {
		t.Errorf("malformed payload: err = %v, want INVALID_UUID", err)
	}

	_, err = m.Read(`{"@type":"g:UUID","@value":7}`)
	if !errors.Is(err, errors.ErrCodeInvalidUUID) {
		t.Errorf("non-string payload: err = %v, want INVALID_UUID", err)
	}
}

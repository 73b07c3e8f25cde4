package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrCodeMissingField, "payload lacks %q", "id")
	if got, want := plain.Error(), `MISSING_FIELD: payload lacks "id"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := stderrors.New("unexpected EOF")
	wrapped := Wrap(ErrCodeInvalidJSON, cause, "read GraphSON text")
	if got, want := wrapped.Error(), "INVALID_JSON: read GraphSON text: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
}

func TestCodeInspection(t *testing.T) {
	err := New(ErrCodeInvalidLambda, "no parameter list")

	if !Is(err, ErrCodeInvalidLambda) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if got := GetCode(err); got != ErrCodeInvalidLambda {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidLambda)
	}

	// Codes survive further fmt wrapping.
	outer := fmt.Errorf("encode value: %w", err)
	if !Is(outer, ErrCodeInvalidLambda) {
		t.Error("Is should unwrap through fmt.Errorf chains")
	}

	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidUUID, "bad uuid")); got != "bad uuid" {
		t.Errorf("UserMessage = %q, want %q", got, "bad uuid")
	}
	if got := UserMessage(stderrors.New("boom")); got != "boom" {
		t.Errorf("UserMessage = %q, want %q", got, "boom")
	}
}

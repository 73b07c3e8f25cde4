package traversal

import (
	"reflect"
	"testing"
)

func TestBytecodeBuilder(t *testing.T) {
	b := NewBytecode().
		AddSource("withStrategies", "ReadOnlyStrategy").
		AddStep("V").
		AddStep("has", "name", "marko")

	if got := len(b.SourceInstructions); got != 1 {
		t.Fatalf("source instructions = %d, want 1", got)
	}
	if got := len(b.StepInstructions); got != 2 {
		t.Fatalf("step instructions = %d, want 2", got)
	}

	want := Instruction{Op: "has", Args: []any{"name", "marko"}}
	if !reflect.DeepEqual(b.StepInstructions[1], want) {
		t.Errorf("step[1] = %+v, want %+v", b.StepInstructions[1], want)
	}

	// *Bytecode is its own Traversal.
	var tr Traversal = b
	if tr.Bytecode() != b {
		t.Error("Bytecode() should return the receiver")
	}
}

func TestBytecodeChaining(t *testing.T) {
	b := NewBytecode()
	if b.AddStep("V") != b || b.AddSource("withSack", 0) != b {
		t.Error("AddStep and AddSource should return the receiver for chaining")
	}
}

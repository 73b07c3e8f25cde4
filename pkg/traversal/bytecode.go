// Package traversal defines the value types that make up a deferred traversal
// program: bytecode instructions, predicates, bindings, strategies, enum
// constants, and lambda descriptors.
//
// Nothing in this package executes a traversal. The types describe one, and
// the GraphSON codec in [github.com/tinkerkit/graphson/pkg/graphson] turns
// them into the wire form a remote graph-processing service expects.
package traversal

// Instruction is a single bytecode operation: an operator name and its
// ordered arguments. Arguments may be any encodable value, including nested
// bytecode.
type Instruction struct {
	Op   string
	Args []any
}

// Bytecode is an ordered traversal program split into source instructions
// (configuration applied to the traversal source, e.g. withStrategies) and
// step instructions (the traversal steps themselves).
type Bytecode struct {
	SourceInstructions []Instruction
	StepInstructions   []Instruction
}

// NewBytecode creates an empty bytecode program.
func NewBytecode() *Bytecode {
	return &Bytecode{}
}

// AddSource appends a source instruction.
func (b *Bytecode) AddSource(op string, args ...any) *Bytecode {
	b.SourceInstructions = append(b.SourceInstructions, Instruction{Op: op, Args: args})
	return b
}

// AddStep appends a step instruction.
func (b *Bytecode) AddStep(op string, args ...any) *Bytecode {
	b.StepInstructions = append(b.StepInstructions, Instruction{Op: op, Args: args})
	return b
}

// Traversal is anything that carries a bytecode program. The codec encodes a
// Traversal by encoding its bytecode, so partially-built traversal wrappers
// serialize the same way as raw bytecode.
type Traversal interface {
	Bytecode() *Bytecode
}

// Bytecode returns the program itself, making *Bytecode the trivial
// Traversal.
func (b *Bytecode) Bytecode() *Bytecode { return b }

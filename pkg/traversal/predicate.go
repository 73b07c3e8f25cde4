package traversal

// P is a predicate applied to a traversal value: an operator name and one or
// two operands. Other is nil for single-operand predicates; the codec emits
// a bare value in that case and a two-element array otherwise.
type P struct {
	Operator string
	Value    any
	Other    any
}

// Standard single-operand predicates.

func Eq(v any) *P  { return &P{Operator: "eq", Value: v} }
func Neq(v any) *P { return &P{Operator: "neq", Value: v} }
func Lt(v any) *P  { return &P{Operator: "lt", Value: v} }
func Lte(v any) *P { return &P{Operator: "lte", Value: v} }
func Gt(v any) *P  { return &P{Operator: "gt", Value: v} }
func Gte(v any) *P { return &P{Operator: "gte", Value: v} }

// Within matches values contained in the given collection.
func Within(vs ...any) *P { return &P{Operator: "within", Value: vs} }

// Without matches values not contained in the given collection.
func Without(vs ...any) *P { return &P{Operator: "without", Value: vs} }

// Standard two-operand predicates.

func Between(lo, hi any) *P { return &P{Operator: "between", Value: lo, Other: hi} }
func Inside(lo, hi any) *P  { return &P{Operator: "inside", Value: lo, Other: hi} }
func Outside(lo, hi any) *P { return &P{Operator: "outside", Value: lo, Other: hi} }

// Binding names a value so the server can reuse the traversal with different
// inputs. The key is transmitted verbatim; only the value is encoded.
type Binding struct {
	Key   string
	Value any
}

// Bind creates a binding of key to value.
func Bind(key string, value any) *Binding {
	return &Binding{Key: key, Value: value}
}

// Strategy is a traversal strategy: a server-side behavior toggle identified
// by name with an optional configuration map. The strategy name doubles as
// its wire type tag.
type Strategy struct {
	Name          string
	Configuration map[string]any
}

package traversal

import "testing"

func TestEnumValues(t *testing.T) {
	tests := []struct {
		e        Enum
		typ, val string
	}{
		{OrderDesc, "Order", "desc"},
		{ScopeGlobal, "Scope", "global"},
		{PopLast, "Pop", "last"},
		{TLabel, "T", "label"},
		{OperatorSum, "Operator", "sum"},
		{DirectionBoth, "Direction", "BOTH"},
		{CardinalitySet, "Cardinality", "set"},
		{ColumnKeys, "Column", "keys"},
		{BarrierNormSack, "Barrier", "normSack"},
		{Token{Type: "Pick", Name: "any"}, "Pick", "any"},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.val, func(t *testing.T) {
			if got := tt.e.EnumType(); got != tt.typ {
				t.Errorf("EnumType() = %q, want %q", got, tt.typ)
			}
			if got := tt.e.EnumName(); got != tt.val {
				t.Errorf("EnumName() = %q, want %q", got, tt.val)
			}
		})
	}
}

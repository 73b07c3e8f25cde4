package traversal

// Enum is the capability shared by the traversal enum kinds. EnumType is the
// wire type name (e.g. "Order") and EnumName the member name (e.g. "desc").
//
// Member names may use a trailing-underscore convention to dodge reserved
// words in other host languages ("and_", "in_", ...); the codec unmangles
// those before they reach the wire, so values constructed from such
// identifiers still serialize to the bare keyword.
type Enum interface {
	EnumType() string
	EnumName() string
}

// Order controls result ordering.
type Order string

func (o Order) EnumType() string { return "Order" }
func (o Order) EnumName() string { return string(o) }

const (
	OrderAsc     Order = "asc"
	OrderDesc    Order = "desc"
	OrderShuffle Order = "shuffle"
)

// Scope selects between local and global step application.
type Scope string

func (s Scope) EnumType() string { return "Scope" }
func (s Scope) EnumName() string { return string(s) }

const (
	ScopeGlobal Scope = "global"
	ScopeLocal  Scope = "local"
)

// Pop selects which item to take from a labeled step collection.
type Pop string

func (p Pop) EnumType() string { return "Pop" }
func (p Pop) EnumName() string { return string(p) }

const (
	PopFirst Pop = "first"
	PopLast  Pop = "last"
	PopAll   Pop = "all"
)

// T is a token addressing element meta-properties.
type T string

func (t T) EnumType() string { return "T" }
func (t T) EnumName() string { return string(t) }

const (
	TID    T = "id"
	TLabel T = "label"
	TKey   T = "key"
	TValue T = "value"
)

// Operator is a barrier reduction operator.
type Operator string

func (o Operator) EnumType() string { return "Operator" }
func (o Operator) EnumName() string { return string(o) }

const (
	OperatorSum Operator = "sum"
	OperatorMin Operator = "min"
	OperatorMax Operator = "max"
	OperatorAnd Operator = "and"
	OperatorOr  Operator = "or"
)

// Direction orients edge traversal.
type Direction string

func (d Direction) EnumType() string { return "Direction" }
func (d Direction) EnumName() string { return string(d) }

const (
	DirectionIn   Direction = "IN"
	DirectionOut  Direction = "OUT"
	DirectionBoth Direction = "BOTH"
)

// Cardinality controls vertex property multiplicity.
type Cardinality string

func (c Cardinality) EnumType() string { return "Cardinality" }
func (c Cardinality) EnumName() string { return string(c) }

const (
	CardinalitySingle Cardinality = "single"
	CardinalityList   Cardinality = "list"
	CardinalitySet    Cardinality = "set"
)

// Column addresses the key or value side of map entries.
type Column string

func (c Column) EnumType() string { return "Column" }
func (c Column) EnumName() string { return string(c) }

const (
	ColumnKeys   Column = "keys"
	ColumnValues Column = "values"
)

// Barrier is a lazy/eager barrier marker.
type Barrier string

func (b Barrier) EnumType() string { return "Barrier" }
func (b Barrier) EnumName() string { return string(b) }

const BarrierNormSack Barrier = "normSack"

// Token is a free-form enum value for type/member pairs that have no
// predefined kind here. Useful for server extensions.
type Token struct {
	Type string
	Name string
}

func (t Token) EnumType() string { return t.Type }
func (t Token) EnumName() string { return t.Name }

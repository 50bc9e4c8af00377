package ast

// Value is the sum type of input literals accepted by arguments,
// variable default values, and input object fields (§3.2):
//
//	Value = Variable(Name) | Int(i64) | Float(f64) | String(str) |
//	        Bool(bool) | Null | List([Value]) | Enum(Name) |
//	        Object([{Name, Value}])
type Value interface {
	isValue()
}

// VariableValue references a variable by name, e.g. `$id`.
type VariableValue struct{ Name Name }

// IntValue is an integer literal.
type IntValue struct{ Value int64 }

// FloatValue is a floating point literal.
type FloatValue struct{ Value float64 }

// StringValue is a string literal.
type StringValue struct{ Value string }

// BoolValue is a boolean literal.
type BoolValue struct{ Value bool }

// NullValue is the literal `null`.
type NullValue struct{}

// ListValue is an ordered list literal.
type ListValue struct{ Values []Value }

// EnumValue is an unquoted enum member reference, e.g. `NORTH`.
type EnumValue struct{ Name Name }

// ObjectValue is an unordered input object literal.
type ObjectValue struct{ Fields []ObjectField }

// ObjectField is a single key/value pair of an ObjectValue.
type ObjectField struct {
	Name  Name
	Value Value
}

func (*VariableValue) isValue() {}
func (*IntValue) isValue()      {}
func (*FloatValue) isValue()    {}
func (*StringValue) isValue()   {}
func (*BoolValue) isValue()     {}
func (*NullValue) isValue()     {}
func (*ListValue) isValue()     {}
func (*EnumValue) isValue()     {}
func (*ObjectValue) isValue()   {}

// IsNull reports whether v is the literal null. A nil Value (an
// omitted argument or default value) is not the same as explicit null.
func IsNull(v Value) bool {
	_, ok := v.(*NullValue)
	return ok
}

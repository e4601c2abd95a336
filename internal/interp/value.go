package interp

import (
	"strconv"

	"github.com/isilang/isic/internal/symbols"
)

// Value is the runtime value domain: exactly one of Int, Float, Str, or
// Bool is meaningful, selected by Ty. Unit carries none.
type Value struct {
	Ty    symbols.IsiType
	Int   uint64
	Float float32
	Str   string
	Bool  bool
}

func IntValue(n uint64) Value    { return Value{Ty: symbols.Int, Int: n} }
func FloatValue(f float32) Value { return Value{Ty: symbols.Float, Float: f} }
func StringValue(s string) Value { return Value{Ty: symbols.String, Str: s} }
func BoolValue(b bool) Value     { return Value{Ty: symbols.Bool, Bool: b} }
func UnitValue() Value           { return Value{Ty: symbols.Unit} }

// String renders a Value the way escreva prints it: integers in decimal,
// floats in Go's default decimal form, booleans as true/false, Unit as the
// empty string.
func (v Value) String() string {
	switch v.Ty {
	case symbols.Int:
		return strconv.FormatUint(v.Int, 10)
	case symbols.Float:
		return strconv.FormatFloat(float64(v.Float), 'f', -1, 32)
	case symbols.String:
		return v.Str
	case symbols.Bool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

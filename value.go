package jsoncodec

import (
	"github.com/shopspring/decimal"
)

// Json is the closed value model. Exactly six types implement it:
// Null, Bool, Num, Str, Obj and Arr. Consume with a type switch; the
// sealed marker method keeps foreign implementations out.
//
// Values are immutable by convention: constructors copy what they are
// given where sharing would be observable, and nothing in this package
// mutates a Json after construction. That makes any Json safe to share
// across goroutines without locking.
type Json interface {
	jsonVariant()
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Str is a JSON string.
type Str string

// Num is a JSON number. It carries an arbitrary-precision decimal, so
// parsers can hand over numbers without rounding them through float64.
type Num struct {
	Value decimal.Decimal
}

// Obj is a JSON object: field name -> value, order irrelevant. Keys are
// unique by construction (it is a Go map); see Object for the duplicate
// insertion policy.
type Obj map[string]Json

// Arr is a JSON array. Order is significant.
type Arr []Json

func (Null) jsonVariant() {}
func (Bool) jsonVariant() {}
func (Str) jsonVariant()  {}
func (Num) jsonVariant()  {}
func (Obj) jsonVariant()  {}
func (Arr) jsonVariant()  {}

// NumInt builds a Num from an integer.
func NumInt(i int64) Num { return Num{Value: decimal.NewFromInt(i)} }

// NumFloat builds a Num from a float64.
func NumFloat(f float64) Num { return Num{Value: decimal.NewFromFloat(f)} }

// ObjField is one name/value pair for Object.
type ObjField struct {
	Name  string
	Value Json
}

// F is shorthand for an ObjField literal.
func F(name string, value Json) ObjField { return ObjField{Name: name, Value: value} }

// Object builds an Obj from fields. Duplicate names are permitted and
// resolve last-write-wins; callers that care about earlier values must
// de-duplicate before building.
func Object(fields ...ObjField) Obj {
	o := make(Obj, len(fields))
	for _, f := range fields {
		o[f.Name] = f.Value
	}
	return o
}

// Equal reports structural equality of two Json trees. Num compares
// numerically (3.5 and 3.50 are equal), Obj ignores field order, Arr does
// not. Both nil interfaces are equal; nil vs. anything else is not.
func Equal(a, b Json) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Num:
		bv, ok := b.(Num)
		return ok && av.Value.Equal(bv.Value)
	case Obj:
		bv, ok := b.(Obj)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, ok := bv[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	case Arr:
		bv, ok := b.(Arr)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	}
	return false
}

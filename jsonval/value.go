// Package jsonval provides a generic JSON value tree whose objects remember
// the order their members were added in.
//
// Values are parsed and written with the jsontext token API, so a document
// read from disk and written back keeps its member order:
//
//	v, err := jsonval.Parse(data)
//	obj := v.(*jsonval.Object)
//	obj.Set("motd", jsonval.String("Welcome!"))
//	out, err := jsonval.MarshalIndent(obj, "  ")
package jsonval

import (
	"math"
	"strconv"
)

// Kind identifies the JSON type of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a node of a JSON tree. The set of implementations is closed:
// Null, Bool, Number, String, Array and *Object.
type Value interface {
	Kind() Kind
	value()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number, kept as its literal text so no precision is lost
// between parsing and writing.
type Number string

// String is a JSON string.
type String string

// Array is an ordered JSON array.
type Array []Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (Null) value()   {}
func (Bool) value()   {}
func (Number) value() {}
func (String) value() {}
func (Array) value()  {}

// Int returns the Number for n.
func Int(n int64) Number {
	return Number(strconv.FormatInt(n, 10))
}

// Float returns the Number for f. NaN and infinities have no JSON form and
// are written as 0.
func Float(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// Int64 returns the integer part of n. Fractional digits are truncated and
// values beyond the int64 range saturate.
func (n Number) Int64() (int64, error) {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, err
		}
	}
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, nil
	case f <= math.MinInt64:
		return math.MinInt64, nil
	}
	return int64(f), nil
}

// Float64 returns n as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch v := v.(type) {
	case Array:
		out := make(Array, len(v))
		for i, e := range v {
			out[i] = Clone(e)
		}
		return out
	case *Object:
		return v.Clone()
	}
	return v
}

// Equal reports whether a and b hold the same JSON value. Object member order
// is not significant and numbers are compared by value.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Number:
		bn, ok := b.(Number)
		if !ok {
			return false
		}
		if a == bn {
			return true
		}
		af, aerr := a.Float64()
		bf, berr := bn.Float64()
		return aerr == nil && berr == nil && af == bf
	case Array:
		ba, ok := b.(Array)
		if !ok || len(a) != len(ba) {
			return false
		}
		for i := range a {
			if !Equal(a[i], ba[i]) {
				return false
			}
		}
		return true
	case *Object:
		bo, ok := b.(*Object)
		if !ok || a.Len() != bo.Len() {
			return false
		}
		for k, av := range a.All() {
			bv, ok := bo.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	}
	return a == b
}

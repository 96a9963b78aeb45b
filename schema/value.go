package schema

import "fmt"

type ValueKind uint8

const (
	NullValueKind ValueKind = iota
	IntValueKind
	FloatValueKind
)

// Value is the query-side scalar compared against column contents.
// Only fixed-width numeric domains exist here, strings live elsewhere.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
}

func Null() Value {
	return Value{Kind: NullValueKind}
}

func IntValue(v int64) Value {
	return Value{Kind: IntValueKind, Int: v}
}

func FloatValue(v float64) Value {
	return Value{Kind: FloatValueKind, Float: v}
}

func (v Value) IsNull() bool {
	return v.Kind == NullValueKind
}

// AsFloat promotes the value into the floating point comparison domain.
func (v Value) AsFloat() float64 {
	switch v.Kind {
	case IntValueKind:
		return float64(v.Int)
	case FloatValueKind:
		return v.Float
	default:
		panic("null value has no float representation")
	}
}

func (v Value) String() string {
	switch v.Kind {
	case NullValueKind:
		return "null"
	case IntValueKind:
		return fmt.Sprintf("%d", v.Int)
	case FloatValueKind:
		return fmt.Sprintf("%g", v.Float)
	default:
		panic(fmt.Sprintf("unknown value kind %v", v.Kind))
	}
}

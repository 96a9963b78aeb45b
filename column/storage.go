package column

import (
	"fmt"
	"unsafe"

	"github.com/dot5enko/trace-column-db/ops"
	"github.com/dot5enko/trace-column-db/schema"
	"golang.org/x/exp/constraints"
)

// NumericStorage is a read-only typed view over a column's backing buffer.
// The buffer is borrowed, never copied and never mutated; the storage must
// not outlive it. Instances are built per query, right before use.
type NumericStorage struct {
	buf    []byte
	length uint32
	typ    schema.ColumnType
}

func New(buf []byte, length uint32, typ schema.ColumnType) *NumericStorage {
	if len(buf) < int(length)*typ.Size() {
		panic(fmt.Sprintf("not enough data for %d rows of %s", length, typ.String()))
	}
	return &NumericStorage{
		buf:    buf,
		length: length,
		typ:    typ,
	}
}

// Of wraps a typed slice without copying, inferring the column type tag
// from the element type.
func Of[T ops.NumericTypes](arr []T) *NumericStorage {
	return &NumericStorage{
		buf:    AsBytes(arr),
		length: uint32(len(arr)),
		typ:    columnTypeOf[T](),
	}
}

func (s *NumericStorage) Length() uint32 {
	return s.length
}

func (s *NumericStorage) Type() schema.ColumnType {
	return s.typ
}

// TypeOf maps a concrete element type onto its column type tag.
func TypeOf[T ops.NumericTypes]() schema.ColumnType {
	return columnTypeOf[T]()
}

// AsBytes reinterprets a typed slice as its raw backing bytes, no copy.
func AsBytes[T ops.NumericTypes](arr []T) []byte {
	if len(arr) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&arr[0])), len(arr)*int(unsafe.Sizeof(arr[0])))
}

func view[T any](s *NumericStorage) []T {
	if s.length == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&s.buf[0])), s.length)
}

func columnTypeOf[T ops.NumericTypes]() schema.ColumnType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return schema.Int8ColumnType
	case int16:
		return schema.Int16ColumnType
	case int32:
		return schema.Int32ColumnType
	case int64:
		return schema.Int64ColumnType
	case uint8:
		return schema.Uint8ColumnType
	case uint16:
		return schema.Uint16ColumnType
	case uint32:
		return schema.Uint32ColumnType
	case uint64:
		return schema.Uint64ColumnType
	case float32:
		return schema.Float32ColumnType
	case float64:
		return schema.Float64ColumnType
	default:
		panic(fmt.Sprintf("unsupported element type %T", zero))
	}
}

func (s *NumericStorage) checkRange(start, end uint32) {
	if start > end || end > s.length {
		panic(fmt.Sprintf("range [%d, %d) out of bounds, length %d", start, end, s.length))
	}
}

// planKind classifies how a predicate resolves against the element type
// before any row is touched.
type planKind uint8

const (
	// compare converted value in the element's own domain
	planTyped planKind = iota
	// compare each element promoted to float64
	planFloat
	// resolved without touching data
	planAll
	planNone
)

type plan[T ops.NumericTypes] struct {
	kind planKind
	cmp  T
	fcmp float64
}

// convertInt narrows v into T when representable. dir reports the side the
// value fell off: +1 above T's range, -1 below, 0 in range.
func convertInt[T constraints.Integer](v int64) (t T, dir int) {
	t = T(v)
	if int64(t) == v && (t < T(0)) == (v < 0) {
		return t, 0
	}
	if v > 0 {
		return 0, 1
	}
	return 0, -1
}

// outOfRangePlan resolves a predicate whose value cannot be represented by
// the element type: a too-large value makes every less-style predicate
// match everything, every greater-style predicate match nothing, equality
// nothing and inequality everything. Symmetric for too-small values.
func outOfRangePlan[T ops.NumericTypes](op schema.FilterOp, dir int) plan[T] {
	above := dir > 0
	switch op {
	case schema.LtFilterOp, schema.LeFilterOp:
		if above {
			return plan[T]{kind: planAll}
		}
		return plan[T]{kind: planNone}
	case schema.GtFilterOp, schema.GeFilterOp:
		if above {
			return plan[T]{kind: planNone}
		}
		return plan[T]{kind: planAll}
	case schema.EqFilterOp:
		return plan[T]{kind: planNone}
	case schema.NeFilterOp:
		return plan[T]{kind: planAll}
	default:
		panic(fmt.Sprintf("unknown filter op %s", op.String()))
	}
}

// resolveInt builds the comparison plan for an integer column. A floating
// point query value drags the whole comparison into the float64 domain.
func resolveInt[T constraints.Integer](op schema.FilterOp, value schema.Value) plan[T] {
	switch value.Kind {
	case schema.NullValueKind:
		return plan[T]{kind: planNone}
	case schema.FloatValueKind:
		return plan[T]{kind: planFloat, fcmp: value.Float}
	case schema.IntValueKind:
		t, dir := convertInt[T](value.Int)
		if dir != 0 {
			return outOfRangePlan[T](op, dir)
		}
		return plan[T]{kind: planTyped, cmp: t}
	default:
		panic(fmt.Sprintf("unknown value kind %v", value.Kind))
	}
}

// resolveFloat64 builds the plan for a float64 column; both int and float
// query values promote straight into the element domain.
func resolveFloat64(value schema.Value) plan[float64] {
	if value.IsNull() {
		return plan[float64]{kind: planNone}
	}
	return plan[float64]{kind: planTyped, cmp: value.AsFloat()}
}

// resolveFloat32 keeps the comparison in float64: narrowing the query
// value to float32 would shift equality boundaries.
func resolveFloat32(value schema.Value) plan[float32] {
	if value.IsNull() {
		return plan[float32]{kind: planNone}
	}
	return plan[float32]{kind: planFloat, fcmp: value.AsFloat()}
}

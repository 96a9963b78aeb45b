package column

import (
	"fmt"

	"github.com/dot5enko/trace-column-db/ops"
	"github.com/dot5enko/trace-column-db/schema"
)

// BinarySearch answers a predicate over ascending-sorted data in r as one
// contiguous sub-range. Ordering operators resolve to a prefix or suffix
// boundary, equality to a lower/upper bound pair. Not-equal has no
// contiguous answer so ok is false and the caller falls back to a linear
// scan. Sortedness of the data inside r is the caller's obligation.
func (s *NumericStorage) BinarySearch(op schema.FilterOp, value schema.Value, r schema.Range) (schema.Range, bool) {
	s.checkRange(r.Start, r.End)
	if op == schema.NeFilterOp {
		return schema.Range{}, false
	}

	switch s.typ {
	case schema.Int8ColumnType:
		return binSearch(view[int8](s), op, resolveInt[int8](op, value), r), true
	case schema.Int16ColumnType:
		return binSearch(view[int16](s), op, resolveInt[int16](op, value), r), true
	case schema.Int32ColumnType:
		return binSearch(view[int32](s), op, resolveInt[int32](op, value), r), true
	case schema.Int64ColumnType:
		return binSearch(view[int64](s), op, resolveInt[int64](op, value), r), true
	case schema.Uint8ColumnType:
		return binSearch(view[uint8](s), op, resolveInt[uint8](op, value), r), true
	case schema.Uint16ColumnType:
		return binSearch(view[uint16](s), op, resolveInt[uint16](op, value), r), true
	case schema.Uint32ColumnType:
		return binSearch(view[uint32](s), op, resolveInt[uint32](op, value), r), true
	case schema.Uint64ColumnType:
		return binSearch(view[uint64](s), op, resolveInt[uint64](op, value), r), true
	case schema.Float32ColumnType:
		return binSearch(view[float32](s), op, resolveFloat32(value), r), true
	case schema.Float64ColumnType:
		return binSearch(view[float64](s), op, resolveFloat64(value), r), true
	default:
		panic("unknown column type " + s.typ.String())
	}
}

// BinarySearchWithIndex is BinarySearch for columns that are not
// physically sorted but carry a precomputed sort permutation: r indexes
// slots of order, every probe reads storage[order[mid]], and the returned
// range refers to positions within order. Callers recover actual rows by
// indexing through order.
func (s *NumericStorage) BinarySearchWithIndex(op schema.FilterOp, value schema.Value, order []uint32, r schema.Range) (schema.Range, bool) {
	if r.Start > r.End || int(r.End) > len(order) {
		panic(fmt.Sprintf("range %s out of bounds for order of %d slots", r.String(), len(order)))
	}
	if op == schema.NeFilterOp {
		return schema.Range{}, false
	}

	switch s.typ {
	case schema.Int8ColumnType:
		return binSearchIndexed(view[int8](s), op, resolveInt[int8](op, value), order, r), true
	case schema.Int16ColumnType:
		return binSearchIndexed(view[int16](s), op, resolveInt[int16](op, value), order, r), true
	case schema.Int32ColumnType:
		return binSearchIndexed(view[int32](s), op, resolveInt[int32](op, value), order, r), true
	case schema.Int64ColumnType:
		return binSearchIndexed(view[int64](s), op, resolveInt[int64](op, value), order, r), true
	case schema.Uint8ColumnType:
		return binSearchIndexed(view[uint8](s), op, resolveInt[uint8](op, value), order, r), true
	case schema.Uint16ColumnType:
		return binSearchIndexed(view[uint16](s), op, resolveInt[uint16](op, value), order, r), true
	case schema.Uint32ColumnType:
		return binSearchIndexed(view[uint32](s), op, resolveInt[uint32](op, value), order, r), true
	case schema.Uint64ColumnType:
		return binSearchIndexed(view[uint64](s), op, resolveInt[uint64](op, value), order, r), true
	case schema.Float32ColumnType:
		return binSearchIndexed(view[float32](s), op, resolveFloat32(value), order, r), true
	case schema.Float64ColumnType:
		return binSearchIndexed(view[float64](s), op, resolveFloat64(value), order, r), true
	default:
		panic("unknown column type " + s.typ.String())
	}
}

func binSearch[T ops.NumericTypes](arr []T, op schema.FilterOp, p plan[T], r schema.Range) schema.Range {
	switch p.kind {
	case planAll:
		return r
	case planNone:
		return schema.Range{Start: r.Start, End: r.Start}
	}

	lower := func() uint32 {
		lo, hi := r.Start, r.End
		for lo < hi {
			mid := (lo + hi) >> 1
			if probeLess(arr[mid], p) {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		return lo
	}
	upper := func() uint32 {
		lo, hi := r.Start, r.End
		for lo < hi {
			mid := (lo + hi) >> 1
			if probeLessEq(arr[mid], p) {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		return lo
	}

	return boundsToRange(op, r, lower, upper)
}

func binSearchIndexed[T ops.NumericTypes](arr []T, op schema.FilterOp, p plan[T], order []uint32, r schema.Range) schema.Range {
	switch p.kind {
	case planAll:
		return r
	case planNone:
		return schema.Range{Start: r.Start, End: r.Start}
	}

	lower := func() uint32 {
		lo, hi := r.Start, r.End
		for lo < hi {
			mid := (lo + hi) >> 1
			if probeLess(arr[order[mid]], p) {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		return lo
	}
	upper := func() uint32 {
		lo, hi := r.Start, r.End
		for lo < hi {
			mid := (lo + hi) >> 1
			if probeLessEq(arr[order[mid]], p) {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		return lo
	}

	return boundsToRange(op, r, lower, upper)
}

func probeLess[T ops.NumericTypes](a T, p plan[T]) bool {
	if p.kind == planFloat {
		return float64(a) < p.fcmp
	}
	return a < p.cmp
}

func probeLessEq[T ops.NumericTypes](a T, p plan[T]) bool {
	if p.kind == planFloat {
		return float64(a) <= p.fcmp
	}
	return a <= p.cmp
}

func boundsToRange(op schema.FilterOp, r schema.Range, lower, upper func() uint32) schema.Range {
	switch op {
	case schema.GeFilterOp:
		return schema.Range{Start: lower(), End: r.End}
	case schema.GtFilterOp:
		return schema.Range{Start: upper(), End: r.End}
	case schema.LeFilterOp:
		return schema.Range{Start: r.Start, End: upper()}
	case schema.LtFilterOp:
		return schema.Range{Start: r.Start, End: lower()}
	case schema.EqFilterOp:
		lb := lower()
		return schema.Range{Start: lb, End: upperFrom(lb, r, upper)}
	default:
		panic(fmt.Sprintf("filter op %s cannot be answered by binary search", op.String()))
	}
}

// upperFrom guards against an empty equality run: the upper bound can
// never precede the lower one on sorted input, this only keeps a broken
// sortedness precondition from producing a negative-size range.
func upperFrom(lb uint32, r schema.Range, upper func() uint32) uint32 {
	ub := upper()
	if ub < lb {
		return lb
	}
	return ub
}

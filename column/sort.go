package column

import (
	"cmp"
	"slices"

	"github.com/dot5enko/trace-column-db/ops"
	"github.com/dot5enko/trace-column-db/schema"
)

// StableSort reorders the caller-owned permutation in place so the column
// values it references become ascending. Rows with equal values keep
// their relative order from the input, which is what lets successive
// ORDER BY keys be applied by sorting least significant key first. The
// caller must hold exclusive access to indices for the duration.
func (s *NumericStorage) StableSort(indices []uint32) {
	switch s.typ {
	case schema.Int8ColumnType:
		stableSort(view[int8](s), indices)
	case schema.Int16ColumnType:
		stableSort(view[int16](s), indices)
	case schema.Int32ColumnType:
		stableSort(view[int32](s), indices)
	case schema.Int64ColumnType:
		stableSort(view[int64](s), indices)
	case schema.Uint8ColumnType:
		stableSort(view[uint8](s), indices)
	case schema.Uint16ColumnType:
		stableSort(view[uint16](s), indices)
	case schema.Uint32ColumnType:
		stableSort(view[uint32](s), indices)
	case schema.Uint64ColumnType:
		stableSort(view[uint64](s), indices)
	case schema.Float32ColumnType:
		stableSort(view[float32](s), indices)
	case schema.Float64ColumnType:
		stableSort(view[float64](s), indices)
	default:
		panic("unknown column type " + s.typ.String())
	}
}

func stableSort[T ops.NumericTypes](arr []T, indices []uint32) {
	slices.SortStableFunc(indices, func(a, b uint32) int {
		return cmp.Compare(arr[a], arr[b])
	})
}

package column

import (
	"github.com/dot5enko/trace-column-db/ops"
	"github.com/dot5enko/trace-column-db/schema"
)

// Bounds scans the whole column once and reports its min/max promoted to
// the float comparison domain. Used by callers to skip filters that
// cannot match anything.
func (s *NumericStorage) Bounds() ops.BoundsFloat {
	if s.length == 0 {
		return ops.BoundsFloat{}
	}

	switch s.typ {
	case schema.Int8ColumnType:
		return ops.GetMaxMinBoundsFloat(view[int8](s))
	case schema.Int16ColumnType:
		return ops.GetMaxMinBoundsFloat(view[int16](s))
	case schema.Int32ColumnType:
		return ops.GetMaxMinBoundsFloat(view[int32](s))
	case schema.Int64ColumnType:
		return ops.GetMaxMinBoundsFloat(view[int64](s))
	case schema.Uint8ColumnType:
		return ops.GetMaxMinBoundsFloat(view[uint8](s))
	case schema.Uint16ColumnType:
		return ops.GetMaxMinBoundsFloat(view[uint16](s))
	case schema.Uint32ColumnType:
		return ops.GetMaxMinBoundsFloat(view[uint32](s))
	case schema.Uint64ColumnType:
		return ops.GetMaxMinBoundsFloat(view[uint64](s))
	case schema.Float32ColumnType:
		return ops.GetMaxMinBoundsFloat(view[float32](s))
	case schema.Float64ColumnType:
		return ops.GetMaxMinBoundsFloat(view[float64](s))
	default:
		panic("unknown column type " + s.typ.String())
	}
}

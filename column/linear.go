package column

import (
	"fmt"

	"github.com/dot5enko/trace-column-db/bits"
	"github.com/dot5enko/trace-column-db/ops"
	"github.com/dot5enko/trace-column-db/schema"
)

// LinearSearchUnaligned scans rows [start, end) one at a time and appends
// one result bit per position, in position order, to builder. The builder
// must have room for every scanned position; callers drive it to full
// coverage themselves.
func (s *NumericStorage) LinearSearchUnaligned(op schema.FilterOp, value schema.Value, start, end uint32, builder *bits.Builder) {
	s.checkRange(start, end)

	switch s.typ {
	case schema.Int8ColumnType:
		linearScan(view[int8](s), op, resolveInt[int8](op, value), start, end, builder)
	case schema.Int16ColumnType:
		linearScan(view[int16](s), op, resolveInt[int16](op, value), start, end, builder)
	case schema.Int32ColumnType:
		linearScan(view[int32](s), op, resolveInt[int32](op, value), start, end, builder)
	case schema.Int64ColumnType:
		linearScan(view[int64](s), op, resolveInt[int64](op, value), start, end, builder)
	case schema.Uint8ColumnType:
		linearScan(view[uint8](s), op, resolveInt[uint8](op, value), start, end, builder)
	case schema.Uint16ColumnType:
		linearScan(view[uint16](s), op, resolveInt[uint16](op, value), start, end, builder)
	case schema.Uint32ColumnType:
		linearScan(view[uint32](s), op, resolveInt[uint32](op, value), start, end, builder)
	case schema.Uint64ColumnType:
		linearScan(view[uint64](s), op, resolveInt[uint64](op, value), start, end, builder)
	case schema.Float32ColumnType:
		linearScan(view[float32](s), op, resolveFloat32(value), start, end, builder)
	case schema.Float64ColumnType:
		linearScan(view[float64](s), op, resolveFloat64(value), start, end, builder)
	default:
		panic("unknown column type " + s.typ.String())
	}
}

// LinearSearchAligned produces the same bits as LinearSearchUnaligned but
// requires start and end to be multiples of the batch width so results
// can be packed a whole word per step. Misaligned bounds are a programmer
// error, not a silently corrected one.
func (s *NumericStorage) LinearSearchAligned(op schema.FilterOp, value schema.Value, start, end uint32, builder *bits.Builder) {
	s.checkRange(start, end)
	if start%ops.BlockRows != 0 || end%ops.BlockRows != 0 {
		panic(fmt.Sprintf("unaligned bounds [%d, %d) for aligned search, block width %d", start, end, ops.BlockRows))
	}

	switch s.typ {
	case schema.Int8ColumnType:
		alignedScan(view[int8](s), op, resolveInt[int8](op, value), start, end, builder)
	case schema.Int16ColumnType:
		alignedScan(view[int16](s), op, resolveInt[int16](op, value), start, end, builder)
	case schema.Int32ColumnType:
		alignedScan(view[int32](s), op, resolveInt[int32](op, value), start, end, builder)
	case schema.Int64ColumnType:
		alignedScan(view[int64](s), op, resolveInt[int64](op, value), start, end, builder)
	case schema.Uint8ColumnType:
		alignedScan(view[uint8](s), op, resolveInt[uint8](op, value), start, end, builder)
	case schema.Uint16ColumnType:
		alignedScan(view[uint16](s), op, resolveInt[uint16](op, value), start, end, builder)
	case schema.Uint32ColumnType:
		alignedScan(view[uint32](s), op, resolveInt[uint32](op, value), start, end, builder)
	case schema.Uint64ColumnType:
		alignedScan(view[uint64](s), op, resolveInt[uint64](op, value), start, end, builder)
	case schema.Float32ColumnType:
		alignedScan(view[float32](s), op, resolveFloat32(value), start, end, builder)
	case schema.Float64ColumnType:
		alignedScan(view[float64](s), op, resolveFloat64(value), start, end, builder)
	default:
		panic("unknown column type " + s.typ.String())
	}
}

func linearScan[T ops.NumericTypes](arr []T, op schema.FilterOp, p plan[T], start, end uint32, builder *bits.Builder) {
	switch p.kind {
	case planAll:
		for i := start; i < end; i++ {
			builder.Append(true)
		}
	case planNone:
		for i := start; i < end; i++ {
			builder.Append(false)
		}
	case planTyped:
		cmp := p.cmp
		switch op {
		case schema.EqFilterOp:
			for i := start; i < end; i++ {
				builder.Append(arr[i] == cmp)
			}
		case schema.NeFilterOp:
			for i := start; i < end; i++ {
				builder.Append(arr[i] != cmp)
			}
		case schema.LtFilterOp:
			for i := start; i < end; i++ {
				builder.Append(arr[i] < cmp)
			}
		case schema.LeFilterOp:
			for i := start; i < end; i++ {
				builder.Append(arr[i] <= cmp)
			}
		case schema.GtFilterOp:
			for i := start; i < end; i++ {
				builder.Append(arr[i] > cmp)
			}
		case schema.GeFilterOp:
			for i := start; i < end; i++ {
				builder.Append(arr[i] >= cmp)
			}
		default:
			panic(fmt.Sprintf("unknown filter op %s", op.String()))
		}
	case planFloat:
		cmp := p.fcmp
		switch op {
		case schema.EqFilterOp:
			for i := start; i < end; i++ {
				builder.Append(float64(arr[i]) == cmp)
			}
		case schema.NeFilterOp:
			for i := start; i < end; i++ {
				builder.Append(float64(arr[i]) != cmp)
			}
		case schema.LtFilterOp:
			for i := start; i < end; i++ {
				builder.Append(float64(arr[i]) < cmp)
			}
		case schema.LeFilterOp:
			for i := start; i < end; i++ {
				builder.Append(float64(arr[i]) <= cmp)
			}
		case schema.GtFilterOp:
			for i := start; i < end; i++ {
				builder.Append(float64(arr[i]) > cmp)
			}
		case schema.GeFilterOp:
			for i := start; i < end; i++ {
				builder.Append(float64(arr[i]) >= cmp)
			}
		default:
			panic(fmt.Sprintf("unknown filter op %s", op.String()))
		}
	}
}

func alignedScan[T ops.NumericTypes](arr []T, op schema.FilterOp, p plan[T], start, end uint32, builder *bits.Builder) {
	switch p.kind {
	case planAll:
		for i := start; i < end; i += ops.BlockRows {
			builder.AppendWord(^uint64(0))
		}
	case planNone:
		for i := start; i < end; i += ops.BlockRows {
			builder.AppendWord(0)
		}
	case planTyped:
		cmp := p.cmp
		switch op {
		case schema.EqFilterOp:
			for i := start; i < end; i += ops.BlockRows {
				builder.AppendWord(ops.CompareBlockEq(arr[i:i+ops.BlockRows], cmp))
			}
		case schema.NeFilterOp:
			for i := start; i < end; i += ops.BlockRows {
				builder.AppendWord(ops.CompareBlockNe(arr[i:i+ops.BlockRows], cmp))
			}
		case schema.LtFilterOp:
			for i := start; i < end; i += ops.BlockRows {
				builder.AppendWord(ops.CompareBlockLt(arr[i:i+ops.BlockRows], cmp))
			}
		case schema.LeFilterOp:
			for i := start; i < end; i += ops.BlockRows {
				builder.AppendWord(ops.CompareBlockLe(arr[i:i+ops.BlockRows], cmp))
			}
		case schema.GtFilterOp:
			for i := start; i < end; i += ops.BlockRows {
				builder.AppendWord(ops.CompareBlockGt(arr[i:i+ops.BlockRows], cmp))
			}
		case schema.GeFilterOp:
			for i := start; i < end; i += ops.BlockRows {
				builder.AppendWord(ops.CompareBlockGe(arr[i:i+ops.BlockRows], cmp))
			}
		default:
			panic(fmt.Sprintf("unknown filter op %s", op.String()))
		}
	case planFloat:
		// cross-domain comparison stays scalar but still packs a word
		// of result bits per step
		cmp := p.fcmp
		for i := start; i < end; i += ops.BlockRows {
			block := arr[i : i+ops.BlockRows]
			var mask uint64
			switch op {
			case schema.EqFilterOp:
				for j, a := range block {
					if float64(a) == cmp {
						mask |= 1 << j
					}
				}
			case schema.NeFilterOp:
				for j, a := range block {
					if float64(a) != cmp {
						mask |= 1 << j
					}
				}
			case schema.LtFilterOp:
				for j, a := range block {
					if float64(a) < cmp {
						mask |= 1 << j
					}
				}
			case schema.LeFilterOp:
				for j, a := range block {
					if float64(a) <= cmp {
						mask |= 1 << j
					}
				}
			case schema.GtFilterOp:
				for j, a := range block {
					if float64(a) > cmp {
						mask |= 1 << j
					}
				}
			case schema.GeFilterOp:
				for j, a := range block {
					if float64(a) >= cmp {
						mask |= 1 << j
					}
				}
			default:
				panic(fmt.Sprintf("unknown filter op %s", op.String()))
			}
			builder.AppendWord(mask)
		}
	}
}

package rowselect

import (
	"github.com/dot5enko/trace-column-db/bits"
	"github.com/dot5enko/trace-column-db/schema"
)

// RowMap is the selected-row set a single filter produced: either a
// contiguous range of rows or an arbitrary bit-vector selection over the
// full row space. Filters over the same table are combined with And.
type RowMap struct {
	r  schema.Range
	bv *bits.BitVector
}

func FromRange(r schema.Range) RowMap {
	return RowMap{r: r}
}

func FromBitVector(v *bits.BitVector) RowMap {
	return RowMap{bv: v}
}

func (m RowMap) IsRange() bool {
	return m.bv == nil
}

func (m RowMap) Count() uint32 {
	if m.bv != nil {
		return m.bv.CountSetBits()
	}
	return m.r.Size()
}

// ToIndices writes the selected row ids in ascending order and returns
// how many were written. out must hold Count() entries.
func (m RowMap) ToIndices(out []uint32) int {
	if m.bv != nil {
		return m.bv.ToIndices(out)
	}
	filled := 0
	for i := m.r.Start; i < m.r.End; i++ {
		out[filled] = i
		filled++
	}
	return filled
}

func (m RowMap) Indices() []uint32 {
	out := make([]uint32, m.Count())
	m.ToIndices(out)
	return out
}

// And intersects two selections over the same row space.
func And(a, b RowMap) RowMap {
	switch {
	case a.bv == nil && b.bv == nil:
		return FromRange(a.r.Intersect(b.r))
	case a.bv != nil && b.bv != nil:
		return FromBitVector(bits.And(a.bv, b.bv))
	case a.bv == nil:
		return FromBitVector(bits.And(maskForRange(b.bv.Size(), a.r), b.bv))
	default:
		return FromBitVector(bits.And(a.bv, maskForRange(a.bv.Size(), b.r)))
	}
}

// AndAll folds a non-empty list of selections into one.
func AndAll(maps []RowMap) RowMap {
	result := maps[0]
	for _, m := range maps[1:] {
		result = And(result, m)
	}
	return result
}

func maskForRange(size uint32, r schema.Range) *bits.BitVector {
	builder := bits.NewBuilder(size)
	for i := uint32(0); i < size; i++ {
		builder.Append(r.Contains(i))
	}
	return builder.Build()
}

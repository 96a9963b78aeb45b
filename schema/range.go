package schema

import "fmt"

// Range is a half-open interval of positions [Start, End).
// Positions are relative to whatever sequence the producer searched over:
// raw column rows, or slots of a sort-order permutation.
type Range struct {
	Start uint32
	End   uint32
}

func NewRange(start, end uint32) Range {
	if start > end {
		panic(fmt.Sprintf("invalid range [%d, %d)", start, end))
	}
	return Range{Start: start, End: end}
}

func (r Range) Size() uint32 {
	return r.End - r.Start
}

func (r Range) Empty() bool {
	return r.Start == r.End
}

func (r Range) Contains(pos uint32) bool {
	return pos >= r.Start && pos < r.End
}

// Intersect clips r against other; disjoint ranges collapse to an
// empty range anchored at the later start.
func (r Range) Intersect(other Range) Range {
	start := max(r.Start, other.Start)
	end := min(r.End, other.End)
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

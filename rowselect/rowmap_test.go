package rowselect

import (
	"testing"

	"github.com/dot5enko/trace-column-db/bits"
	"github.com/dot5enko/trace-column-db/schema"
)

func TestAndRanges(t *testing.T) {
	a := FromRange(schema.NewRange(5, 20))
	b := FromRange(schema.NewRange(10, 30))

	m := And(a, b)

	if !m.IsRange() {
		t.Fatalf("expected a range result")
	}
	if m.Count() != 10 {
		t.Errorf("Expected %d but got %d", 10, m.Count())
	}

	out := make([]uint32, m.Count())
	m.ToIndices(out)
	if out[0] != 10 || out[9] != 19 {
		t.Errorf("Expected rows 10..19 but got %d..%d", out[0], out[9])
	}
}

func TestAndDisjointRanges(t *testing.T) {
	m := And(FromRange(schema.NewRange(0, 5)), FromRange(schema.NewRange(10, 20)))

	if m.Count() != 0 {
		t.Errorf("Expected %d but got %d", 0, m.Count())
	}
}

func TestAndRangeWithBits(t *testing.T) {
	selection := FromBitVector(bits.FromIndices(40, []uint32{2, 15, 25, 39}))
	window := FromRange(schema.NewRange(10, 30))

	m := And(window, selection)

	if m.Count() != 2 {
		t.Errorf("Expected %d but got %d", 2, m.Count())
	}

	out := m.Indices()
	if out[0] != 15 || out[1] != 25 {
		t.Errorf("Expected rows 15, 25 but got %v", out)
	}
}

func TestAndAll(t *testing.T) {
	maps := []RowMap{
		FromRange(schema.NewRange(0, 100)),
		FromBitVector(bits.FromIndices(100, []uint32{1, 50, 99})),
		FromRange(schema.NewRange(40, 100)),
	}

	m := AndAll(maps)

	out := m.Indices()
	if len(out) != 2 || out[0] != 50 || out[1] != 99 {
		t.Errorf("Expected rows 50, 99 but got %v", out)
	}
}

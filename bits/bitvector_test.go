package bits

import (
	"math/rand"
	"testing"
)

func TestBuilderRankConsistency(t *testing.T) {
	size := uint32(1000)

	builder := NewBuilder(size)
	expected := []uint32{}

	for i := uint32(0); i < size; i++ {
		set := i%3 == 0 || i%7 == 0
		if set {
			expected = append(expected, i)
		}
		builder.Append(set)
	}

	v := builder.Build()

	if v.CountSetBits() != uint32(len(expected)) {
		t.Errorf("Expected %d but got %d", len(expected), v.CountSetBits())
	}

	for k, pos := range expected {
		got := v.IndexOfNthSet(uint32(k))
		if got != pos {
			t.Errorf("set bit %d : Expected %d but got %d", k, pos, got)
		}
	}

	out := make([]uint32, v.CountSetBits())
	filled := v.ToIndices(out)
	if filled != len(expected) {
		t.Errorf("Expected %d but got %d", len(expected), filled)
	}
	for i, pos := range expected {
		if out[i] != pos {
			t.Errorf("index %d : Expected %d but got %d", i, pos, out[i])
		}
	}
}

func TestBuilderAppendWordMatchesAppend(t *testing.T) {
	size := uint32(192)

	wordBuilder := NewBuilder(size)
	bitBuilder := NewBuilder(size)

	for w := uint32(0); w < size/WordBits; w++ {
		mask := rand.Uint64()
		wordBuilder.AppendWord(mask)
		for j := 0; j < WordBits; j++ {
			bitBuilder.Append((mask>>j)&1 == 1)
		}
	}

	a := wordBuilder.Build()
	b := bitBuilder.Build()

	if a.CountSetBits() != b.CountSetBits() {
		t.Errorf("Expected %d but got %d", b.CountSetBits(), a.CountSetBits())
	}

	for i := uint32(0); i < size; i++ {
		if a.IsSet(i) != b.IsSet(i) {
			t.Errorf("bit %d : Expected %v but got %v", i, b.IsSet(i), a.IsSet(i))
		}
	}
}

func TestBuilderWordThenTail(t *testing.T) {
	size := uint32(100)

	builder := NewBuilder(size)
	builder.AppendWord(^uint64(0))
	for i := uint32(WordBits); i < size; i++ {
		builder.Append(i%2 == 0)
	}

	v := builder.Build()

	if v.CountSetBits() != 64+18 {
		t.Errorf("Expected %d but got %d", 64+18, v.CountSetBits())
	}
	if v.IndexOfNthSet(64) != 64 {
		t.Errorf("Expected %d but got %d", 64, v.IndexOfNthSet(64))
	}
}

func TestFromIndices(t *testing.T) {
	v := FromIndices(50, []uint32{3, 17, 3, 49})

	if v.CountSetBits() != 3 {
		t.Errorf("Expected %d but got %d", 3, v.CountSetBits())
	}
	if !v.IsSet(3) || !v.IsSet(17) || !v.IsSet(49) {
		t.Errorf("expected bits 3, 17, 49 set")
	}
	if v.IndexOfNthSet(2) != 49 {
		t.Errorf("Expected %d but got %d", 49, v.IndexOfNthSet(2))
	}
}

func TestAndOr(t *testing.T) {
	a := FromIndices(130, []uint32{1, 64, 65, 129})
	b := FromIndices(130, []uint32{2, 64, 129})

	both := And(a, b)
	if both.CountSetBits() != 2 {
		t.Errorf("Expected %d but got %d", 2, both.CountSetBits())
	}
	if !both.IsSet(64) || !both.IsSet(129) {
		t.Errorf("expected bits 64 and 129 set")
	}

	either := Or(a, b)
	if either.CountSetBits() != 5 {
		t.Errorf("Expected %d but got %d", 5, either.CountSetBits())
	}
}

func BenchmarkIndexOfNthSet(b *testing.B) {
	size := uint32(1 << 20)

	builder := NewBuilder(size)
	for i := uint32(0); i < size; i++ {
		builder.Append(rand.Intn(4) == 0)
	}
	v := builder.Build()

	n := v.CountSetBits()

	for bi := 0; bi < b.N; bi++ {
		_ = v.IndexOfNthSet(rand.Uint32() % n)
	}
}

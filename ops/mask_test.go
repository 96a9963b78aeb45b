package ops

import (
	"math/rand"
	"testing"
)

func naiveMask[T NumericTypes](arr []T, cmp T, pred func(a, b T) bool) uint64 {
	var mask uint64
	for i, a := range arr {
		if pred(a, cmp) {
			mask |= 1 << i
		}
	}
	return mask
}

func TestBlockMasksMatchNaive(t *testing.T) {
	arr := make([]int32, BlockRows)
	for i := range arr {
		arr[i] = int32(rand.Intn(16) - 8)
	}
	cmp := int32(1)

	cases := []struct {
		label string
		got   uint64
		want  uint64
	}{
		{"eq", CompareBlockEq(arr, cmp), naiveMask(arr, cmp, func(a, b int32) bool { return a == b })},
		{"ne", CompareBlockNe(arr, cmp), naiveMask(arr, cmp, func(a, b int32) bool { return a != b })},
		{"lt", CompareBlockLt(arr, cmp), naiveMask(arr, cmp, func(a, b int32) bool { return a < b })},
		{"le", CompareBlockLe(arr, cmp), naiveMask(arr, cmp, func(a, b int32) bool { return a <= b })},
		{"gt", CompareBlockGt(arr, cmp), naiveMask(arr, cmp, func(a, b int32) bool { return a > b })},
		{"ge", CompareBlockGe(arr, cmp), naiveMask(arr, cmp, func(a, b int32) bool { return a >= b })},
	}

	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s : Expected %064b but got %064b", c.label, c.want, c.got)
		}
	}
}

func TestBlockMasksFloat(t *testing.T) {
	arr := make([]float64, BlockRows)
	for i := range arr {
		arr[i] = float64(rand.Intn(100)) / 10
	}
	cmp := 4.5

	got := CompareBlockGe(arr, cmp)
	want := naiveMask(arr, cmp, func(a, b float64) bool { return a >= b })

	if got != want {
		t.Errorf("Expected %064b but got %064b", want, got)
	}
}

func TestGetMaxMin(t *testing.T) {
	input := []int64{5, -3, 17, 0, 17, -3}

	b := GetMaxMin(input)

	if b.Min != -3 {
		t.Errorf("Expected %d but got %d", -3, b.Min)
	}
	if b.Max != 17 {
		t.Errorf("Expected %d but got %d", 17, b.Max)
	}
}

func BenchmarkBlockGe(b *testing.B) {
	arr := make([]uint64, BlockRows)
	for i := range arr {
		arr[i] = rand.Uint64() % 1000
	}

	for bi := 0; bi < b.N; bi++ {
		_ = CompareBlockGe(arr, 500)
	}
}

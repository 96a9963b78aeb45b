package ops

// Block mask kernels: each consumes exactly 64 elements and packs the
// comparison outcome into one result word, bit i for element i. The 8-wide
// unroll keeps the loop branchless and lets the compiler lift bounds
// checks; tails shorter than a block stay on the per-element path.

const BlockRows = 64

func CompareBlockEq[T NumericTypes](arr []T, cmp T) (mask uint64) {
	_ = arr[BlockRows-1]
	for i := 0; i < BlockRows; i += 8 {
		a0 := arr[i+0]
		a1 := arr[i+1]
		a2 := arr[i+2]
		a3 := arr[i+3]
		a4 := arr[i+4]
		a5 := arr[i+5]
		a6 := arr[i+6]
		a7 := arr[i+7]

		mask |= b2i(a0 == cmp) << (i + 0)
		mask |= b2i(a1 == cmp) << (i + 1)
		mask |= b2i(a2 == cmp) << (i + 2)
		mask |= b2i(a3 == cmp) << (i + 3)
		mask |= b2i(a4 == cmp) << (i + 4)
		mask |= b2i(a5 == cmp) << (i + 5)
		mask |= b2i(a6 == cmp) << (i + 6)
		mask |= b2i(a7 == cmp) << (i + 7)
	}
	return
}

func CompareBlockNe[T NumericTypes](arr []T, cmp T) (mask uint64) {
	_ = arr[BlockRows-1]
	for i := 0; i < BlockRows; i += 8 {
		a0 := arr[i+0]
		a1 := arr[i+1]
		a2 := arr[i+2]
		a3 := arr[i+3]
		a4 := arr[i+4]
		a5 := arr[i+5]
		a6 := arr[i+6]
		a7 := arr[i+7]

		mask |= b2i(a0 != cmp) << (i + 0)
		mask |= b2i(a1 != cmp) << (i + 1)
		mask |= b2i(a2 != cmp) << (i + 2)
		mask |= b2i(a3 != cmp) << (i + 3)
		mask |= b2i(a4 != cmp) << (i + 4)
		mask |= b2i(a5 != cmp) << (i + 5)
		mask |= b2i(a6 != cmp) << (i + 6)
		mask |= b2i(a7 != cmp) << (i + 7)
	}
	return
}

func CompareBlockLt[T NumericTypes](arr []T, cmp T) (mask uint64) {
	_ = arr[BlockRows-1]
	for i := 0; i < BlockRows; i += 8 {
		a0 := arr[i+0]
		a1 := arr[i+1]
		a2 := arr[i+2]
		a3 := arr[i+3]
		a4 := arr[i+4]
		a5 := arr[i+5]
		a6 := arr[i+6]
		a7 := arr[i+7]

		mask |= b2i(a0 < cmp) << (i + 0)
		mask |= b2i(a1 < cmp) << (i + 1)
		mask |= b2i(a2 < cmp) << (i + 2)
		mask |= b2i(a3 < cmp) << (i + 3)
		mask |= b2i(a4 < cmp) << (i + 4)
		mask |= b2i(a5 < cmp) << (i + 5)
		mask |= b2i(a6 < cmp) << (i + 6)
		mask |= b2i(a7 < cmp) << (i + 7)
	}
	return
}

func CompareBlockLe[T NumericTypes](arr []T, cmp T) (mask uint64) {
	_ = arr[BlockRows-1]
	for i := 0; i < BlockRows; i += 8 {
		a0 := arr[i+0]
		a1 := arr[i+1]
		a2 := arr[i+2]
		a3 := arr[i+3]
		a4 := arr[i+4]
		a5 := arr[i+5]
		a6 := arr[i+6]
		a7 := arr[i+7]

		mask |= b2i(a0 <= cmp) << (i + 0)
		mask |= b2i(a1 <= cmp) << (i + 1)
		mask |= b2i(a2 <= cmp) << (i + 2)
		mask |= b2i(a3 <= cmp) << (i + 3)
		mask |= b2i(a4 <= cmp) << (i + 4)
		mask |= b2i(a5 <= cmp) << (i + 5)
		mask |= b2i(a6 <= cmp) << (i + 6)
		mask |= b2i(a7 <= cmp) << (i + 7)
	}
	return
}

func CompareBlockGt[T NumericTypes](arr []T, cmp T) (mask uint64) {
	_ = arr[BlockRows-1]
	for i := 0; i < BlockRows; i += 8 {
		a0 := arr[i+0]
		a1 := arr[i+1]
		a2 := arr[i+2]
		a3 := arr[i+3]
		a4 := arr[i+4]
		a5 := arr[i+5]
		a6 := arr[i+6]
		a7 := arr[i+7]

		mask |= b2i(a0 > cmp) << (i + 0)
		mask |= b2i(a1 > cmp) << (i + 1)
		mask |= b2i(a2 > cmp) << (i + 2)
		mask |= b2i(a3 > cmp) << (i + 3)
		mask |= b2i(a4 > cmp) << (i + 4)
		mask |= b2i(a5 > cmp) << (i + 5)
		mask |= b2i(a6 > cmp) << (i + 6)
		mask |= b2i(a7 > cmp) << (i + 7)
	}
	return
}

func CompareBlockGe[T NumericTypes](arr []T, cmp T) (mask uint64) {
	_ = arr[BlockRows-1]
	for i := 0; i < BlockRows; i += 8 {
		a0 := arr[i+0]
		a1 := arr[i+1]
		a2 := arr[i+2]
		a3 := arr[i+3]
		a4 := arr[i+4]
		a5 := arr[i+5]
		a6 := arr[i+6]
		a7 := arr[i+7]

		mask |= b2i(a0 >= cmp) << (i + 0)
		mask |= b2i(a1 >= cmp) << (i + 1)
		mask |= b2i(a2 >= cmp) << (i + 2)
		mask |= b2i(a3 >= cmp) << (i + 3)
		mask |= b2i(a4 >= cmp) << (i + 4)
		mask |= b2i(a5 >= cmp) << (i + 5)
		mask |= b2i(a6 >= cmp) << (i + 6)
		mask |= b2i(a7 >= cmp) << (i + 7)
	}
	return
}

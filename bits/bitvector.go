package bits

import (
	"fmt"
	"math/bits"
)

const WordBits = 64

// BitVector is an immutable fixed-length bit sequence, one bit per row of
// the space it was built over. Alongside the raw words it carries a
// cumulative per-word popcount so rank/select style lookups stay cheap at
// trace-scale row counts.
type BitVector struct {
	words []uint64
	// counts[w] = number of set bits in words[:w]
	counts []uint32
	size   uint32
	set    uint32
}

func (v *BitVector) Size() uint32 {
	return v.size
}

func (v *BitVector) CountSetBits() uint32 {
	return v.set
}

func (v *BitVector) IsSet(pos uint32) bool {
	if pos >= v.size {
		panic(fmt.Sprintf("bit %d out of bounds, size %d", pos, v.size))
	}
	return (v.words[pos>>6]>>(pos&63))&1 == 1
}

// IndexOfNthSet returns the absolute position of the n-th set bit in
// ascending order, n being 0-indexed. n must be < CountSetBits().
func (v *BitVector) IndexOfNthSet(n uint32) uint32 {
	if n >= v.set {
		panic(fmt.Sprintf("set bit %d out of bounds, have %d", n, v.set))
	}

	// last word whose cumulative count is still <= n
	lo, hi := 0, len(v.words)-1
	for lo < hi {
		mid := (lo + hi + 1) >> 1
		if v.counts[mid] <= n {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return uint32(lo)*WordBits + selectInWord(v.words[lo], n-v.counts[lo])
}

// selectInWord finds the position of the n-th set bit inside a single word
// by peeling lower set bits off, same trick as index extraction.
func selectInWord(w uint64, n uint32) uint32 {
	for ; n > 0; n-- {
		w &= w - 1
	}
	return uint32(bits.TrailingZeros64(w))
}

// ToIndices writes the positions of all set bits into out in ascending
// order and returns how many were written. out must hold CountSetBits()
// entries.
func (v *BitVector) ToIndices(out []uint32) int {
	filled := 0
	for wi, w := range v.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out[filled] = uint32(wi*WordBits + tz)
			filled++
			w &= w - 1
		}
	}
	return filled
}

func And(a, b *BitVector) *BitVector {
	if a.size != b.size {
		panic(fmt.Sprintf("bit vector size mismatch %d != %d", a.size, b.size))
	}
	words := make([]uint64, len(a.words))
	for i := range words {
		words[i] = a.words[i] & b.words[i]
	}
	return fromWords(words, a.size)
}

func Or(a, b *BitVector) *BitVector {
	if a.size != b.size {
		panic(fmt.Sprintf("bit vector size mismatch %d != %d", a.size, b.size))
	}
	words := make([]uint64, len(a.words))
	for i := range words {
		words[i] = a.words[i] | b.words[i]
	}
	return fromWords(words, a.size)
}

// FromIndices builds a vector of the given size with exactly the listed
// positions set. Order of rows does not matter, duplicates collapse.
func FromIndices(size uint32, rows []uint32) *BitVector {
	words := make([]uint64, wordCount(size))
	for _, r := range rows {
		if r >= size {
			panic(fmt.Sprintf("row %d out of bounds, size %d", r, size))
		}
		words[r>>6] |= 1 << (r & 63)
	}
	return fromWords(words, size)
}

func fromWords(words []uint64, size uint32) *BitVector {
	v := &BitVector{
		words:  words,
		counts: make([]uint32, len(words)),
		size:   size,
	}
	running := uint32(0)
	for i, w := range words {
		v.counts[i] = running
		running += uint32(bits.OnesCount64(w))
	}
	v.set = running
	return v
}

func wordCount(size uint32) int {
	return int(size+WordBits-1) / WordBits
}

package bits

import "fmt"

// Builder stages a BitVector in one strictly left-to-right pass: every
// position from 0 up to the declared size gets appended exactly once,
// then Build consumes the builder. Single writer only.
type Builder struct {
	words []uint64
	size  uint32
	pos   uint32
}

func NewBuilder(size uint32) *Builder {
	return &Builder{
		words: make([]uint64, wordCount(size)),
		size:  size,
	}
}

func (b *Builder) Size() uint32 {
	return b.size
}

// Position returns how many bits were appended so far.
func (b *Builder) Position() uint32 {
	return b.pos
}

func (b *Builder) Append(set bool) {
	if b.pos >= b.size {
		panic(fmt.Sprintf("append past declared size %d", b.size))
	}
	if set {
		b.words[b.pos>>6] |= 1 << (b.pos & 63)
	}
	b.pos++
}

// AppendWord appends WordBits result bits at once. The current position
// must be word aligned with a full word of room left; the aligned scan
// kernels are the only intended caller.
func (b *Builder) AppendWord(mask uint64) {
	if b.pos&63 != 0 {
		panic(fmt.Sprintf("append word at unaligned position %d", b.pos))
	}
	if b.pos+WordBits > b.size {
		panic(fmt.Sprintf("append word past declared size %d, pos %d", b.size, b.pos))
	}
	b.words[b.pos>>6] = mask
	b.pos += WordBits
}

// Build finalizes the vector. Calling it before every position was
// covered is a programmer error.
func (b *Builder) Build() *BitVector {
	if b.pos != b.size {
		panic(fmt.Sprintf("builder covered %d of %d bits", b.pos, b.size))
	}
	v := fromWords(b.words, b.size)
	b.words = nil
	return v
}

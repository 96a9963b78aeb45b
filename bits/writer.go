package bits

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// BinWriter encodes fixed-width values into a caller-provided buffer,
// optionally growing it when enabled.
type BinWriter struct {
	pos   int
	data  []byte
	size  int
	order binary.ByteOrder

	growingEnabled bool
}

func NewBinWriter(buf []byte, order binary.ByteOrder) BinWriter {
	return BinWriter{
		data:  buf,
		size:  len(buf),
		order: order,
	}
}

func (w *BinWriter) EnableGrowing() {
	w.growingEnabled = true
}

func (w *BinWriter) Position() int {
	return w.pos
}

func (w *BinWriter) Bytes() []byte {
	return w.data[:w.pos]
}

func (w *BinWriter) grow(atLeast int) {
	newSize := w.size * 2
	if atLeast > newSize {
		newSize += atLeast
	}

	newBuf := make([]byte, newSize)
	copy(newBuf, w.data[:w.pos])
	w.data = newBuf
	w.size = newSize
}

func (w *BinWriter) tryGrow(n int) {
	if (w.pos + n) > w.size {
		if w.growingEnabled {
			w.grow(n)
		} else {
			panic(fmt.Sprintf("bin writer growing is disabled on pos : %d, try grow %d, from size : %d", w.pos, n, w.size))
		}
	}
}

func (w *BinWriter) PutU8(v uint8) {
	w.tryGrow(1)
	w.data[w.pos] = v
	w.pos++
}

func (w *BinWriter) PutU32(v uint32) {
	w.tryGrow(4)
	w.order.PutUint32(w.data[w.pos:], v)
	w.pos += 4
}

func (w *BinWriter) PutU64(v uint64) {
	w.tryGrow(8)
	w.order.PutUint64(w.data[w.pos:], v)
	w.pos += 8
}

func (w *BinWriter) PutUUID(u uuid.UUID) {
	w.tryGrow(16)
	copy(w.data[w.pos:], u[:])
	w.pos += 16
}

func (w *BinWriter) Write(p []byte) (int, error) {
	w.tryGrow(len(p))
	n := copy(w.data[w.pos:], p)
	w.pos += n
	return n, nil
}

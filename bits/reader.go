package bits

import (
	"encoding/binary"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrShortBuffer = errors.New("not enough bytes in buffer")
)

// BinReader decodes fixed-width values from an in-memory buffer.
type BinReader struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

func NewBinReader(data []byte, order binary.ByteOrder) *BinReader {
	return &BinReader{data: data, order: order}
}

func (r *BinReader) Position() int {
	return r.pos
}

func (r *BinReader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, ErrShortBuffer
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *BinReader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *BinReader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

func (r *BinReader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

func (r *BinReader) ReadUUID() (result uuid.UUID, err error) {
	b, err := r.take(16)
	if err != nil {
		return result, err
	}
	copy(result[:], b)
	return result, nil
}

// Rest returns everything after the current position without consuming it.
func (r *BinReader) Rest() []byte {
	return r.data[r.pos:]
}

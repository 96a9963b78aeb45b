package ops

import "golang.org/x/exp/constraints"

type NumericTypes interface {
	constraints.Integer | constraints.Float
}

type SignedInts interface {
	constraints.Signed
}

type UnsignedInts interface {
	constraints.Unsigned
}

type Floats interface {
	constraints.Float
}

func b2i(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

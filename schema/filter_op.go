package schema

import "fmt"

type FilterOp byte

const (
	EqFilterOp FilterOp = iota
	NeFilterOp
	LtFilterOp
	LeFilterOp
	GtFilterOp
	GeFilterOp
)

func (f FilterOp) String() string {
	switch f {
	case EqFilterOp:
		return "EQ"
	case NeFilterOp:
		return "NE"
	case LtFilterOp:
		return "LT"
	case LeFilterOp:
		return "LE"
	case GtFilterOp:
		return "GT"
	case GeFilterOp:
		return "GE"
	default:
		panic(fmt.Sprintf("unknown filter op %v", byte(f)))
	}
}

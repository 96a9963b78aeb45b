package schema

type ColumnType uint8

const (
	Int8ColumnType ColumnType = iota
	Int16ColumnType
	Int32ColumnType
	Int64ColumnType

	Float64ColumnType
	Float32ColumnType

	Uint64ColumnType
	Uint8ColumnType
	Uint32ColumnType
	Uint16ColumnType
)

func (c ColumnType) String() string {
	switch c {
	case Int8ColumnType:
		return "Int8"
	case Int16ColumnType:
		return "Int16"
	case Int32ColumnType:
		return "Int32"
	case Int64ColumnType:
		return "Int64"
	case Float64ColumnType:
		return "Float64"
	case Float32ColumnType:
		return "Float32"
	case Uint64ColumnType:
		return "Uint64"
	case Uint8ColumnType:
		return "Uint8"
	case Uint32ColumnType:
		return "Uint32"
	case Uint16ColumnType:
		return "Uint16"
	default:
		return ""
	}
}

func (c ColumnType) Size() int {
	switch c {
	case Int8ColumnType, Uint8ColumnType:
		return 1
	case Int16ColumnType, Uint16ColumnType:
		return 2
	case Int32ColumnType, Float32ColumnType, Uint32ColumnType:
		return 4
	case Int64ColumnType, Float64ColumnType, Uint64ColumnType:
		return 8
	default:
		panic("unknown column type " + c.String())
	}
}

func (c ColumnType) IsFloat() bool {
	return c == Float64ColumnType || c == Float32ColumnType
}

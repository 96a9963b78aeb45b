package ops

type Bounds[T NumericTypes] struct {
	Min T
	Max T
}

type BoundsFloat struct {
	Min float64
	Max float64
}

func (b *BoundsFloat) Morph(other BoundsFloat) bool {
	changes := 0

	if other.Min < b.Min {
		b.Min = other.Min
		changes += 1
	}
	if other.Max > b.Max {
		b.Max = other.Max
		changes += 1
	}

	return changes != 0
}

func GetMaxMin[T NumericTypes](arr []T) Bounds[T] {
	resultBounds := Bounds[T]{
		Min: arr[0],
		Max: arr[0],
	}

	for _, v := range arr[1:] {
		if v < resultBounds.Min {
			resultBounds.Min = v
		}
		if v > resultBounds.Max {
			resultBounds.Max = v
		}
	}
	return resultBounds
}

func GetMaxMinBoundsFloat[T NumericTypes](arr []T) BoundsFloat {
	b := GetMaxMin(arr)
	return BoundsFloat{
		Min: float64(b.Min),
		Max: float64(b.Max),
	}
}

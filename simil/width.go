package simil

import "github.com/ashvardanian/stringzilla-go/internal/conv"

// DistanceWidth identifies the narrowest unsigned integer type that
// can hold every distance value a given pair of inputs could produce.
type DistanceWidth int

const (
	Width8 DistanceWidth = iota
	Width16
	WidthNative
)

func (w DistanceWidth) String() string {
	switch w {
	case Width8:
		return "u8"
	case Width16:
		return "u16"
	default:
		return "usize"
	}
}

// SelectDistanceWidth reports the narrowest width that can safely hold
// any distance between a string of length lenA and one of length lenB.
// The distance is bounded by max(lenA, lenB)+1, so callers packing
// large batches of distances into a result array can pick u8/u16 over
// a full native int and cut the array's footprint accordingly.
func SelectDistanceWidth(lenA, lenB int) DistanceWidth {
	longer := lenA
	if lenB > longer {
		longer = lenB
	}
	bound := longer + 1
	switch {
	case conv.FitsUint8(bound):
		return Width8
	case conv.FitsUint16(bound):
		return Width16
	default:
		return WidthNative
	}
}

package medial

import "fmt"

// FillRule decides which points are inside a path with several contours.
//
// NonZero fills every point around which the contours wind a non-zero
// number of times. EvenOdd fills points enclosed an odd number of times,
// regardless of direction.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fills reports whether a point with the given winding number is inside.
func (fr FillRule) Fills(winding int) bool {
	switch fr {
	case NonZero:
		return winding != 0
	case EvenOdd:
		return winding%2 != 0
	default:
		panic(fmt.Sprintf("invalid fill rule %d", int(fr)))
	}
}

func (fr FillRule) String() string {
	switch fr {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(fr))
	}
}

package hexgeo

import "fmt"

// HexFace identifies one of the six sides of a hexagonal tile, in a fixed
// cyclic (clockwise) order starting at the top edge.
type HexFace int

const (
	Top HexFace = iota
	UpperRight
	LowerRight
	Bottom
	LowerLeft
	UpperLeft
)

// numFaces is the number of distinct hex faces.
const numFaces = 6

// String returns the canonical name of a face.
func (f HexFace) String() string {
	switch f {
	case Top:
		return "Top"
	case UpperRight:
		return "UpperRight"
	case LowerRight:
		return "LowerRight"
	case Bottom:
		return "Bottom"
	case LowerLeft:
		return "LowerLeft"
	case UpperLeft:
		return "UpperLeft"
	default:
		return fmt.Sprintf("HexFace(%d)", int(f))
	}
}

// RotateCW is a tile rotation, expressed as a number of sixth-turns
// clockwise, in {0, ..., 5}.
type RotateCW int

// Normalise reduces a rotation to the canonical range [0, 6).
func (r RotateCW) Normalise() RotateCW {
	r = r % numFaces
	if r < 0 {
		r += numFaces
	}
	return r
}

// Add combines two rotations, wrapping modulo six.
func (r RotateCW) Add(other RotateCW) RotateCW {
	return (r + other).Normalise()
}

// Rotate returns the face reached by rotating f clockwise by r sixth-turns.
func (f HexFace) Rotate(r RotateCW) HexFace {
	rot := int(r.Normalise())
	return HexFace((int(f) + rot) % numFaces)
}

// Opposite returns the face directly across the tile from f: the face that
// a neighbouring hex presents back along the same edge.
func (f HexFace) Opposite() HexFace {
	return HexFace((int(f) + numFaces/2) % numFaces)
}

// AllFaces lists the six faces in their canonical cyclic order.
func AllFaces() []HexFace {
	return []HexFace{Top, UpperRight, LowerRight, Bottom, LowerLeft, UpperLeft}
}

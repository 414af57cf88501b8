package tile

import "fmt"

// Colour is the colour class of a tile, which determines what it may be
// upgraded to and, for off-board tiles, how its revenue may vary by phase.
type Colour int

const (
	Empty Colour = iota
	Yellow
	Green
	Brown
	Grey
	Red
)

// String returns the canonical name of a colour class.
func (c Colour) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	case Brown:
		return "Brown"
	case Grey:
		return "Grey"
	case Red:
		return "Red"
	default:
		return fmt.Sprintf("Colour(%d)", int(c))
	}
}

// rank orders colour classes for upgrade comparisons. Red (off-board, fixed)
// sits outside the normal yellow/green/brown/grey upgrade ladder but still
// needs a total order for comparisons, so it ranks above grey.
func (c Colour) rank() int {
	return int(c)
}

// LessThan reports whether c is a strictly lower colour class than other,
// i.e. other is a legal upgrade target by colour alone.
func (c Colour) LessThan(other Colour) bool {
	return c.rank() < other.rank()
}

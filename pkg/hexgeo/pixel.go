package hexgeo

import "math"

// HexCorner is one of the six corners of a drawn hexagon, in clockwise
// order. For a flat-top hex, corner 0 is the rightmost corner (shared by
// the UpperRight and LowerRight faces), and face f spans corners
// (f+4)%6 and (f+5)%6.
type HexCorner struct {
	X, Y float64
}

// Transform is the pure geometric mapping from a hex address to pixel
// space: its centre and the six corner points of its
// outline. It depends only on the hex's Coordinates convention, its
// address, and the pixel size of one hex -- never on tile content -- so
// external renderers can compute it without importing pkg/tilemap. This is
// the "prepare_to_draw" transform spec.md 4.D contracts out to the
// rendering collaborator; pkg/render is this module's own implementation
// of that collaborator.
type Transform struct {
	CenterX, CenterY float64
	Corners          [6]HexCorner
}

// PrepareToDraw computes the pixel-space Transform for addr under coords,
// with size as the distance from a hex's centre to any corner. Flat-top
// hexes are laid out with columns advancing by 1.5*size horizontally and
// odd/even columns offset vertically by half a hex height, following the
// odd-q/even-q convention coord.go's Neighbour already uses for adjacency.
// Pointed-top hexes are the row/column transpose of the same layout.
func (c Coordinates) PrepareToDraw(addr Address, size float64) Transform {
	var cx, cy float64
	switch c.Orientation {
	case FlatTop:
		cx = size * 1.5 * float64(addr.Col)
		rowOffset := 0.0
		if c.colIsOffset(addr.Col) {
			rowOffset = size * math.Sqrt(3) / 2
		}
		cy = size*math.Sqrt(3)*float64(addr.Row) + rowOffset
	default: // PointedTop
		cy = size * 1.5 * float64(addr.Row)
		colOffset := 0.0
		if c.rowIsOffset(addr.Row) {
			colOffset = size * math.Sqrt(3) / 2
		}
		cx = size*math.Sqrt(3)*float64(addr.Col) + colOffset
	}

	var corners [6]HexCorner
	startAngle := 0.0
	if c.Orientation == PointedTop {
		startAngle = math.Pi / 6
	}
	for i := 0; i < 6; i++ {
		angle := startAngle + float64(i)*math.Pi/3
		corners[i] = HexCorner{
			X: cx + size*math.Cos(angle),
			Y: cy + size*math.Sin(angle),
		}
	}
	return Transform{CenterX: cx, CenterY: cy, Corners: corners}
}

// colIsOffset reports whether column col is pushed down half a hex height,
// under FirstRow's odd/even-columns setting.
func (c Coordinates) colIsOffset(col int) bool {
	parity := col % 2
	if parity < 0 {
		parity += 2
	}
	oddIsFirst := c.FirstRow == OddColumns
	return (parity == 1) == oddIsFirst
}

// rowIsOffset is colIsOffset's PointedTop analogue.
func (c Coordinates) rowIsOffset(row int) bool {
	parity := row % 2
	if parity < 0 {
		parity += 2
	}
	oddIsFirst := c.FirstRow == OddRows
	return (parity == 1) == oddIsFirst
}

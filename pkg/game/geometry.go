package game

import "github.com/robmoss/rusty-train-sub002/pkg/hexgeo"

// Geometry describes the board shape a map is built over: the coordinate
// convention in force and the full set of hex addresses in play. A game
// may offer more than one geometry (e.g. a short "introductory" board and
// the full map).
type Geometry struct {
	Name      string
	Coords    hexgeo.Coordinates
	Addresses []hexgeo.Address
}

// Rectangle builds a Geometry covering every (row, column) pair in
// [0,rows) x [0,cols), a common shape for a rectangular board section.
func Rectangle(name string, coords hexgeo.Coordinates, rows, cols int) Geometry {
	addrs := make([]hexgeo.Address, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			addrs = append(addrs, hexgeo.Address{Row: r, Col: c})
		}
	}
	return Geometry{Name: name, Coords: coords, Addresses: addrs}
}

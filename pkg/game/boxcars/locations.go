package boxcars

import "github.com/robmoss/rusty-train-sub002/pkg/hexgeo"

// The default board is a single north-south strip of six hexes: Great
// Eastern's home city, a plain track tile, two through-towns, another
// plain track tile, and Pacific Rail's home city.
var (
	AddrGreatEasternHome = hexgeo.Address{Row: 0, Col: 0}
	AddrTrackNorth       = hexgeo.Address{Row: 1, Col: 0}
	AddrTownNorth        = hexgeo.Address{Row: 2, Col: 0}
	AddrTownSouth        = hexgeo.Address{Row: 3, Col: 0}
	AddrTrackSouth       = hexgeo.Address{Row: 4, Col: 0}
	AddrPacificRailHome  = hexgeo.Address{Row: 5, Col: 0}
)

func defaultAddresses() []hexgeo.Address {
	return []hexgeo.Address{
		AddrGreatEasternHome,
		AddrTrackNorth,
		AddrTownNorth,
		AddrTownSouth,
		AddrTrackSouth,
		AddrPacificRailHome,
	}
}

package boxcars

import (
	"github.com/robmoss/rusty-train-sub002/pkg/catalogue"
	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
)

// Tile names, exported so a map descriptor or test fixture can reference
// them by name.
const (
	TileGreatEasternHome = "GE-HOME"
	TilePacificRailHome  = "PR-HOME"
	TilePacificRailGreen = "PR-HOME-G"
	TilePlainTrack       = "PLAIN"
	TileTown             = "TOWN10"
)

func tileGreatEasternHome() *tile.Tile {
	return tile.New(tile.Yellow, TileGreatEasternHome, []tile.Track{
		tile.NewTrack(tile.CityEnd(0), tile.FaceEnd(hexgeo.Bottom), tile.Straight),
	}, []tile.City{{Revenue: 0, Slots: 1}}, nil)
}

func tilePacificRailHome() *tile.Tile {
	return tile.New(tile.Yellow, TilePacificRailHome, []tile.Track{
		tile.NewTrack(tile.FaceEnd(hexgeo.Top), tile.CityEnd(0), tile.Straight),
	}, []tile.City{{Revenue: 0, Slots: 1}}, nil)
}

// tilePacificRailGreen is the upgraded version of Pacific Rail's home
// city: two token slots instead of one, reachable by the same Top face.
func tilePacificRailGreen() *tile.Tile {
	return tile.New(tile.Green, TilePacificRailGreen, []tile.Track{
		tile.NewTrack(tile.FaceEnd(hexgeo.Top), tile.CityEnd(0), tile.Straight),
	}, []tile.City{{Revenue: 30, Slots: 2}}, nil)
}

func tilePlainTrack() *tile.Tile {
	return tile.New(tile.Yellow, TilePlainTrack, []tile.Track{
		tile.NewTrack(tile.FaceEnd(hexgeo.Top), tile.FaceEnd(hexgeo.Bottom), tile.Straight),
	}, nil, nil)
}

// tileTown is a through-town: a single straight track from Top to Bottom
// with a dit embedded along its length, worth 10.
func tileTown() *tile.Tile {
	track := tile.NewTrack(tile.FaceEnd(hexgeo.Top), tile.FaceEnd(hexgeo.Bottom), tile.Straight).WithMidDit(0)
	return tile.New(tile.Yellow, TileTown, []tile.Track{track}, nil, []tile.Dit{{Revenue: 10, Shape: "circle"}})
}

// buildCatalogue registers every tile Boxcars uses. The two home cities
// and the green upgrade are special (pre-placed / upgrade-only, not
// player stock); plain track and town tiles have a small player-placeable
// stock.
func buildCatalogue() *catalogue.Catalogue {
	return catalogue.NewBuilder().
		Special(tileGreatEasternHome()).
		Special(tilePacificRailHome()).
		Special(tilePacificRailGreen()).
		Available(tilePlainTrack(), 6).
		Available(tileTown(), 2).
		Build()
}

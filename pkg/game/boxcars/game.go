package boxcars

import (
	"fmt"

	"github.com/robmoss/rusty-train-sub002/pkg/catalogue"
	"github.com/robmoss/rusty-train-sub002/pkg/game"
	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/route"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
	"github.com/robmoss/rusty-train-sub002/pkg/tilemap"
)

const (
	CompanyGreatEastern = "Great Eastern"
	CompanyPacificRail  = "Pacific Rail"

	BonusExpressConnection = "express-connection"
)

var phaseNames = []string{"Yellow", "Green", "Brown"}

// Boxcars is a small worked Game implementation: two companies running a
// single north-south corridor of track, three trains, and one connection
// bonus between its two through-towns. The zero value is ready to use;
// its only mutable state is the active phase index.
type Boxcars struct {
	phaseIx int
}

// New returns a Boxcars game at phase 0 ("Yellow").
func New() *Boxcars { return &Boxcars{} }

func (b *Boxcars) Name() string { return "Boxcars" }

// DefaultGeometry is the six-hex corridor Boxcars' tiles are laid out
// over.
func DefaultGeometry() game.Geometry {
	return game.Geometry{
		Name:      "corridor",
		Coords:    hexgeo.DefaultCoordinates(),
		Addresses: defaultAddresses(),
	}
}

func (b *Boxcars) CreateMap(geo game.Geometry) *tilemap.Map {
	return tilemap.New(geo.Coords, b.TileCatalogue(), geo.Addresses)
}

// SetupDefaultMap builds the default geometry, lays down every starting
// tile, and places each company's home token -- the board the end-to-end
// scenarios run against.
func (b *Boxcars) SetupDefaultMap() (*tilemap.Map, error) {
	m := b.CreateMap(DefaultGeometry())

	placements := []struct {
		addr hexgeo.Address
		name string
	}{
		{AddrGreatEasternHome, TileGreatEasternHome},
		{AddrTrackNorth, TilePlainTrack},
		{AddrTownNorth, TileTown},
		{AddrTownSouth, TileTown},
		{AddrTrackSouth, TilePlainTrack},
		{AddrPacificRailHome, TilePacificRailHome},
	}
	for _, p := range placements {
		var err error
		m, err = m.PlaceTile(p.addr, p.name, hexgeo.RotateCW(0))
		if err != nil {
			return nil, fmt.Errorf("boxcars: placing %s at %v: %w", p.name, p.addr, err)
		}
	}

	m = m.SetTokenAt(AddrGreatEasternHome, tile.TokenSpace{CityIndex: 0, SlotIndex: 0}, tilemap.Token{Company: CompanyGreatEastern})
	m = m.SetTokenAt(AddrPacificRailHome, tile.TokenSpace{CityIndex: 0, SlotIndex: 0}, tilemap.Token{Company: CompanyPacificRail})

	return m, nil
}

func (b *Boxcars) Companies() []game.Company {
	return []game.Company{
		{
			Name:      CompanyGreatEastern,
			Token:     tilemap.Token{Company: CompanyGreatEastern},
			HomeHexes: []string{hexgeo.DefaultCoordinates().Format(AddrGreatEasternHome)},
		},
		{
			Name:      CompanyPacificRail,
			Token:     tilemap.Token{Company: CompanyPacificRail},
			HomeHexes: []string{hexgeo.DefaultCoordinates().Format(AddrPacificRailHome)},
		},
	}
}

func twoStops() *int   { n := 2; return &n }
func threeStops() *int { n := 3; return &n }
func fourStops() *int  { n := 4; return &n }

func (b *Boxcars) Trains() []route.Train {
	return []route.Train{
		{Name: "2", Type: route.MustStop, MaxStops: twoStops(), Multiplier: 1},
		{Name: "3", Type: route.SkipTowns, MaxStops: threeStops(), Multiplier: 1},
		{Name: "4", Type: route.SkipAny, MaxStops: fourStops(), Multiplier: 1},
	}
}

func (b *Boxcars) TileCatalogue() *catalogue.Catalogue {
	return buildCatalogue()
}

func (b *Boxcars) BonusOptions() []game.BonusOption {
	return []game.BonusOption{
		{
			Key:         BonusExpressConnection,
			Description: "Bonus for running a train through both corridor towns",
		},
	}
}

func (b *Boxcars) Bonuses(flags map[string]bool) []route.Bonus {
	if !flags[BonusExpressConnection] {
		return nil
	}
	return []route.Bonus{
		route.ConnectionBonus{
			From:  AddrTownNorth,
			ToAny: []hexgeo.Address{AddrTownSouth},
			Bonus: 40,
		},
	}
}

func (b *Boxcars) SingleRouteConflicts() route.ConflictRule { return route.TrackOrCityHex }

func (b *Boxcars) MultipleRoutesConflicts() route.ConflictRule { return route.TrackOnly }

func (b *Boxcars) PhaseIx() int { return b.phaseIx }

// SetPhaseIx transitions Boxcars to phase ix. Reaching phase 1 ("Green")
// upgrades Pacific Rail's home city from a single-slot to a two-slot
// tile, relocating its token via the same token-upgrade solver a player
// placing the tile would trigger.
func (b *Boxcars) SetPhaseIx(m *tilemap.Map, ix int) (*tilemap.Map, error) {
	if ix < 0 || ix >= len(phaseNames) {
		return nil, fmt.Errorf("boxcars: phase index %d out of range [0,%d)", ix, len(phaseNames))
	}
	nm := m.SetPhase(phaseNames[ix])
	if ix >= 1 {
		if t, _, ok := nm.TileAt(AddrPacificRailHome); ok && t.Name == TilePacificRailHome {
			upgraded, err := nm.PlaceTile(AddrPacificRailHome, TilePacificRailGreen, hexgeo.RotateCW(0))
			if err != nil {
				return nil, fmt.Errorf("boxcars: upgrading Pacific Rail's home on phase change: %w", err)
			}
			nm = upgraded
		}
	}
	b.phaseIx = ix
	return nm, nil
}

func (b *Boxcars) PhaseNames() []string {
	return append([]string(nil), phaseNames...)
}

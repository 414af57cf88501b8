package tilemap

import (
	"sort"

	"github.com/robmoss/rusty-train-sub002/pkg/catalogue"
	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
)

// TokenDescr names one placed token by its slot and owning company, the
// serialisable form of a (TokenSpace, Token) pair.
type TokenDescr struct {
	SpaceIndex int    `yaml:"space_index"`
	Token      string `yaml:"token_name"`
}

// HexDescr is the serialisable state of one hex: either empty, or a
// placed tile with rotation and token placements.
type HexDescr struct {
	Address  string       `yaml:"address"`
	Empty    bool         `yaml:"empty"`
	TileName string       `yaml:"tile_name,omitempty"`
	Rotation int          `yaml:"rotation,omitempty"`
	Tokens   []TokenDescr `yaml:"tokens,omitempty"`
}

// Descr is a flattened, serialisable description of a Map: every hex in
// address-sorted order, either empty or carrying a placed tile. It
// supports a round trip (build a Map from a Descr, or derive one from a
// Map), used by pkg/ioformat to save and load map files.
type Descr struct {
	GameName string     `yaml:"game_name"`
	Hexes    []HexDescr `yaml:"hexes"`
}

// FromMap derives a Descr from m's current state, in ascending address
// order, suitable for serialisation.
func FromMap(gameName string, m *Map) Descr {
	d := Descr{GameName: gameName}
	for _, addr := range m.HexIter() {
		h := m.hexes[addr]
		hd := HexDescr{Address: m.Coords.Format(addr)}
		if !h.hasTile {
			hd.Empty = true
			d.Hexes = append(d.Hexes, hd)
			continue
		}
		hd.TileName = h.tileName
		hd.Rotation = int(h.rotation)
		spaces := make([]tile.TokenSpace, 0, len(h.tokens))
		for ts := range h.tokens {
			spaces = append(spaces, ts)
		}
		sort.Slice(spaces, func(i, j int) bool {
			if spaces[i].CityIndex != spaces[j].CityIndex {
				return spaces[i].CityIndex < spaces[j].CityIndex
			}
			return spaces[i].SlotIndex < spaces[j].SlotIndex
		})
		spaceIndex := map[tile.TokenSpace]int{}
		if t, err := m.Catalogue.Lookup(h.tileName); err == nil {
			for i, ts := range t.TokenSpaces() {
				spaceIndex[ts] = i
			}
		}
		for _, ts := range spaces {
			hd.Tokens = append(hd.Tokens, TokenDescr{
				SpaceIndex: spaceIndex[ts],
				Token:      h.tokens[ts].Company,
			})
		}
		d.Hexes = append(d.Hexes, hd)
	}
	return d
}

// BuildMap constructs a fresh Map from a Descr, against the given
// catalogue and coordinate convention. City token-space indices are
// resolved against each tile's TokenSpaces() in order, matching
// SpaceIndex to the space's position.
func BuildMap(d Descr, coords hexgeo.Coordinates, cat *catalogue.Catalogue) (*Map, error) {
	addrs := make([]hexgeo.Address, 0, len(d.Hexes))
	parsed := make(map[string]hexgeo.Address, len(d.Hexes))
	for _, hd := range d.Hexes {
		a, err := coords.Parse(hd.Address)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
		parsed[hd.Address] = a
	}

	m := &Map{
		Coords:    coords,
		Catalogue: cat,
		addresses: addrs,
		hexes:     make(map[hexgeo.Address]*hexState, len(addrs)),
		barriers:  map[barrierKey]bool{},
	}
	for _, hd := range d.Hexes {
		addr := parsed[hd.Address]
		h := emptyHexState()
		if !hd.Empty {
			t, err := cat.Lookup(hd.TileName)
			if err != nil {
				return nil, err
			}
			h.hasTile = true
			h.tileName = hd.TileName
			h.rotation = hexgeo.RotateCW(hd.Rotation)
			spaces := t.TokenSpaces()
			for _, td := range hd.Tokens {
				if td.SpaceIndex < 0 || td.SpaceIndex >= len(spaces) {
					continue
				}
				h.tokens[spaces[td.SpaceIndex]] = Token{Company: td.Token}
			}
		}
		m.hexes[addr] = h
	}
	return m, nil
}

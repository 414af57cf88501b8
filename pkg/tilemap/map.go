package tilemap

import (
	"reflect"
	"sort"

	"github.com/robmoss/rusty-train-sub002/pkg/catalogue"
	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
)

// hexState is the per-hex mutable state: which tile is placed there (if
// any), its rotation, and the tokens occupying its token spaces.
type hexState struct {
	tileName string
	hasTile  bool
	rotation hexgeo.RotateCW
	tokens   map[tile.TokenSpace]Token
	labels   []tile.LabelPlacement
}

func emptyHexState() *hexState {
	return &hexState{tokens: map[tile.TokenSpace]Token{}}
}

func (h *hexState) clone() *hexState {
	nh := *h
	nh.tokens = make(map[tile.TokenSpace]Token, len(h.tokens))
	for ts, tok := range h.tokens {
		nh.tokens[ts] = tok
	}
	nh.labels = append([]tile.LabelPlacement(nil), h.labels...)
	return &nh
}

type barrierKey struct {
	addr hexgeo.Address
	face hexgeo.HexFace
}

// Map owns a fixed set of hex addresses, a reference catalogue, and the
// mutable per-hex state placed within it. A Map value is cheap to clone
// (the hex-state map is only copy-on-write at the single hex being
// mutated), so a worker goroutine running a long search can cheaply take
// a read-only snapshot (see pkg/search).
type Map struct {
	Coords     hexgeo.Coordinates
	Catalogue  *catalogue.Catalogue
	addresses  []hexgeo.Address
	hexes      map[hexgeo.Address]*hexState
	barriers   map[barrierKey]bool
	phase      string
}

// New builds a Map over the given addresses, all initially empty, backed
// by cat.
func New(coords hexgeo.Coordinates, cat *catalogue.Catalogue, addresses []hexgeo.Address) *Map {
	hexes := make(map[hexgeo.Address]*hexState, len(addresses))
	for _, a := range addresses {
		hexes[a] = emptyHexState()
	}
	return &Map{
		Coords:    coords,
		Catalogue: cat,
		addresses: append([]hexgeo.Address(nil), addresses...),
		hexes:     hexes,
		barriers:  map[barrierKey]bool{},
	}
}

// clone returns a shallow copy of m whose hexes/barriers maps are
// independently mutable, sharing unchanged hexState pointers with the
// receiver.
func (m *Map) clone() *Map {
	nm := *m
	nm.hexes = make(map[hexgeo.Address]*hexState, len(m.hexes))
	for a, h := range m.hexes {
		nm.hexes[a] = h
	}
	nm.barriers = make(map[barrierKey]bool, len(m.barriers))
	for k, v := range m.barriers {
		nm.barriers[k] = v
	}
	return &nm
}

func (m *Map) inMap(addr hexgeo.Address) bool {
	_, ok := m.hexes[addr]
	return ok
}

// TileAt returns the tile placed at addr (and its rotation), or false if
// the hex is empty or not part of the map.
func (m *Map) TileAt(addr hexgeo.Address) (t *tile.Tile, rot hexgeo.RotateCW, ok bool) {
	h, present := m.hexes[addr]
	if !present || !h.hasTile {
		return nil, 0, false
	}
	tl, err := m.Catalogue.Lookup(h.tileName)
	if err != nil {
		return nil, 0, false
	}
	return tl, h.rotation, true
}

// TokenAt returns the token occupying ts at addr, if any.
func (m *Map) TokenAt(addr hexgeo.Address, ts tile.TokenSpace) (Token, bool) {
	h, ok := m.hexes[addr]
	if !ok {
		return Token{}, false
	}
	tok, ok := h.tokens[ts]
	return tok, ok
}

// PlaceTile attempts to place the named tile, at the given rotation, at
// addr. It fails with PlacementRefused if addr is not part of the map,
// the tile has no stock remaining, or replacing a currently-tiled hex
// would drop a placed token that the upgrade solver cannot relocate. A
// name the catalogue does not know fails with the catalogue's own lookup
// error.
func (m *Map) PlaceTile(addr hexgeo.Address, name string, rot hexgeo.RotateCW) (*Map, error) {
	if !m.inMap(addr) {
		return nil, PlacementRefused{Reason: OutOfMap}
	}
	newTile, err := m.Catalogue.Lookup(name)
	if err != nil {
		return nil, err
	}
	avail, err := m.Catalogue.Availability(name)
	if err != nil {
		return nil, err
	}
	if avail == 0 {
		return nil, PlacementRefused{Reason: NoStock}
	}

	cur := m.hexes[addr]
	newHex := emptyHexState()
	newHex.hasTile = true
	newHex.tileName = name
	newHex.rotation = rot
	newHex.labels = append([]tile.LabelPlacement(nil), cur.labels...)

	if cur.hasTile {
		oldTile, err := m.Catalogue.Lookup(cur.tileName)
		if err != nil {
			return nil, err
		}
		placement, ok := solveTokenPlacement(oldTile, cur.rotation, cur.tokens, newTile, rot)
		if !ok {
			return nil, PlacementRefused{Reason: WouldDropTokens}
		}
		newHex.tokens = placement
	}

	nm := m.clone()
	nm.hexes[addr] = newHex
	if cur.hasTile {
		if nc, err := nm.Catalogue.Increment(cur.tileName); err == nil {
			nm.Catalogue = nc
		}
	}
	if nc, err := nm.Catalogue.Decrement(name); err == nil {
		nm.Catalogue = nc
	}
	return nm, nil
}

// RemoveTile clears addr back to empty, restoring the removed tile's
// availability and dropping any tokens placed on it.
func (m *Map) RemoveTile(addr hexgeo.Address) (*Map, error) {
	cur, ok := m.hexes[addr]
	if !ok {
		return nil, PlacementRefused{Reason: OutOfMap}
	}
	if !cur.hasTile {
		return m, nil
	}
	nm := m.clone()
	nm.hexes[addr] = emptyHexState()
	if nc, err := nm.Catalogue.Increment(cur.tileName); err == nil {
		nm.Catalogue = nc
	}
	return nm, nil
}

// SetTokenAt places tok at ts on the tile at addr. It is a silent no-op
// (returning the receiver unchanged) if addr has no tile or ts does not
// exist on that tile.
func (m *Map) SetTokenAt(addr hexgeo.Address, ts tile.TokenSpace, tok Token) *Map {
	t, _, ok := m.TileAt(addr)
	if !ok || !tokenSpaceExists(t, ts) {
		return m
	}
	nm := m.clone()
	h := m.hexes[addr].clone()
	h.tokens[ts] = tok
	nm.hexes[addr] = h
	return nm
}

// RemoveTokenAt clears any token at ts on the tile at addr.
func (m *Map) RemoveTokenAt(addr hexgeo.Address, ts tile.TokenSpace) *Map {
	h, ok := m.hexes[addr]
	if !ok {
		return m
	}
	if _, present := h.tokens[ts]; !present {
		return m
	}
	nm := m.clone()
	nh := h.clone()
	delete(nh.tokens, ts)
	nm.hexes[addr] = nh
	return nm
}

func tokenSpaceExists(t *tile.Tile, ts tile.TokenSpace) bool {
	for _, space := range t.TokenSpaces() {
		if space == ts {
			return true
		}
	}
	return false
}

// Placement names one hex/token-space pair occupied by a token, as
// returned by TokenPlacements.
type Placement struct {
	Addr  hexgeo.Address
	Space tile.TokenSpace
}

// TokenPlacements returns every (address, token-space) pair currently
// occupied by tok, in ascending (row, column, city, slot) order. This is
// the seed set pkg/route's path enumerator starts from: it begins one
// half-path per placement it returns.
func (m *Map) TokenPlacements(tok Token) []Placement {
	var out []Placement
	for _, addr := range m.HexIter() {
		h := m.hexes[addr]
		if !h.hasTile {
			continue
		}
		spaces := make([]tile.TokenSpace, 0, len(h.tokens))
		for ts, t := range h.tokens {
			if t == tok {
				spaces = append(spaces, ts)
			}
		}
		sort.Slice(spaces, func(i, j int) bool {
			if spaces[i].CityIndex != spaces[j].CityIndex {
				return spaces[i].CityIndex < spaces[j].CityIndex
			}
			return spaces[i].SlotIndex < spaces[j].SlotIndex
		})
		for _, ts := range spaces {
			out = append(out, Placement{Addr: addr, Space: ts})
		}
	}
	return out
}

// AddLabelAt attaches label at pos on the hex at addr; idempotent if the
// same label/pos pair is already present.
func (m *Map) AddLabelAt(addr hexgeo.Address, pos string, label tile.Label) *Map {
	h, ok := m.hexes[addr]
	if !ok {
		return m
	}
	placement := tile.LabelPlacement{Label: label, Pos: pos}
	for _, existing := range h.labels {
		if existing.Pos == placement.Pos && reflect.DeepEqual(existing.Label, placement.Label) {
			return m
		}
	}
	nm := m.clone()
	nh := h.clone()
	nh.labels = append(nh.labels, placement)
	nm.hexes[addr] = nh
	return nm
}

// AddBarrier marks the edge leaving addr via face as impassable.
// Idempotent.
func (m *Map) AddBarrier(addr hexgeo.Address, face hexgeo.HexFace) *Map {
	key := barrierKey{addr: addr, face: face}
	if m.barriers[key] {
		return m
	}
	nm := m.clone()
	nm.barriers[key] = true
	return nm
}

func (m *Map) hasBarrier(addr hexgeo.Address, face hexgeo.HexFace) bool {
	return m.barriers[barrierKey{addr: addr, face: face}]
}

// SetPhase records the game's current phase name, consulted by off-board
// revenue and tile-availability rules owned by pkg/game.
func (m *Map) SetPhase(phase string) *Map {
	if m.phase == phase {
		return m
	}
	nm := m.clone()
	nm.phase = phase
	return nm
}

// Phase returns the current phase name.
func (m *Map) Phase() string { return m.phase }

// HexIter returns every address in the map, in ascending (row, column)
// order.
func (m *Map) HexIter() []hexgeo.Address {
	out := append([]hexgeo.Address(nil), m.addresses...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// TileHexIter returns every address that currently has a tile placed.
func (m *Map) TileHexIter() []hexgeo.Address {
	var out []hexgeo.Address
	for _, a := range m.HexIter() {
		if m.hexes[a].hasTile {
			out = append(out, a)
		}
	}
	return out
}

// EmptyHexIter returns every address that currently has no tile placed.
func (m *Map) EmptyHexIter() []hexgeo.Address {
	var out []hexgeo.Address
	for _, a := range m.HexIter() {
		if !m.hexes[a].hasTile {
			out = append(out, a)
		}
	}
	return out
}

// NeighbourConnection resolves the step reached by crossing face f from
// addr: it exists iff the neighbouring address is part of the map, the
// edge is not barred, and the neighbouring tile actually has a
// Face{opposite(f)} connection node (i.e. some track reaches that face).
func (m *Map) NeighbourConnection(addr hexgeo.Address, f hexgeo.HexFace) (hexgeo.Address, hexgeo.HexFace, bool) {
	if m.hasBarrier(addr, f) {
		return hexgeo.Address{}, 0, false
	}
	nbrAddr, ok := m.Coords.Neighbour(addr, f)
	if !ok || !m.inMap(nbrAddr) {
		return hexgeo.Address{}, 0, false
	}
	opp := f.Opposite()
	if m.hasBarrier(nbrAddr, opp) {
		return hexgeo.Address{}, 0, false
	}
	nt, rot, ok := m.TileAt(nbrAddr)
	if !ok {
		return hexgeo.Address{}, 0, false
	}
	if len(nt.Adjacent(tile.FaceConn(opp), rot)) == 0 {
		return hexgeo.Address{}, 0, false
	}
	return nbrAddr, opp, true
}

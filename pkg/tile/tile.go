package tile

import (
	"fmt"

	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
)

// Tile is an immutable bundle of a stable name, a colour class, its tracks,
// cities, dits, labels, and optional off-board faces. Once built, a Tile is
// never mutated; operations that "modify" a tile (WithLabel, WithHiddenName,
// ...) return a new value.
type Tile struct {
	Name       string
	Colour     Colour
	Tracks     []Track
	Cities     []City
	Dits       []Dit
	Labels     []LabelPlacement
	OffBoard   map[hexgeo.HexFace]bool
	HiddenName bool

	// adjacency holds the tile's base-rotation (rotation zero) connectivity
	// graph: for each face, city, or dit node, the set of other such nodes
	// reachable by crossing a single track segment. It is precomputed once
	// at build time so every query is a rotation plus a map lookup rather
	// than a fresh graph walk.
	//
	// Crucially this is ONE HOP only: it does not transitively merge two
	// tracks that happen to share an endpoint. A city with three track
	// stubs is a junction with three direct neighbours, not proof that
	// those three neighbours are mutually connected to one another.
	adjacency map[Connection][]Connection

	// hops is the same one-hop graph, but additionally recording which
	// track index each edge belongs to. pkg/route's path enumerator needs
	// the track identity (not just the node reached) so it can record a
	// Track{addr,index} conflict marker -- the plain adjacency map above
	// is a projection of this that drops that identity, kept separate so
	// the simpler Connected*/Adjacent queries don't have to care about it.
	hops map[Connection][]Hop
}

// Hop is one edge out of a tile's connectivity graph, naming both the node
// reached and the track segment whose traversal reaches it.
type Hop struct {
	To    Connection
	Track int
}

// New builds a tile from its colour, name, tracks, and cities, computing
// its connectivity graph. Building a tile with inconsistent indices (a
// track referencing a city or dit that does not exist) is a development
// bug, not a user error, so New panics rather than returning an error.
func New(colour Colour, name string, tracks []Track, cities []City, dits []Dit) *Tile {
	t := &Tile{
		Name:     name,
		Colour:   colour,
		Tracks:   append([]Track(nil), tracks...),
		Cities:   append([]City(nil), cities...),
		Dits:     append([]Dit(nil), dits...),
		OffBoard: map[hexgeo.HexFace]bool{},
	}
	if err := t.validate(); err != nil {
		panic(fmt.Sprintf("tile %q: %v", name, err))
	}
	t.buildAdjacency()
	return t
}

func (t *Tile) validate() error {
	for i, c := range t.Cities {
		if err := c.validate(i); err != nil {
			return err
		}
	}
	for i, d := range t.Dits {
		if err := d.validate(i); err != nil {
			return err
		}
	}
	for i, tr := range t.Tracks {
		if err := tr.validate(len(t.Cities), len(t.Dits)); err != nil {
			return fmt.Errorf("track %d: %w", i, err)
		}
	}
	return nil
}

// clone returns a shallow copy of the tile with independently owned
// label/off-board maps, used by the chainable With* builders.
func (t *Tile) clone() *Tile {
	nt := *t
	nt.Labels = append([]LabelPlacement(nil), t.Labels...)
	nt.OffBoard = make(map[hexgeo.HexFace]bool, len(t.OffBoard))
	for f, v := range t.OffBoard {
		nt.OffBoard[f] = v
	}
	return &nt
}

// WithLabel returns a new tile with the given label attached at pos.
func (t *Tile) WithLabel(pos string, label Label) *Tile {
	nt := t.clone()
	nt.Labels = append(nt.Labels, LabelPlacement{Label: label, Pos: pos})
	return nt
}

// WithHiddenName returns a new tile whose name is not displayed.
func (t *Tile) WithHiddenName() *Tile {
	nt := t.clone()
	nt.HiddenName = true
	return nt
}

// WithOffBoardFaces returns a new tile with the given faces marked
// off-board (impassable to further track, typically used for map-edge red
// tiles).
func (t *Tile) WithOffBoardFaces(faces ...hexgeo.HexFace) *Tile {
	nt := t.clone()
	for _, f := range faces {
		nt.OffBoard[f] = true
	}
	return nt
}

// TokenSpaces returns every (city, slot) pair on the tile, ordered by city
// index then slot index.
func (t *Tile) TokenSpaces() []TokenSpace {
	spaces := make([]TokenSpace, 0)
	for ci, c := range t.Cities {
		for si := 0; si < c.Slots; si++ {
			spaces = append(spaces, TokenSpace{CityIndex: ci, SlotIndex: si})
		}
	}
	return spaces
}

// resolvedNode maps a track end to the face/city/dit node it touches. The
// second return value is false for a face-kind end whose span does not
// actually reach the tile boundary (a stub that terminates in mid-air),
// which therefore touches nothing.
func resolvedNode(end TrackEnd, reachesBoundary bool) (Connection, bool) {
	switch end.Kind {
	case AtFace:
		if !reachesBoundary {
			return Connection{}, false
		}
		return FaceConn(end.Face), true
	case AtCity:
		return CityConn(end.Index), true
	default:
		return DitConn(end.Index), true
	}
}

// buildAdjacency computes the direct (one-hop) connectivity graph at
// rotation zero. Each track contributes exactly one edge between the two
// nodes it touches, plus one edge from each of those nodes to its embedded
// mid-dit, if any. Two tracks that merely share an endpoint node (e.g. two
// stubs converging on the same city) do NOT become connected to each
// other by transitivity; they are each one hop from the shared node, and
// nothing more.
func (t *Tile) buildAdjacency() {
	adj := map[Connection][]Connection{}
	hops := map[Connection][]Hop{}
	addEdge := func(a, b Connection, trackIx int) {
		adj[a] = appendUnique(adj[a], b)
		adj[b] = appendUnique(adj[b], a)
		hops[a] = append(hops[a], Hop{To: b, Track: trackIx})
		hops[b] = append(hops[b], Hop{To: a, Track: trackIx})
	}

	for ix, tr := range t.Tracks {
		sNode, sOK := resolvedNode(tr.Start, tr.reachesFaceAt(EndStart))
		eNode, eOK := resolvedNode(tr.End, tr.reachesFaceAt(EndEnd))
		if sOK && eOK {
			addEdge(sNode, eNode, ix)
		}
		if tr.MidDit != nil {
			ditNode := DitConn(*tr.MidDit)
			if sOK {
				addEdge(sNode, ditNode, ix)
			}
			if eOK {
				addEdge(eNode, ditNode, ix)
			}
		}
	}
	t.adjacency = adj
	t.hops = hops
}

func appendUnique(list []Connection, c Connection) []Connection {
	for _, existing := range list {
		if existing == c {
			return list
		}
	}
	return append(list, c)
}

// ConnectedFaces returns the other faces directly reachable, under the
// given rotation, from the given face by crossing a single track segment
// -- i.e. the faces a train could continue toward after entering the tile
// at face. Querying with rotation R is equivalent to rotating the tile
// first and querying with rotation zero. Two faces that are each
// one hop from a shared city or dit, but not from each other, are NOT
// included; see the design note on pkg/tile's adjacency graph.
func (t *Tile) ConnectedFaces(face hexgeo.HexFace, rot hexgeo.RotateCW) []hexgeo.HexFace {
	baseFace := unrotateFace(face, rot)
	var out []hexgeo.HexFace
	for _, n := range t.adjacency[FaceConn(baseFace)] {
		if n.Kind == ConnFace {
			out = append(out, n.Face.Rotate(rot))
		}
	}
	return out
}

// ConnectedDitsAre returns the indices of the dits directly reachable from
// face (under rot) whose revenue is among revenues.
func (t *Tile) ConnectedDitsAre(face hexgeo.HexFace, rot hexgeo.RotateCW, revenues []int) []int {
	baseFace := unrotateFace(face, rot)
	want := map[int]bool{}
	for _, r := range revenues {
		want[r] = true
	}
	var out []int
	for _, n := range t.adjacency[FaceConn(baseFace)] {
		if n.Kind == ConnDit && want[t.Dits[n.Index].Revenue] {
			out = append(out, n.Index)
		}
	}
	return out
}

// CityStopSpec names a (revenue, slot-count) pair to match against a
// tile's cities.
type CityStopSpec struct {
	Revenue int
	Slots   int
}

// ConnectedCitiesAre returns the indices of the cities directly reachable
// from face (under rot) whose (revenue, slots) matches one of specs.
func (t *Tile) ConnectedCitiesAre(face hexgeo.HexFace, rot hexgeo.RotateCW, specs []CityStopSpec) []int {
	baseFace := unrotateFace(face, rot)
	var out []int
	for _, n := range t.adjacency[FaceConn(baseFace)] {
		if n.Kind != ConnCity {
			continue
		}
		c := t.Cities[n.Index]
		for _, spec := range specs {
			if c.Revenue == spec.Revenue && c.Slots == spec.Slots {
				out = append(out, n.Index)
				break
			}
		}
	}
	return out
}

// Adjacent returns every node directly reachable, under rot, from conn by
// crossing a single track segment. It is the low-level primitive that
// pkg/route's path enumerator uses to walk multiple hops across a tile
// (and, via the map, across tiles); the Connected* convenience methods
// above are single-hop special cases of the same graph.
func (t *Tile) Adjacent(conn Connection, rot hexgeo.RotateCW) []Connection {
	base := conn
	if conn.Kind == ConnFace {
		base = FaceConn(unrotateFace(conn.Face, rot))
	}
	neighbours := t.adjacency[base]
	if rot == 0 {
		return append([]Connection(nil), neighbours...)
	}
	out := make([]Connection, len(neighbours))
	for i, n := range neighbours {
		if n.Kind == ConnFace {
			out[i] = FaceConn(n.Face.Rotate(rot))
		} else {
			out[i] = n
		}
	}
	return out
}

// AdjacentHops is Adjacent's track-aware counterpart: it returns, for each
// node directly reachable from conn under rot, the track segment whose
// traversal reaches it. pkg/route uses this (rather than Adjacent) when
// walking a path, since the conflict rule needs to know which specific
// track was used, not just where it leads.
func (t *Tile) AdjacentHops(conn Connection, rot hexgeo.RotateCW) []Hop {
	base := conn
	if conn.Kind == ConnFace {
		base = FaceConn(unrotateFace(conn.Face, rot))
	}
	hops := t.hops[base]
	out := make([]Hop, len(hops))
	for i, h := range hops {
		to := h.To
		if to.Kind == ConnFace {
			to = FaceConn(to.Face.Rotate(rot))
		}
		out[i] = Hop{To: to, Track: h.Track}
	}
	return out
}

// FacesTouching returns every face of the tile (under rot) that is one
// hop from target, the inverse of the Connected* queries: instead of
// "what does this face reach", it answers "what reaches this node". It is
// used by pkg/tilemap's token-upgrade solver to compare which faces feed
// a given city on the old and new tiles.
func (t *Tile) FacesTouching(target Connection, rot hexgeo.RotateCW) []hexgeo.HexFace {
	var out []hexgeo.HexFace
	for _, f := range hexgeo.AllFaces() {
		for _, n := range t.Adjacent(FaceConn(f), rot) {
			if n == target {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// unrotateFace maps a face queried under rotation rot back to the
// corresponding face of the tile at rotation zero.
func unrotateFace(face hexgeo.HexFace, rot hexgeo.RotateCW) hexgeo.HexFace {
	return face.Rotate(-rot)
}

// CanUpgradeTo reports whether this tile, as currently connected (at
// rotation zero), could be replaced by other at some rotation without
// severing any face-to-face connection it currently provides. It requires
// other to be a strictly higher colour class. This is a filter used by the
// UI to offer legal upgrade targets; it is not consulted by the core
// placement logic, which instead relies on pkg/flow's token-preservation
// check.
func (t *Tile) CanUpgradeTo(other *Tile) bool {
	if !t.Colour.LessThan(other.Colour) {
		return false
	}
	for rot := hexgeo.RotateCW(0); rot < 6; rot++ {
		if t.preservedBy(other, rot) {
			return true
		}
	}
	return false
}

// preservedBy reports whether every face-to-face connection present in t
// (at rotation zero) is also present in other at the given rotation.
func (t *Tile) preservedBy(other *Tile, rot hexgeo.RotateCW) bool {
	for _, f := range hexgeo.AllFaces() {
		reachable := t.ConnectedFaces(f, 0)
		if len(reachable) == 0 {
			continue
		}
		otherReachable := map[hexgeo.HexFace]bool{}
		for _, of := range other.ConnectedFaces(f, rot) {
			otherReachable[of] = true
		}
		for _, rf := range reachable {
			if !otherReachable[rf] {
				return false
			}
		}
	}
	return true
}

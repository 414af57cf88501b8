package tilemap

import (
	"sort"

	"github.com/robmoss/rusty-train-sub002/pkg/flow"
	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
)

// solveTokenPlacement decides, when oldTile (placed at oldRot, holding
// oldTokens) is replaced by newTile at newRot, whether every placed
// token can be relocated to a city on newTile whose
// connected-face set is a superset of the face set the token's old city
// offered. It returns the new token placement and true on success, or
// (nil, false) if the max-flow is less than the token count -- the
// replacement must then be refused entire.
func solveTokenPlacement(
	oldTile *tile.Tile, oldRot hexgeo.RotateCW, oldTokens map[tile.TokenSpace]Token,
	newTile *tile.Tile, newRot hexgeo.RotateCW,
) (map[tile.TokenSpace]Token, bool) {
	if len(oldTokens) == 0 {
		return map[tile.TokenSpace]Token{}, true
	}

	type placedToken struct {
		space tile.TokenSpace
		tok   Token
		faces map[hexgeo.HexFace]bool
	}
	tokens := make([]placedToken, 0, len(oldTokens))
	for ts, tok := range oldTokens {
		faces := map[hexgeo.HexFace]bool{}
		for _, f := range oldTile.FacesTouching(tile.CityConn(ts.CityIndex), oldRot) {
			faces[f] = true
		}
		tokens = append(tokens, placedToken{space: ts, tok: tok, faces: faces})
	}
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].space.CityIndex != tokens[j].space.CityIndex {
			return tokens[i].space.CityIndex < tokens[j].space.CityIndex
		}
		return tokens[i].space.SlotIndex < tokens[j].space.SlotIndex
	})

	numTokens := len(tokens)
	numCities := len(newTile.Cities)

	// Node layout: 0 = source, 1..numTokens = tokens, numTokens+1..
	// numTokens+numCities = new cities, last = sink.
	source := 0
	tokenNode := func(i int) int { return 1 + i }
	cityNode := func(c int) int { return 1 + numTokens + c }
	sink := 1 + numTokens + numCities

	m := flow.NewMatrix(sink + 1)
	for i := range tokens {
		m.SetCapacity(source, tokenNode(i), 1)
	}
	for c := 0; c < numCities; c++ {
		m.SetCapacity(cityNode(c), sink, newTile.Cities[c].Slots)
	}
	for i, tk := range tokens {
		for c := 0; c < numCities; c++ {
			newFaces := map[hexgeo.HexFace]bool{}
			for _, f := range newTile.FacesTouching(tile.CityConn(c), newRot) {
				newFaces[f] = true
			}
			if isSubset(tk.faces, newFaces) {
				m.SetCapacity(tokenNode(i), cityNode(c), 1)
			}
		}
	}

	maxFlow, flowMatrix := m.MaxFlow(source, sink)
	if maxFlow != numTokens {
		return nil, false
	}

	slotsUsed := make([]int, numCities)
	out := make(map[tile.TokenSpace]Token, numTokens)
	for i, tk := range tokens {
		for c := 0; c < numCities; c++ {
			if flowMatrix[tokenNode(i)][cityNode(c)] > 0 {
				space := tile.TokenSpace{CityIndex: c, SlotIndex: slotsUsed[c]}
				slotsUsed[c]++
				out[space] = tk.tok
				break
			}
		}
	}
	return out, true
}

func isSubset(a, b map[hexgeo.HexFace]bool) bool {
	for f := range a {
		if !b[f] {
			return false
		}
	}
	return true
}

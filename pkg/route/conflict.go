package route

import (
	"fmt"

	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
)

// ConflictRule names how aggressively two uses of the same map location
// are considered to clash. The rules are totally ordered:
// TrackOnly < TrackOrCity < TrackOrCityHex < Hex.
type ConflictRule int

const (
	TrackOnly ConflictRule = iota
	TrackOrCity
	TrackOrCityHex
	Hex
)

func (r ConflictRule) String() string {
	switch r {
	case TrackOnly:
		return "TrackOnly"
	case TrackOrCity:
		return "TrackOrCity"
	case TrackOrCityHex:
		return "TrackOrCityHex"
	case Hex:
		return "Hex"
	default:
		return fmt.Sprintf("ConflictRule(%d)", int(r))
	}
}

// ParseConflictRule parses the canonical name of a ConflictRule, as used in
// configuration files, back into its value.
func ParseConflictRule(name string) (ConflictRule, error) {
	switch name {
	case "TrackOnly":
		return TrackOnly, nil
	case "TrackOrCity":
		return TrackOrCity, nil
	case "TrackOrCityHex":
		return TrackOrCityHex, nil
	case "Hex":
		return Hex, nil
	default:
		return 0, fmt.Errorf("unknown conflict rule %q", name)
	}
}

// ConflictKind discriminates the shape of a single conflict marker.
type ConflictKind int

const (
	ConflictTrack ConflictKind = iota
	ConflictFace
	ConflictDit
	ConflictCity
	ConflictCityHex
	ConflictHex
)

// Conflict is one entry in a path's conflict set: a single map resource
// that, once used, cannot be used again by the same path (and, under the
// weaker route_conflict_rule, by another route in the same Routes).
type Conflict struct {
	Addr  hexgeo.Address
	Kind  ConflictKind
	Index int            // track/dit/city index; unused for Face/Hex kinds
	Face  hexgeo.HexFace // only meaningful for ConflictFace
}

func (c Conflict) less(other Conflict) bool {
	if c.Addr.Row != other.Addr.Row {
		return c.Addr.Row < other.Addr.Row
	}
	if c.Addr.Col != other.Addr.Col {
		return c.Addr.Col < other.Addr.Col
	}
	if c.Kind != other.Kind {
		return c.Kind < other.Kind
	}
	if c.Index != other.Index {
		return c.Index < other.Index
	}
	return c.Face < other.Face
}

func (c Conflict) String() string {
	addr := fmt.Sprintf("%d,%d", c.Addr.Row, c.Addr.Col)
	switch c.Kind {
	case ConflictTrack:
		return fmt.Sprintf("Track{%s,%d}", addr, c.Index)
	case ConflictFace:
		return fmt.Sprintf("Face{%s,%d}", addr, c.Face)
	case ConflictDit:
		return fmt.Sprintf("Dit{%s,%d}", addr, c.Index)
	case ConflictCity:
		return fmt.Sprintf("City{%s,%d}", addr, c.Index)
	case ConflictCityHex:
		return fmt.Sprintf("CityHex{%s}", addr)
	case ConflictHex:
		return fmt.Sprintf("Hex{%s}", addr)
	default:
		return fmt.Sprintf("Conflict(%d)", int(c.Kind))
	}
}

// trackConflict returns the conflict contributed by traversing track ix
// at addr.
func trackConflict(rule ConflictRule, addr hexgeo.Address, ix int) (Conflict, bool) {
	if rule == Hex {
		return Conflict{Addr: addr, Kind: ConflictHex}, true
	}
	return Conflict{Addr: addr, Kind: ConflictTrack, Index: ix}, true
}

// faceConflict returns the conflict contributed by crossing face f of the
// hex at addr.
func faceConflict(rule ConflictRule, addr hexgeo.Address, f hexgeo.HexFace) (Conflict, bool) {
	if rule == Hex {
		return Conflict{Addr: addr, Kind: ConflictHex}, true
	}
	return Conflict{Addr: addr, Kind: ConflictFace, Face: f}, true
}

// ditConflict returns the conflict contributed by stopping at dit ix at
// addr. TrackOnly never conflicts on a dit stop.
func ditConflict(rule ConflictRule, addr hexgeo.Address, ix int) (Conflict, bool) {
	switch rule {
	case TrackOnly:
		return Conflict{}, false
	case TrackOrCity:
		return Conflict{Addr: addr, Kind: ConflictDit, Index: ix}, true
	case TrackOrCityHex:
		return Conflict{Addr: addr, Kind: ConflictCityHex}, true
	default: // Hex
		return Conflict{Addr: addr, Kind: ConflictHex}, true
	}
}

// cityConflict returns the conflict contributed by stopping at city ix at
// addr. TrackOnly never conflicts on a city stop.
func cityConflict(rule ConflictRule, addr hexgeo.Address, ix int) (Conflict, bool) {
	switch rule {
	case TrackOnly:
		return Conflict{}, false
	case TrackOrCity:
		return Conflict{Addr: addr, Kind: ConflictCity, Index: ix}, true
	case TrackOrCityHex:
		return Conflict{Addr: addr, Kind: ConflictCityHex}, true
	default: // Hex
		return Conflict{Addr: addr, Kind: ConflictHex}, true
	}
}

// ConflictSet is a path's accumulated conflict markers, kept as a sorted
// slice rather than a hash set: merging two sorted sets and testing
// disjointness are both linear scans over the sizes actually encountered
// (tens to hundreds of markers per path), which in practice beats
// hashing.
type ConflictSet []Conflict

// Has reports whether c is already present.
func (s ConflictSet) Has(c Conflict) bool {
	i := s.search(c)
	return i < len(s) && s[i] == c
}

func (s ConflictSet) search(c Conflict) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid].less(c) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// With returns a new ConflictSet with c inserted, leaving the receiver
// untouched (paths branch during the DFS walk, so each branch needs its
// own independent set). If c is already a member, the receiver is
// returned as is.
func (s ConflictSet) With(c Conflict) ConflictSet {
	i := s.search(c)
	if i < len(s) && s[i] == c {
		return s
	}
	out := make(ConflictSet, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, c)
	out = append(out, s[i:]...)
	return out
}

// Disjoint reports whether s and other share no conflict markers, via a
// linear merge-scan over both sorted slices.
func (s ConflictSet) Disjoint(other ConflictSet) bool {
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] == other[j]:
			return false
		case s[i].less(other[j]):
			i++
		default:
			j++
		}
	}
	return true
}

// Merge returns the union of s and other, deduplicated, sorted.
func (s ConflictSet) Merge(other ConflictSet) ConflictSet {
	out := make(ConflictSet, 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] == other[j]:
			out = append(out, s[i])
			i++
			j++
		case s[i].less(other[j]):
			out = append(out, s[i])
			i++
		default:
			out = append(out, other[j])
			j++
		}
	}
	out = append(out, s[i:]...)
	out = append(out, other[j:]...)
	return out
}

// Without returns a copy of s with c removed, if present.
func (s ConflictSet) Without(c Conflict) ConflictSet {
	i := s.search(c)
	if i >= len(s) || s[i] != c {
		return s
	}
	out := make(ConflictSet, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

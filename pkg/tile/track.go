package tile

import (
	"fmt"

	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
)

// TrackCurve describes the curvature of a track segment. It is metadata
// for rendering/upgrade-compatibility purposes; it plays no part in
// connectivity, which is determined entirely by the segment's endpoints
// (and any embedded dit).
type TrackCurve int

const (
	Straight TrackCurve = iota
	GentleCurve
	HardCurve
	BothWays
)

// EndKind discriminates what a track endpoint touches.
type EndKind int

const (
	AtFace EndKind = iota
	AtCity
	AtDit
)

// TrackEnd describes one endpoint of a track segment.
type TrackEnd struct {
	Kind  EndKind
	Face  hexgeo.HexFace // valid when Kind == AtFace
	Index int            // city/dit index, valid when Kind == AtCity or AtDit
}

// FaceEnd builds a TrackEnd touching a tile face.
func FaceEnd(f hexgeo.HexFace) TrackEnd { return TrackEnd{Kind: AtFace, Face: f} }

// CityEnd builds a TrackEnd touching a city.
func CityEnd(ix int) TrackEnd { return TrackEnd{Kind: AtCity, Index: ix} }

// DitEnd builds a TrackEnd touching a dit (a stub that terminates at a
// town rather than passing through it).
func DitEnd(ix int) TrackEnd { return TrackEnd{Kind: AtDit, Index: ix} }

// Track is a directed arc within a tile: a segment from Start to End, with
// a curvature (for rendering/upgrade checks) and a span [X0,X1] along the
// segment's centreline, used to represent partial tracks such as stubs.
//
// A track may also carry an embedded dit (MidDit): a through-town sitting
// along the segment's length rather than at either declared end, reachable
// from both of the track's ends. This is how a straight face-to-face
// track can also serve as a town stop.
type Track struct {
	Start  TrackEnd
	End    TrackEnd
	Curve  TrackCurve
	X0     float64
	X1     float64
	MidDit *int
}

// NewTrack builds a full-length (span [0,1]) track segment between two
// endpoints.
func NewTrack(start, end TrackEnd, curve TrackCurve) Track {
	return Track{Start: start, End: end, Curve: curve, X0: 0, X1: 1}
}

// NewStub builds a partial track segment (e.g. a dead-end spur) with an
// explicit span.
func NewStub(start, end TrackEnd, curve TrackCurve, x0, x1 float64) Track {
	return Track{Start: start, End: end, Curve: curve, X0: x0, X1: x1}
}

// WithMidDit returns a copy of the track with an embedded through-town at
// the given dit index.
func (t Track) WithMidDit(ditIx int) Track {
	ix := ditIx
	t.MidDit = &ix
	return t
}

// validate checks the invariants placed on a track segment: 0 <= x0 <
// x1 <= 1, and endpoint and mid-dit indices are in range. Whether a
// face-kind end reaches the tile boundary is not checked here; that is
// decided per end by reachesFaceAt when the adjacency graph is built.
func (t Track) validate(numCities, numDits int) error {
	if !(t.X0 >= 0 && t.X0 < t.X1 && t.X1 <= 1) {
		return fmt.Errorf("track span [%g,%g] violates 0 <= x0 < x1 <= 1", t.X0, t.X1)
	}
	for _, end := range []TrackEnd{t.Start, t.End} {
		switch end.Kind {
		case AtCity:
			if end.Index < 0 || end.Index >= numCities {
				return fmt.Errorf("track references city index %d out of range [0,%d)", end.Index, numCities)
			}
		case AtDit:
			if end.Index < 0 || end.Index >= numDits {
				return fmt.Errorf("track references dit index %d out of range [0,%d)", end.Index, numDits)
			}
		}
	}
	if t.MidDit != nil && (*t.MidDit < 0 || *t.MidDit >= numDits) {
		return fmt.Errorf("track references mid-dit index %d out of range [0,%d)", *t.MidDit, numDits)
	}
	return nil
}

// reachesFaceAt reports whether the given end of the track actually meets
// the tile boundary: the start end must have X0 == 0, the end end must
// have X1 == 1.
func (t Track) reachesFaceAt(sel TrackEndSel) bool {
	if sel == EndStart {
		return t.X0 == 0
	}
	return t.X1 == 1
}

// endAt returns the TrackEnd for the given selector.
func (t Track) endAt(sel TrackEndSel) TrackEnd {
	if sel == EndStart {
		return t.Start
	}
	return t.End
}

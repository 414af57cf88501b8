package tile

import (
	"fmt"

	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
)

// ConnKind discriminates the four kinds of node in a tile's connectivity
// graph, matching the data model's Connection value.
type ConnKind int

const (
	ConnTrack ConnKind = iota
	ConnDit
	ConnCity
	ConnFace
)

// TrackEndSel identifies one of a track's two ends.
type TrackEndSel int

const (
	EndStart TrackEndSel = iota
	EndEnd
)

// Connection is a node in a tile's per-hex connectivity graph: a specific
// track end, a dit, a city, or a tile face.
type Connection struct {
	Kind  ConnKind
	Index int              // track/dit/city index; unused for ConnFace
	End   TrackEndSel      // only meaningful when Kind == ConnTrack
	Face  hexgeo.HexFace   // only meaningful when Kind == ConnFace
}

// TrackConn builds a Connection identifying one end of a track segment.
func TrackConn(ix int, end TrackEndSel) Connection {
	return Connection{Kind: ConnTrack, Index: ix, End: end}
}

// DitConn builds a Connection identifying a dit.
func DitConn(ix int) Connection { return Connection{Kind: ConnDit, Index: ix} }

// CityConn builds a Connection identifying a city.
func CityConn(ix int) Connection { return Connection{Kind: ConnCity, Index: ix} }

// FaceConn builds a Connection identifying a tile face.
func FaceConn(f hexgeo.HexFace) Connection {
	return Connection{Kind: ConnFace, Face: f}
}

// Rotate returns the connection as seen after rotating the tile by r. Only
// ConnFace connections are affected; track/city/dit identity is rotation
// invariant.
func (c Connection) Rotate(r hexgeo.RotateCW) Connection {
	if c.Kind != ConnFace {
		return c
	}
	return FaceConn(c.Face.Rotate(r))
}

// String renders the connection for debugging and error messages.
func (c Connection) String() string {
	switch c.Kind {
	case ConnTrack:
		end := "start"
		if c.End == EndEnd {
			end = "end"
		}
		return fmt.Sprintf("Track{%d,%s}", c.Index, end)
	case ConnDit:
		return fmt.Sprintf("Dit{%d}", c.Index)
	case ConnCity:
		return fmt.Sprintf("City{%d}", c.Index)
	case ConnFace:
		return fmt.Sprintf("Face{%s}", c.Face)
	default:
		return "Connection(?)"
	}
}

package tile

import (
	"testing"

	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"pgregory.net/rapid"
)

// TestConnectedFacesRotationEquivariant checks the invariant ConnectedFaces'
// doc comment states: querying with rotation R is equivalent to rotating
// the tile first and querying at rotation zero. This must hold for every
// face and every rotation, on every fixture with face-to-face tracks.
func TestConnectedFacesRotationEquivariant(t *testing.T) {
	fixtures := []*Tile{tile43(), tile4()}
	rapid.Check(t, func(t *rapid.T) {
		tl := fixtures[rapid.IntRange(0, len(fixtures)-1).Draw(t, "fixture")]
		face := hexgeo.HexFace(rapid.IntRange(0, 5).Draw(t, "face"))
		rot := hexgeo.RotateCW(rapid.IntRange(0, 5).Draw(t, "rot"))

		queryFace := face.Rotate(rot)
		got := sortedFaces(tl.ConnectedFaces(queryFace, rot))

		base := tl.ConnectedFaces(face, 0)
		want := make([]hexgeo.HexFace, len(base))
		for i, f := range base {
			want[i] = f.Rotate(rot)
		}
		want = sortedFaces(want)

		if len(got) != len(want) {
			t.Fatalf("ConnectedFaces(%v, rot=%d) = %v, want %v", queryFace, rot, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("ConnectedFaces(%v, rot=%d) = %v, want %v", queryFace, rot, got, want)
			}
		}
	})
}

// TestConnectedFacesSymmetric checks that the one-hop adjacency graph
// ConnectedFaces exposes is undirected: if b is reachable from a, then a is
// reachable from b.
func TestConnectedFacesSymmetric(t *testing.T) {
	fixtures := []*Tile{tile43(), tile4(), tile122()}
	for _, tl := range fixtures {
		for _, a := range hexgeo.AllFaces() {
			for _, b := range tl.ConnectedFaces(a, 0) {
				reverse := tl.ConnectedFaces(b, 0)
				found := false
				for _, c := range reverse {
					if c == a {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("%s reaches %s but not vice versa", a, b)
				}
			}
		}
	}
}

package hexgeo

import (
	"testing"

	"pgregory.net/rapid"
)

func TestParseFormatRoundTrip(t *testing.T) {
	c := DefaultCoordinates()
	for _, s := range []string{"A1", "B3", "K13", "Z26", "AA1"} {
		addr, err := c.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := c.Format(addr); got != s {
			t.Errorf("Format(Parse(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestFormatParseRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := DefaultCoordinates()
		addr := Address{
			Row: rapid.IntRange(0, 50).Draw(t, "row"),
			Col: rapid.IntRange(0, 50).Draw(t, "col"),
		}
		s := c.Format(addr)
		got, err := c.Parse(s)
		if err != nil {
			t.Fatalf("Parse(Format(%+v)=%q): %v", addr, s, err)
		}
		if got != addr {
			t.Fatalf("Parse(Format(%+v)) = %+v, want %+v", addr, got, addr)
		}
	})
}

func TestParseRejectsMalformedInput(t *testing.T) {
	c := DefaultCoordinates()
	for _, s := range []string{"", "1A", "A0", "A01", "a1", "AB"} {
		if _, err := c.Parse(s); err == nil {
			t.Errorf("Parse(%q) should have failed", s)
		}
	}
}

// TestNeighbourOppositeFaceReturnsHome checks that crossing a face and then
// crossing the opposite face lands back on the starting address, for both
// supported orientations. This must hold everywhere on the conceptual
// infinite grid, independent of tile content.
func TestNeighbourOppositeFaceReturnsHome(t *testing.T) {
	configs := []Coordinates{
		{Orientation: FlatTop, Letters: AsRows, FirstRow: OddColumns},
		{Orientation: FlatTop, Letters: AsRows, FirstRow: EvenColumns},
		{Orientation: PointedTop, Letters: AsColumns, FirstRow: OddRows},
		{Orientation: PointedTop, Letters: AsColumns, FirstRow: EvenRows},
	}
	rapid.Check(t, func(t *rapid.T) {
		c := configs[rapid.IntRange(0, len(configs)-1).Draw(t, "coordIx")]
		addr := Address{
			Row: rapid.IntRange(-20, 20).Draw(t, "row"),
			Col: rapid.IntRange(-20, 20).Draw(t, "col"),
		}
		f := HexFace(rapid.IntRange(0, numFaces-1).Draw(t, "face"))

		nbr, ok := c.Neighbour(addr, f)
		if !ok {
			t.Fatalf("Neighbour(%+v, %v) under %+v reported not-ok; every face should be connected on the infinite grid", addr, f, c)
		}
		back, ok := c.Neighbour(nbr, f.Opposite())
		if !ok {
			t.Fatalf("Neighbour(%+v, %v) reported not-ok", nbr, f.Opposite())
		}
		if back != addr {
			t.Fatalf("crossing %v then %v from %+v landed on %+v, not back at start", f, f.Opposite(), addr, back)
		}
	})
}

package route

import (
	"testing"

	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
)

func TestWithinLimit(t *testing.T) {
	two := 2
	if !withinLimit(2, &two) {
		t.Error("2 should be within a limit of 2")
	}
	if withinLimit(3, &two) {
		t.Error("3 should not be within a limit of 2")
	}
	if !withinLimit(1000, nil) {
		t.Error("a nil limit should bound nothing")
	}
}

func TestNewPathAggregates(t *testing.T) {
	addrA := hexgeo.Address{Row: 0, Col: 0}
	addrB := hexgeo.Address{Row: 1, Col: 0}

	steps := []Step{
		{Addr: addrA, Conn: tile.Connection{Kind: tile.ConnCity, Index: 0}},
		{Addr: addrA, Conn: tile.Connection{Kind: tile.ConnFace, Face: hexgeo.Bottom}},
		{Addr: addrB, Conn: tile.Connection{Kind: tile.ConnFace, Face: hexgeo.Top}},
		{Addr: addrB, Conn: tile.Connection{Kind: tile.ConnDit, Index: 0}},
	}
	visits := []Visit{
		{Addr: addrA, Revenue: 30, StopKind: tile.ConnCity, Index: 0},
		{Addr: addrB, Revenue: 10, StopKind: tile.ConnDit, Index: 0},
	}

	p := newPath(steps, visits, nil, nil)

	if p.NumVisits != 2 {
		t.Errorf("NumVisits = %d, want 2", p.NumVisits)
	}
	if p.NumCities != 1 {
		t.Errorf("NumCities = %d, want 1", p.NumCities)
	}
	if p.NumDits != 1 {
		t.Errorf("NumDits = %d, want 1", p.NumDits)
	}
	if p.NumHexes != 2 {
		t.Errorf("NumHexes = %d, want 2", p.NumHexes)
	}
	if p.Revenue != 40 {
		t.Errorf("Revenue = %d, want 40", p.Revenue)
	}
}

func TestPathWithinLimit(t *testing.T) {
	one := 1
	p := newPath(nil, []Visit{
		{Addr: hexgeo.Address{Row: 0, Col: 0}, Revenue: 10, StopKind: tile.ConnCity},
		{Addr: hexgeo.Address{Row: 1, Col: 0}, Revenue: 20, StopKind: tile.ConnCity},
	}, nil, nil)

	if p.withinLimit(nil) == false {
		t.Error("nil limit should never reject a path")
	}
	if p.withinLimit(&PathLimit{MaxCities: &one}) {
		t.Error("a 2-city path should violate MaxCities: 1")
	}
	if !p.withinLimit(&PathLimit{MaxVisits: &[]int{2}[0]}) {
		t.Error("a 2-visit path should satisfy MaxVisits: 2")
	}
}

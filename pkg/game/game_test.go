package game

import (
	"fmt"
	"testing"

	"github.com/robmoss/rusty-train-sub002/pkg/catalogue"
	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/route"
	"github.com/robmoss/rusty-train-sub002/pkg/tilemap"
)

type fakeGame struct {
	companies []Company
	trains    []route.Train
	cat       *catalogue.Catalogue
}

func (g *fakeGame) Name() string { return "Fake" }
func (g *fakeGame) CreateMap(geo Geometry) *tilemap.Map {
	return tilemap.New(geo.Coords, g.cat, geo.Addresses)
}
func (g *fakeGame) Companies() []Company                    { return g.companies }
func (g *fakeGame) Trains() []route.Train                   { return g.trains }
func (g *fakeGame) TileCatalogue() *catalogue.Catalogue      { return g.cat }
func (g *fakeGame) BonusOptions() []BonusOption              { return nil }
func (g *fakeGame) Bonuses(map[string]bool) []route.Bonus    { return nil }
func (g *fakeGame) SingleRouteConflicts() route.ConflictRule { return route.TrackOrCityHex }
func (g *fakeGame) MultipleRoutesConflicts() route.ConflictRule {
	return route.TrackOnly
}
func (g *fakeGame) PhaseIx() int { return 0 }
func (g *fakeGame) SetPhaseIx(m *tilemap.Map, ix int) (*tilemap.Map, error) {
	if ix < 0 || ix > 2 {
		return nil, fmt.Errorf("phase %d out of range", ix)
	}
	return m, nil
}
func (g *fakeGame) PhaseNames() []string { return []string{"Yellow", "Green", "Brown"} }

func newFakeGame() *fakeGame {
	return &fakeGame{
		companies: []Company{
			{Name: "PR", Token: tilemap.Token{Company: "PR"}},
			{Name: "GT", Token: tilemap.Token{Company: "GT"}},
		},
		trains: []route.Train{
			{Name: "2", Type: route.MustStop, Multiplier: 1},
			{Name: "4", Type: route.SkipAny, Multiplier: 1},
		},
		cat: catalogue.NewBuilder().Build(),
	}
}

func TestTrainLookup(t *testing.T) {
	g := newFakeGame()

	if got := TrainNames(g); len(got) != 2 || got[0] != "2" || got[1] != "4" {
		t.Fatalf("TrainNames = %v", got)
	}
	if _, ok := TryTrain(g, "6"); ok {
		t.Fatal("TryTrain found a train that does not exist")
	}
	tr, ok := TryTrain(g, "4")
	if !ok || tr.Type != route.SkipAny {
		t.Fatalf("TryTrain(4) = %+v, %v", tr, ok)
	}
	if got := GetTrain(g, "2").Name; got != "2" {
		t.Fatalf("GetTrain(2).Name = %q", got)
	}
}

func TestGetTrainPanicsOnUnknownName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected GetTrain to panic on an unknown train name")
		}
	}()
	GetTrain(newFakeGame(), "nonexistent")
}

func TestCompanyLookup(t *testing.T) {
	g := newFakeGame()
	if _, ok := TryCompany(g, "ZZ"); ok {
		t.Fatal("TryCompany found a company that does not exist")
	}
	c, ok := TryCompany(g, "GT")
	if !ok || c.Name != "GT" {
		t.Fatalf("TryCompany(GT) = %+v, %v", c, ok)
	}
	if got := GetCompany(g, "PR").Name; got != "PR" {
		t.Fatalf("GetCompany(PR).Name = %q", got)
	}
}

func TestTokenCycling(t *testing.T) {
	g := newFakeGame()
	if got := NextToken(g, "PR"); got != "GT" {
		t.Fatalf("NextToken(PR) = %q, want GT", got)
	}
	if got := NextToken(g, "GT"); got != "PR" {
		t.Fatalf("NextToken(GT) = %q, want PR (wraps around)", got)
	}
	if got := PrevToken(g, "PR"); got != "GT" {
		t.Fatalf("PrevToken(PR) = %q, want GT (wraps around)", got)
	}
}

func TestDitSkipPolicyForDefaultsToKeepAll(t *testing.T) {
	g := newFakeGame()
	policy := DitSkipPolicyFor(g)
	if got := policy(route.Train{}, route.Path{}, nil); got != nil {
		t.Fatalf("default DitSkipPolicy should skip nothing, got %v", got)
	}
}

func TestCreateMapUsesGeometry(t *testing.T) {
	g := newFakeGame()
	geo := Rectangle("test", hexgeo.DefaultCoordinates(), 2, 2)
	m := g.CreateMap(geo)
	if len(m.HexIter()) != 4 {
		t.Fatalf("CreateMap over a 2x2 rectangle should yield 4 hexes, got %d", len(m.HexIter()))
	}
}

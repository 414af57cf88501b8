package ioformat

import (
	"path/filepath"
	"testing"

	gm "github.com/robmoss/rusty-train-sub002/pkg/game"
	"github.com/robmoss/rusty-train-sub002/pkg/game/boxcars"
	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/route"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
)

func trackConnFixture() (hexgeo.Address, tile.Connection) {
	return hexgeo.Address{Row: 1, Col: 0}, tile.TrackConn(0, tile.EndEnd)
}

func faceConnFixture() (hexgeo.Address, tile.Connection) {
	return hexgeo.Address{Row: 2, Col: 0}, tile.FaceConn(hexgeo.Bottom)
}

func computeBoxcarsRoutes(t *testing.T) (*route.Routes, *boxcars.Boxcars) {
	t.Helper()
	b := boxcars.New()
	m, err := b.SetupDefaultMap()
	if err != nil {
		t.Fatalf("SetupDefaultMap: %v", err)
	}
	company := gm.GetCompany(b, boxcars.CompanyGreatEastern)
	criteria := route.Criteria{
		Token:             company.Token,
		ConflictRule:      b.SingleRouteConflicts(),
		RouteConflictRule: b.MultipleRoutesConflicts(),
	}
	paths, err := route.Enumerate(m, criteria, nil)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	train := gm.GetTrain(b, "4")
	result, err := route.Optimise(paths, []route.Train{train}, nil, gm.DitSkipPolicyFor(b), nil)
	if err != nil {
		t.Fatalf("Optimise: %v", err)
	}
	if len(result.TrainRoutes) == 0 {
		t.Fatal("expected at least one train route to serialise")
	}
	return result, b
}

func TestRoutesRoundTrip(t *testing.T) {
	result, _ := computeBoxcarsRoutes(t)
	coords := boxcars.DefaultGeometry().Coords

	path := filepath.Join(t.TempDir(), "routes.yaml")
	if err := SaveRoutes(path, coords, result); err != nil {
		t.Fatalf("SaveRoutes: %v", err)
	}

	loaded, err := LoadRoutes(path, coords)
	if err != nil {
		t.Fatalf("LoadRoutes: %v", err)
	}

	if loaded.ID != result.ID {
		t.Errorf("ID = %q, want %q", loaded.ID, result.ID)
	}
	if loaded.NetRevenue != result.NetRevenue {
		t.Errorf("NetRevenue = %d, want %d", loaded.NetRevenue, result.NetRevenue)
	}
	if len(loaded.TrainRoutes) != len(result.TrainRoutes) {
		t.Fatalf("TrainRoutes length = %d, want %d", len(loaded.TrainRoutes), len(result.TrainRoutes))
	}
	for i, tr := range result.TrainRoutes {
		got := loaded.TrainRoutes[i]
		if got.Train.Name != tr.Train.Name || got.Train.Type != tr.Train.Type {
			t.Errorf("TrainRoutes[%d].Train = %+v, want %+v", i, got.Train, tr.Train)
		}
		if got.Revenue != tr.Revenue {
			t.Errorf("TrainRoutes[%d].Revenue = %d, want %d", i, got.Revenue, tr.Revenue)
		}
		if len(got.Route.Visits) != len(tr.Route.Visits) {
			t.Errorf("TrainRoutes[%d].Route.Visits length = %d, want %d", i, len(got.Route.Visits), len(tr.Route.Visits))
		}
		for j, v := range tr.Route.Visits {
			gv := got.Route.Visits[j]
			if gv.Addr != v.Addr || gv.Revenue != v.Revenue || gv.StopKind != v.StopKind || gv.Index != v.Index {
				t.Errorf("TrainRoutes[%d].Route.Visits[%d] = %+v, want %+v", i, j, gv, v)
			}
		}
		if len(got.Route.Steps) != len(tr.Route.Steps) {
			t.Errorf("TrainRoutes[%d].Route.Steps length = %d, want %d", i, len(got.Route.Steps), len(tr.Route.Steps))
		}
	}
}

func TestConnDescrRoundTripsEveryKind(t *testing.T) {
	coords := boxcars.DefaultGeometry().Coords
	trackAddr, trackConn := trackConnFixture()
	faceAddr, faceConn := faceConnFixture()
	steps := []route.Step{
		{Addr: trackAddr, Conn: trackConn},
		{Addr: faceAddr, Conn: faceConn},
		{Addr: faceAddr, Conn: tile.CityConn(1)},
		{Addr: trackAddr, Conn: tile.DitConn(2)},
	}
	for _, s := range steps {
		sd, err := fromStep(coords, s)
		if err != nil {
			t.Fatalf("fromStep: %v", err)
		}
		back, err := sd.toStep(coords)
		if err != nil {
			t.Fatalf("toStep: %v", err)
		}
		if back.Conn != s.Conn {
			t.Errorf("Connection round trip = %+v, want %+v", back.Conn, s.Conn)
		}
	}
}

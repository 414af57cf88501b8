package ioformat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/route"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
)

// ConnDescr is the serialisable form of a tile.Connection: a kind tag
// plus whichever of Index/End/Face that kind uses.
type ConnDescr struct {
	Kind  string `yaml:"kind"`
	Index int    `yaml:"index,omitempty"`
	End   string `yaml:"end,omitempty"`
	Face  string `yaml:"face,omitempty"`
}

func connKindName(k tile.ConnKind) (string, error) {
	switch k {
	case tile.ConnTrack:
		return "track", nil
	case tile.ConnDit:
		return "dit", nil
	case tile.ConnCity:
		return "city", nil
	case tile.ConnFace:
		return "face", nil
	default:
		return "", fmt.Errorf("unknown connection kind %d", k)
	}
}

func parseConnKind(name string) (tile.ConnKind, error) {
	switch name {
	case "track":
		return tile.ConnTrack, nil
	case "dit":
		return tile.ConnDit, nil
	case "city":
		return tile.ConnCity, nil
	case "face":
		return tile.ConnFace, nil
	default:
		return 0, fmt.Errorf("unknown connection kind %q", name)
	}
}

func trackEndName(e tile.TrackEndSel) string {
	if e == tile.EndEnd {
		return "end"
	}
	return "start"
}

func parseTrackEnd(name string) (tile.TrackEndSel, error) {
	switch name {
	case "start", "":
		return tile.EndStart, nil
	case "end":
		return tile.EndEnd, nil
	default:
		return 0, fmt.Errorf("unknown track end %q", name)
	}
}

func fromConn(c tile.Connection) (ConnDescr, error) {
	kind, err := connKindName(c.Kind)
	if err != nil {
		return ConnDescr{}, err
	}
	d := ConnDescr{Kind: kind}
	switch c.Kind {
	case tile.ConnTrack:
		d.Index = c.Index
		d.End = trackEndName(c.End)
	case tile.ConnDit, tile.ConnCity:
		d.Index = c.Index
	case tile.ConnFace:
		d.Face = c.Face.String()
	}
	return d, nil
}

func (d ConnDescr) toConn() (tile.Connection, error) {
	kind, err := parseConnKind(d.Kind)
	if err != nil {
		return tile.Connection{}, err
	}
	switch kind {
	case tile.ConnTrack:
		end, err := parseTrackEnd(d.End)
		if err != nil {
			return tile.Connection{}, err
		}
		return tile.TrackConn(d.Index, end), nil
	case tile.ConnDit:
		return tile.DitConn(d.Index), nil
	case tile.ConnCity:
		return tile.CityConn(d.Index), nil
	case tile.ConnFace:
		face, err := parseFace(d.Face)
		if err != nil {
			return tile.Connection{}, err
		}
		return tile.FaceConn(face), nil
	default:
		return tile.Connection{}, fmt.Errorf("unknown connection kind %q", d.Kind)
	}
}

func parseFace(name string) (hexgeo.HexFace, error) {
	for f := hexgeo.Top; f <= hexgeo.UpperLeft; f++ {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown hex face %q", name)
}

// StepDescr is the serialisable form of a route.Step.
type StepDescr struct {
	Addr string    `yaml:"addr"`
	Conn ConnDescr `yaml:"conn"`
}

// VisitDescr is the serialisable form of a route.Visit.
type VisitDescr struct {
	Addr    string `yaml:"addr"`
	Revenue int    `yaml:"revenue"`
	Kind    string `yaml:"kind"`
	Index   int    `yaml:"index"`
}

// RouteDescr is the serialisable form of a route.Route.
type RouteDescr struct {
	Steps  []StepDescr  `yaml:"steps"`
	Visits []VisitDescr `yaml:"visits"`
}

// TrainDescr is the serialisable form of a route.Train.
type TrainDescr struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	MaxStops   *int   `yaml:"max_stops,omitempty"`
	Multiplier int    `yaml:"revenue_multiplier"`
}

// TrainRouteDescr is the serialisable form of a route.TrainRoute.
type TrainRouteDescr struct {
	Train   TrainDescr `yaml:"train"`
	Revenue int        `yaml:"revenue"`
	Route   RouteDescr `yaml:"route"`
}

// RoutesDescr is the serialisable form of a route.Routes, the top-level
// document SaveRoutes writes and LoadRoutes reads.
type RoutesDescr struct {
	ID          string            `yaml:"id,omitempty"`
	NetRevenue  int               `yaml:"net_revenue"`
	TrainRoutes []TrainRouteDescr `yaml:"train_routes"`
}

func fromStep(coords hexgeo.Coordinates, s route.Step) (StepDescr, error) {
	conn, err := fromConn(s.Conn)
	if err != nil {
		return StepDescr{}, err
	}
	return StepDescr{Addr: coords.Format(s.Addr), Conn: conn}, nil
}

func (d StepDescr) toStep(coords hexgeo.Coordinates) (route.Step, error) {
	addr, err := coords.Parse(d.Addr)
	if err != nil {
		return route.Step{}, err
	}
	conn, err := d.Conn.toConn()
	if err != nil {
		return route.Step{}, err
	}
	return route.Step{Addr: addr, Conn: conn}, nil
}

func fromVisit(coords hexgeo.Coordinates, v route.Visit) (VisitDescr, error) {
	kind, err := connKindName(v.StopKind)
	if err != nil {
		return VisitDescr{}, err
	}
	return VisitDescr{Addr: coords.Format(v.Addr), Revenue: v.Revenue, Kind: kind, Index: v.Index}, nil
}

func (d VisitDescr) toVisit(coords hexgeo.Coordinates) (route.Visit, error) {
	addr, err := coords.Parse(d.Addr)
	if err != nil {
		return route.Visit{}, err
	}
	kind, err := parseConnKind(d.Kind)
	if err != nil {
		return route.Visit{}, err
	}
	return route.Visit{Addr: addr, Revenue: d.Revenue, StopKind: kind, Index: d.Index}, nil
}

func fromRoute(coords hexgeo.Coordinates, r route.Route) (RouteDescr, error) {
	var d RouteDescr
	for _, s := range r.Steps {
		sd, err := fromStep(coords, s)
		if err != nil {
			return RouteDescr{}, err
		}
		d.Steps = append(d.Steps, sd)
	}
	for _, v := range r.Visits {
		vd, err := fromVisit(coords, v)
		if err != nil {
			return RouteDescr{}, err
		}
		d.Visits = append(d.Visits, vd)
	}
	return d, nil
}

func (d RouteDescr) toRoute(coords hexgeo.Coordinates) (route.Route, error) {
	var r route.Route
	for _, sd := range d.Steps {
		s, err := sd.toStep(coords)
		if err != nil {
			return route.Route{}, err
		}
		r.Steps = append(r.Steps, s)
	}
	for _, vd := range d.Visits {
		v, err := vd.toVisit(coords)
		if err != nil {
			return route.Route{}, err
		}
		r.Visits = append(r.Visits, v)
		r.Revenue += v.Revenue
	}
	return r, nil
}

func fromTrain(t route.Train) TrainDescr {
	return TrainDescr{Name: t.Name, Type: t.Type.String(), MaxStops: t.MaxStops, Multiplier: t.Multiplier}
}

func (d TrainDescr) toTrain() (route.Train, error) {
	tt, err := route.ParseTrainType(d.Type)
	if err != nil {
		return route.Train{}, err
	}
	return route.Train{Name: d.Name, Type: tt, MaxStops: d.MaxStops, Multiplier: d.Multiplier}, nil
}

// FromRoutes converts an optimiser result into its serialisable form,
// formatting every address with coords.
func FromRoutes(coords hexgeo.Coordinates, r *route.Routes) (RoutesDescr, error) {
	d := RoutesDescr{ID: r.ID, NetRevenue: r.NetRevenue}
	for _, tr := range r.TrainRoutes {
		rd, err := fromRoute(coords, tr.Route)
		if err != nil {
			return RoutesDescr{}, err
		}
		d.TrainRoutes = append(d.TrainRoutes, TrainRouteDescr{
			Train:   fromTrain(tr.Train),
			Revenue: tr.Revenue,
			Route:   rd,
		})
	}
	return d, nil
}

// ToRoutes parses a serialised routes report, addresses resolved against
// coords.
func ToRoutes(coords hexgeo.Coordinates, d RoutesDescr) (*route.Routes, error) {
	r := &route.Routes{ID: d.ID, NetRevenue: d.NetRevenue}
	for _, trd := range d.TrainRoutes {
		train, err := trd.Train.toTrain()
		if err != nil {
			return nil, err
		}
		rt, err := trd.Route.toRoute(coords)
		if err != nil {
			return nil, err
		}
		r.TrainRoutes = append(r.TrainRoutes, route.TrainRoute{
			Train:   train,
			Revenue: trd.Revenue,
			Route:   rt,
		})
	}
	return r, nil
}

// SaveRoutes writes r's report to path as YAML.
func SaveRoutes(path string, coords hexgeo.Coordinates, r *route.Routes) error {
	d, err := FromRoutes(coords, r)
	if err != nil {
		return fmt.Errorf("converting routes report: %w", err)
	}
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshalling routes report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing routes report %s: %w", path, err)
	}
	return nil
}

// LoadRoutes reads a routes report from path.
func LoadRoutes(path string, coords hexgeo.Coordinates) (*route.Routes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading routes report %s: %w", path, err)
	}
	var d RoutesDescr
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing routes report %s: %w", path, err)
	}
	return ToRoutes(coords, d)
}

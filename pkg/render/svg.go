package render

import (
	"bytes"
	"fmt"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/robmoss/rusty-train-sub002/pkg/hexgeo"
	"github.com/robmoss/rusty-train-sub002/pkg/route"
	"github.com/robmoss/rusty-train-sub002/pkg/tile"
	"github.com/robmoss/rusty-train-sub002/pkg/tilemap"
)

// Options configures a map export.
type Options struct {
	HexSize      int    // distance from a hex's centre to a corner, in pixels
	Margin       int    // canvas margin around the drawn hexes, in pixels
	ShowLabels   bool   // draw tile-name/revenue labels
	ShowTokens   bool   // draw placed company tokens inside cities
	Title        string // optional title drawn above the map
	RouteColour  string // stroke colour used to highlight a Route, if any
	EmptyColour  string // fill colour for hexes with no tile placed
	BarrierColor string // colour reserved for barrier edges; ExportMap does not draw barriers
}

// DefaultOptions returns sensible defaults: a 60px hex, labels and tokens
// shown, a red route highlight.
func DefaultOptions() Options {
	return Options{
		HexSize:      60,
		Margin:       80,
		ShowLabels:   true,
		ShowTokens:   true,
		RouteColour:  "#e53e3e",
		EmptyColour:  "#f7fafc",
		BarrierColor: "#1a202c",
	}
}

func (o Options) size() float64 {
	if o.HexSize <= 0 {
		return 60
	}
	return float64(o.HexSize)
}

// ExportMap draws m as an SVG image. If rt is non-nil, its steps are
// traced as a highlighted polyline over the map (the "optional
// highlighted route" collaborator spec.md §6 leaves to an external
// renderer).
func ExportMap(m *tilemap.Map, rt *route.Route, opts Options) ([]byte, error) {
	if opts.HexSize <= 0 {
		opts = mergeDefaults(opts)
	}
	addrs := m.HexIter()

	width, height, originX, originY := canvasBounds(m.Coords, addrs, opts)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")

	if opts.Title != "" {
		canvas.Text(width/2, 30, opts.Title, "text-anchor:middle;font-size:20px;font-weight:bold;fill:#1a202c")
	}

	for _, addr := range addrs {
		drawHex(canvas, m, addr, originX, originY, opts)
	}

	if rt != nil {
		drawRoute(canvas, m.Coords, *rt, originX, originY, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile draws m (and optionally rt) and writes the result to path
// with 0644 permissions.
func SaveSVGToFile(m *tilemap.Map, rt *route.Route, path string, opts Options) error {
	data, err := ExportMap(m, rt, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing map SVG %s: %w", path, err)
	}
	return nil
}

func mergeDefaults(opts Options) Options {
	d := DefaultOptions()
	if opts.HexSize > 0 {
		d.HexSize = opts.HexSize
	}
	if opts.Margin > 0 {
		d.Margin = opts.Margin
	}
	d.ShowLabels = opts.ShowLabels
	d.ShowTokens = opts.ShowTokens
	d.Title = opts.Title
	if opts.RouteColour != "" {
		d.RouteColour = opts.RouteColour
	}
	if opts.EmptyColour != "" {
		d.EmptyColour = opts.EmptyColour
	}
	if opts.BarrierColor != "" {
		d.BarrierColor = opts.BarrierColor
	}
	return d
}

// canvasBounds computes the pixel canvas size and the origin offset that
// keeps every hex's drawn corners within [0,width] x [0,height].
func canvasBounds(coords hexgeo.Coordinates, addrs []hexgeo.Address, opts Options) (width, height int, originX, originY float64) {
	size := opts.size()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, addr := range addrs {
		tr := coords.PrepareToDraw(addr, size)
		for _, c := range tr.Corners {
			minX, minY = math.Min(minX, c.X), math.Min(minY, c.Y)
			maxX, maxY = math.Max(maxX, c.X), math.Max(maxY, c.Y)
		}
	}
	if len(addrs) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	m := float64(opts.Margin)
	originX, originY = m-minX, m-minY
	width = int(maxX-minX) + 2*opts.Margin
	height = int(maxY-minY) + 2*opts.Margin + titleHeight(opts)
	return
}

func titleHeight(opts Options) int {
	if opts.Title != "" {
		return 40
	}
	return 0
}

func drawHex(canvas *svg.SVG, m *tilemap.Map, addr hexgeo.Address, originX, originY float64, opts Options) {
	size := opts.size()
	tr := m.Coords.PrepareToDraw(addr, size)
	xs, ys := polygonPoints(tr, originX, originY)

	t, rot, ok := m.TileAt(addr)
	if !ok {
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:#cbd5e0;stroke-width:1", opts.EmptyColour))
		return
	}
	canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:#1a202c;stroke-width:1.5", colourFill(t.Colour)))

	for i, tr2 := range t.Tracks {
		drawTrack(canvas, t, tr, originX, originY, size, i, tr2, rot)
	}
	for i, c := range t.Cities {
		drawCity(canvas, m, addr, tr, originX, originY, size, i, c, t.Cities, opts)
	}
	for i, d := range t.Dits {
		drawDit(canvas, tr, originX, originY, size, i, d, len(t.Dits))
	}
	if opts.ShowLabels {
		drawTileLabel(canvas, tr, originX, originY, t, opts)
	}
}

func polygonPoints(tr hexgeo.Transform, originX, originY float64) ([]int, []int) {
	xs := make([]int, 6)
	ys := make([]int, 6)
	for i, c := range tr.Corners {
		xs[i] = int(c.X + originX)
		ys[i] = int(c.Y + originY)
	}
	return xs, ys
}

func colourFill(c tile.Colour) string {
	switch c {
	case tile.Yellow:
		return "#fefcbf"
	case tile.Green:
		return "#9ae6b4"
	case tile.Brown:
		return "#d6a36a"
	case tile.Grey:
		return "#cbd5e0"
	case tile.Red:
		return "#feb2b2"
	default:
		return "#ffffff"
	}
}

// faceMidpoint returns the pixel midpoint of the edge a face names, per
// the corner/face correspondence documented on hexgeo.HexCorner: face f
// spans corners[(f+4)%6] and corners[(f+5)%6].
func faceMidpoint(tr hexgeo.Transform, f hexgeo.HexFace) (float64, float64) {
	a := tr.Corners[(int(f)+4)%6]
	b := tr.Corners[(int(f)+5)%6]
	return (a.X + b.X) / 2, (a.Y + b.Y) / 2
}

// cityAnchor returns the pixel point a city is drawn at within its hex:
// the centre for a single-city tile, spread horizontally for tiles with
// more than one city.
func cityAnchor(tr hexgeo.Transform, size float64, index, count int) (float64, float64) {
	if count <= 1 {
		return tr.CenterX, tr.CenterY
	}
	spacing := size * 0.6
	offset := (float64(index) - float64(count-1)/2) * spacing
	return tr.CenterX + offset, tr.CenterY
}

// ditAnchor places a dit near the hex centre, offset enough that multiple
// dits on one tile don't overlap.
func ditAnchor(tr hexgeo.Transform, size float64, index, count int) (float64, float64) {
	if count <= 1 {
		return tr.CenterX, tr.CenterY
	}
	spacing := size * 0.4
	offset := (float64(index) - float64(count-1)/2) * spacing
	return tr.CenterX + offset, tr.CenterY + size*0.3
}

func trackEndPoint(tr hexgeo.Transform, size float64, t *tile.Tile, end tile.TrackEnd, rot hexgeo.RotateCW) (float64, float64) {
	switch end.Kind {
	case tile.AtFace:
		return faceMidpoint(tr, end.Face.Rotate(rot))
	case tile.AtCity:
		return cityAnchor(tr, size, end.Index, len(t.Cities))
	default: // AtDit
		return ditAnchor(tr, size, end.Index, len(t.Dits))
	}
}

func drawTrack(canvas *svg.SVG, t *tile.Tile, tr hexgeo.Transform, originX, originY, size float64, ix int, t2 tile.Track, rot hexgeo.RotateCW) {
	// Track geometry carries curvature/span metadata beyond what a
	// straight-line rendering needs; a straight chord between endpoints is
	// a faithful-enough rendering of connectivity, which is all a route
	// highlight needs to read clearly.
	_ = ix
	x1, y1 := trackEndPoint(tr, size, t, t2.Start, rot)
	x2, y2 := trackEndPoint(tr, size, t, t2.End, rot)
	canvas.Line(int(x1+originX), int(y1+originY), int(x2+originX), int(y2+originY), "stroke:#2d3748;stroke-width:4")
}

func drawCity(canvas *svg.SVG, m *tilemap.Map, addr hexgeo.Address, tr hexgeo.Transform, originX, originY, size float64, ix int, c tile.City, cities []tile.City, opts Options) {
	cx, cy := cityAnchor(tr, size, ix, len(cities))
	radius := size * 0.28
	canvas.Circle(int(cx+originX), int(cy+originY), int(radius), "fill:#ffffff;stroke:#1a202c;stroke-width:2")
	if opts.ShowLabels {
		canvas.Text(int(cx+originX), int(cy+originY-radius-4), fmt.Sprintf("$%d", c.Revenue), "text-anchor:middle;font-size:12px;fill:#1a202c")
	}
	if !opts.ShowTokens {
		return
	}
	for slot := 0; slot < c.Slots; slot++ {
		ts := tile.TokenSpace{CityIndex: ix, SlotIndex: slot}
		tok, ok := m.TokenAt(addr, ts)
		if !ok || tok.IsZero() {
			continue
		}
		slotOffset := (float64(slot) - float64(c.Slots-1)/2) * radius
		canvas.Circle(int(cx+slotOffset+originX), int(cy+originY), int(radius*0.4),
			fmt.Sprintf("fill:%s;stroke:#1a202c;stroke-width:1", tokenColour(tok.Company)))
	}
}

func drawDit(canvas *svg.SVG, tr hexgeo.Transform, originX, originY, size float64, ix int, d tile.Dit, count int) {
	dx, dy := ditAnchor(tr, size, ix, count)
	radius := size * 0.12
	canvas.Circle(int(dx+originX), int(dy+originY), int(radius), "fill:#2d3748")
	canvas.Text(int(dx+originX), int(dy+originY-radius-4), fmt.Sprintf("%d", d.Revenue), "text-anchor:middle;font-size:10px;fill:#2d3748")
}

func drawTileLabel(canvas *svg.SVG, tr hexgeo.Transform, originX, originY float64, t *tile.Tile, opts Options) {
	if t.HiddenName {
		return
	}
	canvas.Text(int(tr.CenterX+originX), int(tr.Corners[0].Y+originY-4), t.Name, "text-anchor:middle;font-size:10px;fill:#4a5568")
}

// tokenColour assigns a stable colour per company name, cycling through a
// small fixed palette -- enough to visually distinguish a handful of
// operating companies without needing a colour assigned by the game.
func tokenColour(company string) string {
	palette := []string{"#3182ce", "#dd6b20", "#38a169", "#805ad5", "#d53f8c", "#2b6cb0"}
	h := 0
	for _, r := range company {
		h = h*31 + int(r)
	}
	if h < 0 {
		h = -h
	}
	return palette[h%len(palette)]
}

// drawRoute overlays rt's step sequence as a highlighted polyline. Face
// steps are drawn at their edge midpoints; every other step is drawn at
// the hex centre (see connectionPoint), not at drawCity/drawDit's
// per-stop anchor points.
func drawRoute(canvas *svg.SVG, coords hexgeo.Coordinates, rt route.Route, originX, originY float64, opts Options) {
	size := opts.size()
	var xs, ys []int
	for _, step := range rt.Steps {
		tr := coords.PrepareToDraw(step.Addr, size)
		x, y := connectionPoint(tr, step.Conn)
		xs = append(xs, int(x+originX))
		ys = append(ys, int(y+originY))
	}
	for i := 0; i+1 < len(xs); i++ {
		canvas.Line(xs[i], ys[i], xs[i+1], ys[i+1], fmt.Sprintf("stroke:%s;stroke-width:5;stroke-opacity:0.7", opts.RouteColour))
	}
	for i := range xs {
		canvas.Circle(xs[i], ys[i], 5, fmt.Sprintf("fill:%s", opts.RouteColour))
	}
}

// connectionPoint approximates a Step's pixel position for the route
// overlay. It does not have the owning Tile in hand (a Step only names an
// address and a Connection), so cities/dits on multi-city tiles are
// anchored at the hex centre here rather than drawCity/drawDit's spread
// positions -- close enough for a route highlight's purpose of showing
// which hexes and, roughly, which stops a train passes through.
func connectionPoint(tr hexgeo.Transform, c tile.Connection) (float64, float64) {
	switch c.Kind {
	case tile.ConnFace:
		return faceMidpoint(tr, c.Face)
	default: // ConnCity, ConnDit, ConnTrack
		return tr.CenterX, tr.CenterY
	}
}

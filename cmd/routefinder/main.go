// Command routefinder loads a game configuration and map descriptor,
// searches for the highest-revenue train assignment for one company, and
// reports the result as YAML (and optionally an SVG map render).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	gm "github.com/robmoss/rusty-train-sub002/pkg/game"
	"github.com/robmoss/rusty-train-sub002/pkg/game/boxcars"
	"github.com/robmoss/rusty-train-sub002/pkg/ioformat"
	"github.com/robmoss/rusty-train-sub002/pkg/render"
	"github.com/robmoss/rusty-train-sub002/pkg/route"
	"github.com/robmoss/rusty-train-sub002/pkg/search"
	"github.com/robmoss/rusty-train-sub002/pkg/tilemap"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML game/search configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for the routes report and SVG render")
	svgOut     = flag.Bool("svg", false, "Render the winning route to an SVG file alongside the YAML report")
	timeout    = flag.Duration("timeout", 30*time.Second, "Maximum time to spend searching before returning the best result so far")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

// gameEntry is what the registry needs to start a game from scratch: a
// constructor and the geometry a fresh map uses when no -config map_file
// is given.
type gameEntry struct {
	new      func() gm.Game
	geometry gm.Geometry
}

// registry maps a Config.Game name to its entry. Boxcars is the only
// title shipped with this module; a deployment embedding its own Game
// implementation registers it here alongside Boxcars.
var registry = map[string]gameEntry{
	"Boxcars": {
		new:      func() gm.Game { return boxcars.New() },
		geometry: boxcars.DefaultGeometry(),
	},
}

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("routefinder version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}
	cfg, err := gm.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entry, ok := registry[cfg.Game]
	if !ok {
		return fmt.Errorf("unknown game %q (known: %v)", cfg.Game, gameNames())
	}
	g := entry.new()

	if cfg.PhaseIx >= len(g.PhaseNames()) {
		return fmt.Errorf("phase_ix %d out of range for %s (has %d phases)", cfg.PhaseIx, g.Name(), len(g.PhaseNames()))
	}

	m, loadedGame, err := loadOrCreateMap(cfg, g, entry.geometry)
	if err != nil {
		return err
	}
	if loadedGame != "" && loadedGame != g.Name() {
		return fmt.Errorf("map file was saved for game %q, not %q", loadedGame, g.Name())
	}

	if cfg.PhaseIx != g.PhaseIx() {
		m, err = g.SetPhaseIx(m, cfg.PhaseIx)
		if err != nil {
			return fmt.Errorf("applying phase %d: %w", cfg.PhaseIx, err)
		}
	}

	company, ok := gm.TryCompany(g, cfg.Company)
	if !ok {
		return fmt.Errorf("game %q has no company named %q", g.Name(), cfg.Company)
	}

	single, multi, err := cfg.ResolveConflictRules(g)
	if err != nil {
		return fmt.Errorf("resolving conflict rules: %w", err)
	}

	if *verbose {
		fmt.Printf("Searching %s's routes on %s (phase %s, conflict rule %s/%s)\n",
			company.Name, g.Name(), g.PhaseNames()[g.PhaseIx()], single, multi)
	}

	start := time.Now()
	res := search.RunWithTimeout(*timeout, search.Request{
		Map: m,
		Criteria: route.Criteria{
			Token:             company.Token,
			ConflictRule:      single,
			RouteConflictRule: multi,
		},
		Trains:    g.Trains(),
		Bonuses:   g.Bonuses(cfg.Bonuses),
		DitPolicy: gm.DitSkipPolicyFor(g),
	})
	elapsed := time.Since(start)

	if res.Err != nil {
		return fmt.Errorf("search failed: %w", res.Err)
	}

	if *verbose {
		fmt.Printf("Enumerated %d paths in %v\n", len(res.Paths), elapsed)
	}

	if res.Routes == nil || len(res.Routes.TrainRoutes) == 0 {
		fmt.Println("No valid route found for any train.")
		return nil
	}

	fmt.Printf("Best net revenue for %s: %d\n", company.Name, res.Routes.NetRevenue)
	for _, tr := range res.Routes.TrainRoutes {
		fmt.Printf("  %s train: %d (via %d stops)\n", tr.Train.Name, tr.Revenue, len(tr.Route.Visits))
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	reportPath := *outputDir + "/routes.yaml"
	if err := ioformat.SaveRoutes(reportPath, m.Coords, res.Routes); err != nil {
		return fmt.Errorf("saving routes report: %w", err)
	}
	if *verbose {
		fmt.Printf("Wrote routes report to %s\n", reportPath)
	}

	if *svgOut {
		svgPath := *outputDir + "/map.svg"
		opts := render.DefaultOptions()
		opts.Title = fmt.Sprintf("%s: %s (net %d)", g.Name(), company.Name, res.Routes.NetRevenue)
		best := res.Routes.TrainRoutes[0].Route
		if err := render.SaveSVGToFile(m, &best, svgPath, opts); err != nil {
			return fmt.Errorf("saving SVG render: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote SVG render to %s\n", svgPath)
		}
	}

	return nil
}

// loadOrCreateMap builds the map to search over: from cfg.MapFile if set,
// otherwise a fresh empty map over defaultGeometry. The returned game
// name is the one recorded in the map file, or "" for a fresh map.
func loadOrCreateMap(cfg *gm.Config, g gm.Game, defaultGeometry gm.Geometry) (*tilemap.Map, string, error) {
	if cfg.MapFile == "" {
		return g.CreateMap(defaultGeometry), "", nil
	}
	m, gameName, err := ioformat.LoadMap(cfg.MapFile, defaultGeometry.Coords, g.TileCatalogue())
	if err != nil {
		return nil, "", fmt.Errorf("loading map %s: %w", cfg.MapFile, err)
	}
	return m, gameName, nil
}

func gameNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: routefinder -config <config.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'routefinder -help' for detailed help")
}

func printHelp() {
	fmt.Printf("routefinder version %s\n\n", version)
	fmt.Println("Searches for the highest-revenue train routing for one company on a map.")
	fmt.Println("\nUsage:")
	fmt.Println("  routefinder -config <config.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML game/search configuration file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for the routes report and SVG render (default: current directory)")
	fmt.Println("  -svg")
	fmt.Println("        Render the winning route to an SVG file alongside the YAML report")
	fmt.Println("  -timeout duration")
	fmt.Println("        Maximum time to spend searching (default: 30s)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  routefinder -config boxcars.yaml")
	fmt.Println("  routefinder -config boxcars.yaml -svg -output ./out -verbose")
}

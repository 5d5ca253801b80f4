// Command ls-skygeom is a terminal sky chart that shows which constellation a
// point on the celestial sphere belongs to.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-skygeom/internal/astro"
	"github.com/litescript/ls-skygeom/internal/config"
	"github.com/litescript/ls-skygeom/internal/constellation"
	"github.com/litescript/ls-skygeom/internal/logging"
	"github.com/litescript/ls-skygeom/internal/planar"
	"github.com/litescript/ls-skygeom/internal/ui"
	"github.com/litescript/ls-skygeom/internal/version"
)

// CLI flags for headless mode
var (
	classifyMode bool
	jsonPath     string
	locateArg    string
	segmentArg   string
	maxMag       float64
)

func main() {
	configPath := flag.String("config", "", "YAML config file with settings and boundary overrides")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error); overrides config")
	workers := flag.Int("workers", 0, "Classification workers; overrides config")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.BoolVar(&classifyMode, "classify", false, "Print catalog classification table instead of TUI")
	flag.StringVar(&jsonPath, "json", "", "Export catalog classification as JSON to file (use - for stdout)")
	flag.StringVar(&locateArg, "locate", "", `Print the constellation containing "RA,DEC" (degrees or 05h55m10s,+07d24m25s)`)
	flag.StringVar(&segmentArg, "segment", "", `Test two planar segments "x1,y1,x2,y2:x3,y3,x4,y4" for intersection`)
	flag.Float64Var(&maxMag, "max-mag", 0, "Only classify stars at or brighter than this magnitude (0 = all)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ls-skygeom v%s\n", version.Version)
		return
	}

	// Segment checks need no config or registry
	if segmentArg != "" {
		if err := runSegment(os.Stdout, segmentArg); err != nil {
			fatal(err)
		}
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fatal(err)
		}
	}
	if *logLevel != "" {
		if !logging.ValidLevel(*logLevel) {
			fatal(fmt.Errorf("unknown log level %q", *logLevel))
		}
		cfg.LogLevel = *logLevel
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	reg, err := constellation.NewRegistry(cfg.AllBoundaries())
	if err != nil {
		fatal(err)
	}
	logger.Debug("Loaded %d boundaries: %s", reg.Len(), strings.Join(reg.IDs(), " "))

	catalog := astro.DefaultStarCatalog()
	if maxMag != 0 {
		catalog = catalog.Brighter(maxMag)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if locateArg != "" {
		if err := runLocate(os.Stdout, reg, locateArg); err != nil {
			fatal(err)
		}
		return
	}

	// Headless mode: no TUI, or nowhere to draw one
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if classifyMode || jsonPath != "" || !isTTY {
		if err := runHeadless(ctx, reg, catalog, cfg.Workers, logger); err != nil {
			fatal(err)
		}
		return
	}

	// Keep log lines off the alt screen
	logger.SetOutput(io.Discard)

	model := ui.New(reg, catalog, cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// runHeadless classifies the catalog and prints the table and/or JSON export.
func runHeadless(ctx context.Context, reg *constellation.Registry, catalog astro.StarCatalog, workers int, logger *logging.Logger) error {
	targets := make([]constellation.Target, len(catalog.Stars))
	for i, s := range catalog.Stars {
		targets[i] = constellation.Target{Name: s.Name, Point: s.Point(), Mag: s.Mag}
	}

	results, err := constellation.Classify(ctx, reg, targets, workers, logger.With("classify"))
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	if jsonPath != "" {
		export := constellation.ExportClassification(results)
		if jsonPath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else if err := writeExportFile(jsonPath, export); err != nil {
			return err
		}
	}

	if classifyMode || jsonPath == "" {
		constellation.WriteSummaryTable(os.Stdout, results)
	}
	return nil
}

// writeExportFile writes export to path as JSON. Errors from closing the file
// are reported like write errors.
func writeExportFile(path string, export *constellation.ClassificationExport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := export.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("write JSON to file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

// runLocate prints the constellation containing the coordinate in arg.
func runLocate(w io.Writer, reg *constellation.Registry, arg string) error {
	c, err := astro.ParseRADec(arg)
	if err != nil {
		return err
	}
	e, err := reg.Locate(c.Point())
	if err != nil {
		if errors.Is(err, constellation.ErrNotFound) {
			fmt.Fprintf(w, "%s: outside all boundaries\n", c)
			return nil
		}
		return fmt.Errorf("%s: %w", c, err)
	}
	fmt.Fprintf(w, "%s: %s (%s)\n", c, e.Name(), e.ID())
	return nil
}

// runSegment reports whether the two segments in arg intersect, under both
// the strict and the legacy collinear rule.
func runSegment(w io.Writer, arg string) error {
	a, b, err := parseSegments(arg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "intersect: %t\n", planar.SegmentsIntersect(a, b))
	fmt.Fprintf(w, "intersect (legacy collinear rule): %t\n", planar.SegmentsIntersectLegacy(a, b))
	return nil
}

// parseSegments parses "x1,y1,x2,y2:x3,y3,x4,y4".
func parseSegments(arg string) (planar.Segment, planar.Segment, error) {
	halves := strings.Split(arg, ":")
	if len(halves) != 2 {
		return planar.Segment{}, planar.Segment{}, fmt.Errorf("segment %q: want two segments separated by ':'", arg)
	}
	var segs [2]planar.Segment
	for i, h := range halves {
		fields := strings.Split(h, ",")
		if len(fields) != 4 {
			return planar.Segment{}, planar.Segment{}, fmt.Errorf("segment %q: want 4 coordinates, got %d", h, len(fields))
		}
		var v [4]float64
		for j, f := range fields {
			x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return planar.Segment{}, planar.Segment{}, fmt.Errorf("segment %q: %w", h, err)
			}
			v[j] = x
		}
		segs[i] = planar.Seg(v[0], v[1], v[2], v[3])
	}
	return segs[0], segs[1], nil
}

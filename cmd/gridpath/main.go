// Command gridpath finds a shortest path on a grid and prints it.
//
// Usage:
//
//	gridpath [flags] [width height [seed]]
//
// With width and height a random map is generated (seeded from the clock
// unless seed is given). With -map a text grid is loaded instead. With
// neither, the built-in 20x20 demo map is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal"
	"github.com/pdrpinto/gridpath/internal/mapgen"
	"github.com/pdrpinto/gridpath/internal/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// pointFlag parses "x,y".
type pointFlag struct {
	point gridpath.Point
	set   bool
}

func (f *pointFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.point.X, f.point.Y)
}

func (f *pointFlag) Set(value string) error {
	xs, ys, ok := strings.Cut(value, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return fmt.Errorf("bad y: %w", err)
	}
	f.point = gridpath.Point{X: x, Y: y}
	f.set = true
	return nil
}

type options struct {
	density  float64
	mapFile  string
	pngFile  string
	cellSize int
	trace    bool
	verify   bool
	color    bool
	verbose  bool
	start    pointFlag
	goal     pointFlag
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: gridpath [flags] [width height [seed]]")
		_, _ = fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
	}
	fs.Float64Var(&opts.density, "density", mapgen.DefaultDensity, "probability that a random cell is passable")
	fs.StringVar(&opts.mapFile, "map", "", "read the grid from a text file ('.' open, '#' blocked)")
	fs.StringVar(&opts.pngFile, "png", "", "also write the grid and path as a PNG image")
	fs.IntVar(&opts.cellSize, "cell_pixels", 9, "pixels per cell in the PNG image")
	fs.BoolVar(&opts.trace, "trace", false, "print the distance map after every expansion")
	fs.BoolVar(&opts.verify, "verify", false, "cross-check the result against a breadth-first search")
	fs.BoolVar(&opts.color, "color", false, "colorize terminal output")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.Var(&opts.start, "start", "start cell as x,y")
	fs.Var(&opts.goal, "goal", "goal cell as x,y")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	m, err := loadMap(fs.Args(), opts)
	if err != nil {
		return err
	}
	if opts.start.set {
		m.Start = opts.start.point
	}
	if opts.goal.set {
		m.Goal = opts.goal.point
	}
	log.WithFields(logrus.Fields{
		"width":  m.Grid.Width(),
		"height": m.Grid.Height(),
		"seed":   m.Seed,
		"start":  m.Start.String(),
		"goal":   m.Goal.String(),
	}).Debug("map ready")

	renderer := render.NewRenderer(opts.color)
	if opts.trace {
		if err := trace(stdout, renderer, m); err != nil {
			return err
		}
	}

	path := make([]int, max(m.Grid.Len()-1, 0))
	began := time.Now()
	distance, err := gridpath.FindPath(m.Grid, m.Start, m.Goal, path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"distance": distance,
		"elapsed":  time.Since(began).String(),
	}).Debug("search finished")

	if distance == gridpath.NoPath {
		log.Warn("goal is not reachable")
		path = nil
	} else {
		path = path[:distance]
	}

	_, _ = fmt.Fprint(stdout, renderer.Grid(m.Grid, m.Start, m.Goal, path))
	if distance > 0 {
		_, _ = fmt.Fprintln(stdout, render.Indices(path))
	}
	_, _ = fmt.Fprintf(stdout, "distance=%d\n", distance)

	if opts.verify {
		if err := verify(m, distance, path); err != nil {
			return err
		}
		log.Info("result matches breadth-first reference")
	}
	if opts.pngFile != "" {
		if err := writePNG(opts.pngFile, opts.cellSize, m, path); err != nil {
			return err
		}
		log.WithField("file", opts.pngFile).Info("wrote image")
	}
	return nil
}

func loadMap(positional []string, opts options) (mapgen.Map, error) {
	if opts.mapFile != "" {
		if len(positional) != 0 {
			return mapgen.Map{}, errors.New("-map cannot be combined with width and height")
		}
		if !opts.start.set || !opts.goal.set {
			return mapgen.Map{}, errors.New("-map requires -start and -goal")
		}
		f, err := os.Open(opts.mapFile)
		if err != nil {
			return mapgen.Map{}, err
		}
		defer f.Close()
		grid, err := gridpath.ParseGrid(f)
		if err != nil {
			return mapgen.Map{}, fmt.Errorf("%s: %w", opts.mapFile, err)
		}
		return mapgen.Map{Grid: grid}, nil
	}

	switch len(positional) {
	case 0:
		return mapgen.Demo2020(), nil
	case 2, 3:
	default:
		return mapgen.Map{}, fmt.Errorf("want width height [seed], got %d arguments", len(positional))
	}
	width, err := strconv.Atoi(positional[0])
	if err != nil {
		return mapgen.Map{}, fmt.Errorf("bad width: %w", err)
	}
	height, err := strconv.Atoi(positional[1])
	if err != nil {
		return mapgen.Map{}, fmt.Errorf("bad height: %w", err)
	}
	seed := time.Now().UnixNano()
	if len(positional) == 3 {
		if seed, err = strconv.ParseInt(positional[2], 10, 64); err != nil {
			return mapgen.Map{}, fmt.Errorf("bad seed: %w", err)
		}
	}
	return mapgen.Random(width, height, opts.density, seed)
}

func trace(w io.Writer, renderer *render.Renderer, m mapgen.Map) error {
	stepper, err := gridpath.NewStepper(m.Grid, m.Start, m.Goal)
	if err != nil {
		return err
	}
	for !stepper.Done() {
		snapshot := stepper.Step()
		_, _ = fmt.Fprintf(w, "step %d at %v, frontier %d\n", snapshot.StepIndex, snapshot.Current, snapshot.FrontierLen)
		_, _ = fmt.Fprint(w, renderer.DistanceMap(m.Grid, m.Goal, snapshot.Distances))
	}
	return nil
}

func verify(m mapgen.Map, distance int, path []int) error {
	cells := m.Grid.Cells()
	start, goal := m.Grid.Index(m.Start), m.Grid.Index(m.Goal)
	want := internal.BreadthFirstDistance(m.Grid.Width(), m.Grid.Height(), cells, start, goal)
	if distance != want {
		return fmt.Errorf("verify: distance %d, breadth-first search found %d", distance, want)
	}
	if distance == gridpath.NoPath {
		return nil
	}
	if err := internal.CheckPath(m.Grid.Width(), cells, start, goal, path); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	return nil
}

func writePNG(name string, cellPixels int, m mapgen.Map, path []int) error {
	pic, err := render.Image(m.Grid, m.Start, m.Goal, path, cellPixels)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, pic); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

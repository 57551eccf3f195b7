// Command latticedemo builds a rectangle or ellipse area, scales it and
// prints its lattice points, boundary points or an ASCII raster.
//
// Defaults come from LATTICE_* environment variables and can be
// overridden by flags:
//
//	latticedemo -shape ellipse -x -5 -y -5 -w 10 -h 10 -mode grid
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/snoopycrimecop/omero-renderer/geom2d"
)

// maxGridCells bounds the raster printed in grid mode.
const maxGridCells = 1 << 16

// config holds the command settings.
type config struct {
	Shape  string  `env:"LATTICE_SHAPE" envDefault:"ellipse"`
	X      int     `env:"LATTICE_X" envDefault:"-5"`
	Y      int     `env:"LATTICE_Y" envDefault:"-5"`
	Width  int     `env:"LATTICE_WIDTH" envDefault:"10"`
	Height int     `env:"LATTICE_HEIGHT" envDefault:"10"`
	Scale  float64 `env:"LATTICE_SCALE" envDefault:"1"`
	Mode   string  `env:"LATTICE_MODE" envDefault:"grid"`
	Debug  bool    `env:"LATTICE_DEBUG"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("latticedemo: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("latticedemo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Shape, "shape", cfg.Shape, "area shape: rect or ellipse")
	fs.IntVar(&cfg.X, "x", cfg.X, "bounding box x")
	fs.IntVar(&cfg.Y, "y", cfg.Y, "bounding box y")
	fs.IntVar(&cfg.Width, "w", cfg.Width, "bounding box width")
	fs.IntVar(&cfg.Height, "h", cfg.Height, "bounding box height")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "scale factor applied to the bounding box")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "output: points, boundary or grid")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log area changes to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if cfg.Debug {
		geom2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	area, err := newArea(cfg)
	if err != nil {
		return err
	}
	area.Scale(cfg.Scale)

	switch cfg.Mode {
	case "points":
		return printPoints(out, area)
	case "boundary":
		return printBoundary(out, area)
	case "grid":
		return printGrid(out, area)
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

func newArea(cfg config) (geom2d.Area, error) {
	switch cfg.Shape {
	case "rect", "rectangle":
		return geom2d.NewRectangleArea(cfg.X, cfg.Y, cfg.Width, cfg.Height), nil
	case "ellipse":
		return geom2d.NewEllipseArea(cfg.X, cfg.Y, cfg.Width, cfg.Height), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", cfg.Shape)
	}
}

func printPoints(w io.Writer, a geom2d.Area) error {
	n := 0
	for p := range a.Points() {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
		n++
	}
	_, err := fmt.Fprintf(w, "%d points in %v\n", n, a.Bounds())
	return err
}

// printBoundary lists the lattice points of the closed bounding box that
// lie on the area perimeter.
func printBoundary(w io.Writer, a geom2d.Area) error {
	r := a.Bounds().Rect()
	if err := checkRasterSize(r.Dx()+1, r.Dy()+1); err != nil {
		return err
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if !a.OnBoundaries(x, y) {
				continue
			}
			if _, err := fmt.Fprintln(w, geom2d.PtOf(x, y)); err != nil {
				return err
			}
		}
	}
	return nil
}

// printGrid renders the closed bounding box: '#' for interior points,
// '+' for boundary points and '.' elsewhere.
func printGrid(w io.Writer, a geom2d.Area) error {
	r := a.Bounds().Rect()
	cols, rows := r.Dx()+1, r.Dy()+1
	if err := checkRasterSize(cols, rows); err != nil {
		return err
	}

	inside := make(map[geom2d.Point]struct{})
	for p := range a.Points() {
		inside[p] = struct{}{}
	}

	line := make([]byte, cols+1)
	line[cols] = '\n'
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			c := byte('.')
			if _, ok := inside[geom2d.PtOf(x, y)]; ok {
				c = '#'
			} else if a.OnBoundaries(x, y) {
				c = '+'
			}
			line[x-r.Min.X] = c
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

var errRasterTooLarge = errors.New("raster too large")

func checkRasterSize(cols, rows int) error {
	if cols <= 0 || rows <= 0 || cols > maxGridCells/rows {
		return fmt.Errorf("%w: %dx%d cells, limit %d", errRasterTooLarge, cols, rows, maxGridCells)
	}
	return nil
}

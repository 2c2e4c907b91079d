package main

import (
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/katalvlaran/eikonal"
	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/render"
)

// Command-line flags. Each maps onto one eikonal.Config field or one
// rendering choice.
var (
	// widthFlag and heightFlag set the grid resolution in cells.
	widthFlag  = flag.Int("width", eikonal.DefaultSize, "grid width in cells")
	heightFlag = flag.Int("height", eikonal.DefaultSize, "grid height in cells")

	// windowFlag is the domain rectangle laid over the grid.
	windowFlag = flag.String("window", "-3,3,-3,3", "domain window as xmin,xmax,ymin,ymax")

	// epsilonFlag is the zero-level-set tolerance on |f(x,y)|.
	epsilonFlag = flag.Float64("epsilon", float64(eikonal.DefaultEpsilon), "seed cells where |f(x,y)| < epsilon")

	// workersFlag bounds the seeding goroutines; 0 uses GOMAXPROCS.
	workersFlag = flag.Int("workers", 0, "seeding goroutines (0 = GOMAXPROCS)")

	// curveFlag selects the boundary curve.
	curveFlag = flag.String("curve", "flower", "boundary curve: flower or circle")

	// radiusFlag is the circle radius when -curve=circle.
	radiusFlag = flag.Float64("radius", 1, "circle radius for -curve=circle")

	// paletteFlag selects the colour mapping.
	paletteFlag = flag.String("palette", "falloff", "colour mapping: falloff or gradient")

	// scaleFlag resamples the image to this many pixels per side; 0 keeps one pixel per cell.
	scaleFlag = flag.Int("scale", 0, "output size in pixels (0 = one pixel per cell)")

	// outFlag is the PNG destination.
	outFlag = flag.String("out", "plot_plain.png", "output PNG path")

	// verboseFlag lowers the log level to Debug for stage timings and queue statistics.
	verboseFlag = flag.Bool("v", false, "debug logging")
)

// configFromFlags builds the solver configuration from parsed flags.
func configFromFlags() (eikonal.Config, error) {
	cfg := eikonal.DefaultConfig()
	cfg.Width, cfg.Height = *widthFlag, *heightFlag
	cfg.Epsilon = float32(*epsilonFlag)
	cfg.Workers = *workersFlag

	win, err := parseWindow(*windowFlag)
	if err != nil {
		return cfg, err
	}
	cfg.Window = win

	switch *curveFlag {
	case "flower":
		cfg.Implicit = field.Flower
	case "circle":
		cfg.Implicit = field.Circle(float32(*radiusFlag))
	default:
		return cfg, fmt.Errorf("unknown -curve %q", *curveFlag)
	}

	return cfg, cfg.Validate()
}

// paletteFromFlags resolves -palette.
func paletteFromFlags() (render.Palette, error) {
	switch *paletteFlag {
	case "falloff":
		return render.Falloff(0.01), nil
	case "gradient":
		return render.Gradient(color.RGBA{G: 0xff, A: 0xff}, color.RGBA{A: 0xff}), nil
	default:
		return nil, fmt.Errorf("unknown -palette %q", *paletteFlag)
	}
}

// parseWindow reads "xmin,xmax,ymin,ymax".
func parseWindow(s string) (grid.Window, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return grid.Window{}, fmt.Errorf("-window %q: want 4 comma-separated numbers", s)
	}
	var v [4]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return grid.Window{}, fmt.Errorf("-window %q: %w", s, err)
		}
		v[i] = float32(f)
	}

	return grid.Window{XMin: v[0], XMax: v[1], YMin: v[2], YMax: v[3]}, nil
}

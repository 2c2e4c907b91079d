package eikonal

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/grid"
)

// Defaults of the reference configuration.
const (
	DefaultSize    = 1024
	DefaultEpsilon = field.DefaultEpsilon
)

// DefaultWindow is [-3,3]×[-3,3].
var DefaultWindow = grid.Window{XMin: -3, XMax: 3, YMin: -3, YMax: 3}

// ErrBadConfig indicates a Config that failed Validate.
var ErrBadConfig = errors.New("eikonal: invalid config")

// Config is the full input boundary of a solve: grid size, domain window,
// zero-level-set tolerance, boundary function and seeding parallelism.
type Config struct {
	Width, Height int
	Window        grid.Window
	Epsilon       float32
	Implicit      field.ImplicitFunc
	Workers       int // seeding goroutines; 0 means GOMAXPROCS
}

// DefaultConfig returns the reference setup: the five-petal flower on a
// 1024×1024 grid over [-3,3]² with ε = 0.01.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultSize,
		Height:   DefaultSize,
		Window:   DefaultWindow,
		Epsilon:  DefaultEpsilon,
		Implicit: field.Flower,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// Validate checks every field and joins all problems into one error that
// matches ErrBadConfig.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %d×%d must be positive", c.Width, c.Height))
	}
	if !c.Window.Valid() {
		errs = append(errs, fmt.Errorf("window %+v must be finite with min < max", c.Window))
	}
	if !(c.Epsilon > 0) || math32.IsInf(c.Epsilon, 1) {
		errs = append(errs, fmt.Errorf("epsilon %v must be finite and positive", c.Epsilon))
	}
	if c.Implicit == nil {
		errs = append(errs, errors.New("implicit function is nil"))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must be ≥ 0", c.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrBadConfig, errors.Join(errs...))
	}

	return nil
}

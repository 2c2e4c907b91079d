// Package field defines the Field buffer, seeding options and sentinel errors.
package field

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/chewxy/math32"
)

// Sentinel errors for field construction and seeding.
var (
	// ErrNilFunc indicates Seed was called with a nil ImplicitFunc.
	ErrNilFunc = errors.New("field: implicit function is nil")

	// ErrSizeMismatch indicates a value slice whose length is not W*H.
	ErrSizeMismatch = errors.New("field: values length does not match grid size")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("field: invalid option supplied")
)

// DefaultEpsilon is the zero-level-set tolerance used when none is given.
const DefaultEpsilon float32 = 0.01

// ImplicitFunc is a pure, total function of domain coordinates whose zero set
// defines the boundary to measure distance from.
type ImplicitFunc func(x, y float32) float32

// Option configures Seed via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Seed.
type Option func(*Options)

// Options holds the seeding parameters.
type Options struct {
	// Ctx allows cancelling a long seeding pass between rows.
	Ctx context.Context

	// Epsilon is the tolerance: |f| < Epsilon marks a seed cell.
	Epsilon float32

	// Workers bounds the number of goroutines evaluating rows.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Epsilon = DefaultEpsilon
//   - Workers = runtime.GOMAXPROCS(0)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Epsilon: DefaultEpsilon,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon sets the zero-level-set tolerance. eps must be finite and > 0.
func WithEpsilon(eps float32) Option {
	return func(o *Options) {
		if !(eps > 0) || math32.IsInf(eps, 1) {
			o.err = fmt.Errorf("%w: epsilon must be finite and positive (%v)", ErrOptionViolation, eps)

			return
		}
		o.Epsilon = eps
	}
}

// WithWorkers bounds the seeding goroutines. n must be ≥ 1; n == 1 seeds
// sequentially on the calling goroutine's errgroup.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// Summary is a data-quality report over a Field.
type Summary struct {
	Seeds     int     // cells equal to 0
	Finite    int     // cells with a finite value (seeds included)
	Unreached int     // cells still at +Inf
	NaN       int     // cells holding NaN
	MaxFinite float32 // largest finite value, 0 if none
}

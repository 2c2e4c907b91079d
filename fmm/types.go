// Package fmm defines options, hooks, statistics and sentinel errors for
// Fast Marching propagation.
package fmm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eikonal/grid"
)

// Sentinel errors returned by Propagate.
var (
	// ErrNilField indicates a nil *field.Field was passed to Propagate.
	ErrNilField = errors.New("fmm: field is nil")

	// ErrSizeMismatch indicates the field buffer does not match its grid.
	ErrSizeMismatch = errors.New("fmm: field values length does not match grid size")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fmm: invalid option supplied")
)

// Option configures Propagate via functional arguments.
type Option func(*Options)

// Options holds the propagation callbacks.
type Options struct {
	// OnSettle is called once per cell when it is popped and settled, with
	// its final value. Values arrive in non-decreasing order.
	OnSettle func(c grid.Cell, value float32)

	// OnRelax is called after each neighbor relaxation with the stored value
	// before and after. after ≤ before always holds.
	OnRelax func(c grid.Cell, before, after float32)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnSettle: func(grid.Cell, float32) {},
		OnRelax:  func(grid.Cell, float32, float32) {},
	}
}

// WithOnSettle registers a callback run at every pop.
// A nil fn is an option violation.
func WithOnSettle(fn func(c grid.Cell, value float32)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnSettle is nil", ErrOptionViolation)

			return
		}
		o.OnSettle = fn
	}
}

// WithOnRelax registers a callback run after each neighbor relaxation.
// A nil fn is an option violation.
func WithOnRelax(fn func(c grid.Cell, before, after float32)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnRelax is nil", ErrOptionViolation)

			return
		}
		o.OnRelax = fn
	}
}

// Stats summarizes the work done by one Propagate call.
type Stats struct {
	Pops        int // heap pops; always W×H
	Relaxations int // neighbor updates attempted
	Decreases   int // relaxations that strictly lowered a stored value (decrease-keys)
}

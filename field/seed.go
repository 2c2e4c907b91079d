package field

import (
	"time"

	"github.com/chewxy/math32"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/internal/logging"
)

// Seed evaluates fn at the domain point of every cell of g and returns the
// initial field: 0 where |fn(x,y)| < Epsilon, +Inf elsewhere.
//
// Preconditions and validation (in order):
//  1. fn must be non-nil (ErrNilFunc).
//  2. options must be valid (ErrOptionViolation).
//
// Rows are split into at most Workers contiguous bands evaluated by an
// errgroup. Bands are disjoint, so no locking is needed; the context is
// checked once per row and its error is returned on cancellation.
//
// No bounds checking is done on fn's inputs: every cell maps into the window.
// Complexity: O(W×H) evaluations, Memory: O(W×H).
func Seed(g grid.Grid, fn ImplicitFunc, opts ...Option) (*Field, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	start := time.Now()
	f := &Field{Grid: g, Values: make([]float32, g.Len())}

	workers := min(cfg.Workers, max(g.Height, 1))
	band := (g.Height + workers - 1) / workers

	eg, ctx := errgroup.WithContext(cfg.Ctx)
	eg.SetLimit(workers)
	for r0 := 0; r0 < g.Height; r0 += band {
		r0 := r0 // per-iteration copy (Go <1.22 loop semantics)
		r1 := min(r0+band, g.Height)
		eg.Go(func() error {
			for row := r0; row < r1; row++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				seedRow(f, fn, cfg.Epsilon, row)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logging.Logger().Debug("field: seeded",
		"width", g.Width, "height", g.Height,
		"epsilon", cfg.Epsilon, "workers", workers,
		"elapsed", time.Since(start))

	return f, nil
}

// seedRow fills one row of f. Only touches Values[row*W : (row+1)*W].
func seedRow(f *Field, fn ImplicitFunc, eps float32, row int) {
	inf := math32.Inf(1)
	base := row * f.Grid.Width
	for col := 0; col < f.Grid.Width; col++ {
		x, y := f.Grid.CellToDomain(grid.Cell{Col: col, Row: row})
		if math32.Abs(fn(x, y)) < eps {
			f.Values[base+col] = 0
		} else {
			f.Values[base+col] = inf
		}
	}
}

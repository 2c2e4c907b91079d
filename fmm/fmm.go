package fmm

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/internal/logging"
)

// Propagate turns a seeded field into a settled distance field in place.
//
// Algorithm:
//  1. Queue every cell keyed by its current value (min-heap, ties arbitrary).
//  2. Pop the minimum cell and add it to the settled set.
//  3. For each in-grid, unsettled axis neighbor: candidate = Update,
//     stored = min(stored, candidate); a strict decrease moves the
//     neighbor up the heap in place (decrease-key).
//  4. Repeat until the heap is empty.
//
// Every cell is popped exactly once, so Stats.Pops == W×H.
//
// Preconditions and validation (in order):
//  1. f must be non-nil (ErrNilField).
//  2. len(f.Values) must equal f.Grid.Len() (ErrSizeMismatch).
//  3. options must be valid (ErrOptionViolation).
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H; at most 4N decrease-key operations.
//   - Space: O(N).
func Propagate(f *field.Field, opts ...Option) (Stats, error) {
	// 1) Validate inputs
	if f == nil {
		return Stats{}, ErrNilField
	}
	if len(f.Values) != f.Grid.Len() {
		return Stats{}, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(f.Values), f.Grid.Len())
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Stats{}, cfg.err
	}

	// 3) Run
	start := time.Now()
	r := newRunner(f, cfg)
	r.process()

	log := logging.Logger()
	log.Debug("fmm: propagated",
		"cells", f.Grid.Len(),
		"pops", r.stats.Pops,
		"relaxations", r.stats.Relaxations,
		"decreases", r.stats.Decreases,
		"elapsed", time.Since(start))
	if s := field.Summarize(f); s.Unreached > 0 || s.NaN > 0 {
		log.Warn("fmm: field has cells without a finite distance",
			"unreached", s.Unreached, "nan", s.NaN)
	}

	return r.stats, nil
}

// runner holds the mutable state for a single propagation.
type runner struct {
	f       *field.Field // field being settled in place
	options Options      // hooks
	settled []bool       // settled set, indexed by row-major cell index
	pq      *cellPQ      // indexed min-heap over f.Values
	stats   Stats
}

// newRunner queues every cell of f. heap.Init builds the heap in O(N)
// instead of N pushes.
func newRunner(f *field.Field, opts Options) *runner {
	r := &runner{
		f:       f,
		options: opts,
		settled: make([]bool, f.Grid.Len()),
		pq:      newCellPQ(f.Values),
	}
	heap.Init(r.pq)

	return r
}

// process is the main loop: pop the minimum, settle it, relax its neighbors.
func (r *runner) process() {
	g := r.f.Grid
	for r.pq.Len() > 0 {
		idx := heap.Pop(r.pq).(int)
		r.stats.Pops++
		r.settled[idx] = true

		c := g.IndexToCell(idx)
		r.options.OnSettle(c, r.f.Values[idx])
		r.relax(c)
	}
}

// relax updates each in-grid, unsettled axis neighbor of c.
func (r *runner) relax(c grid.Cell) {
	for _, d := range grid.Neighbors4 {
		n := c.Add(d[0], d[1])
		idx, ok := r.f.Grid.CellToIndex(n)
		if !ok || r.settled[idx] {
			continue
		}

		before := r.f.Values[idx]
		after := math32.Min(before, Update(r.f, n))
		r.f.Values[idx] = after
		r.stats.Relaxations++
		if after < before {
			r.stats.Decreases++
		}
		// NaN compares unequal to itself and is re-sifted too
		if after != before && r.pq.queued(idx) {
			heap.Fix(r.pq, r.pq.pos[idx])
		}
		r.options.OnRelax(n, before, after)
	}
}

// Package field holds the dense scalar buffer that the eikonal solver works
// on, and seeds it from an implicit boundary function.
//
// What:
//
//   - Field pairs a grid.Grid with a row-major []float32 of length W*H.
//   - Seed evaluates an ImplicitFunc at every cell's domain point: cells with
//     |f(x,y)| < ε become 0 (zero-level-set seeds), all others +Inf.
//   - SeedComponents groups the seed cells into 4-connected boundary pieces.
//   - Summarize reports seeds, unreached (+Inf) and NaN cells.
//
// Why:
//
//   - The propagator only needs zeros and infinities; the boundary itself
//     is a pluggable pure function, so any curve whose sign change marks a
//     boundary can be plugged in (Flower, Circle, Union, or your own).
//
// Concurrency:
//
//   - Seeding is embarrassingly parallel. Rows are split across at most
//     Workers goroutines of an errgroup; each goroutine writes a disjoint
//     row range, so the only synchronization is the final Wait.
//   - A Field itself is not safe for concurrent mutation.
//
// Complexity:
//
//   - Seed:           O(W×H) evaluations, Memory: O(W×H).
//   - SeedComponents: O(W×H×4), Memory: O(W×H).
//   - Summarize:      O(W×H), Memory: O(1).
//
// Errors:
//
//   - ErrNilFunc:         Seed called without an implicit function.
//   - ErrSizeMismatch:    FromValues given a slice whose length is not W*H.
//   - ErrOptionViolation: non-positive epsilon or worker count.
//
// Data-quality issues (NaN from a malformed function, +Inf cells left by a
// seed set that cannot reach them) are reported by Summarize, never raised.
package field

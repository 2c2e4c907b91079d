// Package fmm solves the discrete eikonal equation |∇u| = 1 on a grid with a
// generalized Dijkstra expansion (the Fast Marching Method).
//
// Overview:
//
//   - Input is a seeded field.Field: zeros on the boundary, +Inf elsewhere.
//   - Propagate repeatedly extracts the unsettled cell of smallest tentative
//     value from a min-heap, freezes it, and relaxes its four axis neighbors
//     with an upwind (Godunov) finite-difference update.
//   - The result is, at every reachable cell, an estimate of the grid distance
//     to the nearest seed. It is NOT Euclidean distance: a diagonal step from
//     a single seed settles at 0.5·(2 + √2) ≈ 1.7071, not √2.
//
// Update rule (UpwindSolve):
//
//	ux = min(u(c+x̂), u(c−x̂)),  uy = min(u(c+ŷ), u(c−ŷ))
//	a  = max(ux, uy),           b  = min(ux, uy)
//	b == +Inf       → +Inf
//	a − b > 1       → b + 1                       (one-sided fallback)
//	otherwise       → ½·(ux + uy + √(2 − (a−b)²))  (two-axis quadratic)
//
// At a − b == 1 both branches give b + 1 exactly. Only the smaller neighbor
// on each axis is used, so the update is monotone non-decreasing in its
// inputs; that is what makes single-pass priority settling exact.
//
// Priority queue:
//
//   - Every cell is queued up front, keyed by its stored value.
//   - The heap is indexed by cell, so a relaxation that lowers a value moves
//     that cell up in place (heap.Fix). There are no duplicate entries: each
//     cell is popped, settled and passed to OnSettle exactly once.
//   - Settled cells are never relaxation targets, so a value is frozen from
//     the moment its cell leaves the heap.
//
// Complexity:
//
//   - Time:  O(N log N) with N = W×H; at most 4N decrease-key operations.
//   - Space: O(N) for the settled set and the heap.
//
// Errors (API misuse only; numerical trouble is never raised):
//
//   - ErrNilField:        Propagate called with a nil field.
//   - ErrSizeMismatch:    len(Values) != Grid.Len().
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Cells that no seed can reach stay +Inf, and NaN from a malformed boundary
// function flows through unchanged; inspect with field.Summarize.
//
// Thread safety:
//
//   - Propagate mutates the field in place and owns it for the duration of
//     the call. It is single-threaded by nature: each relaxation depends on
//     the global heap order.
package fmm

// Package grid maps between the three coordinate systems of a fixed 2D
// raster: a row-major linear index, integer cell coordinates, and real
// domain coordinates under a rectangular window.
//
// What:
//
//   - Grid is an immutable W×H raster laid over a Window [XMin,XMax]×[YMin,YMax].
//   - Linear index idx = Col + Row*W, bijective with Cell{Col, Row}.
//   - Cell → domain is linear with per-axis steps (XMax−XMin)/W and (YMax−YMin)/H.
//
// Why:
//
//   - Field buffers are flat []float32 slices; algorithms walk them by Cell.
//   - Implicit boundary functions are evaluated in domain coordinates.
//
// Out-of-grid handling:
//
//   - CellToIndex reports "no value" (ok == false) instead of failing; callers
//     treat such cells as an absorbing +Inf boundary.
//
// Complexity:
//
//   - Every mapping is O(1) time and allocation-free.
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrBadWindow: window bounds are not finite or not strictly increasing.
package grid

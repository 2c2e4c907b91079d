// Package grid defines core types and sentinel errors for coordinate mapping.
package grid

import (
	"errors"

	"github.com/chewxy/math32"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a grid with no columns or no rows.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrBadWindow indicates a window with non-finite or inverted bounds.
	ErrBadWindow = errors.New("grid: window bounds must be finite with min < max")
)

// Neighbors4 lists the axis-aligned neighbor offsets {dCol, dRow}:
// +x, −x, +y, −y. Order is fixed so relaxations are reproducible.
var Neighbors4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Window is the real-valued rectangle the grid is laid over.
type Window struct {
	XMin, XMax float32
	YMin, YMax float32
}

// Valid reports whether all bounds are finite and each axis is strictly increasing.
func (w Window) Valid() bool {
	for _, v := range [4]float32{w.XMin, w.XMax, w.YMin, w.YMax} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}

	return w.XMin < w.XMax && w.YMin < w.YMax
}

// Cell is an integer grid coordinate. Cells produced by arithmetic may lie
// outside the grid; use Grid.InBounds or Grid.CellToIndex to check.
type Cell struct {
	Col, Row int
}

// Add returns the cell displaced by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Grid is an immutable W×H raster over Window.
// Build it with New so that dimensions and window are validated.
type Grid struct {
	Width, Height int
	Window        Window
}

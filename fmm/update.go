package fmm

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/grid"
)

// ValueAt returns the stored value of c, or +Inf when c is outside the grid.
func ValueAt(f *field.Field, c grid.Cell) float32 {
	return f.ValueAt(c)
}

// UpwindSolve is the numerical kernel: the upwind solution of
// (u−ux)² + (u−uy)² = 1 with unit spacing, given the smaller neighbor value
// on each axis. Symmetric in its arguments.
func UpwindSolve(ux, uy float32) float32 {
	a := math32.Max(ux, uy)
	b := math32.Min(ux, uy)
	switch {
	case math32.IsInf(b, 1):
		return b
	case a-b > 1:
		// discriminant would be negative: one-sided update
		return b + 1
	default:
		d := a - b
		return 0.5 * (ux + uy + math32.Sqrt(2-d*d))
	}
}

// Update computes the eikonal candidate for c from the current field:
// the smaller horizontal and smaller vertical neighbor values fed to UpwindSolve.
// Off-grid neighbors count as +Inf.
func Update(f *field.Field, c grid.Cell) float32 {
	ux := math32.Min(f.ValueAt(c.Add(1, 0)), f.ValueAt(c.Add(-1, 0)))
	uy := math32.Min(f.ValueAt(c.Add(0, 1)), f.ValueAt(c.Add(0, -1)))

	return UpwindSolve(ux, uy)
}

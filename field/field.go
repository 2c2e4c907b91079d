package field

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/eikonal/grid"
)

// Field is a dense row-major scalar buffer over a grid.
// Values[idx] holds the value of cell g.IndexToCell(idx); len(Values) == Grid.Len().
type Field struct {
	Grid   grid.Grid
	Values []float32
}

// New allocates a Field over g with every cell set to +Inf (unreached).
// Complexity: O(W×H) time and memory.
func New(g grid.Grid) *Field {
	vals := make([]float32, g.Len())
	inf := math32.Inf(1)
	for i := range vals {
		vals[i] = inf
	}

	return &Field{Grid: g, Values: vals}
}

// FromValues wraps an existing row-major slice without copying.
// Returns ErrSizeMismatch if len(vals) != g.Len().
func FromValues(g grid.Grid, vals []float32) (*Field, error) {
	if len(vals) != g.Len() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(vals), g.Len())
	}

	return &Field{Grid: g, Values: vals}, nil
}

// At returns the stored value of c; ok is false when c is outside the grid.
func (f *Field) At(c grid.Cell) (v float32, ok bool) {
	idx, ok := f.Grid.CellToIndex(c)
	if !ok {
		return 0, false
	}

	return f.Values[idx], true
}

// ValueAt returns the stored value of c, or +Inf when c is outside the grid.
// Cells beyond the border therefore behave as an absorbing infinite boundary.
func (f *Field) ValueAt(c grid.Cell) float32 {
	if v, ok := f.At(c); ok {
		return v
	}

	return math32.Inf(1)
}

// Set stores v at c and reports whether c was inside the grid.
func (f *Field) Set(c grid.Cell, v float32) bool {
	idx, ok := f.Grid.CellToIndex(c)
	if !ok {
		return false
	}
	f.Values[idx] = v

	return true
}

// Clone returns a deep copy that shares no storage with f.
func (f *Field) Clone() *Field {
	vals := make([]float32, len(f.Values))
	copy(vals, f.Values)

	return &Field{Grid: f.Grid, Values: vals}
}

// Summarize scans f once and reports seeds, finite, unreached and NaN counts
// together with the largest finite value.
// Complexity: O(W×H).
func Summarize(f *Field) Summary {
	var s Summary
	for _, v := range f.Values {
		switch {
		case math32.IsNaN(v):
			s.NaN++
		case math32.IsInf(v, 1):
			s.Unreached++
		default:
			s.Finite++
			if v == 0 {
				s.Seeds++
			}
			if v > s.MaxFinite {
				s.MaxFinite = v
			}
		}
	}

	return s
}

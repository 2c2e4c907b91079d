package grid

import "fmt"

// New validates the dimensions and window and returns the Grid.
// Returns ErrEmptyGrid if width or height ≤ 0, ErrBadWindow if the window
// is degenerate.
// Complexity: O(1).
func New(width, height int, win Window) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, width, height)
	}
	if !win.Valid() {
		return Grid{}, fmt.Errorf("%w: %+v", ErrBadWindow, win)
	}

	return Grid{Width: width, Height: height, Window: win}, nil
}

// Len returns the number of cells, W*H.
func (g Grid) Len() int {
	return g.Width * g.Height
}

// XStep returns the domain width covered by one column.
func (g Grid) XStep() float32 {
	return (g.Window.XMax - g.Window.XMin) / float32(g.Width)
}

// YStep returns the domain height covered by one row.
func (g Grid) YStep() float32 {
	return (g.Window.YMax - g.Window.YMin) / float32(g.Height)
}

// InBounds reports whether 0 ≤ c.Col < W and 0 ≤ c.Row < H.
// Complexity: O(1).
func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// IndexToCell converts a row-major index back to its cell.
// idx is expected in [0, Len()); both operands are non-negative there, so
// Go's truncating / and % coincide with Euclidean division.
// Complexity: O(1).
func (g Grid) IndexToCell(idx int) Cell {
	return Cell{Col: idx % g.Width, Row: idx / g.Width}
}

// CellToIndex maps c to its row-major index Col + Row*W.
// ok is false (and idx is −1) when c lies outside the grid.
// Complexity: O(1).
func (g Grid) CellToIndex(c Cell) (idx int, ok bool) {
	if !g.InBounds(c) {
		return -1, false
	}

	return c.Col + c.Row*g.Width, true
}

// CellToDomain returns the real coordinates of c's sample point:
// x = XMin + Col*XStep, y = YMin + Row*YStep.
// Total for any c, including cells outside the grid.
func (g Grid) CellToDomain(c Cell) (x, y float32) {
	x = g.Window.XMin + float32(c.Col)*g.XStep()
	y = g.Window.YMin + float32(c.Row)*g.YStep()

	return x, y
}

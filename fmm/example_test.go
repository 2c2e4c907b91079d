// File: fmm/example_test.go
package fmm_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/fmm"
	"github.com/katalvlaran/eikonal/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Propagate
////////////////////////////////////////////////////////////////////////////////

// ExamplePropagate settles a 3×3 grid seeded at its center.
// Scenario:
//
//	+∞ +∞ +∞         1.707 1.000 1.707
//	+∞  0 +∞   ==>   1.000 0.000 1.000
//	+∞ +∞ +∞         1.707 1.000 1.707
//
// The diagonal value is ½·(1 + 1 + √2), the discrete eikonal solution,
// not the Euclidean √2 ≈ 1.414.
func ExamplePropagate() {
	g, _ := grid.New(3, 3, grid.Window{XMin: -1, XMax: 2, YMin: -1, YMax: 2})
	f := field.New(g)
	f.Set(grid.Cell{Col: 1, Row: 1}, 0)

	if _, err := fmm.Propagate(f); err != nil {
		fmt.Println("error:", err)

		return
	}
	for row := 0; row < g.Height; row++ {
		cells := make([]string, g.Width)
		for col := range cells {
			v, _ := f.At(grid.Cell{Col: col, Row: row})
			cells[col] = fmt.Sprintf("%.3f", v)
		}
		fmt.Println(strings.Join(cells, " "))
	}

	// Output:
	// 1.707 1.000 1.707
	// 1.000 0.000 1.000
	// 1.707 1.000 1.707
}

////////////////////////////////////////////////////////////////////////////////
// Example: UpwindSolve
////////////////////////////////////////////////////////////////////////////////

// ExampleUpwindSolve shows the three regimes of the kernel.
func ExampleUpwindSolve() {
	fmt.Printf("%.4f\n", fmm.UpwindSolve(1, 1))     // two-axis quadratic
	fmt.Printf("%.4f\n", fmm.UpwindSolve(0, 3))     // a − b > 1: one-sided
	fmt.Printf("%.4f\n", fmm.UpwindSolve(2.5, 3.5)) // a − b == 1: both agree

	// Output:
	// 1.7071
	// 1.0000
	// 3.5000
}

package field

import "github.com/katalvlaran/eikonal/grid"

// SeedComponents finds the 4-connected groups of seed cells (value == 0).
// Each component is a slice of row-major indices in BFS discovery order;
// components are ordered by their first cell in row-major scan order.
//
// Use it to check how many separate boundary pieces a curve produced at the
// chosen resolution and tolerance.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func SeedComponents(f *Field) [][]int {
	g := f.Grid
	seen := make([]bool, g.Len())
	var comps [][]int

	for i0, v := range f.Values {
		if v != 0 || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.IndexToCell(queue[qi])
			for _, d := range grid.Neighbors4 {
				vi, ok := g.CellToIndex(u.Add(d[0], d[1]))
				if !ok || seen[vi] || f.Values[vi] != 0 {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

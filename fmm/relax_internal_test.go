package fmm

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/grid"
)

// TestRelax_AllSettledIsNoop re-runs the relaxation step over every cell of a
// settled field whose cells are all in the settled set: nothing may change
// and the heap must stay untouched.
func TestRelax_AllSettledIsNoop(t *testing.T) {
	g, err := grid.New(5, 5, grid.Window{XMin: 0, XMax: 5, YMin: 0, YMax: 5})
	require.NoError(t, err)
	f := field.New(g)
	f.Set(grid.Cell{Col: 2, Row: 2}, 0)
	_, err = Propagate(f)
	require.NoError(t, err)
	want := f.Clone().Values

	r := newRunner(f, DefaultOptions())
	for i := range r.settled {
		r.settled[i] = true
	}
	order := append([]int(nil), r.pq.heap...)
	for idx := 0; idx < g.Len(); idx++ {
		r.relax(g.IndexToCell(idx))
	}

	require.Equal(t, want, f.Values)
	require.Equal(t, order, r.pq.heap)
	require.Zero(t, r.stats.Relaxations)
}

// TestRelax_SkipsSettledAndOffGrid relaxes a corner cell: of its four
// neighbors two are off-grid and one is settled, so exactly one is touched,
// and it is lowered in place without growing the heap.
func TestRelax_SkipsSettledAndOffGrid(t *testing.T) {
	g, err := grid.New(3, 3, grid.Window{XMin: 0, XMax: 3, YMin: 0, YMax: 3})
	require.NoError(t, err)
	f := field.New(g)
	f.Set(grid.Cell{}, 0)

	r := newRunner(f, DefaultOptions())
	require.Equal(t, 0, heap.Pop(r.pq).(int))
	r.settled[0] = true
	r.settled[1] = true // (1,0)
	r.relax(grid.Cell{})

	require.Equal(t, 1, r.stats.Relaxations)
	require.Equal(t, 1, r.stats.Decreases)
	require.Equal(t, 8, r.pq.Len())
	v, _ := f.At(grid.Cell{Col: 0, Row: 1})
	require.Equal(t, float32(1), v)

	// (0,1) is now the unique minimum and must be at the top
	require.Equal(t, 3, r.pq.heap[0])
	require.Equal(t, 0, r.pq.pos[3])
}

// TestCellPQ_DecreaseKey lowers keys in place and checks the pop order and
// the position index.
func TestCellPQ_DecreaseKey(t *testing.T) {
	values := []float32{5, 4, 3, 2, 1}
	pq := newCellPQ(values)
	heap.Init(pq)

	values[0] = 0
	heap.Fix(pq, pq.pos[0])
	values[2] = 1.5
	heap.Fix(pq, pq.pos[2])

	var got []int
	for pq.Len() > 0 {
		idx := heap.Pop(pq).(int)
		require.False(t, pq.queued(idx))
		got = append(got, idx)
		for i, h := range pq.heap {
			require.Equal(t, i, pq.pos[h])
		}
	}
	require.Equal(t, []int{0, 4, 2, 3, 1}, got)
}

package field_test

import (
	"context"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eikonal/field"
	"github.com/katalvlaran/eikonal/grid"
)

var inf = math32.Inf(1)

// integerGrid builds an n×n grid whose cells sample the integer points 0..n-1.
func integerGrid(t testing.TB, n int) grid.Grid {
	t.Helper()
	g, err := grid.New(n, n, grid.Window{XMin: 0, XMax: float32(n), YMin: 0, YMax: float32(n)})
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// Field storage
//----------------------------------------------------------------------------//

// TestNew_AllUnreached verifies that a fresh field is entirely +Inf.
func TestNew_AllUnreached(t *testing.T) {
	f := field.New(integerGrid(t, 3))
	require.Len(t, f.Values, 9)
	for _, v := range f.Values {
		require.True(t, math32.IsInf(v, 1))
	}
}

// TestFromValues_SizeMismatch ensures the buffer length is checked.
func TestFromValues_SizeMismatch(t *testing.T) {
	_, err := field.FromValues(integerGrid(t, 2), make([]float32, 3))
	require.ErrorIs(t, err, field.ErrSizeMismatch)
}

// TestValueAt_BoundaryAbsorption checks that every off-grid cell reads +Inf
// for several grid sizes, while in-grid cells read their stored value.
func TestValueAt_BoundaryAbsorption(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 16} {
		f := field.New(integerGrid(t, n))
		for i := range f.Values {
			f.Values[i] = float32(i)
		}
		for row := -2; row < n+2; row++ {
			for col := -2; col < n+2; col++ {
				c := grid.Cell{Col: col, Row: row}
				got := f.ValueAt(c)
				if f.Grid.InBounds(c) {
					require.Equal(t, float32(col+row*n), got, "n=%d cell=%v", n, c)
				} else {
					require.True(t, math32.IsInf(got, 1), "n=%d cell=%v", n, c)
				}
			}
		}
	}
}

// TestSetAndClone verifies Set reports bounds and Clone is independent.
func TestSetAndClone(t *testing.T) {
	f := field.New(integerGrid(t, 2))
	require.True(t, f.Set(grid.Cell{Col: 1, Row: 0}, 4))
	require.False(t, f.Set(grid.Cell{Col: 2, Row: 0}, 4))

	c := f.Clone()
	c.Values[1] = 9
	v, ok := f.At(grid.Cell{Col: 1, Row: 0})
	require.True(t, ok)
	require.Equal(t, float32(4), v)
}

//----------------------------------------------------------------------------//
// Seeding
//----------------------------------------------------------------------------//

// TestSeed_Errors covers the validation order of Seed.
func TestSeed_Errors(t *testing.T) {
	g := integerGrid(t, 2)

	_, err := field.Seed(g, nil)
	require.ErrorIs(t, err, field.ErrNilFunc)

	_, err = field.Seed(g, field.Flower, field.WithEpsilon(0))
	require.ErrorIs(t, err, field.ErrOptionViolation)

	_, err = field.Seed(g, field.Flower, field.WithEpsilon(inf))
	require.ErrorIs(t, err, field.ErrOptionViolation)

	_, err = field.Seed(g, field.Flower, field.WithWorkers(0))
	require.ErrorIs(t, err, field.ErrOptionViolation)
}

// TestSeed_Line seeds the column x == 2 of a 5×5 integer grid.
func TestSeed_Line(t *testing.T) {
	g := integerGrid(t, 5)
	f, err := field.Seed(g, func(x, _ float32) float32 { return x - 2 }, field.WithWorkers(2))
	require.NoError(t, err)

	for idx, v := range f.Values {
		c := g.IndexToCell(idx)
		if c.Col == 2 {
			assert.Equal(t, float32(0), v, "cell %v", c)
		} else {
			assert.True(t, math32.IsInf(v, 1), "cell %v", c)
		}
	}
}

// TestSeed_ParallelMatchesSequential checks that worker count never changes the result.
func TestSeed_ParallelMatchesSequential(t *testing.T) {
	g, err := grid.New(97, 61, grid.Window{XMin: -3, XMax: 3, YMin: -3, YMax: 3})
	require.NoError(t, err)

	seq, err := field.Seed(g, field.Flower, field.WithWorkers(1), field.WithEpsilon(0.05))
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8, 200} {
		par, err := field.Seed(g, field.Flower, field.WithWorkers(w), field.WithEpsilon(0.05))
		require.NoError(t, err)
		require.Equal(t, seq.Values, par.Values, "workers=%d", w)
	}
	require.Positive(t, field.Summarize(seq).Seeds)
}

// TestSeed_Cancelled verifies that a cancelled context aborts seeding.
func TestSeed_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := field.Seed(integerGrid(t, 8), field.Flower, field.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

//----------------------------------------------------------------------------//
// Curves
//----------------------------------------------------------------------------//

// TestFlower pins a few exact and near-exact values of the five-petal curve.
func TestFlower(t *testing.T) {
	assert.Equal(t, float32(-1), field.Flower(0, 0), "atan2(0,0) is 0")
	assert.Equal(t, float32(0), field.Flower(1, 0))
	// at angle π/2 the radius² is 0.5·(2 + sin(5π/2)) = 1.5
	assert.InDelta(t, 0, field.Flower(0, math32.Sqrt(1.5)), 1e-5)
}

// TestUnionAndTranslate checks Union picks the member closest to zero.
func TestUnionAndTranslate(t *testing.T) {
	u := field.Union(field.Circle(1), field.Translate(field.Circle(1), 5, 0))
	assert.Equal(t, float32(0), u(1, 0))
	assert.Equal(t, float32(0), u(6, 0))
	assert.Equal(t, float32(-1), u(5, 0))
	assert.True(t, math32.IsInf(field.Union()(0, 0), 1))
}

//----------------------------------------------------------------------------//
// Diagnostics
//----------------------------------------------------------------------------//

// TestSeedComponents finds two islands plus a single-cell island.
func TestSeedComponents(t *testing.T) {
	g := integerGrid(t, 4)
	vals := []float32{
		0, 0, inf, 0,
		inf, 0, inf, 0,
		inf, inf, inf, inf,
		0, inf, inf, inf,
	}
	f, err := field.FromValues(g, vals)
	require.NoError(t, err)

	comps := field.SeedComponents(f)
	require.Equal(t, [][]int{{0, 1, 5}, {3, 7}, {12}}, comps)
}

// TestSummarize counts every category.
func TestSummarize(t *testing.T) {
	f, err := field.FromValues(integerGrid(t, 2), []float32{0, 2.5, inf, math32.NaN()})
	require.NoError(t, err)

	require.Equal(t, field.Summary{Seeds: 1, Finite: 2, Unreached: 1, NaN: 1, MaxFinite: 2.5}, field.Summarize(f))
}

package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func gridWith(size int, pts ...Point) *Grid {
	g := NewGrid(size)
	for _, p := range pts {
		g.Set(p.Y, p.X, true)
	}
	return g
}

func TestNextGeneration_BlockIsStill(t *testing.T) {
	t.Parallel()

	for _, mode := range []BoundaryMode{Clipped, Toroidal} {
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()
			g := gridWith(8, Point{3, 3}, Point{3, 4}, Point{4, 3}, Point{4, 4})
			next := NextGeneration(g, mode, nil)
			require.True(t, next.Equal(g), cmp.Diff(g.Rows(), next.Rows()))
		})
	}
}

func TestNextGeneration_BlockOnSeamIsStillUnderToroidal(t *testing.T) {
	t.Parallel()

	const n = 6
	g := gridWith(n, Point{n - 1, n - 1}, Point{n - 1, 0}, Point{0, n - 1}, Point{0, 0})
	next := NextGeneration(g, Toroidal, nil)
	require.True(t, next.Equal(g), cmp.Diff(g.Rows(), next.Rows()))

	// Without wrapping each corner cell is isolated.
	require.Zero(t, NextGeneration(g, Clipped, nil).CountLivingCells())
}

func TestNextGeneration_IsolatedCellDies(t *testing.T) {
	t.Parallel()

	for _, mode := range []BoundaryMode{Clipped, Toroidal} {
		g := gridWith(5, Point{2, 2})
		require.Zero(t, NextGeneration(g, mode, nil).CountLivingCells(), mode.String())
	}
}

func TestNextGeneration_BlinkerOscillates(t *testing.T) {
	t.Parallel()

	horizontal := gridWith(5, Point{2, 1}, Point{2, 2}, Point{2, 3})
	vertical := gridWith(5, Point{1, 2}, Point{2, 2}, Point{3, 2})

	first := NextGeneration(horizontal, Clipped, nil)
	require.True(t, first.Equal(vertical), cmp.Diff(vertical.Rows(), first.Rows()))

	second := NextGeneration(first, Clipped, nil)
	require.True(t, second.Equal(horizontal), cmp.Diff(horizontal.Rows(), second.Rows()))
}

func TestNextGeneration_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	g := gridWith(6, Point{1, 2}, Point{2, 3}, Point{3, 1}, Point{3, 2}, Point{3, 3})
	before := g.Clone()
	_ = NextGeneration(g, Toroidal, nil)
	require.Empty(t, cmp.Diff(before.Rows(), g.Rows()))
}

func TestNextGeneration_PooledGridStartsEmpty(t *testing.T) {
	t.Parallel()

	pool := NewGridPool()
	dirty := gridWith(5, Point{0, 0}, Point{4, 4})
	GridToPool(dirty, pool)

	g := gridWith(5, Point{2, 2})
	next := NextGeneration(g, Clipped, pool)
	require.Equal(t, 5, next.Size())
	require.Zero(t, next.CountLivingCells())
}

package model

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomGrid(rng *rand.Rand, size int, density float64) *Grid {
	g := NewGrid(size)
	for y := range size {
		for x := range size {
			g.Set(y, x, rng.Float64() < density)
		}
	}
	return g
}

func TestCountAliveNeighbors_ClippedIgnoresOutside(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 0))
	for range 20 {
		g := randomGrid(rng, 12, 0.4)
		for y := range g.Size() {
			for x := range g.Size() {
				want := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if (dy != 0 || dx != 0) && g.Get(y+dy, x+dx) {
							want++
						}
					}
				}
				got := CountAliveNeighbors(g, y, x, Clipped)
				require.Equal(t, want, got, "cell (%d,%d)", y, x)
				require.GreaterOrEqual(t, got, 0)
				require.LessOrEqual(t, got, 8)
			}
		}
	}
}

func TestCountAliveNeighbors_ToroidalWrapsEdges(t *testing.T) {
	t.Parallel()

	const n = 10
	g := NewGrid(n)
	g.Set(4, n-1, true) // right column
	g.Set(n-1, 6, true) // bottom row

	// Column -1 of (4,0) is column n-1.
	require.Equal(t, 1, CountAliveNeighbors(g, 4, 0, Toroidal))
	require.Equal(t, 0, CountAliveNeighbors(g, 4, 0, Clipped))

	// Row -1 of (0,6) is row n-1.
	require.Equal(t, 1, CountAliveNeighbors(g, 0, 6, Toroidal))
	require.Equal(t, 0, CountAliveNeighbors(g, 0, 6, Clipped))

	corner := NewGrid(n)
	corner.Set(n-1, n-1, true)
	require.Equal(t, 1, CountAliveNeighbors(corner, 0, 0, Toroidal))
	require.Equal(t, 0, CountAliveNeighbors(corner, 0, 0, Clipped))
}

func TestCountAliveNeighbors_ToroidalMatchesWrappedLookup(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(11, 3))
	g := randomGrid(rng, 9, 0.5)
	n := g.Size()
	for y := range n {
		for x := range n {
			want := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dy != 0 || dx != 0) && g.Get((y+dy+n)%n, (x+dx+n)%n) {
						want++
					}
				}
			}
			require.Equal(t, want, CountAliveNeighbors(g, y, x, Toroidal), "cell (%d,%d)", y, x)
		}
	}
}

func TestCountAliveNeighbors_ExcludesCenter(t *testing.T) {
	t.Parallel()

	g := NewGrid(3)
	for y := range 3 {
		for x := range 3 {
			g.Set(y, x, true)
		}
	}
	require.Equal(t, 8, CountAliveNeighbors(g, 1, 1, Clipped))
	require.Equal(t, 3, CountAliveNeighbors(g, 0, 0, Clipped))
	// On a 3x3 torus every neighbor of (0,0) is a distinct live cell.
	require.Equal(t, 8, CountAliveNeighbors(g, 0, 0, Toroidal))
}

package model

import "github.com/sheikhrachel/lifeboard/rules"

// NextGeneration computes the following generation into a fresh grid taken
// from pool (or allocated when pool is nil). The receiver grid is only read,
// so every cell's next state depends on the previous generation alone.
func NextGeneration(g *Grid, mode BoundaryMode, pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.size)
	} else {
		next = NewGrid(g.size)
	}

	for y := range g.size {
		for x := range g.size {
			if rules.ApplyConwayRules(CountAliveNeighbors(g, y, x, mode), g.cells[y][x]) {
				next.cells[y][x] = true
			}
		}
	}

	return next
}

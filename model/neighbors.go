package model

// CountAliveNeighbors counts the living cells among the 8 neighbors of
// (y, x), resolving off-grid neighbors through mode. The center cell is never
// counted.
func CountAliveNeighbors(g *Grid, y, x int, mode BoundaryMode) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			ny, nx, ok := mode.Resolve(y+dy, x+dx, g.size)
			if ok && g.cells[ny][nx] {
				count++
			}
		}
	}
	return count
}

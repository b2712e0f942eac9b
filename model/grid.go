package model

import (
	"crypto/md5"
	"fmt"
)

// Grid is the square game board. Cells are addressed as (y, x): row first,
// then column. A true cell is alive.
type Grid struct {
	size  int
	cells [][]bool

	// Bounding box of living cells, recomputed lazily
	activeBounds struct {
		minX, maxX, minY, maxY int
		valid                  bool
	}
}

// NewGrid creates an empty size×size grid
func NewGrid(size int) *Grid {
	if size < 1 {
		size = 1
	}
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return &Grid{
		size:  size,
		cells: cells,
	}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (y, x) addresses a cell of the grid
func (g *Grid) InBounds(y, x int) bool {
	return y >= 0 && y < g.size && x >= 0 && x < g.size
}

// reset resizes the grid and clears every cell, reusing rows when it can
func (g *Grid) reset(size int) {
	g.size = size
	g.activeBounds.valid = false

	if len(g.cells) != size {
		g.cells = make([][]bool, size)
	}
	for i := range g.cells {
		if len(g.cells[i]) != size {
			g.cells[i] = make([]bool, size)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.size {
		clear(g.cells[y])
	}
	g.activeBounds.valid = false
}

// Set sets a cell to alive (true) or dead (false). It reports false and
// leaves the grid untouched when (y, x) is out of bounds.
func (g *Grid) Set(y, x int, alive bool) bool {
	if !g.InBounds(y, x) {
		return false
	}
	g.cells[y][x] = alive
	g.activeBounds.valid = false
	return true
}

// Get returns the state of a cell; out-of-bounds cells are dead
func (g *Grid) Get(y, x int) bool {
	if !g.InBounds(y, x) {
		return false
	}
	return g.cells[y][x]
}

// Toggle flips a cell between alive and dead. Out-of-bounds coordinates are
// ignored and reported as false.
func (g *Grid) Toggle(y, x int) bool {
	if !g.InBounds(y, x) {
		return false
	}
	g.cells[y][x] = !g.cells[y][x]
	g.activeBounds.valid = false
	return true
}

// Stamp ORs the mask into the grid: every marked cell becomes alive and no
// cell is ever cleared. It returns how many cells were born.
func (g *Grid) Stamp(mask *Mask) (born int) {
	if mask == nil {
		return 0
	}
	n := min(g.size, mask.Size())
	for y := range n {
		for x := range n {
			if mask.Get(y, x) && !g.cells[y][x] {
				g.cells[y][x] = true
				born++
			}
		}
	}
	if born > 0 {
		g.activeBounds.valid = false
	}
	return born
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.size)
	for y := range g.size {
		copy(out.cells[y], g.cells[y])
	}
	return out
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Rows returns a copy of the cell matrix
func (g *Grid) Rows() [][]bool {
	return g.Clone().cells
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for y := range g.size {
		for x := range g.size {
			if !g.cells[y][x] {
				continue
			}
			if !g.activeBounds.valid {
				g.activeBounds.minX, g.activeBounds.maxX = x, x
				g.activeBounds.minY, g.activeBounds.maxY = y, y
				g.activeBounds.valid = true
				continue
			}
			g.activeBounds.minX = min(g.activeBounds.minX, x)
			g.activeBounds.maxX = max(g.activeBounds.maxX, x)
			g.activeBounds.minY = min(g.activeBounds.minY, y)
			g.activeBounds.maxY = max(g.activeBounds.maxY, y)
		}
	}
}

// BoundingBoxSize returns the area of the smallest rectangle holding every
// living cell, or 0 for an empty grid
func (g *Grid) BoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxX - g.activeBounds.minX + 1) *
		(g.activeBounds.maxY - g.activeBounds.minY + 1)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 fingerprint of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

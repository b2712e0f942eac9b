package model

// Point is a (Y, X) cell coordinate
type Point struct {
	Y, X int
}

// Mask is a size×size boolean overlay marking where a template would land
type Mask struct {
	size  int
	cells [][]bool
}

// NewMask creates an all-false size×size mask
func NewMask(size int) *Mask {
	if size < 1 {
		size = 1
	}
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return &Mask{size: size, cells: cells}
}

// Size returns the side length of the mask
func (m *Mask) Size() int {
	return m.size
}

// Get reports whether (y, x) is marked; out-of-bounds cells never are
func (m *Mask) Get(y, x int) bool {
	if y < 0 || y >= m.size || x < 0 || x >= m.size {
		return false
	}
	return m.cells[y][x]
}

// mark sets (y, x) if it lies inside the mask and reports whether it did
func (m *Mask) mark(y, x int) bool {
	if y < 0 || y >= m.size || x < 0 || x >= m.size {
		return false
	}
	m.cells[y][x] = true
	return true
}

// Count returns the number of marked cells
func (m *Mask) Count() (count int) {
	for y := range m.size {
		for x := range m.size {
			if m.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Empty reports whether no cell is marked
func (m *Mask) Empty() bool {
	return m.Count() == 0
}

// Points lists the marked cells in row-major order
func (m *Mask) Points() []Point {
	var pts []Point
	for y := range m.size {
		for x := range m.size {
			if m.cells[y][x] {
				pts = append(pts, Point{Y: y, X: x})
			}
		}
	}
	return pts
}

// Clone returns an independent copy of the mask
func (m *Mask) Clone() *Mask {
	out := NewMask(m.size)
	for y := range m.size {
		copy(out.cells[y], m.cells[y])
	}
	return out
}

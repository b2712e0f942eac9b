package model

import "github.com/pkg/errors"

var (
	// ErrEmptyShape is returned for a template with no rows or no columns
	ErrEmptyShape = errors.New("template has no cells")
	// ErrNotRectangular is returned when template rows differ in length
	ErrNotRectangular = errors.New("template rows differ in length")
)

// Shape is a named rectangular template. A Shape is never modified after
// construction; rotation returns a new value.
type Shape struct {
	name  string
	rows  int
	cols  int
	cells [][]bool
}

// NewShape validates and copies cells into a Shape. Every row must have the
// same, non-zero length.
func NewShape(name string, cells [][]bool) (*Shape, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrapf(ErrEmptyShape, "[NewShape] %q", name)
	}
	cols := len(cells[0])
	out := make([][]bool, len(cells))
	for i, row := range cells {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrNotRectangular,
				"[NewShape] %q: row %d has %d cells, want %d", name, i, len(row), cols)
		}
		out[i] = append([]bool(nil), row...)
	}
	return &Shape{name: name, rows: len(cells), cols: cols, cells: out}, nil
}

// Name returns the template identifier
func (s *Shape) Name() string { return s.name }

// Rows returns the number of rows
func (s *Shape) Rows() int { return s.rows }

// Cols returns the number of columns
func (s *Shape) Cols() int { return s.cols }

// At reports whether the cell at row i, column j is occupied
func (s *Shape) At(i, j int) bool {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return false
	}
	return s.cells[i][j]
}

// Cells returns a copy of the occupancy matrix
func (s *Shape) Cells() [][]bool {
	out := make([][]bool, s.rows)
	for i, row := range s.cells {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Occupied lists the occupied offsets in row-major order
func (s *Shape) Occupied() []Point {
	var pts []Point
	for i, row := range s.cells {
		for j, on := range row {
			if on {
				pts = append(pts, Point{Y: i, X: j})
			}
		}
	}
	return pts
}

// RotateClockwise returns the shape turned 90° clockwise. The result has the
// row and column counts swapped and out[i][j] = in[rows-1-j][i].
func (s *Shape) RotateClockwise() *Shape {
	out := make([][]bool, s.cols)
	for i := range s.cols {
		out[i] = make([]bool, s.rows)
		for j := range s.rows {
			out[i][j] = s.cells[s.rows-1-j][i]
		}
	}
	return &Shape{name: s.name, rows: s.cols, cols: s.rows, cells: out}
}

// Equal reports whether both shapes have the same dimensions and cells. The
// name is not compared.
func (s *Shape) Equal(other *Shape) bool {
	if other == nil || s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.rows {
		for j := range s.cols {
			if s.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

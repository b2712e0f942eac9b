package model

import (
	"strings"

	"github.com/pkg/errors"
)

// BoundaryMode decides how neighbor lookups past the grid edge resolve
type BoundaryMode int

const (
	// Clipped treats everything outside the grid as permanently dead
	Clipped BoundaryMode = iota
	// Toroidal wraps coordinates so opposite edges touch
	Toroidal
)

// ErrUnknownBoundary is returned when a boundary name cannot be parsed
var ErrUnknownBoundary = errors.New("unknown boundary mode")

// String returns the lowercase name of the mode
func (m BoundaryMode) String() string {
	switch m {
	case Clipped:
		return "clipped"
	case Toroidal:
		return "toroidal"
	default:
		return "unknown"
	}
}

// ParseBoundaryMode accepts "clipped" or "toroidal" (case-insensitive) along
// with the aliases "clip", "wrap" and "torus"
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clipped", "clip":
		return Clipped, nil
	case "toroidal", "wrap", "torus":
		return Toroidal, nil
	}
	return Clipped, errors.Wrapf(ErrUnknownBoundary, "[ParseBoundaryMode] %q", s)
}

// Resolve maps (y, x) onto a cell of a size×size grid. Under Clipped an
// out-of-range coordinate yields ok=false. Under Toroidal each axis wraps
// modulo size, for any distance past the edge.
func (m BoundaryMode) Resolve(y, x, size int) (ry, rx int, ok bool) {
	if y >= 0 && y < size && x >= 0 && x < size {
		return y, x, true
	}
	if m != Toroidal || size <= 0 {
		return 0, 0, false
	}
	return wrap(y, size), wrap(x, size), true
}

func wrap(v, size int) int {
	return (v%size + size) % size
}

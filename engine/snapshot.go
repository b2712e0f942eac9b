package engine

import (
	"time"

	"github.com/sheikhrachel/lifeboard/model"
)

// Snapshot is a consistent copy of everything a renderer needs. Nothing in it
// aliases engine state.
type Snapshot struct {
	Grid       *model.Grid
	Overlay    *model.Mask
	Generation int
	State      RunState
	Boundary   model.BoundaryMode
	Speed      time.Duration
	Selected   string
	Living     int
	Stagnant   bool
}

// Snapshot copies the observable state under a single lock
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		Grid:       e.grid.Clone(),
		Overlay:    e.overlay.Clone(),
		Generation: e.generation,
		State:      e.state,
		Boundary:   e.mode,
		Speed:      e.speed,
		Living:     e.grid.CountLivingCells(),
		Stagnant:   e.stagnant,
	}
	if e.selected != nil {
		s.Selected = e.selected.Name()
	}
	return s
}

// Grid returns a copy of the current board
func (e *Engine) Grid() *model.Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Clone()
}

// Overlay returns a copy of the current placement preview
func (e *Engine) Overlay() *model.Mask {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.overlay.Clone()
}

func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

func (e *Engine) State() RunState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) BoundaryMode() model.BoundaryMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

func (e *Engine) Speed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

// Size returns the side length of the board
func (e *Engine) Size() int {
	return e.size
}

// Selected returns the current working copy of the selected template
func (e *Engine) Selected() (*model.Shape, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected, e.selected != nil
}

// Templates lists the catalog names in load order
func (e *Engine) Templates() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.names...)
}

// Stagnant reports whether the latest generation repeats a recent one
func (e *Engine) Stagnant() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stagnant
}

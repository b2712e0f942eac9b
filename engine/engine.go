package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/model"
)

const (
	// DefaultSpeed is the interval between generations while running
	DefaultSpeed = 100 * time.Millisecond
	// DefaultHistorySize is how many past generations stagnation detection remembers
	DefaultHistorySize = 5
)

// ErrUnknownTemplate is returned when selecting a name missing from the catalog
var ErrUnknownTemplate = errors.New("unknown template")

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for state transitions
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithScheduler replaces the default ticker-based scheduler
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithBoundaryMode sets the initial boundary mode
func WithBoundaryMode(mode model.BoundaryMode) Option {
	return func(e *Engine) { e.mode = mode }
}

// WithSpeed sets the initial tick interval; non-positive values are ignored
func WithSpeed(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.speed = d
		}
	}
}

// WithHistorySize sets how many past generations are kept for stagnation
// detection. Zero disables it.
func WithHistorySize(n int) Option {
	return func(e *Engine) { e.history = newHistory(n) }
}

// WithGridPool recycles replaced grids through pool
func WithGridPool(pool *model.GridPool) Option {
	return func(e *Engine) { e.pool = pool }
}

// Engine owns the authoritative grid, the generation counter, the boundary
// mode, the run state and the template selection. It is the only writer of
// any of them.
type Engine struct {
	mu sync.Mutex

	size       int
	grid       *model.Grid
	pool       *model.GridPool
	generation int
	state      RunState
	mode       model.BoundaryMode
	speed      time.Duration

	catalog  map[string]*model.Shape
	names    []string
	selected *model.Shape
	anchor   *model.Point
	overlay  *model.Mask

	history  *history
	stagnant bool

	// run identifies the current Start; ticks scheduled by an earlier run
	// are ignored
	run       uint64
	scheduler Scheduler
	logger    *slog.Logger
}

// New creates an idle engine with an empty size×size grid. templates become
// the selectable catalog; when two share a name the first wins.
func New(size int, templates []*model.Shape, opts ...Option) *Engine {
	if size < 1 {
		size = 1
	}
	e := &Engine{
		size:    size,
		grid:    model.NewGrid(size),
		mode:    model.Toroidal,
		speed:   DefaultSpeed,
		catalog: make(map[string]*model.Shape, len(templates)),
		overlay: model.NewMask(size),
		history: newHistory(DefaultHistorySize),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.scheduler == nil {
		e.scheduler = NewTickerScheduler(context.Background())
	}

	for _, t := range templates {
		if t == nil {
			continue
		}
		if _, dup := e.catalog[t.Name()]; dup {
			e.logger.Warn("Duplicate template ignored.", "template", t.Name())
			continue
		}
		e.catalog[t.Name()] = t
		e.names = append(e.names, t.Name())
	}

	e.logger.Debug("Engine created.", "size", size, "templates", len(e.names), "boundary", e.mode.String())
	return e
}

// Start moves Idle to Running and schedules ticks. It reports false when the
// engine was already running.
func (e *Engine) Start() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running {
		return false
	}
	e.state = Running
	e.anchor = nil
	e.overlay = model.NewMask(e.size)
	e.run++
	run := e.run
	e.scheduler.Start(e.speed, func() { e.tickRun(run) })

	e.logger.Info("Simulation started.", "speed", e.speed, "generation", e.generation)
	return true
}

// Stop cancels future ticks and returns to Idle. It reports false when the
// engine was not running.
func (e *Engine) Stop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Running {
		return false
	}
	e.scheduler.Stop()
	e.state = Idle
	e.run++

	e.logger.Info("Simulation stopped.", "generation", e.generation)
	return true
}

// Reset stops any run, clears the board and sets the generation back to 0.
// The template selection survives.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running {
		e.scheduler.Stop()
		e.state = Idle
		e.run++
	}
	model.GridToPool(e.grid, e.pool)
	e.grid = model.NewGrid(e.size)
	e.generation = 0
	e.history.reset()
	e.stagnant = false

	e.logger.Info("Simulation reset.")
}

// Tick advances one generation while running. It is a no-op, reporting
// false, when the engine is idle.
func (e *Engine) Tick() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.tickLocked()
}

// tickRun is the scheduled form of Tick. It does nothing unless run is still
// the current run.
func (e *Engine) tickRun(run uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if run != e.run {
		return false
	}
	return e.tickLocked()
}

func (e *Engine) tickLocked() bool {
	if e.state != Running {
		return false
	}

	prev := e.grid
	e.history.push(prev.GetGridHash())
	e.grid = model.NextGeneration(prev, e.mode, e.pool)
	model.GridToPool(prev, e.pool)
	e.generation++
	e.stagnant = e.history.seen(e.grid.GetGridHash())

	e.logger.Debug("Generation computed.", "generation", e.generation, "stagnant", e.stagnant)
	return true
}

// SetSpeed changes the tick interval. Rejected while running or for
// non-positive durations.
func (e *Engine) SetSpeed(d time.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running || d <= 0 {
		return false
	}
	e.speed = d
	e.logger.Debug("Speed changed.", "speed", d)
	return true
}

// SetBoundaryMode switches the neighbor policy. A running simulation picks
// the new mode up on its next tick; a tick in progress keeps the old one.
func (e *Engine) SetBoundaryMode(mode model.BoundaryMode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = mode
	e.logger.Debug("Boundary mode changed.", "boundary", mode.String())
}

// SelectTemplate makes a working copy of the named catalog entry the current
// selection, replacing any previous one. It is a no-op while running.
func (e *Engine) SelectTemplate(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running {
		return nil
	}
	return e.selectLocked(name)
}

func (e *Engine) selectLocked(name string) error {
	shape, ok := e.catalog[name]
	if !ok {
		return errors.Wrapf(ErrUnknownTemplate, "[SelectTemplate] %q", name)
	}
	e.selected = shape
	e.refreshOverlay()

	e.logger.Debug("Template selected.", "template", name)
	return nil
}

// DeselectTemplate clears the selection and the preview. It reports false
// when nothing was selected or the engine is running.
func (e *Engine) DeselectTemplate() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running || e.selected == nil {
		return false
	}
	e.deselectLocked()
	return true
}

func (e *Engine) deselectLocked() {
	e.selected = nil
	e.overlay = model.NewMask(e.size)
	e.logger.Debug("Template deselected.")
}

// ToggleTemplate selects name, or deselects it when it is already the
// current selection
func (e *Engine) ToggleTemplate(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running {
		return nil
	}
	if e.selected != nil && e.selected.Name() == name {
		e.deselectLocked()
		return nil
	}
	return e.selectLocked(name)
}

// RotateSelected turns the selected template 90° clockwise. The catalog entry
// is untouched. No-op without a selection or while running.
func (e *Engine) RotateSelected() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running || e.selected == nil {
		return false
	}
	e.selected = e.selected.RotateClockwise()
	e.refreshOverlay()
	return true
}

// ToggleCell flips (y, x). Out-of-bounds coordinates and calls while running
// are ignored.
func (e *Engine) ToggleCell(y, x int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running {
		return false
	}
	return e.grid.Toggle(y, x)
}

// MoveAnchor places the preview's top-left corner at (y, x) and recomputes
// the overlay. An anchor off the grid behaves like LeaveGrid.
func (e *Engine) MoveAnchor(y, x int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running {
		return
	}
	if !e.grid.InBounds(y, x) {
		e.anchor = nil
		e.overlay = model.NewMask(e.size)
		return
	}
	e.anchor = &model.Point{Y: y, X: x}
	e.refreshOverlay()
}

// LeaveGrid drops the anchor and clears the preview
func (e *Engine) LeaveGrid() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.anchor = nil
	e.overlay = model.NewMask(e.size)
}

// StampAtAnchor ORs the current preview into the grid and returns the
// number of cells born. Nothing happens while running, without a selection
// or without an anchor.
func (e *Engine) StampAtAnchor() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stampLocked()
}

// Click applies a click on (y, x): with a template selected it stamps the
// template anchored there, otherwise it toggles the cell
func (e *Engine) Click(y, x int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running || !e.grid.InBounds(y, x) {
		return
	}
	if e.selected == nil {
		e.grid.Toggle(y, x)
		return
	}
	e.anchor = &model.Point{Y: y, X: x}
	e.refreshOverlay()
	e.stampLocked()
}

func (e *Engine) stampLocked() int {
	if e.state == Running || e.selected == nil || e.anchor == nil {
		return 0
	}
	born := e.grid.Stamp(e.overlay)
	if born > 0 {
		e.logger.Debug("Template stamped.", "template", e.selected.Name(),
			"y", e.anchor.Y, "x", e.anchor.X, "born", born)
	}
	return born
}

// refreshOverlay rebuilds the preview from scratch for the current anchor
// and selection
func (e *Engine) refreshOverlay() {
	if e.anchor == nil || e.selected == nil {
		e.overlay = model.NewMask(e.size)
		return
	}
	e.overlay = model.ComputeOverlay(e.anchor.Y, e.anchor.X, e.selected, e.size)
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/catalog"
	"github.com/sheikhrachel/lifeboard/engine"
	"github.com/sheikhrachel/lifeboard/model"
	"github.com/sheikhrachel/lifeboard/utils"
)

// placement is one -stamp flag: a template, its anchor and how many
// clockwise turns to apply first
type placement struct {
	name      string
	y, x      int
	rotations int
}

type placementList []placement

func (l *placementList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = fmt.Sprintf("%s@%d,%d,r%d", p.name, p.y, p.x, p.rotations)
	}
	return strings.Join(parts, " ")
}

func (l *placementList) Set(s string) error {
	p, err := parsePlacement(s)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

type cellList []model.Point

func (l *cellList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = fmt.Sprintf("%d,%d", p.Y, p.X)
	}
	return strings.Join(parts, " ")
}

func (l *cellList) Set(s string) error {
	y, x, err := parseCoords(s)
	if err != nil {
		return err
	}
	*l = append(*l, model.Point{Y: y, X: x})
	return nil
}

// parsePlacement reads name@y,x or name@y,x,rN
func parsePlacement(s string) (placement, error) {
	name, rest, ok := strings.Cut(s, "@")
	if !ok || name == "" {
		return placement{}, errors.Errorf("[parsePlacement] %q: want name@y,x[,rN]", s)
	}

	p := placement{name: name}
	if i := strings.LastIndex(rest, ",r"); i >= 0 {
		n, err := strconv.Atoi(rest[i+2:])
		if err != nil || n < 0 {
			return placement{}, errors.Errorf("[parsePlacement] %q: bad rotation count", s)
		}
		p.rotations = n % 4
		rest = rest[:i]
	}

	y, x, err := parseCoords(rest)
	if err != nil {
		return placement{}, errors.Wrapf(err, "[parsePlacement] %q", s)
	}
	p.y, p.x = y, x
	return p, nil
}

func parseCoords(s string) (int, int, error) {
	ys, xs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errors.Errorf("[parseCoords] %q: want y,x", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "[parseCoords] %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "[parseCoords] %q", s)
	}
	return y, x, nil
}

// initializeGame builds an idle engine from the configuration
func initializeGame(
	ctx context.Context,
	config utils.Config,
	templates []*model.Shape,
	logger *slog.Logger,
) (*engine.Engine, error) {
	mode, err := config.BoundaryMode()
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithScheduler(engine.NewTickerScheduler(ctx)),
		engine.WithBoundaryMode(mode),
		engine.WithSpeed(config.Speed()),
		engine.WithHistorySize(config.HistorySize),
	}
	if config.UseMemoryPool {
		opts = append(opts, engine.WithGridPool(model.NewGridPool()))
	}

	return engine.New(config.GridSize, templates, opts...), nil
}

// seedGame applies the -toggle and -stamp flags to an idle engine
func seedGame(game *engine.Engine, placements []placement, toggles []model.Point) error {
	for _, c := range toggles {
		game.ToggleCell(c.Y, c.X)
	}

	for _, p := range placements {
		if err := game.SelectTemplate(p.name); err != nil {
			return err
		}
		for range p.rotations {
			game.RotateSelected()
		}
		game.MoveAnchor(p.y, p.x)
		game.StampAtAnchor()
	}
	game.DeselectTemplate()
	game.LeaveGrid()
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(outW io.Writer, config utils.Config, snap engine.Snapshot, templates []string) {
	fmt.Fprintf(outW, "Features: Memory Pool: %v, Boundary: %s, Speed: %v\n",
		config.UseMemoryPool, snap.Boundary, snap.Speed)
	fmt.Fprintf(outW, "Grid: %dx%d | Initial living cells: %d\n",
		snap.Grid.Size(), snap.Grid.Size(), snap.Living)

	labels := make([]string, len(templates))
	for i, name := range templates {
		labels[i] = strings.ReplaceAll(catalog.Label(name), "\n", " ")
	}
	fmt.Fprintf(outW, "Templates: %s\n", strings.Join(labels, ", "))
	fmt.Fprintln(outW, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(outW)
}

// gameStatus summarises the board for the status line
func gameStatus(snap engine.Snapshot) string {
	switch {
	case snap.Living == 0:
		return "Extinct"
	case snap.Stagnant:
		return fmt.Sprintf("Stagnant (%d)", snap.Generation)
	default:
		return "Active"
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(outW io.Writer, snap engine.Snapshot, stats *utils.Stats) {
	size := snap.Grid.Size()
	density := float64(snap.Living) / float64(size*size) * 100

	fmt.Fprintf(outW, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s | State: %s | Bounding box: %d cells\n",
		snap.Generation, snap.Living, density, gameStatus(snap), snap.State, stats.BoundingBoxSize)
	fmt.Fprintf(outW, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Fprintln(outW)
}

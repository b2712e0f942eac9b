package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifeboard/catalog"
	"github.com/sheikhrachel/lifeboard/engine"
	"github.com/sheikhrachel/lifeboard/model"
	"github.com/sheikhrachel/lifeboard/utils"
)

const defaultConfigFile = "config.json"

func main() {
	// Use a minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// options holds everything parsed from the command line
type options struct {
	configPath string
	placements placementList
	toggles    cellList
	flags      *flag.FlagSet

	size        int
	speedMs     int
	boundary    string
	catalogPath string
	generations int
	render      bool
	logLevel    string
	logFormat   string
}

func parseArgs(args []string, outW io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("lifeboard", flag.ContinueOnError)
	fs.SetOutput(outW)
	fs.Usage = func() {
		fmt.Fprint(outW, `
lifeboard - Conway's Game of Life with stampable templates.

Usage:
  lifeboard [options]

Options:
`)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.configPath, "config", "", "Path to a JSON config file (default: ./config.json when present).")
	fs.Var(&opts.placements, "stamp", "Stamp a template before starting, as name@y,x[,rN] with N clockwise turns. Repeatable.")
	fs.Var(&opts.toggles, "toggle", "Toggle the cell at y,x before starting. Repeatable.")
	fs.IntVar(&opts.size, "size", 0, "Grid side length.")
	fs.IntVar(&opts.speedMs, "speed", 0, "Milliseconds between generations.")
	fs.StringVar(&opts.boundary, "boundary", "", "Boundary mode: 'clipped' or 'toroidal'.")
	fs.StringVar(&opts.catalogPath, "catalog", "", "Template catalog file (.json or .hcl). Built-in templates when empty.")
	fs.IntVar(&opts.generations, "generations", 0, "Stop after this many generations; 0 runs until interrupted.")
	fs.BoolVar(&opts.render, "render", true, "Draw the board after every frame.")
	fs.StringVar(&opts.logLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&opts.logFormat, "log-format", "", "Log output format: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.flags = fs
	return opts, nil
}

// loadConfig layers defaults, the config file, LIFEBOARD_* variables and
// explicitly set flags, in that order
func loadConfig(opts *options) (utils.Config, error) {
	path := opts.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	config, err := utils.LoadConfig(path, nil)
	if err != nil {
		return config, err
	}

	opts.flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			config.GridSize = opts.size
		case "speed":
			config.SpeedMs = opts.speedMs
		case "boundary":
			config.Boundary = opts.boundary
		case "catalog":
			config.CatalogPath = opts.catalogPath
		case "generations":
			config.MaxGenerations = opts.generations
		case "render":
			config.Render = opts.render
		case "log-level":
			config.LogLevel = opts.logLevel
		case "log-format":
			config.LogFormat = opts.logFormat
		}
	})

	return config, config.Validate()
}

// run encapsulates the application so it can be tested without exiting
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	opts, err := parseArgs(args, outW)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	config, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := utils.NewLogger(config.LogLevel, config.LogFormat, errW)

	templates, err := loadTemplates(config, logger)
	if err != nil {
		return err
	}

	game, err := initializeGame(ctx, config, templates, logger)
	if err != nil {
		return err
	}
	if err := seedGame(game, opts.placements, opts.toggles); err != nil {
		return err
	}

	renderer := &model.TerminalRenderer{Out: outW}
	stats := utils.NewStats()
	displayGameInfo(outW, config, game.Snapshot(), game.Templates())

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, egCtx := errgroup.WithContext(runCtx)

	eg.Go(func() error {
		<-egCtx.Done()
		game.Stop()
		return nil
	})

	eg.Go(func() error {
		defer cancel()
		return renderLoop(egCtx, outW, config, game, renderer, stats)
	})

	game.Start()
	if err := eg.Wait(); err != nil {
		return err
	}

	snap := game.Snapshot()
	fmt.Fprintf(outW, "Final stats: %d generations in %.1f seconds | Living: %d | Peak: %d | Status: %s\n",
		snap.Generation, stats.Runtime().Seconds(), snap.Living, stats.PeakPopulation, gameStatus(snap))
	return nil
}

// renderLoop samples the engine once per tick interval until the context
// ends or the generation limit is reached
func renderLoop(
	ctx context.Context,
	outW io.Writer,
	config utils.Config,
	game *engine.Engine,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	frame := time.NewTicker(config.Speed())
	defer frame.Stop()

	lastFrameTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-frame.C:
		}

		snap := game.Snapshot()
		now := time.Now()
		stats.Update(snap.Generation, snap.Living, now.Sub(lastFrameTime))
		stats.BoundingBoxSize = snap.Grid.BoundingBoxSize()
		lastFrameTime = now

		if config.Render {
			if err := renderer.Clear(); err != nil {
				return errors.Wrap(err, "[renderLoop] clear")
			}
			displayGameStatus(outW, snap, stats)
			if err := renderer.Display(snap.Grid, snap.Overlay); err != nil {
				return errors.Wrap(err, "[renderLoop] display")
			}
		}

		if config.MaxGenerations > 0 && snap.Generation >= config.MaxGenerations {
			fmt.Fprintf(outW, "Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}
	}
}

// loadTemplates returns the configured catalog, or the built-in one. Rejected
// entries are logged and skipped.
func loadTemplates(config utils.Config, logger *slog.Logger) ([]*model.Shape, error) {
	res := catalog.Default()
	if config.CatalogPath != "" {
		var err error
		if res, err = catalog.LoadFile(config.CatalogPath); err != nil {
			return nil, err
		}
	}
	res.LogRejected(logger)
	logger.Debug("Catalog loaded.", "templates", len(res.Templates), "rejected", len(res.Rejected))
	return res.Templates, nil
}

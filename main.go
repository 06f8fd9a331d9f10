package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"doltmap/pkg/engine/terminal"
	"doltmap/pkg/game/devtools"
	"doltmap/pkg/game/generator"
	"doltmap/pkg/game/renderer"
	"doltmap/pkg/game/renderer/tui"
)

// Colour modes accepted by -color
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type options struct {
	cfg      generator.Config
	color    string
	dumpPath string
	names    bool
	verbose  bool
}

func parseFlags(args []string) (options, error) {
	opts := options{cfg: generator.DefaultConfig()}

	fs := flag.NewFlagSet("doltmap", flag.ContinueOnError)
	fs.IntVar(&opts.cfg.Width, "width", opts.cfg.Width, "grid width in cells")
	fs.IntVar(&opts.cfg.Height, "height", opts.cfg.Height, "grid height in cells")
	fs.IntVar(&opts.cfg.NumTerritories, "territories", opts.cfg.NumTerritories, "number of territories to place")
	fs.IntVar(&opts.cfg.MinSize, "min", opts.cfg.MinSize, "minimum territory size")
	fs.IntVar(&opts.cfg.MaxSize, "max", opts.cfg.MaxSize, "maximum territory size")
	fs.Int64Var(&opts.cfg.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.StringVar(&opts.color, "color", colorAuto, "colour output: auto, always or never")
	fs.StringVar(&opts.dumpPath, "dump", "", "write a debug dump of the map to this file")
	fs.BoolVar(&opts.names, "names", false, "list every territory with its neighbors")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.color {
	case colorAuto, colorAlways, colorNever:
	default:
		return opts, fmt.Errorf("%w: unknown colour mode %q", generator.ErrInvalidConfig, opts.color)
	}

	if opts.cfg.Seed == 0 {
		opts.cfg.Seed = time.Now().UnixNano()
	}
	return opts, opts.cfg.Validate()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// pickRenderer chooses the colour or plain renderer, falling back to the
// compact view when the box would wrap in the terminal.
func pickRenderer(opts options, width int) renderer.Renderer {
	compact := !terminal.FitsWidth(width)

	switch opts.color {
	case colorNever:
		return renderer.NewText(compact)
	case colorAlways:
		tui.ForceColor()
		return tui.New(compact)
	}
	if terminal.IsTerminal() {
		return tui.New(compact)
	}
	return renderer.NewText(compact)
}

func run(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := newLogger(opts.verbose)
	slog.SetDefault(logger)
	logger.Info("generating map",
		"seed", opts.cfg.Seed,
		"width", opts.cfg.Width,
		"height", opts.cfg.Height,
		"territories", opts.cfg.NumTerritories,
		"min", opts.cfg.MinSize,
		"max", opts.cfg.MaxSize,
	)

	g, err := generator.New(opts.cfg, generator.WithLogger(logger))
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	m, err := g.Generate(context.Background())
	switch {
	case errors.Is(err, generator.ErrPlacementBudget):
		logger.Warn("placement stopped early", "error", err)
	case err != nil:
		logger.Error("map generation failed", "seed", opts.cfg.Seed, "error", err)
		return 1
	}

	renderer.SetRenderer(pickRenderer(opts, renderer.BoxWidth(m.Grid)))
	logger.Debug("rendering", "renderer", renderer.Current.Name())

	fmt.Print(renderer.Render(m))
	fmt.Println()
	fmt.Print(renderer.Summary(m, opts.names))

	if opts.dumpPath != "" {
		path, err := devtools.DumpMapToFile(opts.dumpPath, m)
		if err != nil {
			logger.Error("map dump failed", "path", opts.dumpPath, "error", err)
			return 1
		}
		logger.Info("map dumped", "path", path)
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}

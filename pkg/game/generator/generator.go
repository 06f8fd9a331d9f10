// Package generator places territories across a water grid until the
// requested number is reached or no territory can seed another one.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"doltmap/pkg/engine/world"
	"doltmap/pkg/game/territory"
)

// Map is the result of a generation run
type Map struct {
	ID          uuid.UUID
	Config      Config
	Grid        *world.Grid
	Territories []*territory.Territory

	// Saturated is set when every territory became landlocked before the
	// requested count was reached.
	Saturated bool

	Stats Stats
}

// Stats counts what happened during placement
type Stats struct {
	Placements      int
	BuildAttempts   int
	StarvedRegions  int
	ExhaustedBuilds int
	Landlocked      int
}

// Territory returns the territory with the given ID, or nil
func (m *Map) Territory(id world.TerritoryID) *territory.Territory {
	if id < 0 || int(id) >= len(m.Territories) {
		return nil
	}
	return m.Territories[id]
}

// Requested returns the number of territories the run asked for
func (m *Map) Requested() int {
	return m.Config.NumTerritories
}

// Generator runs territory placement for one Config.
// It owns its random source; successive Generate calls continue the same
// random sequence.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	logger  *slog.Logger
	builder *territory.Builder
}

// Option customizes a Generator
type Option func(*Generator)

// WithLogger sets the logger used for placement diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithRand replaces the random source seeded from Config.Seed
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// New validates cfg and creates a Generator
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.builder = territory.NewBuilder(g.rng, g.logger)

	return g, nil
}

// Config returns the configuration the generator was created with
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate builds a fresh grid and places territories on it.
//
// The first territory is anchored at (StartX, StartY); if it cannot be built
// the returned Map has no territories and the error wraps
// ErrNoInitialTerritory. Running out of growable territories is not an error:
// the Map is returned with Saturated set.
func (g *Generator) Generate(ctx context.Context) (*Map, error) {
	cfg := g.cfg
	grid := world.NewGrid(cfg.Width, cfg.Height)
	m := &Map{
		ID:     MapID(cfg),
		Config: cfg,
		Grid:   grid,
	}

	first, err := g.builder.Build(0, grid.GetCell(cfg.StartX, cfg.StartY), cfg.MinSize, cfg.MaxSize)
	m.Stats.BuildAttempts++
	if err != nil {
		return m, fmt.Errorf("%w: %w", ErrNoInitialTerritory, err)
	}
	m.Territories = append(m.Territories, first)

	budget := cfg.placementBudget()
	for len(m.Territories) < cfg.NumTerritories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if m.Stats.Placements >= budget {
			g.finish(m)
			return m, fmt.Errorf("%w: %d placements, %d of %d territories", ErrPlacementBudget,
				m.Stats.Placements, len(m.Territories), cfg.NumTerritories)
		}

		source := g.randomOpenTerritory(m.Territories)
		if source == nil {
			m.Saturated = true
			break
		}

		m.Stats.Placements++
		if err := g.placeFrom(m, source); err != nil {
			return nil, err
		}
	}

	g.finish(m)
	g.logger.Info("map generated",
		"map", m.ID.String(),
		"territories", len(m.Territories),
		"requested", cfg.NumTerritories,
		"saturated", m.Saturated,
		"placements", m.Stats.Placements,
		"starved_regions", m.Stats.StarvedRegions,
		"exhausted_builds", m.Stats.ExhaustedBuilds,
	)

	return m, nil
}

func (g *Generator) finish(m *Map) {
	territory.ComputeNeighbors(m.Territories)
	NameTerritories(m.Territories)
}

// randomOpenTerritory picks uniformly among the territories that are not
// landlocked in a single pass, or returns nil if all of them are.
func (g *Generator) randomOpenTerritory(territories []*territory.Territory) *territory.Territory {
	count := 0
	var result *territory.Territory
	for _, t := range territories {
		if t.IsLandlocked() {
			continue
		}
		count++
		if g.rng.Intn(count) == 0 {
			result = t
		}
	}
	return result
}

// placeFrom tries to seed a new territory on the water bordering source.
// Only configuration errors are returned; failed placements are recorded in
// the map statistics.
func (g *Generator) placeFrom(m *Map, source *territory.Territory) error {
	cfg := g.cfg

	start := source.RandomFrontierCell(g.rng)
	if start == nil {
		source.SetLandlocked()
		m.Stats.Landlocked++
		g.logger.Debug("territory landlocked", "territory", source.ID)
		return nil
	}

	target, err := territory.RandomTargetSize(g.rng, cfg.MinSize, cfg.MaxSize)
	if err != nil {
		return err
	}

	reachable := territory.CountReachableWater(start, target)
	if len(reachable) < cfg.MinSize {
		for _, c := range reachable {
			c.MarkOffLimits()
		}
		m.Stats.StarvedRegions++
		g.logger.Debug("water region too small, marked off-limits",
			"start", start.String(), "cells", len(reachable), "min", cfg.MinSize)
		return nil
	}

	maxSize := min(cfg.MaxSize, len(reachable))
	id := world.TerritoryID(len(m.Territories))

	t, attempts, err := g.buildWithRetries(id, start, cfg.MinSize, maxSize)
	m.Stats.BuildAttempts += attempts
	if err != nil {
		if !errors.Is(err, ErrBuildExhausted) {
			return err
		}
		m.Stats.ExhaustedBuilds++
		g.logger.Warn("territory placement skipped", "start", start.String(), "error", err)
		return nil
	}

	m.Territories = append(m.Territories, t)
	g.logger.Debug("territory placed", "territory", id, "size", t.Size(), "attempts", attempts)
	return nil
}

// buildWithRetries runs the builder up to BuildAttempts times. Failures that
// would repeat identically on the next attempt end the retries early.
func (g *Generator) buildWithRetries(id world.TerritoryID, start *world.Cell, minSize, maxSize int) (*territory.Territory, int, error) {
	var lastErr error
	attempts := 0
	for attempts < g.cfg.BuildAttempts {
		attempts++
		t, err := g.builder.Build(id, start, minSize, maxSize)
		if err == nil {
			return t, attempts, nil
		}
		if errors.Is(err, territory.ErrInvalidSizeRange) {
			return nil, attempts, err
		}
		lastErr = err
		if errors.Is(err, territory.ErrInfeasibleStart) || errors.Is(err, territory.ErrRegionStarved) {
			break
		}
	}
	return nil, attempts, fmt.Errorf("%w after %d attempts: %w", ErrBuildExhausted, attempts, lastErr)
}

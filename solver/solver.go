package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/riskgrid/costgrid"
	"github.com/katalvlaran/riskgrid/dijkstra"
)

// Solve computes the base-map and enlarged-map costs of grid.
//
// The context is checked before each search starts; a search itself runs to
// completion. On any error no partial Report is returned.
func Solve(ctx context.Context, grid *costgrid.CostGrid, opts ...Option) (Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if grid == nil {
		return Report{}, ErrNilGrid
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	log := cfg.Logger.With().Str("run_id", cfg.RunID).Logger()

	big, err := costgrid.Expand(grid, cfg.Factor)
	if err != nil {
		return Report{}, fmt.Errorf("solver: expand x%d: %w", cfg.Factor, err)
	}
	log.Debug().
		Int("height", grid.Height()).
		Int("width", grid.Width()).
		Int("factor", cfg.Factor).
		Msg("expanded grid")

	rep := Report{RunID: cfg.RunID, Factor: cfg.Factor}
	start := time.Now()
	if cfg.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			rep.Base, err = runPart(gctx, log, "base", grid, cfg.Paths)
			return err
		})
		g.Go(func() (err error) {
			rep.Expanded, err = runPart(gctx, log, "expanded", big, cfg.Paths)
			return err
		})
		if err := g.Wait(); err != nil {
			return Report{}, err
		}
	} else {
		if rep.Base, err = runPart(ctx, log, "base", grid, cfg.Paths); err != nil {
			return Report{}, err
		}
		if rep.Expanded, err = runPart(ctx, log, "expanded", big, cfg.Paths); err != nil {
			return Report{}, err
		}
	}
	rep.Elapsed = time.Since(start)

	log.Info().
		Int64("base", rep.Base.Cost).
		Int64("expanded", rep.Expanded.Cost).
		Dur("elapsed", rep.Elapsed).
		Bool("parallel", cfg.Parallel).
		Msg("solved")

	return rep, nil
}

// runPart runs one corner-to-corner search and times it.
func runPart(ctx context.Context, log zerolog.Logger, name string, g *costgrid.CostGrid, withPath bool) (Part, error) {
	if err := ctx.Err(); err != nil {
		return Part{}, err
	}

	var opts []dijkstra.Option
	if withPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	start := time.Now()
	res, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		return Part{}, fmt.Errorf("solver: %s: %w", name, err)
	}
	p := Part{
		Height:  g.Height(),
		Width:   g.Width(),
		Cost:    res.Cost,
		Path:    res.Path,
		Settled: res.Settled,
		Elapsed: time.Since(start),
	}
	log.Debug().
		Str("part", name).
		Int64("cost", p.Cost).
		Int("settled", p.Settled).
		Dur("elapsed", p.Elapsed).
		Msg("search finished")

	return p, nil
}

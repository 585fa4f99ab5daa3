package solver

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/riskgrid/costgrid"
)

// ErrNilGrid indicates Solve was given a nil grid.
var ErrNilGrid = errors.New("solver: grid is nil")

// Options configures a Solve call.
type Options struct {
	Factor   int            // tiles per axis for the enlarged map
	Parallel bool           // run both searches concurrently
	Paths    bool           // fill Part.Path
	RunID    string         // empty means a fresh uuid per call
	Logger   zerolog.Logger // defaults to a disabled logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithFactor sets the tile count per axis. Values ≤ 0 are rejected by
// costgrid.Expand when Solve runs.
func WithFactor(f int) Option {
	return func(o *Options) { o.Factor = f }
}

// WithParallel runs the base and enlarged searches on separate goroutines.
func WithParallel(on bool) Option {
	return func(o *Options) { o.Parallel = on }
}

// WithPaths asks for each part's route.
func WithPaths(on bool) Option {
	return func(o *Options) { o.Paths = on }
}

// WithRunID fixes the run id instead of generating one.
func WithRunID(id string) Option {
	return func(o *Options) { o.RunID = id }
}

// WithLogger sets the logger used for progress and timing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the part-two factor, sequential execution,
// no paths and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Factor: costgrid.DefaultExpandFactor,
		Logger: zerolog.Nop(),
	}
}

// Part is the answer for one grid.
type Part struct {
	Height, Width int
	Cost          int64
	Path          []costgrid.Cell
	Settled       int
	Elapsed       time.Duration
}

// Report holds both answers of a Solve call.
type Report struct {
	RunID    string
	Factor   int
	Base     Part
	Expanded Part
	// Elapsed is wall time across both searches. In parallel mode it can be
	// shorter than Base.Elapsed+Expanded.Elapsed.
	Elapsed time.Duration
}

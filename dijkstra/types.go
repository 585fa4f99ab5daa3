// Package dijkstra defines core types and configuration options
// for grid shortest-path searches.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/riskgrid/costgrid"
)

// Sentinel errors returned by the grid search.
var (
	// ErrNilGrid indicates that a nil *costgrid.CostGrid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrEmptyGrid indicates a grid with zero height or zero width.
	ErrEmptyGrid = errors.New("dijkstra: grid has no cells")

	// ErrOutOfBounds indicates that the source or target cell lies outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: endpoint outside grid")

	// ErrUnreachable indicates that the target could not be settled.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadWallCost indicates a wall threshold of zero, which would wall off every cell.
	ErrBadWallCost = errors.New("dijkstra: WallCost must be positive")
)

// Infinity marks a cell whose distance is not yet known.
const Infinity int64 = math.MaxInt64

// Options configures a single search.
//
// Source      – start cell; its own cost is never counted. Default (0,0).
// Target      – destination cell. Default (Height-1, Width-1).
// ReturnPath  – if true, Result.Path holds the cells from Source to Target.
// MaxDistance – cells whose distance would exceed this are never settled.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// WallCost    – cells costing ≥ WallCost cannot be entered.
//
//	Must be > 0. Default is 0, meaning no walls.
type Options struct {
	Source      costgrid.Cell
	Target      costgrid.Cell
	ReturnPath  bool
	MaxDistance int64
	WallCost    costgrid.Cost

	hasTarget bool
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithSource sets the start cell.
func WithSource(c costgrid.Cell) Option {
	return func(o *Options) {
		o.Source = c
	}
}

// WithTarget sets the destination cell, replacing the bottom-right default.
func WithTarget(c costgrid.Cell) Option {
	return func(o *Options) {
		o.Target = c
		o.hasTarget = true
	}
}

// WithReturnPath asks for the route itself in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the distance explored.
// A target farther than max is reported as ErrUnreachable.
// Panics with ErrBadMaxDistance if max is negative.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithWallCost treats every cell costing at least c as impassable.
// The source cell is never entered, so it may itself be a wall.
// Panics with ErrBadWallCost if c is zero.
func WithWallCost(c costgrid.Cost) Option {
	return func(o *Options) {
		if c == 0 {
			panic(ErrBadWallCost.Error())
		}
		o.WallCost = c
	}
}

// DefaultOptions returns Options for the top-left to bottom-right search
// of a grid: no path, no distance cap, no walls. The target is resolved
// against the grid when the search starts.
func DefaultOptions() Options {
	return Options{
		Source:      costgrid.Cell{Row: 0, Col: 0},
		ReturnPath:  false,
		MaxDistance: Infinity,
	}
}

// Result reports the outcome of a successful search.
type Result struct {
	// Cost is the sum of entered-cell costs along a cheapest route.
	Cost int64
	// Path lists the route from Source to Target inclusive; nil unless ReturnPath.
	Path []costgrid.Cell
	// Settled counts cells whose distance was finalized before the search stopped.
	Settled int
}

// cellState tags each cell's progress through the search.
type cellState uint8

const (
	stateUnvisited cellState = iota // never reached
	stateTentative                  // on the frontier with a provisional distance
	stateFinalized                  // distance proven minimal
)

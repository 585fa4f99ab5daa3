package costgrid

import (
	"errors"
)

// Sentinel errors for costgrid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("costgrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("costgrid: all rows must have the same length")
	// ErrCostRange indicates a cost above MaxCost.
	ErrCostRange = errors.New("costgrid: cost out of range")
	// ErrOutOfBounds indicates a Cell outside [0,Height)×[0,Width).
	ErrOutOfBounds = errors.New("costgrid: cell out of bounds")
	// ErrInvalidFactor indicates a non-positive expansion factor.
	ErrInvalidFactor = errors.New("costgrid: expansion factor must be positive")
	// ErrNilGrid indicates a nil *CostGrid was supplied.
	ErrNilGrid = errors.New("costgrid: grid is nil")
	// ErrBadDigit indicates a non-digit character in parsed input.
	ErrBadDigit = errors.New("costgrid: expected a decimal digit")
)

const (
	// MinCost is the lowest cost produced by the wraparound transform.
	MinCost Cost = 1
	// MaxCost is the highest cost a grid may hold.
	MaxCost Cost = 9
	// DefaultExpandFactor is the tile count per axis used for the enlarged map.
	DefaultExpandFactor = 5
)

// Cost is the penalty for entering a single cell.
// A zero cost is accepted and means free entry.
type Cost uint8

// Cell is a grid position. Row grows downward, Col grows rightward.
type Cell struct {
	Row, Col int
}

// neighborOffsets lists 4-directional moves as (dRow, dCol): N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// CostGrid is an immutable rectangular matrix of costs.
// Costs are stored row-major in a single slice sized at construction.
type CostGrid struct {
	height, width int
	costs         []Cost
}

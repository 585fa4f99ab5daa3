package costgrid

import (
	"fmt"
	"strings"
)

// New constructs a CostGrid from a non-empty, rectangular 2D slice.
// It copies the input into a flat buffer, so later changes to rows are not observed.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCostRange if any value exceeds MaxCost.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows [][]Cost) (*CostGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	costs := make([]Cost, 0, h*w)
	for r, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for c, v := range row {
			if v > MaxCost {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrCostRange, v, r, c)
			}
		}
		costs = append(costs, row...)
	}

	return &CostGrid{height: h, width: w, costs: costs}, nil
}

// Uniform returns a height×width grid in which every cell costs c.
func Uniform(height, width int, c Cost) (*CostGrid, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	if c > MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrCostRange, c)
	}
	costs := make([]Cost, height*width)
	for i := range costs {
		costs[i] = c
	}

	return &CostGrid{height: height, width: width, costs: costs}, nil
}

// Height returns the number of rows.
func (g *CostGrid) Height() int { return g.height }

// Width returns the number of columns.
func (g *CostGrid) Width() int { return g.width }

// Len returns the number of cells, Height×Width.
func (g *CostGrid) Len() int { return len(g.costs) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *CostGrid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// At returns the cost of entering c.
// Returns ErrOutOfBounds (wrapped with the coordinates) if c is outside the grid.
func (g *CostGrid) At(c Cell) (Cost, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, c.Row, c.Col, g.height, g.width)
	}

	return g.costs[g.Index(c)], nil
}

// Index maps c to its row-major index: Row*Width + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *CostGrid) Index(c Cell) int {
	return c.Row*g.width + c.Col
}

// CellOf converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *CostGrid) CellOf(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}

// CostAt returns the cost stored at row-major index idx.
// It panics on an out-of-range index, as a slice access would.
func (g *CostGrid) CostAt(idx int) Cost {
	return g.costs[idx]
}

// Neighbors returns the in-bounds 4-neighbours of c in N, E, S, W order.
// A corner yields 2 cells, an edge 3 and an interior cell 4.
func (g *CostGrid) Neighbors(c Cell) []Cell {
	return g.AppendNeighbors(make([]Cell, 0, len(neighborOffsets)), c)
}

// AppendNeighbors appends the in-bounds 4-neighbours of c to dst and returns
// the extended slice. Search loops reuse dst to avoid an allocation per cell.
func (g *CostGrid) AppendNeighbors(dst []Cell, c Cell) []Cell {
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Rows returns a deep copy of the grid as a 2D slice.
func (g *CostGrid) Rows() [][]Cost {
	rows := make([][]Cost, g.height)
	for r := range rows {
		rows[r] = make([]Cost, g.width)
		copy(rows[r], g.costs[r*g.width:(r+1)*g.width])
	}

	return rows
}

// Equal reports whether g and other have identical dimensions and costs.
func (g *CostGrid) Equal(other *CostGrid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i, v := range g.costs {
		if other.costs[i] != v {
			return false
		}
	}

	return true
}

// String renders the grid as digit rows separated by newlines,
// the same layout Parse accepts.
func (g *CostGrid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range g.costs[r*g.width : (r+1)*g.width] {
			sb.WriteByte('0' + byte(v))
		}
	}

	return sb.String()
}

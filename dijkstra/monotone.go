package dijkstra

import "github.com/katalvlaran/riskgrid/costgrid"

// MonotoneCost returns the cheapest top-left to bottom-right cost over routes
// that only move right or down, using a bottom-up dynamic program.
//
// This is NOT a shortest-path answer: when the cheapest route has to move up
// or left around an expensive region, MonotoneCost overestimates it. It is an
// upper bound on ShortestCost and equals it whenever some optimal route is
// monotone.
//
// Returns ErrNilGrid or ErrEmptyGrid for unusable input.
//
// Complexity: O(N) time, O(W) memory.
func MonotoneCost(g *costgrid.CostGrid) (int64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	h, w := g.Height(), g.Width()
	if h == 0 || w == 0 {
		return 0, ErrEmptyGrid
	}

	// row[c] holds the cheapest monotone cost from (r, c) to the bottom-right,
	// counting every entered cell after (r, c) itself.
	row := make([]int64, w)
	for r := h - 1; r >= 0; r-- {
		for c := w - 1; c >= 0; c-- {
			switch {
			case r == h-1 && c == w-1:
				row[c] = 0
			case r == h-1:
				row[c] = row[c+1] + int64(g.CostAt(g.Index(costgrid.Cell{Row: r, Col: c + 1})))
			case c == w-1:
				row[c] = row[c] + int64(g.CostAt(g.Index(costgrid.Cell{Row: r + 1, Col: c})))
			default:
				right := row[c+1] + int64(g.CostAt(g.Index(costgrid.Cell{Row: r, Col: c + 1})))
				down := row[c] + int64(g.CostAt(g.Index(costgrid.Cell{Row: r + 1, Col: c})))
				row[c] = min(right, down)
			}
		}
	}

	return row[0], nil
}

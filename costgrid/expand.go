package costgrid

import (
	"fmt"
	"math"
)

// Expand builds a grid factor times taller and wider than base by tiling it.
// The tile at tile-offset (ty, tx) adds ty+tx to every cost and wraps the
// result into [1,9]:
//
//	out(i, j) = ((base(i mod H, j mod W) - 1 + i/H + j/W) mod 9) + 1
//
// The formula applies to every tile, including the origin tile, where it is
// the identity for costs in [1,9]. A zero base cost stays zero in the origin
// tile and becomes d in tile distance d ≥ 1.
//
// Returns ErrNilGrid if base is nil, ErrInvalidFactor if factor ≤ 0 or the
// expanded cell count would overflow int.
// base is never modified; each call returns a fresh grid.
//
// Complexity: O(H·W·factor²) time and memory.
func Expand(base *CostGrid, factor int) (*CostGrid, error) {
	if base == nil {
		return nil, ErrNilGrid
	}
	if factor <= 0 {
		return nil, ErrInvalidFactor
	}
	if base.height == 0 || base.width == 0 {
		return &CostGrid{}, nil
	}
	if factor > math.MaxInt/base.height || factor > math.MaxInt/base.width ||
		base.height*factor > math.MaxInt/(base.width*factor) {
		return nil, fmt.Errorf("%w: %dx%d grid times %d overflows", ErrInvalidFactor, base.height, base.width, factor)
	}

	h, w := base.height*factor, base.width*factor
	costs := make([]Cost, h*w)
	for i := 0; i < h; i++ {
		srcRow := (i % base.height) * base.width
		tileRow := i / base.height
		out := costs[i*w : (i+1)*w]
		for j := range out {
			v := base.costs[srcRow+j%base.width]
			out[j] = wrapCost(v, tileRow+j/base.width)
		}
	}

	return &CostGrid{height: h, width: w, costs: costs}, nil
}

// wrapCost raises v by d and wraps the result into [1,9].
// Go's % keeps the sign of the dividend, so v=0, d=0 maps back to 0.
func wrapCost(v Cost, d int) Cost {
	return Cost((int(v)-1+d)%int(MaxCost) + 1)
}

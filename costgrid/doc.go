// Package costgrid provides an immutable rectangular grid of per-cell
// entry costs, the tiling transform that enlarges it, and a text parser.
//
// What:
//
//   - CostGrid stores Height×Width costs in one flat row-major slice.
//   - Cell addresses a grid position by (Row, Col).
//   - Neighbors enumerates the in-bounds 4-neighbours (N, E, S, W).
//   - Expand tiles a base grid factor×factor times, raising every tile's
//     costs by its Manhattan tile distance and wrapping back into [1,9].
//   - Parse reads a block of digit lines into a CostGrid.
//
// Complexity:
//
//   - New, Parse:    O(H×W) time and memory.
//   - At, Neighbors: O(1).
//   - Expand:        O(H×W×factor²) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCostRange:      a cost is above MaxCost.
//   - ErrOutOfBounds:    a Cell lies outside the grid.
//   - ErrInvalidFactor:  expansion factor is not positive or overflows int.
//   - ErrBadDigit:       a parsed character is not a decimal digit.
//
// Example:
//
//	g, _ := costgrid.ParseString("116\n138\n213")
//	big, _ := costgrid.Expand(g, costgrid.DefaultExpandFactor)
//	fmt.Println(big.Height(), big.Width()) // 15 15
package costgrid

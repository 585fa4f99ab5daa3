// Package dijkstra computes minimum-cost routes across a costgrid.CostGrid
// with Dijkstra's algorithm over the implicit 4-neighbour graph.
//
// Overview:
//
//   - Every cell is a vertex; every pair of orthogonally adjacent cells is
//     joined in both directions. Moving into cell v costs v's grid cost, so the
//     source cell's own cost is never counted.
//   - A min-heap frontier always settles the cheapest tentative cell next, so
//     routes that double back up or left are found as readily as monotone ones.
//   - The search stops as soon as the target cell is finalized.
//
// Key features:
//
//   - ShortestCost: the top-left to bottom-right cost, the common case.
//   - Functional options select another source or target, request the route
//     itself (WithReturnPath), cap the explored distance (WithMaxDistance) or
//     turn expensive cells into walls (WithWallCost).
//   - MonotoneCost: the right/down dynamic program. It only ever sees paths
//     that never move up or left, so it is an upper bound on ShortestCost and
//     is kept to compare against, not to answer queries.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N = Height×Width cells; each cell has at most
//     4 edges, so heap pushes are bounded by 4N.
//   - Space: O(N) for the distance table, cell states, predecessors and heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:     a nil *costgrid.CostGrid was passed.
//   - ErrEmptyGrid:   the grid has zero height or width.
//   - ErrOutOfBounds: the source or target lies outside the grid.
//   - ErrUnreachable: the frontier emptied (or hit MaxDistance) before the
//     target was settled. Without walls or a cap this cannot happen on a
//     non-empty grid, which is always connected.
//   - ErrBadMaxDistance, ErrBadWallCost: raised via panic by the option
//     constructors on invalid arguments.
//
// Thread safety:
//
//   - A CostGrid is immutable, so any number of searches may run over the same
//     grid concurrently. Each call owns its own distance table and frontier.
package dijkstra

// Package solver answers both questions asked of a risk map: the cheapest
// corner-to-corner cost of the map as given, and of the map tiled
// factor×factor by costgrid.Expand.
//
// Solve builds the enlarged grid, runs one dijkstra search per grid and
// returns a Report. The two searches share nothing but the read-only base
// grid, so WithParallel runs them on separate goroutines under an errgroup.
// Each call is tagged with a run id and logged through zerolog.
package solver

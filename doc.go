// Package riskgrid finds the lowest total risk of crossing a rectangular map
// of single-digit cell costs, from the top-left cell to the bottom-right.
//
// What is riskgrid?
//
//	A small, dependency-light toolkit that brings together:
//		• Cost grids: parse digit maps, bounds-checked access, 4-neighbour adjacency
//		• Tiling: expand a map factor×factor with wrapped (1..9) risk increments
//		• Shortest paths: Dijkstra over the implicit grid graph, optional route
//		• Baseline: right/down-only dynamic programming (an upper bound)
//		• Solver: base and expanded maps in one call, optionally in parallel
//
// Everything is organized under a handful of packages:
//
//	costgrid/      CostGrid, Cell, Parse, Expand
//	dijkstra/      ShortestCost, Dijkstra (options, Result), MonotoneCost
//	solver/        Solve: both parts with logging and a run id
//	cmd/riskgrid/  command line front end (flags, env, TOML/YAML config, watch mode)
//
// Quick ASCII example:
//
//	S 1 6
//	↓
//	1 3 8
//	↓
//	2→1→3      total 1+2+1+3 = 7
//
// The start cell's own cost is never counted.
//
//	go install github.com/katalvlaran/riskgrid/cmd/riskgrid@latest
package riskgrid

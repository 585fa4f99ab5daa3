package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/riskgrid/costgrid"
)

// ShortestCost returns the minimum sum of entered-cell costs over any
// 4-directional route from the top-left cell to the bottom-right cell of g.
// The top-left cell's own cost is not counted, so a 1×1 grid costs 0.
//
// Returns ErrNilGrid or ErrEmptyGrid for unusable input.
func ShortestCost(g *costgrid.CostGrid) (int64, error) {
	res, err := Dijkstra(g)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Dijkstra runs a single-source search over g and returns the cost of the
// cheapest route from Options.Source to Options.Target.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. g must have at least one cell (ErrEmptyGrid).
//  3. Source and Target must lie inside g (ErrOutOfBounds).
//
// The search settles cells cheapest-first and stops once Target is settled.
// If the frontier empties first, which needs walls or a distance cap, the
// result is ErrUnreachable.
//
// Complexity:
//
//   - Time:  O(N log N), N = cells
//   - Space: O(N)
func Dijkstra(g *costgrid.CostGrid, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Height() == 0 || g.Width() == 0 {
		return nil, ErrEmptyGrid
	}

	// 3) Resolve and validate endpoints.
	if !cfg.hasTarget {
		cfg.Target = costgrid.Cell{Row: g.Height() - 1, Col: g.Width() - 1}
	}
	if err := checkEndpoint(g, "source", cfg.Source); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "target", cfg.Target); err != nil {
		return nil, err
	}

	// 4) Prepare flat per-cell tables sized once for the whole run.
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		state:   make([]cellState, n),
		pq:      make(cellPQ, 0, n),
		nbuf:    make([]costgrid.Cell, 0, 4),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	// 5) Run.
	r.init()
	target := g.Index(cfg.Target)
	if !r.process(target) {
		return nil, fmt.Errorf("%w: (%d,%d) from (%d,%d)",
			ErrUnreachable, cfg.Target.Row, cfg.Target.Col, cfg.Source.Row, cfg.Source.Col)
	}

	res := &Result{Cost: r.dist[target], Settled: r.settled}
	if cfg.ReturnPath {
		res.Path = r.path(target)
	}

	return res, nil
}

// checkEndpoint wraps costgrid.ErrOutOfBounds with the role of the bad cell.
func checkEndpoint(g *costgrid.CostGrid, role string, c costgrid.Cell) error {
	if _, err := g.At(c); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutOfBounds, role, err)
	}

	return nil
}

// runner holds the mutable state for a single search.
// All tables are indexed by the grid's row-major cell index.
type runner struct {
	g       *costgrid.CostGrid // read-only within a search
	options Options
	dist    []int64     // best known distance from Source, Infinity if unknown
	state   []cellState // unvisited / tentative / finalized
	prev    []int       // predecessor index, -1 for none; nil unless ReturnPath
	pq      cellPQ      // lazy min-heap frontier
	nbuf    []costgrid.Cell
	settled int
}

// init sets every distance to Infinity, the source to 0, and seeds the frontier.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Infinity
	}
	for i := range r.prev {
		r.prev[i] = -1
	}

	src := r.g.Index(r.options.Source)
	r.dist[src] = 0
	r.state[src] = stateTentative
	heap.Init(&r.pq)
	heap.Push(&r.pq, cellItem{idx: src, dist: 0})
}

// process is the main loop: pop the cheapest tentative cell, finalize it,
// relax its neighbours. It reports whether target was finalized.
func (r *runner) process(target int) bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(cellItem)
		u := item.idx

		// Stale entry left behind by a later improvement.
		if r.state[u] == stateFinalized || item.dist > r.dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			return false
		}

		r.state[u] = stateFinalized
		r.settled++
		if u == target {
			return true
		}
		r.relax(u)
	}

	return false
}

// relax tries to improve every in-bounds neighbour of u through u.
// Entering v costs g.CostAt(v); walls are skipped.
func (r *runner) relax(u int) {
	du := r.dist[u]
	r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], r.g.CellOf(u))
	for _, c := range r.nbuf {
		v := r.g.Index(c)
		if r.state[v] == stateFinalized {
			continue
		}
		cost := r.g.CostAt(v)
		if r.options.WallCost > 0 && cost >= r.options.WallCost {
			continue
		}

		candidate := du + int64(cost)
		if candidate > r.options.MaxDistance || candidate >= r.dist[v] {
			continue
		}

		r.dist[v] = candidate
		r.state[v] = stateTentative
		if r.prev != nil {
			r.prev[v] = u
		}
		// Lazy decrease-key: the older entry for v stays in the heap and is
		// skipped when popped.
		heap.Push(&r.pq, cellItem{idx: v, dist: candidate})
	}
}

// path walks predecessors back from target and returns Source..Target.
func (r *runner) path(target int) []costgrid.Cell {
	var rev []int
	for at := target; at >= 0; at = r.prev[at] {
		rev = append(rev, at)
	}
	out := make([]costgrid.Cell, len(rev))
	for i, idx := range rev {
		out[len(rev)-1-i] = r.g.CellOf(idx)
	}

	return out
}

// cellItem is a frontier entry: a cell index and its distance when pushed.
type cellItem struct {
	idx  int
	dist int64
}

// cellPQ is a min-heap of cellItem ordered by dist ascending.
// Ties are broken arbitrarily; with positive entry costs the settled
// distances are the same either way.
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by smaller distance first.
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

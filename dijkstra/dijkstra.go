// Package dijkstra implements Dijkstra's label-setting shortest-path
// algorithm over a grid.Grid with non-negative per-cell entry costs.
//
// The unsettled pool is a min-heap with lazy decrease-key: relaxations push
// duplicate entries and stale ones are discarded at pop time. Ties between
// equal-distance cells settle in ascending arena index (row-major order);
// this tie-break is part of the observable contract and is what makes the
// settle sequence reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Run executes Dijkstra's algorithm from start to end on a private snapshot
// of g, applying any number of functional Options.
//
// The start cell is seeded at distance 0; every other cell starts at
// grid.Unreachable. Each iteration settles the unsettled cell with minimum
// distance (ties by ascending arena index), appends it to Order, and stops
// if it is the end cell. Settling relaxes every orthogonal neighbor that is
// not itself settled and not a wall: the cost to enter a neighbor is its
// Weight (or 1 under WithUnitCosts), and a strictly smaller candidate
// distance updates the neighbor's Dist and Prev. A neighbor may be relaxed
// several times before it settles. Walls are never relaxed into and never
// settled, so they never appear in Order.
//
// Heap exhaustion means every remaining cell is unreachable — the lazy heap
// only ever holds cells with finite distance, so running out of entries is
// exactly the "minimum distance is infinite" stop of the textbook pool scan.
//
// Returns ErrNilGrid, ErrOutOfBounds, ErrSameEndpoint, or ErrWallEndpoint
// for invalid input. Complexity: O(R×C log(R×C)), memory O(R×C).
func Run(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	// Own a fresh-reset snapshot; the caller's grid stays untouched.
	snap := g.Clone()
	snap.ResetForTraversal()

	n := snap.Len()
	r := &runner{
		snap: snap,
		opts: o,
		end:  snap.IndexOf(end),
		pq:   make(cellPQ, 0, n),
		res: &Result{
			Order: make([]grid.Coord, 0, n),
			Grid:  snap,
			Start: start,
			End:   end,
		},
	}
	r.init(snap.IndexOf(start))
	r.process()

	return r.res, nil
}

// validate applies the endpoint contract shared with the BFS engine.
func validate(g *grid.Grid, start, end grid.Coord) error {
	for _, c := range [2]grid.Coord{start, end} {
		if !g.Contains(c) {
			return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
		}
		if g.AtIndex(g.IndexOf(c)).Wall {
			return fmt.Errorf("%w: (%d,%d)", ErrWallEndpoint, c.Row, c.Col)
		}
	}
	if start == end {
		return fmt.Errorf("%w: (%d,%d)", ErrSameEndpoint, start.Row, start.Col)
	}

	return nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	snap *grid.Grid
	opts Options
	end  int
	pq   cellPQ
	res  *Result
}

// init seeds the heap with the start cell at distance 0.
func (r *runner) init(startIdx int) {
	r.snap.AtIndex(startIdx).Dist = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, cellItem{idx: startIdx, dist: 0})
}

// process settles cells in minimum-distance order until the end cell is
// settled or the pool exhausts.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(cellItem)
		cell := r.snap.AtIndex(item.idx)
		if cell.Visited {
			continue // stale lazy-decrease-key entry
		}

		// Settle: the distance is final. Record it in the sequence.
		cell.Visited = true
		c := r.snap.CoordOf(item.idx)
		r.res.Order = append(r.res.Order, c)
		r.opts.OnSettle(c, cell.Dist)

		if item.idx == r.end {
			return
		}
		r.relax(item.idx)
	}
}

// relax attempts to improve the distance of every unsettled open neighbor
// of idx, charging the neighbor's entry cost.
func (r *runner) relax(idx int) {
	dist := r.snap.AtIndex(idx).Dist
	for _, nb := range r.snap.Neighbors(idx) {
		cell := r.snap.AtIndex(nb)
		if cell.Visited || cell.Wall {
			continue
		}
		cost := cell.Weight
		if r.opts.UnitCosts {
			cost = grid.DefaultWeight
		}
		candidate := dist + cost
		if candidate >= cell.Dist {
			continue
		}
		cell.Dist = candidate
		cell.Prev = idx
		r.opts.OnRelax(r.snap.CoordOf(nb), candidate)
		heap.Push(&r.pq, cellItem{idx: nb, dist: candidate})
	}
}

// cellItem pairs an arena index with the distance it was pushed at.
type cellItem struct {
	idx  int
	dist int64
}

// cellPQ is a min-heap of cellItem ordered by distance, then by arena index
// ascending. The index tie-break keeps equal-distance settles deterministic
// in row-major order.
type cellPQ []cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }

func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Package bfs implements breadth-first search over a grid.Grid, producing
// the visitation sequence and predecessor tree that drive path animation.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	snap  *grid.Grid
	opts  Options
	queue []int
	end   int
	res   *Result
}

// Run executes breadth-first search from start to end on a private snapshot
// of g, applying any number of functional Options.
//
// The start cell is marked visited at distance 0 and enqueued. Each
// iteration dequeues the frontmost cell, settles it (appends to Order), and
// stops if it is the end cell. Otherwise its unvisited non-wall neighbors
// are enumerated in the fixed order up, down, left, right, marked visited
// immediately (so no cell is enqueued twice), given distance current+1 and
// the current cell as predecessor, and enqueued. The run ends when the end
// cell is settled or the queue empties; an empty queue means end is
// unreachable and the Order holds the full reachable set.
//
// Guarantees: Order is non-decreasing in distance from start, and the first
// settling of end carries the minimum edge count from start.
//
// Returns ErrNilGrid, ErrOutOfBounds, ErrSameEndpoint, or ErrWallEndpoint
// for invalid input. Complexity: O(rows×cols), memory O(rows×cols).
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
	w := &walker{
		snap:  snap,
		opts:  o,
		queue: make([]int, 0, n),
		end:   snap.IndexOf(end),
		res: &Result{
			Order: make([]grid.Coord, 0, n),
			Grid:  snap,
			Start: start,
			End:   end,
		},
	}

	// Seed the frontier with the start cell at distance 0, no predecessor.
	startIdx := snap.IndexOf(start)
	snap.AtIndex(startIdx).Dist = 0
	w.enqueue(startIdx)
	w.loop()

	return w.res, nil
}

// validate applies the endpoint contract shared with the Dijkstra engine.
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

// enqueue marks idx visited, fires OnEnqueue, and appends it to the queue.
// Dist and Prev must already be set by the caller.
func (w *walker) enqueue(idx int) {
	cell := w.snap.AtIndex(idx)
	cell.Visited = true
	w.opts.OnEnqueue(w.snap.CoordOf(idx), cell.Dist)
	w.queue = append(w.queue, idx)
}

// loop processes the queue until the end cell is settled or the frontier
// exhausts.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		idx := w.queue[0]
		w.queue = w.queue[1:]

		w.settle(idx)
		if idx == w.end {
			return
		}
		w.enqueueNeighbors(idx)
	}
}

// settle appends the cell to the visitation sequence and fires OnSettle.
func (w *walker) settle(idx int) {
	c := w.snap.CoordOf(idx)
	w.res.Order = append(w.res.Order, c)
	w.opts.OnSettle(c, w.snap.AtIndex(idx).Dist)
}

// enqueueNeighbors discovers the unvisited, non-wall orthogonal neighbors of
// idx in contract order, recording distance and predecessor before enqueuing.
func (w *walker) enqueueNeighbors(idx int) {
	dist := w.snap.AtIndex(idx).Dist
	for _, nb := range w.snap.Neighbors(idx) {
		cell := w.snap.AtIndex(nb)
		if cell.Visited || cell.Wall {
			continue
		}
		cell.Dist = dist + 1
		cell.Prev = idx
		w.enqueue(nb)
	}
}

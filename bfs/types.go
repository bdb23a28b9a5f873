// Package bfs defines options, errors, and the result type for breadth-first
// search over a grid.Grid.
package bfs

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("bfs: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("bfs: endpoint out of bounds")

	// ErrSameEndpoint is returned when start and end coincide.
	ErrSameEndpoint = errors.New("bfs: start and end are the same cell")

	// ErrWallEndpoint is returned when start or end sits on a wall.
	ErrWallEndpoint = errors.New("bfs: endpoint is a wall")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to customize BFS execution. Hooks are observation
// points for the animation layer; none may mutate the grid.
type Options struct {
	// OnEnqueue is called when a cell is discovered and enqueued,
	// with its distance from the start.
	OnEnqueue func(c grid.Coord, dist int64)

	// OnSettle is called when a cell is dequeued and appended to the
	// visitation sequence.
	OnSettle func(c grid.Coord, dist int64)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(grid.Coord, int64) {},
		OnSettle:  func(grid.Coord, int64) {},
	}
}

// WithOnEnqueue registers a callback to run when a cell is enqueued.
func WithOnEnqueue(fn func(c grid.Coord, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnSettle registers a callback to run when a cell is settled.
func WithOnSettle(fn func(c grid.Coord, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result holds the outcome of one BFS run:
//   - Order: cells in settle sequence — the animation's exploration phase.
//   - Grid: the settled snapshot (distances, predecessors, visited flags).
//   - Start, End: the endpoints the run was invoked with.
//
// The snapshot belongs to the run; the caller's grid is never mutated.
type Result struct {
	Order []grid.Coord
	Grid  *grid.Grid
	Start grid.Coord
	End   grid.Coord
}

// Visited returns the number of settled cells.
func (r *Result) Visited() int { return len(r.Order) }

// Reachable reports whether the run settled the end cell.
func (r *Result) Reachable() bool { return r.Grid.Reachable(r.End) }

// Path reconstructs the start→end path from the settled snapshot and marks
// it on the snapshot's cells. When end was unreachable the result is the
// singleton [End]; check Reachable first.
func (r *Result) Path() []grid.Coord {
	path, _ := r.Grid.PathTo(r.End) // End was bounds-checked by Run
	r.Grid.MarkPath(path)

	return path
}

// PathLen returns the cell count of the reconstructed path, or 0 when end
// was unreachable.
func (r *Result) PathLen() int {
	if !r.Reachable() {
		return 0
	}

	return len(r.Path())
}

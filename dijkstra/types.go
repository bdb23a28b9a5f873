// Package dijkstra defines options, errors, and the result type for
// Dijkstra's algorithm over a grid.Grid.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for Dijkstra execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: endpoint out of bounds")

	// ErrSameEndpoint is returned when start and end coincide.
	ErrSameEndpoint = errors.New("dijkstra: start and end are the same cell")

	// ErrWallEndpoint is returned when start or end sits on a wall.
	ErrWallEndpoint = errors.New("dijkstra: endpoint is a wall")
)

// Option configures Dijkstra behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for one run.
type Options struct {
	// UnitCosts ignores cell weights and charges 1 to enter any open cell.
	// Distances then equal BFS distances exactly, though the settle order
	// of equal-distance cells may differ between the two engines.
	UnitCosts bool

	// OnSettle is called when a cell's distance is finalized and the cell
	// is appended to the visitation sequence.
	OnSettle func(c grid.Coord, dist int64)

	// OnRelax is called whenever a neighbor's tentative distance improves.
	OnRelax func(c grid.Coord, dist int64)
}

// DefaultOptions returns Options with weighted costs and no-op hooks.
func DefaultOptions() Options {
	return Options{
		UnitCosts: false,
		OnSettle:  func(grid.Coord, int64) {},
		OnRelax:   func(grid.Coord, int64) {},
	}
}

// WithUnitCosts switches the run to unweighted mode: every open cell costs
// 1 to enter regardless of its Weight.
func WithUnitCosts() Option {
	return func(o *Options) { o.UnitCosts = true }
}

// WithOnSettle registers a callback to run when a cell is settled.
func WithOnSettle(fn func(c grid.Coord, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback to run when a relaxation improves a
// neighbor's distance.
func WithOnRelax(fn func(c grid.Coord, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Result holds the outcome of one Dijkstra run, shaped identically to the
// BFS result so callers can drive either engine through the same animation
// path: Order is the settle sequence, Grid the settled snapshot.
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

// Path reconstructs the minimum-cost start→end path from the settled
// snapshot and marks it on the snapshot's cells. When end was unreachable
// the result is the singleton [End]; check Reachable first.
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

// Cost returns the settled distance of the end cell, or grid.Unreachable.
func (r *Result) Cost() int64 {
	return r.Grid.AtIndex(r.Grid.IndexOf(r.End)).Dist
}

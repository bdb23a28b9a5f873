// Package grid defines the Cell and Grid types shared by every traversal
// engine and maze generator in gridpath, plus sentinel errors for grid
// construction and terrain editing.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates rows or cols below the minimum of 1.
	ErrBadDimensions = errors.New("grid: rows and cols must each be at least 1")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrRoleCell indicates a terrain edit aimed at a start or end cell.
	ErrRoleCell = errors.New("grid: cell holds a start/end role")
)

// Unreachable is the sentinel distance of a cell no traversal has relaxed.
// It plays the role of +∞; a finished run leaves it intact on every cell the
// frontier never reached.
const Unreachable int64 = math.MaxInt64

// NoPrev marks a cell without a recorded predecessor.
const NoPrev = -1

// DefaultWeight is the cost to enter an unweighted cell.
const DefaultWeight int64 = 1

// Coord addresses a cell by (row, col), both 0-indexed.
type Coord struct {
	Row, Col int
}

// Cell is the atomic grid unit. Terrain and role flags persist across
// traversal runs; the bookkeeping fields (Visited, Dist, Prev, Path) belong
// to whichever run or reconstruction is in progress and are wiped by
// ResetForTraversal.
type Cell struct {
	// Row and Col are the cell's fixed position within its Grid.
	Row, Col int

	// Wall marks the cell impassable.
	Wall bool

	// Weighted marks the cell costly to enter; Weight holds the entry cost.
	// Weight is DefaultWeight whenever Weighted is false.
	Weighted bool
	Weight   int64

	// Start and End are role flags. At most one cell of a Grid holds each
	// role, and a role cell is never a wall or weighted.
	Start, End bool

	// Visited reports whether a traversal has discovered the cell.
	Visited bool

	// Dist is the best known distance from the start cell, Unreachable
	// until relaxed.
	Dist int64

	// Prev is the arena index of the cell this one was reached from, or
	// NoPrev. Predecessor links form a tree rooted at the start cell.
	Prev int

	// Path marks membership in the last reconstructed path.
	Path bool
}

// Grid is a rectangular arena of Cells in row-major order. Dimensions are
// fixed at construction. Predecessors are stored as arena indices rather
// than live pointers, so a Grid is self-contained and cheap to clone.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// neighborOffsets lists the orthogonal neighbor deltas in the fixed
// enumeration order up, down, left, right. This order is a contract:
// it fixes the visitation order of both engines and therefore the
// appearance of any animation replaying their output.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

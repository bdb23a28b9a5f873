package grid

import (
	"fmt"
	"strings"
)

// New constructs a rows×cols Grid of fresh cells: no terrain, no roles,
// weight DefaultWeight, distance Unreachable, no predecessor.
// Returns ErrBadDimensions if either dimension is below 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for i := range g.cells {
		g.cells[i] = Cell{
			Row:    i / cols,
			Col:    i % cols,
			Weight: DefaultWeight,
			Dist:   Unreachable,
			Prev:   NoPrev,
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total cell count.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether c lies within the grid.
func (g *Grid) Contains(c Coord) bool {
	return g.InBounds(c.Row, c.Col)
}

// Index maps (row, col) to the cell's row-major arena index.
// Bounds are the caller's responsibility.
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// IndexOf maps a Coord to its arena index.
func (g *Grid) IndexOf(c Coord) int {
	return g.Index(c.Row, c.Col)
}

// CoordOf converts an arena index back to a Coord.
func (g *Grid) CoordOf(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the cell at (row, col), or nil when out of bounds.
// The pointer aliases grid storage; terrain edits through it are visible
// to subsequent traversals.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}

	return &g.cells[g.Index(row, col)]
}

// AtIndex returns the cell at the given arena index.
// Bounds are the caller's responsibility.
func (g *Grid) AtIndex(idx int) *Cell {
	return &g.cells[idx]
}

// Neighbors returns the arena indices of the up-to-4 orthogonal neighbors of
// idx, clipped at grid bounds, in the fixed contract order up, down, left,
// right. Walls are included; excluding them is the engine's decision.
// Complexity: O(1), one small allocation.
func (g *Grid) Neighbors(idx int) []int {
	c := g.CoordOf(idx)
	out := make([]int, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := c.Row+d[0], c.Col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		out = append(out, g.Index(nr, nc))
	}

	return out
}

// Cells returns a copy of the arena in row-major order, for render layers
// that want to read every cell without aliasing grid storage.
// Complexity: O(rows×cols).
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)

	return out
}

// ResetForTraversal returns every cell's bookkeeping to its initial state:
// unvisited, distance Unreachable, no predecessor, no path mark. Terrain,
// roles, and weights are untouched. Idempotent.
// Complexity: O(rows×cols).
func (g *Grid) ResetForTraversal() {
	for i := range g.cells {
		g.cells[i].Visited = false
		g.cells[i].Dist = Unreachable
		g.cells[i].Prev = NoPrev
		g.cells[i].Path = false
	}
}

// Clone returns an independent deep copy of the grid.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: make([]Cell, len(g.cells)),
	}
	copy(cp.cells, g.cells)

	return cp
}

// SetWall makes the cell at c a wall, clearing any weight on it.
// Returns ErrOutOfBounds for a bad coordinate and ErrRoleCell when the cell
// holds a start/end role; role cells stay open.
func (g *Grid) SetWall(c Coord) error {
	cell, err := g.editable(c)
	if err != nil {
		return err
	}
	cell.Wall = true
	cell.Weighted = false
	cell.Weight = DefaultWeight

	return nil
}

// ClearWall removes a wall at c. Clearing an open cell is a no-op.
func (g *Grid) ClearWall(c Coord) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}
	g.cells[g.IndexOf(c)].Wall = false

	return nil
}

// SetWeight makes the cell at c weighted with the given positive entry cost,
// clearing any wall on it. Non-positive costs are rejected.
func (g *Grid) SetWeight(c Coord, weight int64) error {
	if weight < 1 {
		return fmt.Errorf("grid: weight must be positive, got %d", weight)
	}
	cell, err := g.editable(c)
	if err != nil {
		return err
	}
	cell.Wall = false
	cell.Weighted = true
	cell.Weight = weight

	return nil
}

// ClearWeight returns the cell at c to the default entry cost.
func (g *Grid) ClearWeight(c Coord) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}
	cell := &g.cells[g.IndexOf(c)]
	cell.Weighted = false
	cell.Weight = DefaultWeight

	return nil
}

// SetStart assigns the start role to the cell at c, stripping walls and
// weights from it and removing the role from any previous holder.
// Exactly one cell holds the role afterwards.
func (g *Grid) SetStart(c Coord) error {
	return g.setRole(c, func(cell *Cell, on bool) { cell.Start = on })
}

// SetEnd assigns the end role to the cell at c; same exclusivity contract
// as SetStart.
func (g *Grid) SetEnd(c Coord) error {
	return g.setRole(c, func(cell *Cell, on bool) { cell.End = on })
}

// Start returns the coordinate of the start cell, if any.
func (g *Grid) Start() (Coord, bool) {
	return g.findRole(func(cell *Cell) bool { return cell.Start })
}

// End returns the coordinate of the end cell, if any.
func (g *Grid) End() (Coord, bool) {
	return g.findRole(func(cell *Cell) bool { return cell.End })
}

// editable fetches the cell at c for a terrain edit, rejecting bad
// coordinates and role cells.
func (g *Grid) editable(c Coord) (*Cell, error) {
	if !g.Contains(c) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}
	cell := &g.cells[g.IndexOf(c)]
	if cell.Start || cell.End {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrRoleCell, c.Row, c.Col)
	}

	return cell, nil
}

func (g *Grid) setRole(c Coord, set func(*Cell, bool)) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}
	// Move the role off its previous holder before assigning it.
	for i := range g.cells {
		set(&g.cells[i], false)
	}
	cell := &g.cells[g.IndexOf(c)]
	cell.Wall = false
	cell.Weighted = false
	cell.Weight = DefaultWeight
	set(cell, true)

	return nil
}

func (g *Grid) findRole(match func(*Cell) bool) (Coord, bool) {
	for i := range g.cells {
		if match(&g.cells[i]) {
			return g.CoordOf(i), true
		}
	}

	return Coord{}, false
}

// String renders the grid as ASCII, one rune per cell:
// 'S' start, 'E' end, '#' wall, 'o' weighted, '*' path, '.' open.
// Rows are newline-separated. Intended for debugging and examples.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.cells[g.Index(r, c)]
			switch {
			case cell.Start:
				b.WriteByte('S')
			case cell.End:
				b.WriteByte('E')
			case cell.Wall:
				b.WriteByte('#')
			case cell.Path:
				b.WriteByte('*')
			case cell.Weighted:
				b.WriteByte('o')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

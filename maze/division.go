package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// Division generates a maze by recursive division and additionally returns
// every wall placement in emission order, for callers that animate wall
// construction instead of presenting the finished grid.
//
// The field starts fully open. The border is emitted first (clockwise from
// the top-left corner), then the interior is split recursively: a single
// wall spans the current region — horizontal when the region is taller than
// or as tall as it is wide, vertical otherwise — with exactly one randomly
// placed gap, and both sub-regions recurse. Wall lines sit at odd offsets
// from the region edge and gaps at even offsets, which keeps every open
// cell reachable. A region too small to hold a wall line is degenerate and
// stops.
//
// Any wall cell that would coincide with start or end is skipped during
// emission (not placed, not recorded), so both endpoints are always open.
// An endpoint sitting on a wall intersection (even row and even column
// inside the interior) can still end up enclosed by the four wall arms
// around it; a repair pass then carves the shortest straight corridor from
// the endpoint to an open cell and drops the carved cells from the emission
// list, so both endpoints are always mutually reachable and re-applying the
// returned emission list to a blank grid with the same roles reproduces the
// maze; see Apply.
//
// Both endpoints must lie strictly inside the border ring (which implies
// rows and cols of at least 3); a border endpoint could be sealed into a
// corner, voiding the reachability guarantee, and is rejected with
// ErrBadEndpoint.
//
// Complexity: O(rows×cols).
func Division(rows, cols int, start, end grid.Coord, opts ...Option) (*grid.Grid, []grid.Coord, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if err = validate(rows, cols, start, end); err != nil {
		return nil, nil, err
	}
	for _, c := range [2]grid.Coord{start, end} {
		if c.Row < 1 || c.Row > rows-2 || c.Col < 1 || c.Col > cols-2 {
			return nil, nil, fmt.Errorf("%w: (%d,%d) must lie inside the border ring", ErrBadEndpoint, c.Row, c.Col)
		}
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	_ = g.SetStart(start)
	_ = g.SetEnd(end)

	d := &divider{g: g, rng: grid.RNGFromSeed(o.Seed)}
	d.borders()
	d.divide(1, 1, rows-2, cols-2)
	d.ensureReachable(start)
	d.ensureReachable(end)

	return g, d.emitted, nil
}

// Apply places walls on g in the given emission order, skipping role cells.
// Replaying the wall list from Division onto a blank grid with the same
// start/end reproduces the generated maze. Returns grid.ErrOutOfBounds for
// a coordinate outside g.
func Apply(g *grid.Grid, walls []grid.Coord) error {
	for _, c := range walls {
		if !g.Contains(c) {
			return fmt.Errorf("%w: (%d,%d)", grid.ErrOutOfBounds, c.Row, c.Col)
		}
		cell := g.At(c.Row, c.Col)
		if cell.Start || cell.End {
			continue
		}
		cell.Wall = true
	}

	return nil
}

// divider holds the mutable state of one recursive-division run.
type divider struct {
	g       *grid.Grid
	rng     *rand.Rand
	emitted []grid.Coord
}

// wall places a wall at (r, c) and records it, unless the cell holds a
// start/end role.
func (d *divider) wall(r, c int) {
	cell := d.g.At(r, c)
	if cell.Start || cell.End {
		return
	}
	cell.Wall = true
	d.emitted = append(d.emitted, grid.Coord{Row: r, Col: c})
}

// borders emits the perimeter clockwise from the top-left corner.
func (d *divider) borders() {
	rows, cols := d.g.Rows(), d.g.Cols()
	for c := 0; c < cols; c++ {
		d.wall(0, c)
	}
	for r := 1; r < rows; r++ {
		d.wall(r, cols-1)
	}
	for c := cols - 2; c >= 0; c-- {
		d.wall(rows-1, c)
	}
	for r := rows - 2; r >= 1; r-- {
		d.wall(r, 0)
	}
}

// ensureReachable repairs an endpoint that the role-skip left open but
// enclosed: when every orthogonal neighbor is a wall, the shortest straight
// corridor to an open cell is carved and its cells retracted from the
// emission list. Ties between equally short corridors resolve in the fixed
// direction order up, down, left, right, keeping the layout deterministic.
//
// Only an endpoint at a wall intersection can need this: the gap of every
// emitted wall flanks open cells, so any endpoint with one open neighbor is
// already connected to the rest of the open interior.
func (d *divider) ensureReachable(c grid.Coord) {
	for _, nb := range d.g.Neighbors(d.g.IndexOf(c)) {
		if !d.g.AtIndex(nb).Wall {
			return
		}
	}

	// Each wall arm around the endpoint carries a gap somewhere along its
	// line, so at least one straight walk reaches an open cell. A walk may
	// terminate at the other endpoint, which could itself be enclosed;
	// since distinct endpoints share at most one grid line, a walk ending
	// on a gap cell exists in the perpendicular direction, so role-cell
	// terminals are discarded.
	var best []grid.Coord
	for _, dir := range directions {
		corridor, ok := straightWalk(d.g, c, dir)
		if !ok {
			continue
		}
		steps := len(corridor) + 1
		terminal := d.g.At(c.Row+steps*dir[0], c.Col+steps*dir[1])
		if terminal.Start || terminal.End {
			continue
		}
		if best == nil || len(corridor) < len(best) {
			best = corridor
		}
	}
	for _, w := range best {
		d.g.At(w.Row, w.Col).Wall = false
		d.retract(w)
	}
}

// retract removes a placement from the emission list after its wall has been
// carved away during endpoint repair.
func (d *divider) retract(c grid.Coord) {
	for i, e := range d.emitted {
		if e == c {
			d.emitted = append(d.emitted[:i], d.emitted[i+1:]...)
			return
		}
	}
}

// divide splits the open region bounded inclusively by (top,left) and
// (bottom,right) with one gapped wall and recurses into both halves.
//
// Wall lines are chosen among odd offsets from the region edge and gaps
// among even offsets; the surrounding walls of the region therefore always
// meet the new wall at a closed cell, and the single gap is the only way
// between the two halves.
func (d *divider) divide(top, left, bottom, right int) {
	height, width := bottom-top+1, right-left+1
	if height < 1 || width < 1 {
		return
	}

	// Orientation follows the longer dimension; a square region splits
	// horizontally, matching its proportions to the taller-or-equal rule.
	if height >= width {
		if height < 3 {
			return // no room for a wall line plus both halves
		}
		wallRow := top + 1 + 2*d.rng.Intn((bottom-top-1)/2+1)
		gapCol := left + 2*d.rng.Intn((right-left)/2+1)
		for c := left; c <= right; c++ {
			if c == gapCol {
				continue
			}
			d.wall(wallRow, c)
		}
		d.divide(top, left, wallRow-1, right)
		d.divide(wallRow+1, left, bottom, right)

		return
	}

	if width < 3 {
		return
	}
	wallCol := left + 1 + 2*d.rng.Intn((right-left-1)/2+1)
	gapRow := top + 2*d.rng.Intn((bottom-top)/2+1)
	for r := top; r <= bottom; r++ {
		if r == gapRow {
			continue
		}
		d.wall(r, wallCol)
	}
	d.divide(top, left, bottom, wallCol-1)
	d.divide(top, wallCol+1, bottom, right)
}

package maze

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// Backtracker generates a perfect maze by randomized depth-first carving.
//
// The generator starts from an all-wall field and works on the lattice of
// cells at even (row, col) coordinates, spaced 2 apart. An explicit stack
// drives the carve: peek the current lattice cell, pick a random unvisited
// lattice neighbor 2 cells away, open the intermediate wall cell and the
// destination, push; pop when no unvisited neighbor remains. The carved
// passages form a spanning tree of the lattice — exactly one simple path
// between any two lattice cells.
//
// Start and end need not sit on the lattice, so a repair step follows:
// each endpoint is connected to the nearest existing passage by carving
// outward in a random direction until an open cell is hit, and then a
// 1-cell ring around the endpoint is opened. The repair can introduce a
// short cycle near start/end; that is tolerated for solvability. Start and
// end are guaranteed open, role-flagged, and mutually reachable.
//
// Complexity: O(rows×cols).
func Backtracker(rows, cols int, start, end grid.Coord, opts ...Option) (*grid.Grid, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(rows, cols, start, end); err != nil {
		return nil, err
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.At(r, c).Wall = true
		}
	}

	rng := grid.RNGFromSeed(o.Seed)
	carveLattice(g, rng)

	_ = g.SetStart(start)
	_ = g.SetEnd(end)

	// Attach each endpoint to the carved tree first; the ring is opened
	// afterwards so the repair walk cannot stop on a ring cell that leads
	// nowhere.
	connectToPassage(g, start, rng)
	connectToPassage(g, end, rng)
	openRing(g, start)
	openRing(g, end)

	return g, nil
}

// carveLattice opens every lattice cell (even row, even col) and a spanning
// tree of connections between them via randomized DFS with an explicit
// stack.
func carveLattice(g *grid.Grid, rng *rand.Rand) {
	rows, cols := g.Rows(), g.Cols()
	visited := make([]bool, g.Len())

	root := g.Index(0, 0)
	visited[root] = true
	g.AtIndex(root).Wall = false
	stack := []int{root}

	for len(stack) > 0 {
		cur := g.CoordOf(stack[len(stack)-1])

		// Unvisited lattice neighbors 2 cells away, in a random order.
		next := make([]grid.Coord, 0, len(directions))
		for _, d := range directions {
			nr, nc := cur.Row+2*d[0], cur.Col+2*d[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			if !visited[g.Index(nr, nc)] {
				next = append(next, grid.Coord{Row: nr, Col: nc})
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1] // dead end: backtrack
			continue
		}

		dest := next[rng.Intn(len(next))]
		mid := grid.Coord{Row: (cur.Row + dest.Row) / 2, Col: (cur.Col + dest.Col) / 2}
		g.AtIndex(g.IndexOf(mid)).Wall = false
		destIdx := g.IndexOf(dest)
		g.AtIndex(destIdx).Wall = false
		visited[destIdx] = true
		stack = append(stack, destIdx)
	}
}

// connectToPassage carves a straight corridor from the endpoint outward in
// a random direction until an open cell is hit. Directions whose straight
// walk would leave the grid before reaching a passage are discarded; if all
// four fail, the endpoint is snapped to its nearest lattice cell (at most
// two carved cells away), which is always open.
func connectToPassage(g *grid.Grid, from grid.Coord, rng *rand.Rand) {
	order := rng.Perm(len(directions))
	for _, di := range order {
		d := directions[di]
		if corridor, ok := straightWalk(g, from, d); ok {
			for _, c := range corridor {
				g.AtIndex(g.IndexOf(c)).Wall = false
			}

			return
		}
	}

	// Fallback: step to the nearest even row, then the nearest even column.
	r, c := from.Row, from.Col
	if r%2 == 1 {
		r--
	}
	g.At(r, from.Col).Wall = false
	if c%2 == 1 {
		c--
	}
	g.At(r, c).Wall = false
}

// straightWalk collects the wall cells between from (exclusive) and the
// first open cell in direction d. The boolean is false when the walk leaves
// the grid before reaching a passage.
func straightWalk(g *grid.Grid, from grid.Coord, d [2]int) ([]grid.Coord, bool) {
	var corridor []grid.Coord
	r, c := from.Row+d[0], from.Col+d[1]
	for g.InBounds(r, c) {
		if !g.At(r, c).Wall {
			return corridor, true
		}
		corridor = append(corridor, grid.Coord{Row: r, Col: c})
		r, c = r+d[0], c+d[1]
	}

	return nil, false
}

// openRing clears the up-to-8 cells surrounding an endpoint, keeping the
// immediate area visually open. Role cells are already open and are left
// alone.
func openRing(g *grid.Grid, around grid.Coord) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			cell := g.At(around.Row+dr, around.Col+dc)
			if cell == nil || cell.Start || cell.End {
				continue
			}
			cell.Wall = false
		}
	}
}

package grid

import "fmt"

// PathTo reconstructs the shortest path ending at end by walking predecessor
// links backward until a cell with no recorded predecessor, then reversing.
// On a settled grid the walk terminates at the start cell and the result runs
// start→end inclusive. When end was never reached the result degenerates to
// the singleton [end]; callers must check Reachable(end) before trusting a
// one-cell path. Returns ErrOutOfBounds for a bad coordinate.
// Complexity: O(path length).
func (g *Grid) PathTo(end Coord) ([]Coord, error) {
	if !g.Contains(end) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, end.Row, end.Col)
	}
	path := []Coord{}
	for idx := g.IndexOf(end); idx != NoPrev; idx = g.cells[idx].Prev {
		path = append(path, g.CoordOf(idx))
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Reachable reports whether a traversal settled a finite distance on end.
// This is the "path exists" signal: PathTo alone cannot distinguish a genuine
// one-cell path from an unreached end cell.
func (g *Grid) Reachable(end Coord) bool {
	if !g.Contains(end) {
		return false
	}

	return g.cells[g.IndexOf(end)].Dist != Unreachable
}

// MarkPath clears every Path flag, then sets it on each cell of path.
// Coordinates outside the grid are ignored. The flag is presentation
// bookkeeping owned by reconstruction, not by the traversal engines.
// Complexity: O(rows×cols + path length).
func (g *Grid) MarkPath(path []Coord) {
	for i := range g.cells {
		g.cells[i].Path = false
	}
	for _, c := range path {
		if g.Contains(c) {
			g.cells[g.IndexOf(c)].Path = true
		}
	}
}

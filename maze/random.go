package maze

import "github.com/katalvlaran/gridpath/grid"

// Random generates a rows×cols grid where each non-role cell independently
// becomes a wall with probability Options.WallDensity (0.30 by default).
// Start and end always end up open with their roles set; nothing else is
// guaranteed — the layout may be unsolvable.
//
// Cells are rolled in row-major order, so a given seed always yields the
// same layout. Complexity: O(rows×cols).
func Random(rows, cols int, start, end grid.Coord, opts ...Option) (*grid.Grid, error) {
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
	_ = g.SetStart(start)
	_ = g.SetEnd(end)

	rng := grid.RNGFromSeed(o.Seed)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := g.At(r, c)
			if cell.Start || cell.End {
				continue
			}
			if rng.Float64() < o.WallDensity {
				cell.Wall = true
			}
		}
	}

	return g, nil
}

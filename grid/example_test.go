package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleGrid_String paints a small arena by hand and renders it:
// 'S' start, 'E' end, '#' wall, 'o' weighted, '.' open.
func ExampleGrid_String() {
	g, _ := grid.New(3, 4)
	_ = g.SetStart(grid.Coord{Row: 0, Col: 0})
	_ = g.SetEnd(grid.Coord{Row: 2, Col: 3})
	_ = g.SetWall(grid.Coord{Row: 0, Col: 2})
	_ = g.SetWall(grid.Coord{Row: 1, Col: 2})
	_ = g.SetWeight(grid.Coord{Row: 2, Col: 1}, 5)

	fmt.Print(g.String())
	// Output:
	// S.#.
	// ..#.
	// .o.E
}

// ExampleGrid_PathTo reconstructs a path from hand-settled predecessor
// links, the way an engine's Result does internally.
func ExampleGrid_PathTo() {
	g, _ := grid.New(1, 4)
	for i := 1; i < 4; i++ {
		g.AtIndex(i).Prev = i - 1
		g.AtIndex(i).Dist = int64(i)
	}
	g.AtIndex(0).Dist = 0

	path, _ := g.PathTo(grid.Coord{Row: 0, Col: 3})
	fmt.Println(len(path), g.Reachable(grid.Coord{Row: 0, Col: 3}))
	// Output:
	// 4 true
}

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleRun traverses an open 3×3 grid corner to corner. Every cell is
// explored before the far corner settles, and the shortest path spans
// Manhattan distance + 1 cells.
func ExampleRun() {
	g, _ := grid.New(3, 3)
	start := grid.Coord{Row: 0, Col: 0}
	end := grid.Coord{Row: 2, Col: 2}

	res, err := bfs.Run(g, start, end)
	if err != nil {
		fmt.Println("bfs failed:", err)
		return
	}
	fmt.Println("visited:", res.Visited())
	fmt.Println("reachable:", res.Reachable())
	fmt.Println("path cells:", res.PathLen())
	// Output:
	// visited: 9
	// reachable: true
	// path cells: 5
}

// ExampleRun_unreachable shows the no-path signal: the run is not an
// error, the visitation sequence is the reachable set, and the degenerate
// path holds only the end cell.
func ExampleRun_unreachable() {
	g, _ := grid.New(1, 3)
	_ = g.SetWall(grid.Coord{Row: 0, Col: 1})

	res, _ := bfs.Run(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 2})
	fmt.Println("reachable:", res.Reachable())
	fmt.Println("visited:", res.Visited())
	fmt.Println("degenerate path:", len(res.Path()))
	// Output:
	// reachable: false
	// visited: 1
	// degenerate path: 1
}

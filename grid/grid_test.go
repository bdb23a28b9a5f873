package grid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"NegativeRows", -1, 5},
		{"NegativeCols", 5, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.New(tc.rows, tc.cols); !errors.Is(err, grid.ErrBadDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestNew_FreshCells checks the initial state of every cell.
func TestNew_FreshCells(t *testing.T) {
	g, err := grid.New(2, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 || g.Len() != 6 {
		t.Fatalf("dimensions = %d×%d len %d; want 2×3 len 6", g.Rows(), g.Cols(), g.Len())
	}
	for i := 0; i < g.Len(); i++ {
		cell := g.AtIndex(i)
		c := g.CoordOf(i)
		if cell.Row != c.Row || cell.Col != c.Col {
			t.Errorf("cell %d position (%d,%d) disagrees with arena coord (%d,%d)",
				i, cell.Row, cell.Col, c.Row, c.Col)
		}
		if cell.Wall || cell.Weighted || cell.Start || cell.End || cell.Visited || cell.Path {
			t.Errorf("cell %d has flags set on a fresh grid: %+v", i, *cell)
		}
		if cell.Weight != grid.DefaultWeight {
			t.Errorf("cell %d weight = %d; want %d", i, cell.Weight, grid.DefaultWeight)
		}
		if cell.Dist != grid.Unreachable {
			t.Errorf("cell %d dist = %d; want Unreachable", i, cell.Dist)
		}
		if cell.Prev != grid.NoPrev {
			t.Errorf("cell %d prev = %d; want NoPrev", i, cell.Prev)
		}
	}
}

// TestNeighbors_OrderContract locks the up, down, left, right enumeration
// order that both engines (and therefore every animation) depend on.
func TestNeighbors_OrderContract(t *testing.T) {
	g, _ := grid.New(3, 3)

	// Center cell (1,1): all four neighbors, in contract order.
	want := []int{
		g.Index(0, 1), // up
		g.Index(2, 1), // down
		g.Index(1, 0), // left
		g.Index(1, 2), // right
	}
	if got := g.Neighbors(g.Index(1, 1)); !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(center) = %v; want %v", got, want)
	}

	// Top-left corner: only down and right, still in contract order.
	want = []int{g.Index(1, 0), g.Index(0, 1)}
	if got := g.Neighbors(g.Index(0, 0)); !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(corner) = %v; want %v", got, want)
	}

	// Bottom edge (2,1): up, left, right.
	want = []int{g.Index(1, 1), g.Index(2, 0), g.Index(2, 2)}
	if got := g.Neighbors(g.Index(2, 1)); !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(edge) = %v; want %v", got, want)
	}
}

// TestResetForTraversal_Idempotent verifies that reset wipes bookkeeping,
// preserves terrain, and stabilizes after one application.
func TestResetForTraversal_Idempotent(t *testing.T) {
	g, _ := grid.New(2, 2)
	if err := g.SetWall(grid.Coord{Row: 0, Col: 1}); err != nil {
		t.Fatalf("SetWall: %v", err)
	}
	if err := g.SetWeight(grid.Coord{Row: 1, Col: 0}, 4); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}
	// Simulate a finished run.
	cell := g.At(1, 1)
	cell.Visited = true
	cell.Dist = 7
	cell.Prev = 0
	cell.Path = true

	g.ResetForTraversal()
	once := g.Clone()
	g.ResetForTraversal()

	for i := 0; i < g.Len(); i++ {
		a, b := once.AtIndex(i), g.AtIndex(i)
		if *a != *b {
			t.Fatalf("reset not idempotent at %d: %+v vs %+v", i, *a, *b)
		}
		if b.Visited || b.Path || b.Dist != grid.Unreachable || b.Prev != grid.NoPrev {
			t.Errorf("cell %d bookkeeping not initial: %+v", i, *b)
		}
	}
	if !g.At(0, 1).Wall {
		t.Error("reset stripped a wall")
	}
	if w := g.At(1, 0); !w.Weighted || w.Weight != 4 {
		t.Errorf("reset stripped a weight: %+v", *w)
	}
}

// TestRoles covers role exclusivity and the terrain interaction.
func TestRoles(t *testing.T) {
	g, _ := grid.New(3, 3)
	wallAt := grid.Coord{Row: 1, Col: 1}
	if err := g.SetWall(wallAt); err != nil {
		t.Fatalf("SetWall: %v", err)
	}

	// Assigning a role to a wall cell opens it.
	if err := g.SetStart(wallAt); err != nil {
		t.Fatalf("SetStart: %v", err)
	}
	if g.At(1, 1).Wall {
		t.Error("start cell is still a wall")
	}
	if c, ok := g.Start(); !ok || c != wallAt {
		t.Errorf("Start() = %v,%v; want %v,true", c, ok, wallAt)
	}

	// Moving the role leaves exactly one holder.
	if err := g.SetStart(grid.Coord{Row: 0, Col: 0}); err != nil {
		t.Fatalf("SetStart move: %v", err)
	}
	if g.At(1, 1).Start {
		t.Error("previous start cell kept its role")
	}
	if c, _ := g.Start(); (c != grid.Coord{Row: 0, Col: 0}) {
		t.Errorf("Start() = %v; want (0,0)", c)
	}

	// Terrain edits on role cells are rejected.
	if err := g.SetWall(grid.Coord{Row: 0, Col: 0}); !errors.Is(err, grid.ErrRoleCell) {
		t.Errorf("SetWall on start = %v; want ErrRoleCell", err)
	}
	if err := g.SetWeight(grid.Coord{Row: 0, Col: 0}, 3); !errors.Is(err, grid.ErrRoleCell) {
		t.Errorf("SetWeight on start = %v; want ErrRoleCell", err)
	}

	// Out-of-bounds edits surface the sentinel.
	if err := g.SetEnd(grid.Coord{Row: 5, Col: 5}); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("SetEnd OOB = %v; want ErrOutOfBounds", err)
	}
}

// TestSetWeight_Validation rejects non-positive costs and clears walls.
func TestSetWeight_Validation(t *testing.T) {
	g, _ := grid.New(2, 2)
	if err := g.SetWeight(grid.Coord{}, 0); err == nil {
		t.Error("SetWeight(0) accepted a non-positive cost")
	}
	target := grid.Coord{Row: 0, Col: 1}
	_ = g.SetWall(target)
	if err := g.SetWeight(target, 5); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}
	cell := g.At(0, 1)
	if cell.Wall || !cell.Weighted || cell.Weight != 5 {
		t.Errorf("weighted cell state: %+v", *cell)
	}
	if err := g.ClearWeight(target); err != nil {
		t.Fatalf("ClearWeight: %v", err)
	}
	if cell.Weighted || cell.Weight != grid.DefaultWeight {
		t.Errorf("cleared cell state: %+v", *cell)
	}
}

// TestClone_Independence guards against aliasing between a grid and its clone.
func TestClone_Independence(t *testing.T) {
	g, _ := grid.New(2, 2)
	cp := g.Clone()
	_ = g.SetWall(grid.Coord{Row: 0, Col: 0})
	if cp.At(0, 0).Wall {
		t.Error("mutating the original leaked into the clone")
	}
	_ = cp.SetWall(grid.Coord{Row: 1, Col: 1})
	if g.At(1, 1).Wall {
		t.Error("mutating the clone leaked into the original")
	}
}

// TestCells_ReturnsCopy guards against aliasing through the snapshot accessor.
func TestCells_ReturnsCopy(t *testing.T) {
	g, _ := grid.New(2, 2)
	cells := g.Cells()
	if len(cells) != g.Len() {
		t.Fatalf("Cells() len = %d; want %d", len(cells), g.Len())
	}
	cells[0].Wall = true
	if g.At(0, 0).Wall {
		t.Error("mutating the Cells copy leaked into the grid")
	}
}

// TestString renders each cell kind.
func TestString(t *testing.T) {
	g, _ := grid.New(2, 3)
	_ = g.SetStart(grid.Coord{Row: 0, Col: 0})
	_ = g.SetEnd(grid.Coord{Row: 1, Col: 2})
	_ = g.SetWall(grid.Coord{Row: 0, Col: 1})
	_ = g.SetWeight(grid.Coord{Row: 1, Col: 0}, 3)
	g.MarkPath([]grid.Coord{{Row: 0, Col: 2}})

	want := "S#*\no.E\n"
	// MarkPath only flags the one coordinate; (1,1) stays open.
	got := g.String()
	if got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

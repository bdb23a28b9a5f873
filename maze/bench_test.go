package maze_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

const benchRows, benchCols = 101, 101

var benchStart = grid.Coord{Row: 1, Col: 1}
var benchEnd = grid.Coord{Row: 99, Col: 99}

func BenchmarkRandom(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.Random(benchRows, benchCols, benchStart, benchEnd, maze.WithSeed(42)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBacktracker(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.Backtracker(benchRows, benchCols, benchStart, benchEnd, maze.WithSeed(42)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDivision(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, _, err := maze.Division(benchRows, benchCols, benchStart, benchEnd, maze.WithSeed(42)); err != nil {
			b.Fatal(err)
		}
	}
}

package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// chain3 builds a 1×3 grid with predecessor links 0←1←2 and settled
// distances, mimicking a finished traversal.
func chain3(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(1, 3)
	require.NoError(t, err)
	for i, d := range []int64{0, 1, 2} {
		g.AtIndex(i).Dist = d
	}
	g.AtIndex(1).Prev = 0
	g.AtIndex(2).Prev = 1

	return g
}

func TestPathTo_Chain(t *testing.T) {
	g := chain3(t)
	end := grid.Coord{Row: 0, Col: 2}

	path, err := g.PathTo(end)
	require.NoError(t, err)
	want := []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	assert.Equal(t, want, path)
	assert.True(t, g.Reachable(end))
}

// TestPathTo_RoundTrip re-walks the reconstructed path forward and checks
// that each step's predecessor link points at the previous path cell —
// reconstruction and the predecessor tree describe the same chain.
func TestPathTo_RoundTrip(t *testing.T) {
	g := chain3(t)
	path, err := g.PathTo(grid.Coord{Row: 0, Col: 2})
	require.NoError(t, err)

	for i := 1; i < len(path); i++ {
		prev := g.AtIndex(g.IndexOf(path[i])).Prev
		assert.Equal(t, g.IndexOf(path[i-1]), prev,
			"path step %d does not match the predecessor tree", i)
	}
	// The chain roots at a cell with no predecessor: the start.
	assert.Equal(t, grid.NoPrev, g.AtIndex(g.IndexOf(path[0])).Prev)
}

// TestPathTo_NoPredecessor covers the unreached-end degenerate case.
func TestPathTo_NoPredecessor(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	end := grid.Coord{Row: 1, Col: 1}

	path, err := g.PathTo(end)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{end}, path, "unreached end must yield the singleton path")
	assert.False(t, g.Reachable(end), "reachability is the signal, not path length")

	_, err = g.PathTo(grid.Coord{Row: 9, Col: 9})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestMarkPath(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	g.MarkPath([]grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	assert.True(t, g.At(0, 0).Path)
	assert.True(t, g.At(0, 1).Path)
	assert.False(t, g.At(1, 0).Path)

	// Re-marking clears the previous path.
	g.MarkPath([]grid.Coord{{Row: 1, Col: 1}})
	assert.False(t, g.At(0, 0).Path)
	assert.True(t, g.At(1, 1).Path)
}

func TestScatterWeights(t *testing.T) {
	g, err := grid.New(10, 10)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(grid.Coord{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(grid.Coord{Row: 9, Col: 9}))
	require.NoError(t, g.SetWall(grid.Coord{Row: 5, Col: 5}))

	g.ScatterWeights(grid.DefaultWeightFraction, grid.RNGFromSeed(42))

	for i := 0; i < g.Len(); i++ {
		cell := g.AtIndex(i)
		if cell.Start || cell.End || cell.Wall {
			assert.False(t, cell.Weighted, "ineligible cell (%d,%d) got weighted", cell.Row, cell.Col)
			continue
		}
		if cell.Weighted {
			assert.GreaterOrEqual(t, cell.Weight, grid.MinScatterWeight)
			assert.LessOrEqual(t, cell.Weight, grid.MaxScatterWeight)
		} else {
			assert.Equal(t, grid.DefaultWeight, cell.Weight)
		}
	}

	// Same seed, same scatter.
	h, _ := grid.New(10, 10)
	_ = h.SetStart(grid.Coord{Row: 0, Col: 0})
	_ = h.SetEnd(grid.Coord{Row: 9, Col: 9})
	_ = h.SetWall(grid.Coord{Row: 5, Col: 5})
	h.ScatterWeights(grid.DefaultWeightFraction, grid.RNGFromSeed(42))
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, *g.AtIndex(i), *h.AtIndex(i), "scatter not deterministic at %d", i)
	}
}

func TestScatterWeights_ZeroFraction(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	g.ScatterWeights(0, nil)
	for i := 0; i < g.Len(); i++ {
		assert.False(t, g.AtIndex(i).Weighted)
	}
}

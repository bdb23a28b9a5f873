package grid

import "math/rand"

// Weight scattering defaults. Scattered weights are drawn uniformly from
// [MinScatterWeight, MaxScatterWeight].
const (
	// DefaultWeightFraction is the chance each eligible cell becomes weighted.
	DefaultWeightFraction = 0.20

	MinScatterWeight int64 = 2
	MaxScatterWeight int64 = 5
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand for maze generation and
// weight scattering. Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is
// used verbatim. math/rand.Rand is not goroutine-safe; do not share the
// result across goroutines.
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// ScatterWeights independently turns each eligible cell (open, no role)
// into a weighted cell with probability fraction, drawing the entry cost
// uniformly from [MinScatterWeight, MaxScatterWeight]. This is the weighted
// mode pre-pass applied before a Dijkstra run. A nil rng uses the default
// deterministic stream. Existing weights on eligible cells are re-rolled.
// Complexity: O(rows×cols).
func (g *Grid) ScatterWeights(fraction float64, rng *rand.Rand) {
	r := rng
	if r == nil {
		r = RNGFromSeed(0)
	}
	span := MaxScatterWeight - MinScatterWeight + 1
	for i := range g.cells {
		cell := &g.cells[i]
		if cell.Wall || cell.Start || cell.End {
			continue
		}
		if r.Float64() < fraction {
			cell.Weighted = true
			cell.Weight = MinScatterWeight + r.Int63n(span)
		}
	}
}

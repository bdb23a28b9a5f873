// Package maze defines options and sentinel errors shared by the three
// maze generators.
package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrBadDimensions indicates rows or cols below the minimum of 1.
	ErrBadDimensions = errors.New("maze: rows and cols must each be at least 1")

	// ErrBadEndpoint indicates start/end out of bounds or coinciding.
	ErrBadEndpoint = errors.New("maze: invalid start/end position")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// DefaultWallDensity is the wall probability of the uniform-random generator.
const DefaultWallDensity = 0.30

// Option configures maze generation via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the generator is invoked.
type Option func(*Options)

// Options holds tunable generation parameters.
type Options struct {
	// Seed drives the deterministic RNG; 0 selects the fixed default
	// stream (grid.RNGFromSeed policy).
	Seed int64

	// WallDensity is the per-cell wall probability of the uniform-random
	// generator. Must lie in [0, 1).
	WallDensity float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default seed policy and
// DefaultWallDensity.
func DefaultOptions() Options {
	return Options{
		Seed:        0,
		WallDensity: DefaultWallDensity,
	}
}

// WithSeed fixes the RNG seed for reproducible layouts.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWallDensity overrides the uniform-random wall probability.
//
//	0 ≤ p < 1: valid
//	otherwise: ErrOptionViolation
func WithWallDensity(p float64) Option {
	return func(o *Options) {
		if p < 0 || p >= 1 {
			o.err = fmt.Errorf("%w: WallDensity must be in [0,1), got %v", ErrOptionViolation, p)
			return
		}
		o.WallDensity = p
	}
}

// buildOptions folds opts over the defaults and surfaces any recorded
// option error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// validate applies the shared generator contract: positive dimensions,
// start/end in bounds and distinct.
func validate(rows, cols int, start, end grid.Coord) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	for _, c := range [2]grid.Coord{start, end} {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return fmt.Errorf("%w: (%d,%d) outside %d×%d", ErrBadEndpoint, c.Row, c.Col, rows, cols)
		}
	}
	if start == end {
		return fmt.Errorf("%w: start equals end (%d,%d)", ErrBadEndpoint, start.Row, start.Col)
	}

	return nil
}

// directions lists the orthogonal step deltas in up, down, left, right order.
// Generators shuffle a copy when they need a random carving direction.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

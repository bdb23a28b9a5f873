// Package maze provides three independent wall-layout generators over a
// grid.Grid, all deterministic for a fixed seed.
//
// What
//
//   - Random: each non-role cell becomes a wall with fixed probability
//     (0.30 by default, WithWallDensity to override). No solvability
//     guarantee.
//   - Backtracker: randomized depth-first carving over the lattice of
//     cells spaced 2 apart — a perfect maze (spanning tree, no cycles),
//     plus a repair step that opens and attaches the start/end
//     neighborhoods. Guarantees start and end are mutually reachable.
//   - Division: recursive division from an open field — border walls,
//     then recursively one gapped wall per region — also returning the
//     wall-emission order so a caller can animate construction.
//     Guarantees start and end are mutually reachable.
//
// All three return a fresh grid with the start/end roles set and both
// endpoints open; generation never touches a caller-owned grid.
//
// Determinism
//
//	Seeding follows the grid.RNGFromSeed policy: seed==0 selects a fixed
//	default stream, any other seed is used verbatim. Same seed, same
//	dimensions, same endpoints ⇒ identical layout and identical emission
//	order.
//
// Errors
//
//   - ErrBadDimensions:   rows or cols below 1.
//   - ErrBadEndpoint:     start/end out of bounds or coinciding.
//   - ErrOptionViolation: invalid option value (e.g. density outside [0,1)).
package maze

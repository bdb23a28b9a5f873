// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// grid.Grid, where each open cell carries a positive cost to enter it
// (1 by default, heavier when the cell is weighted).
//
// What
//
//   - Label-setting search: settle the unsettled cell with minimum distance,
//     relax its open orthogonal neighbors, repeat.
//   - Returns a Result shaped like the bfs one: Order (settle sequence),
//     the settled Grid snapshot, Path/Reachable/Cost accessors.
//   - WithUnitCosts degenerates to BFS-equivalent distances for callers who
//     want one engine for both modes; only the settle order of
//     equal-distance ties may differ from the FIFO engine.
//   - Hooks: OnSettle and OnRelax feed the animation layer.
//
// Determinism
//
//	Equal-distance cells settle in ascending arena index (row-major).
//	Combined with the up/down/left/right relaxation order this makes the
//	settle sequence and predecessor tree reproducible. The tie-break is
//	documented contract, not an implementation accident.
//
// Semantics worth noting
//
//   - A neighbor may be relaxed several times before it settles; only
//     settling is gated on Visited.
//   - Walls are never relaxed into and never settled, so they never appear
//     in the visitation sequence.
//   - Unreachable ends are signalled by pool exhaustion, not an error;
//     check Result.Reachable.
//   - The engine runs on a private clone with bookkeeping reset.
//
// Complexity (R×C grid, V = R×C)
//
//   - Time:   O(V log V) with the lazy-decrease-key min-heap.
//   - Memory: O(V).
//
// The textbook O(V²) scan-the-pool variant would produce the same settle
// order under this tie-break; the heap is purely an efficiency choice.
//
// Errors
//
//   - ErrNilGrid        if the grid pointer is nil.
//   - ErrOutOfBounds    if start or end lies outside the grid.
//   - ErrSameEndpoint   if start and end coincide.
//   - ErrWallEndpoint   if start or end sits on a wall.
package dijkstra

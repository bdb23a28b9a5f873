// Package bfs provides breadth-first search over a grid.Grid, returning
// unweighted shortest-path distances, predecessor links, and the settle
// order an animation layer replays as its exploration phase.
//
// What
//
//   - Explore open cells in non-decreasing distance (edge count) from start.
//   - Returns a Result containing:
//   - Order: settle sequence (the Visitation Sequence)
//   - Grid: the settled snapshot with Dist and Prev per cell
//   - Path reconstruction via Result.Path, with Reachable as the
//     "path exists" check — an unreached end yields the singleton [End].
//   - Hooks at two stages: OnEnqueue (discovery) and OnSettle (dequeue).
//
// Why
//
//   - Unweighted shortest paths in O(V) on a grid (each cell has ≤4 edges).
//   - The settle order is exactly what a pathfinding visualizer animates.
//
// Determinism
//
//	Neighbors are enumerated in the fixed order up, down, left, right
//	(grid.Neighbors contract), so the settle sequence is fully
//	reproducible for a given grid and endpoint pair.
//
// Semantics worth noting
//
//   - Cells are marked visited on enqueue, not on settle; a cell is never
//     enqueued twice.
//   - The run stops the moment the end cell is dequeued. Unreachable ends
//     are signalled by frontier exhaustion, not by an error: Order then
//     holds every reachable cell and Result.Reachable reports false.
//   - Walls are excluded from neighbor enumeration entirely: never
//     enqueued, never visited, never settled.
//   - The engine runs on a private clone with bookkeeping reset; callers
//     never observe half-mutated state.
//
// Complexity (R×C grid)
//
//   - Time:   O(R×C)
//   - Memory: O(R×C) (snapshot, queue, Order)
//
// Errors
//
//   - ErrNilGrid        if the grid pointer is nil.
//   - ErrOutOfBounds    if start or end lies outside the grid.
//   - ErrSameEndpoint   if start and end coincide.
//   - ErrWallEndpoint   if start or end sits on a wall.
package bfs

// Package grid provides the rectangular cell arena every gridpath engine and
// generator operates on, plus shortest-path reconstruction over settled
// predecessor links.
//
// What:
//
//   - Grid: a fixed-size row-major arena of Cells addressed by (row, col)
//     or by arena index; predecessors are stored as indices, never pointers.
//   - Terrain editing: walls, weighted cells, and the exclusive start/end
//     roles (a role cell is never a wall and never weighted).
//   - Traversal bookkeeping: Visited, Dist (Unreachable sentinel), Prev —
//     wiped by ResetForTraversal, otherwise owned by the running engine.
//   - PathTo: walk Prev links backward from the end cell and reverse,
//     yielding the start→end path; MarkPath records it on the cells.
//   - ScatterWeights: the weighted-mode pre-pass (20% of eligible cells,
//     cost uniform in {2,3,4,5}) with deterministic seeding.
//
// Determinism:
//
//	Neighbors enumerates in the fixed order up, down, left, right. Both
//	traversal engines inherit their visitation order from this contract, so
//	an animation replay of a run is byte-for-byte reproducible.
//
// Why:
//
//   - One shared data model keeps BFS, Dijkstra, and the maze generators
//     interchangeable over the same grid snapshot.
//   - Index-based predecessors make a settled grid self-contained: cloning
//     or serializing it never drags live object graphs along.
//
// Complexity:
//
//   - New, Clone, ResetForTraversal, MarkPath: O(rows×cols).
//   - At, Index, CoordOf, InBounds, Neighbors: O(1).
//   - PathTo: O(path length).
//
// Errors:
//
//   - ErrBadDimensions: rows or cols below 1.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrRoleCell: terrain edit aimed at a start/end cell.
package grid

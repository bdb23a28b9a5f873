// Package gridpath is the computation core of a grid pathfinding
// visualizer: paint walls and weighted cells on a rectangular grid, run
// BFS or Dijkstra, and replay the visitation order plus the reconstructed
// shortest path at any speed.
//
// 🚀 What is gridpath?
//
//	A pure-Go library that brings together:
//		• grid/     — the shared Cell arena: terrain, roles, traversal
//		  bookkeeping, and path reconstruction over predecessor links
//		• bfs/      — level-order traversal with the fixed
//		  up/down/left/right neighbor contract
//		• dijkstra/ — label-setting shortest paths over per-cell entry
//		  costs, deterministic row-major tie-breaking
//		• maze/     — uniform-random, recursive-backtracker, and
//		  recursive-division wall generators, all seedable
//
// ✨ Why choose gridpath?
//
//   - Replayable by construction – every engine returns ordered sequences
//     (settle order, path, wall emission) instead of painting anything
//   - Deterministic – fixed neighbor order, documented tie-breaks,
//     seed-driven generators; the same inputs always animate identically
//   - Pure Go – no cgo, no rendering, no hidden deps
//   - Extensible – hooks (OnEnqueue, OnSettle, OnRelax…) for custom logic
//
// The engines are synchronous and run to completion on a private snapshot
// of the caller's grid; pacing, rendering, and input wiring belong to the
// host application.
//
// Quick ASCII example, a settled 5×5 run (S start, E end, # wall, * path):
//
//	S*..#
//	.*#..
//	.*#.#
//	.***E
//	..#..
//
// Dive into the per-package docs for contracts, complexity, and errors.
//
//	go get github.com/katalvlaran/gridpath
package gridpath

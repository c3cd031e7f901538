// Package maze carves a perfect maze into a grid.Grid using randomized
// depth-first backtracking.
//
// What:
//
//   - Generate walks the board depth-first from an origin cell, shuffling the
//     four directions uniformly at each fresh visit and opening the wall to
//     the first in-bounds unvisited neighbor before descending into it.
//   - A cell with no unvisited neighbors left is popped (backtracked).
//   - The traversal uses an explicit stack, so auxiliary memory is bounded by
//     the grid area and no host call-stack limit applies to large boards.
//
// Why:
//
//   - The result is a spanning tree of the grid graph: exactly one simple
//     path between any two cells, no cycles — a perfect maze.
//   - The direction shuffle is the entire source of maze variety; with a
//     fixed seed the carved maze is reproducible byte for byte.
//
// Complexity:
//
//   - Time:   O(W×H) — every cell is pushed and popped exactly once.
//   - Memory: O(W×H) worst case for the stack (a fully serpentine maze).
//
// Options:
//
//   - WithSeed(s):    deterministic RNG; s==0 selects a fixed default seed.
//   - WithRand(r):    supply an RNG directly (overrides WithSeed).
//   - WithOrigin(c):  carving start cell, default (0,0).
//   - WithOnCarve(f): observation hook per opened passage; advisory only.
//
// Errors:
//
//   - ErrNilGrid:            Generate called with a nil grid.
//   - ErrOriginOutOfBounds:  origin outside the board.
//   - ErrAlreadyCarved:      grid has visited cells from a previous run;
//     generation takes exclusive ownership of a fresh board.
package maze

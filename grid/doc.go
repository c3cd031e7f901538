// Package grid models a rectangular maze board: a dense COLS×ROWS array of
// cells, each carrying four directional wall flags and a generation-time
// visited marker.
//
// What:
//
//   - Grid holds the static topology; only wall flags mutate after New.
//   - Walls are stored twice (once per adjacent cell); OpenWall keeps the two
//     sides in sync, RemoveWall touches exactly one side for callers that
//     maintain the pairing themselves.
//   - IsPassable is the sole adjacency test used by search: out-of-bounds
//     queries answer false, never an error.
//   - WallSegments, CellRect and CellCenter translate grid coordinates into
//     drawable pixel geometry for a render sink.
//
// Why:
//
//   - Maze generation: a carver flips wall flags to produce a spanning tree.
//   - Pathfinding: passability defines the implicit graph, no edge list needed.
//   - Rendering: every remaining wall is one line segment, every cell one rect.
//
// Complexity:
//
//   - New:            O(W×H) time and memory.
//   - RemoveWall, OpenWall, IsPassable, NeighborCoords, InBounds: O(1).
//   - WallSegments:   O(W×H).
//   - WallSymmetric, RemovedWallPairs, String: O(W×H).
//
// Errors:
//
//   - ErrBadDimensions: New called with non-positive cols or rows.
//   - ErrOutOfBounds:   OpenWall toward a neighbor that does not exist.
package grid

// Package mazekit generates perfect mazes and finds the shortest way
// through them — from the cell grid up to animated exploration replays.
//
// 🚀 What is in the box?
//
//	A small, focused toolkit built from flat subpackages:
//		• grid  — the wall model: cells, directions, pixel geometry, ASCII art
//		• maze  — randomized depth-first backtracker, seeded and deterministic
//		• astar — A* with a Manhattan heuristic and a recordable event stream
//		• viz   — the render contract: scenes, palettes, sinks, trace replay
//
// ✨ Why this shape?
//
//   - Algorithms never touch pixels – a Sink is the only seam to a screen
//   - Deterministic – same seed, same maze, same exploration, every run
//   - Hookable – OnCarve, OnVisit, OnFrontier observe without interfering
//   - Two front-ends – a Fyne window (cmd/mazeviz) and a PNG writer
//     (cmd/mazepng), both configured the same way
//
// Quick ASCII example:
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
//
//	a 2×2 perfect maze: every cell reachable, exactly one route between
//	any two cells.
//
//	go get github.com/wrkean/astar-pathfinding-algorithm
package mazekit

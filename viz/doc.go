// Package viz decouples the maze algorithms from anything that can draw.
//
// What:
//
//	A small render contract (Sink), a precomputed Scene that turns grid and
//	search data into drawable primitives, and Replay, which feeds a recorded
//	exploration trace into a Sink frame by frame.
//
// Why:
//
//	The generator and the pathfinder know nothing about pixels. A Sink is
//	the single seam between them and a window, an image file, or a test
//	double. Sinks pull events at their own pace; the algorithms never block
//	on rendering.
//
// Primitives:
//
//   - grid.Segment   — one wall line in pixel coordinates.
//   - Highlight      — one cell filled in a role color (visited, frontier,
//     start, goal, path).
//   - PathSegment    — one leg of the final path polyline between cell
//     centers.
//   - Palette        — role/wall/background colors; DefaultPalette gives
//     the classic look (green visited, blue frontier, red goal, magenta
//     path on black).
//
// Errors:
//
//   - ErrNilSink, ErrNilScene — Replay preconditions.
//   - ErrBadCellSize          — NewScene with a non-positive cell size.
package viz

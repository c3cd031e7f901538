// Package imagesink renders a scene to PNG through github.com/fogleman/gg.
//
// What:
//
//	A viz.Sink backed by a raster context: wall lines, filled highlight
//	rects, the path polyline. Present is a no-op unless a frame directory
//	is configured, in which case every presented frame is dumped as a
//	numbered PNG. Save writes the final image.
//
// Why:
//
//	The headless front-end needs a picture of the finished maze and search
//	without a display server. Frame dumping makes the exploration
//	scrubbable after the fact.
package imagesink

// Package fyneboard renders a scene inside a Fyne window.
//
// What:
//
//	Board is a custom widget implementing viz.Sink: walls as thin canvas
//	lines, highlights as filled rectangles, the final path as line
//	segments. Present refreshes the widget, so a replay goroutine drives
//	the animation one frame at a time.
//
// Why:
//
//	The interactive front-end watches the search happen. The widget scales
//	the board to its allotted size and keeps the native scene resolution
//	as its minimum.
package fyneboard

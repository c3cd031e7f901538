package fyneboard

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/wrkean/astar-pathfinding-algorithm/viz"
)

// boardRenderer rebuilds its object list on every Refresh, the simplest
// correct strategy for a board whose cell count is fixed but whose overlay
// grows frame by frame.
type boardRenderer struct {
	board   *Board
	objects []fyne.CanvasObject
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.board.sc.Width()), float32(r.board.sc.Height()))
}

func (r *boardRenderer) Layout(fyne.Size) {
	// Positions are derived from the widget size inside Refresh.
}

func (r *boardRenderer) Refresh() {
	b := r.board

	// Snapshot the sink state so a replay goroutine can keep drawing.
	b.mu.Lock()
	hasWalls := b.hasWalls
	marks := make([]mark, len(b.marks))
	copy(marks, b.marks)
	path := make([]viz.PathSegment, len(b.path))
	copy(path, b.path)
	b.mu.Unlock()

	// Scale the native scene resolution into the allotted size, centered.
	size := b.Size()
	scaleX := size.Width / float32(b.sc.Width())
	scaleY := size.Height / float32(b.sc.Height())
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}
	if scale <= 0 {
		scale = 1
	}
	offX := (size.Width - float32(b.sc.Width())*scale) / 2
	offY := (size.Height - float32(b.sc.Height())*scale) / 2
	px := func(x, y int) fyne.Position {
		return fyne.NewPos(offX+float32(x)*scale, offY+float32(y)*scale)
	}

	r.objects = r.objects[:0]

	bg := canvas.NewRectangle(b.palette.Background)
	bg.Resize(fyne.NewSize(float32(b.sc.Width())*scale, float32(b.sc.Height())*scale))
	bg.Move(px(0, 0))
	r.objects = append(r.objects, bg)

	cell := float32(b.sc.CellSize()) * scale
	for _, m := range marks {
		rect := canvas.NewRectangle(b.palette.RoleColor(m.role))
		rect.Resize(fyne.NewSize(cell, cell))
		rect.Move(px(m.cell.X*b.sc.CellSize(), m.cell.Y*b.sc.CellSize()))
		r.objects = append(r.objects, rect)
	}

	if hasWalls {
		for _, seg := range b.sc.Walls() {
			line := canvas.NewLine(b.palette.Wall)
			line.StrokeWidth = 1
			line.Position1 = px(seg.X1, seg.Y1)
			line.Position2 = px(seg.X2, seg.Y2)
			r.objects = append(r.objects, line)
		}
	}

	for _, seg := range path {
		line := canvas.NewLine(b.palette.Path)
		line.StrokeWidth = 1
		line.Position1 = px(seg.FromX, seg.FromY)
		line.Position2 = px(seg.ToX, seg.ToY)
		r.objects = append(r.objects, line)
	}

	canvas.Refresh(b)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Destroy() {}

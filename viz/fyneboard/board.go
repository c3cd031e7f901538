package fyneboard

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/wrkean/astar-pathfinding-algorithm/astar"
	"github.com/wrkean/astar-pathfinding-algorithm/grid"
	"github.com/wrkean/astar-pathfinding-algorithm/viz"
)

// ErrNilScene is returned by New when the scene is nil.
var ErrNilScene = errors.New("fyneboard: nil scene")

// Option mutates a Board during construction.
type Option func(*Board)

// WithPalette replaces the default colors.
func WithPalette(p viz.Palette) Option {
	return func(b *Board) { b.palette = p }
}

// mark is one highlighted cell in draw order.
type mark struct {
	cell grid.Coord
	role viz.Role
}

// Board is the maze widget. It satisfies viz.Sink, so viz.Replay can drive
// it directly. Sink methods may be called from a replay goroutine; the
// renderer snapshots state under the lock.
type Board struct {
	widget.BaseWidget

	sc      *viz.Scene
	palette viz.Palette

	mu       sync.Mutex
	hasWalls bool
	marks    []mark
	markIdx  map[grid.Coord]int
	path     []viz.PathSegment
}

// New creates a board for the given scene.
func New(sc *viz.Scene, opts ...Option) (*Board, error) {
	if sc == nil {
		return nil, ErrNilScene
	}

	b := &Board{
		sc:      sc,
		palette: viz.DefaultPalette(),
		markIdx: make(map[grid.Coord]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.ExtendBaseWidget(b)

	return b, nil
}

// DrawWalls enables the wall layer. The segments themselves come from the
// scene, the argument only confirms the caller follows the sink protocol.
func (b *Board) DrawWalls(_ []grid.Segment) {
	b.mu.Lock()
	b.hasWalls = true
	b.mu.Unlock()
}

// DrawHighlight records the cell's role; a later role for the same cell
// wins.
func (b *Board) DrawHighlight(h viz.Highlight) {
	b.mu.Lock()
	if i, ok := b.markIdx[h.Cell]; ok {
		b.marks[i].role = h.Role
	} else {
		b.markIdx[h.Cell] = len(b.marks)
		b.marks = append(b.marks, mark{cell: h.Cell, role: h.Role})
	}
	b.mu.Unlock()
}

// DrawPath stores the final polyline.
func (b *Board) DrawPath(segs []viz.PathSegment) {
	b.mu.Lock()
	b.path = segs
	b.mu.Unlock()
}

// Present repaints the widget with everything drawn so far.
func (b *Board) Present() {
	b.Refresh()
}

// UpdateTrace rewinds the board to the first n events of a recorded trace
// and repaints. It is the scrubbing entry point: any position in the
// exploration can be shown directly.
func (b *Board) UpdateTrace(trace []astar.Event, n int) {
	if n > len(trace) {
		n = len(trace)
	}

	b.mu.Lock()
	b.hasWalls = true
	b.marks = b.marks[:0]
	b.markIdx = make(map[grid.Coord]int, n)
	b.path = nil
	b.mu.Unlock()

	for _, ev := range trace[:n] {
		b.DrawHighlight(b.sc.HighlightFor(ev))
	}
	b.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{board: b}
}

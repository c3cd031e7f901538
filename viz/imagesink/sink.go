package imagesink

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/wrkean/astar-pathfinding-algorithm/grid"
	"github.com/wrkean/astar-pathfinding-algorithm/viz"
)

// ErrNilScene is returned by New when the scene is nil.
var ErrNilScene = errors.New("imagesink: nil scene")

// Option mutates a Sink during construction.
type Option func(*Sink)

// WithPalette replaces the default colors.
func WithPalette(p viz.Palette) Option {
	return func(s *Sink) { s.palette = p }
}

// WithFrameDir makes every Present dump a numbered PNG into dir. The caller
// owns the directory's existence.
func WithFrameDir(dir string) Option {
	return func(s *Sink) { s.frameDir = dir }
}

// Sink draws into an off-screen gg context. Not safe for concurrent use.
type Sink struct {
	sc       *viz.Scene
	dc       *gg.Context
	palette  viz.Palette
	frameDir string
	frame    int
	frameErr error
}

// New creates a sink sized to the scene and clears it to the background
// color.
func New(sc *viz.Scene, opts ...Option) (*Sink, error) {
	if sc == nil {
		return nil, ErrNilScene
	}

	s := &Sink{
		sc:      sc,
		dc:      gg.NewContext(sc.Width(), sc.Height()),
		palette: viz.DefaultPalette(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.dc.SetColor(s.palette.Background)
	s.dc.Clear()

	return s, nil
}

// DrawWalls strokes one line per wall segment.
func (s *Sink) DrawWalls(segs []grid.Segment) {
	s.dc.SetColor(s.palette.Wall)
	s.dc.SetLineWidth(1)
	for _, seg := range segs {
		s.dc.DrawLine(float64(seg.X1), float64(seg.Y1), float64(seg.X2), float64(seg.Y2))
	}
	s.dc.Stroke()
}

// DrawHighlight fills the cell interior, inset by one pixel so the wall
// lines stay visible.
func (s *Sink) DrawHighlight(h viz.Highlight) {
	x, y, w, ht := s.sc.Grid().CellRect(h.Cell, s.sc.CellSize())
	s.dc.SetColor(s.palette.RoleColor(h.Role))
	s.dc.DrawRectangle(float64(x+1), float64(y+1), float64(w-2), float64(ht-2))
	s.dc.Fill()
}

// DrawPath strokes the path polyline between cell centers.
func (s *Sink) DrawPath(segs []viz.PathSegment) {
	if len(segs) == 0 {
		return
	}
	s.dc.SetColor(s.palette.Path)
	s.dc.SetLineWidth(1)
	s.dc.MoveTo(float64(segs[0].FromX), float64(segs[0].FromY))
	for _, seg := range segs {
		s.dc.LineTo(float64(seg.ToX), float64(seg.ToY))
	}
	s.dc.Stroke()
}

// Present is a no-op unless a frame directory is set, in which case it dumps
// the current canvas as frame_NNNNN.png. The first write error is kept and
// surfaced by Save.
func (s *Sink) Present() {
	if s.frameDir == "" {
		return
	}

	name := filepath.Join(s.frameDir, fmt.Sprintf("frame_%05d.png", s.frame))
	s.frame++
	if err := s.dc.SavePNG(name); err != nil && s.frameErr == nil {
		s.frameErr = fmt.Errorf("imagesink: dump frame: %w", err)
	}
}

// Save writes the final image to path. A pending frame-dump error takes
// precedence.
func (s *Sink) Save(path string) error {
	if s.frameErr != nil {
		return s.frameErr
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("imagesink: save: %w", err)
	}

	return nil
}

// Image exposes the rendered frame for tests and embedding.
func (s *Sink) Image() image.Image { return s.dc.Image() }

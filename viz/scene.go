package viz

import (
	"github.com/wrkean/astar-pathfinding-algorithm/astar"
	"github.com/wrkean/astar-pathfinding-algorithm/grid"
)

// Scene binds a carved grid to a cell size and precomputes everything a sink
// draws more than once. It is read-only after construction and safe to share
// between sinks.
type Scene struct {
	g        *grid.Grid
	cellSize int
	walls    []grid.Segment
}

// NewScene precomputes the wall segments of g at the given cell size.
//
// Returns ErrNilGrid or ErrBadCellSize on invalid input.
func NewScene(g *grid.Grid, cellSize int) (*Scene, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrNilGrid
	}
	if cellSize <= 0 {
		return nil, ErrBadCellSize
	}

	// 2. Walls never change after generation, compute them once.
	return &Scene{
		g:        g,
		cellSize: cellSize,
		walls:    g.WallSegments(cellSize),
	}, nil
}

// Grid returns the underlying grid.
func (s *Scene) Grid() *grid.Grid { return s.g }

// CellSize returns the pixel size of one cell.
func (s *Scene) CellSize() int { return s.cellSize }

// Walls returns the precomputed wall segments. Callers must not mutate the
// returned slice.
func (s *Scene) Walls() []grid.Segment { return s.walls }

// Width returns the scene width in pixels.
func (s *Scene) Width() int { return s.g.Cols() * s.cellSize }

// Height returns the scene height in pixels.
func (s *Scene) Height() int { return s.g.Rows() * s.cellSize }

// HighlightFor translates one exploration event into a drawable highlight.
func (s *Scene) HighlightFor(ev astar.Event) Highlight {
	role := RoleVisited
	if ev.Kind == astar.EventFrontier {
		role = RoleFrontier
	}

	return Highlight{Cell: ev.Cell, Role: role}
}

// PathSegments converts a cell path into polyline legs between cell centers.
// A path of fewer than two cells yields no segments.
func (s *Scene) PathSegments(path []grid.Coord) []PathSegment {
	if len(path) < 2 {
		return nil
	}

	segs := make([]PathSegment, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		fx, fy := s.g.CellCenter(path[i-1], s.cellSize)
		tx, ty := s.g.CellCenter(path[i], s.cellSize)
		segs = append(segs, PathSegment{FromX: fx, FromY: fy, ToX: tx, ToY: ty})
	}

	return segs
}

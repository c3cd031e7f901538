package viz

import (
	"context"
	"errors"
	"image/color"
	"time"

	"github.com/wrkean/astar-pathfinding-algorithm/grid"
)

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

var (
	// ErrNilGrid is returned by NewScene when the grid is nil.
	ErrNilGrid = errors.New("viz: nil grid")

	// ErrBadCellSize is returned by NewScene for a non-positive cell size.
	ErrBadCellSize = errors.New("viz: cell size must be positive")

	// ErrNilSink is returned by Replay when the sink is nil.
	ErrNilSink = errors.New("viz: nil sink")

	// ErrNilScene is returned by Replay when the scene is nil.
	ErrNilScene = errors.New("viz: nil scene")
)

//----------------------------------------------------------------------------//
// Primitives
//----------------------------------------------------------------------------//

// Role tells a sink why a cell is being highlighted, so the sink can pick
// the color without understanding the search.
type Role uint8

const (
	// RoleVisited marks a cell the search has expanded and closed.
	RoleVisited Role = iota
	// RoleFrontier marks a cell sitting in the open set.
	RoleFrontier
	// RoleStart marks the search origin.
	RoleStart
	// RoleGoal marks the search target.
	RoleGoal
	// RolePath marks a cell on the final path.
	RolePath
)

// String implements fmt.Stringer for logs and test failure messages.
func (r Role) String() string {
	switch r {
	case RoleVisited:
		return "visited"
	case RoleFrontier:
		return "frontier"
	case RoleStart:
		return "start"
	case RoleGoal:
		return "goal"
	case RolePath:
		return "path"
	default:
		return "unknown"
	}
}

// Highlight is one cell to fill in a role color.
type Highlight struct {
	Cell grid.Coord
	Role Role
}

// PathSegment is one leg of the final path polyline, in pixel coordinates
// between cell centers.
type PathSegment struct {
	FromX, FromY int
	ToX, ToY     int
}

// Palette maps roles, walls and background to concrete colors. Sinks hold a
// Palette; the core packages never see one.
type Palette struct {
	Background color.Color
	Wall       color.Color
	Visited    color.Color
	Frontier   color.Color
	Start      color.Color
	Goal       color.Color
	Path       color.Color
}

// DefaultPalette returns the classic scheme: white walls on black, green
// visited cells, blue frontier, green start, red goal, magenta path.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{A: 255},
		Wall:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Visited:    color.RGBA{G: 255, A: 255},
		Frontier:   color.RGBA{B: 255, A: 255},
		Start:      color.RGBA{G: 255, A: 255},
		Goal:       color.RGBA{R: 255, A: 255},
		Path:       color.RGBA{R: 255, B: 255, A: 255},
	}
}

// RoleColor resolves a role against the palette.
func (p Palette) RoleColor(r Role) color.Color {
	switch r {
	case RoleFrontier:
		return p.Frontier
	case RoleStart:
		return p.Start
	case RoleGoal:
		return p.Goal
	case RolePath:
		return p.Path
	default:
		return p.Visited
	}
}

//----------------------------------------------------------------------------//
// Sink contract
//----------------------------------------------------------------------------//

// Sink is the render surface. Implementations decide what "present" means:
// a window refresh, a file write, or nothing at all.
type Sink interface {
	// DrawWalls draws every remaining wall segment.
	DrawWalls(segs []grid.Segment)
	// DrawHighlight fills one cell in its role color.
	DrawHighlight(h Highlight)
	// DrawPath draws the final path polyline.
	DrawPath(segs []PathSegment)
	// Present makes everything drawn so far visible.
	Present()
}

//----------------------------------------------------------------------------//
// Replay options
//----------------------------------------------------------------------------//

// Options configure Replay.
type Options struct {
	// Ctx cancels a replay between events.
	Ctx context.Context

	// Delay is the pause after each presented event. Zero replays as fast
	// as the sink allows.
	Delay time.Duration
}

// DefaultOptions returns the baseline replay configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Option mutates Options.
type Option func(*Options)

// WithContext installs ctx; Replay checks it before every event.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDelay pauses after each event so the exploration is watchable.
func WithDelay(d time.Duration) Option {
	return func(o *Options) { o.Delay = d }
}

package viz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrkean/astar-pathfinding-algorithm/astar"
	"github.com/wrkean/astar-pathfinding-algorithm/grid"
	"github.com/wrkean/astar-pathfinding-algorithm/maze"
	"github.com/wrkean/astar-pathfinding-algorithm/viz"
)

// recordSink is a test double that records every call in order.
type recordSink struct {
	wallCalls  int
	walls      []grid.Segment
	highlights []viz.Highlight
	path       []viz.PathSegment
	presents   int
}

func (r *recordSink) DrawWalls(segs []grid.Segment)   { r.wallCalls++; r.walls = segs }
func (r *recordSink) DrawHighlight(h viz.Highlight)   { r.highlights = append(r.highlights, h) }
func (r *recordSink) DrawPath(segs []viz.PathSegment) { r.path = segs }
func (r *recordSink) Present()                        { r.presents++ }

func carvedScene(t *testing.T, cols, rows, cellSize int) *viz.Scene {
	t.Helper()
	g, err := grid.New(cols, rows)
	require.NoError(t, err)
	require.NoError(t, maze.Generate(g, maze.WithSeed(42)))
	sc, err := viz.NewScene(g, cellSize)
	require.NoError(t, err)

	return sc
}

//----------------------------------------------------------------------------//
// Scene
//----------------------------------------------------------------------------//

func TestNewScene_Errors(t *testing.T) {
	_, err := viz.NewScene(nil, 5)
	require.ErrorIs(t, err, viz.ErrNilGrid)

	g, err := grid.New(2, 2)
	require.NoError(t, err)
	_, err = viz.NewScene(g, 0)
	require.ErrorIs(t, err, viz.ErrBadCellSize)
}

func TestScene_Geometry(t *testing.T) {
	sc := carvedScene(t, 6, 4, 10)
	require.Equal(t, 60, sc.Width())
	require.Equal(t, 40, sc.Height())
	require.Equal(t, 10, sc.CellSize())
	require.Equal(t, sc.Grid().WallSegments(10), sc.Walls())
}

func TestScene_HighlightFor(t *testing.T) {
	sc := carvedScene(t, 3, 3, 5)

	h := sc.HighlightFor(astar.Event{Kind: astar.EventVisited, Cell: grid.Coord{X: 1, Y: 2}})
	require.Equal(t, viz.Highlight{Cell: grid.Coord{X: 1, Y: 2}, Role: viz.RoleVisited}, h)

	h = sc.HighlightFor(astar.Event{Kind: astar.EventFrontier, Cell: grid.Coord{X: 2, Y: 0}})
	require.Equal(t, viz.RoleFrontier, h.Role)
}

func TestScene_PathSegments(t *testing.T) {
	sc := carvedScene(t, 4, 4, 10)

	require.Nil(t, sc.PathSegments(nil))
	require.Nil(t, sc.PathSegments([]grid.Coord{{X: 0, Y: 0}}))

	segs := sc.PathSegments([]grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	require.Equal(t, []viz.PathSegment{
		{FromX: 5, FromY: 5, ToX: 15, ToY: 5},
		{FromX: 15, FromY: 5, ToX: 15, ToY: 15},
	}, segs)
}

//----------------------------------------------------------------------------//
// Palette
//----------------------------------------------------------------------------//

func TestDefaultPalette_RoleColors(t *testing.T) {
	p := viz.DefaultPalette()
	require.Equal(t, p.Visited, p.RoleColor(viz.RoleVisited))
	require.Equal(t, p.Frontier, p.RoleColor(viz.RoleFrontier))
	require.Equal(t, p.Start, p.RoleColor(viz.RoleStart))
	require.Equal(t, p.Goal, p.RoleColor(viz.RoleGoal))
	require.Equal(t, p.Path, p.RoleColor(viz.RolePath))
}

//----------------------------------------------------------------------------//
// Replay
//----------------------------------------------------------------------------//

func TestReplay_NilCollaborators(t *testing.T) {
	sc := carvedScene(t, 2, 2, 5)
	require.ErrorIs(t, viz.Replay(nil, sc, nil, nil), viz.ErrNilSink)
	require.ErrorIs(t, viz.Replay(&recordSink{}, nil, nil, nil), viz.ErrNilScene)
}

// TestReplay_FrameSequence checks the frame discipline: walls once, one
// highlight and one present per event, then the terminal frame with start,
// goal and path.
func TestReplay_FrameSequence(t *testing.T) {
	sc := carvedScene(t, 4, 4, 5)
	res, err := astar.Search(sc.Grid(), astar.WithTrace())
	require.NoError(t, err)
	require.True(t, res.Found)

	sink := &recordSink{}
	require.NoError(t, viz.Replay(sink, sc, res.Trace, res.Path))

	require.Equal(t, 1, sink.wallCalls)
	require.Equal(t, sc.Walls(), sink.walls)
	// Walls frame + one per event + terminal frame.
	require.Equal(t, len(res.Trace)+2, sink.presents)
	// Trace highlights then the two endpoint markers.
	require.Len(t, sink.highlights, len(res.Trace)+2)
	last := sink.highlights[len(sink.highlights)-1]
	require.Equal(t, viz.Highlight{Cell: grid.Coord{X: 3, Y: 3}, Role: viz.RoleGoal}, last)
	start := sink.highlights[len(sink.highlights)-2]
	require.Equal(t, viz.Highlight{Cell: grid.Coord{X: 0, Y: 0}, Role: viz.RoleStart}, start)
	require.Equal(t, sc.PathSegments(res.Path), sink.path)
}

// TestReplay_NoPath verifies that an unreachable goal draws walls and trace
// only: no endpoint markers and no polyline.
func TestReplay_NoPath(t *testing.T) {
	sc := carvedScene(t, 3, 3, 5)

	sink := &recordSink{}
	trace := []astar.Event{{Kind: astar.EventVisited, Cell: grid.Coord{X: 0, Y: 0}}}
	require.NoError(t, viz.Replay(sink, sc, trace, nil))

	require.Len(t, sink.highlights, 1)
	require.Nil(t, sink.path)
	require.Equal(t, 3, sink.presents)
}

func TestReplay_ContextCanceled(t *testing.T) {
	sc := carvedScene(t, 3, 3, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &recordSink{}
	trace := []astar.Event{{Kind: astar.EventVisited, Cell: grid.Coord{X: 0, Y: 0}}}
	err := viz.Replay(sink, sc, trace, nil, viz.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, sink.highlights, "no event may be drawn after cancel")
}

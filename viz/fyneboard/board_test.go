package fyneboard

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/wrkean/astar-pathfinding-algorithm/astar"
	"github.com/wrkean/astar-pathfinding-algorithm/grid"
	"github.com/wrkean/astar-pathfinding-algorithm/maze"
	"github.com/wrkean/astar-pathfinding-algorithm/viz"
)

func testScene(t *testing.T) *viz.Scene {
	t.Helper()
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, maze.Generate(g, maze.WithSeed(42)))
	sc, err := viz.NewScene(g, 10)
	require.NoError(t, err)

	return sc
}

func TestNew_NilScene(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNilScene)
}

func TestBoard_LaterRoleWins(t *testing.T) {
	b, err := New(testScene(t))
	require.NoError(t, err)

	c := grid.Coord{X: 1, Y: 1}
	b.DrawHighlight(viz.Highlight{Cell: c, Role: viz.RoleFrontier})
	b.DrawHighlight(viz.Highlight{Cell: c, Role: viz.RoleVisited})

	require.Len(t, b.marks, 1, "same cell must not duplicate")
	require.Equal(t, viz.RoleVisited, b.marks[0].role)
}

// TestBoard_RendererObjects walks the full sink protocol and counts the
// canvas objects the renderer builds: background, one rect per mark, one
// line per wall, one line per path leg.
func TestBoard_RendererObjects(t *testing.T) {
	test.NewApp()
	sc := testScene(t)
	b, err := New(sc)
	require.NoError(t, err)
	w := test.NewWindow(b)
	defer w.Close()
	w.Resize(fyne.NewSize(80, 80))

	res, err := astar.Search(sc.Grid(), astar.WithTrace())
	require.NoError(t, err)
	require.NoError(t, viz.Replay(b, sc, res.Trace, res.Path))

	r := test.WidgetRenderer(b)
	r.Refresh()

	marks := len(b.marks)
	pathLegs := len(sc.PathSegments(res.Path))
	require.Len(t, r.Objects(), 1+marks+len(sc.Walls())+pathLegs)
}

func TestBoard_UpdateTraceRewinds(t *testing.T) {
	test.NewApp()
	sc := testScene(t)
	b, err := New(sc)
	require.NoError(t, err)
	w := test.NewWindow(b)
	defer w.Close()

	res, err := astar.Search(sc.Grid(), astar.WithTrace())
	require.NoError(t, err)
	require.NoError(t, viz.Replay(b, sc, res.Trace, res.Path))
	require.NotEmpty(t, b.path)

	b.UpdateTrace(res.Trace, 2)

	require.Empty(t, b.path, "rewind drops the path")
	require.LessOrEqual(t, len(b.marks), 2)
	require.True(t, b.hasWalls)
}

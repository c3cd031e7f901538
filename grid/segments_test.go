package grid_test

import (
	"testing"

	"github.com/wrkean/astar-pathfinding-algorithm/grid"
)

// TestWallSegments_FullGrid checks the segment count of an uncarved board:
// every lattice line is present exactly once.
func TestWallSegments_FullGrid(t *testing.T) {
	g, err := grid.New(3, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	// Horizontal walls: cols*(rows+1) = 9. Vertical walls: rows*(cols+1) = 8.
	want := 3*(2+1) + 2*(3+1)
	segs := g.WallSegments(5)
	if len(segs) != want {
		t.Fatalf("WallSegments returned %d segments; want %d", len(segs), want)
	}
	// No segment may appear twice even though interior walls are stored twice.
	seen := make(map[grid.Segment]bool, len(segs))
	for _, s := range segs {
		if seen[s] {
			t.Errorf("duplicate segment %+v", s)
		}
		seen[s] = true
	}
}

// TestWallSegments_CarvedWallOmitted verifies that an opened passage drops
// exactly one segment, regardless of which adjacent cell emitted it.
func TestWallSegments_CarvedWallOmitted(t *testing.T) {
	g, _ := grid.New(2, 2)
	full := len(g.WallSegments(4))
	if err := g.OpenWall(grid.Coord{X: 0, Y: 0}, grid.East); err != nil {
		t.Fatal(err)
	}
	carved := len(g.WallSegments(4))
	if carved != full-1 {
		t.Errorf("carving one passage dropped %d segments; want 1", full-carved)
	}
}

// TestWallSegments_Endpoints pins the pixel geometry of the four walls of a
// single cell at a non-trivial coordinate.
func TestWallSegments_Endpoints(t *testing.T) {
	g, _ := grid.New(3, 3)
	const size = 10
	c := grid.Coord{X: 2, Y: 1}

	x, y, w, h := g.CellRect(c, size)
	if x != 20 || y != 10 || w != size || h != size {
		t.Errorf("CellRect = (%d,%d,%d,%d); want (20,10,10,10)", x, y, w, h)
	}
	cx, cy := g.CellCenter(c, size)
	if cx != 25 || cy != 15 {
		t.Errorf("CellCenter = (%d,%d); want (25,15)", cx, cy)
	}

	// The cell's north wall runs along y=10 from x=20 to x=30; locate it.
	wantNorth := grid.Segment{X1: 20, Y1: 10, X2: 30, Y2: 10}
	found := false
	for _, s := range g.WallSegments(size) {
		if s == wantNorth {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("north wall segment %+v missing from WallSegments", wantNorth)
	}
}

// TestString_SingleCell pins the ASCII art of the smallest board.
func TestString_SingleCell(t *testing.T) {
	g, _ := grid.New(1, 1)
	want := "+---+\n|   |\n+---+\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

// TestString_OpenPassage checks that a carved east wall leaves a gap in the art.
func TestString_OpenPassage(t *testing.T) {
	g, _ := grid.New(2, 1)
	if err := g.OpenWall(grid.Coord{X: 0, Y: 0}, grid.East); err != nil {
		t.Fatal(err)
	}
	want := "+---+---+\n|       |\n+---+---+\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/wrkean/astar-pathfinding-algorithm/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: OpenWall and IsPassable
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_OpenWall demonstrates carving one passage and how passability
// answers from both of its ends, while an uncarved wall stays blocked.
func ExampleGrid_OpenWall() {
	g, _ := grid.New(2, 2)
	a := grid.Coord{X: 0, Y: 0}
	b := grid.Coord{X: 1, Y: 0}

	_ = g.OpenWall(a, grid.East)

	fmt.Println("a→east:", g.IsPassable(a, grid.East))
	fmt.Println("b→west:", g.IsPassable(b, grid.West))
	fmt.Println("a→south:", g.IsPassable(a, grid.South))

	// Output:
	// a→east: true
	// b→west: true
	// a→south: false
}

////////////////////////////////////////////////////////////////////////////////
// Example: ASCII rendering
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_String renders a 2×1 board with its single interior wall carved.
func ExampleGrid_String() {
	g, _ := grid.New(2, 1)
	_ = g.OpenWall(grid.Coord{X: 0, Y: 0}, grid.East)

	fmt.Print(g.String())

	// Output:
	// +---+---+
	// |       |
	// +---+---+
}

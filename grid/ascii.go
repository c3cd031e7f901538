package grid

import "strings"

// String renders the board as ASCII art, one "+---+" lattice row per cell
// row. Useful in tests and for the headless front-end's verbose mode.
// Complexity: O(W×H).
func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary.
	b.WriteString("+" + strings.Repeat("---+", g.cols) + "\n")

	var c Coord
	for c.Y = 0; c.Y < g.rows; c.Y++ {
		// Cell row: interiors and east walls.
		b.WriteString("|")
		for c.X = 0; c.X < g.cols; c.X++ {
			if g.cells[g.index(c)].Walls[East] {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		// Wall row: south walls and corners.
		b.WriteString("+")
		for c.X = 0; c.X < g.cols; c.X++ {
			if g.cells[g.index(c)].Walls[South] {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

package grid

import "fmt"

// New constructs a cols×rows Grid with every wall present and every cell
// unvisited. Returns ErrBadDimensions for non-positive cols or rows; no
// partial state is produced on failure.
// Complexity: O(W×H) time and memory.
func New(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, cols, rows)
	}
	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	// All walls up: a freshly built board has no passages at all.
	var i int
	for i = range g.cells {
		g.cells[i].Walls = [NumDirections]bool{true, true, true, true}
	}

	return g, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// index maps a coordinate to its row-major slice position: Y*cols + X.
func (g *Grid) index(c Coord) int {
	return c.Y*g.cols + c.X
}

// CellAt returns a pointer to the cell at c, or (nil, false) when c is out of
// bounds. The pointer stays valid for the lifetime of the grid.
func (g *Grid) CellAt(c Coord) (*Cell, bool) {
	if !g.InBounds(c) {
		return nil, false
	}

	return &g.cells[g.index(c)], true
}

// NeighborCoords returns the coordinate one step from c in direction d.
// No bounds check is performed; the caller validates the result.
func (g *Grid) NeighborCoords(c Coord, d Direction) Coord {
	dx, dy := d.Delta()

	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// RemoveWall marks the wall in direction d removed on cell c only. It does
// not touch the neighbor's reciprocal wall; callers that carve passages are
// responsible for the pairing (or should use OpenWall, which maintains it).
// Out-of-bounds coordinates are ignored.
func (g *Grid) RemoveWall(c Coord, d Direction) {
	if !g.InBounds(c) {
		return
	}
	g.cells[g.index(c)].Walls[d] = false
}

// OpenWall carves a passage between c and its neighbor in direction d,
// removing the wall on both sides so the stored halves stay consistent.
// Returns ErrOutOfBounds when either end of the passage is off the board.
func (g *Grid) OpenWall(c Coord, d Direction) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}
	n := g.NeighborCoords(c, d)
	if !g.InBounds(n) {
		return fmt.Errorf("%w: no %s neighbor of (%d,%d)", ErrOutOfBounds, d, c.X, c.Y)
	}
	g.cells[g.index(c)].Walls[d] = false
	g.cells[g.index(n)].Walls[d.Opposite()] = false

	return nil
}

// IsPassable reports whether a step from c in direction d is allowed: c must
// be in bounds and its wall toward d removed. Out-of-bounds queries return
// false rather than an error, which keeps neighbor expansion branch-free at
// the grid edges.
// Complexity: O(1).
func (g *Grid) IsPassable(c Coord, d Direction) bool {
	if !g.InBounds(c) {
		return false
	}

	return !g.cells[g.index(c)].Walls[d]
}

package grid

// wallSegment derives the pixel line for the wall of cell c in direction d,
// for a uniform square cell of cellSize pixels. Endpoints follow directly
// from the cell's coordinates, so the same wall always maps to the same line.
func wallSegment(c Coord, d Direction, cellSize int) Segment {
	px, py := c.X*cellSize, c.Y*cellSize
	switch d {
	case North:
		return Segment{X1: px, Y1: py, X2: px + cellSize, Y2: py}
	case South:
		return Segment{X1: px, Y1: py + cellSize, X2: px + cellSize, Y2: py + cellSize}
	case West:
		return Segment{X1: px, Y1: py, X2: px, Y2: py + cellSize}
	default: // East
		return Segment{X1: px + cellSize, Y1: py, X2: px + cellSize, Y2: py + cellSize}
	}
}

// WallSegments returns one drawable line per wall still present, a stateless
// pass over the finished board. Interior walls are stored twice (once per
// adjacent cell) but emitted once: every cell contributes its North and West
// walls, while South and East are emitted only on the bottom and right borders.
// Complexity: O(W×H) time, O(walls) memory.
func (g *Grid) WallSegments(cellSize int) []Segment {
	segs := make([]Segment, 0, g.cols*g.rows*2+g.cols+g.rows)
	var (
		c    Coord
		cell *Cell
	)
	for c.Y = 0; c.Y < g.rows; c.Y++ {
		for c.X = 0; c.X < g.cols; c.X++ {
			cell = &g.cells[g.index(c)]
			if cell.Walls[North] {
				segs = append(segs, wallSegment(c, North, cellSize))
			}
			if cell.Walls[West] {
				segs = append(segs, wallSegment(c, West, cellSize))
			}
			if c.Y == g.rows-1 && cell.Walls[South] {
				segs = append(segs, wallSegment(c, South, cellSize))
			}
			if c.X == g.cols-1 && cell.Walls[East] {
				segs = append(segs, wallSegment(c, East, cellSize))
			}
		}
	}

	return segs
}

// CellRect returns the pixel rectangle of cell c for a uniform cell size:
// top-left corner (x, y) and side lengths (w, h).
func (g *Grid) CellRect(c Coord, cellSize int) (x, y, w, h int) {
	return c.X * cellSize, c.Y * cellSize, cellSize, cellSize
}

// CellCenter returns the pixel center of cell c, the anchor point for path
// polyline segments.
func (g *Grid) CellCenter(c Coord, cellSize int) (x, y int) {
	return c.X*cellSize + cellSize/2, c.Y*cellSize + cellSize/2
}

package grid

// WallSymmetric reports whether every removed wall is removed on both of its
// stored halves: for each cell and direction with an in-bounds neighbor,
// Walls[d] on the cell equals Walls[d.Opposite()] on the neighbor. A carver
// that only ever uses OpenWall cannot break this.
// Complexity: O(W×H).
func (g *Grid) WallSymmetric() bool {
	var (
		c, n Coord
		d    Direction
	)
	for c.Y = 0; c.Y < g.rows; c.Y++ {
		for c.X = 0; c.X < g.cols; c.X++ {
			for _, d = range Directions {
				n = g.NeighborCoords(c, d)
				if !g.InBounds(n) {
					continue
				}
				if g.cells[g.index(c)].Walls[d] != g.cells[g.index(n)].Walls[d.Opposite()] {
					return false
				}
			}
		}
	}

	return true
}

// RemovedWallPairs counts carved passages (logical edges). Each interior wall
// is stored twice, so only South and East removals are counted per cell; on a
// symmetric grid this equals the number of edges of the passage graph. A
// perfect maze has exactly Cols*Rows-1 of them.
// Complexity: O(W×H).
func (g *Grid) RemovedWallPairs() int {
	var (
		c     Coord
		pairs int
	)
	for c.Y = 0; c.Y < g.rows; c.Y++ {
		for c.X = 0; c.X < g.cols; c.X++ {
			if c.Y < g.rows-1 && !g.cells[g.index(c)].Walls[South] {
				pairs++
			}
			if c.X < g.cols-1 && !g.cells[g.index(c)].Walls[East] {
				pairs++
			}
		}
	}

	return pairs
}

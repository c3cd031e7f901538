// Package grid defines core types and sentinel errors for the maze board.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates New was called with non-positive cols or rows.
	ErrBadDimensions = errors.New("grid: dimensions must be positive")
	// ErrOutOfBounds indicates an operation addressed a cell outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Direction identifies one of the four cell walls.
type Direction uint8

const (
	// North is the wall toward decreasing Y.
	North Direction = iota
	// South is the wall toward increasing Y.
	South
	// West is the wall toward decreasing X.
	West
	// East is the wall toward increasing X.
	East

	// NumDirections is the number of walls per cell.
	NumDirections = 4
)

// Directions lists all four directions in a fixed order, for iteration.
var Directions = [NumDirections]Direction{North, South, West, East}

// String returns the direction name, or "invalid" for unknown values.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "invalid"
	}
}

// Opposite returns the reciprocal direction: North↔South, West↔East.
// The wall at (c, d) and the wall at (neighbor, d.Opposite()) are the two
// stored halves of one logical edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// Delta returns the coordinate offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 1, 0
	}
}

// Coord addresses a cell by its column X and row Y, both zero-based.
type Coord struct {
	X, Y int
}

// Cell is a single grid cell: four wall flags (true = wall present) and a
// visited marker used only during maze generation.
type Cell struct {
	// Walls holds the presence flag per Direction.
	Walls [NumDirections]bool
	// Visited marks the cell as reached by the carver. Search never reads it.
	Visited bool
}

// Segment is a drawable wall: a line from (X1,Y1) to (X2,Y2) in pixel space.
type Segment struct {
	X1, Y1, X2, Y2 int
}

// Grid is a dense COLS×ROWS board of cells, row-major. The shape is fixed at
// construction; only wall and visited flags mutate afterwards.
type Grid struct {
	cols, rows int
	cells      []Cell
}

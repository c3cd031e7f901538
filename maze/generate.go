package maze

import (
	"fmt"
	"math/rand"

	"github.com/wrkean/astar-pathfinding-algorithm/grid"
)

// frame is one level of the explicit depth-first stack: the cell being
// expanded, its shuffled direction order, and how many directions have been
// tried so far. Keeping the cursor in the frame reproduces the recursive
// carve order exactly: after a child is exhausted, expansion resumes with the
// parent's remaining directions.
type frame struct {
	cell grid.Coord
	dirs [grid.NumDirections]grid.Direction
	next int
}

// carver holds the mutable state for a single Generate run.
type carver struct {
	g     *grid.Grid
	rng   *rand.Rand
	hook  CarveFunc
	stack []frame
}

// Generate carves a perfect maze into g by randomized depth-first
// backtracking from the configured origin. On success every cell is visited,
// the passage graph is a spanning tree of the grid, and the two-sided wall
// invariant holds throughout (carving goes through grid.OpenWall only).
//
// Generate takes exclusive mutable ownership of g for the duration of the
// call; the grid must be fresh (no visited cells). The run is deterministic
// for a fixed seed.
//
// Complexity: O(W×H) time, O(W×H) worst-case stack memory.
func Generate(g *grid.Grid, opts ...Option) error {
	// 1) Validate the grid.
	if g == nil {
		return ErrNilGrid
	}

	// 2) Apply options over defaults.
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	// 3) Validate the origin.
	if !g.InBounds(cfg.Origin) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOriginOutOfBounds,
			cfg.Origin.X, cfg.Origin.Y, g.Cols(), g.Rows())
	}

	// 4) Require a fresh board: any visited cell means a previous run owned
	//    this grid and the spanning-tree guarantee no longer holds.
	var c grid.Coord
	for c.Y = 0; c.Y < g.Rows(); c.Y++ {
		for c.X = 0; c.X < g.Cols(); c.X++ {
			if cell, _ := g.CellAt(c); cell.Visited {
				return fmt.Errorf("%w: cell (%d,%d) already visited", ErrAlreadyCarved, c.X, c.Y)
			}
		}
	}

	// 5) Resolve the RNG: explicit Rand wins, otherwise the seed policy.
	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	w := &carver{
		g:    g,
		rng:  rng,
		hook: cfg.OnCarve,
		// Worst case is a fully serpentine maze: one frame per cell.
		stack: make([]frame, 0, g.Cols()*g.Rows()),
	}
	w.push(cfg.Origin)
	w.run()

	return nil
}

// push marks c visited, shuffles its direction order once, and puts it on
// the stack. Each cell is pushed exactly once, so the shuffle is uniform per
// cell and the unvisited set strictly shrinks — which is why run terminates.
func (w *carver) push(c grid.Coord) {
	cell, _ := w.g.CellAt(c)
	cell.Visited = true

	f := frame{cell: c, dirs: grid.Directions}
	shuffleDirections(&f.dirs, w.rng)
	w.stack = append(w.stack, f)
}

// run drains the stack: the top frame tries its remaining directions in
// shuffled order; the first in-bounds unvisited neighbor gets the shared wall
// opened on both sides and is pushed (descend); a frame with nothing left is
// popped (backtrack).
func (w *carver) run() {
	var (
		top  *frame
		d    grid.Direction
		n    grid.Coord
		cell *grid.Cell
		ok   bool
	)
	for len(w.stack) > 0 {
		top = &w.stack[len(w.stack)-1]

		descended := false
		for top.next < len(top.dirs) {
			d = top.dirs[top.next]
			top.next++

			n = w.g.NeighborCoords(top.cell, d)
			cell, ok = w.g.CellAt(n)
			if !ok || cell.Visited {
				continue
			}

			// OpenWall maintains the two-sided invariant; the neighbor is
			// known to be in bounds, so the error cannot occur here.
			_ = w.g.OpenWall(top.cell, d)
			if w.hook != nil {
				w.hook(top.cell, n)
			}
			w.push(n)
			descended = true

			break
		}

		if !descended {
			w.stack = w.stack[:len(w.stack)-1]
		}
	}
}

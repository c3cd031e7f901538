package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/wrkean/astar-pathfinding-algorithm/grid"
)

// Search computes a minimum-length path from start to goal across the carved
// grid g, treating g as read-only. Legality of every step is decided solely
// by g.IsPassable, so the search never special-cases "maze" versus generic
// grid topology.
//
// Returns a Result and an error. Invalid configuration (nil grid, endpoints
// off the board) and context cancellation are errors; an unreachable goal is
// not — it yields Found == false with a nil Path.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	// 1) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Apply options over defaults; resolve the grid-derived goal.
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}
	if !cfg.goalSet {
		cfg.Goal = grid.Coord{X: g.Cols() - 1, Y: g.Rows() - 1}
	}

	// 3) Validate endpoints.
	if !g.InBounds(cfg.Start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, cfg.Start.X, cfg.Start.Y)
	}
	if !g.InBounds(cfg.Goal) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrGoalOutOfBounds, cfg.Goal.X, cfg.Goal.Y)
	}

	// 4) Prepare per-cell tables, row-major like the grid itself.
	total := g.Cols() * g.Rows()
	r := &runner{
		g:        g,
		options:  cfg,
		gCost:    make([]int, total),
		closed:   make([]bool, total),
		cameFrom: make(map[grid.Coord]grid.Coord, total/4),
	}
	for i := range r.gCost {
		r.gCost[i] = math.MaxInt
	}

	// 5) Seed the frontier with the start node.
	heap.Init(&r.frontier)
	r.gCost[r.index(cfg.Start)] = 0
	heap.Push(&r.frontier, &nodeItem{
		cell:  cfg.Start,
		gCost: 0,
		fCost: manhattan(cfg.Start, cfg.Goal),
	})

	// 6) Run the main loop.
	return r.process()
}

// manhattan is the heuristic: |goal.X−x| + |goal.Y−y|. Admissible and
// consistent for unit-cost 4-connected movement, which guarantees the first
// goal pop carries the optimal cost.
func manhattan(c, goal grid.Coord) int {
	dx := goal.X - c.X
	if dx < 0 {
		dx = -dx
	}
	dy := goal.Y - c.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g        *grid.Grid
	options  Options
	frontier nodePQ
	gCost    []int                     // best-known cost per cell, MaxInt = unreached
	closed   []bool                    // cost finalized
	cameFrom map[grid.Coord]grid.Coord // back-pointer toward the start
	trace    []Event
	expanded int
}

// index maps a coordinate to its row-major table position.
func (r *runner) index(c grid.Coord) int {
	return c.Y*r.g.Cols() + c.X
}

// emit records an advisory exploration event and fires the matching hook.
// Purely observational: no search state is read or written here.
func (r *runner) emit(kind EventKind, c grid.Coord) {
	if r.options.Trace {
		r.trace = append(r.trace, Event{Kind: kind, Cell: c})
	}
	switch kind {
	case EventVisited:
		if r.options.OnVisit != nil {
			r.options.OnVisit(c)
		}
	case EventFrontier:
		if r.options.OnFrontier != nil {
			r.options.OnFrontier(c)
		}
	}
}

// process is the core A* loop: pop the lowest-f node, skip stale entries,
// close and emit, stop at the goal, otherwise relax the four directions.
func (r *runner) process() (*Result, error) {
	var (
		item *nodeItem
		idx  int
	)
	for r.frontier.Len() > 0 {
		// Cancellation check once per expansion; events are the natural
		// points where a hosting display loop may observe a cancel.
		select {
		case <-r.options.Ctx.Done():
			return nil, r.options.Ctx.Err()
		default:
		}

		// 1) Pop the smallest-f entry.
		item = heap.Pop(&r.frontier).(*nodeItem)
		idx = r.index(item.cell)

		// 2) Stale duplicate from lazy-decrease-key: discard and continue.
		if r.closed[idx] {
			continue
		}

		// 3) Close the cell; its distance is now final.
		r.closed[idx] = true
		r.expanded++
		r.emit(EventVisited, item.cell)

		// 4) Goal reached with minimum f: reconstruct and return.
		if item.cell == r.options.Goal {
			return &Result{
				Path:     r.reconstruct(item.cell),
				Found:    true,
				Cost:     item.gCost,
				Expanded: r.expanded,
				Trace:    r.trace,
			}, nil
		}

		// 5) Relax every passable direction.
		r.relax(item)
	}

	// Frontier drained without reaching the goal: no path exists. This is a
	// result, not an error — impossible on a perfect maze, handled anyway.
	return &Result{
		Path:     nil,
		Found:    false,
		Expanded: r.expanded,
		Trace:    r.trace,
	}, nil
}

// relax attempts to improve each neighbor of the closed cell. A step is
// legal only when the shared wall is open; every step costs exactly 1.
func (r *runner) relax(item *nodeItem) {
	var (
		d         grid.Direction
		n         grid.Coord
		nIdx      int
		tentative int
	)
	for _, d = range grid.Directions {
		if !r.g.IsPassable(item.cell, d) {
			continue
		}
		n = r.g.NeighborCoords(item.cell, d)
		nIdx = r.index(n)
		if r.closed[nIdx] {
			continue
		}

		tentative = item.gCost + 1
		if tentative >= r.gCost[nIdx] {
			continue
		}

		// Strictly better: record the improvement and lazily push a fresh
		// frontier entry. Stale duplicates are filtered at pop time.
		r.gCost[nIdx] = tentative
		r.cameFrom[n] = item.cell
		heap.Push(&r.frontier, &nodeItem{
			cell:  n,
			gCost: tentative,
			fCost: tentative + manhattan(n, r.options.Goal),
		})
		r.emit(EventFrontier, n)
	}
}

// reconstruct follows came-from links from the goal back to the start, then
// reverses into start→goal order. Start==goal yields a single-cell path.
func (r *runner) reconstruct(goal grid.Coord) []grid.Coord {
	path := []grid.Coord{goal}
	cur := goal
	for cur != r.options.Start {
		prev, ok := r.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// Reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one frontier entry: a cell with its accumulated cost from the
// start and its f = g + h ordering key.
type nodeItem struct {
	cell  grid.Coord
	gCost int
	fCost int
}

// nodePQ is a min-heap of *nodeItem ordered by fCost ascending, under the
// lazy-decrease-key pattern: improvements push new entries, outdated ones
// remain and are ignored when popped (checked via the closed set). Equal
// f-costs are broken by heap layout — any consistent tie-break preserves
// optimality, only the visual exploration order differs.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller fCost → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].fCost < pq[j].fCost }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// Package astar computes shortest paths across a carved grid.Grid using A*
// search with the Manhattan-distance heuristic.
//
// What:
//
//   - Search runs informed best-first search from a start cell to a goal
//     cell over the grid's implicit adjacency: two cells are neighbors iff
//     grid.IsPassable allows the step, every step costs exactly 1.
//   - The frontier is a min-heap ordered by f = g + h under the
//     "lazy-decrease-key" pattern: improvements push duplicate entries and
//     stale pops are skipped via the closed set. Duplicates are expected,
//     never an error.
//   - Exploration is observable: an Event is recorded (or a hook fired) each
//     time a cell is popped and closed (visited) and each time a neighbor's
//     cost improves and it is pushed (frontier). Events are advisory output
//     only — they never influence search order or correctness.
//
// Why:
//
//   - Manhattan distance is admissible and consistent on a 4-connected grid
//     with unit step costs, so the first time the goal is popped the path is
//     shortest. Any tie-break among equal f-costs preserves optimality.
//   - An unreachable goal is a first-class result (Found == false, nil
//     path), not an error: it cannot happen on a perfect maze but must be
//     handled on disconnected or corrupted boards.
//
// Complexity:
//
//   - Time:   O(W×H log(W×H)) — each cell closes at most once, each of the
//     ≤4 relaxations per close may push, heap ops cost O(log N).
//   - Memory: O(W×H) for the cost table, closed set and came-from links.
//
// Options:
//
//   - WithStart(c), WithGoal(c): endpoints; defaults are (0,0) and
//     (Cols-1, Rows-1).
//   - WithTrace():                record the exploration event stream.
//   - WithOnVisit/WithOnFrontier: per-event hooks, advisory.
//   - WithContext(ctx):           cancellation between expansions.
//
// Errors:
//
//   - ErrNilGrid:           Search called with a nil grid.
//   - ErrStartOutOfBounds:  start outside the board.
//   - ErrGoalOutOfBounds:   goal outside the board.
//   - context errors:       when the supplied context is done.
package astar

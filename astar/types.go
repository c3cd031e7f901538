// Package astar defines configuration options, events, and sentinel errors
// for the grid pathfinder.
package astar

import (
	"context"
	"errors"

	"github.com/wrkean/astar-pathfinding-algorithm/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates the start cell lies outside the board.
	ErrStartOutOfBounds = errors.New("astar: start out of bounds")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the board.
	ErrGoalOutOfBounds = errors.New("astar: goal out of bounds")
)

// EventKind classifies one exploration event.
type EventKind uint8

const (
	// EventVisited marks a cell popped from the frontier and closed: its
	// shortest distance from the start is final.
	EventVisited EventKind = iota

	// EventFrontier marks a cell whose best-known cost just improved and
	// which was (re)pushed onto the frontier.
	EventFrontier
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventVisited:
		return "visited"
	case EventFrontier:
		return "frontier"
	default:
		return "invalid"
	}
}

// Event is one advisory exploration record. A render sink consumes the
// sequence at its own pace; the search never reads it back.
type Event struct {
	Kind EventKind
	Cell grid.Coord
}

// VisitFunc observes one exploration event cell. Hooks are advisory: they
// must not mutate the grid and cannot affect search ordering.
type VisitFunc func(c grid.Coord)

// Options configures a single Search run.
type Options struct {
	// Ctx allows cancellation between node expansions.
	Ctx context.Context

	// Start is the search origin. Default (0,0).
	Start grid.Coord

	// Goal is the search target. Default (Cols-1, Rows-1), resolved against
	// the grid inside Search when WithGoal was not supplied.
	Goal grid.Coord

	// Trace records the exploration event stream into Result.Trace.
	Trace bool

	// OnVisit fires when a cell is popped and closed.
	OnVisit VisitFunc

	// OnFrontier fires when a cell's cost improves and it is pushed.
	OnFrontier VisitFunc

	// goalSet distinguishes an explicit WithGoal from the grid-derived
	// default.
	goalSet bool
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: background context,
// start (0,0), goal derived from the grid, no trace, no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Start: grid.Coord{X: 0, Y: 0},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart sets the search origin. Validated against the grid inside Search.
func WithStart(c grid.Coord) Option {
	return func(o *Options) { o.Start = c }
}

// WithGoal sets the search target. Validated against the grid inside Search.
func WithGoal(c grid.Coord) Option {
	return func(o *Options) {
		o.Goal = c
		o.goalSet = true
	}
}

// WithTrace enables recording of the exploration event stream.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithOnVisit registers a hook fired when a cell is closed.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnFrontier registers a hook fired when a cell's cost improves.
func WithOnFrontier(fn VisitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFrontier = fn
		}
	}
}

// Result is the outcome of one Search run.
type Result struct {
	// Path is the start→goal cell sequence, consecutive cells adjacent
	// through open walls. Nil when Found is false; a single-cell path when
	// start equals goal.
	Path []grid.Coord

	// Found reports whether the goal was reached. A false value with a nil
	// error means "no path exists" — a first-class result, not a failure.
	Found bool

	// Cost is the path length in steps (len(Path)-1); 0 when not found.
	Cost int

	// Expanded counts cells popped and closed, a measure of search effort.
	Expanded int

	// Trace is the recorded event stream when WithTrace was supplied, in
	// emission order; nil otherwise.
	Trace []Event
}

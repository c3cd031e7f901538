// Package maze defines configuration options and sentinel errors for the
// depth-first maze carver.
package maze

import (
	"errors"
	"math/rand"

	"github.com/wrkean/astar-pathfinding-algorithm/grid"
)

// Sentinel errors returned by Generate.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Generate.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrOriginOutOfBounds indicates that the carving origin lies outside the
	// board.
	ErrOriginOutOfBounds = errors.New("maze: origin out of bounds")

	// ErrAlreadyCarved indicates that the grid carries visited cells from an
	// earlier generation run. Generate requires a fresh board so the visited
	// flags and wall state it mutates are unambiguously its own.
	ErrAlreadyCarved = errors.New("maze: grid already carved")
)

// CarveFunc observes one opened passage, from the cell being expanded to the
// neighbor being entered. Hooks are advisory: they must not mutate the grid.
type CarveFunc func(from, to grid.Coord)

// Options configures a single Generate run.
type Options struct {
	// Seed feeds the deterministic RNG when Rand is nil. Seed==0 selects a
	// fixed default seed, so the zero Options value is still reproducible.
	Seed int64

	// Rand, when non-nil, is used verbatim and Seed is ignored.
	Rand *rand.Rand

	// Origin is the cell the carver starts from.
	Origin grid.Coord

	// OnCarve is invoked once per opened passage, in carve order.
	OnCarve CarveFunc
}

// Option is a functional option for Generate.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: origin (0,0), default
// deterministic seed, no hook.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Rand:    nil,
		Origin:  grid.Coord{X: 0, Y: 0},
		OnCarve: nil,
	}
}

// WithSeed sets the RNG seed. Seed==0 keeps the fixed default seed policy.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies an RNG directly, overriding WithSeed. The generator is
// single-threaded, so the RNG is never shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOrigin sets the carving start cell. Validated against the grid inside
// Generate.
func WithOrigin(c grid.Coord) Option {
	return func(o *Options) { o.Origin = c }
}

// WithOnCarve registers an observation hook called once per opened passage.
func WithOnCarve(fn CarveFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}

package viz

import (
	"time"

	"github.com/wrkean/astar-pathfinding-algorithm/astar"
	"github.com/wrkean/astar-pathfinding-algorithm/grid"
)

// Replay feeds a recorded exploration trace into the sink one event per
// frame, then draws the terminal state: start and goal markers and the path
// polyline. The sink consumes at its own pace; WithDelay slows the loop down
// for a human viewer and WithContext aborts it between events.
//
// An empty trace skips straight to the terminal frame. A nil path (goal was
// unreachable) draws no endpoint markers and no polyline.
func Replay(sink Sink, sc *Scene, trace []astar.Event, path []grid.Coord, opts ...Option) error {
	// 1. Validate collaborators.
	if sink == nil {
		return ErrNilSink
	}
	if sc == nil {
		return ErrNilScene
	}

	// 2. Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Walls first, every later frame paints on top of them.
	sink.DrawWalls(sc.Walls())
	sink.Present()

	// 4. One event per frame.
	for _, ev := range trace {
		if err := cfg.Ctx.Err(); err != nil {
			return err
		}
		sink.DrawHighlight(sc.HighlightFor(ev))
		sink.Present()
		if cfg.Delay > 0 {
			time.Sleep(cfg.Delay)
		}
	}

	// 5. Terminal frame: endpoints and the path polyline.
	if err := cfg.Ctx.Err(); err != nil {
		return err
	}
	if len(path) > 0 {
		sink.DrawHighlight(Highlight{Cell: path[0], Role: RoleStart})
		sink.DrawHighlight(Highlight{Cell: path[len(path)-1], Role: RoleGoal})
		sink.DrawPath(sc.PathSegments(path))
	}
	sink.Present()

	return nil
}

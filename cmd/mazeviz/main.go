// Command mazeviz carves a maze, solves it, and replays the exploration in a
// window. Configuration comes from the environment (and an optional .env
// file): MAZE_COLS, MAZE_ROWS, MAZE_CELL_SIZE, MAZE_SEED, MAZE_DELAY_MS.
package main

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/wrkean/astar-pathfinding-algorithm/astar"
	"github.com/wrkean/astar-pathfinding-algorithm/config"
	"github.com/wrkean/astar-pathfinding-algorithm/grid"
	"github.com/wrkean/astar-pathfinding-algorithm/maze"
	"github.com/wrkean/astar-pathfinding-algorithm/viz"
	"github.com/wrkean/astar-pathfinding-algorithm/viz/fyneboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	g, err := grid.New(cfg.Cols, cfg.Rows)
	if err != nil {
		log.Fatalf("grid: %v", err)
	}
	if err = maze.Generate(g, maze.WithSeed(cfg.Seed)); err != nil {
		log.Fatalf("generate: %v", err)
	}

	res, err := astar.Search(g, astar.WithTrace())
	if err != nil {
		log.Fatalf("search: %v", err)
	}
	if !res.Found {
		log.Fatal("no path from start to goal")
	}
	log.Printf("solved %dx%d maze: %d steps, %d cells expanded", cfg.Cols, cfg.Rows, res.Cost, res.Expanded)

	sc, err := viz.NewScene(g, cfg.CellSize)
	if err != nil {
		log.Fatalf("scene: %v", err)
	}
	board, err := fyneboard.New(sc)
	if err != nil {
		log.Fatalf("board: %v", err)
	}

	a := app.New()
	w := a.NewWindow("maze")
	w.SetContent(board)
	w.Resize(fyne.NewSize(float32(sc.Width()), float32(sc.Height())))

	// Closing the window cancels the replay goroutine.
	ctx, cancel := context.WithCancel(context.Background())
	w.SetOnClosed(cancel)

	go func() {
		replayErr := viz.Replay(board, sc, res.Trace, res.Path,
			viz.WithDelay(cfg.Delay),
			viz.WithContext(ctx),
		)
		if replayErr != nil {
			log.Printf("replay stopped: %v", replayErr)
		}
	}()

	w.ShowAndRun()
}

// Command mazepng is the headless front-end: it carves a maze, solves it,
// and writes the exploration overlay plus the final path to a PNG.
//
// Usage:
//
//	mazepng -cols 64 -rows 36 -cell 10 -seed 42 -o maze.png
//	mazepng -cols 8 -rows 8 -ascii
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/wrkean/astar-pathfinding-algorithm/astar"
	"github.com/wrkean/astar-pathfinding-algorithm/config"
	"github.com/wrkean/astar-pathfinding-algorithm/grid"
	"github.com/wrkean/astar-pathfinding-algorithm/maze"
	"github.com/wrkean/astar-pathfinding-algorithm/viz"
	"github.com/wrkean/astar-pathfinding-algorithm/viz/imagesink"
)

func main() {
	cols := flag.Int("cols", config.DefaultCols, "grid width in cells")
	rows := flag.Int("rows", config.DefaultRows, "grid height in cells")
	cell := flag.Int("cell", config.DefaultCellSize, "pixels per cell")
	seed := flag.Int64("seed", 0, "generator seed, 0 for the fixed default")
	out := flag.String("o", "maze.png", "output PNG path")
	frames := flag.String("frames", "", "directory for per-event frame dumps")
	ascii := flag.Bool("ascii", false, "print the maze as ASCII art instead of rendering")
	flag.Parse()

	g, err := grid.New(*cols, *rows)
	if err != nil {
		log.Fatalf("grid: %v", err)
	}

	start := time.Now()
	if err = maze.Generate(g, maze.WithSeed(*seed)); err != nil {
		log.Fatalf("generate: %v", err)
	}
	log.Printf("carved %dx%d maze in %s", *cols, *rows, time.Since(start))

	if *ascii {
		fmt.Print(g.String())
		return
	}

	start = time.Now()
	res, err := astar.Search(g, astar.WithTrace())
	if err != nil {
		log.Fatalf("search: %v", err)
	}
	log.Printf("searched in %s: found=%v steps=%d expanded=%d",
		time.Since(start), res.Found, res.Cost, res.Expanded)

	sc, err := viz.NewScene(g, *cell)
	if err != nil {
		log.Fatalf("scene: %v", err)
	}

	var opts []imagesink.Option
	if *frames != "" {
		opts = append(opts, imagesink.WithFrameDir(*frames))
	}
	sink, err := imagesink.New(sc, opts...)
	if err != nil {
		log.Fatalf("sink: %v", err)
	}

	if err = viz.Replay(sink, sc, res.Trace, res.Path); err != nil {
		log.Fatalf("replay: %v", err)
	}
	if err = sink.Save(*out); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("wrote %s", *out)
}

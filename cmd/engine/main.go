// engine is a minimal harness for the parallel alpha-beta searcher: it
// loads a single position, runs one find-best-move cycle through the
// worker pool, and prints the result. It does not speak a board-game
// protocol; wiring a front-end onto the pool is left to the caller.
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"

	"github.com/carbon-chess/engine/pkg/board/fen"
	"github.com/carbon-chess/engine/pkg/eval"
	"github.com/carbon-chess/engine/pkg/pool"
	"github.com/seekerror/logw"
)

var (
	position = flag.String("fen", "", "Position to search (default to standard start)")
	depth    = flag.Int("depth", 6, "Search depth, in ply")
	workers  = flag.Int("workers", runtime.NumCPU(), "Number of search workers")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	if *position == "" {
		*position = fen.Initial
	}
	pos, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", *position, err)
	}

	logw.Infof(ctx, "Searching %q to depth %v with %v workers", *position, *depth, *workers)

	p := pool.New(ctx, *workers, eval.Standard{})
	p.FindBestMove(ctx, pos, *depth)
	if !p.HasResult() {
		p.WaitMain()
	}

	o, ok := p.TakeResult()
	if !ok {
		logw.Exitf(ctx, "No result produced")
	}
	if o.Err != nil {
		fmt.Printf("game over: %v\n", o.Err)
		return
	}
	fmt.Printf("bestmove %v score %v\n", o.Best.Move, o.Best.Score)
}

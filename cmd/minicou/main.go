// Command minicou runs the alpha-beta solver against a single position and
// prints its chosen move. It is a thin CLI shell over internal/engine, not
// part of the core library.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BuonOmo/ascacou-go/internal/board"
	"github.com/BuonOmo/ascacou-go/internal/engine"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "minicou:", err)
		os.Exit(1)
	}
}

func run(args []string, out *os.File) error {
	fs := flag.NewFlagSet("minicou", flag.ContinueOnError)
	depth := fs.Int("d", 25, "search depth (5-25)")
	timeoutMS := fs.Int("t", 10_000, "search timeout in milliseconds (>=1)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fen := "//// 01234567"
	if fs.NArg() > 0 {
		fen = fs.Arg(0)
	}

	if *depth < 5 || *depth > 25 {
		return fmt.Errorf("depth must be in [5, 25], got %d", *depth)
	}
	if *timeoutMS < 1 {
		return fmt.Errorf("timeout must be >= 1ms, got %d", *timeoutMS)
	}

	b, err := board.FromFEN(fen)
	if err != nil {
		return fmt.Errorf("parsing FEN: %w", err)
	}

	deadline := time.Now().Add(time.Duration(*timeoutMS) * time.Millisecond)
	start := time.Now()

	s := engine.NewSolver()
	var (
		score   int
		mov     *board.Move
		nodes   uint64
		reached int
	)
	for d := 1; d <= *depth; d++ {
		if d > 1 && time.Now().After(deadline) {
			break
		}
		depthArg := d
		score, mov, nodes = s.Solve(b, &depthArg)
		reached = d
	}

	elapsed := time.Since(start)
	if mov == nil {
		fmt.Fprintln(out, "N.A.")
		return nil
	}
	fmt.Fprintf(out, "move=%s elapsed=%s score=%d depth=%d nodes=%d\n",
		mov, elapsed, score, reached, nodes)
	return nil
}

// Command alphacou runs the Monte Carlo tree search solver against a
// single position for a fixed wall-clock budget. It is a thin CLI shell
// over internal/mcts, not part of the core library.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/BuonOmo/ascacou-go/internal/board"
	"github.com/BuonOmo/ascacou-go/internal/mcts"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "alphacou:", err)
		os.Exit(1)
	}
}

func run(args []string, out *os.File) error {
	fs := flag.NewFlagSet("alphacou", flag.ContinueOnError)
	seconds := fs.Int("d", 1, "search duration in seconds")
	sequence := fs.Bool("s", false, "print the most-visited continuation instead of one move")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fen := "//// 01234567"
	if fs.NArg() > 0 {
		fen = fs.Arg(0)
	}

	b, err := board.FromFEN(fen)
	if err != nil {
		return fmt.Errorf("parsing FEN: %w", err)
	}

	deadline := time.Now().Add(time.Duration(*seconds) * time.Second)
	s := mcts.NewSolver(rand.New(rand.NewSource(time.Now().UnixNano())))

	if *sequence {
		line := s.BestContinuation(b, deadline)
		texts := make([]string, len(line))
		for i, mov := range line {
			texts[i] = mov.String()
		}
		fmt.Fprintln(out, strings.Join(texts, ", "))
		return nil
	}

	mov := s.BestMove(b, deadline)
	if mov == nil {
		fmt.Fprintln(out, "N.A.")
		return nil
	}
	fmt.Fprintln(out, mov)
	return nil
}

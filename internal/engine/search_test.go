package engine

import (
	"testing"

	"github.com/BuonOmo/ascacou-go/internal/board"
)

func TestSolveTacticalWin(t *testing.T) {
	b := board.MustFromFEN("1wbw/2b/1bb/5/5 01234567")
	s := NewSolver()
	depth := 1
	score, mov, nodes := s.Solve(b, &depth)

	if score != 1 {
		t.Errorf("score = %d, want 1", score)
	}
	if mov == nil {
		t.Fatalf("expected a move, got nil")
	}
	if got := mov.String(); got != "wd2" {
		t.Errorf("move = %q, want %q", got, "wd2")
	}
	if nodes != 39 {
		t.Errorf("nodes = %d, want 39", nodes)
	}
}

func TestSolveEndgame(t *testing.T) {
	b := board.MustFromFEN("wwwbb/bwbwb/bbbww/bbwww/w 01234567")
	s := NewSolver()
	depth := 100
	score, mov, _ := s.Solve(b, &depth)

	if score != 3 {
		t.Errorf("score = %d, want 3", score)
	}
	if mov == nil {
		t.Fatalf("expected a move, got nil")
	}
	if got := mov.String(); got != "wd5" {
		t.Errorf("move = %q, want %q", got, "wd5")
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	b := board.MustFromFEN("1wbw/2b/1bb/5/5 01234567")
	depth := 3

	s1 := NewSolver()
	score1, move1, nodes1 := s1.Solve(b, &depth)

	s2 := NewSolver()
	score2, move2, nodes2 := s2.Solve(b, &depth)

	if score1 != score2 || nodes1 != nodes2 {
		t.Fatalf("solve is not deterministic: (%d,%d) vs (%d,%d)", score1, nodes1, score2, nodes2)
	}
	if (move1 == nil) != (move2 == nil) {
		t.Fatalf("one solve returned a move and the other did not")
	}
	if move1 != nil && move1.String() != move2.String() {
		t.Errorf("moves differ: %v vs %v", move1, move2)
	}
}

func TestPartialSolveSignMatchesSolve(t *testing.T) {
	boards := []string{
		"1wbw/2b/1bb/5/5 01234567",
		"1wbw/2bw/1bb/5/5 89abcdef",
		"wwwbb/bwbwb/bbbww/bbwww/w 01234567",
	}
	depth := 3
	for _, fen := range boards {
		b := board.MustFromFEN(fen)

		full := NewSolver()
		fullScore, _, _ := full.Solve(b, &depth)

		partial := NewSolver()
		partialScore, _, _ := partial.PartialSolve(b, &depth)

		if sign(fullScore) != sign(partialScore) {
			t.Errorf("%s: sign(solve)=%d sign(partial_solve)=%d (full=%d, partial=%d)",
				fen, sign(fullScore), sign(partialScore), fullScore, partialScore)
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func TestDepthsReportsEveryRequestedDepth(t *testing.T) {
	b := board.MustFromFEN("1wbw/2b/1bb/5/5 01234567")
	s := NewSolver()
	results := s.Depths(b, 3)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if r.Depth != i+1 {
			t.Errorf("results[%d].Depth = %d, want %d", i, r.Depth, i+1)
		}
	}
}

package engine

import (
	"testing"

	"github.com/BuonOmo/ascacou-go/internal/board"
)

func TestOrderedMovesOnlyReturnsLegalMoves(t *testing.T) {
	b := board.Empty()
	children := orderedMoves(b)
	if len(children) != 50 {
		t.Fatalf("got %d children on an empty board, want 50 (every cell, both colors)", len(children))
	}
	for _, c := range children {
		if _, ok := b.Next(c.move); !ok {
			t.Errorf("orderedMoves returned an illegal move %v", c.move)
		}
	}
}

func TestOrderedMovesEmptyOnTerminalBoard(t *testing.T) {
	b := board.MustFromFEN("wbbww/wbwbw/b1w1b/bbwww/wwwwb 034567ef")
	if children := orderedMoves(b); len(children) != 0 {
		t.Errorf("expected no legal moves on a terminal board, got %d", len(children))
	}
}

func TestForcedMovesOnlyWhenExactlyOneColorLegal(t *testing.T) {
	b := board.MustFromFEN("1wbw/2b/1bb/5/5 01234567")
	// Both forced-shaped cells on this board admit either color, so neither
	// is actually forced.
	if children := forcedMoves(b); len(children) != 0 {
		t.Errorf("got %d forced moves, want 0", len(children))
	}
}

func TestChildMovesSwitchesAtForcedMoveDepth(t *testing.T) {
	b := board.Empty()
	shallow := childMoves(b, ForcedMoveDepth)
	deep := childMoves(b, ForcedMoveDepth+1)

	if len(shallow) != 0 {
		t.Errorf("expected forcedMoves on an empty board to find nothing, got %d", len(shallow))
	}
	if len(deep) != 50 {
		t.Errorf("expected orderedMoves at depth > ForcedMoveDepth, got %d children", len(deep))
	}
}

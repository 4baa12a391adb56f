package engine

import "github.com/BuonOmo/ascacou-go/internal/board"

// heuristicCells lists the 25 board cells in the fixed geometric order the
// move-ordering table follows: center, then the ring of edge-adjacent
// cells, then the ring of edges, then the four corners. This is a fixed
// design artifact, not a value to retune.
var heuristicCells = [25][2]int{
	// Center.
	{2, 2}, {2, 1}, {1, 2}, {2, 3}, {3, 2},
	{1, 1}, {1, 3}, {3, 1}, {3, 3},
	// Edges.
	{0, 2}, {4, 2}, {2, 0}, {2, 4},
	{0, 1}, {4, 1}, {1, 0}, {1, 4},
	{0, 3}, {4, 3}, {3, 0}, {3, 4},
	// Corners.
	{0, 0}, {0, 4}, {4, 0}, {4, 4},
}

// heuristicMoves builds the 50-entry move table for a given "first" color:
// every cell in heuristicCells order for first, then the same 25 cells for
// its opposite. The two colors never interleave.
func heuristicMoves(first board.Color) [50]board.Move {
	var moves [50]board.Move
	other := first.Other()
	for i, cell := range heuristicCells {
		moves[i] = board.NewMove(cell[0], cell[1], first)
		moves[25+i] = board.NewMove(cell[0], cell[1], other)
	}
	return moves
}

// heuristicBlackFirst and heuristicWhiteFirst are the two interchangeable
// 50-entry move-ordering tables: black-favoring search orders black's
// placement first in every cell group, and symmetrically for white.
var (
	heuristicBlackFirst = heuristicMoves(board.Black)
	heuristicWhiteFirst = heuristicMoves(board.White)
)

// child pairs a move with the board it produces, so a move generator that
// must call Board.Next to test legality never makes the search loop call
// it again to obtain the resulting position.
type child struct {
	move  board.Move
	board *board.Board
}

// orderedMoves returns the heuristic-table iteration order for the side to
// move on b, filtering out moves that next rejects as illegal.
func orderedMoves(b *board.Board) []child {
	table := &heuristicWhiteFirst
	if b.CurrentPlayer().FavoriteColor() == board.Black {
		table = &heuristicBlackFirst
	}
	children := make([]child, 0, 8)
	for _, mov := range table {
		if next, ok := b.Next(mov); ok {
			children = append(children, child{move: mov, board: next})
		}
	}
	return children
}

// forcedMoves returns the moves into empty cells that are the only missing
// corner of some 2x2 block, in any of the four corner positions, and for
// which exactly one color gives a legal Next. The four orientation masks
// are ORed into one candidate mask before the cells are tried.
func forcedMoves(b *board.Board) []child {
	p := b.PiecesMask()
	notP := ^p

	// Cell anchors the top-left of a block filled everywhere but here.
	bottomRight := notP & (p >> 1) & (p >> 7) & (p >> 8)
	// Cell anchors the top-right of a block filled everywhere but here.
	bottomLeft := notP & (p << 1) & (p >> 6) & (p >> 7)
	// Cell anchors the bottom-left of a block filled everywhere but here.
	topRight := notP & (p >> 1) & (p << 6) & (p << 7)
	// Cell anchors the bottom-right of a block filled everywhere but here.
	topLeft := notP & (p << 1) & (p << 7) & (p << 8)

	candidates := bottomRight | bottomLeft | topRight | topLeft

	children := make([]child, 0, 8)
	for candidates != 0 {
		cell := candidates & (-candidates)
		candidates &= candidates - 1

		black := board.MoveFromMask(cell, board.Black)
		white := board.MoveFromMask(cell, board.White)
		blackNext, blackOK := b.Next(black)
		whiteNext, whiteOK := b.Next(white)

		switch {
		case blackOK && !whiteOK:
			children = append(children, child{move: black, board: blackNext})
		case whiteOK && !blackOK:
			children = append(children, child{move: white, board: whiteNext})
		}
	}
	return children
}

// childMoves selects the forced-move iterator once the remaining depth has
// dropped to ForcedMoveDepth or below, and the full heuristic-table
// iterator otherwise.
func childMoves(b *board.Board, depth int) []child {
	if depth <= ForcedMoveDepth {
		return forcedMoves(b)
	}
	return orderedMoves(b)
}

package engine

import "github.com/BuonOmo/ascacou-go/internal/board"

// evalWeights is the ply-dependent weighting of the three evaluation
// components, selected by Board.PlayedMoves(). Full tiles matter most near
// the endgame; partial patterns matter most mid-game. Retuning these
// weights does not change the Evaluator's contract.
type evalWeights struct {
	full, almostFull, half int
}

func weightsFor(playedMoves int) evalWeights {
	switch {
	case playedMoves <= 1:
		return evalWeights{0, 0, 0}
	case playedMoves == 2:
		return evalWeights{0, 0, 1}
	case playedMoves == 3:
		return evalWeights{0, 1, 1}
	case playedMoves <= 8:
		return evalWeights{1, 1, 1}
	case playedMoves <= 16:
		return evalWeights{2, 2, 1}
	case playedMoves <= 20:
		return evalWeights{4, 1, 1}
	default:
		return evalWeights{8, 0, 0}
	}
}

// Evaluate is the rich evaluator: a ply-weighted combination of the
// current score, the almost-full-tile pattern score, and the half-tile
// pattern score. Score magnitude grows as weights grow with ply, so it is
// not itself bounded by [-8, 8] the way CurrentScore is. The alpha-beta
// Solver does not call it: its scores come from CurrentScore.
func Evaluate(b *board.Board) int {
	w := weightsFor(b.PlayedMoves())
	score := w.full * b.CurrentScore()
	if w.almostFull != 0 {
		score += w.almostFull * ownershipScore(b, almostFullTiles(b))
	}
	if w.half != 0 {
		score += w.half * ownershipScore(b, halfTiles(b))
	}
	return score
}

// ownershipScore attributes +1 to the current player and -1 to the
// opponent for every tile value in tiles that player owns, and sums.
func ownershipScore(b *board.Board, tiles board.TileSet) int {
	current := b.CurrentPlayer().Tiles() & tiles
	opponent := b.Opponent().Tiles() & tiles
	return current.Len() - opponent.Len()
}

// compatibleValues returns the set of 4-bit tile values whose bit i equals
// known[i] wherever known[i] is 0 or 1, and that range freely over bit i
// wherever known[i] is -1. Used to turn "these N corners of an
// almost/half-filled tile are already this color" into the set of values
// that tile could still become.
func compatibleValues(known [4]int) board.TileSet {
	var ts board.TileSet
	for v := 0; v < 16; v++ {
		match := true
		for bit := 0; bit < 4 && match; bit++ {
			if known[bit] >= 0 && (v>>uint(bit))&1 != known[bit] {
				match = false
			}
		}
		if match {
			ts |= 1 << uint(v)
		}
	}
	return ts
}

// The tile value bit order is TL=0, TR=1, BL=2, BR=3 (see board.filledTile).
const (
	bitTL = 0
	bitTR = 1
	bitBL = 2
	bitBR = 3
)

func colorBit(mask uint64, cell uint64) int {
	if mask&cell != 0 {
		return 1
	}
	return 0
}

// The almostFullMissing* tables, indexed by a 3-bit code of the known corners' black
// presence, is precomputed once per missing-corner orientation rather than
// recomputed per call.
var (
	almostFullMissingBR [8]board.TileSet // known: TL, TR, BL
	almostFullMissingBL [8]board.TileSet // known: TL, TR, BR
	almostFullMissingTR [8]board.TileSet // known: TL, BL, BR
	almostFullMissingTL [8]board.TileSet // known: TR, BL, BR
)

func init() {
	for code := 0; code < 8; code++ {
		tl, tr, bl := code&1, (code>>1)&1, (code>>2)&1
		almostFullMissingBR[code] = compatibleValues([4]int{tl, tr, bl, -1})

		tl, tr, br := code&1, (code>>1)&1, (code>>2)&1
		almostFullMissingBL[code] = compatibleValues([4]int{tl, tr, -1, br})

		tl, bl, br = code&1, (code>>1)&1, (code>>2)&1
		almostFullMissingTR[code] = compatibleValues([4]int{tl, -1, bl, br})

		tr, bl, br = code&1, (code>>1)&1, (code>>2)&1
		almostFullMissingTL[code] = compatibleValues([4]int{-1, tr, bl, br})
	}
}

// almostFullTiles scans every 2x2 block missing exactly one cell and folds
// the tile values compatible with completing it (whichever color eventually
// fills the missing corner) into one TileSet. Geometry is grounded on
// evaluation.rs's four MaskIterator scans (bottom-right/bottom-left/
// top-right/top-left missing).
func almostFullTiles(b *board.Board) board.TileSet {
	x := b.PiecesMask()
	black := b.BlackMask()

	var total board.TileSet

	missingBR := x & (x >> 1) & (x >> 7) &^ (x >> 8)
	for mask := missingBR; mask != 0; {
		half := mask & (-mask)
		mask &= mask - 1
		code := colorBit(black, half) | colorBit(black, half<<1)<<1 | colorBit(black, half<<7)<<2
		total |= almostFullMissingBR[code]
	}

	missingBL := x & (x >> 1) &^ (x >> 7) & (x >> 8)
	for mask := missingBL; mask != 0; {
		half := mask & (-mask)
		mask &= mask - 1
		code := colorBit(black, half) | colorBit(black, half<<1)<<1 | colorBit(black, half<<8)<<2
		total |= almostFullMissingBL[code]
	}

	missingTR := x &^ (x >> 1) & (x >> 7) & (x >> 8)
	for mask := missingTR; mask != 0; {
		half := mask & (-mask)
		mask &= mask - 1
		code := colorBit(black, half) | colorBit(black, half<<7)<<1 | colorBit(black, half<<8)<<2
		total |= almostFullMissingTR[code]
	}

	missingTL := (^x) & (x >> 1) & (x >> 7) & (x >> 8)
	for mask := missingTL; mask != 0; {
		half := mask & (-mask)
		mask &= mask - 1
		code := colorBit(black, half<<1) | colorBit(black, half<<7)<<1 | colorBit(black, half<<8)<<2
		total |= almostFullMissingTL[code]
	}

	return total
}

// halfTop etc., indexed by a 2-bit code of the known pair's black
// presence, precomputed per line orientation.
var (
	halfTop    [4]board.TileSet // known: TL, TR
	halfBottom [4]board.TileSet // known: BL, BR
	halfLeft   [4]board.TileSet // known: TL, BL
	halfRight  [4]board.TileSet // known: TR, BR
)

func init() {
	for code := 0; code < 4; code++ {
		a, c := code&1, (code>>1)&1
		halfTop[code] = compatibleValues([4]int{a, c, -1, -1})
		halfBottom[code] = compatibleValues([4]int{-1, -1, a, c})
		halfLeft[code] = compatibleValues([4]int{a, -1, c, -1})
		halfRight[code] = compatibleValues([4]int{-1, a, -1, c})
	}
}

// halfTiles scans every 2x2 block with exactly two filled cells forming an
// edge (never a diagonal) and folds the compatible tile values into one
// TileSet. Geometry is grounded on evaluation.rs's four MaskIterator scans
// (horizontal top/bottom pair, vertical left/right pair).
func halfTiles(b *board.Board) board.TileSet {
	x := b.PiecesMask()
	black := b.BlackMask()

	var total board.TileSet

	// Top-left corners of the sixteen on-board blocks, x and y in 0..3.
	const tileAnchors uint64 = 0b0000000_0000000_0011110_0011110_0011110_0011110_0000000

	tops := x & (x >> 1) &^ (x >> 7) &^ (x >> 8) & tileAnchors
	for mask := tops; mask != 0; {
		half := mask & (-mask)
		mask &= mask - 1
		code := colorBit(black, half) | colorBit(black, half<<1)<<1
		total |= halfTop[code]
	}

	bottoms := (^x) &^ (x >> 1) & (x >> 7) & (x >> 8) & tileAnchors
	for mask := bottoms; mask != 0; {
		half := mask & (-mask)
		mask &= mask - 1
		code := colorBit(black, half<<7) | colorBit(black, half<<8)<<1
		total |= halfBottom[code]
	}

	lefts := x &^ (x >> 1) & (x >> 7) &^ (x >> 8) & tileAnchors
	for mask := lefts; mask != 0; {
		half := mask & (-mask)
		mask &= mask - 1
		code := colorBit(black, half) | colorBit(black, half<<7)<<1
		total |= halfLeft[code]
	}

	rights := (^x) & (x >> 1) &^ (x >> 7) & (x >> 8) & tileAnchors
	for mask := rights; mask != 0; {
		half := mask & (-mask)
		mask &= mask - 1
		code := colorBit(black, half<<1) | colorBit(black, half<<8)<<1
		total |= halfRight[code]
	}

	return total
}

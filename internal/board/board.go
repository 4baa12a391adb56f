package board

import (
	"math/bits"
	"math/rand"
)

// fullGridMask covers every logical (x, y) in the 7x7 padded layout.
const fullGridMask uint64 = 0b0000000_0111110_0111110_0111110_0111110_0111110_0000000

// Board is an immutable Ascacou position: piece and black bitmasks (in the
// 7x7 padded layout, see Move), the set of tile values already filled, the
// two players' tile partition, and the move count.
//
// Invariants (see spec §3): piecesMask is the union of the black and white
// occupancy; every set bit of piecesMask lies in the 5x5 logical window;
// playedTiles is exactly the set of filled tile values, which by
// construction never contains a duplicate (the unique-tile invariant);
// playedMoves equals popcount(piecesMask); current and opponent partition
// the sixteen tile values and swap on every Next.
type Board struct {
	piecesMask  uint64
	blackMask   uint64
	current     Player
	opponent    Player
	playedTiles TileSet
	playedMoves uint8
}

// Empty returns the starting position with the canonical tile partition.
func Empty() *Board {
	current, opponent := DefaultPlayers()
	return &Board{current: current, opponent: opponent}
}

// NewRandomEmpty returns the starting position with a uniformly random
// tile partition drawn from rng.
func NewRandomEmpty(rng *rand.Rand) *Board {
	current, opponent := RandomPlayers(rng)
	return &Board{current: current, opponent: opponent}
}

// CurrentPlayer returns the side to move.
func (b *Board) CurrentPlayer() Player { return b.current }

// Opponent returns the side not to move.
func (b *Board) Opponent() Player { return b.opponent }

// PlayedTiles returns the set of tile values already completed on the
// board.
func (b *Board) PlayedTiles() TileSet { return b.playedTiles }

// PlayedMoves returns the number of stones placed so far.
func (b *Board) PlayedMoves() int { return int(b.playedMoves) }

// PiecesMask returns the raw 7x7 occupancy bitmask.
func (b *Board) PiecesMask() uint64 { return b.piecesMask }

// BlackMask returns the raw 7x7 black-occupancy bitmask.
func (b *Board) BlackMask() uint64 { return b.blackMask }

// CurrentScore returns, for the side to move, the count of tiles it owns
// among the filled tiles minus the count its opponent owns. Range is
// [-playedTiles.Len(), +playedTiles.Len()].
func (b *Board) CurrentScore() int {
	score := 0
	for _, tile := range filledTiles(b.piecesMask, b.blackMask) {
		if b.current.HasTile(tile) {
			score++
		} else {
			score--
		}
	}
	return score
}

// IsTerminal reports whether the position has no legal continuation: every
// tile value has been played, or every empty cell would duplicate an
// already-filled tile value.
func (b *Board) IsTerminal() bool {
	return b.playedTiles.IsFull() || len(b.PossibleMoves()) == 0
}

// IsWinning reports whether a terminal position is won by the side to
// move.
func (b *Board) IsWinning() bool {
	return b.IsTerminal() && b.CurrentScore() > 0
}

// MustFromFEN parses fen and panics on error. Intended for tests and CLI
// flag defaults, never for untrusted input.
func MustFromFEN(fen string) *Board {
	b, err := FromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// filledTile computes the 4-bit tile value anchored at topLeft (a single
// bit of the 7x7 mask that is the top-left corner of a fully-occupied 2x2
// block), reading colors from blackMask.
func filledTile(blackMask, topLeft uint64) uint8 {
	shift := uint(bits.TrailingZeros64(topLeft))
	a := (blackMask & topLeft) >> shift
	b := (blackMask & (topLeft << 1)) >> shift
	c := (blackMask & (topLeft << 7)) >> (shift + 5)
	d := (blackMask & (topLeft << 8)) >> (shift + 5)
	return uint8(a | b | c | d)
}

// filledTiles enumerates the tile values of every fully-occupied 2x2 block
// in piecesMask, using the bit identity tops = p & p>>1 & p>>7 (restricted
// to the already-doubled mask) to find each block's top-left corner. Cost
// is linear in the number of filled tiles.
func filledTiles(piecesMask, blackMask uint64) []uint8 {
	mask := piecesMask
	mask &= mask >> 1
	mask &= mask >> 7
	tiles := make([]uint8, 0, 16)
	for mask != 0 {
		topLeft := mask & (-mask)
		mask &= mask - 1
		tiles = append(tiles, filledTile(blackMask, topLeft))
	}
	return tiles
}

// Package engine implements Ascacou's alpha-beta search engine: the
// transposition table, move-ordering heuristics, the evaluator, and the
// negamax solver itself.
package engine

import "github.com/BuonOmo/ascacou-go/internal/board"

// ForcedMoveDepth is the remaining-depth threshold at which the solver
// switches from the heuristic move table to the forced-move iterator.
const ForcedMoveDepth = 3

// MinScore and MaxScore bound the negamax search window: the maximum
// achievable score differential given the board's 16 tiles.
const (
	MinScore = -8
	MaxScore = 8
)

// entry is one slot of the transposition table: a collision-detecting key
// tag, the stored value and a written flag (16 bytes with padding); the
// table trades collisions for density rather than growing or chaining.
type entry struct {
	keyTag uint64
	value  int8
	used   bool
}

// TranspositionTable is a fixed-size, direct-mapped table from a packed
// board key to a search value. It never grows and never chains: on a
// collision the newer insert silently overwrites the older one. Size is
// fixed at construction and never changes.
type TranspositionTable struct {
	entries []entry
	size    uint64
}

// NewTranspositionTable allocates a table with the given number of entries;
// a size of 0 is raised to 1. Entries that were never written are flagged
// as unused, so Get reports a miss for them rather than a stale hit.
func NewTranspositionTable(size uint64) *TranspositionTable {
	if size == 0 {
		size = 1
	}
	return &TranspositionTable{
		entries: make([]entry, size),
		size:    size,
	}
}

// PackKey packs the 5x5 logical bits of a board's piecesMask and blackMask
// into a 50-bit key: five 5-bit windows from each mask (bits 8-12, 15-19,
// 22-26, 29-33, 36-40 of the 7x7 layout), concatenated as
// pack25(piecesMask) | pack25(blackMask)<<25.
func PackKey(piecesMask, blackMask uint64) uint64 {
	return pack25(piecesMask) | pack25(blackMask)<<25
}

// pack25 extracts the five 5-bit logical rows out of a 7x7-padded mask and
// concatenates them into a dense 25-bit value.
func pack25(mask uint64) uint64 {
	var packed uint64
	for row := 0; row < 5; row++ {
		shift := uint(8 + 7*row)
		packed |= ((mask >> shift) & 0b11111) << uint(5*row)
	}
	return packed
}

// Get looks up key, returning the stored value and true iff the slot's tag
// matches (a miss may be a never-written slot or a collision with another
// key that hashed to the same index; both return ok=false).
func (tt *TranspositionTable) Get(key uint64) (int8, bool) {
	e := tt.entries[key%tt.size]
	if !e.used || e.keyTag != key {
		return 0, false
	}
	return e.value, true
}

// Put unconditionally overwrites the slot key indexes into. There is no
// replacement policy: a newer insert always wins, even one from a
// shallower search.
func (tt *TranspositionTable) Put(key uint64, value int8) {
	tt.entries[key%tt.size] = entry{keyTag: key, value: value, used: true}
}

// Clear empties every slot.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = entry{}
	}
}

// Size returns the number of slots in the table.
func (tt *TranspositionTable) Size() uint64 { return tt.size }

// Key computes the transposition key for b directly, a thin convenience
// wrapper over PackKey for callers that only have a *board.Board.
func Key(b *board.Board) uint64 {
	return PackKey(b.PiecesMask(), b.BlackMask())
}

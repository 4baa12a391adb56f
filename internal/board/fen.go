package board

import (
	"errors"
	"strconv"
	"strings"
)

// Errors returned by FromFEN.
var (
	ErrNotEnoughRows  = errors.New("ascacou: not enough rows")
	ErrTooManyRows    = errors.New("ascacou: too many rows")
	ErrTooManyCols    = errors.New("ascacou: too many cols")
	ErrInvalidChar    = errors.New("ascacou: invalid character")
	ErrIncompleteFEN  = errors.New("ascacou: incomplete FEN")
	ErrTooManyTiles   = errors.New("ascacou: too many tiles")
	ErrNotEnoughTiles = errors.New("ascacou: not enough tiles")
	ErrDuplicateTile  = errors.New("ascacou: duplicate tile")
)

// FromFEN parses a FEN string of the form "<rows> <tiles>": five
// slash-separated rows (top row first, lowercase b/w stones, digits 1..5
// run-length-encoding empties) followed by exactly eight hex digits naming
// the tile values owned by the current player.
func FromFEN(fen string) (*Board, error) {
	var blackMask, whiteMask uint64
	x, y := 0, 0
	i := 0
	n := len(fen)

rows:
	for i < n {
		c := fen[i]
		i++
		switch {
		case c == ' ':
			if y < 4 {
				return nil, ErrNotEnoughRows
			}
			break rows
		case c == '/':
			if y == 4 {
				return nil, ErrTooManyRows
			}
			if x > 5 {
				return nil, ErrTooManyCols
			}
			y++
			x = 0
		case c >= '1' && c <= '5':
			x += int(c - '0')
		case c == 'b':
			blackMask |= MaskAt(x, y)
			x++
		case c == 'w':
			whiteMask |= MaskAt(x, y)
			x++
		default:
			return nil, ErrInvalidChar
		}
	}

	if i >= n {
		return nil, ErrIncompleteFEN
	}

	tiles := TileSet(0)
	count := 0
	for i < n {
		digit, ok := parseHexDigit(fen[i])
		i++
		if !ok {
			return nil, ErrInvalidChar
		}
		if count == 8 {
			return nil, ErrTooManyTiles
		}
		var added bool
		tiles, added = tiles.TryAdd(digit)
		if !added {
			return nil, ErrDuplicateTile
		}
		count++
	}
	if count < 8 {
		return nil, ErrNotEnoughTiles
	}

	current, opponent := PlayersFromTileSet(tiles)
	piecesMask := blackMask | whiteMask

	return &Board{
		piecesMask:  piecesMask,
		blackMask:   blackMask,
		current:     current,
		opponent:    opponent,
		playedTiles: TileSet(0).union(filledTiles(piecesMask, blackMask)),
		playedMoves: uint8(popcount(piecesMask)),
	}, nil
}

// union folds the given tile values into ts. Used only when reconstructing
// playedTiles from a FEN board, where the board's own unique-tile
// invariant already guarantees no duplicates.
func (ts TileSet) union(values []uint8) TileSet {
	for _, v := range values {
		ts, _ = ts.TryAdd(v)
	}
	return ts
}

func popcount(mask uint64) int {
	count := 0
	for mask != 0 {
		mask &= mask - 1
		count++
	}
	return count
}

func parseHexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// FEN renders the board in canonical form: rows left-to-right,
// top-to-bottom, with no trailing run-length before a '/', followed by the
// current player's tiles in its ascending iteration order.
func (b *Board) FEN() string {
	var rows strings.Builder
	for y := 0; y < 5; y++ {
		if y > 0 {
			rows.WriteByte('/')
		}
		empties := 0
		for x := 0; x < 5; x++ {
			pos := MaskAt(x, y)
			if pos&b.piecesMask == 0 {
				empties++
				continue
			}
			if empties > 0 {
				rows.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			if pos&b.blackMask == 0 {
				rows.WriteByte('w')
			} else {
				rows.WriteByte('b')
			}
		}
	}
	return rows.String() + " " + b.current.FENPart()
}

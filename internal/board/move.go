package board

import (
	"errors"
	"math/bits"
)

// Move carries a single-bit position mask in the 7x7 bitboard plus the
// color of the stone being placed.
//
// The 7x7 layout pads the 5x5 logical grid with a one-cell margin on every
// side so that the directional shifts used throughout this package (+-1 for
// columns, +-7 for rows) never wrap into live data; the margin silently
// absorbs the spill instead. Bit (y+1)*7 + (x+1) holds logical cell (x, y).
type Move struct {
	mask  uint64
	color Color
}

// Errors returned by ParseMove.
var (
	ErrMissingInfo = errors.New("ascacou: missing information")
	ErrWrongColor  = errors.New("ascacou: wrong color")
	ErrWrongX      = errors.New("ascacou: wrong x")
	ErrWrongY      = errors.New("ascacou: wrong y")
)

// MaskAt returns the single-bit 7x7 mask for logical cell (x, y).
func MaskAt(x, y int) uint64 {
	return 1 << ((1+uint(y))*7 + (1 + uint(x)))
}

// NewMove builds a move at logical coordinates (x, y) in [0, 5) for color.
func NewMove(x, y int, color Color) Move {
	return Move{mask: MaskAt(x, y), color: color}
}

// MoveFromMask builds a move from a raw 7x7 single-bit mask.
func MoveFromMask(mask uint64, color Color) Move {
	return Move{mask: mask, color: color}
}

// Mask returns the move's single-bit 7x7 position mask.
func (m Move) Mask() uint64 { return m.mask }

// Color returns the move's stone color.
func (m Move) Color() Color { return m.color }

// X returns the column, 0..4.
func (m Move) X() int {
	zeros := int(bits.TrailingZeros64(m.mask)) - 7
	return (zeros - 1) % 7
}

// Y returns the row, 0..4.
func (m Move) Y() int {
	zeros := int(bits.TrailingZeros64(m.mask)) - 7
	return zeros / 7
}

// shift is the amount by which the 3x3-neighborhood template must be
// shifted left to land on this move's cell; see tilesFrom in movegen.go.
func (m Move) shift() uint {
	return uint(bits.TrailingZeros64(m.mask)) - 8
}

// ParseMove parses the `<piece><col><row>` move text grammar, e.g. "wa1",
// "Bc3". Parsing is case-insensitive.
func ParseMove(s string) (Move, error) {
	if len(s) < 1 {
		return Move{}, ErrMissingInfo
	}
	var color Color
	switch s[0] {
	case 'b', 'B':
		color = Black
	case 'w', 'W':
		color = White
	default:
		return Move{}, ErrWrongColor
	}
	if len(s) < 2 {
		return Move{}, ErrMissingInfo
	}
	var x int
	switch s[1] {
	case 'a', 'A':
		x = 0
	case 'b', 'B':
		x = 1
	case 'c', 'C':
		x = 2
	case 'd', 'D':
		x = 3
	case 'e', 'E':
		x = 4
	default:
		return Move{}, ErrWrongX
	}
	if len(s) < 3 {
		return Move{}, ErrMissingInfo
	}
	var y int
	switch s[2] {
	case '1':
		y = 0
	case '2':
		y = 1
	case '3':
		y = 2
	case '4':
		y = 3
	case '5':
		y = 4
	default:
		return Move{}, ErrWrongY
	}
	return NewMove(x, y, color), nil
}

// String renders the move in lowercase `<piece><col><row>` form.
func (m Move) String() string {
	buf := [3]byte{m.color.letter(), "abcde"[m.X()], "12345"[m.Y()]}
	return string(buf[:])
}

// MarshalText implements encoding.TextMarshaler.
func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

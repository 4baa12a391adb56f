package board

import "strings"

// ForConsole renders the position for interactive play: the FEN, both
// players' tile racks (with already-played tiles highlighted), and a
// colored 5x5 grid. Empty cells show which color(s), if any, may legally
// be played there: '·' for both, 'b'/'w' for one only, 'x' for neither.
//
// This is the one piece of interactive console rendering the original
// Ascacou engine shipped; spec.md places the rest of the console shell out
// of scope, so this method is not used by cmd/minicou or cmd/alphacou's
// machine-readable output.
func (b *Board) ForConsole() string {
	var s strings.Builder
	s.WriteString(b.FEN())
	s.WriteByte('\n')

	played := b.playedTiles
	s.WriteString(b.opponent.ForConsole(played))

	spacing := strings.Repeat(" ", (46-12)/2)

	s.WriteByte('\n')
	s.WriteString(spacing)
	s.WriteString("   a b c d e\n")
	for y := 0; y < 5; y++ {
		s.WriteString(spacing)
		s.WriteString(string(rune('1' + y)))
		s.WriteString(" \x1b[47m")
		for x := 0; x < 5; x++ {
			pos := MaskAt(x, y)
			s.WriteByte(' ')
			switch {
			case b.piecesMask&pos == 0:
				s.WriteString("\x1b[30m")
				_, blackOK := b.Next(NewMove(x, y, Black))
				_, whiteOK := b.Next(NewMove(x, y, White))
				switch {
				case blackOK && whiteOK:
					s.WriteString("·")
				case blackOK:
					s.WriteString("b")
				case whiteOK:
					s.WriteString("w")
				default:
					s.WriteString("x")
				}
			case b.blackMask&pos != 0:
				s.WriteString(Black.ansi())
				s.WriteString("●")
			default:
				s.WriteString(White.ansi())
				s.WriteString("●")
			}
		}
		s.WriteString(" \x1b[0m\n")
	}
	s.WriteByte('\n')
	s.WriteByte('\n')
	s.WriteString(b.current.ForConsole(played))

	return s.String()
}

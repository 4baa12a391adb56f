package board

import (
	"fmt"
	"math/rand"
)

// Player is one side's eight-tile assignment: the tile values it owns, and
// its derived favorite color, the color most represented across all of its
// owned tile values (used by the solver's move-ordering heuristic).
type Player struct {
	tiles         TileSet
	favoriteColor Color
}

// NewPlayer builds a Player owning exactly the tile values in tiles.
func NewPlayer(tiles TileSet) Player {
	return Player{tiles: tiles, favoriteColor: tiles.MostPresentColor()}
}

// HasTile reports whether v belongs to this player.
func (p Player) HasTile(v uint8) bool {
	return p.tiles.Has(v)
}

// Tiles returns the player's owned tile set.
func (p Player) Tiles() TileSet {
	return p.tiles
}

// FavoriteColor returns the color most represented across this player's
// owned tile values.
func (p Player) FavoriteColor() Color {
	return p.favoriteColor
}

// FENPart renders the player's tiles as the eight lowercase hex digits used
// in the FEN tile field, in the set's ascending iteration order.
func (p Player) FENPart() string {
	return p.tiles.String()
}

// DefaultPlayers returns the canonical tile partition: the current player
// owns {0..7}, the opponent owns {8..15}.
func DefaultPlayers() (current, opponent Player) {
	return PlayersFromTileSet(NewTileSet(0x00FF))
}

// RandomPlayers draws a uniformly random 8-tile partition using rng.
func RandomPlayers(rng *rand.Rand) (current, opponent Player) {
	perm := rng.Perm(16)
	var bitmap uint16
	for _, v := range perm[:8] {
		bitmap |= 1 << uint(v)
	}
	return PlayersFromTileSet(NewTileSet(bitmap))
}

// PlayersFromTileSet splits a full 16-tile partition into the current
// player (owning tiles) and its opponent (owning the complement).
func PlayersFromTileSet(tiles TileSet) (current, opponent Player) {
	return NewPlayer(tiles), NewPlayer(tiles.Complement())
}

// ForConsole renders the player's tile rack for interactive display: each
// owned tile's number followed by its four quadrant colors, highlighting
// already-played tiles.
func (p Player) ForConsole(played TileSet) string {
	s := ""
	for _, v := range p.tiles.Values() {
		s += fmt.Sprintf("  %2d  ", v)
	}
	s += "\n"
	for row := 0; row < 2; row++ {
		first := true
		for _, v := range p.tiles.Values() {
			if !first {
				s += " "
			}
			first = false
			if played.Has(v) {
				s += "\x1b[44m"
			} else {
				s += "\x1b[47m"
			}
			for col := 0; col < 2; col++ {
				bit := uint8(1<<uint(col)) << uint(2*row)
				if v&bit != 0 {
					s += fmt.Sprintf(" %s●", Black.ansi())
				} else {
					s += fmt.Sprintf(" %s●", White.ansi())
				}
			}
			s += " \x1b[0m"
		}
		s += "\n"
	}
	return s
}

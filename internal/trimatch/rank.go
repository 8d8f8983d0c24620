package trimatch

import (
	"fmt"
	"strings"

	"github.com/trimatchhq/trimatch-backend/internal/apperror"
)

// Rank is the strength class of a tile. Noble < Knight < Mystic.
type Rank uint8

const (
	RankNone Rank = iota
	Noble
	Knight
	Mystic
)

// RankCount is the number of distinct ranks in the game.
const RankCount = 3

// TilesPerRank is how many tiles of each rank a player starts with.
const TilesPerRank = 3

var rankLetters = map[Rank]string{
	Noble:  "N",
	Knight: "K",
	Mystic: "M",
}

// Letter returns the single-letter form used by the external move format.
func (r Rank) Letter() string {
	return rankLetters[r]
}

func (r Rank) String() string {
	switch r {
	case Noble:
		return "noble"
	case Knight:
		return "knight"
	case Mystic:
		return "mystic"
	default:
		return "none"
	}
}

// Beats reports whether r may replace a tile of rank other on the board.
func (r Rank) Beats(other Rank) bool {
	return r > other
}

// ParseRank accepts the single letter N/K/M or a full rank name, case-insensitive.
func ParseRank(s string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "noble":
		return Noble, nil
	case "k", "knight":
		return Knight, nil
	case "m", "mystic":
		return Mystic, nil
	default:
		return RankNone, fmt.Errorf("%w: %q", apperror.ErrInvalidRank, s)
	}
}

// Player identifies one of the two sides.
type Player uint8

const (
	PlayerNone Player = iota
	PlayerOne
	PlayerTwo
)

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player1"
	case PlayerTwo:
		return "player2"
	default:
		return "none"
	}
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return PlayerNone
	}
}

// Tile is a rank owned by a player. The zero Tile marks an empty cell;
// tiles of the same rank are fungible.
type Tile struct {
	Rank  Rank   `json:"rank"`
	Owner Player `json:"owner"`
}

// IsEmpty reports whether the tile slot holds no tile.
func (t Tile) IsEmpty() bool {
	return t.Rank == RankNone
}

// Label renders the tile as rank letter plus owner digit, e.g. "M1".
func (t Tile) Label() string {
	if t.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("%s%d", t.Rank.Letter(), t.Owner)
}

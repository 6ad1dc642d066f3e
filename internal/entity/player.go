package entity

// Mark is the content of a board cell: one of the two players' symbols or Empty.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

// FirstPlayer always opens the game.
const FirstPlayer = PlayerX

// Opponent returns the other player's mark. Empty maps to itself.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (m Mark) String() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// ParseMark maps the start-of-game symbol choice onto a mark.
// Only the exact token "O" selects PlayerO, anything else falls back to PlayerX.
func ParseMark(token string) Mark {
	if token == PlayerO.String() {
		return PlayerO
	}
	return PlayerX
}

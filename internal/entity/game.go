package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Size is the side length of the board.
const Size = 3

const (
	StatusAwaitingMove = "awaiting_move"
	StatusWon          = "won"
	StatusDraw         = "draw"
)

// WinLines lists every row, column and both diagonals as (row, col) triples.
var WinLines = [8][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a row-major 3x3 grid. The zero value is an empty board.
type Board [Size][Size]Mark

// Move addresses a single cell.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Outcome is the state of a game session after the last transition.
type Outcome struct {
	Status string
	Winner Mark
	Turn   Mark
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

// Game is the state of one session: the board, whose move is next, and which
// mark belongs to the human and which to the agent.
type Game struct {
	ID    string
	Board Board
	Turn  Mark
	Human Mark
	Agent Mark
}

// NewGame creates an empty game with the first player to move. The agent
// always plays the human's opponent.
func NewGame(id string, human Mark) *Game {
	if human != PlayerO {
		human = PlayerX
	}

	return &Game{
		ID:    id,
		Turn:  FirstPlayer,
		Human: human,
		Agent: human.Opponent(),
	}
}

// PlaceMark puts the current turn's mark on (row, col) and passes the turn.
// It is the only operation that writes to the board.
func (that *Game) PlaceMark(row, col int) error {
	if !inRange(row) || !inRange(col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if that.Board[row][col] != Empty {
		return apperror.ErrCellOccupied
	}

	that.Board[row][col] = that.Turn
	that.Turn = that.Turn.Opponent()

	return nil
}

// IsWinner reports whether mark fills any row, column or diagonal.
func (that *Game) IsWinner(mark Mark) bool {
	if mark == Empty {
		return false
	}

	for _, line := range WinLines {
		if that.Board[line[0].Row][line[0].Col] == mark &&
			that.Board[line[1].Row][line[1].Col] == mark &&
			that.Board[line[2].Row][line[2].Col] == mark {
			return true
		}
	}

	return false
}

// IsDraw reports whether the board is full. Check for a winner first.
func (that *Game) IsDraw() bool {
	for _, row := range that.Board {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// EmptyCells returns the free cells in row-major order.
func (that *Game) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for i, row := range that.Board {
		for j, cell := range row {
			if cell == Empty {
				cells = append(cells, Move{Row: i, Col: j})
			}
		}
	}

	return cells
}

// Render returns the symbol of every cell.
func (that *Game) Render() [Size][Size]string {
	var rows [Size][Size]string
	for i, row := range that.Board {
		for j, cell := range row {
			rows[i][j] = cell.String()
		}
	}

	return rows
}

func (that *Game) CheckOutcome() Outcome {
	switch {
	case that.IsWinner(PlayerX):
		return Outcome{Status: StatusWon, Winner: PlayerX}
	case that.IsWinner(PlayerO):
		return Outcome{Status: StatusWon, Winner: PlayerO}
	case that.IsDraw():
		return Outcome{Status: StatusDraw}
	default:
		return Outcome{Status: StatusAwaitingMove, Turn: that.Turn}
	}
}

func (that *Game) IsFinished() bool {
	return that.CheckOutcome().IsTerminal()
}

// ApplyMove places the current turn's mark and re-evaluates the outcome.
// Won and drawn games accept no further moves.
func (that *Game) ApplyMove(row, col int) (Outcome, error) {
	if that.IsFinished() {
		return that.CheckOutcome(), apperror.ErrGameFinished
	}

	if err := that.PlaceMark(row, col); err != nil {
		return that.CheckOutcome(), err
	}

	return that.CheckOutcome(), nil
}

func inRange(i int) bool {
	return i >= 0 && i < Size
}

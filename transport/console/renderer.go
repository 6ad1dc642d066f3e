package console

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/logrusorgru/aurora"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const drawAnnouncement = "The game is a draw!"

// Renderer writes everything the player sees.
type Renderer interface {
	RenderBoard(w io.Writer, game *entity.Game) error
	RenderMessage(w io.Writer, message string) error
	RenderOutcome(w io.Writer, outcome entity.Outcome) error
}

func NewRenderer(format string, color bool) (Renderer, error) {
	switch format {
	case config.FormatText:
		return NewTextRenderer(color), nil
	case config.FormatJSON:
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}

// Announcement is the line printed once a game is over.
func Announcement(outcome entity.Outcome) string {
	switch outcome.Status {
	case entity.StatusWon:
		return fmt.Sprintf("Player %s wins!", outcome.Winner)
	case entity.StatusDraw:
		return drawAnnouncement
	default:
		return ""
	}
}

type TextRenderer struct {
	au aurora.Aurora
}

func NewTextRenderer(color bool) *TextRenderer {
	return &TextRenderer{au: aurora.NewAurora(color)}
}

// RenderBoard prints one line per row, cells separated by '|'.
func (that *TextRenderer) RenderBoard(w io.Writer, game *entity.Game) error {
	var sb strings.Builder
	for _, row := range game.Board {
		for _, cell := range row {
			sb.WriteString("|")
			sb.WriteString(that.paint(cell))
		}
		sb.WriteString("|\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *TextRenderer) RenderMessage(w io.Writer, message string) error {
	if _, err := fmt.Fprintln(w, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *TextRenderer) RenderOutcome(w io.Writer, outcome entity.Outcome) error {
	if !outcome.IsTerminal() {
		return nil
	}

	return that.RenderMessage(w, that.au.Bold(Announcement(outcome)).String())
}

func (that *TextRenderer) paint(cell entity.Mark) string {
	switch cell {
	case entity.PlayerX:
		return that.au.Red(cell.String()).String()
	case entity.PlayerO:
		return that.au.Cyan(cell.String()).String()
	default:
		return cell.String()
	}
}

const (
	eventBoard   = "board"
	eventMessage = "message"
	eventOutcome = "outcome"
)

type event struct {
	Type    string                            `json:"type"`
	Board   *[entity.Size][entity.Size]string `json:"board,omitempty"`
	Turn    string                            `json:"turn,omitempty"`
	Message string                            `json:"message,omitempty"`
	Status  string                            `json:"status,omitempty"`
	Winner  string                            `json:"winner,omitempty"`
}

// JSONRenderer writes one JSON object per line for programs driving the game.
type JSONRenderer struct {
	json jsoniter.API
}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{json: jsoniter.ConfigCompatibleWithStandardLibrary}
}

func (that *JSONRenderer) RenderBoard(w io.Writer, game *entity.Game) error {
	rows := game.Render()

	return that.encode(w, event{
		Type:  eventBoard,
		Board: &rows,
		Turn:  game.Turn.String(),
	})
}

func (that *JSONRenderer) RenderMessage(w io.Writer, message string) error {
	return that.encode(w, event{Type: eventMessage, Message: message})
}

func (that *JSONRenderer) RenderOutcome(w io.Writer, outcome entity.Outcome) error {
	if !outcome.IsTerminal() {
		return nil
	}

	e := event{
		Type:    eventOutcome,
		Status:  outcome.Status,
		Message: Announcement(outcome),
	}
	if outcome.Status == entity.StatusWon {
		e.Winner = outcome.Winner.String()
	}

	return that.encode(w, e)
}

func (that *JSONRenderer) encode(w io.Writer, e event) error {
	if err := that.json.NewEncoder(w).Encode(e); err != nil {
		return fmt.Errorf("failed to encode %s event: %w", e.Type, err)
	}

	return nil
}

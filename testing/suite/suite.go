package suite

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *zap.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Game builds a game from three row strings made of 'X', 'O' and ' '.
// The turn is derived from the mark counts, X moving first.
func (that *Suite) Game(human entity.Mark, rows ...string) *entity.Game {
	that.Helper()

	game := entity.NewGame("suite", human)
	if len(rows) != entity.Size {
		that.Fatalf("expected %d rows, got %d", entity.Size, len(rows))
	}

	var xCount, oCount int
	for i, row := range rows {
		if len(row) != entity.Size {
			that.Fatalf("row %d: expected %d cells, got %q", i, entity.Size, row)
		}

		for j, symbol := range row {
			switch symbol {
			case 'X':
				game.Board[i][j] = entity.PlayerX
				xCount++
			case 'O':
				game.Board[i][j] = entity.PlayerO
				oCount++
			case ' ':
			default:
				that.Fatalf("row %d: unknown symbol %q", i, symbol)
			}
		}
	}

	switch xCount - oCount {
	case 0:
		game.Turn = entity.PlayerX
	case 1:
		game.Turn = entity.PlayerO
	default:
		that.Fatalf("unreachable position: %d X marks, %d O marks", xCount, oCount)
	}

	return game
}

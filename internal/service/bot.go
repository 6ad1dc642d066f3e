package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"go.uber.org/zap"
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger *zap.Logger
}

func NewBotService(logger *zap.Logger) BotService {
	return &botService{
		logger: logger.With(zap.String("component", "bot")),
	}
}

// MakeTurn picks the agent's move with a full minimax search and applies it.
func (that *botService) MakeTurn(_ context.Context, game *entity.Game) (entity.Move, error) {
	if game.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if game.Turn != game.Agent {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	score, move := tictactoe.BestMove(game)

	that.logger.Debug("search finished",
		zap.String("game_id", game.ID),
		zap.Stringer("move", move),
		zap.Int("score", score),
	)

	if _, err := game.ApplyMove(move.Row, move.Col); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

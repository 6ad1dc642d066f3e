package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"go.uber.org/zap"
)

type GamePlayService interface {
	NewGame(humanSymbol string) *entity.Game

	HumanTurn(ctx context.Context, game *entity.Game, row, col int) (entity.Outcome, error)
	AgentTurn(ctx context.Context, game *entity.Game) (entity.Move, entity.Outcome, error)
}

type gamePlayService struct {
	logger *zap.Logger

	botService BotService
}

func NewGamePlayService(logger *zap.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger.With(zap.String("component", "gameplay")),
		botService: botService,
	}
}

func (that *gamePlayService) NewGame(humanSymbol string) *entity.Game {
	game := entity.NewGame(uuid.NewString(), entity.ParseMark(humanSymbol))

	that.logger.Info("game created",
		zap.String("game_id", game.ID),
		zap.Stringer("human", game.Human),
		zap.Stringer("agent", game.Agent),
	)

	return game
}

func (that *gamePlayService) HumanTurn(_ context.Context, game *entity.Game, row, col int) (entity.Outcome, error) {
	if game.IsFinished() {
		return game.CheckOutcome(), apperror.ErrGameFinished
	}

	if game.Turn != game.Human {
		return game.CheckOutcome(), apperror.ErrNotYourTurn
	}

	outcome, err := game.ApplyMove(row, col)
	if err != nil {
		return outcome, fmt.Errorf("failed to make turn: %w", err)
	}

	that.logOutcome(game, "human", entity.Move{Row: row, Col: col}, outcome)

	return outcome, nil
}

func (that *gamePlayService) AgentTurn(ctx context.Context, game *entity.Game) (entity.Move, entity.Outcome, error) {
	move, err := that.botService.MakeTurn(ctx, game)
	if err != nil {
		return entity.Move{}, game.CheckOutcome(), fmt.Errorf("failed to make agent turn: %w", err)
	}

	outcome := game.CheckOutcome()
	that.logOutcome(game, "agent", move, outcome)

	return move, outcome, nil
}

func (that *gamePlayService) logOutcome(game *entity.Game, by string, move entity.Move, outcome entity.Outcome) {
	fields := []zap.Field{
		zap.String("game_id", game.ID),
		zap.String("by", by),
		zap.Stringer("move", move),
		zap.String("status", outcome.Status),
	}

	if outcome.Status == entity.StatusWon {
		fields = append(fields, zap.Stringer("winner", outcome.Winner))
	}

	that.logger.Info("turn applied", fields...)
}

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"go.uber.org/zap"
)

var ErrInputClosed = errors.New("input closed")

const (
	invalidMoveMessage = "Invalid move, please try again."
	chooseSymbolPrompt = "Please choose your symbol: X or O."
	movePromptFormat   = "Player %s, please enter your move in the form `row col`."
)

var welcomeMessages = []string{
	"Welcome to Tic Tac Toe! The board is numbered like this:",
	"  0 1 2",
	"0| | | |",
	"1| | | |",
	"2| | | |",
	"You will enter your moves in the form `row col`.",
}

type gamePlay interface {
	NewGame(humanSymbol string) *entity.Game

	HumanTurn(ctx context.Context, game *entity.Game, row, col int) (entity.Outcome, error)
	AgentTurn(ctx context.Context, game *entity.Game) (entity.Move, entity.Outcome, error)
}

// Server plays one game against the agent over a line-oriented stream.
type Server struct {
	logger   *zap.Logger
	gamePlay gamePlay
	renderer Renderer

	in  io.Reader
	out io.Writer

	// humanSymbol skips the symbol prompt when set.
	humanSymbol string
}

func New(logger *zap.Logger, gamePlay gamePlay, renderer Renderer, in io.Reader, out io.Writer, humanSymbol string) *Server {
	return &Server{
		logger:      logger.With(zap.String("component", "console")),
		gamePlay:    gamePlay,
		renderer:    renderer,
		in:          in,
		out:         out,
		humanSymbol: humanSymbol,
	}
}

// Start runs the session until the game is over, the input is exhausted
// or ctx is cancelled.
func (that *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	for _, message := range welcomeMessages {
		if err := that.renderer.RenderMessage(that.out, message); err != nil {
			return err
		}
	}

	symbol, err := that.chooseSymbol(ctx, lines)
	if err != nil {
		return fmt.Errorf("failed to choose symbol: %w", err)
	}

	game := that.gamePlay.NewGame(symbol)
	log := that.logger.With(zap.String("game_id", game.ID))

	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		var outcome entity.Outcome
		if game.Turn == game.Agent {
			_, outcome, err = that.gamePlay.AgentTurn(ctx, game)
			if err != nil {
				return fmt.Errorf("agent turn failed: %w", err)
			}
		} else {
			outcome, err = that.humanTurn(ctx, game, lines)
			if err != nil {
				return fmt.Errorf("human turn failed: %w", err)
			}
		}

		if outcome.IsTerminal() {
			log.Info("game over", zap.String("status", outcome.Status))

			if err = that.renderer.RenderBoard(that.out, game); err != nil {
				return err
			}

			return that.renderer.RenderOutcome(that.out, outcome)
		}
	}
}

func (that *Server) chooseSymbol(ctx context.Context, lines <-chan string) (string, error) {
	if that.humanSymbol != "" {
		return that.humanSymbol, nil
	}

	if err := that.renderer.RenderMessage(that.out, chooseSymbolPrompt); err != nil {
		return "", err
	}

	line, err := that.readLine(ctx, lines)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// humanTurn prompts until the human enters a move the game accepts.
func (that *Server) humanTurn(ctx context.Context, game *entity.Game, lines <-chan string) (entity.Outcome, error) {
	for {
		if err := that.renderer.RenderBoard(that.out, game); err != nil {
			return entity.Outcome{}, err
		}

		if err := that.renderer.RenderMessage(that.out, fmt.Sprintf(movePromptFormat, game.Turn)); err != nil {
			return entity.Outcome{}, err
		}

		line, err := that.readLine(ctx, lines)
		if err != nil {
			return entity.Outcome{}, err
		}

		row, col, err := ParseMove(line)
		if err == nil {
			var outcome entity.Outcome
			outcome, err = that.gamePlay.HumanTurn(ctx, game, row, col)
			if err == nil {
				return outcome, nil
			}
		}

		if !isRecoverable(err) {
			return entity.Outcome{}, err
		}

		that.logger.Debug("move rejected", zap.String("input", line), zap.Error(err))

		if err = that.renderer.RenderMessage(that.out, invalidMoveMessage); err != nil {
			return entity.Outcome{}, err
		}
	}
}

func (that *Server) readLine(ctx context.Context, lines <-chan string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", ErrInputClosed
		}
		return line, nil
	}
}

// readLines pumps the input into a channel so reads can be abandoned on cancellation.
func (that *Server) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Warn("failed to read input", zap.Error(err))
		}
	}()

	return lines
}

func isRecoverable(err error) bool {
	return errors.Is(err, apperror.ErrMalformedInput) ||
		errors.Is(err, apperror.ErrOutOfRange) ||
		errors.Is(err, apperror.ErrCellOccupied)
}

package console

import (
	"bufio"
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(st *suite.Suite, renderer Renderer, input string, out *bytes.Buffer, humanSymbol string) *Server {
	gamePlay := service.NewGamePlayService(st.Logger, service.NewBotService(st.Logger))

	return New(st.Logger, gamePlay, renderer, strings.NewReader(input), out, humanSymbol)
}

func TestServer_Start(t *testing.T) {
	t.Run("Agent wins after human mistakes", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the human picks X and plays (0,0), (0,1), (1,0),
		// with a malformed line, an occupied cell and an out-of-range cell in between
		input := strings.Join([]string{"X", "0 0", "foo", "0 0", "5 5", "0 1", "1 0"}, "\n") + "\n"
		var out bytes.Buffer
		server := newServer(st, NewTextRenderer(false), input, &out, "")

		// When: the session runs
		err := server.Start(ctx)

		// Then: the agent takes the centre, blocks the top row and wins on the anti-diagonal
		require.NoError(t, err)

		output := out.String()
		assert.True(t, strings.HasPrefix(output, "Welcome to Tic Tac Toe!"))
		assert.Contains(t, output, "Please choose your symbol: X or O.")
		assert.Contains(t, output, "Player X, please enter your move in the form `row col`.")
		assert.Equal(t, 3, strings.Count(output, "Invalid move, please try again."))
		assert.True(t, strings.HasSuffix(output, "|X|X|O|\n|X|O| |\n|O| | |\nPlayer O wins!\n"), output)
	})

	t.Run("Configured symbol skips the prompt", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the human is preset to O and the input ends after the agent's opening
		var out bytes.Buffer
		server := newServer(st, NewTextRenderer(false), "", &out, "O")

		// When: the session runs
		err := server.Start(ctx)

		// Then: the agent opened in the corner and the session stops on closed input
		require.ErrorIs(t, err, ErrInputClosed)

		output := out.String()
		assert.NotContains(t, output, "Please choose your symbol")
		assert.Contains(t, output, "|X| | |\n| | | |\n| | | |\nPlayer O, please enter your move")
	})

	t.Run("JSON output", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a JSON renderer and the human playing O
		var out bytes.Buffer
		server := newServer(st, NewJSONRenderer(), "O\n", &out, "")

		// When: the session runs until the input is exhausted
		err := server.Start(ctx)
		require.ErrorIs(t, err, ErrInputClosed)

		// Then: every line is a JSON event and the board shows the agent's opening
		var boards []event
		scanner := bufio.NewScanner(&out)
		for scanner.Scan() {
			var e event
			require.NoError(t, jsoniter.Unmarshal(scanner.Bytes(), &e), scanner.Text())
			if e.Type == eventBoard {
				boards = append(boards, e)
			}
		}

		require.Len(t, boards, 1)
		assert.Equal(t, "X", boards[0].Board[0][0])
		assert.Equal(t, "O", boards[0].Turn)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		_, st := suite.New(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out bytes.Buffer
		server := newServer(st, NewTextRenderer(false), "0 0\n", &out, "X")

		err := server.Start(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestServer_StopsReadingAfterGameOver(t *testing.T) {
	_, st := suite.New(t)

	// Given: input that keeps going after the agent wins
	input := "0 0\n0 1\n1 0\nextra\nextra\n"
	var out bytes.Buffer
	server := newServer(st, NewTextRenderer(false), input, &out, "X")
	before := runtime.NumGoroutine()

	// When: the session runs on a context that is never cancelled
	err := server.Start(context.Background())

	// Then: the game ends and the input reader goes away with it
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "Player O wins!\n"), out.String())

	deadline := time.Now().Add(time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before)
}

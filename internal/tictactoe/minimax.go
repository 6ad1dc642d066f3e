package tictactoe

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

const (
	scoreAgentWin = 1
	scoreHumanWin = -1
	scoreDraw     = 0

	// Scores are bounded by [-1, 1], so these work as infinities.
	minScore = -1000
	maxScore = 1000
)

// defaultMove is returned when no cell is chosen: terminal positions and
// the minimizing side, whose move is never used.
var defaultMove = entity.Move{Row: 1, Col: 1}

// BestMove searches for the agent's optimal move from the current position.
func BestMove(game *entity.Game) (int, entity.Move) {
	return Search(game, true)
}

// Search runs an exhaustive minimax over every continuation of game.
// The agent maximizes and the human minimizes. Hypothetical marks are written
// straight into game.Board and reverted before returning, so the caller must
// not touch game concurrently. game.Turn is never modified.
//
// Cells are scanned in row-major order and only a strictly better score
// replaces the current best, so ties resolve to the first cell found.
func Search(game *entity.Game, maximizing bool) (int, entity.Move) {
	switch {
	case game.IsWinner(game.Agent):
		return scoreAgentWin, defaultMove
	case game.IsWinner(game.Human):
		return scoreHumanWin, defaultMove
	case game.IsDraw():
		return scoreDraw, defaultMove
	}

	if maximizing {
		return maximize(game)
	}

	return minimize(game)
}

func maximize(game *entity.Game) (int, entity.Move) {
	bestScore, bestMove := minScore, defaultMove

	for i := 0; i < entity.Size; i++ {
		for j := 0; j < entity.Size; j++ {
			if game.Board[i][j] != entity.Empty {
				continue
			}

			game.Board[i][j] = game.Agent
			score, _ := Search(game, false)
			game.Board[i][j] = entity.Empty

			if score > bestScore {
				bestScore = score
				bestMove = entity.Move{Row: i, Col: j}
			}
		}
	}

	return bestScore, bestMove
}

func minimize(game *entity.Game) (int, entity.Move) {
	bestScore := maxScore

	for i := 0; i < entity.Size; i++ {
		for j := 0; j < entity.Size; j++ {
			if game.Board[i][j] != entity.Empty {
				continue
			}

			game.Board[i][j] = game.Human
			score, _ := Search(game, true)
			game.Board[i][j] = entity.Empty

			bestScore = min(bestScore, score)
		}
	}

	return bestScore, defaultMove
}

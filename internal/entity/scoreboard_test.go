package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreboard_Record(t *testing.T) {
	t.Run("Credits the winner", func(t *testing.T) {
		// Given: an empty scoreboard and a game won by O
		board := Scoreboard{}
		state := GameState{Winner: PlayerO, GameOver: true}

		// When: recording the game
		board = board.Record(state)

		// Then: only O's counter moves
		assert.Equal(t, Scoreboard{X: 0, O: 1, Draws: 0}, board)
	})

	t.Run("Credits a draw", func(t *testing.T) {
		// Given: a scoreboard with history and a drawn game
		board := Scoreboard{X: 2, O: 1}
		state := GameState{IsDraw: true, GameOver: true}

		// When: recording the game
		board = board.Record(state)

		// Then: only the draws counter moves
		assert.Equal(t, Scoreboard{X: 2, O: 1, Draws: 1}, board)
		assert.Equal(t, 4, board.Total())
	})

	t.Run("Ignores a game in progress", func(t *testing.T) {
		// Given: a game that has not ended
		board := Scoreboard{X: 1}

		// When: recording it
		updated := board.Record(NewGameState())

		// Then: nothing changes
		assert.Equal(t, board, updated)
	})
}

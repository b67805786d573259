package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = PlayerX
	o = PlayerO
	e = EmptyCell
)

func TestNewGameState(t *testing.T) {
	// When: creating a fresh game state
	state := NewGameState()

	// Then: the board is empty and X moves first
	expected := GameState{
		Board:         Board{e, e, e, e, e, e, e, e, e},
		CurrentPlayer: PlayerX,
		Winner:        EmptyCell,
		IsDraw:        false,
		GameOver:      false,
	}

	require.Equal(t, expected, state)
	assert.Len(t, state.Board, 9)
}

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Mark
	}{
		{name: "empty board", board: Board{}, want: EmptyCell},
		{name: "partial board", board: Board{x, o, e, e, x, e, e, e, o}, want: EmptyCell},
		{name: "X wins first row", board: Board{x, x, x, o, o, e, e, e, e}, want: PlayerX},
		{name: "O wins second row", board: Board{x, e, x, o, o, o, x, e, e}, want: PlayerO},
		{name: "X wins third row", board: Board{o, o, e, e, e, e, x, x, x}, want: PlayerX},
		{name: "X wins first column", board: Board{x, o, e, x, o, e, x, e, e}, want: PlayerX},
		{name: "O wins second column", board: Board{x, o, e, x, o, e, e, o, e}, want: PlayerO},
		{name: "O wins third column", board: Board{x, x, o, e, e, o, x, e, o}, want: PlayerO},
		{name: "X wins main diagonal", board: Board{x, o, e, e, x, o, e, e, x}, want: PlayerX},
		{name: "O wins anti-diagonal", board: Board{x, x, o, e, o, e, o, e, x}, want: PlayerO},
		{name: "full board without a line", board: Board{x, x, o, o, o, x, x, o, x}, want: EmptyCell},
		{name: "full board with a line", board: Board{x, x, x, o, o, x, x, o, o}, want: PlayerX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckWinner(tt.board))
		})
	}
}

func TestCheckWinner_ScanOrder(t *testing.T) {
	// Given: a board that cannot occur in play, with row 0 complete for X and row 1 for O
	board := Board{x, x, x, o, o, o, e, e, e}

	// When: checking for a winner
	winner := CheckWinner(board)

	// Then: the first line in scan order wins
	assert.Equal(t, PlayerX, winner)

	// Given: column 0 complete for O, scanned before column 2 complete for X
	board = Board{o, x, x, o, x, x, o, e, x}

	// Then: the column is reported first
	assert.Equal(t, PlayerO, CheckWinner(board))
}

func TestCheckWinner_AllBoards(t *testing.T) {
	// Given: every possible assignment of {empty, X, O} to the 9 cells
	marks := [3]Mark{e, x, o}

	for n := 0; n < 19683; n++ {
		var board Board
		rest := n
		for i := range board {
			board[i] = marks[rest%3]
			rest /= 3
		}

		// When: a uniform non-empty line exists
		hasLine := false
		for _, combo := range WinCombos {
			a := board[combo[0]]
			if a != e && a == board[combo[1]] && a == board[combo[2]] {
				hasLine = true
				break
			}
		}

		// Then: CheckWinner reports a mark exactly when such a line exists
		require.Equal(t, hasLine, CheckWinner(board) != EmptyCell, "board %v", board)
	}
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		assert.False(t, Board{}.IsFull())
	})

	t.Run("One empty cell left", func(t *testing.T) {
		assert.False(t, Board{x, o, x, o, x, o, o, x, e}.IsFull())
	})

	t.Run("All cells marked", func(t *testing.T) {
		assert.True(t, Board{x, o, x, o, x, o, o, x, o}.IsFull())
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
}

func TestGameState_Phase(t *testing.T) {
	t.Run("In progress", func(t *testing.T) {
		assert.Equal(t, PhaseInProgress, NewGameState().Phase())
	})

	t.Run("Won by X", func(t *testing.T) {
		state := GameState{Winner: PlayerX, GameOver: true}
		assert.Equal(t, PhaseWonX, state.Phase())
	})

	t.Run("Won by O", func(t *testing.T) {
		state := GameState{Winner: PlayerO, GameOver: true}
		assert.Equal(t, PhaseWonO, state.Phase())
	})

	t.Run("Drawn", func(t *testing.T) {
		state := GameState{IsDraw: true, GameOver: true}
		assert.Equal(t, PhaseDrawn, state.Phase())
	})
}

func TestGameState_StatusMessage(t *testing.T) {
	t.Run("Current player's turn", func(t *testing.T) {
		// Given: a game with O to move
		state := NewGameState()
		state.CurrentPlayer = PlayerO

		// Then: the status names the player to move
		assert.Equal(t, "Player O's turn", state.StatusMessage())
	})

	t.Run("Winner", func(t *testing.T) {
		// Given: a game won by X
		state := GameState{Winner: PlayerX, CurrentPlayer: PlayerO, GameOver: true}

		// Then: the status announces the winner
		assert.Equal(t, "Player X wins!", state.StatusMessage())
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a drawn game
		state := GameState{IsDraw: true, CurrentPlayer: PlayerO, GameOver: true}

		// Then: the status announces the draw
		assert.Equal(t, "It's a draw!", state.StatusMessage())
	})
}

package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/entity"
)

const boardSize = len(entity.Board{})

// ApplyMove - places the current player's mark at index and returns the next state.
// Moves on a finished game, on an occupied cell or outside the board are ignored and
// the inputs come back unchanged.
func ApplyMove(state entity.GameState, scoreboard entity.Scoreboard, index int) (entity.GameState, entity.Scoreboard) {
	next, nextScoreboard, err := MakeTurn(state, scoreboard, index)
	if err != nil {
		return state, scoreboard
	}

	return next, nextScoreboard
}

// MakeTurn - same as ApplyMove, but rejects illegal moves with an error.
func MakeTurn(state entity.GameState, scoreboard entity.Scoreboard, index int) (entity.GameState, entity.Scoreboard, error) {
	if err := validateMove(state, index); err != nil {
		return state, scoreboard, err
	}

	next := state
	next.Board[index] = state.CurrentPlayer
	updateGameStatus(&next)

	if next.GameOver && !state.GameOver {
		scoreboard = scoreboard.Record(next)
	}

	next.CurrentPlayer = state.CurrentPlayer.Opponent()

	return next, scoreboard, nil
}

// validateMove - checks if the move is valid.
func validateMove(state entity.GameState, index int) error {
	if index < 0 || index >= boardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrIndexOutOfRange, index)
	}

	if state.GameOver {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	if !state.Board.IsEmptyAt(index) {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, index)
	}

	return nil
}

// updateGameStatus - a completed line wins even on a full board.
func updateGameStatus(state *entity.GameState) {
	state.Winner = entity.CheckWinner(state.Board)
	state.IsDraw = state.Winner == entity.EmptyCell && state.Board.IsFull()
	state.GameOver = state.Winner != entity.EmptyCell || state.IsDraw
}

// CheckWinner - returns the mark occupying the first completed line, or EmptyCell.
func CheckWinner(board entity.Board) entity.Mark {
	return entity.CheckWinner(board)
}

// ResetGame - returns a fresh game. The scoreboard is untouched.
func ResetGame() entity.GameState {
	return entity.NewGameState()
}

// ResetScoreboard - zeroes the tallies and starts a new game.
func ResetScoreboard() (entity.GameState, entity.Scoreboard) {
	return ResetGame(), entity.Scoreboard{}
}

func StatusMessage(state entity.GameState) string {
	return state.StatusMessage()
}

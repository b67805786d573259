package apperror

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrIndexOutOfRange = errors.New("cell index out of range")

	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")

	ErrSessionNotFound = errors.New("session not found")
)

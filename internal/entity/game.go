package entity

import "fmt"

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	// EmptyCell doubles as "no winner".
	EmptyCell Mark = ""
)

type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseWonX       Phase = "won_x"
	PhaseWonO       Phase = "won_o"
	PhaseDrawn      Phase = "drawn"
)

// WinCombos lists every line in scan order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored in row-major order.
type Board [9]Mark

type GameState struct {
	Board         Board `json:"board"`
	CurrentPlayer Mark  `json:"current_player"`
	Winner        Mark  `json:"winner"`
	IsDraw        bool  `json:"is_draw"`
	GameOver      bool  `json:"game_over"`
}

// NewGameState - returns an empty board with X to move.
func NewGameState() GameState {
	return GameState{
		Board:         Board{},
		CurrentPlayer: PlayerX,
		Winner:        EmptyCell,
	}
}

// CheckWinner - returns the mark of the first completed line, or EmptyCell.
func CheckWinner(board Board) Mark {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) IsEmptyAt(index int) bool {
	return that[index] == EmptyCell
}

func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that GameState) Phase() Phase {
	switch {
	case that.Winner == PlayerX:
		return PhaseWonX
	case that.Winner == PlayerO:
		return PhaseWonO
	case that.IsDraw:
		return PhaseDrawn
	default:
		return PhaseInProgress
	}
}

func (that GameState) StatusMessage() string {
	if that.Winner != EmptyCell {
		return fmt.Sprintf("Player %s wins!", that.Winner)
	}

	if that.IsDraw {
		return "It's a draw!"
	}

	return fmt.Sprintf("Player %s's turn", that.CurrentPlayer)
}

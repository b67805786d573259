package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/entity"
)

// Engine owns the state of one game session. It is not safe for concurrent use.
type Engine struct {
	state      entity.GameState
	scoreboard entity.Scoreboard

	observers []func(entity.Snapshot)
}

func NewEngine() *Engine {
	return &Engine{
		state: ResetGame(),
	}
}

// RestoreEngine - rebuilds an engine from previously stored state.
func RestoreEngine(state entity.GameState, scoreboard entity.Scoreboard) *Engine {
	return &Engine{
		state:      state,
		scoreboard: scoreboard,
	}
}

// OnChange - registers fn to be called after every state change.
func (that *Engine) OnChange(fn func(entity.Snapshot)) {
	that.observers = append(that.observers, fn)
}

// Move - plays the current player's mark at index.
// On error the engine state is left unchanged and observers are not notified.
func (that *Engine) Move(index int) error {
	state, scoreboard, err := MakeTurn(that.state, that.scoreboard, index)
	if err != nil {
		return err
	}

	that.state, that.scoreboard = state, scoreboard
	that.notify()

	return nil
}

// NewGame - clears the board and keeps the scoreboard.
func (that *Engine) NewGame() {
	that.state = ResetGame()
	that.notify()
}

// ResetScoreboard - zeroes the scoreboard and starts a new game.
func (that *Engine) ResetScoreboard() {
	that.state, that.scoreboard = ResetScoreboard()
	that.notify()
}

func (that *Engine) State() entity.GameState {
	return that.state
}

func (that *Engine) Scoreboard() entity.Scoreboard {
	return that.scoreboard
}

func (that *Engine) Status() string {
	return StatusMessage(that.state)
}

func (that *Engine) Snapshot() entity.Snapshot {
	return entity.NewSnapshot(that.state, that.scoreboard)
}

func (that *Engine) notify() {
	snapshot := that.Snapshot()
	for _, fn := range that.observers {
		fn(snapshot)
	}
}

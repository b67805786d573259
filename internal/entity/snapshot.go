package entity

// Snapshot is what a presentation layer needs to redraw: board, tallies and status text.
type Snapshot struct {
	SessionID  string     `json:"session_id,omitempty"`
	Game       GameState  `json:"game"`
	Scoreboard Scoreboard `json:"scoreboard"`
	Status     string     `json:"status"`
	Phase      Phase      `json:"phase"`
}

func NewSnapshot(game GameState, scoreboard Scoreboard) Snapshot {
	return Snapshot{
		Game:       game,
		Scoreboard: scoreboard,
		Status:     game.StatusMessage(),
		Phase:      game.Phase(),
	}
}

package entity

type Scoreboard struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// Record - credits a finished game to its winner, or to draws.
func (that Scoreboard) Record(state GameState) Scoreboard {
	switch {
	case state.Winner == PlayerX:
		that.X++
	case state.Winner == PlayerO:
		that.O++
	case state.IsDraw:
		that.Draws++
	}

	return that
}

func (that Scoreboard) Total() int {
	return that.X + that.O + that.Draws
}

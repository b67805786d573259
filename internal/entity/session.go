package entity

import "time"

// Session is the stored state of one engine instance.
type Session struct {
	ID         string     `json:"id"`
	Game       GameState  `json:"game"`
	Scoreboard Scoreboard `json:"scoreboard"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Game:      NewGameState(),
		UpdatedAt: time.Now().UTC(),
	}
}

package shared

import "github.com/google/uuid"

// Player is the record of a seated participant. Rounds refer to players only by Seat.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Seat Seat   `json:"seat"`
}

// NewPlayer creates a player with a generated ID.
func NewPlayer(name string, seat Seat) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Seat: seat,
	}
}

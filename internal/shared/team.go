package shared

import "github.com/google/uuid"

// TeamEnum represents the two partnerships.
type TeamEnum int

const (
	TeamA TeamEnum = 0 // seats 0 and 2
	TeamB TeamEnum = 1 // seats 1 and 3
)

// Opponent returns the other partnership.
func (t TeamEnum) Opponent() TeamEnum {
	return 1 - t
}

// Seats returns the two seats of the partnership.
func (t TeamEnum) Seats() [2]Seat {
	return [2]Seat{Seat(t), Seat(t) + 2}
}

func (t TeamEnum) String() string {
	if t == TeamA {
		return "A"
	}
	return "B"
}

// Team holds the cumulative match score of a partnership.
type Team struct {
	ID     string   `json:"id"`
	Number TeamEnum `json:"number"`
	Score  int      `json:"score"`
}

// NewTeam creates a team with a fresh UUID and a zero score.
func NewTeam(number TeamEnum) *Team {
	return &Team{
		ID:     uuid.NewString(),
		Number: number,
	}
}

// AddScore adds round points to the cumulative score.
func (t *Team) AddScore(points int) {
	t.Score += points
}

package database

import (
	"time"

	"belote-engine/internal/game"
	"belote-engine/internal/shared"

	"github.com/google/uuid"
)

// MatchResult is one finished match as stored in the results table.
type MatchResult struct {
	ID         string `json:"id"`
	MatchID    string `json:"match_id"`
	CreatedAt  string `json:"created_at"`
	Player1    string `json:"player1"`
	Player2    string `json:"player2"`
	Player3    string `json:"player3"`
	Player4    string `json:"player4"`
	Team1Score int    `json:"team1_score"`
	Team2Score int    `json:"team2_score"`
	Winner     int    `json:"winner"` // 1 or 2
	Rounds     int    `json:"rounds"`
	Seed       uint64 `json:"seed"`
}

// NewMatchResult builds the row for a finished engine.
func NewMatchResult(e *game.Engine, res game.MatchResult, seed uint64) MatchResult {
	return MatchResult{
		ID:         uuid.NewString(),
		MatchID:    e.ID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Player1:    e.Players[0].Name,
		Player2:    e.Players[1].Name,
		Player3:    e.Players[2].Name,
		Player4:    e.Players[3].Name,
		Team1Score: res.Scores[shared.TeamA],
		Team2Score: res.Scores[shared.TeamB],
		Winner:     int(res.Winner) + 1,
		Rounds:     res.Rounds,
		Seed:       seed,
	}
}

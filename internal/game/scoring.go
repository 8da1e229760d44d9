package game

import (
	"fmt"

	"belote-engine/internal/shared"
)

const (
	TricksPerRound = 8
	LastTrickBonus = 10  // "ten of der"
	RoundTotal     = 162 // card values plus the last-trick bonus
	CapotPoints    = 250
)

// RoundScore is the outcome of a played round.
type RoundScore struct {
	Raw       [2]int          `json:"raw"`    // card points, last-trick bonus included
	Points    [2]int          `json:"points"` // what is added to the match totals
	TricksWon [2]int          `json:"tricks_won"`
	LastTrick shared.TeamEnum `json:"last_trick"`
	Capot     bool            `json:"capot"`
	Set       bool            `json:"set"` // the taker's team went set
}

// ScoreRound totals eight resolved tricks for the given contract.
func ScoreRound(tricks []*shared.Trick, c Contract) (RoundScore, error) {
	if len(tricks) != TricksPerRound {
		return RoundScore{}, fmt.Errorf("cannot score %d tricks", len(tricks))
	}
	var raw, won [2]int
	for i, t := range tricks {
		if !t.Complete() || !t.Winner.Valid() {
			return RoundScore{}, fmt.Errorf("trick %d is unresolved", i)
		}
		team := t.Winner.Team()
		raw[team] += t.Points(c.Trump)
		won[team]++
	}
	last := tricks[len(tricks)-1].Winner.Team()
	raw[last] += LastTrickBonus
	s := Settle(raw, won, c.Taker.Team())
	s.LastTrick = last
	return s, nil
}

// Settle applies capot and going-set adjustments to raw team points.
func Settle(raw, tricksWon [2]int, taker shared.TeamEnum) RoundScore {
	s := RoundScore{Raw: raw, TricksWon: tricksWon, Points: raw}
	defenders := taker.Opponent()
	for _, team := range []shared.TeamEnum{shared.TeamA, shared.TeamB} {
		if tricksWon[team] == TricksPerRound {
			s.Capot = true
			s.Set = team == defenders
			s.Points[team] = CapotPoints
			s.Points[team.Opponent()] = 0
			return s
		}
	}
	if raw[taker] < raw[defenders] {
		s.Set = true
		s.Points[taker] = 0
		s.Points[defenders] = RoundTotal
	}
	return s
}

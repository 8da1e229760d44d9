package protocol

import (
	"encoding/json"
	"fmt"

	"belote-engine/internal/game"
	"belote-engine/internal/shared"
)

// Message is the envelope of every JSON line the host emits.
type Message struct {
	Type    string          `json:"type"`              // e.g. "match_start", "your_turn"
	Payload json.RawMessage `json:"payload,omitempty"` // payload struct for Type
}

const (
	TypeMatchStart = "match_start"
	TypeYourTurn   = "your_turn"
	TypeTrickEnd   = "trick_end"
	TypeRoundEnd   = "round_end"
	TypeRedeal     = "redeal"
	TypeGameOver   = "game_over"
	TypeError      = "error"
)

type PlayerInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"` // seat 0-3
}

type TeamInfo struct {
	ID         string       `json:"id"`
	Players    []PlayerInfo `json:"players"`
	Score      int          `json:"score"`
	TeamNumber int          `json:"team_number"`
}

type MatchStartPayload struct {
	MatchID    string       `json:"match_id"`
	Players    []PlayerInfo `json:"players"`
	Teams      []TeamInfo   `json:"teams"`
	PointsGoal int          `json:"points_goal"`
	Dealer     int          `json:"dealer"`
}

type YourTurnPayload struct {
	PlayerID   string        `json:"player_id"`
	Decision   string        `json:"decision"`
	Round      int           `json:"round"`
	Hand       []shared.Card `json:"hand"`
	Candidate  *shared.Card  `json:"candidate,omitempty"`
	Trump      *shared.Suit  `json:"trump,omitempty"`
	ValidMoves []shared.Card `json:"valid_moves,omitempty"`
	Table      []shared.Card `json:"cards_on_table,omitempty"`
}

type TrickEndPayload struct {
	Number   int           `json:"number"`
	WinnerID string        `json:"winner_id"`
	Cards    []shared.Card `json:"cards"`
	Points   int           `json:"points"`
}

type RoundEndPayload struct {
	Round           int    `json:"round"`
	TakerID         string `json:"taker_id,omitempty"`
	Trump           string `json:"trump,omitempty"`
	Team1RoundScore int    `json:"team1_round_score"`
	Team2RoundScore int    `json:"team2_round_score"`
	Team1TotalScore int    `json:"team1_total_score"`
	Team2TotalScore int    `json:"team2_total_score"`
	Capot           bool   `json:"capot,omitempty"`
	Set             bool   `json:"set,omitempty"`
}

type RedealPayload struct {
	Round     int         `json:"round"`
	Candidate shared.Card `json:"candidate"`
	NewDealer int         `json:"new_dealer"`
}

type GameOverPayload struct {
	WinningTeamID string `json:"winning_team_id"`
	FinalScoreT1  int    `json:"final_score_t1"`
	FinalScoreT2  int    `json:"final_score_t2"`
	Rounds        int    `json:"rounds"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage wraps payload in a Message and encodes it.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Payload: payloadBytes})
}

func playerInfo(p *shared.Player) PlayerInfo {
	return PlayerInfo{ID: p.ID, Name: p.Name, Position: int(p.Seat)}
}

// MatchStart describes the seating of a fresh engine.
func MatchStart(e *game.Engine) MatchStartPayload {
	p := MatchStartPayload{
		MatchID:    e.ID,
		PointsGoal: e.Rules().TargetScore,
		Dealer:     int(e.Dealer()),
	}
	for _, pl := range e.Players {
		p.Players = append(p.Players, playerInfo(pl))
	}
	for _, t := range e.Teams {
		info := TeamInfo{ID: t.ID, Score: t.Score, TeamNumber: int(t.Number) + 1}
		for _, s := range t.Number.Seats() {
			info.Players = append(info.Players, playerInfo(e.Players[s]))
		}
		p.Teams = append(p.Teams, info)
	}
	return p
}

// TrickEnd describes the n-th (1-based) completed trick of the current round.
func TrickEnd(e *game.Engine, n int) (TrickEndPayload, bool) {
	tricks := e.Tricks()
	trump, ok := e.Trump()
	if !ok || n < 1 || n > len(tricks) {
		return TrickEndPayload{}, false
	}
	t := tricks[n-1]
	p := TrickEndPayload{Number: n, WinnerID: e.Players[t.Winner].ID, Points: t.Points(trump)}
	for _, pc := range t.Cards {
		p.Cards = append(p.Cards, pc.Card)
	}
	return p, true
}

// FromEvent encodes a Step event as the JSON line a client of seat-level
// views would receive.
func FromEvent(e *game.Engine, ev game.Event) ([]byte, error) {
	switch ev.Kind {
	case game.NeedDecision:
		return NewMessage(TypeYourTurn, yourTurn(e, ev))
	case game.RoundEnded:
		r := ev.Round
		if r.Redeal {
			return NewMessage(TypeRedeal, RedealPayload{Round: r.Index, Candidate: r.Candidate, NewDealer: int(r.Dealer.Next())})
		}
		scores := e.Scores()
		p := RoundEndPayload{
			Round:           r.Index,
			Team1RoundScore: r.Score.Points[shared.TeamA],
			Team2RoundScore: r.Score.Points[shared.TeamB],
			Team1TotalScore: scores[shared.TeamA],
			Team2TotalScore: scores[shared.TeamB],
			Capot:           r.Score.Capot,
			Set:             r.Score.Set,
		}
		if r.Contract != nil {
			p.TakerID = e.Players[r.Contract.Taker].ID
			p.Trump = r.Contract.Trump.String()
		}
		return NewMessage(TypeRoundEnd, p)
	case game.MatchEnded:
		res := ev.Result
		return NewMessage(TypeGameOver, GameOverPayload{
			WinningTeamID: e.Teams[res.Winner].ID,
			FinalScoreT1:  res.Scores[shared.TeamA],
			FinalScoreT2:  res.Scores[shared.TeamB],
			Rounds:        res.Rounds,
		})
	}
	return nil, fmt.Errorf("unknown event kind %d", ev.Kind)
}

func yourTurn(e *game.Engine, ev game.Event) YourTurnPayload {
	p := YourTurnPayload{
		PlayerID: e.Players[ev.Seat].ID,
		Decision: ev.Decision.String(),
		Round:    e.RoundIndex(),
		Hand:     e.Hand(ev.Seat),
	}
	if ev.Decision != game.DecidePlay {
		if c, ok := e.Candidate(); ok {
			p.Candidate = &c
		}
		return p
	}
	if trump, ok := e.Trump(); ok {
		p.Trump = &trump
	}
	p.ValidMoves = e.LegalPlays(ev.Seat)
	if t := e.CurrentTrick(); t != nil {
		for _, pc := range t.Cards {
			p.Table = append(p.Table, pc.Card)
		}
	}
	return p
}

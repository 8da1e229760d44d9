package game

import "belote-engine/internal/shared"

// EventKind tells the host what Step produced.
type EventKind int

const (
	NeedDecision EventKind = iota
	RoundEnded
	MatchEnded
)

func (k EventKind) String() string {
	switch k {
	case NeedDecision:
		return "need_decision"
	case RoundEnded:
		return "round_ended"
	case MatchEnded:
		return "match_ended"
	}
	return "unknown"
}

// Event is the result of a single Step.
type Event struct {
	Kind EventKind

	// NeedDecision
	Seat     shared.Seat
	Decision DecisionKind

	// RoundEnded
	Round *RoundSummary

	// MatchEnded
	Result *MatchResult
}

// RoundSummary archives a finished round or a redeal.
type RoundSummary struct {
	Index     int             `json:"index"`
	Dealer    shared.Seat     `json:"dealer"`
	Candidate shared.Card     `json:"candidate"`
	Redeal    bool            `json:"redeal"`
	Bids      []Bid           `json:"bids"`
	Contract  *Contract       `json:"contract,omitempty"`
	Tricks    []*shared.Trick `json:"tricks,omitempty"`
	Score     RoundScore      `json:"score"`
}

// MatchResult is reported once a team reaches the target score.
type MatchResult struct {
	Winner shared.TeamEnum `json:"winner"`
	Scores [2]int          `json:"scores"`
	Rounds int             `json:"rounds"`
}

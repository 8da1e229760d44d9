package game

import (
	"fmt"

	"belote-engine/internal/shared"
)

// HandSize is the number of cards every seat holds when play starts.
const HandSize = 8

// Rules holds the construction-time parameters of a match.
type Rules struct {
	TargetScore int         // match ends once a team reaches it
	FirstDeal   int         // cards per seat in the first dealing pass
	SecondDeal  int         // cards per seat in the second dealing pass
	FirstDealer shared.Seat // dealer of the first round
}

// DefaultRules returns the standard 3+2 deal played to 1000 points.
func DefaultRules() Rules {
	return Rules{
		TargetScore: 1000,
		FirstDeal:   3,
		SecondDeal:  2,
		FirstDealer: 0,
	}
}

// Validate checks that the rules describe a playable deal.
func (r Rules) Validate() error {
	if r.TargetScore <= 0 {
		return fmt.Errorf("target score must be positive, got %d", r.TargetScore)
	}
	if r.FirstDeal < 0 || r.SecondDeal < 0 {
		return fmt.Errorf("deal counts must not be negative, got %d+%d", r.FirstDeal, r.SecondDeal)
	}
	if n := r.FirstDeal + r.SecondDeal; n < 1 || n >= HandSize {
		return fmt.Errorf("initial deal must be 1..%d cards, got %d", HandSize-1, n)
	}
	if !r.FirstDealer.Valid() {
		return fmt.Errorf("first dealer %d is not a seat", r.FirstDealer)
	}
	return nil
}

func (r Rules) initialHand() int {
	return r.FirstDeal + r.SecondDeal
}

// Package bot provides Decider implementations: scripted responders for
// tests and simple strategies for autoplay.
package bot

import (
	"fmt"

	"belote-engine/internal/game"
	"belote-engine/internal/shared"
)

// NewFromName constructs a decider by strategy name.
func NewFromName(name string, seed uint64) (game.Decider, error) {
	switch name {
	case "", "basic":
		return NewBasic(), nil
	case "random":
		return NewRandom(seed), nil
	case "pass":
		return &Funcs{}, nil
	default:
		return nil, fmt.Errorf("invalid bot strategy %s", name)
	}
}

// Funcs adapts plain functions to game.Decider. Nil functions pass during the
// auction and play the first legal card.
type Funcs struct {
	Phase1 func(hand shared.Hand, candidate shared.Card, history []game.Bid) game.Response
	Phase2 func(hand shared.Hand, forbidden shared.Suit, history []game.Bid) game.Response
	Play   func(hand shared.Hand, trick *shared.Trick, trump shared.Suit, legal shared.Hand) shared.Card
}

func (f *Funcs) DecidePhase1(hand shared.Hand, candidate shared.Card, history []game.Bid) game.Response {
	if f.Phase1 == nil {
		return game.Pass()
	}
	return f.Phase1(hand, candidate, history)
}

func (f *Funcs) DecidePhase2(hand shared.Hand, forbidden shared.Suit, history []game.Bid) game.Response {
	if f.Phase2 == nil {
		return game.Pass()
	}
	return f.Phase2(hand, forbidden, history)
}

func (f *Funcs) DecidePlay(hand shared.Hand, trick *shared.Trick, trump shared.Suit, legal shared.Hand) shared.Card {
	if f.Play == nil {
		return legal[0]
	}
	return f.Play(hand, trick, trump, legal)
}

// Scripted answers from fixed queues, falling back to Funcs behaviour when a
// queue runs dry.
type Scripted struct {
	Funcs
	Bids  []game.Response
	Plays []shared.Card
}

func (s *Scripted) DecidePhase1(hand shared.Hand, candidate shared.Card, history []game.Bid) game.Response {
	if r, ok := s.nextBid(); ok {
		return r
	}
	return s.Funcs.DecidePhase1(hand, candidate, history)
}

func (s *Scripted) DecidePhase2(hand shared.Hand, forbidden shared.Suit, history []game.Bid) game.Response {
	if r, ok := s.nextBid(); ok {
		return r
	}
	return s.Funcs.DecidePhase2(hand, forbidden, history)
}

func (s *Scripted) DecidePlay(hand shared.Hand, trick *shared.Trick, trump shared.Suit, legal shared.Hand) shared.Card {
	if len(s.Plays) > 0 {
		c := s.Plays[0]
		s.Plays = s.Plays[1:]
		return c
	}
	return s.Funcs.DecidePlay(hand, trick, trump, legal)
}

func (s *Scripted) nextBid() (game.Response, bool) {
	if len(s.Bids) == 0 {
		return game.Response{}, false
	}
	r := s.Bids[0]
	s.Bids = s.Bids[1:]
	return r, true
}

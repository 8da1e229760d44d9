package game

import (
	"fmt"

	"belote-engine/internal/shared"
)

// DecisionKind names the choice a seat is asked to make.
type DecisionKind int

const (
	DecidePhase1 DecisionKind = iota // accept the candidate or pass
	DecidePhase2                     // name another suit or pass
	DecidePlay                       // play a legal card
)

func (k DecisionKind) String() string {
	switch k {
	case DecidePhase1:
		return "phase1"
	case DecidePhase2:
		return "phase2"
	case DecidePlay:
		return "play"
	}
	return fmt.Sprintf("DecisionKind(%d)", int(k))
}

// Action is the shape of a submitted answer.
type Action int

const (
	ActionPass Action = iota
	ActionAccept
	ActionName
	ActionPlay
)

// Response is a seat's answer to a NeedDecision event.
type Response struct {
	Action Action
	Suit   shared.Suit // for ActionName
	Card   shared.Card // for ActionPlay
}

func Pass() Response                  { return Response{Action: ActionPass} }
func Accept() Response                { return Response{Action: ActionAccept} }
func Name(s shared.Suit) Response     { return Response{Action: ActionName, Suit: s} }
func PlayCard(c shared.Card) Response { return Response{Action: ActionPlay, Card: c} }

func (r Response) String() string {
	switch r.Action {
	case ActionAccept:
		return "accept"
	case ActionName:
		return "name " + r.Suit.String()
	case ActionPlay:
		return "play " + r.Card.String()
	}
	return "pass"
}

// Decider is the port through which the engine asks a seat for its choices.
// Implementations receive copies and must not hold on to engine state.
type Decider interface {
	// DecidePhase1 answers Accept or Pass for the candidate card.
	DecidePhase1(hand shared.Hand, candidate shared.Card, history []Bid) Response
	// DecidePhase2 answers Name with a suit other than forbidden, or Pass.
	DecidePhase2(hand shared.Hand, forbidden shared.Suit, history []Bid) Response
	// DecidePlay returns one card out of legal.
	DecidePlay(hand shared.Hand, trick *shared.Trick, trump shared.Suit, legal shared.Hand) shared.Card
}

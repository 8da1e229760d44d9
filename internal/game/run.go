package game

import (
	"context"
	"fmt"

	"belote-engine/internal/shared"
)

// Run drives e to the end of the match, asking deciders[seat] for every choice.
// observe, when not nil, sees every event Step produces. Run stops between
// decisions once ctx is done; the engine stays usable.
func Run(ctx context.Context, e *Engine, deciders [shared.NumSeats]Decider, observe func(Event)) (MatchResult, error) {
	for {
		if err := ctx.Err(); err != nil {
			return MatchResult{}, err
		}
		ev, err := e.Step()
		if err != nil {
			return MatchResult{}, err
		}
		if observe != nil {
			observe(ev)
		}
		switch ev.Kind {
		case MatchEnded:
			return *ev.Result, nil
		case RoundEnded:
			continue
		}

		resp := ask(e, deciders[ev.Seat], ev)
		if err := e.Submit(ev.Seat, resp); err != nil {
			return MatchResult{}, fmt.Errorf("%s (%s) answered %s: %w", ev.Seat, e.Players[ev.Seat].Name, resp, err)
		}
	}
}

func ask(e *Engine, d Decider, ev Event) Response {
	hand := e.Hand(ev.Seat)
	switch ev.Decision {
	case DecidePhase1:
		candidate, _ := e.Candidate()
		return d.DecidePhase1(hand, candidate, e.Bids())
	case DecidePhase2:
		candidate, _ := e.Candidate()
		return d.DecidePhase2(hand, candidate.Suit, e.Bids())
	}
	trump, _ := e.Trump()
	return PlayCard(d.DecidePlay(hand, e.CurrentTrick(), trump, e.LegalPlays(ev.Seat)))
}

package game_test

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"belote-engine/internal/bot"
	"belote-engine/internal/game"
	"belote-engine/internal/shared"
)

func newEngine(t *testing.T, rules game.Rules, seed uint64) *game.Engine {
	t.Helper()
	e, err := game.NewEngine([4]string{"north", "east", "south", "west"}, rules, shared.NewSeededShuffler(seed), game.WithLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// expectDecision steps once and checks the engine asks seat for kind.
func expectDecision(t *testing.T, e *game.Engine, seat shared.Seat, kind game.DecisionKind) {
	t.Helper()
	ev, err := e.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if ev.Kind != game.NeedDecision || ev.Seat != seat || ev.Decision != kind {
		t.Fatalf("Step = %s seat %d %s, want need_decision seat %d %s", ev.Kind, ev.Seat, ev.Decision, seat, kind)
	}
}

func submit(t *testing.T, e *game.Engine, seat shared.Seat, r game.Response) {
	t.Helper()
	if err := e.Submit(seat, r); err != nil {
		t.Fatalf("Submit(%d, %s): %v", seat, r, err)
	}
}

func checkDealt(t *testing.T, e *game.Engine) {
	t.Helper()
	seen := map[shared.Card]bool{}
	for seat := shared.Seat(0); seat < shared.NumSeats; seat++ {
		h := e.Hand(seat)
		if len(h) != game.HandSize {
			t.Fatalf("%s holds %d cards, want %d", seat, len(h), game.HandSize)
		}
		for _, c := range h {
			if seen[c] {
				t.Fatalf("%s held twice", c)
			}
			seen[c] = true
		}
	}
}

func TestNewEngineValidates(t *testing.T) {
	rules := game.DefaultRules()
	rules.FirstDeal = 6
	if _, err := game.NewEngine([4]string{"a", "b", "c", "d"}, rules, shared.NewSeededShuffler(1)); err == nil {
		t.Fatalf("expected error for an initial deal of 8 cards")
	}
	if _, err := game.NewEngine([4]string{"a", "", "c", "d"}, game.DefaultRules(), shared.NewSeededShuffler(1)); err == nil {
		t.Fatalf("expected error for an unnamed seat")
	}
	if _, err := game.NewEngine([4]string{"a", "b", "c", "d"}, game.DefaultRules(), nil); err == nil {
		t.Fatalf("expected error for a missing shuffler")
	}
}

func TestCleanPickup(t *testing.T) {
	e := newEngine(t, game.DefaultRules(), 1)
	expectDecision(t, e, 1, game.DecidePhase1)
	candidate, ok := e.Candidate()
	if !ok {
		t.Fatalf("no candidate after the deal")
	}
	if _, ok := e.Trump(); ok {
		t.Fatalf("trump set before the auction ended")
	}
	submit(t, e, 1, game.Accept())

	trump, ok := e.Trump()
	taker, tok := e.Taker()
	if !ok || !tok || trump != candidate.Suit || taker != 1 {
		t.Fatalf("trump %s (%t) taker %d (%t), want %s by seat 1", trump, ok, taker, tok, candidate.Suit)
	}
	checkDealt(t, e)
	if !e.Hand(1).Contains(candidate) {
		t.Fatalf("taker does not hold the candidate %s", candidate)
	}
	expectDecision(t, e, 1, game.DecidePlay)
	if e.State() != game.Playing {
		t.Fatalf("state = %s, want Playing", e.State())
	}
}

func TestPhase2Name(t *testing.T) {
	e := newEngine(t, game.DefaultRules(), 2)
	for _, seat := range shared.SeatsFrom(1) {
		expectDecision(t, e, seat, game.DecidePhase1)
		submit(t, e, seat, game.Pass())
	}
	expectDecision(t, e, 1, game.DecidePhase2)
	submit(t, e, 1, game.Pass())
	expectDecision(t, e, 2, game.DecidePhase2)

	candidate, _ := e.Candidate()
	if err := e.Submit(2, game.Name(candidate.Suit)); !errors.Is(err, game.ErrIllegalBid) {
		t.Fatalf("naming the candidate suit: err = %v, want ErrIllegalBid", err)
	}
	if err := e.Submit(2, game.Accept()); !errors.Is(err, game.ErrIllegalBid) {
		t.Fatalf("accepting in phase 2: err = %v, want ErrIllegalBid", err)
	}
	expectDecision(t, e, 2, game.DecidePhase2)

	named := (candidate.Suit + 1) % 4
	submit(t, e, 2, game.Name(named))
	trump, _ := e.Trump()
	taker, _ := e.Taker()
	if trump != named || taker != 2 {
		t.Fatalf("trump %s taker %d, want %s by seat 2", trump, taker, named)
	}
	checkDealt(t, e)
	if !e.Hand(2).Contains(candidate) {
		t.Fatalf("seat 2 does not hold the candidate %s", candidate)
	}
	if bids := e.Bids(); len(bids) != 6 {
		t.Fatalf("%d bids recorded, want 6", len(bids))
	}
}

func TestRedeal(t *testing.T) {
	e := newEngine(t, game.DefaultRules(), 3)
	for i := 0; i < 8; i++ {
		ev, err := e.Step()
		if err != nil || ev.Kind != game.NeedDecision {
			t.Fatalf("step %d: %+v, %v", i, ev, err)
		}
		submit(t, e, ev.Seat, game.Pass())
	}
	ev, err := e.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if ev.Kind != game.RoundEnded || !ev.Round.Redeal || ev.Round.Index != 1 {
		t.Fatalf("event = %+v, want redeal of round 1", ev)
	}
	if e.Dealer() != 1 || e.RoundIndex() != 1 || len(e.Rounds()) != 0 {
		t.Fatalf("dealer %d round %d archived %d", e.Dealer(), e.RoundIndex(), len(e.Rounds()))
	}
	if e.Scores() != [2]int{0, 0} {
		t.Fatalf("redeal scored %v", e.Scores())
	}
	expectDecision(t, e, 2, game.DecidePhase1)
	for seat := shared.Seat(0); seat < shared.NumSeats; seat++ {
		if n := len(e.Hand(seat)); n != 5 {
			t.Fatalf("after redeal %s holds %d cards", seat, n)
		}
	}
}

func TestOutOfTurn(t *testing.T) {
	e := newEngine(t, game.DefaultRules(), 4)
	if err := e.Submit(1, game.Pass()); !errors.Is(err, game.ErrOutOfTurn) {
		t.Fatalf("submit before step: err = %v, want ErrOutOfTurn", err)
	}
	expectDecision(t, e, 1, game.DecidePhase1)
	if err := e.Submit(2, game.Pass()); !errors.Is(err, game.ErrOutOfTurn) {
		t.Fatalf("wrong seat: err = %v, want ErrOutOfTurn", err)
	}
	if err := e.Submit(1, game.Name(shared.Spades)); !errors.Is(err, game.ErrIllegalBid) {
		t.Fatalf("name in phase 1: err = %v, want ErrIllegalBid", err)
	}
	expectDecision(t, e, 1, game.DecidePhase1)
}

func TestIllegalPlayDoesNotAdvance(t *testing.T) {
	for seed := uint64(1); seed < 40; seed++ {
		e := newEngine(t, game.DefaultRules(), seed)
		expectDecision(t, e, 1, game.DecidePhase1)
		submit(t, e, 1, game.Accept())
		for {
			ev, err := e.Step()
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if ev.Kind != game.NeedDecision {
				break
			}
			hand, legal := e.Hand(ev.Seat), e.LegalPlays(ev.Seat)
			illegal := hand.Filter(func(c shared.Card) bool { return !legal.Contains(c) })
			if len(illegal) == 0 {
				submit(t, e, ev.Seat, game.PlayCard(legal[0]))
				continue
			}

			before := e.CurrentTrick().Len()
			err = e.Submit(ev.Seat, game.PlayCard(illegal[0]))
			var ipe *game.IllegalPlayError
			if !errors.As(err, &ipe) {
				t.Fatalf("err = %v, want IllegalPlayError", err)
			}
			if ipe.Card != illegal[0] || !ipe.Legal.Equals(legal) {
				t.Fatalf("error reports %s / %s, want %s / %s", ipe.Card, ipe.Legal, illegal[0], legal)
			}
			if e.CurrentTrick().Len() != before || len(e.Hand(ev.Seat)) != len(hand) {
				t.Fatalf("rejected play changed the trick or hand")
			}
			if seat, kind, ok := e.Pending(); !ok || seat != ev.Seat || kind != game.DecidePlay {
				t.Fatalf("pending decision lost after a rejected play")
			}
			if err := e.Submit(ev.Seat, game.Pass()); !errors.Is(err, game.ErrIllegalPlay) {
				t.Fatalf("pass while playing: err = %v, want ErrIllegalPlay", err)
			}
			return
		}
	}
	t.Fatalf("no seed produced a hand with an illegal card")
}

func TestSameSeedSameDeal(t *testing.T) {
	a, b := newEngine(t, game.DefaultRules(), 99), newEngine(t, game.DefaultRules(), 99)
	expectDecision(t, a, 1, game.DecidePhase1)
	expectDecision(t, b, 1, game.DecidePhase1)
	ca, _ := a.Candidate()
	cb, _ := b.Candidate()
	if ca != cb {
		t.Fatalf("candidates differ: %s vs %s", ca, cb)
	}
	for seat := shared.Seat(0); seat < shared.NumSeats; seat++ {
		if a.Hand(seat).String() != b.Hand(seat).String() {
			t.Fatalf("%s dealt %s vs %s", seat, a.Hand(seat), b.Hand(seat))
		}
	}
}

func TestRunMatch(t *testing.T) {
	rules := game.DefaultRules()
	rules.TargetScore = 400
	for seed := uint64(1); seed <= 5; seed++ {
		e := newEngine(t, rules, seed)
		deciders := [4]game.Decider{bot.NewBasic(), bot.NewRandom(seed), bot.NewBasic(), bot.NewRandom(seed + 100)}

		observe := func(ev game.Event) {
			switch ev.Kind {
			case game.NeedDecision:
				held := 0
				for seat := shared.Seat(0); seat < shared.NumSeats; seat++ {
					held += len(e.Hand(seat))
				}
				if ev.Decision == game.DecidePlay {
					if total := held + 4*len(e.Tricks()) + e.CurrentTrick().Len(); total != shared.DeckSize {
						t.Fatalf("cards in play = %d, want 32", total)
					}
				}
			case game.RoundEnded:
				r := ev.Round
				if r.Redeal {
					if r.Score.Points != [2]int{0, 0} {
						t.Fatalf("redeal scored %v", r.Score.Points)
					}
					return
				}
				if sum := r.Score.Points[0] + r.Score.Points[1]; sum != game.RoundTotal && sum != game.CapotPoints {
					t.Fatalf("round %d points sum to %d", r.Index, sum)
				}
				if len(r.Tricks) != game.TricksPerRound {
					t.Fatalf("round %d archived %d tricks", r.Index, len(r.Tricks))
				}
				if r.Tricks[0].Leader != r.Dealer.Next() {
					t.Fatalf("round %d first leader %d, dealer %d", r.Index, r.Tricks[0].Leader, r.Dealer)
				}
				for i := 1; i < len(r.Tricks); i++ {
					if r.Tricks[i].Leader != r.Tricks[i-1].Winner {
						t.Fatalf("round %d trick %d led by %d, previous won by %d", r.Index, i+1, r.Tricks[i].Leader, r.Tricks[i-1].Winner)
					}
				}
			}
		}

		result, err := game.Run(context.Background(), e, deciders, observe)
		if err != nil {
			t.Fatalf("seed %d: Run: %v", seed, err)
		}
		w := result.Scores[result.Winner]
		l := result.Scores[result.Winner.Opponent()]
		if w < rules.TargetScore || w < l {
			t.Fatalf("seed %d: winner %s with %v", seed, result.Winner, result.Scores)
		}
		if result.Scores != e.Scores() || result.Rounds != len(e.Rounds()) {
			t.Fatalf("result %+v disagrees with engine %v / %d rounds", result, e.Scores(), len(e.Rounds()))
		}
		if ev, err := e.Step(); err != nil || ev.Kind != game.MatchEnded {
			t.Fatalf("Step after the end = %+v, %v", ev, err)
		}
		if e.State() != game.GameOver {
			t.Fatalf("state = %s, want GameOver", e.State())
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	e := newEngine(t, game.DefaultRules(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := bot.NewBasic()
	if _, err := game.Run(ctx, e, [4]game.Decider{d, d, d, d}, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRunReportsBadDecider(t *testing.T) {
	e := newEngine(t, game.DefaultRules(), 1)
	cheat := &bot.Funcs{
		Phase2: func(_ shared.Hand, forbidden shared.Suit, _ []game.Bid) game.Response {
			return game.Name(forbidden)
		},
	}
	_, err := game.Run(context.Background(), e, [4]game.Decider{cheat, cheat, cheat, cheat}, nil)
	if !errors.Is(err, game.ErrIllegalBid) {
		t.Fatalf("err = %v, want ErrIllegalBid", err)
	}
	if _, kind, ok := e.Pending(); !ok || kind != game.DecidePhase2 {
		t.Fatalf("engine should still wait for the phase 2 answer")
	}
}

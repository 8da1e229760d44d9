package bot

import (
	"testing"

	"belote-engine/internal/game"
	"belote-engine/internal/shared"
)

func hand(s string) shared.Hand {
	return shared.Hand(shared.MustParseCards(s))
}

func TestBasicPhase1(t *testing.T) {
	tests := []struct {
		name      string
		hand      string
		candidate string
		want      game.Action
	}{
		{name: "jack and nine", hand: "Jh 9h 7s 8d Kc", candidate: "7h", want: game.ActionAccept},
		{name: "candidate is the jack", hand: "9h Ah 7s 8d Kc", candidate: "Jh", want: game.ActionAccept},
		{name: "weak", hand: "7h 8s 9s Qd Kc", candidate: "Th", want: game.ActionPass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := shared.ParseCard(tt.candidate)
			got := NewBasic().DecidePhase1(hand(tt.hand), c, nil)
			if got.Action != tt.want {
				t.Fatalf("DecidePhase1 = %s, want action %d", got, tt.want)
			}
		})
	}
}

func TestBasicPhase2NeverNamesForbidden(t *testing.T) {
	b := NewBasic()
	got := b.DecidePhase2(hand("Js 9s As Ts 7d"), shared.Spades, nil)
	if got.Action == game.ActionName && got.Suit == shared.Spades {
		t.Fatalf("named the forbidden suit")
	}
	got = b.DecidePhase2(hand("Jd 9d Ad 7s 8s"), shared.Spades, nil)
	if got.Action != game.ActionName || got.Suit != shared.Diamonds {
		t.Fatalf("DecidePhase2 = %s, want name ♦", got)
	}
}

func TestBasicPlayIsLegal(t *testing.T) {
	tests := []struct {
		name  string
		hand  string
		plays string
		want  string
	}{
		{name: "win cheaply", hand: "7s As Ks", plays: "Qs", want: "Ks"},
		{name: "cannot win: discard cheapest", hand: "7s Ks", plays: "As", want: "7s"},
		{name: "feed a winning partner", hand: "7s Ts", plays: "As 8s", want: "Ts"},
		{name: "lead the trump jack", hand: "Jh As 7d", plays: "", want: "Jh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trick := shared.NewTrick(0)
			for _, c := range shared.MustParseCards(tt.plays) {
				trick.AddCard(c, trick.NextSeat())
			}
			h := hand(tt.hand)
			legal := h.Legal(trick, shared.Hearts)
			got := NewBasic().DecidePlay(h, trick, shared.Hearts, legal)
			if !legal.Contains(got) {
				t.Fatalf("played %s outside legal set %s", got, legal)
			}
			want, _ := shared.ParseCard(tt.want)
			if got != want {
				t.Fatalf("DecidePlay = %s, want %s", got, want)
			}
		})
	}
}

func TestRandomStaysLegal(t *testing.T) {
	r := NewRandom(7)
	legal := hand("7s 8s 9s")
	for i := 0; i < 50; i++ {
		if c := r.DecidePlay(nil, shared.NewTrick(0), shared.Hearts, legal); !legal.Contains(c) {
			t.Fatalf("random played %s outside %s", c, legal)
		}
		if resp := r.DecidePhase2(nil, shared.Clubs, nil); resp.Action == game.ActionName && resp.Suit == shared.Clubs {
			t.Fatalf("random named the forbidden suit")
		}
	}
}

func TestScriptedQueues(t *testing.T) {
	s := &Scripted{
		Bids:  []game.Response{game.Pass(), game.Name(shared.Clubs)},
		Plays: shared.MustParseCards("As"),
	}
	if got := s.DecidePhase1(nil, shared.Card{}, nil); got.Action != game.ActionPass {
		t.Fatalf("first bid = %s", got)
	}
	if got := s.DecidePhase2(nil, shared.Hearts, nil); got.Action != game.ActionName || got.Suit != shared.Clubs {
		t.Fatalf("second bid = %s", got)
	}
	if got := s.DecidePhase1(nil, shared.Card{}, nil); got.Action != game.ActionPass {
		t.Fatalf("exhausted queue should pass, got %s", got)
	}
	legal := hand("7d 8d")
	if got := s.DecidePlay(nil, nil, shared.Hearts, legal); got != shared.NewCard(shared.Spades, shared.Ace) {
		t.Fatalf("scripted play = %s", got)
	}
	if got := s.DecidePlay(nil, nil, shared.Hearts, legal); got != legal[0] {
		t.Fatalf("fallback play = %s, want %s", got, legal[0])
	}
}

func TestNewFromName(t *testing.T) {
	for _, name := range []string{"", "basic", "random", "pass"} {
		if _, err := NewFromName(name, 1); err != nil {
			t.Fatalf("NewFromName(%q): %v", name, err)
		}
	}
	if _, err := NewFromName("genius", 1); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

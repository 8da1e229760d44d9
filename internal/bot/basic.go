package bot

import (
	"belote-engine/internal/game"
	"belote-engine/internal/shared"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Basic implements a simple counting strategy: bid on strong trump holdings,
// win tricks as cheaply as possible and feed points to a winning partner.
type Basic struct {
	// TakeThreshold is the trump strength needed to take.
	TakeThreshold int
}

func NewBasic() *Basic {
	return &Basic{TakeThreshold: 9}
}

// trumpStrength scores a holding as if suit were trump.
func trumpStrength(hand shared.Hand, suit shared.Suit) int {
	strength := 0
	for _, c := range hand {
		switch {
		case c.Suit != suit:
			if c.Rank == shared.Ace {
				strength++
			}
		case c.Rank == shared.Jack:
			strength += 5
		case c.Rank == shared.Nine:
			strength += 4
		case c.Rank == shared.Ace || c.Rank == shared.Ten:
			strength += 2
		default:
			strength++
		}
	}
	return strength
}

func (b *Basic) DecidePhase1(hand shared.Hand, candidate shared.Card, _ []game.Bid) game.Response {
	with := append(hand.Copy(), candidate)
	if trumpStrength(with, candidate.Suit) >= b.TakeThreshold {
		return game.Accept()
	}
	return game.Pass()
}

func (b *Basic) DecidePhase2(hand shared.Hand, forbidden shared.Suit, _ []game.Bid) game.Response {
	bySuit := make(map[shared.Suit]int)
	for _, s := range shared.Suits {
		if s != forbidden {
			bySuit[s] = trumpStrength(hand, s)
		}
	}
	suits := maps.Keys(bySuit)
	slices.Sort(suits)
	best := suits[0]
	for _, s := range suits {
		if bySuit[s] > bySuit[best] {
			best = s
		}
	}
	if bySuit[best] >= b.TakeThreshold {
		return game.Name(best)
	}
	return game.Pass()
}

func (b *Basic) DecidePlay(hand shared.Hand, trick *shared.Trick, trump shared.Suit, legal shared.Hand) shared.Card {
	if len(legal) == 1 {
		return legal[0]
	}
	if trick.Len() == 0 {
		return chooseLead(legal, trump)
	}
	me := trick.NextSeat()
	leading, _ := trick.Leading(trump)
	if leading.Seat == me.Partner() {
		return highestValue(legal.Filter(func(c shared.Card) bool { return c.Suit != trump }), legal, trump)
	}
	winners := legal.Filter(func(c shared.Card) bool { return wouldWin(trick, c, me, trump) })
	if len(winners) > 0 {
		return cheapest(winners, trump)
	}
	return cheapest(legal, trump)
}

// chooseLead leads the trump jack or a side ace, otherwise the cheapest card.
func chooseLead(legal shared.Hand, trump shared.Suit) shared.Card {
	if j := shared.NewCard(trump, shared.Jack); legal.Contains(j) {
		return j
	}
	aces := legal.Filter(func(c shared.Card) bool { return c.Rank == shared.Ace && c.Suit != trump })
	if len(aces) > 0 {
		return aces[0]
	}
	return cheapest(legal, trump)
}

func wouldWin(trick *shared.Trick, c shared.Card, me shared.Seat, trump shared.Suit) bool {
	t := trick.Copy()
	t.AddCard(c, me)
	best, err := t.Leading(trump)
	return err == nil && best.Seat == me
}

// cheapest returns the lowest-valued card, breaking ties on strength.
func cheapest(cards shared.Hand, trump shared.Suit) shared.Card {
	return slices.MinFunc(cards, func(a, b shared.Card) int {
		if d := a.Value(trump) - b.Value(trump); d != 0 {
			return d
		}
		return a.Order(trump) - b.Order(trump)
	})
}

// highestValue picks the richest card of preferred, or of fallback when preferred is empty.
func highestValue(preferred, fallback shared.Hand, trump shared.Suit) shared.Card {
	cards := preferred
	if len(cards) == 0 {
		cards = fallback
	}
	return slices.MaxFunc(cards, func(a, b shared.Card) int {
		return a.Value(trump) - b.Value(trump)
	})
}

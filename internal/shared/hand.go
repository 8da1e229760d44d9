package shared

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Hand is the set of cards a seat holds. Cards are unique within a round.
type Hand []Card

// Add inserts a card into the hand.
func (h *Hand) Add(c Card) {
	*h = append(*h, c)
}

// Remove deletes the card from the hand, reporting whether it was present.
func (h *Hand) Remove(c Card) bool {
	i := slices.Index(*h, c)
	if i < 0 {
		return false
	}
	*h = slices.Delete(*h, i, i+1)
	return true
}

// Contains reports whether the hand holds the card.
func (h Hand) Contains(c Card) bool {
	return slices.Contains(h, c)
}

// HasSuit reports whether the hand holds at least one card of the suit.
func (h Hand) HasSuit(s Suit) bool {
	return slices.ContainsFunc(h, func(c Card) bool { return c.Suit == s })
}

// Filter returns the cards that match.
func (h Hand) Filter(match func(Card) bool) Hand {
	var filtered Hand
	for _, c := range h {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// OfSuit returns the cards of the given suit.
func (h Hand) OfSuit(s Suit) Hand {
	return h.Filter(func(c Card) bool { return c.Suit == s })
}

// Copy returns an independent copy of the hand.
func (h Hand) Copy() Hand {
	return slices.Clone(h)
}

// Sorted returns a copy ordered by suit, then by strength under trump.
func (h Hand) Sorted(trump Suit) Hand {
	out := h.Copy()
	slices.SortFunc(out, func(a, b Card) int {
		if a.Suit != b.Suit {
			return int(a.Suit) - int(b.Suit)
		}
		return a.Order(trump) - b.Order(trump)
	})
	return out
}

// Equals reports whether both hands hold the same cards in any order.
func (h Hand) Equals(other Hand) bool {
	if len(h) != len(other) {
		return false
	}
	for _, c := range h {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Legal returns the cards the seat next to play on t may legally play.
//
// A follower must follow the led suit; on a trump lead they must beat the
// highest trump when they can. Without the led suit they must trump, and must
// over-trump an opponent's trump when able. When the partner holds the
// highest trump any card may be played.
func (h Hand) Legal(t *Trick, trump Suit) Hand {
	if t == nil || t.Len() == 0 {
		return h.Copy()
	}
	lead := t.LeadSuit()
	trumps := h.OfSuit(trump)

	if h.HasSuit(lead) {
		if lead != trump {
			return h.OfSuit(lead)
		}
		return overTrumps(trumps, t, trump)
	}

	best, trumped := t.HighestTrump(trump)
	if !trumped {
		if len(trumps) > 0 {
			return trumps
		}
		return h.Copy()
	}
	if best.Seat == t.NextSeat().Partner() {
		return h.Copy()
	}
	if len(trumps) > 0 {
		return overTrumps(trumps, t, trump)
	}
	return h.Copy()
}

// overTrumps narrows trumps to those beating the trick's highest trump,
// falling back to all trumps when none is high enough.
func overTrumps(trumps Hand, t *Trick, trump Suit) Hand {
	best, ok := t.HighestTrump(trump)
	if !ok {
		return trumps
	}
	higher := trumps.Filter(func(c Card) bool { return c.Order(trump) > best.Card.Order(trump) })
	if len(higher) > 0 {
		return higher
	}
	return trumps
}

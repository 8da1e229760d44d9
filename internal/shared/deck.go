package shared

import (
	"errors"
	"math/rand/v2"
)

// DeckSize is the number of cards in a Belote deck.
const DeckSize = 32

// ErrDeckEmpty is returned when drawing from an exhausted deck.
var ErrDeckEmpty = errors.New("deck is empty")

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewSeededShuffler returns a deterministic shuffler for the given seed.
func NewSeededShuffler(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Deck is an ordered pile of cards. The top is the end of Cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates the ordered 32-card deck.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck using s.
func (d *Deck) Shuffle(s Shuffler) {
	s.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrDeckEmpty
	}
	top := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return top, nil
}

// DrawN removes n cards from the top. On underflow nothing is drawn.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n > len(d.Cards) {
		return nil, ErrDeckEmpty
	}
	drawn := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.Draw()
		if err != nil {
			return nil, err
		}
		drawn = append(drawn, c)
	}
	return drawn, nil
}

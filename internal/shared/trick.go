package shared

import "errors"

// ErrEmptyTrick is returned when resolving a trick nobody has played to.
var ErrEmptyTrick = errors.New("trick is empty")

// PlayedCard stores a card along with the seat that played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat Seat `json:"seat"`
}

// Trick represents a single trick: up to four plays in clockwise order.
type Trick struct {
	Leader Seat         `json:"leader"`
	Cards  []PlayedCard `json:"cards"`
	Winner Seat         `json:"winner"` // -1 until determined
}

// NewTrick creates an empty trick led by leader.
func NewTrick(leader Seat) *Trick {
	return &Trick{
		Leader: leader,
		Cards:  make([]PlayedCard, 0, NumSeats),
		Winner: -1,
	}
}

// AddCard appends the play of the seat whose turn it is.
func (t *Trick) AddCard(card Card, seat Seat) {
	t.Cards = append(t.Cards, PlayedCard{Card: card, Seat: seat})
}

// Len returns the number of cards played so far.
func (t *Trick) Len() int {
	return len(t.Cards)
}

// Complete reports whether all four seats have played.
func (t *Trick) Complete() bool {
	return len(t.Cards) == NumSeats
}

// LeadSuit is the suit of the first card played. Only meaningful when Len > 0.
func (t *Trick) LeadSuit() Suit {
	return t.Cards[0].Card.Suit
}

// NextSeat returns the seat expected to play next.
func (t *Trick) NextSeat() Seat {
	return (t.Leader + Seat(len(t.Cards))) % NumSeats
}

// HighestTrump returns the strongest trump played so far, if any.
func (t *Trick) HighestTrump(trump Suit) (PlayedCard, bool) {
	var best PlayedCard
	found := false
	for _, pc := range t.Cards {
		if pc.Card.Suit != trump {
			continue
		}
		if !found || pc.Card.Order(trump) > best.Card.Order(trump) {
			best = pc
			found = true
		}
	}
	return best, found
}

// Leading returns the play currently winning the trick.
func (t *Trick) Leading(trump Suit) (PlayedCard, error) {
	if len(t.Cards) == 0 {
		return PlayedCard{}, ErrEmptyTrick
	}
	if best, ok := t.HighestTrump(trump); ok {
		return best, nil
	}
	lead := t.LeadSuit()
	best := t.Cards[0]
	for _, pc := range t.Cards[1:] {
		if pc.Card.Suit == lead && pc.Card.Order(trump) > best.Card.Order(trump) {
			best = pc
		}
	}
	return best, nil
}

// DetermineWinner resolves the trick and records the winning seat.
func (t *Trick) DetermineWinner(trump Suit) (Seat, error) {
	best, err := t.Leading(trump)
	if err != nil {
		return -1, err
	}
	t.Winner = best.Seat
	return best.Seat, nil
}

// Points sums the card values of the trick under trump.
func (t *Trick) Points(trump Suit) int {
	points := 0
	for _, pc := range t.Cards {
		points += pc.Card.Value(trump)
	}
	return points
}

// Copy returns a snapshot that shares no memory with t.
func (t *Trick) Copy() *Trick {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Cards = append(make([]PlayedCard, 0, NumSeats), t.Cards...)
	return &cp
}

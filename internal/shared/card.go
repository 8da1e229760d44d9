package shared

import (
	"fmt"
	"strings"
)

// Suit represents the suit of a card.
type Suit int8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck construction order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return fmt.Sprintf("Suit(%d)", int8(s))
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// ParseSuit accepts a suit letter (s, h, d, c) or its symbol.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "s", "♠":
		return Spades, nil
	case "h", "♥":
		return Hearts, nil
	case "d", "♦":
		return Diamonds, nil
	case "c", "♣":
		return Clubs, nil
	}
	return Spades, fmt.Errorf("no such suit '%s'", s)
}

// Rank is the face of a card, Seven through Ace.
type Rank int8

const (
	Seven Rank = iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Seven to Ace.
var Ranks = []Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankLetters = map[Rank]string{
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "T",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) String() string {
	if l, ok := rankLetters[r]; ok {
		return l
	}
	return fmt.Sprintf("Rank(%d)", int8(r))
}

func parseRank(s string) (Rank, error) {
	for r, l := range rankLetters {
		if strings.EqualFold(l, s) {
			return r, nil
		}
	}
	if s == "10" {
		return Ten, nil
	}
	return Seven, fmt.Errorf("no such rank '%s'", s)
}

// Card is a single card of the 32-card deck.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// NewCard builds a card from its suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Plain (non-trump) scoring values.
var plainValues = map[Rank]int{
	Seven: 0,
	Eight: 0,
	Nine:  0,
	Ten:   10,
	Jack:  2,
	Queen: 3,
	King:  4,
	Ace:   11,
}

// Plain strength within a suit (higher wins).
var plainOrder = map[Rank]int{
	Seven: 0,
	Eight: 1,
	Nine:  2,
	Jack:  3,
	Queen: 4,
	King:  5,
	Ten:   6,
	Ace:   7,
}

// Trump suit values: the nine and jack are promoted.
var trumpValues = map[Rank]int{
	Seven: 0,
	Eight: 0,
	Nine:  14,
	Ten:   10,
	Jack:  20,
	Queen: 3,
	King:  4,
	Ace:   11,
}

var trumpOrder = map[Rank]int{
	Seven: 0,
	Eight: 1,
	Queen: 2,
	King:  3,
	Ten:   4,
	Ace:   5,
	Nine:  6,
	Jack:  7,
}

// IsTrump reports whether the card belongs to the trump suit.
func (c Card) IsTrump(trump Suit) bool {
	return c.Suit == trump
}

// Value returns the scoring value of the card under the given trump.
func (c Card) Value(trump Suit) int {
	if c.IsTrump(trump) {
		return trumpValues[c.Rank]
	}
	return plainValues[c.Rank]
}

// Order returns the strength of the card among cards of its own suit.
func (c Card) Order(trump Suit) int {
	if c.IsTrump(trump) {
		return trumpOrder[c.Rank]
	}
	return plainOrder[c.Rank]
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard reads the text form produced by String, e.g. "J♥" or "jh".
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("can't parse card '%s'", s)
	}
	rank, rerr := parseRank(string(runes[:len(runes)-1]))
	suit, serr := ParseSuit(string(runes[len(runes)-1:]))
	if rerr != nil || serr != nil {
		return Card{}, fmt.Errorf("can't parse card '%s'", s)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// MustParseCards parses a space separated card list and panics on bad input.
// Intended for fixtures.
func MustParseCards(s string) []Card {
	var cards []Card
	for _, f := range strings.Fields(s) {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

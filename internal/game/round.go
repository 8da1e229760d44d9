package game

import (
	"fmt"

	"belote-engine/internal/shared"
)

// RoundPhase is the lifecycle stage of a round.
type RoundPhase string

const (
	RoundBidding RoundPhase = "Bidding"
	RoundPlaying RoundPhase = "Playing"
	RoundScored  RoundPhase = "Scored"
	RoundRedeal  RoundPhase = "Redeal"
)

// Round is one deal: auction, eight tricks and scoring. Seats are plain indices.
type Round struct {
	Index     int
	Dealer    shared.Seat
	Phase     RoundPhase
	Candidate shared.Card
	Auction   *Auction
	Hands     [shared.NumSeats]shared.Hand
	Tricks    []*shared.Trick
	Current   *shared.Trick
	Score     RoundScore

	contract        *Contract
	lastTrickWinner shared.Seat
	rules           Rules
	deck            *shared.Deck
}

// newRound shuffles a fresh deck, deals the initial hands and turns the candidate.
func newRound(index int, dealer shared.Seat, rules Rules, shuffler shared.Shuffler) (*Round, error) {
	r := &Round{
		Index:           index,
		Dealer:          dealer,
		Phase:           RoundBidding,
		lastTrickWinner: -1,
		rules:           rules,
		deck:            shared.NewDeck(),
	}
	r.deck.Shuffle(shuffler)
	for _, n := range []int{rules.FirstDeal, rules.SecondDeal} {
		for _, seat := range shared.SeatsFrom(dealer.Next()) {
			if err := r.drawTo(seat, n); err != nil {
				return nil, err
			}
		}
	}
	candidate, err := r.deck.Draw()
	if err != nil {
		return nil, fault("turning the candidate: %w", err)
	}
	r.Candidate = candidate
	r.Auction = NewAuction(dealer, candidate)
	return r, nil
}

func (r *Round) drawTo(seat shared.Seat, n int) error {
	cards, err := r.deck.DrawN(n)
	if err != nil {
		return fault("dealing %d cards to %s: %w", n, seat, err)
	}
	for _, c := range cards {
		r.Hands[seat].Add(c)
	}
	return nil
}

// Contract returns the taker and trump once the auction concluded.
func (r *Round) Contract() (Contract, bool) {
	if r.contract == nil {
		return Contract{}, false
	}
	return *r.contract, true
}

// LastTrickWinner returns the seat that took the most recent trick, or -1.
func (r *Round) LastTrickWinner() shared.Seat {
	return r.lastTrickWinner
}

// Bid applies an auction answer from seat.
func (r *Round) Bid(seat shared.Seat, resp Response) error {
	if r.Phase != RoundBidding {
		return fmt.Errorf("%w: round is %s", ErrOutOfTurn, r.Phase)
	}
	var err error
	switch resp.Action {
	case ActionPass:
		err = r.Auction.Pass(seat)
	case ActionAccept:
		err = r.Auction.Accept(seat)
	case ActionName:
		err = r.Auction.Name(seat, resp.Suit)
	default:
		err = fmt.Errorf("%w: %s is not an auction answer", ErrIllegalBid, resp)
	}
	if err != nil {
		return err
	}
	switch r.Auction.State {
	case Concluded:
		return r.completeDeal()
	case Redeal:
		r.Phase = RoundRedeal
	}
	return nil
}

// completeDeal hands the candidate to the taker and fills every hand to eight.
func (r *Round) completeDeal() error {
	c, _ := r.Auction.Contract()
	r.contract = &c
	r.Hands[c.Taker].Add(r.Candidate)
	for _, seat := range shared.SeatsFrom(r.Dealer.Next()) {
		if err := r.drawTo(seat, HandSize-len(r.Hands[seat])); err != nil {
			return err
		}
	}
	for seat, h := range r.Hands {
		if len(h) != HandSize {
			return fault("%s holds %d cards after the deal", shared.Seat(seat), len(h))
		}
	}
	if r.deck.Len() != 0 {
		return fault("%d cards left in the deck after the deal", r.deck.Len())
	}
	r.Phase = RoundPlaying
	r.Current = shared.NewTrick(r.Dealer.Next())
	return nil
}

// Legal returns the cards seat may play now. It is empty when it is not seat's turn.
func (r *Round) Legal(seat shared.Seat) shared.Hand {
	if r.Phase != RoundPlaying || r.Current.NextSeat() != seat {
		return nil
	}
	return r.Hands[seat].Legal(r.Current, r.contract.Trump)
}

// Play puts card from seat's hand on the current trick.
func (r *Round) Play(seat shared.Seat, card shared.Card) error {
	if r.Phase != RoundPlaying {
		return fmt.Errorf("%w: round is %s", ErrOutOfTurn, r.Phase)
	}
	if next := r.Current.NextSeat(); seat != next {
		return fmt.Errorf("%w: %s played, %s is to play", ErrOutOfTurn, seat, next)
	}
	legal := r.Legal(seat)
	if !legal.Contains(card) {
		return &IllegalPlayError{Seat: seat, Card: card, Legal: legal}
	}
	if !r.Hands[seat].Remove(card) {
		return fault("%s lost %s between legality check and play", seat, card)
	}
	r.Current.AddCard(card, seat)
	if !r.Current.Complete() {
		return nil
	}

	trump := r.contract.Trump
	winner, err := r.Current.DetermineWinner(trump)
	if err != nil {
		return fault("resolving trick %d: %w", len(r.Tricks)+1, err)
	}
	r.Tricks = append(r.Tricks, r.Current)
	r.lastTrickWinner = winner
	if err := r.checkCardCount(); err != nil {
		return err
	}
	if len(r.Tricks) < TricksPerRound {
		r.Current = shared.NewTrick(winner)
		return nil
	}
	r.Current = nil
	score, err := ScoreRound(r.Tricks, *r.contract)
	if err != nil {
		return fault("scoring round %d: %w", r.Index, err)
	}
	r.Score = score
	r.Phase = RoundScored
	return nil
}

// checkCardCount verifies hands plus archived tricks account for the whole deck.
func (r *Round) checkCardCount() error {
	held := 0
	for _, h := range r.Hands {
		held += len(h)
	}
	if total := held + shared.NumSeats*len(r.Tricks); total != shared.DeckSize {
		return fault("%d cards in hands and %d tricks account for %d cards", held, len(r.Tricks), total)
	}
	return nil
}

// Summary archives the round for the match history.
func (r *Round) Summary() RoundSummary {
	s := RoundSummary{
		Index:     r.Index,
		Dealer:    r.Dealer,
		Candidate: r.Candidate,
		Redeal:    r.Phase == RoundRedeal,
		Bids:      append([]Bid(nil), r.Auction.History...),
		Score:     r.Score,
	}
	if r.contract != nil {
		c := *r.contract
		s.Contract = &c
	}
	for _, t := range r.Tricks {
		s.Tricks = append(s.Tricks, t.Copy())
	}
	return s
}

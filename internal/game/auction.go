package game

import (
	"fmt"

	"belote-engine/internal/shared"
)

// AuctionState is the stage of the trump selection.
type AuctionState int

const (
	AwaitingPhase1 AuctionState = iota // seats may take the candidate's suit
	AwaitingPhase2                     // seats may name another suit
	Concluded                          // a taker and trump are fixed
	Redeal                             // everybody passed twice
)

func (s AuctionState) String() string {
	switch s {
	case AwaitingPhase1:
		return "AwaitingPhase1"
	case AwaitingPhase2:
		return "AwaitingPhase2"
	case Concluded:
		return "Concluded"
	case Redeal:
		return "Redeal"
	}
	return fmt.Sprintf("AuctionState(%d)", int(s))
}

// BidAction is what a seat answered during the auction.
type BidAction int

const (
	BidPass BidAction = iota
	BidAccept
	BidName
)

func (a BidAction) String() string {
	switch a {
	case BidAccept:
		return "accept"
	case BidName:
		return "name"
	}
	return "pass"
}

// Bid is one entry of the auction history.
type Bid struct {
	Seat   shared.Seat  `json:"seat"`
	Phase  int          `json:"phase"`
	Action BidAction    `json:"action"`
	Suit   *shared.Suit `json:"suit,omitempty"`
}

// Contract binds the taker to the trump suit. It exists only once the auction concluded.
type Contract struct {
	Taker shared.Seat `json:"taker"`
	Trump shared.Suit `json:"trump"`
}

// Auction is the two-phase trump selection state machine.
type Auction struct {
	State     AuctionState
	Dealer    shared.Seat
	Next      shared.Seat
	Candidate shared.Card
	History   []Bid

	contract *Contract
	passes   int // passes in the current phase
}

// NewAuction starts Phase 1 with the seat left of the dealer.
func NewAuction(dealer shared.Seat, candidate shared.Card) *Auction {
	return &Auction{
		State:     AwaitingPhase1,
		Dealer:    dealer,
		Next:      dealer.Next(),
		Candidate: candidate,
	}
}

// Contract returns the taker and trump once the auction concluded.
func (a *Auction) Contract() (Contract, bool) {
	if a.contract == nil {
		return Contract{}, false
	}
	return *a.contract, true
}

func (a *Auction) phase() int {
	if a.State == AwaitingPhase2 {
		return 2
	}
	return 1
}

func (a *Auction) checkTurn(seat shared.Seat) error {
	if a.State != AwaitingPhase1 && a.State != AwaitingPhase2 {
		return fmt.Errorf("%w: auction is %s", ErrOutOfTurn, a.State)
	}
	if seat != a.Next {
		return fmt.Errorf("%w: %s answered, %s is bidding", ErrOutOfTurn, seat, a.Next)
	}
	return nil
}

// Pass declines in the current phase.
func (a *Auction) Pass(seat shared.Seat) error {
	if err := a.checkTurn(seat); err != nil {
		return err
	}
	a.History = append(a.History, Bid{Seat: seat, Phase: a.phase(), Action: BidPass})
	a.passes++
	a.Next = seat.Next()
	if a.passes < shared.NumSeats {
		return nil
	}
	a.passes = 0
	a.Next = a.Dealer.Next()
	if a.State == AwaitingPhase1 {
		a.State = AwaitingPhase2
	} else {
		a.State = Redeal
	}
	return nil
}

// Accept takes the candidate's suit as trump. Only valid in Phase 1.
func (a *Auction) Accept(seat shared.Seat) error {
	if err := a.checkTurn(seat); err != nil {
		return err
	}
	if a.State != AwaitingPhase1 {
		return fmt.Errorf("%w: the candidate can only be accepted in phase 1", ErrIllegalBid)
	}
	a.History = append(a.History, Bid{Seat: seat, Phase: 1, Action: BidAccept})
	a.conclude(seat, a.Candidate.Suit)
	return nil
}

// Name picks a trump suit other than the candidate's. Only valid in Phase 2.
func (a *Auction) Name(seat shared.Seat, suit shared.Suit) error {
	if err := a.checkTurn(seat); err != nil {
		return err
	}
	if a.State != AwaitingPhase2 {
		return fmt.Errorf("%w: a suit can only be named in phase 2", ErrIllegalBid)
	}
	if !suit.Valid() {
		return fmt.Errorf("%w: %d is not a suit", ErrIllegalBid, suit)
	}
	if suit == a.Candidate.Suit {
		return fmt.Errorf("%w: %s is the candidate's suit", ErrIllegalBid, suit)
	}
	a.History = append(a.History, Bid{Seat: seat, Phase: 2, Action: BidName, Suit: &suit})
	a.conclude(seat, suit)
	return nil
}

func (a *Auction) conclude(taker shared.Seat, trump shared.Suit) {
	a.contract = &Contract{Taker: taker, Trump: trump}
	a.State = Concluded
}

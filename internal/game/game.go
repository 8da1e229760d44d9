package game

import (
	"errors"
	"fmt"
	"log"

	"belote-engine/internal/shared"

	"github.com/google/uuid"
)

// EngineState is the coarse lifecycle stage of a match.
type EngineState string

const (
	Dealing  EngineState = "Dealing"  // next Step deals a new round
	Bidding  EngineState = "Bidding"  // auction in progress
	Playing  EngineState = "Playing"  // tricks in progress
	GameOver EngineState = "GameOver" // target score reached
	Faulted  EngineState = "Faulted"  // an invariant broke, nothing more is accepted
)

type pendingDecision struct {
	seat shared.Seat
	kind DecisionKind
}

// Engine is the authoritative match state machine. It is not safe for
// concurrent use; the host drives it with Step and Submit.
type Engine struct {
	ID      string
	Players [shared.NumSeats]*shared.Player
	Teams   [2]*shared.Team

	rules      Rules
	shuffler   shared.Shuffler
	logger     *log.Logger
	dealer     shared.Seat
	roundIndex int
	round      *Round
	rounds     []RoundSummary
	pending    *pendingDecision
	result     *MatchResult
	fault      *FaultError
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sends engine logs to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine seats four players and prepares the first deal.
func NewEngine(names [shared.NumSeats]string, rules Rules, shuffler shared.Shuffler, opts ...Option) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if shuffler == nil {
		return nil, errors.New("a shuffler is required")
	}
	e := &Engine{
		ID:         uuid.NewString(),
		Teams:      [2]*shared.Team{shared.NewTeam(shared.TeamA), shared.NewTeam(shared.TeamB)},
		rules:      rules,
		shuffler:   shuffler,
		logger:     log.Default(),
		dealer:     rules.FirstDealer,
		roundIndex: 1,
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("seat %d has no name", i)
		}
		e.Players[i] = shared.NewPlayer(name, shared.Seat(i))
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Step advances the match until a seat must decide, a round ends or the match ends.
// Calling it again without submitting repeats the pending NeedDecision.
func (e *Engine) Step() (Event, error) {
	if e.fault != nil {
		return Event{}, e.fault
	}
	if e.result != nil {
		return Event{Kind: MatchEnded, Result: e.result}, nil
	}
	if e.pending != nil {
		return e.needDecision(), nil
	}
	if e.round == nil {
		if err := e.startRound(); err != nil {
			return Event{}, e.latch(err)
		}
	}

	r := e.round
	switch r.Phase {
	case RoundBidding:
		kind := DecidePhase1
		if r.Auction.State == AwaitingPhase2 {
			kind = DecidePhase2
		}
		e.pending = &pendingDecision{seat: r.Auction.Next, kind: kind}
		return e.needDecision(), nil
	case RoundPlaying:
		e.pending = &pendingDecision{seat: r.Current.NextSeat(), kind: DecidePlay}
		return e.needDecision(), nil
	case RoundRedeal:
		return e.finishRedeal(), nil
	case RoundScored:
		return e.finishRound(), nil
	}
	return Event{}, e.latch(fault("round %d in unknown phase %q", r.Index, r.Phase))
}

// Submit answers the pending decision. Rejected answers leave the state untouched.
func (e *Engine) Submit(seat shared.Seat, resp Response) error {
	if e.fault != nil {
		return e.fault
	}
	if e.pending == nil {
		return fmt.Errorf("%w: no decision is pending", ErrOutOfTurn)
	}
	if seat != e.pending.seat {
		return fmt.Errorf("%w: %s answered, waiting on %s", ErrOutOfTurn, seat, e.pending.seat)
	}

	var err error
	switch e.pending.kind {
	case DecidePhase1:
		if resp.Action != ActionAccept && resp.Action != ActionPass {
			return fmt.Errorf("%w: phase 1 takes accept or pass, got %s", ErrIllegalBid, resp)
		}
		err = e.round.Bid(seat, resp)
	case DecidePhase2:
		if resp.Action != ActionName && resp.Action != ActionPass {
			return fmt.Errorf("%w: phase 2 takes name or pass, got %s", ErrIllegalBid, resp)
		}
		err = e.round.Bid(seat, resp)
	case DecidePlay:
		if resp.Action != ActionPlay {
			return &IllegalPlayError{Seat: seat, Card: resp.Card, Legal: e.round.Legal(seat)}
		}
		err = e.round.Play(seat, resp.Card)
	}
	if err != nil {
		if errors.Is(err, ErrEngineFault) {
			return e.latch(err)
		}
		return err
	}
	e.pending = nil
	e.logResponse(seat, resp)
	return nil
}

func (e *Engine) needDecision() Event {
	return Event{Kind: NeedDecision, Seat: e.pending.seat, Decision: e.pending.kind}
}

func (e *Engine) latch(err error) error {
	var fe *FaultError
	if !errors.As(err, &fe) {
		fe = &FaultError{Cause: err}
	}
	e.fault = fe
	e.pending = nil
	e.logger.Printf("Match %s: faulted: %v", e.ID, fe.Cause)
	return fe
}

func (e *Engine) startRound() error {
	r, err := newRound(e.roundIndex, e.dealer, e.rules, e.shuffler)
	if err != nil {
		return err
	}
	e.round = r
	e.logger.Printf("Match %s: round %d dealt by %s (%s), candidate %s", e.ID, r.Index, e.dealer, e.Players[e.dealer].Name, r.Candidate)
	return nil
}

func (e *Engine) logResponse(seat shared.Seat, resp Response) {
	r := e.round
	switch {
	case resp.Action == ActionAccept || resp.Action == ActionName:
		c, _ := r.Contract()
		e.logger.Printf("Match %s: %s (%s) takes, trump is %s", e.ID, seat, e.Players[seat].Name, c.Trump)
	case resp.Action == ActionPlay && len(r.Tricks) > 0 && (r.Current == nil || r.Current.Len() == 0):
		t := r.Tricks[len(r.Tricks)-1]
		c, _ := r.Contract()
		e.logger.Printf("Match %s: trick %d won by %s (%s) for %d points", e.ID, len(r.Tricks), t.Winner, e.Players[t.Winner].Name, t.Points(c.Trump))
	}
}

// finishRedeal rotates the dealer without counting the round.
func (e *Engine) finishRedeal() Event {
	summary := e.round.Summary()
	e.logger.Printf("Match %s: everybody passed, redealing", e.ID)
	e.round = nil
	e.dealer = e.dealer.Next()
	return Event{Kind: RoundEnded, Round: &summary}
}

// finishRound adds the round points to the match and checks for a winner.
func (e *Engine) finishRound() Event {
	summary := e.round.Summary()
	for _, team := range e.Teams {
		team.AddScore(summary.Score.Points[team.Number])
	}
	e.rounds = append(e.rounds, summary)
	e.logger.Printf("Match %s: round %d scored %d-%d (capot=%t, set=%t), totals %d-%d", e.ID, summary.Index,
		summary.Score.Points[shared.TeamA], summary.Score.Points[shared.TeamB], summary.Score.Capot, summary.Score.Set,
		e.Teams[shared.TeamA].Score, e.Teams[shared.TeamB].Score)

	e.round = nil
	e.roundIndex++
	e.dealer = e.dealer.Next()
	if winner, ok := matchWinner(e.Scores(), e.rules.TargetScore, summary.Contract); ok {
		e.result = &MatchResult{Winner: winner, Scores: e.Scores(), Rounds: len(e.rounds)}
		e.logger.Printf("Match %s: team %s wins %d-%d", e.ID, winner, e.result.Scores[shared.TeamA], e.result.Scores[shared.TeamB])
	}
	return Event{Kind: RoundEnded, Round: &summary}
}

// matchWinner decides whether the match is over after a round.
// Equal totals past the target go to the defenders of that round.
func matchWinner(scores [2]int, target int, last *Contract) (shared.TeamEnum, bool) {
	a, b := scores[shared.TeamA], scores[shared.TeamB]
	if a < target && b < target {
		return 0, false
	}
	switch {
	case a > b:
		return shared.TeamA, true
	case b > a:
		return shared.TeamB, true
	case last != nil:
		return last.Taker.Team().Opponent(), true
	}
	return 0, false
}

// State reports the coarse lifecycle stage.
func (e *Engine) State() EngineState {
	switch {
	case e.fault != nil:
		return Faulted
	case e.result != nil:
		return GameOver
	case e.round == nil:
		return Dealing
	case e.round.Phase == RoundBidding:
		return Bidding
	case e.round.Phase == RoundPlaying:
		return Playing
	}
	return Dealing
}

// Pending returns the seat and kind of the outstanding decision.
func (e *Engine) Pending() (shared.Seat, DecisionKind, bool) {
	if e.pending == nil {
		return 0, 0, false
	}
	return e.pending.seat, e.pending.kind, true
}

// Rules returns the rules the match was built with.
func (e *Engine) Rules() Rules { return e.rules }

// Dealer returns the dealer of the current or next round.
func (e *Engine) Dealer() shared.Seat { return e.dealer }

// RoundIndex returns the index of the current or next counted round.
func (e *Engine) RoundIndex() int { return e.roundIndex }

// Scores returns the cumulative points of team A and team B.
func (e *Engine) Scores() [2]int {
	return [2]int{e.Teams[shared.TeamA].Score, e.Teams[shared.TeamB].Score}
}

// Result returns the match outcome once it has ended.
func (e *Engine) Result() (MatchResult, bool) {
	if e.result == nil {
		return MatchResult{}, false
	}
	return *e.result, true
}

// Rounds returns the archive of scored rounds.
func (e *Engine) Rounds() []RoundSummary {
	return append([]RoundSummary(nil), e.rounds...)
}

// Trump returns the trump suit of the current round, if the auction concluded.
func (e *Engine) Trump() (shared.Suit, bool) {
	if e.round == nil {
		return 0, false
	}
	c, ok := e.round.Contract()
	return c.Trump, ok
}

// Taker returns the taker of the current round, if the auction concluded.
func (e *Engine) Taker() (shared.Seat, bool) {
	if e.round == nil {
		return 0, false
	}
	c, ok := e.round.Contract()
	return c.Taker, ok
}

// Candidate returns the face-up card of the current deal.
func (e *Engine) Candidate() (shared.Card, bool) {
	if e.round == nil {
		return shared.Card{}, false
	}
	return e.round.Candidate, true
}

// Bids returns the auction history of the current round.
func (e *Engine) Bids() []Bid {
	if e.round == nil {
		return nil
	}
	return append([]Bid(nil), e.round.Auction.History...)
}

// Hand returns a copy of the seat's cards.
func (e *Engine) Hand(seat shared.Seat) shared.Hand {
	if e.round == nil || !seat.Valid() {
		return nil
	}
	return e.round.Hands[seat].Copy()
}

// LegalPlays returns what seat may play now.
func (e *Engine) LegalPlays(seat shared.Seat) shared.Hand {
	if e.round == nil || !seat.Valid() {
		return nil
	}
	return e.round.Legal(seat)
}

// CurrentTrick returns a copy of the trick in progress.
func (e *Engine) CurrentTrick() *shared.Trick {
	if e.round == nil {
		return nil
	}
	return e.round.Current.Copy()
}

// Tricks returns copies of the completed tricks of the current round.
func (e *Engine) Tricks() []*shared.Trick {
	if e.round == nil {
		return nil
	}
	out := make([]*shared.Trick, 0, len(e.round.Tricks))
	for _, t := range e.round.Tricks {
		out = append(out, t.Copy())
	}
	return out
}

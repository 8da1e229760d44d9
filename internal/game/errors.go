package game

import (
	"errors"
	"fmt"

	"belote-engine/internal/shared"
)

var (
	// ErrIllegalPlay marks a card outside the seat's legal set.
	ErrIllegalPlay = errors.New("illegal play")
	// ErrIllegalBid marks an auction answer the current phase does not allow.
	ErrIllegalBid = errors.New("illegal bid")
	// ErrOutOfTurn marks an answer nobody asked for.
	ErrOutOfTurn = errors.New("out of turn")
	// ErrEngineFault marks a broken invariant. It is fatal and latched.
	ErrEngineFault = errors.New("engine fault")
)

// IllegalPlayError reports the offending card together with what was allowed.
type IllegalPlayError struct {
	Seat  shared.Seat
	Card  shared.Card
	Legal shared.Hand
}

func (e *IllegalPlayError) Error() string {
	return fmt.Sprintf("%s: %s cannot play %s, legal cards are [%s]", ErrIllegalPlay, e.Seat, e.Card, e.Legal)
}

func (e *IllegalPlayError) Unwrap() error {
	return ErrIllegalPlay
}

// FaultError wraps the cause of an engine fault.
type FaultError struct {
	Cause error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s: %v", ErrEngineFault, e.Cause)
}

func (e *FaultError) Unwrap() []error {
	return []error{ErrEngineFault, e.Cause}
}

func fault(format string, args ...any) *FaultError {
	return &FaultError{Cause: fmt.Errorf(format, args...)}
}

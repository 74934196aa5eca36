package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
)

var (
	// ErrInvalidTransition is returned when the requested edge is not in the
	// transition table for the actor's role. Retrying the same request never helps.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNotAuthorized is returned when the actor does not own the relationship the
	// edge requires (client, business or assigned driver of the order).
	ErrNotAuthorized = errors.New("not authorized")

	// ErrAlreadyClaimed is returned when a claim loses the race for an order. The
	// caller picks another order instead of retrying.
	ErrAlreadyClaimed = errors.New("order already claimed")

	// ErrNoProgress is returned by ProgressOf for statuses without a position on the
	// forward progress bar (cancelled).
	ErrNoProgress = errors.New("status has no progress position")
)

// InvalidTransitionError details a rejected edge.
type InvalidTransitionError struct {
	Role kernel.Role
	From Status
	To   Status
}

// NewInvalidTransitionError reports that role may not move an order from one status to another.
func NewInvalidTransitionError(role kernel.Role, from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{Role: role, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move an order from %s to %s", ErrInvalidTransition, e.Role, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NotAuthorizedError details an ownership mismatch.
type NotAuthorizedError struct {
	Actor        kernel.Actor
	Relationship string
}

// NewNotAuthorizedError reports that actor lacks the named relationship to the order.
func NewNotAuthorizedError(actor kernel.Actor, relationship string) *NotAuthorizedError {
	return &NotAuthorizedError{Actor: actor, Relationship: relationship}
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("%s: %s is not the %s of the order", ErrNotAuthorized, e.Actor, e.Relationship)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalTransition matches every rejected transition under errors.Is;
	// the concrete error is always a *TransitionError carrying both statuses.
	ErrIllegalTransition = errors.New("illegal status transition")

	ErrInvalidActor = errors.New("invalid actor id")
)

// TransitionInput carries one requested status change for any workflow
// entity.
type TransitionInput struct {
	ID          string
	Target      string
	Remarks     string
	DocumentRef string
	ActorID     string
}

// TransitionError reports a transition that is not in the legal-next-states
// set of the entity's current status.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

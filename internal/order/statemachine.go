package order

import (
	"fmt"
	"strings"
)

// Transition is a permitted status change together with who may perform it.
type Transition struct {
	From  Status
	To    Status
	Actor Actor
}

var validTransitions = []Transition{
	{From: StatusPending, To: StatusAccepted, Actor: ActorCook},
	// Payment confirmation by the customer once the cook accepts.
	{From: StatusAccepted, To: StatusConfirmed, Actor: ActorCustomer},
	{From: StatusConfirmed, To: StatusPreparing, Actor: ActorCook},
	{From: StatusPreparing, To: StatusReady, Actor: ActorCook},
	{From: StatusReady, To: StatusCompleted, Actor: ActorCook},

	// Either side may back out until payment is confirmed.
	{From: StatusPending, To: StatusCancelled, Actor: ActorCook},
	{From: StatusPending, To: StatusCancelled, Actor: ActorCustomer},
	{From: StatusAccepted, To: StatusCancelled, Actor: ActorCook},
	{From: StatusAccepted, To: StatusCancelled, Actor: ActorCustomer},
}

type transitionKey struct {
	From  Status
	To    Status
	Actor Actor
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransition checks whether actor may move an order from one status to another.
func CanTransition(from, to Status, actor Actor) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s is not allowed for %s (valid from %s: %s)",
		ErrInvalidTransition, from, to, actor, from, describeValidFrom(from, actor))
}

// ValidTransitionsFrom lists the statuses actor may move an order to.
func ValidTransitionsFrom(status Status, actor Actor) []Status {
	var nexts []Status
	for _, t := range validTransitions {
		if t.From == status && t.Actor == actor {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// NextCookStep is the forward action offered to the cook, if any.
func NextCookStep(status Status) (Status, bool) {
	for _, t := range validTransitions {
		if t.From == status && t.Actor == ActorCook && t.To != StatusCancelled {
			return t.To, true
		}
	}
	return "", false
}

func describeValidFrom(status Status, actor Actor) string {
	nexts := ValidTransitionsFrom(status, actor)
	if len(nexts) == 0 {
		return "none"
	}
	parts := make([]string, len(nexts))
	for i, s := range nexts {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

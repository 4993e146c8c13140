package capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/repository"
)

// ErrCapacityExceeded ...
var ErrCapacityExceeded = errors.New("event capacity exceeded")

// Guard is an advisory check: the count and compare is not serialized with concurrent buyers
type Guard struct {
	regRepo repository.Registration
}

// NewGuard ...
func NewGuard(regRepo repository.Registration) *Guard {
	return &Guard{regRepo: regRepo}
}

// Remaining capacity pooled across all ticket types, never negative
func (g *Guard) Remaining(ctx context.Context, event model.Event) (int64, error) {
	count, err := g.regRepo.CountRegistrationsByEvent(ctx, event.ID)
	if err != nil {
		return 0, err
	}
	remaining := event.Capacity - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Check returns the remaining capacity or ErrCapacityExceeded when requested does not fit
func (g *Guard) Check(ctx context.Context, event model.Event, requested int64) (int64, error) {
	remaining, err := g.Remaining(ctx, event)
	if err != nil {
		return 0, err
	}
	if requested > remaining {
		return remaining, fmt.Errorf("%w: requested %d, remaining %d", ErrCapacityExceeded, requested, remaining)
	}
	return remaining, nil
}

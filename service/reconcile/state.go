package reconcile

import (
	"go.uber.org/zap"
)

// State of one reconciliation run
type State int

const (
	// StateChargeConfirmed the provider reports the charge succeeded
	StateChargeConfirmed State = iota + 1

	// StateOrderCreating ...
	StateOrderCreating

	// StateRegistrationsCreating ...
	StateRegistrationsCreating

	// StateSideEffectsCreating signature, upsells, promo usage and event status
	StateSideEffectsCreating

	// StateTokensIssuing ...
	StateTokensIssuing

	// StateNotificationsQueued ...
	StateNotificationsQueued

	// StateDone ...
	StateDone

	// StateRejected the charge is not in a succeeded state
	StateRejected

	// StateAlreadyReconciled an order already exists for the charge
	StateAlreadyReconciled
)

var stateNames = map[State]string{
	StateChargeConfirmed:       "charge_confirmed",
	StateOrderCreating:         "order_creating",
	StateRegistrationsCreating: "registrations_creating",
	StateSideEffectsCreating:   "side_effects_creating",
	StateTokensIssuing:         "tokens_issuing",
	StateNotificationsQueued:   "notifications_queued",
	StateDone:                  "done",
	StateRejected:              "rejected",
	StateAlreadyReconciled:     "already_reconciled",
}

// String ...
func (s State) String() string {
	name, ok := stateNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

// Terminal ...
func (s State) Terminal() bool {
	return s == StateDone || s == StateRejected || s == StateAlreadyReconciled
}

type stateTracker struct {
	logger *zap.Logger
	state  State
}

func (t *stateTracker) enter(s State) {
	t.state = s
	t.logger.Debug("reconcile state", zap.String("state", s.String()))
}

package repository

import (
	"context"

	"github.com/QuangTung97/event-checkout/model"
)

// Event ...
type Event interface {
	GetEvent(ctx context.Context, eventID int64) (model.Event, error)
	LockEvent(ctx context.Context, eventID int64) error
	MarkEventSoldOut(ctx context.Context, eventID int64) error
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

// GetEvent ...
func (r *eventImpl) GetEvent(ctx context.Context, eventID int64) (model.Event, error) {
	query := `
SELECT id, name, capacity, status, starts_at, created_at, updated_at
FROM event WHERE id = ?
`
	var result model.Event
	err := GetReadonly(ctx).GetContext(ctx, &result, query, eventID)
	return result, wrapNotFound(err)
}

// LockEvent ...
func (r *eventImpl) LockEvent(ctx context.Context, eventID int64) error {
	query := `SELECT id FROM event WHERE id = ? FOR UPDATE`
	var id int64
	return wrapNotFound(GetTx(ctx).GetContext(ctx, &id, query, eventID))
}

// MarkEventSoldOut only moves an on sale event
func (r *eventImpl) MarkEventSoldOut(ctx context.Context, eventID int64) error {
	query := `UPDATE event SET status = ? WHERE id = ? AND status = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query,
		model.EventStatusSoldOut, eventID, model.EventStatusOnSale)
	return err
}

package repository

import (
	"context"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/jmoiron/sqlx"
)

// Ticket ...
type Ticket interface {
	GetTicketsByEvent(ctx context.Context, eventID int64) ([]model.Ticket, error)
	GetPriceTiersByTickets(ctx context.Context, ticketIDs []int64) ([]model.PriceTier, error)
}

type ticketImpl struct {
}

// NewTicket ...
func NewTicket() Ticket {
	return &ticketImpl{}
}

// GetTicketsByEvent ...
func (r *ticketImpl) GetTicketsByEvent(ctx context.Context, eventID int64) ([]model.Ticket, error) {
	query := `
SELECT id, event_id, name, display_label, base_price, currency, requires_document,
	created_at, updated_at
FROM ticket WHERE event_id = ?
ORDER BY id
`
	var result []model.Ticket
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, eventID)
	return result, err
}

// GetPriceTiersByTickets returns tiers in display order
func (r *ticketImpl) GetPriceTiersByTickets(ctx context.Context, ticketIDs []int64) ([]model.PriceTier, error) {
	if len(ticketIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT id, ticket_id, price, valid_from, valid_until, display_order, created_at, updated_at
FROM price_tier WHERE ticket_id IN (?)
ORDER BY ticket_id, display_order, id
`, ticketIDs)
	if err != nil {
		return nil, err
	}

	var result []model.PriceTier
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

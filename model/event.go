package model

import "time"

// Event ...
type Event struct {
	ID       int64       `db:"id"`
	Name     string      `db:"name"`
	Capacity int64       `db:"capacity"`
	Status   EventStatus `db:"status"`
	StartsAt time.Time   `db:"starts_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// EventStatus ...
type EventStatus int

const (
	// EventStatusDraft ...
	EventStatusDraft EventStatus = 1

	// EventStatusOnSale ...
	EventStatusOnSale EventStatus = 2

	// EventStatusSoldOut ...
	EventStatusSoldOut EventStatus = 3

	// EventStatusClosed ...
	EventStatusClosed EventStatus = 4

	// EventStatusCancelled ...
	EventStatusCancelled EventStatus = 5
)

// String ...
func (s EventStatus) String() string {
	switch s {
	case EventStatusDraft:
		return "draft"
	case EventStatusOnSale:
		return "on_sale"
	case EventStatusSoldOut:
		return "sold_out"
	case EventStatusClosed:
		return "closed"
	case EventStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

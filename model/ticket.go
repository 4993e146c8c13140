package model

import (
	"database/sql"
	"strings"
	"time"
)

// Ticket ...
type Ticket struct {
	ID               int64          `db:"id"`
	EventID          int64          `db:"event_id"`
	Name             string         `db:"name"`
	DisplayLabel     sql.NullString `db:"display_label"`
	BasePrice        int64          `db:"base_price"`
	Currency         string         `db:"currency"`
	RequiresDocument bool           `db:"requires_document"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BaseMoney returns the flat fallback price
func (t Ticket) BaseMoney() Money {
	return NewMoney(t.BasePrice, t.Currency)
}

// DisplayName resolves the name shown to buyers: label, then name, then a generic fallback
func (t Ticket) DisplayName() string {
	if t.DisplayLabel.Valid && strings.TrimSpace(t.DisplayLabel.String) != "" {
		return t.DisplayLabel.String
	}
	if strings.TrimSpace(t.Name) != "" {
		return t.Name
	}
	return "Ticket"
}

// PriceTier is a time windowed price, valid in [ValidFrom, ValidUntil)
type PriceTier struct {
	ID           int64        `db:"id"`
	TicketID     int64        `db:"ticket_id"`
	Price        int64        `db:"price"`
	ValidFrom    sql.NullTime `db:"valid_from"`
	ValidUntil   sql.NullTime `db:"valid_until"`
	DisplayOrder int          `db:"display_order"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Contains checks the half-open window, a null bound is open
func (p PriceTier) Contains(at time.Time) bool {
	if p.ValidFrom.Valid && at.Before(p.ValidFrom.Time) {
		return false
	}
	if p.ValidUntil.Valid && !at.Before(p.ValidUntil.Time) {
		return false
	}
	return true
}

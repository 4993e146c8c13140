package model

import (
	"database/sql"
	"time"
)

// Upsell is an add-on sold together with tickets
type Upsell struct {
	ID       int64         `db:"id"`
	EventID  sql.NullInt64 `db:"event_id"`
	Name     string        `db:"name"`
	Price    int64         `db:"price"`
	Currency string        `db:"currency"`
	Active   bool          `db:"active"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Money ...
func (u Upsell) Money() Money {
	return NewMoney(u.Price, u.Currency)
}

// AvailableFor checks active flag and scope, a null event id means global
func (u Upsell) AvailableFor(eventID int64) bool {
	if !u.Active {
		return false
	}
	if u.EventID.Valid && u.EventID.Int64 != eventID {
		return false
	}
	return true
}

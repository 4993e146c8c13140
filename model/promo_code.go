package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// PromoCode ...
type PromoCode struct {
	ID     int64           `db:"id"`
	Code   string          `db:"code"`
	Status PromoCodeStatus `db:"status"`

	PercentOff decimal.NullDecimal `db:"percent_off"`
	AmountOff  sql.NullInt64       `db:"amount_off"`

	ValidFrom  sql.NullTime `db:"valid_from"`
	ValidUntil sql.NullTime `db:"valid_until"`

	UsageLimit sql.NullInt64 `db:"usage_limit"`
	UsedCount  int64         `db:"used_count"`

	// EventIDs empty means the code applies to every event
	EventIDs []int64 `db:"-"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PromoCodeStatus ...
type PromoCodeStatus int

const (
	// PromoCodeStatusActive ...
	PromoCodeStatusActive PromoCodeStatus = 1

	// PromoCodeStatusInactive ...
	PromoCodeStatusInactive PromoCodeStatus = 2
)

// PromoCodeEvent scopes a promo code to one event
type PromoCodeEvent struct {
	PromoCodeID int64 `db:"promo_code_id"`
	EventID     int64 `db:"event_id"`
}

// InWindow ...
func (p PromoCode) InWindow(at time.Time) bool {
	if p.ValidFrom.Valid && at.Before(p.ValidFrom.Time) {
		return false
	}
	if p.ValidUntil.Valid && !at.Before(p.ValidUntil.Time) {
		return false
	}
	return true
}

// UsageAvailable ...
func (p PromoCode) UsageAvailable() bool {
	if !p.UsageLimit.Valid {
		return true
	}
	return p.UsedCount < p.UsageLimit.Int64
}

// AppliesToEvent ...
func (p PromoCode) AppliesToEvent(eventID int64) bool {
	if len(p.EventIDs) == 0 {
		return true
	}
	for _, id := range p.EventIDs {
		if id == eventID {
			return true
		}
	}
	return false
}

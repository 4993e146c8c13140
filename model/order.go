package model

import (
	"database/sql"
	"time"
)

// Order is created once per provider charge
type Order struct {
	ID               int64          `db:"id"`
	UserID           string         `db:"user_id"`
	EventID          int64          `db:"event_id"`
	Amount           int64          `db:"amount"`
	Currency         string         `db:"currency"`
	ProviderChargeID string         `db:"provider_charge_id"`
	PromoCode        sql.NullString `db:"promo_code"`
	Discount         int64          `db:"discount"`
	Status           OrderStatus    `db:"status"`

	CreatedAt time.Time `db:"created_at"`
}

// OrderStatus ...
type OrderStatus int

const (
	// OrderStatusPaid ...
	OrderStatusPaid OrderStatus = 1
)

// Money ...
func (o Order) Money() Money {
	return NewMoney(o.Amount, o.Currency)
}

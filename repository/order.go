package repository

import (
	"context"

	"github.com/QuangTung97/event-checkout/model"
)

// Order ...
type Order interface {
	GetOrderByChargeID(ctx context.Context, chargeID string) (model.Order, error)
	InsertOrder(ctx context.Context, order model.Order) (int64, error)
}

type orderImpl struct {
}

// NewOrder ...
func NewOrder() Order {
	return &orderImpl{}
}

// GetOrderByChargeID ...
func (r *orderImpl) GetOrderByChargeID(ctx context.Context, chargeID string) (model.Order, error) {
	query := `
SELECT id, user_id, event_id, amount, currency, provider_charge_id, promo_code, discount,
	status, created_at
FROM orders WHERE provider_charge_id = ?
`
	var result model.Order
	err := GetReadonly(ctx).GetContext(ctx, &result, query, chargeID)
	return result, wrapNotFound(err)
}

// InsertOrder returns ErrDuplicate when the charge id was already used
func (r *orderImpl) InsertOrder(ctx context.Context, order model.Order) (int64, error) {
	query := `
INSERT INTO orders (
	user_id, event_id, amount, currency, provider_charge_id, promo_code, discount, status
) VALUES (
	:user_id, :event_id, :amount, :currency, :provider_charge_id, :promo_code, :discount, :status
)
`
	res, err := GetTx(ctx).NamedExecContext(ctx, query, order)
	if err != nil {
		return 0, wrapDuplicate(err)
	}
	return res.LastInsertId()
}

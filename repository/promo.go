package repository

import (
	"context"

	"github.com/QuangTung97/event-checkout/model"
)

// Promo ...
type Promo interface {
	FindPromoCode(ctx context.Context, code string) (model.PromoCode, error)
	LockPromoCode(ctx context.Context, promoID int64) error
	UpdatePromoUsedCount(ctx context.Context, promoID int64, usedCount int64) error
}

type promoImpl struct {
}

// NewPromo ...
func NewPromo() Promo {
	return &promoImpl{}
}

// FindPromoCode loads the promo code together with its event scope
func (r *promoImpl) FindPromoCode(ctx context.Context, code string) (model.PromoCode, error) {
	query := `
SELECT id, code, status, percent_off, amount_off, valid_from, valid_until,
	usage_limit, used_count, created_at, updated_at
FROM promo_code WHERE code = ?
`
	var result model.PromoCode
	err := GetReadonly(ctx).GetContext(ctx, &result, query, code)
	if err != nil {
		return model.PromoCode{}, wrapNotFound(err)
	}

	scopeQuery := `SELECT event_id FROM promo_code_event WHERE promo_code_id = ? ORDER BY event_id`
	err = GetReadonly(ctx).SelectContext(ctx, &result.EventIDs, scopeQuery, result.ID)
	if err != nil {
		return model.PromoCode{}, err
	}
	return result, nil
}

// LockPromoCode ...
func (r *promoImpl) LockPromoCode(ctx context.Context, promoID int64) error {
	query := `SELECT id FROM promo_code WHERE id = ? FOR UPDATE`
	var id int64
	return wrapNotFound(GetTx(ctx).GetContext(ctx, &id, query, promoID))
}

// UpdatePromoUsedCount writes a counter value read earlier by the caller
func (r *promoImpl) UpdatePromoUsedCount(ctx context.Context, promoID int64, usedCount int64) error {
	query := `UPDATE promo_code SET used_count = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, usedCount, promoID)
	return err
}

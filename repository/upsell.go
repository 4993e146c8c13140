package repository

import (
	"context"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/jmoiron/sqlx"
)

// Upsell ...
type Upsell interface {
	GetUpsellsByIDs(ctx context.Context, upsellIDs []int64) ([]model.Upsell, error)
}

type upsellImpl struct {
}

// NewUpsell ...
func NewUpsell() Upsell {
	return &upsellImpl{}
}

// GetUpsellsByIDs ...
func (r *upsellImpl) GetUpsellsByIDs(ctx context.Context, upsellIDs []int64) ([]model.Upsell, error) {
	if len(upsellIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT id, event_id, name, price, currency, active, created_at, updated_at
FROM upsell WHERE id IN (?)
ORDER BY id
`, upsellIDs)
	if err != nil {
		return nil, err
	}

	var result []model.Upsell
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

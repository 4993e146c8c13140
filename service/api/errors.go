package api

import (
	"errors"
	"net/http"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/auth"
	"github.com/QuangTung97/event-checkout/pkg/payment"
	"github.com/QuangTung97/event-checkout/service/capacity"
	"github.com/QuangTung97/event-checkout/service/checkout"
	"github.com/QuangTung97/event-checkout/service/pricing"
	"github.com/QuangTung97/event-checkout/service/reconcile"
	"github.com/QuangTung97/event-checkout/service/token"
)

var errBadBody = errors.New("invalid request body")

type errorMapping struct {
	status int
	errs   []error
}

var errorMappings = []errorMapping{
	{
		status: http.StatusBadRequest,
		errs: []error{
			errBadBody,
			checkout.ErrInvalidRequest,
			reconcile.ErrInvalidRequest,
			token.ErrInvalidClaim,
			pricing.ErrInvalidQuantity,
			pricing.ErrEmptySelection,
			payment.ErrInvalidSignature,
		},
	},
	{
		status: http.StatusUnauthorized,
		errs: []error{
			auth.ErrMissingToken,
			auth.ErrInvalidToken,
			checkout.ErrUnauthorized,
			reconcile.ErrUnauthorized,
		},
	},
	{
		// wraps pricing.ErrInvalidTicket, must be matched before the not found group
		status: http.StatusUnprocessableEntity,
		errs: []error{
			pricing.ErrUnpricedTicket,
		},
	},
	{
		status: http.StatusNotFound,
		errs: []error{
			checkout.ErrEventNotFound,
			pricing.ErrInvalidTicket,
			payment.ErrChargeNotFound,
			token.ErrTokenNotFound,
		},
	},
	{
		status: http.StatusConflict,
		errs: []error{
			checkout.ErrEventNotOnSale,
			capacity.ErrCapacityExceeded,
			reconcile.ErrConflict,
			reconcile.ErrPaymentNotConfirmed,
			token.ErrAlreadyCheckedIn,
		},
	},
	{
		status: http.StatusUnprocessableEntity,
		errs: []error{
			pricing.ErrInvalidPromoCode,
			pricing.ErrInvalidUpsell,
			pricing.ErrInvalidAmount,
			checkout.ErrSnapshotTooLarge,
			model.ErrCurrencyMismatch,
		},
	},
}

// statusOf maps a service error to its HTTP status, unknown errors are internal
func statusOf(err error) int {
	for _, m := range errorMappings {
		for _, e := range m.errs {
			if errors.Is(err, e) {
				return m.status
			}
		}
	}
	return http.StatusInternalServerError
}

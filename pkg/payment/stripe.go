package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

var (
	// ErrIgnoredEvent when a webhook event does not confirm a charge
	ErrIgnoredEvent = errors.New("webhook event ignored")

	// ErrInvalidSignature ...
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

const eventPaymentIntentSucceeded = "payment_intent.succeeded"

// StripeProvider implements Provider with payment intents
type StripeProvider struct {
	api           *client.API
	webhookSecret string
}

var _ Provider = &StripeProvider{}

var _ WebhookParser = &StripeProvider{}

// NewStripeProvider ...
func NewStripeProvider(secretKey string, webhookSecret string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{
		api:           api,
		webhookSecret: webhookSecret,
	}
}

func convertStatus(status stripe.PaymentIntentStatus) ChargeStatus {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return ChargeStatusSucceeded
	case stripe.PaymentIntentStatusCanceled:
		return ChargeStatusCanceled
	default:
		return ChargeStatusPending
	}
}

func convertIntent(pi *stripe.PaymentIntent) Charge {
	return Charge{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     strings.ToLower(string(pi.Currency)),
		Status:       convertStatus(pi.Status),
		Metadata:     pi.Metadata,
	}
}

// CreateCharge creates a payment intent carrying the metadata
func (p *StripeProvider) CreateCharge(ctx context.Context, req ChargeRequest) (Charge, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return Charge{}, fmt.Errorf("create payment intent: %w", err)
	}
	return convertIntent(pi), nil
}

// RetrieveCharge ...
func (p *StripeProvider) RetrieveCharge(ctx context.Context, chargeID string) (Charge, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.Get(chargeID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return Charge{}, ErrChargeNotFound
		}
		return Charge{}, fmt.Errorf("retrieve payment intent: %w", err)
	}
	return convertIntent(pi), nil
}

// ParseWebhook verifies the signature and extracts the succeeded charge
func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (Charge, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return Charge{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if string(event.Type) != eventPaymentIntentSucceeded {
		return Charge{}, ErrIgnoredEvent
	}

	var pi stripe.PaymentIntent
	err = json.Unmarshal(event.Data.Raw, &pi)
	if err != nil {
		return Charge{}, fmt.Errorf("decode payment intent: %w", err)
	}
	return convertIntent(&pi), nil
}

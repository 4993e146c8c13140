package payment

import (
	"context"
	"errors"
)

//go:generate moq -out payment_mocks.go . Provider WebhookParser

// ErrChargeNotFound ...
var ErrChargeNotFound = errors.New("charge not found")

// ChargeStatus ...
type ChargeStatus int

const (
	// ChargeStatusPending covers every provider state before success
	ChargeStatusPending ChargeStatus = 1

	// ChargeStatusSucceeded ...
	ChargeStatusSucceeded ChargeStatus = 2

	// ChargeStatusCanceled ...
	ChargeStatusCanceled ChargeStatus = 3
)

// ChargeRequest ...
type ChargeRequest struct {
	Amount         int64
	Currency       string
	Description    string
	ReceiptEmail   string
	IdempotencyKey string
	Metadata       map[string]string
}

// Charge as reported by the provider
type Charge struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       ChargeStatus
	Metadata     map[string]string
}

// Provider is the external card payment provider
type Provider interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (Charge, error)
	RetrieveCharge(ctx context.Context, chargeID string) (Charge, error)
}

// WebhookParser verifies provider webhook deliveries
type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (Charge, error)
}

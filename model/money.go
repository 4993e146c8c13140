package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCurrencyMismatch when adding amounts of different currencies
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money amount in minor currency units (e.g. cents)
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// NewMoney normalizes currency code to lower case
func NewMoney(amount int64, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: strings.ToLower(strings.TrimSpace(currency)),
	}
}

// Zero ...
func Zero(currency string) Money {
	return NewMoney(0, currency)
}

// Add ...
func (m Money) Add(o Money) (Money, error) {
	if m.Currency != o.Currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, o.Currency)
	}
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}, nil
}

// Sub ...
func (m Money) Sub(o Money) (Money, error) {
	if m.Currency != o.Currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, o.Currency)
	}
	return Money{Amount: m.Amount - o.Amount, Currency: m.Currency}, nil
}

// Mul multiplies by quantity
func (m Money) Mul(qty int64) Money {
	return Money{Amount: m.Amount * qty, Currency: m.Currency}
}

// IsPositive ...
func (m Money) IsPositive() bool {
	return m.Amount > 0
}

// String ...
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}

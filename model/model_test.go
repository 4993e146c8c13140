package model

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newNullTime(s string) sql.NullTime {
	return sql.NullTime{Valid: true, Time: newTime(s)}
}

func TestPriceTier_Contains__Half_Open(t *testing.T) {
	tier := PriceTier{
		ValidFrom:  newNullTime("2022-05-10T10:00:00Z"),
		ValidUntil: newNullTime("2022-05-20T10:00:00Z"),
	}

	assert.Equal(t, false, tier.Contains(newTime("2022-05-10T09:59:59Z")))
	assert.Equal(t, true, tier.Contains(newTime("2022-05-10T10:00:00Z")))
	assert.Equal(t, true, tier.Contains(newTime("2022-05-20T09:59:59Z")))
	assert.Equal(t, false, tier.Contains(newTime("2022-05-20T10:00:00Z")))

	open := PriceTier{}
	assert.Equal(t, true, open.Contains(newTime("2030-01-01T00:00:00Z")))
}

func TestMoney_Add__Currency_Mismatch(t *testing.T) {
	_, err := NewMoney(100, "USD").Add(NewMoney(100, "eur"))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)

	m, err := NewMoney(100, "USD").Add(NewMoney(250, "usd"))
	assert.Equal(t, nil, err)
	assert.Equal(t, Money{Amount: 350, Currency: "usd"}, m)
}

func TestTicket_DisplayName(t *testing.T) {
	assert.Equal(t, "VIP", Ticket{Name: "vip-1", DisplayLabel: sql.NullString{Valid: true, String: "VIP"}}.DisplayName())
	assert.Equal(t, "vip-1", Ticket{Name: "vip-1", DisplayLabel: sql.NullString{Valid: true, String: " "}}.DisplayName())
	assert.Equal(t, "Ticket", Ticket{}.DisplayName())
}

func TestInitialApprovalStatus(t *testing.T) {
	assert.Equal(t, ApprovalStatusPending, InitialApprovalStatus(true))
	assert.Equal(t, ApprovalStatusApproved, InitialApprovalStatus(false))
}

func TestDeliveryFrequency_Allows(t *testing.T) {
	assert.Equal(t, false, DeliveryFrequencyNever.Allows(DeliveryFrequencyMonthly))
	assert.Equal(t, true, DeliveryFrequencyWeekly.Allows(DeliveryFrequencyMonthly))
	assert.Equal(t, true, DeliveryFrequencyWeekly.Allows(DeliveryFrequencyWeekly))
	assert.Equal(t, false, DeliveryFrequencyWeekly.Allows(DeliveryFrequencyDaily))
}

func TestPromoCode_AppliesToEvent(t *testing.T) {
	assert.Equal(t, true, PromoCode{}.AppliesToEvent(10))
	assert.Equal(t, true, PromoCode{EventIDs: []int64{3, 10}}.AppliesToEvent(10))
	assert.Equal(t, false, PromoCode{EventIDs: []int64{3}}.AppliesToEvent(10))
}

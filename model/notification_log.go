package model

import "time"

// NotificationLogEntry records one successful send per (recipient, type, context)
type NotificationLogEntry struct {
	ID               int64            `db:"id"`
	RecipientKey     string           `db:"recipient_key"`
	NotificationType NotificationType `db:"notification_type"`
	ContextHash      uint32           `db:"context_hash"`
	ContextKey       string           `db:"context_key"`
	ContextDigest    []byte           `db:"context_digest"`
	SentAt           time.Time        `db:"sent_at"`
}

// NotificationType ...
type NotificationType string

const (
	// NotificationTypeTicketConfirmation ...
	NotificationTypeTicketConfirmation NotificationType = "ticket_confirmation"

	// NotificationTypeEventReminder ...
	NotificationTypeEventReminder NotificationType = "event_reminder"
)

// RecipientPreference ...
type RecipientPreference struct {
	RecipientKey string            `db:"recipient_key"`
	Frequency    DeliveryFrequency `db:"frequency"`

	UpdatedAt time.Time `db:"updated_at"`
}

// DeliveryFrequency how often a recipient accepts campaign mail, higher means more often
type DeliveryFrequency int

const (
	// DeliveryFrequencyNever ...
	DeliveryFrequencyNever DeliveryFrequency = 0

	// DeliveryFrequencyMonthly ...
	DeliveryFrequencyMonthly DeliveryFrequency = 1

	// DeliveryFrequencyWeekly ...
	DeliveryFrequencyWeekly DeliveryFrequency = 2

	// DeliveryFrequencyDaily ...
	DeliveryFrequencyDaily DeliveryFrequency = 3
)

// Allows checks whether a campaign with cadence can be sent to this preference
func (f DeliveryFrequency) Allows(cadence DeliveryFrequency) bool {
	if f == DeliveryFrequencyNever {
		return false
	}
	return f >= cadence
}

package repository

import (
	"context"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/jmoiron/sqlx"
)

// NotificationLog ...
type NotificationLog interface {
	FindNotificationLog(ctx context.Context, key NotificationLogKey) (model.NotificationLogEntry, error)
	InsertNotificationLog(ctx context.Context, entry model.NotificationLogEntry) error
	GetRecipientPreferences(ctx context.Context, recipientKeys []string) ([]model.RecipientPreference, error)
}

// NotificationLogKey ...
type NotificationLogKey struct {
	RecipientKey     string
	NotificationType model.NotificationType
	ContextHash      uint32
	ContextKey       string
}

type notificationLogImpl struct {
}

// NewNotificationLog ...
func NewNotificationLog() NotificationLog {
	return &notificationLogImpl{}
}

// FindNotificationLog returns the most recent entry of the occasion
func (r *notificationLogImpl) FindNotificationLog(
	ctx context.Context, key NotificationLogKey,
) (model.NotificationLogEntry, error) {
	query := `
SELECT id, recipient_key, notification_type, context_hash, context_key, context_digest, sent_at
FROM notification_log
WHERE recipient_key = ? AND notification_type = ? AND context_hash = ? AND context_key = ?
ORDER BY sent_at DESC
LIMIT 1
`
	var result model.NotificationLogEntry
	err := GetReadonly(ctx).GetContext(ctx, &result, query,
		key.RecipientKey, key.NotificationType, key.ContextHash, key.ContextKey)
	return result, wrapNotFound(err)
}

// InsertNotificationLog returns ErrDuplicate when the occasion is already logged
func (r *notificationLogImpl) InsertNotificationLog(ctx context.Context, entry model.NotificationLogEntry) error {
	query := `
INSERT INTO notification_log (
	recipient_key, notification_type, context_hash, context_key, context_digest, sent_at
) VALUES (
	:recipient_key, :notification_type, :context_hash, :context_key, :context_digest, :sent_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, entry)
	return wrapDuplicate(err)
}

// GetRecipientPreferences ...
func (r *notificationLogImpl) GetRecipientPreferences(
	ctx context.Context, recipientKeys []string,
) ([]model.RecipientPreference, error) {
	if len(recipientKeys) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT recipient_key, frequency, updated_at
FROM recipient_preference WHERE recipient_key IN (?)
`, recipientKeys)
	if err != nil {
		return nil, err
	}

	var result []model.RecipientPreference
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

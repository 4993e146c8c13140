package notify

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"time"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/otellib"
	"github.com/QuangTung97/event-checkout/pkg/util"
	"github.com/QuangTung97/event-checkout/repository"
	"go.uber.org/zap"
)

//go:generate moq -out notify_mocks.go . Sender

// Outcome of one send attempt
type Outcome int

const (
	// OutcomeSent the message was delivered, or a concurrent sender already logged it
	OutcomeSent Outcome = 1

	// OutcomeSkipped the occasion was already in the ledger
	OutcomeSkipped Outcome = 2
)

// String ...
func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Fingerprint identifies the occasion of a notification, e.g. {event_id, weeks_remaining}
type Fingerprint map[string]interface{}

// CanonicalKey serializes the fingerprint with sorted keys
func CanonicalKey(fp Fingerprint) (string, error) {
	if fp == nil {
		fp = Fingerprint{}
	}
	data, err := json.Marshal(fp)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ContextDigest is the unique identity of a canonical key, the 32-bit context hash only narrows lookups
func ContextDigest(contextKey string) []byte {
	sum := sha256.Sum256([]byte(contextKey))
	return sum[:]
}

// SendFunc performs the actual delivery
type SendFunc func(ctx context.Context) error

// Ledger guarantees at most one logged send per (recipient, type, context)
type Ledger struct {
	provider repository.Provider
	logRepo  repository.NotificationLog

	now func() time.Time
}

// NewLedger ...
func NewLedger(provider repository.Provider, logRepo repository.NotificationLog) *Ledger {
	return &Ledger{
		provider: provider,
		logRepo:  logRepo,
		now:      time.Now,
	}
}

// Attempt sends only when no ledger entry exists, the entry is appended after a successful send.
// A failed send leaves no entry so a later attempt retries.
func (l *Ledger) Attempt(
	ctx context.Context, recipientKey string, notificationType model.NotificationType,
	fp Fingerprint, send SendFunc,
) (Outcome, error) {
	contextKey, err := CanonicalKey(fp)
	if err != nil {
		return 0, err
	}

	key := repository.NotificationLogKey{
		RecipientKey:     recipientKey,
		NotificationType: notificationType,
		ContextHash:      util.HashFunc(contextKey),
		ContextKey:       contextKey,
	}

	_, err = l.logRepo.FindNotificationLog(l.provider.Readonly(ctx), key)
	if err == nil {
		attemptCounter.WithLabelValues(string(notificationType), OutcomeSkipped.String()).Inc()
		return OutcomeSkipped, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}

	if err := send(ctx); err != nil {
		attemptCounter.WithLabelValues(string(notificationType), "failed").Inc()
		return 0, err
	}

	err = l.provider.Transact(ctx, func(ctx context.Context) error {
		return l.logRepo.InsertNotificationLog(ctx, model.NotificationLogEntry{
			RecipientKey:     key.RecipientKey,
			NotificationType: key.NotificationType,
			ContextHash:      key.ContextHash,
			ContextKey:       key.ContextKey,
			ContextDigest:    ContextDigest(key.ContextKey),
			SentAt:           l.now().UTC(),
		})
	})
	if errors.Is(err, repository.ErrDuplicate) {
		otellib.Extract(ctx).Warn("notification logged concurrently",
			zap.String("recipient", recipientKey),
			zap.String("type", string(notificationType)),
			zap.String("context", contextKey),
		)
		err = nil
	}
	if err != nil {
		return 0, err
	}

	attemptCounter.WithLabelValues(string(notificationType), OutcomeSent.String()).Inc()
	return OutcomeSent, nil
}

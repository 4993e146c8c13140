package notify

import (
	"context"
	"strings"
	"sync"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/mailer"
	"github.com/QuangTung97/event-checkout/pkg/otellib"
	"github.com/QuangTung97/event-checkout/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultBatchSize = 50

// defaultFrequency applies to recipients without a stored preference
const defaultFrequency = model.DeliveryFrequencyWeekly

// Recipient ...
type Recipient struct {
	Key   string
	Email string
	Name  string
}

// RecipientKey normalizes an email into a ledger recipient key
func RecipientKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Campaign is one notification sent to many recipients for the same occasion
type Campaign struct {
	Type model.NotificationType

	// Cadence is compared with recipient preferences, zero disables the filter
	Cadence model.DeliveryFrequency

	Fingerprint Fingerprint
	Build       func(r Recipient) (mailer.Message, error)
}

// Counts ...
type Counts struct {
	Sent     int `json:"sent"`
	Skipped  int `json:"skipped"`
	Filtered int `json:"filtered"`
	Failed   int `json:"failed"`
}

// Dispatcher sends campaigns through the ledger
type Dispatcher struct {
	provider repository.Provider
	logRepo  repository.NotificationLog
	ledger   *Ledger
	sender   Sender

	batchSize int
}

// NewDispatcher ...
func NewDispatcher(
	provider repository.Provider, logRepo repository.NotificationLog,
	ledger *Ledger, sender Sender, batchSize int,
) *Dispatcher {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Dispatcher{
		provider:  provider,
		logRepo:   logRepo,
		ledger:    ledger,
		sender:    sender,
		batchSize: batchSize,
	}
}

func uniqueRecipients(recipients []Recipient) []Recipient {
	seen := map[string]struct{}{}
	result := make([]Recipient, 0, len(recipients))
	for _, r := range recipients {
		if r.Key == "" {
			r.Key = RecipientKey(r.Email)
		}
		if _, existed := seen[r.Key]; existed {
			continue
		}
		seen[r.Key] = struct{}{}
		result = append(result, r)
	}
	return result
}

func (d *Dispatcher) filterByPreference(
	ctx context.Context, cadence model.DeliveryFrequency, batch []Recipient,
) ([]Recipient, error) {
	if cadence == 0 {
		return batch, nil
	}

	keys := make([]string, 0, len(batch))
	for _, r := range batch {
		keys = append(keys, r.Key)
	}

	prefs, err := d.logRepo.GetRecipientPreferences(d.provider.Readonly(ctx), keys)
	if err != nil {
		return nil, err
	}

	prefMap := map[string]model.DeliveryFrequency{}
	for _, p := range prefs {
		prefMap[p.RecipientKey] = p.Frequency
	}

	result := make([]Recipient, 0, len(batch))
	for _, r := range batch {
		freq, ok := prefMap[r.Key]
		if !ok {
			freq = defaultFrequency
		}
		if freq.Allows(cadence) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (d *Dispatcher) sendOne(ctx context.Context, campaign Campaign, r Recipient) (Outcome, error) {
	return d.ledger.Attempt(ctx, r.Key, campaign.Type, campaign.Fingerprint, func(ctx context.Context) error {
		msg, err := campaign.Build(r)
		if err != nil {
			return err
		}
		return d.sender.Send(ctx, msg)
	})
}

// DispatchBatch sends the campaign in fixed size batches, concurrently inside a batch.
// Failures of single recipients are logged and counted, they never stop the batch.
func (d *Dispatcher) DispatchBatch(ctx context.Context, campaign Campaign, recipients []Recipient) (Counts, error) {
	logger := otellib.Extract(ctx)
	recipients = uniqueRecipients(recipients)

	var counts Counts
	var mut sync.Mutex

	for start := 0; start < len(recipients); start += d.batchSize {
		end := start + d.batchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		batch := recipients[start:end]

		allowed, err := d.filterByPreference(ctx, campaign.Cadence, batch)
		if err != nil {
			return counts, err
		}
		counts.Filtered += len(batch) - len(allowed)
		filteredCounter.WithLabelValues(string(campaign.Type)).Add(float64(len(batch) - len(allowed)))

		var group errgroup.Group
		for _, r := range allowed {
			r := r
			group.Go(func() error {
				outcome, err := d.sendOne(ctx, campaign, r)

				mut.Lock()
				defer mut.Unlock()

				if err != nil {
					logger.Error("notification failed",
						zap.String("recipient", r.Key),
						zap.String("type", string(campaign.Type)),
						zap.Error(err),
					)
					counts.Failed++
					return nil
				}
				if outcome == OutcomeSkipped {
					counts.Skipped++
				} else {
					counts.Sent++
				}
				return nil
			})
		}
		_ = group.Wait()
	}

	logger.Info("campaign dispatched",
		zap.String("type", string(campaign.Type)),
		zap.Int("sent", counts.Sent),
		zap.Int("skipped", counts.Skipped),
		zap.Int("filtered", counts.Filtered),
		zap.Int("failed", counts.Failed),
	)
	return counts, nil
}

// SendConfirmations sends one ticket confirmation per registration, not subject to preferences
func (d *Dispatcher) SendConfirmations(ctx context.Context, event model.Event, regs []model.Registration) Counts {
	logger := otellib.Extract(ctx)

	var counts Counts
	for _, reg := range regs {
		reg := reg
		outcome, err := d.ledger.Attempt(ctx, RecipientKey(reg.ParticipantEmail),
			model.NotificationTypeTicketConfirmation, ConfirmationFingerprint(reg),
			func(ctx context.Context) error {
				msg, err := ConfirmationMessage(event, reg)
				if err != nil {
					return err
				}
				return d.sender.Send(ctx, msg)
			},
		)
		if err != nil {
			logger.Error("ticket confirmation failed",
				zap.Int64("registration_id", reg.ID),
				zap.Error(err),
			)
			counts.Failed++
			continue
		}
		if outcome == OutcomeSkipped {
			counts.Skipped++
		} else {
			counts.Sent++
		}
	}
	return counts
}

package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/mailer"
	"github.com/QuangTung97/event-checkout/repository"
)

// ErrEventStarted ...
var ErrEventStarted = errors.New("event already started")

// Reminder sends event_reminder campaigns to the registered participants
type Reminder struct {
	provider   repository.Provider
	eventRepo  repository.Event
	regRepo    repository.Registration
	dispatcher *Dispatcher

	now func() time.Time
}

// NewReminder ...
func NewReminder(
	provider repository.Provider, eventRepo repository.Event,
	regRepo repository.Registration, dispatcher *Dispatcher,
) *Reminder {
	return &Reminder{
		provider:   provider,
		eventRepo:  eventRepo,
		regRepo:    regRepo,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Remind is safe to run repeatedly, each participant gets one reminder per remaining week count
func (r *Reminder) Remind(ctx context.Context, eventID int64) (Counts, error) {
	readCtx := r.provider.Readonly(ctx)

	event, err := r.eventRepo.GetEvent(readCtx, eventID)
	if err != nil {
		return Counts{}, fmt.Errorf("get event %d: %w", eventID, err)
	}

	weeks := WeeksRemaining(event.StartsAt, r.now())
	if weeks <= 0 {
		return Counts{}, ErrEventStarted
	}

	regs, err := r.regRepo.GetRegistrationsByEvent(readCtx, eventID)
	if err != nil {
		return Counts{}, err
	}

	recipients := make([]Recipient, 0, len(regs))
	for _, reg := range regs {
		recipients = append(recipients, Recipient{
			Key:   RecipientKey(reg.ParticipantEmail),
			Email: reg.ParticipantEmail,
			Name:  reg.ParticipantName,
		})
	}

	return r.dispatcher.DispatchBatch(ctx, Campaign{
		Type:    model.NotificationTypeEventReminder,
		Cadence: model.DeliveryFrequencyWeekly,
		Fingerprint: Fingerprint{
			"event_id":        event.ID,
			"weeks_remaining": weeks,
		},
		Build: func(recipient Recipient) (mailer.Message, error) {
			return ReminderMessage(event, recipient, weeks)
		},
	}, recipients)
}

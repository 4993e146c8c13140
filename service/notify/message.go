package notify

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/mailer"
)

// Sender delivers one message to one recipient
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(
	`Hi {{.Name}},

Your registration for {{.EventName}} is confirmed.

Check-in code: {{.CheckInToken}}
{{- if .PendingApproval}}

Your ticket requires a document review, we will let you know once it is approved.
{{- end}}

To hand this ticket to someone else, share this transfer code: {{.TransferToken}}
`))

var reminderTemplate = template.Must(template.New("reminder").Parse(
	`Hi {{.Name}},

{{.EventName}} starts on {{.StartsAt}}, {{.WeeksRemaining}} week(s) from now.
`))

// ConfirmationData ...
type ConfirmationData struct {
	Name            string
	EventName       string
	CheckInToken    string
	TransferToken   string
	PendingApproval bool
}

// ReminderData ...
type ReminderData struct {
	Name           string
	EventName      string
	StartsAt       string
	WeeksRemaining int64
}

func render(tpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ConfirmationMessage for one registration
func ConfirmationMessage(event model.Event, reg model.Registration) (mailer.Message, error) {
	body, err := render(confirmationTemplate, ConfirmationData{
		Name:            reg.ParticipantName,
		EventName:       event.Name,
		CheckInToken:    reg.CheckInToken,
		TransferToken:   reg.TransferToken,
		PendingApproval: reg.ApprovalStatus == model.ApprovalStatusPending,
	})
	if err != nil {
		return mailer.Message{}, err
	}
	return mailer.Message{
		To:      reg.ParticipantEmail,
		Subject: fmt.Sprintf("Your ticket for %s", event.Name),
		Body:    body,
	}, nil
}

// ConfirmationFingerprint one confirmation per registration
func ConfirmationFingerprint(reg model.Registration) Fingerprint {
	return Fingerprint{
		"event_id":        reg.EventID,
		"registration_id": reg.ID,
	}
}

// WeeksRemaining until the event starts, rounded up
func WeeksRemaining(startsAt time.Time, now time.Time) int64 {
	d := startsAt.Sub(now)
	if d <= 0 {
		return 0
	}
	week := 7 * 24 * time.Hour
	return int64((d + week - 1) / week)
}

// ReminderMessage ...
func ReminderMessage(event model.Event, recipient Recipient, weeks int64) (mailer.Message, error) {
	body, err := render(reminderTemplate, ReminderData{
		Name:           recipient.Name,
		EventName:      event.Name,
		StartsAt:       event.StartsAt.UTC().Format("2006-01-02 15:04 MST"),
		WeeksRemaining: weeks,
	})
	if err != nil {
		return mailer.Message{}, err
	}
	return mailer.Message{
		To:      recipient.Email,
		Subject: fmt.Sprintf("Reminder: %s", event.Name),
		Body:    body,
	}, nil
}

package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/QuangTung97/event-checkout/service/pricing"
)

const (
	snapshotVersion = 1

	metadataChunkSize = 500
	metadataMaxChunks = 45

	metadataKeyParts   = "snapshot_parts"
	metadataKeyPrefix  = "snapshot_"
	metadataKeyEventID = "event_id"
	metadataKeyUserID  = "user_id"
)

var (
	// ErrSnapshotTooLarge when the selection does not fit in the charge metadata
	ErrSnapshotTooLarge = errors.New("checkout snapshot too large")

	// ErrSnapshotMissing when a charge carries no or broken snapshot metadata
	ErrSnapshotMissing = errors.New("checkout snapshot missing from charge")
)

// Document metadata of an uploaded credential, the file itself lives elsewhere
type Document struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Participant ...
type Participant struct {
	TicketID int64     `json:"ticket_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Document *Document `json:"document,omitempty"`
}

// SnapshotTicket ...
type SnapshotTicket struct {
	TicketID         int64 `json:"ticket_id"`
	Quantity         int64 `json:"quantity"`
	UnitPrice        int64 `json:"unit_price"`
	RequiresDocument bool  `json:"requires_document"`
}

// SnapshotUpsell ...
type SnapshotUpsell struct {
	UpsellID  int64 `json:"upsell_id"`
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}

// Snapshot is the canonical record of a priced checkout, carried on the charge
type Snapshot struct {
	Version   int    `json:"v"`
	EventID   int64  `json:"event_id"`
	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email"`
	Currency  string `json:"currency"`

	Tickets      []SnapshotTicket `json:"tickets"`
	Participants []Participant    `json:"participants"`
	Upsells      []SnapshotUpsell `json:"upsells"`

	PromoCode      string `json:"promo_code,omitempty"`
	TicketSubtotal int64  `json:"ticket_subtotal"`
	UpsellSubtotal int64  `json:"upsell_subtotal"`
	Discount       int64  `json:"discount"`
	Total          int64  `json:"total"`
	PricedAt       int64  `json:"priced_at"`
}

// NewSnapshot ...
func NewSnapshot(userID string, userEmail string, quote pricing.Quote, participants []Participant) Snapshot {
	tickets := make([]SnapshotTicket, 0, len(quote.Tickets))
	for _, line := range quote.Tickets {
		tickets = append(tickets, SnapshotTicket{
			TicketID:         line.TicketID,
			Quantity:         line.Quantity,
			UnitPrice:        line.UnitPrice.Amount,
			RequiresDocument: line.RequiresDocument,
		})
	}

	upsells := make([]SnapshotUpsell, 0, len(quote.Upsells))
	for _, line := range quote.Upsells {
		upsells = append(upsells, SnapshotUpsell{
			UpsellID:  line.UpsellID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.Amount,
		})
	}

	return Snapshot{
		Version:   snapshotVersion,
		EventID:   quote.EventID,
		UserID:    userID,
		UserEmail: userEmail,
		Currency:  quote.Currency,

		Tickets:      tickets,
		Participants: participants,
		Upsells:      upsells,

		PromoCode:      quote.PromoCode,
		TicketSubtotal: quote.TicketSubtotal.Amount,
		UpsellSubtotal: quote.UpsellSubtotal.Amount,
		Discount:       quote.Discount.Amount,
		Total:          quote.Total.Amount,
		PricedAt:       quote.PricedAt.Unix(),
	}
}

// PricedTime ...
func (s Snapshot) PricedTime() time.Time {
	return time.Unix(s.PricedAt, 0).UTC()
}

// TicketByID ...
func (s Snapshot) TicketByID(ticketID int64) (SnapshotTicket, bool) {
	for _, t := range s.Tickets {
		if t.TicketID == ticketID {
			return t, true
		}
	}
	return SnapshotTicket{}, false
}

// Marshal returns the canonical serialization
func (s Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func splitChunks(s string, size int) []string {
	var chunks []string
	for len(s) > size {
		end := size
		for end > 0 && !utf8.RuneStart(s[end]) {
			end--
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	if len(s) > 0 {
		chunks = append(chunks, s)
	}
	return chunks
}

// EncodeMetadata splits the canonical serialization into provider metadata values
func (s Snapshot) EncodeMetadata() (map[string]string, error) {
	data, err := s.Marshal()
	if err != nil {
		return nil, err
	}

	chunks := splitChunks(string(data), metadataChunkSize)
	if len(chunks) > metadataMaxChunks {
		return nil, ErrSnapshotTooLarge
	}

	metadata := map[string]string{
		metadataKeyParts:   strconv.Itoa(len(chunks)),
		metadataKeyEventID: strconv.FormatInt(s.EventID, 10),
		metadataKeyUserID:  s.UserID,
	}
	for i, chunk := range chunks {
		metadata[metadataKeyPrefix+strconv.Itoa(i)] = chunk
	}
	return metadata, nil
}

// DecodeMetadata rebuilds the snapshot written by EncodeMetadata
func DecodeMetadata(metadata map[string]string) (Snapshot, error) {
	parts, err := strconv.Atoi(metadata[metadataKeyParts])
	if err != nil || parts <= 0 || parts > metadataMaxChunks {
		return Snapshot{}, ErrSnapshotMissing
	}

	var sb strings.Builder
	for i := 0; i < parts; i++ {
		chunk, ok := metadata[metadataKeyPrefix+strconv.Itoa(i)]
		if !ok {
			return Snapshot{}, fmt.Errorf("%w: part %d", ErrSnapshotMissing, i)
		}
		sb.WriteString(chunk)
	}

	var s Snapshot
	err = json.Unmarshal([]byte(sb.String()), &s)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrSnapshotMissing, err)
	}
	if s.Version != snapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: unsupported version %d", ErrSnapshotMissing, s.Version)
	}
	return s, nil
}

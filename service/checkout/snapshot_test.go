package checkout

import (
	"strings"
	"testing"
	"time"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/service/pricing"
	"github.com/stretchr/testify/assert"
)

func newTestQuote() pricing.Quote {
	return pricing.Quote{
		EventID:  11,
		Currency: "usd",
		Tickets: []pricing.TicketLine{
			{
				TicketID:  1,
				Quantity:  2,
				UnitPrice: model.NewMoney(1500, "usd"),
				Subtotal:  model.NewMoney(3000, "usd"),
			},
			{
				TicketID:  3,
				Quantity:  1,
				UnitPrice: model.NewMoney(4000, "usd"),
				Subtotal:  model.NewMoney(4000, "usd"),

				RequiresDocument: true,
			},
		},
		Upsells: []pricing.UpsellLine{
			{UpsellID: 5, Quantity: 1, UnitPrice: model.NewMoney(500, "usd"), Subtotal: model.NewMoney(500, "usd")},
		},
		TicketSubtotal: model.NewMoney(7000, "usd"),
		UpsellSubtotal: model.NewMoney(500, "usd"),
		Discount:       model.NewMoney(700, "usd"),
		Total:          model.NewMoney(6800, "usd"),
		PromoCode:      "SPRING10",
		PricedAt:       time.Date(2022, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSnapshot__Encode_Decode(t *testing.T) {
	participants := []Participant{
		{TicketID: 1, Name: "Alice", Email: "alice@example.com"},
		{TicketID: 1, Name: "Bob", Email: "bob@example.com"},
		{TicketID: 3, Name: "Carol", Email: "carol@example.com", Document: &Document{Name: "id.pdf", Type: "application/pdf"}},
	}
	s := NewSnapshot("user-1", "alice@example.com", newTestQuote(), participants)

	metadata, err := s.EncodeMetadata()
	assert.Equal(t, nil, err)
	assert.Equal(t, "11", metadata["event_id"])
	assert.Equal(t, "user-1", metadata["user_id"])
	assert.Equal(t, "2", metadata["snapshot_parts"])

	data, err := s.Marshal()
	assert.Equal(t, nil, err)
	assert.Greater(t, len(data), metadataChunkSize)
	assert.LessOrEqual(t, len(metadata["snapshot_0"]), metadataChunkSize)
	assert.LessOrEqual(t, len(metadata["snapshot_1"]), metadataChunkSize)
	assert.Equal(t, string(data), metadata["snapshot_0"]+metadata["snapshot_1"])

	result, err := DecodeMetadata(metadata)
	assert.Equal(t, nil, err)
	assert.Equal(t, s, result)
	assert.Equal(t, int64(6800), result.Total)
	assert.Equal(t, time.Date(2022, 7, 1, 10, 0, 0, 0, time.UTC), result.PricedTime())

	ticket, ok := result.TicketByID(3)
	assert.Equal(t, true, ok)
	assert.Equal(t, true, ticket.RequiresDocument)

	_, ok = result.TicketByID(2)
	assert.Equal(t, false, ok)
}

func TestSnapshot__Canonical_Serialization(t *testing.T) {
	s := NewSnapshot("user-1", "a@example.com", newTestQuote(), nil)

	first, err := s.Marshal()
	assert.Equal(t, nil, err)
	second, err := s.Marshal()
	assert.Equal(t, nil, err)
	assert.Equal(t, first, second)
	assert.Equal(t, true, strings.HasPrefix(string(first), `{"v":1,"event_id":11,"user_id":"user-1"`))
}

func TestSnapshot__Many_Participants_Chunked(t *testing.T) {
	var participants []Participant
	for i := 0; i < 40; i++ {
		participants = append(participants, Participant{
			TicketID: 1,
			Name:     "Nguyễn Văn Thành " + strings.Repeat("ố", i%5),
			Email:    "participant@example.com",
		})
	}
	s := NewSnapshot("user-1", "a@example.com", newTestQuote(), participants)

	metadata, err := s.EncodeMetadata()
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "1", metadata["snapshot_parts"])

	for k, v := range metadata {
		assert.LessOrEqual(t, len(v), 500, k)
	}

	result, err := DecodeMetadata(metadata)
	assert.Equal(t, nil, err)
	assert.Equal(t, s, result)
}

func TestSnapshot__Too_Large(t *testing.T) {
	var participants []Participant
	for i := 0; i < 500; i++ {
		participants = append(participants, Participant{
			TicketID: 1,
			Name:     strings.Repeat("x", 50),
			Email:    "participant@example.com",
		})
	}
	s := NewSnapshot("user-1", "a@example.com", newTestQuote(), participants)

	_, err := s.EncodeMetadata()
	assert.Equal(t, ErrSnapshotTooLarge, err)
}

func TestDecodeMetadata__Missing(t *testing.T) {
	_, err := DecodeMetadata(map[string]string{})
	assert.ErrorIs(t, err, ErrSnapshotMissing)

	_, err = DecodeMetadata(map[string]string{
		"snapshot_parts": "2",
		"snapshot_0":     `{"v":1}`,
	})
	assert.ErrorIs(t, err, ErrSnapshotMissing)

	_, err = DecodeMetadata(map[string]string{
		"snapshot_parts": "1",
		"snapshot_0":     `{"v":9}`,
	})
	assert.ErrorIs(t, err, ErrSnapshotMissing)
}

func TestSplitChunks__Rune_Boundary(t *testing.T) {
	chunks := splitChunks("aaéé", 3)
	assert.Equal(t, []string{"aa", "é", "é"}, chunks)
	assert.Equal(t, "aaéé", strings.Join(chunks, ""))
}

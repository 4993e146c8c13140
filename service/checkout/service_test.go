package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/memtable"
	"github.com/QuangTung97/event-checkout/pkg/payment"
	"github.com/QuangTung97/event-checkout/repository"
	"github.com/QuangTung97/event-checkout/service/capacity"
	"github.com/QuangTung97/event-checkout/service/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type serviceTest struct {
	provider   *repository.ProviderMock
	eventRepo  *repository.EventMock
	ticketRepo *repository.TicketMock
	promoRepo  *repository.PromoMock
	upsellRepo *repository.UpsellMock
	regRepo    *repository.RegistrationMock
	payments   *payment.ProviderMock

	service *Service
}

func newServiceTest() *serviceTest {
	s := &serviceTest{
		provider: &repository.ProviderMock{
			ReadonlyFunc: func(ctx context.Context) context.Context { return ctx },
		},
		eventRepo:  &repository.EventMock{},
		ticketRepo: &repository.TicketMock{},
		promoRepo:  &repository.PromoMock{},
		upsellRepo: &repository.UpsellMock{},
		regRepo:    &repository.RegistrationMock{},
		payments:   &payment.ProviderMock{},
	}

	catalog := NewCatalogLoader(s.ticketRepo, s.upsellRepo, memtable.New(1024*1024), time.Minute)
	s.service = NewService(s.provider, s.eventRepo, s.promoRepo, catalog, capacity.NewGuard(s.regRepo), s.payments)
	s.service.now = func() time.Time {
		return time.Date(2022, 7, 1, 10, 0, 0, 0, time.UTC)
	}
	s.service.newIdempotency = func() string { return "idem-key" }
	return s
}

func (s *serviceTest) stubCatalog(status model.EventStatus, capacity int64, sold int64) {
	s.eventRepo.GetEventFunc = func(ctx context.Context, eventID int64) (model.Event, error) {
		if eventID != 11 {
			return model.Event{}, repository.ErrNotFound
		}
		return model.Event{ID: 11, Name: "Go Conference", Capacity: capacity, Status: status}, nil
	}
	s.ticketRepo.GetTicketsByEventFunc = func(ctx context.Context, eventID int64) ([]model.Ticket, error) {
		return []model.Ticket{
			{ID: 1, EventID: 11, Name: "Standard", BasePrice: 2000, Currency: "usd"},
			{ID: 3, EventID: 11, Name: "Student", BasePrice: 1000, Currency: "usd", RequiresDocument: true},
		}, nil
	}
	s.ticketRepo.GetPriceTiersByTicketsFunc = func(ctx context.Context, ticketIDs []int64) ([]model.PriceTier, error) {
		return nil, nil
	}
	s.upsellRepo.GetUpsellsByIDsFunc = func(ctx context.Context, upsellIDs []int64) ([]model.Upsell, error) {
		if len(upsellIDs) == 0 {
			return nil, nil
		}
		return []model.Upsell{
			{ID: 5, Name: "T-Shirt", Price: 500, Currency: "usd", Active: true},
		}, nil
	}
	s.regRepo.CountRegistrationsByEventFunc = func(ctx context.Context, eventID int64) (int64, error) {
		return sold, nil
	}
	s.payments.CreateChargeFunc = func(ctx context.Context, req payment.ChargeRequest) (payment.Charge, error) {
		return payment.Charge{
			ID:           "pi_123",
			ClientSecret: "pi_123_secret",
			Amount:       req.Amount,
			Currency:     req.Currency,
			Status:       payment.ChargeStatusPending,
			Metadata:     req.Metadata,
		}, nil
	}
}

func newRequest() Request {
	return Request{
		EventID:   11,
		UserID:    "user-1",
		UserEmail: "alice@example.com",
		Tickets: []pricing.TicketSelection{
			{TicketID: 1, Quantity: 2},
		},
		Participants: []Participant{
			{Name: "Alice", Email: "alice@example.com"},
			{Name: "Bob", Email: "bob@example.com"},
		},
	}
}

func TestCreateIntent__Success(t *testing.T) {
	s := newServiceTest()
	s.stubCatalog(model.EventStatusOnSale, 100, 10)

	req := newRequest()
	req.Upsells = []pricing.UpsellSelection{{UpsellID: 5, Quantity: 1}}

	intent, err := s.service.CreateIntent(context.Background(), req)
	assert.Equal(t, nil, err)
	assert.Equal(t, "pi_123", intent.IntentID)
	assert.Equal(t, "pi_123_secret", intent.ProviderHandle)
	assert.Equal(t, "", intent.AppliedPromo)
	assert.Equal(t, model.NewMoney(4500, "usd"), intent.Quote.Total)

	calls := s.payments.CreateChargeCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, int64(4500), calls[0].Req.Amount)
	assert.Equal(t, "usd", calls[0].Req.Currency)
	assert.Equal(t, "idem-key", calls[0].Req.IdempotencyKey)
	assert.Equal(t, "Go Conference", calls[0].Req.Description)

	snapshot, err := DecodeMetadata(calls[0].Req.Metadata)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(4500), snapshot.Total)
	assert.Equal(t, "user-1", snapshot.UserID)
	assert.Equal(t, []Participant{
		{TicketID: 1, Name: "Alice", Email: "alice@example.com"},
		{TicketID: 1, Name: "Bob", Email: "bob@example.com"},
	}, snapshot.Participants)
	assert.Equal(t, []SnapshotUpsell{{UpsellID: 5, Quantity: 1, UnitPrice: 500}}, snapshot.Upsells)
}

func TestCreateIntent__Catalog_Cached(t *testing.T) {
	s := newServiceTest()
	s.stubCatalog(model.EventStatusOnSale, 100, 0)

	_, err := s.service.CreateIntent(context.Background(), newRequest())
	assert.Equal(t, nil, err)
	_, err = s.service.CreateIntent(context.Background(), newRequest())
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, len(s.ticketRepo.GetTicketsByEventCalls()))
	assert.Equal(t, 1, len(s.ticketRepo.GetPriceTiersByTicketsCalls()))
	assert.Equal(t, 2, len(s.payments.CreateChargeCalls()))
}

func TestCreateIntent__With_Promo(t *testing.T) {
	s := newServiceTest()
	s.stubCatalog(model.EventStatusOnSale, 100, 0)
	s.promoRepo.FindPromoCodeFunc = func(ctx context.Context, code string) (model.PromoCode, error) {
		if code != "SPRING10" {
			return model.PromoCode{}, repository.ErrNotFound
		}
		return model.PromoCode{
			ID:         7,
			Code:       "SPRING10",
			Status:     model.PromoCodeStatusActive,
			PercentOff: decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true},
		}, nil
	}

	req := newRequest()
	req.PromoCode = "  SPRING10 "

	intent, err := s.service.CreateIntent(context.Background(), req)
	assert.Equal(t, nil, err)
	assert.Equal(t, "SPRING10", intent.AppliedPromo)
	assert.Equal(t, model.NewMoney(400, "usd"), intent.Quote.Discount)
	assert.Equal(t, model.NewMoney(3600, "usd"), intent.Quote.Total)

	req.PromoCode = "UNKNOWN"
	_, err = s.service.CreateIntent(context.Background(), req)
	assert.ErrorIs(t, err, pricing.ErrInvalidPromoCode)
}

func TestCreateIntent__Validation_Errors(t *testing.T) {
	table := []struct {
		name   string
		status model.EventStatus
		sold   int64
		modify func(req *Request)
		err    error
	}{
		{
			name:   "missing-event",
			status: model.EventStatusOnSale,
			modify: func(req *Request) { req.EventID = 0 },
			err:    ErrInvalidRequest,
		},
		{
			name:   "zero-quantity",
			status: model.EventStatusOnSale,
			modify: func(req *Request) { req.Tickets[0].Quantity = 0 },
			err:    ErrInvalidRequest,
		},
		{
			name:   "no-user",
			status: model.EventStatusOnSale,
			modify: func(req *Request) { req.UserID = "" },
			err:    ErrUnauthorized,
		},
		{
			name:   "unknown-event",
			status: model.EventStatusOnSale,
			modify: func(req *Request) { req.EventID = 12 },
			err:    ErrEventNotFound,
		},
		{
			name:   "not-on-sale",
			status: model.EventStatusSoldOut,
			modify: func(req *Request) {},
			err:    ErrEventNotOnSale,
		},
		{
			name:   "ticket-of-other-event",
			status: model.EventStatusOnSale,
			modify: func(req *Request) { req.Tickets[0].TicketID = 99 },
			err:    pricing.ErrInvalidTicket,
		},
		{
			name:   "participant-count-mismatch",
			status: model.EventStatusOnSale,
			modify: func(req *Request) { req.Participants = req.Participants[:1] },
			err:    ErrInvalidRequest,
		},
		{
			name:   "participant-without-email",
			status: model.EventStatusOnSale,
			modify: func(req *Request) { req.Participants[1].Email = " " },
			err:    ErrInvalidRequest,
		},
		{
			name:   "capacity",
			status: model.EventStatusOnSale,
			sold:   99,
			modify: func(req *Request) {},
			err:    capacity.ErrCapacityExceeded,
		},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			s := newServiceTest()
			s.stubCatalog(e.status, 100, e.sold)

			req := newRequest()
			e.modify(&req)

			_, err := s.service.CreateIntent(context.Background(), req)
			assert.True(t, errors.Is(err, e.err), err)
			assert.Equal(t, 0, len(s.payments.CreateChargeCalls()))
		})
	}
}

func TestAssignParticipants(t *testing.T) {
	quote := pricing.Quote{
		Tickets: []pricing.TicketLine{
			{TicketID: 1, Quantity: 2},
			{TicketID: 3, Quantity: 1},
		},
	}

	result, err := assignParticipants(quote, []Participant{
		{Name: "A", Email: "a@example.com"},
		{TicketID: 3, Name: "B", Email: "b@example.com"},
		{Name: "C", Email: "c@example.com"},
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, []int64{1, 3, 1}, []int64{result[0].TicketID, result[1].TicketID, result[2].TicketID})

	_, err = assignParticipants(quote, []Participant{
		{TicketID: 3, Name: "A", Email: "a@example.com"},
		{TicketID: 3, Name: "B", Email: "b@example.com"},
		{Name: "C", Email: "c@example.com"},
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

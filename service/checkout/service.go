package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/otellib"
	"github.com/QuangTung97/event-checkout/pkg/payment"
	"github.com/QuangTung97/event-checkout/repository"
	"github.com/QuangTung97/event-checkout/service/capacity"
	"github.com/QuangTung97/event-checkout/service/pricing"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate moq -out checkout_mocks.go . IService
//go:generate otelwrap --out service_wrappers.go . IService

var (
	// ErrInvalidRequest ...
	ErrInvalidRequest = errors.New("invalid checkout request")

	// ErrUnauthorized when the caller identity is missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEventNotFound ...
	ErrEventNotFound = errors.New("event not found")

	// ErrEventNotOnSale ...
	ErrEventNotOnSale = errors.New("event is not on sale")
)

// Request for creating a checkout intent
type Request struct {
	EventID   int64
	UserID    string
	UserEmail string

	Tickets      []pricing.TicketSelection
	Participants []Participant
	Upsells      []pricing.UpsellSelection
	PromoCode    string
}

// Intent is the result returned to the client for completing the payment
type Intent struct {
	ProviderHandle string
	IntentID       string
	Quote          pricing.Quote
	AppliedPromo   string
}

// IService ...
type IService interface {
	CreateIntent(ctx context.Context, req Request) (Intent, error)
}

var _ IService = &Service{}

// Service builds checkout intents
type Service struct {
	provider  repository.Provider
	eventRepo repository.Event
	promoRepo repository.Promo

	catalog  *CatalogLoader
	guard    *capacity.Guard
	payments payment.Provider

	now            func() time.Time
	newIdempotency func() string
}

// NewService ...
func NewService(
	provider repository.Provider,
	eventRepo repository.Event,
	promoRepo repository.Promo,
	catalog *CatalogLoader,
	guard *capacity.Guard,
	payments payment.Provider,
) *Service {
	return &Service{
		provider:  provider,
		eventRepo: eventRepo,
		promoRepo: promoRepo,

		catalog:  catalog,
		guard:    guard,
		payments: payments,

		now:            time.Now,
		newIdempotency: func() string { return uuid.New().String() },
	}
}

func validateRequest(req Request) error {
	if req.EventID <= 0 {
		return fmt.Errorf("%w: event_id", ErrInvalidRequest)
	}
	if len(req.Tickets) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, pricing.ErrEmptySelection)
	}
	for _, t := range req.Tickets {
		if t.Quantity <= 0 {
			return fmt.Errorf("%w: %v", ErrInvalidRequest, pricing.ErrInvalidQuantity)
		}
	}
	for _, u := range req.Upsells {
		if u.Quantity <= 0 {
			return fmt.Errorf("%w: %v", ErrInvalidRequest, pricing.ErrInvalidQuantity)
		}
	}
	for i, p := range req.Participants {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Email) == "" {
			return fmt.Errorf("%w: participant %d needs name and email", ErrInvalidRequest, i)
		}
	}
	return nil
}

// assignParticipants fills missing ticket ids in quote order and checks the counts per ticket
func assignParticipants(quote pricing.Quote, participants []Participant) ([]Participant, error) {
	if int64(len(participants)) != quote.TicketQuantity() {
		return nil, fmt.Errorf("%w: expected %d participants, got %d",
			ErrInvalidRequest, quote.TicketQuantity(), len(participants))
	}

	remaining := map[int64]int64{}
	for _, line := range quote.Tickets {
		remaining[line.TicketID] = line.Quantity
	}

	result := make([]Participant, len(participants))
	copy(result, participants)

	for i := range result {
		id := result[i].TicketID
		if id == 0 {
			continue
		}
		if remaining[id] <= 0 {
			return nil, fmt.Errorf("%w: too many participants for ticket %d", ErrInvalidRequest, id)
		}
		remaining[id]--
	}

	for i := range result {
		if result[i].TicketID != 0 {
			continue
		}
		for _, line := range quote.Tickets {
			if remaining[line.TicketID] > 0 {
				result[i].TicketID = line.TicketID
				remaining[line.TicketID]--
				break
			}
		}
	}

	for i := range result {
		result[i].Name = strings.TrimSpace(result[i].Name)
		result[i].Email = strings.TrimSpace(result[i].Email)
	}
	return result, nil
}

func (s *Service) findPromo(ctx context.Context, code string) (*model.PromoCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	promo, err := s.promoRepo.FindPromoCode(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", pricing.ErrInvalidPromoCode, code)
	}
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

// CreateIntent prices the selection and opens a provider charge carrying the snapshot
func (s *Service) CreateIntent(ctx context.Context, req Request) (Intent, error) {
	if err := validateRequest(req); err != nil {
		return Intent{}, err
	}
	if strings.TrimSpace(req.UserID) == "" {
		return Intent{}, ErrUnauthorized
	}

	ctx = s.provider.Readonly(ctx)

	event, err := s.eventRepo.GetEvent(ctx, req.EventID)
	if errors.Is(err, repository.ErrNotFound) {
		return Intent{}, ErrEventNotFound
	}
	if err != nil {
		return Intent{}, err
	}
	if event.Status != model.EventStatusOnSale {
		return Intent{}, fmt.Errorf("%w: status %s", ErrEventNotOnSale, event.Status)
	}

	catalog, err := s.catalog.Load(ctx, event.ID, req.Upsells)
	if err != nil {
		return Intent{}, err
	}

	promo, err := s.findPromo(ctx, req.PromoCode)
	if err != nil {
		return Intent{}, err
	}

	quote, err := pricing.Resolve(pricing.Input{
		Catalog: catalog,
		Tickets: req.Tickets,
		Upsells: req.Upsells,
		Promo:   promo,
		At:      s.now(),
	})
	if err != nil {
		return Intent{}, err
	}

	participants, err := assignParticipants(quote, req.Participants)
	if err != nil {
		return Intent{}, err
	}

	_, err = s.guard.Check(ctx, event, quote.TicketQuantity())
	if err != nil {
		return Intent{}, err
	}

	snapshot := NewSnapshot(req.UserID, req.UserEmail, quote, participants)
	metadata, err := snapshot.EncodeMetadata()
	if err != nil {
		return Intent{}, err
	}

	charge, err := s.payments.CreateCharge(ctx, payment.ChargeRequest{
		Amount:         quote.Total.Amount,
		Currency:       quote.Total.Currency,
		Description:    event.Name,
		ReceiptEmail:   req.UserEmail,
		IdempotencyKey: s.newIdempotency(),
		Metadata:       metadata,
	})
	if err != nil {
		return Intent{}, fmt.Errorf("create charge: %w", err)
	}

	otellib.Extract(ctx).Info("checkout intent created",
		zap.Int64("event_id", event.ID),
		zap.String("user_id", req.UserID),
		zap.String("charge_id", charge.ID),
		zap.Int64("total", quote.Total.Amount),
	)

	return Intent{
		ProviderHandle: charge.ClientSecret,
		IntentID:       charge.ID,
		Quote:          quote,
		AppliedPromo:   quote.PromoCode,
	}, nil
}

package reconcile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/QuangTung97/event-checkout/config"
	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/otellib"
	"github.com/QuangTung97/event-checkout/pkg/payment"
	"github.com/QuangTung97/event-checkout/repository"
	"github.com/QuangTung97/event-checkout/service/checkout"
	"github.com/QuangTung97/event-checkout/service/notify"
	"github.com/QuangTung97/event-checkout/service/token"
	"go.uber.org/zap"
)

//go:generate moq -out reconcile_mocks.go . IService SummaryCache Notifier
//go:generate otelwrap --out service_wrappers.go . IService

var (
	// ErrInvalidRequest ...
	ErrInvalidRequest = errors.New("invalid reconcile request")

	// ErrPaymentNotConfirmed when the provider does not report the charge as succeeded
	ErrPaymentNotConfirmed = errors.New("payment not confirmed")

	// ErrConflict when the charge does not agree with its snapshot or the request
	ErrConflict = errors.New("reconcile conflict")

	// ErrUnknownCharge when the charge carries no checkout snapshot, e.g. it was created elsewhere
	ErrUnknownCharge = fmt.Errorf("%w: charge has no checkout snapshot", ErrConflict)

	// ErrUnauthorized when the caller is not the buyer of the charge
	ErrUnauthorized = errors.New("unauthorized")
)

// Signature is a legal acceptance submitted together with the payment confirmation
type Signature struct {
	RegulationVersion string          `json:"regulation_version"`
	Data              json.RawMessage `json:"data"`
	Disclaimer        string          `json:"disclaimer,omitempty"`
}

// Request ...
type Request struct {
	ChargeID string

	// EventID and UserID are checked against the charge when not empty
	EventID int64
	UserID  string

	Signature *Signature
}

// Summary of a reconciled order
type Summary struct {
	Order         model.Order          `json:"order"`
	Registrations []model.Registration `json:"registrations"`
}

// Result ...
type Result struct {
	State   State
	Summary Summary
}

// SummaryCache keeps summaries of reconciled charges, misses are not errors
type SummaryCache interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte, ttl time.Duration) error
}

// Notifier sends ticket confirmations
type Notifier interface {
	SendConfirmations(ctx context.Context, event model.Event, regs []model.Registration) notify.Counts
}

// Repositories used by reconciliation
type Repositories struct {
	Event        repository.Event
	Order        repository.Order
	Registration repository.Registration
	Promo        repository.Promo
}

// IService ...
type IService interface {
	Reconcile(ctx context.Context, req Request) (Result, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (Result, error)
}

var _ IService = &Service{}

// Service converts a confirmed charge into exactly one order and its registrations
type Service struct {
	provider repository.Provider
	repos    Repositories

	payments payment.Provider
	webhooks payment.WebhookParser
	issuer   *token.Issuer
	notifier Notifier
	cache    SummaryCache

	conf config.ReconcileConfig

	now   func() time.Time
	async func(fn func())

	pending sync.WaitGroup
}

// NewService cache can be nil
func NewService(
	provider repository.Provider,
	repos Repositories,
	payments payment.Provider,
	webhooks payment.WebhookParser,
	issuer *token.Issuer,
	notifier Notifier,
	cache SummaryCache,
	conf config.ReconcileConfig,
) *Service {
	s := &Service{
		provider: provider,
		repos:    repos,

		payments: payments,
		webhooks: webhooks,
		issuer:   issuer,
		notifier: notifier,
		cache:    cache,

		conf: conf,

		now: time.Now,
	}
	s.async = s.runBackground
	return s
}

func (s *Service) runBackground(fn func()) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		fn()
	}()
}

// Wait blocks until queued confirmations have finished or ctx is done
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func summaryKey(chargeID string) string {
	return "reconcile:summary:" + chargeID
}

func (s *Service) getCachedSummary(ctx context.Context, chargeID string) (Summary, bool) {
	if s.cache == nil {
		return Summary{}, false
	}

	data, found, err := s.cache.Get(summaryKey(chargeID))
	if err != nil {
		otellib.Extract(ctx).Warn("get summary cache", zap.Error(err))
		return Summary{}, false
	}
	if !found {
		return Summary{}, false
	}

	var summary Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return Summary{}, false
	}
	return summary, true
}

func (s *Service) setCachedSummary(ctx context.Context, summary Summary) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	err = s.cache.Set(summaryKey(summary.Order.ProviderChargeID), data, s.conf.SummaryTTL)
	if err != nil {
		otellib.Extract(ctx).Warn("set summary cache", zap.Error(err))
	}
}

func checkCaller(req Request, eventID int64, userID string) error {
	if req.UserID != "" && req.UserID != userID {
		return ErrUnauthorized
	}
	if req.EventID != 0 && req.EventID != eventID {
		return fmt.Errorf("%w: charge belongs to event %d", ErrConflict, eventID)
	}
	return nil
}

func (s *Service) findExisting(ctx context.Context, chargeID string) (Summary, bool, error) {
	order, err := s.repos.Order.GetOrderByChargeID(ctx, chargeID)
	if errors.Is(err, repository.ErrNotFound) {
		return Summary{}, false, nil
	}
	if err != nil {
		return Summary{}, false, err
	}

	regs, err := s.repos.Registration.GetRegistrationsByOrder(ctx, order.ID)
	if err != nil {
		return Summary{}, false, err
	}
	return Summary{Order: order, Registrations: regs}, true, nil
}

func (s *Service) alreadyReconciled(ctx context.Context, summary Summary) Result {
	reconcileCounter.WithLabelValues(StateAlreadyReconciled.String()).Inc()
	otellib.Extract(ctx).Info("charge already reconciled",
		zap.Int64("order_id", summary.Order.ID),
		zap.String("state", StateAlreadyReconciled.String()),
	)
	return Result{State: StateAlreadyReconciled, Summary: summary}
}

func validateSnapshot(charge payment.Charge, snapshot checkout.Snapshot) error {
	if charge.Amount != snapshot.Total || !strings.EqualFold(charge.Currency, snapshot.Currency) {
		return fmt.Errorf("%w: charge %d %s does not match snapshot %d %s",
			ErrConflict, charge.Amount, charge.Currency, snapshot.Total, snapshot.Currency)
	}

	var count int64
	for _, t := range snapshot.Tickets {
		count += t.Quantity
	}
	if count != int64(len(snapshot.Participants)) {
		return fmt.Errorf("%w: %d participants for %d tickets", ErrConflict, len(snapshot.Participants), count)
	}

	for _, p := range snapshot.Participants {
		if _, ok := snapshot.TicketByID(p.TicketID); !ok {
			return fmt.Errorf("%w: participant ticket %d not in snapshot", ErrConflict, p.TicketID)
		}
	}
	return nil
}

// Reconcile is safe to call any number of times for the same charge
func (s *Service) Reconcile(ctx context.Context, req Request) (Result, error) {
	req.ChargeID = strings.TrimSpace(req.ChargeID)
	if req.ChargeID == "" {
		return Result{}, ErrInvalidRequest
	}

	logger := otellib.Extract(ctx).With(zap.String("charge_id", req.ChargeID))

	if summary, ok := s.getCachedSummary(ctx, req.ChargeID); ok {
		if err := checkCaller(req, summary.Order.EventID, summary.Order.UserID); err != nil {
			return Result{}, err
		}
		return s.alreadyReconciled(ctx, summary), nil
	}

	charge, err := s.payments.RetrieveCharge(ctx, req.ChargeID)
	if err != nil {
		return Result{}, err
	}
	if charge.Status != payment.ChargeStatusSucceeded {
		reconcileCounter.WithLabelValues(StateRejected.String()).Inc()
		logger.Warn("charge not confirmed", zap.String("state", StateRejected.String()))
		return Result{State: StateRejected}, ErrPaymentNotConfirmed
	}

	tracker := &stateTracker{logger: logger}
	tracker.enter(StateChargeConfirmed)

	snapshot, err := checkout.DecodeMetadata(charge.Metadata)
	if err != nil {
		return Result{State: tracker.state}, fmt.Errorf("%w: %v", ErrUnknownCharge, err)
	}
	if err := validateSnapshot(charge, snapshot); err != nil {
		return Result{State: tracker.state}, err
	}
	if err := checkCaller(req, snapshot.EventID, snapshot.UserID); err != nil {
		return Result{State: tracker.state}, err
	}

	readCtx := s.provider.Readonly(ctx)

	existing, found, err := s.findExisting(readCtx, charge.ID)
	if err != nil {
		return Result{State: tracker.state}, err
	}
	if found {
		s.setCachedSummary(ctx, existing)
		return s.alreadyReconciled(ctx, existing), nil
	}

	event, err := s.repos.Event.GetEvent(readCtx, snapshot.EventID)
	if err != nil {
		return Result{State: tracker.state}, fmt.Errorf("get event %d: %w", snapshot.EventID, err)
	}

	var summary Summary
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		summary, err = s.write(ctx, tracker, charge, snapshot, event, req.Signature)
		return err
	})
	if errors.Is(err, repository.ErrDuplicate) {
		existing, found, findErr := s.findExisting(s.provider.Readonly(ctx), charge.ID)
		if findErr != nil {
			return Result{State: tracker.state}, findErr
		}
		if found {
			s.setCachedSummary(ctx, existing)
			return s.alreadyReconciled(ctx, existing), nil
		}
	}
	if err != nil {
		logger.Error("reconcile failed", zap.String("state", tracker.state.String()), zap.Error(err))
		return Result{State: tracker.state}, err
	}

	s.setCachedSummary(ctx, summary)

	tracker.enter(StateNotificationsQueued)
	s.queueNotifications(ctx, event, summary.Registrations)

	tracker.enter(StateDone)
	reconcileCounter.WithLabelValues(StateDone.String()).Inc()
	logger.Info("charge reconciled",
		zap.Int64("order_id", summary.Order.ID),
		zap.Int("registrations", len(summary.Registrations)),
		zap.String("state", StateDone.String()),
	)
	return Result{State: StateDone, Summary: summary}, nil
}

func (s *Service) write(
	ctx context.Context, tracker *stateTracker,
	charge payment.Charge, snapshot checkout.Snapshot, event model.Event, sig *Signature,
) (Summary, error) {
	if s.conf.StrictLocking {
		if err := s.repos.Event.LockEvent(ctx, event.ID); err != nil {
			return Summary{}, err
		}
	}

	now := s.now().UTC()

	tracker.enter(StateOrderCreating)
	order := model.Order{
		UserID:           snapshot.UserID,
		EventID:          snapshot.EventID,
		Amount:           charge.Amount,
		Currency:         snapshot.Currency,
		ProviderChargeID: charge.ID,
		Discount:         snapshot.Discount,
		Status:           model.OrderStatusPaid,
		CreatedAt:        now,
	}
	if snapshot.PromoCode != "" {
		order.PromoCode = sql.NullString{String: snapshot.PromoCode, Valid: true}
	}

	orderID, err := s.repos.Order.InsertOrder(ctx, order)
	if err != nil {
		return Summary{}, err
	}
	order.ID = orderID

	tracker.enter(StateRegistrationsCreating)
	regs := make([]model.Registration, 0, len(snapshot.Participants))
	for _, p := range snapshot.Participants {
		ticket, _ := snapshot.TicketByID(p.TicketID)
		tokens := s.issuer.Issue()

		reg := model.Registration{
			OrderID:          order.ID,
			TicketID:         p.TicketID,
			EventID:          snapshot.EventID,
			UserID:           snapshot.UserID,
			ParticipantName:  p.Name,
			ParticipantEmail: p.Email,
			ClaimStatus:      model.ClaimStatusPending,
			ApprovalStatus:   model.InitialApprovalStatus(ticket.RequiresDocument),
			CheckInToken:     tokens.CheckIn,
			TransferToken:    tokens.Transfer,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if p.Document != nil {
			reg.DocumentName = sql.NullString{String: p.Document.Name, Valid: true}
			reg.DocumentType = sql.NullString{String: p.Document.Type, Valid: true}
		}

		reg.ID, err = s.repos.Registration.InsertRegistration(ctx, reg)
		if err != nil {
			return Summary{}, err
		}
		regs = append(regs, reg)
	}

	tracker.enter(StateSideEffectsCreating)
	if err := s.writeSideEffects(ctx, regs, snapshot, event, sig, now); err != nil {
		return Summary{}, err
	}

	// tokens are written together with their registration rows
	tracker.enter(StateTokensIssuing)

	return Summary{Order: order, Registrations: regs}, nil
}

func (s *Service) writeSideEffects(
	ctx context.Context, regs []model.Registration,
	snapshot checkout.Snapshot, event model.Event, sig *Signature, now time.Time,
) error {
	if len(regs) == 0 {
		return nil
	}
	first := regs[0]

	if sig != nil {
		payload, err := json.Marshal(sig)
		if err != nil {
			return err
		}
		err = s.repos.Registration.InsertSignature(ctx, model.RegistrationSignature{
			RegistrationID:    first.ID,
			RegulationVersion: sig.RegulationVersion,
			SignedAt:          now,
			Payload:           payload,
			CreatedAt:         now,
		})
		if err != nil {
			return err
		}
	}

	for _, u := range snapshot.Upsells {
		err := s.repos.Registration.InsertRegistrationUpsell(ctx, model.RegistrationUpsell{
			RegistrationID: first.ID,
			UpsellID:       u.UpsellID,
			Quantity:       u.Quantity,
			UnitPrice:      u.UnitPrice,
			Currency:       snapshot.Currency,
			CreatedAt:      now,
		})
		if err != nil {
			return err
		}
	}

	if err := s.incrementPromoUsage(ctx, snapshot.PromoCode); err != nil {
		return err
	}

	return s.updateEventCapacity(ctx, event)
}

// incrementPromoUsage is a read then write, concurrent orders can lose an increment without strict locking
func (s *Service) incrementPromoUsage(ctx context.Context, code string) error {
	if code == "" {
		return nil
	}

	promo, err := s.repos.Promo.FindPromoCode(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		otellib.Extract(ctx).Warn("promo code of reconciled order not found", zap.String("promo_code", code))
		return nil
	}
	if err != nil {
		return err
	}

	if s.conf.StrictLocking {
		if err := s.repos.Promo.LockPromoCode(ctx, promo.ID); err != nil {
			return err
		}
		promo, err = s.repos.Promo.FindPromoCode(ctx, code)
		if err != nil {
			return err
		}
	}

	return s.repos.Promo.UpdatePromoUsedCount(ctx, promo.ID, promo.UsedCount+1)
}

// updateEventCapacity accepts over subscription, it is only reported
func (s *Service) updateEventCapacity(ctx context.Context, event model.Event) error {
	count, err := s.repos.Registration.CountRegistrationsByEvent(ctx, event.ID)
	if err != nil {
		return err
	}

	if count > event.Capacity {
		oversubscribedCounter.Inc()
		otellib.Extract(ctx).Warn("event over subscribed",
			zap.Int64("event_id", event.ID),
			zap.Int64("capacity", event.Capacity),
			zap.Int64("registrations", count),
		)
	}

	if count >= event.Capacity && event.Status == model.EventStatusOnSale {
		return s.repos.Event.MarkEventSoldOut(ctx, event.ID)
	}
	return nil
}

func (s *Service) queueNotifications(ctx context.Context, event model.Event, regs []model.Registration) {
	if s.notifier == nil || len(regs) == 0 {
		return
	}

	logger := otellib.Extract(ctx)
	bgCtx := otellib.ToContext(context.Background(), logger)

	s.async(func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("send confirmations panic", zap.Any("panic", r))
			}
		}()

		counts := s.notifier.SendConfirmations(bgCtx, event, regs)
		if counts.Failed > 0 {
			logger.Warn("some ticket confirmations failed", zap.Int("failed", counts.Failed))
		}
	})
}

// HandleWebhook reconciles a charge reported by a verified provider webhook
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) (Result, error) {
	charge, err := s.webhooks.ParseWebhook(payload, signature)
	if err != nil {
		return Result{}, err
	}
	return s.Reconcile(ctx, Request{ChargeID: charge.ID})
}

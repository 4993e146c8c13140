package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/QuangTung97/event-checkout/config"
	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/payment"
	"github.com/QuangTung97/event-checkout/repository"
	"github.com/QuangTung97/event-checkout/service/checkout"
	"github.com/QuangTung97/event-checkout/service/notify"
	"github.com/QuangTung97/event-checkout/service/pricing"
	"github.com/QuangTung97/event-checkout/service/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in memory version of the tables touched by reconciliation
type memStore struct {
	mut sync.Mutex

	event      model.Event
	orders     map[string]model.Order
	regs       []model.Registration
	signatures []model.RegistrationSignature
	upsells    []model.RegistrationUpsell
	promo      model.PromoCode
}

type reconcileTest struct {
	store *memStore

	provider  *repository.ProviderMock
	eventRepo *repository.EventMock
	orderRepo *repository.OrderMock
	regRepo   *repository.RegistrationMock
	promoRepo *repository.PromoMock

	payments *payment.ProviderMock
	webhooks *payment.WebhookParserMock
	notifier *NotifierMock

	charges map[string]payment.Charge

	conf    config.ReconcileConfig
	service *Service
}

func newReconcileTest(capacity int64) *reconcileTest {
	store := &memStore{
		event: model.Event{
			ID: 11, Name: "Go Conference", Capacity: capacity, Status: model.EventStatusOnSale,
		},
		orders: map[string]model.Order{},
		promo: model.PromoCode{
			ID: 7, Code: "SPRING10", Status: model.PromoCodeStatusActive, UsedCount: 4,
		},
	}

	r := &reconcileTest{
		store:   store,
		charges: map[string]payment.Charge{},
		conf:    config.ReconcileConfig{SummaryTTL: time.Hour},
	}

	r.provider = &repository.ProviderMock{
		ReadonlyFunc: func(ctx context.Context) context.Context { return ctx },
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			store.mut.Lock()
			orders := map[string]model.Order{}
			for k, v := range store.orders {
				orders[k] = v
			}
			regs := append([]model.Registration(nil), store.regs...)
			signatures := append([]model.RegistrationSignature(nil), store.signatures...)
			upsells := append([]model.RegistrationUpsell(nil), store.upsells...)
			event := store.event
			promo := store.promo
			store.mut.Unlock()

			err := fn(ctx)
			if err != nil {
				store.mut.Lock()
				store.orders = orders
				store.regs = regs
				store.signatures = signatures
				store.upsells = upsells
				store.event = event
				store.promo = promo
				store.mut.Unlock()
			}
			return err
		},
	}

	r.eventRepo = &repository.EventMock{
		GetEventFunc: func(ctx context.Context, eventID int64) (model.Event, error) {
			store.mut.Lock()
			defer store.mut.Unlock()
			if eventID != store.event.ID {
				return model.Event{}, repository.ErrNotFound
			}
			return store.event, nil
		},
		LockEventFunc: func(ctx context.Context, eventID int64) error {
			return nil
		},
		MarkEventSoldOutFunc: func(ctx context.Context, eventID int64) error {
			store.mut.Lock()
			defer store.mut.Unlock()
			store.event.Status = model.EventStatusSoldOut
			return nil
		},
	}

	r.orderRepo = &repository.OrderMock{
		GetOrderByChargeIDFunc: func(ctx context.Context, chargeID string) (model.Order, error) {
			store.mut.Lock()
			defer store.mut.Unlock()
			order, ok := store.orders[chargeID]
			if !ok {
				return model.Order{}, repository.ErrNotFound
			}
			return order, nil
		},
		InsertOrderFunc: func(ctx context.Context, order model.Order) (int64, error) {
			store.mut.Lock()
			defer store.mut.Unlock()
			if _, existed := store.orders[order.ProviderChargeID]; existed {
				return 0, repository.ErrDuplicate
			}
			order.ID = int64(100 + len(store.orders))
			store.orders[order.ProviderChargeID] = order
			return order.ID, nil
		},
	}

	r.regRepo = &repository.RegistrationMock{
		CountRegistrationsByEventFunc: func(ctx context.Context, eventID int64) (int64, error) {
			store.mut.Lock()
			defer store.mut.Unlock()
			return int64(len(store.regs)), nil
		},
		GetRegistrationsByOrderFunc: func(ctx context.Context, orderID int64) ([]model.Registration, error) {
			store.mut.Lock()
			defer store.mut.Unlock()
			var result []model.Registration
			for _, reg := range store.regs {
				if reg.OrderID == orderID {
					result = append(result, reg)
				}
			}
			return result, nil
		},
		InsertRegistrationFunc: func(ctx context.Context, reg model.Registration) (int64, error) {
			store.mut.Lock()
			defer store.mut.Unlock()
			reg.ID = int64(200 + len(store.regs))
			store.regs = append(store.regs, reg)
			return reg.ID, nil
		},
		InsertSignatureFunc: func(ctx context.Context, sig model.RegistrationSignature) error {
			store.mut.Lock()
			defer store.mut.Unlock()
			store.signatures = append(store.signatures, sig)
			return nil
		},
		InsertRegistrationUpsellFunc: func(ctx context.Context, item model.RegistrationUpsell) error {
			store.mut.Lock()
			defer store.mut.Unlock()
			store.upsells = append(store.upsells, item)
			return nil
		},
	}

	r.promoRepo = &repository.PromoMock{
		FindPromoCodeFunc: func(ctx context.Context, code string) (model.PromoCode, error) {
			store.mut.Lock()
			defer store.mut.Unlock()
			if code != store.promo.Code {
				return model.PromoCode{}, repository.ErrNotFound
			}
			return store.promo, nil
		},
		LockPromoCodeFunc: func(ctx context.Context, promoID int64) error {
			return nil
		},
		UpdatePromoUsedCountFunc: func(ctx context.Context, promoID int64, usedCount int64) error {
			store.mut.Lock()
			defer store.mut.Unlock()
			store.promo.UsedCount = usedCount
			return nil
		},
	}

	r.payments = &payment.ProviderMock{
		RetrieveChargeFunc: func(ctx context.Context, chargeID string) (payment.Charge, error) {
			charge, ok := r.charges[chargeID]
			if !ok {
				return payment.Charge{}, payment.ErrChargeNotFound
			}
			return charge, nil
		},
	}
	r.webhooks = &payment.WebhookParserMock{}
	r.notifier = &NotifierMock{
		SendConfirmationsFunc: func(ctx context.Context, event model.Event, regs []model.Registration) notify.Counts {
			return notify.Counts{Sent: len(regs)}
		},
	}

	r.newService()
	return r
}

func (r *reconcileTest) newService() {
	r.service = NewService(
		r.provider,
		Repositories{
			Event:        r.eventRepo,
			Order:        r.orderRepo,
			Registration: r.regRepo,
			Promo:        r.promoRepo,
		},
		r.payments, r.webhooks, token.NewIssuer(), r.notifier, nil, r.conf,
	)
	r.service.now = func() time.Time {
		return time.Date(2022, 7, 2, 10, 0, 0, 0, time.UTC)
	}
	r.service.async = func(fn func()) { fn() }
}

type chargeOptions struct {
	status     payment.ChargeStatus
	amount     int64
	promo      string
	withUpsell bool
}

func (r *reconcileTest) addCharge(t *testing.T, chargeID string, opts chargeOptions) checkout.Snapshot {
	quote := pricing.Quote{
		EventID:  11,
		Currency: "usd",
		Tickets: []pricing.TicketLine{
			{TicketID: 1, Quantity: 1, UnitPrice: model.NewMoney(2000, "usd")},
			{TicketID: 3, Quantity: 1, UnitPrice: model.NewMoney(1000, "usd"), RequiresDocument: true},
		},
		TicketSubtotal: model.NewMoney(3000, "usd"),
		UpsellSubtotal: model.NewMoney(0, "usd"),
		Discount:       model.NewMoney(0, "usd"),
		Total:          model.NewMoney(3000, "usd"),
		PricedAt:       time.Date(2022, 7, 1, 10, 0, 0, 0, time.UTC),
	}
	if opts.withUpsell {
		quote.Upsells = []pricing.UpsellLine{
			{UpsellID: 5, Quantity: 2, UnitPrice: model.NewMoney(500, "usd")},
		}
		quote.UpsellSubtotal = model.NewMoney(1000, "usd")
		quote.Total = model.NewMoney(4000, "usd")
	}
	if opts.promo != "" {
		quote.PromoCode = opts.promo
		quote.Discount = model.NewMoney(300, "usd")
		quote.Total.Amount -= 300
	}

	snapshot := checkout.NewSnapshot("user-1", "alice@example.com", quote, []checkout.Participant{
		{TicketID: 1, Name: "Alice", Email: "alice@example.com"},
		{TicketID: 3, Name: "Bob", Email: "bob@example.com", Document: &checkout.Document{Name: "card.png", Type: "image/png"}},
	})
	metadata, err := snapshot.EncodeMetadata()
	require.Equal(t, nil, err)

	status := opts.status
	if status == 0 {
		status = payment.ChargeStatusSucceeded
	}
	amount := opts.amount
	if amount == 0 {
		amount = quote.Total.Amount
	}

	r.charges[chargeID] = payment.Charge{
		ID:       chargeID,
		Amount:   amount,
		Currency: "usd",
		Status:   status,
		Metadata: metadata,
	}
	return snapshot
}

func TestReconcile__Success(t *testing.T) {
	r := newReconcileTest(100)
	r.addCharge(t, "pi_001", chargeOptions{promo: "SPRING10", withUpsell: true})

	result, err := r.service.Reconcile(context.Background(), Request{
		ChargeID: "pi_001",
		EventID:  11,
		UserID:   "user-1",
		Signature: &Signature{
			RegulationVersion: "2022-06",
			Data:              json.RawMessage(`{"accepted":true}`),
			Disclaimer:        "I accept the event rules",
		},
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, StateDone, result.State)

	order := result.Summary.Order
	assert.Equal(t, int64(100), order.ID)
	assert.Equal(t, int64(3700), order.Amount)
	assert.Equal(t, "usd", order.Currency)
	assert.Equal(t, "pi_001", order.ProviderChargeID)
	assert.Equal(t, "SPRING10", order.PromoCode.String)
	assert.Equal(t, int64(300), order.Discount)
	assert.Equal(t, model.OrderStatusPaid, order.Status)

	regs := result.Summary.Registrations
	require.Equal(t, 2, len(regs))
	assert.Equal(t, "Alice", regs[0].ParticipantName)
	assert.Equal(t, model.ApprovalStatusApproved, regs[0].ApprovalStatus)
	assert.Equal(t, "Bob", regs[1].ParticipantName)
	assert.Equal(t, model.ApprovalStatusPending, regs[1].ApprovalStatus)
	assert.Equal(t, "card.png", regs[1].DocumentName.String)

	tokens := map[string]struct{}{}
	for _, reg := range regs {
		assert.Equal(t, model.ClaimStatusPending, reg.ClaimStatus)
		assert.Equal(t, 32, len(reg.CheckInToken))
		tokens[reg.CheckInToken] = struct{}{}
		tokens[reg.TransferToken] = struct{}{}
	}
	assert.Equal(t, 4, len(tokens))

	// one signature and the upsells, anchored to the first registration
	require.Equal(t, 1, len(r.store.signatures))
	assert.Equal(t, regs[0].ID, r.store.signatures[0].RegistrationID)
	assert.Equal(t, "2022-06", r.store.signatures[0].RegulationVersion)
	assert.JSONEq(t,
		`{"regulation_version":"2022-06","data":{"accepted":true},"disclaimer":"I accept the event rules"}`,
		string(r.store.signatures[0].Payload))

	assert.Equal(t, []model.RegistrationUpsell{
		{
			RegistrationID: regs[0].ID,
			UpsellID:       5,
			Quantity:       2,
			UnitPrice:      500,
			Currency:       "usd",
			CreatedAt:      time.Date(2022, 7, 2, 10, 0, 0, 0, time.UTC),
		},
	}, r.store.upsells)

	assert.Equal(t, int64(5), r.store.promo.UsedCount)
	assert.Equal(t, model.EventStatusOnSale, r.store.event.Status)

	calls := r.notifier.SendConfirmationsCalls()
	require.Equal(t, 1, len(calls))
	assert.Equal(t, regs, calls[0].Regs)
	assert.Equal(t, int64(11), calls[0].Event.ID)

	assert.Equal(t, 0, len(r.eventRepo.LockEventCalls()))
	assert.Equal(t, 0, len(r.promoRepo.LockPromoCodeCalls()))
}

func TestReconcile__Twice_Same_Order(t *testing.T) {
	r := newReconcileTest(100)
	r.addCharge(t, "pi_001", chargeOptions{promo: "SPRING10"})

	first, err := r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001"})
	assert.Equal(t, nil, err)
	assert.Equal(t, StateDone, first.State)

	second, err := r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001", UserID: "user-1"})
	assert.Equal(t, nil, err)
	assert.Equal(t, StateAlreadyReconciled, second.State)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, 1, len(r.store.orders))
	assert.Equal(t, 2, len(r.store.regs))
	assert.Equal(t, 1, len(r.orderRepo.InsertOrderCalls()))
	assert.Equal(t, int64(5), r.store.promo.UsedCount)
	assert.Equal(t, 1, len(r.notifier.SendConfirmationsCalls()))
}

func TestReconcile__Concurrent_Winner_Resolves_To_Already_Reconciled(t *testing.T) {
	r := newReconcileTest(100)
	r.addCharge(t, "pi_001", chargeOptions{})

	winner := model.Order{ID: 55, ProviderChargeID: "pi_001", EventID: 11, UserID: "user-1"}
	lookups := 0
	r.orderRepo.GetOrderByChargeIDFunc = func(ctx context.Context, chargeID string) (model.Order, error) {
		lookups++
		if lookups == 1 {
			return model.Order{}, repository.ErrNotFound
		}
		return winner, nil
	}
	r.orderRepo.InsertOrderFunc = func(ctx context.Context, order model.Order) (int64, error) {
		return 0, repository.ErrDuplicate
	}
	r.regRepo.GetRegistrationsByOrderFunc = func(ctx context.Context, orderID int64) ([]model.Registration, error) {
		return []model.Registration{{ID: 300, OrderID: 55}}, nil
	}

	result, err := r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001"})
	assert.Equal(t, nil, err)
	assert.Equal(t, StateAlreadyReconciled, result.State)
	assert.Equal(t, winner, result.Summary.Order)
	assert.Equal(t, 0, len(r.regRepo.InsertRegistrationCalls()))
	assert.Equal(t, 0, len(r.notifier.SendConfirmationsCalls()))
}

func TestReconcile__Partial_Failure_Rolls_Back(t *testing.T) {
	r := newReconcileTest(100)
	r.addCharge(t, "pi_001", chargeOptions{})

	dbErr := errors.New("connection reset")
	inserted := 0
	r.regRepo.InsertRegistrationFunc = func(ctx context.Context, reg model.Registration) (int64, error) {
		inserted++
		if inserted == 2 {
			return 0, dbErr
		}
		r.store.regs = append(r.store.regs, reg)
		return int64(inserted), nil
	}

	result, err := r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001"})
	assert.Equal(t, dbErr, err)
	assert.Equal(t, StateRegistrationsCreating, result.State)
	assert.Equal(t, 0, len(r.store.orders))
	assert.Equal(t, 0, len(r.store.regs))

	// a retry is not short circuited by a half written order
	r.regRepo.InsertRegistrationFunc = func(ctx context.Context, reg model.Registration) (int64, error) {
		r.store.regs = append(r.store.regs, reg)
		return int64(len(r.store.regs)), nil
	}
	result, err = r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001"})
	assert.Equal(t, nil, err)
	assert.Equal(t, StateDone, result.State)
	assert.Equal(t, 2, len(r.store.regs))
}

func TestReconcile__Charge_Not_Confirmed(t *testing.T) {
	r := newReconcileTest(100)
	r.addCharge(t, "pi_001", chargeOptions{status: payment.ChargeStatusPending})

	result, err := r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001"})
	assert.Equal(t, ErrPaymentNotConfirmed, err)
	assert.Equal(t, StateRejected, result.State)
	assert.Equal(t, 0, len(r.orderRepo.GetOrderByChargeIDCalls()))
	assert.Equal(t, 0, len(r.provider.TransactCalls()))
}

func TestReconcile__Validation_Errors(t *testing.T) {
	r := newReconcileTest(100)
	r.addCharge(t, "pi_001", chargeOptions{})
	r.addCharge(t, "pi_002", chargeOptions{amount: 1})
	r.charges["pi_003"] = payment.Charge{ID: "pi_003", Status: payment.ChargeStatusSucceeded}

	_, err := r.service.Reconcile(context.Background(), Request{ChargeID: " "})
	assert.Equal(t, ErrInvalidRequest, err)

	_, err = r.service.Reconcile(context.Background(), Request{ChargeID: "pi_404"})
	assert.Equal(t, payment.ErrChargeNotFound, err)

	_, err = r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001", UserID: "user-2"})
	assert.Equal(t, ErrUnauthorized, err)

	_, err = r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001", EventID: 12})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = r.service.Reconcile(context.Background(), Request{ChargeID: "pi_002"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = r.service.Reconcile(context.Background(), Request{ChargeID: "pi_003"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, ErrUnknownCharge)

	_, err = r.service.Reconcile(context.Background(), Request{ChargeID: "pi_002"})
	assert.False(t, errors.Is(err, ErrUnknownCharge))

	assert.Equal(t, 0, len(r.provider.TransactCalls()))
}

func TestReconcile__Over_Subscription_Accepted(t *testing.T) {
	r := newReconcileTest(3)
	r.addCharge(t, "pi_001", chargeOptions{})
	r.addCharge(t, "pi_002", chargeOptions{})

	// neither order is written until both reconciliations have read the event
	var arrived sync.WaitGroup
	arrived.Add(2)
	insertOrder := r.orderRepo.InsertOrderFunc
	r.orderRepo.InsertOrderFunc = func(ctx context.Context, order model.Order) (int64, error) {
		arrived.Done()
		arrived.Wait()
		return insertOrder(ctx, order)
	}

	var wg sync.WaitGroup
	results := make([]Result, 2)
	errs := make([]error, 2)
	for i, chargeID := range []string{"pi_001", "pi_002"} {
		wg.Add(1)
		go func(i int, chargeID string) {
			defer wg.Done()
			results[i], errs[i] = r.service.Reconcile(context.Background(), Request{ChargeID: chargeID})
		}(i, chargeID)
	}
	wg.Wait()

	for i := range results {
		assert.Equal(t, nil, errs[i])
		assert.Equal(t, StateDone, results[i].State)
		assert.Equal(t, 2, len(results[i].Summary.Registrations))
	}

	assert.Equal(t, 2, len(r.store.orders))
	assert.Equal(t, 4, len(r.store.regs))
	assert.Equal(t, model.EventStatusSoldOut, r.store.event.Status)
	assert.GreaterOrEqual(t, len(r.eventRepo.MarkEventSoldOutCalls()), 1)
}

func TestReconcile__Strict_Locking(t *testing.T) {
	r := newReconcileTest(100)
	r.conf.StrictLocking = true
	r.newService()
	r.addCharge(t, "pi_001", chargeOptions{promo: "SPRING10"})

	_, err := r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001"})
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, len(r.eventRepo.LockEventCalls()))
	assert.Equal(t, 1, len(r.promoRepo.LockPromoCodeCalls()))
	assert.Equal(t, 2, len(r.promoRepo.FindPromoCodeCalls()))
	assert.Equal(t, int64(5), r.store.promo.UsedCount)
}

func TestReconcile__Summary_Cache(t *testing.T) {
	r := newReconcileTest(100)
	r.addCharge(t, "pi_001", chargeOptions{})

	cached := map[string][]byte{}
	cache := &SummaryCacheMock{
		GetFunc: func(key string) ([]byte, bool, error) {
			data, ok := cached[key]
			return data, ok, nil
		},
		SetFunc: func(key string, value []byte, ttl time.Duration) error {
			cached[key] = value
			return nil
		},
	}
	r.service.cache = cache

	first, err := r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001"})
	assert.Equal(t, nil, err)
	require.Equal(t, 1, len(cache.SetCalls()))
	assert.Equal(t, "reconcile:summary:pi_001", cache.SetCalls()[0].Key)
	assert.Equal(t, time.Hour, cache.SetCalls()[0].Ttl)

	second, err := r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001"})
	assert.Equal(t, nil, err)
	assert.Equal(t, StateAlreadyReconciled, second.State)
	assert.Equal(t, first.Summary.Order.ID, second.Summary.Order.ID)
	assert.Equal(t, len(first.Summary.Registrations), len(second.Summary.Registrations))
	assert.Equal(t, 1, len(r.payments.RetrieveChargeCalls()))

	_, err = r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001", UserID: "user-2"})
	assert.Equal(t, ErrUnauthorized, err)
}

func TestReconcile__Notification_Panic_Does_Not_Fail(t *testing.T) {
	r := newReconcileTest(100)
	r.addCharge(t, "pi_001", chargeOptions{})
	r.notifier.SendConfirmationsFunc = func(
		ctx context.Context, event model.Event, regs []model.Registration,
	) notify.Counts {
		panic("smtp client crashed")
	}

	result, err := r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001"})
	assert.Equal(t, nil, err)
	assert.Equal(t, StateDone, result.State)
}

func TestHandleWebhook(t *testing.T) {
	r := newReconcileTest(100)
	r.addCharge(t, "pi_001", chargeOptions{})
	r.webhooks.ParseWebhookFunc = func(payload []byte, signature string) (payment.Charge, error) {
		if signature != "valid" {
			return payment.Charge{}, payment.ErrInvalidSignature
		}
		return payment.Charge{ID: "pi_001"}, nil
	}

	_, err := r.service.HandleWebhook(context.Background(), []byte("{}"), "forged")
	assert.Equal(t, payment.ErrInvalidSignature, err)
	assert.Equal(t, 0, len(r.payments.RetrieveChargeCalls()))

	result, err := r.service.HandleWebhook(context.Background(), []byte("{}"), "valid")
	assert.Equal(t, nil, err)
	assert.Equal(t, StateDone, result.State)
	assert.Equal(t, 1, len(r.store.orders))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "charge_confirmed", StateChargeConfirmed.String())
	assert.Equal(t, "already_reconciled", StateAlreadyReconciled.String())
	assert.Equal(t, "unknown", State(0).String())
	assert.Equal(t, true, StateRejected.Terminal())
	assert.Equal(t, false, StateTokensIssuing.Terminal())
}

func TestReconcile__Wait_For_Confirmations(t *testing.T) {
	r := newReconcileTest(100)
	r.addCharge(t, "pi_001", chargeOptions{})

	release := make(chan struct{})
	r.notifier.SendConfirmationsFunc = func(
		ctx context.Context, event model.Event, regs []model.Registration,
	) notify.Counts {
		<-release
		return notify.Counts{Sent: len(regs)}
	}
	r.service.async = r.service.runBackground

	result, err := r.service.Reconcile(context.Background(), Request{ChargeID: "pi_001"})
	assert.Equal(t, nil, err)
	assert.Equal(t, StateDone, result.State)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Equal(t, context.DeadlineExceeded, r.service.Wait(ctx))

	close(release)
	assert.Equal(t, nil, r.service.Wait(context.Background()))
	assert.Equal(t, 1, len(r.notifier.SendConfirmationsCalls()))
}

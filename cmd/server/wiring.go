package main

import (
	"context"

	"github.com/QuangTung97/event-checkout/config"
	"github.com/QuangTung97/event-checkout/pkg/auth"
	"github.com/QuangTung97/event-checkout/pkg/cacheclient"
	"github.com/QuangTung97/event-checkout/pkg/mailer"
	"github.com/QuangTung97/event-checkout/pkg/memtable"
	"github.com/QuangTung97/event-checkout/pkg/payment"
	"github.com/QuangTung97/event-checkout/repository"
	"github.com/QuangTung97/event-checkout/service/api"
	"github.com/QuangTung97/event-checkout/service/capacity"
	"github.com/QuangTung97/event-checkout/service/checkout"
	"github.com/QuangTung97/event-checkout/service/notify"
	"github.com/QuangTung97/event-checkout/service/reconcile"
	"github.com/QuangTung97/event-checkout/service/token"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/trace"
)

type services struct {
	checkout   checkout.IService
	reconcile  reconcile.IService
	background *reconcile.Service
	claim      *token.Service
	reminder   *notify.Reminder
	dispatcher *notify.Dispatcher

	cache *cacheclient.Client
}

func (s *services) close() {
	if s.cache != nil {
		_ = s.cache.Close()
	}
}

func newServices(conf config.Config, db *sqlx.DB, tp trace.TracerProvider) *services {
	provider := repository.NewProvider(db)

	eventRepo := repository.NewEvent()
	ticketRepo := repository.NewTicket()
	promoRepo := repository.NewPromo()
	upsellRepo := repository.NewUpsell()
	orderRepo := repository.NewOrder()
	regRepo := repository.NewRegistration()
	logRepo := repository.NewNotificationLog()

	stripeProvider := payment.NewStripeProvider(conf.Payment.SecretKey, conf.Payment.WebhookSecret)
	issuer := token.NewIssuer()

	ledger := notify.NewLedger(provider, logRepo)
	dispatcher := notify.NewDispatcher(provider, logRepo, ledger, mailer.NewSMTPSender(conf.Mail), conf.Notify.BatchSize)

	var mem *memtable.MemTable
	if conf.Checkout.CatalogCacheSize > 0 {
		mem = memtable.New(conf.Checkout.CatalogCacheSize)
	}
	catalog := checkout.NewCatalogLoader(ticketRepo, upsellRepo, mem, conf.Checkout.CatalogCacheTTL)

	checkoutSvc := checkout.NewService(
		provider, eventRepo, promoRepo, catalog,
		capacity.NewGuard(regRepo), stripeProvider,
	)

	result := &services{
		claim:      token.NewService(provider, regRepo, issuer),
		reminder:   notify.NewReminder(provider, eventRepo, regRepo, dispatcher),
		dispatcher: dispatcher,
	}

	var summaryCache reconcile.SummaryCache
	if conf.Memcache.Enabled {
		result.cache = cacheclient.New(conf.Memcache.Addr(), conf.Memcache.NumConns)
		summaryCache = result.cache
	}

	reconcileSvc := reconcile.NewService(
		provider,
		reconcile.Repositories{
			Event:        eventRepo,
			Order:        orderRepo,
			Registration: regRepo,
			Promo:        promoRepo,
		},
		stripeProvider, stripeProvider, issuer, dispatcher, summaryCache, conf.Reconcile,
	)

	result.background = reconcileSvc
	result.checkout = checkout.NewIServiceWrapper(checkoutSvc, tp.Tracer("checkout"), "checkout::")
	result.reconcile = reconcile.NewIServiceWrapper(reconcileSvc, tp.Tracer("reconcile"), "reconcile::")
	return result
}

// drain waits for confirmations queued by reconciliations that already returned
func (s *services) drain(ctx context.Context) error {
	return s.background.Wait(ctx)
}

func (s *services) handler(conf config.Config) *api.Handler {
	return api.NewHandler(s.checkout, s.reconcile, s.claim, auth.NewJWTResolver(conf.Auth))
}

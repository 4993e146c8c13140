package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/auth"
	"github.com/QuangTung97/event-checkout/pkg/otellib"
	"github.com/QuangTung97/event-checkout/pkg/payment"
	"github.com/QuangTung97/event-checkout/service/checkout"
	"github.com/QuangTung97/event-checkout/service/reconcile"
	"github.com/QuangTung97/event-checkout/service/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:generate moq -out api_mocks.go . Claimer

const (
	maxBodySize    = 1 << 20
	maxWebhookSize = 64 << 10

	webhookSignatureHeader = "Stripe-Signature"
)

// Claimer transfers a registration to the caller
type Claimer interface {
	Claim(ctx context.Context, input token.ClaimInput) (model.Registration, error)
}

var _ Claimer = &token.Service{}

// Handler serves the checkout HTTP API
type Handler struct {
	checkout  checkout.IService
	reconcile reconcile.IService
	claimer   Claimer
	resolver  auth.Resolver
}

// NewHandler ...
func NewHandler(
	checkoutSvc checkout.IService, reconcileSvc reconcile.IService,
	claimer Claimer, resolver auth.Resolver,
) *Handler {
	return &Handler{
		checkout:  checkoutSvc,
		reconcile: reconcileSvc,
		claimer:   claimer,
		resolver:  resolver,
	}
}

// Routes mounts every endpoint, middlewares run outer to inner in the given order
func (h *Handler) Routes(middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	for _, m := range middlewares {
		r.Use(m)
	}

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/webhooks/payment", h.PaymentWebhook)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Post("/checkout/intents", h.CreateIntent)
			r.Post("/checkout/reconcile", h.Reconcile)
			r.Post("/registrations/claim", h.Claim)
		})
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		otellib.Extract(ctx).Error("internal error", zap.Error(err))
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, w http.ResponseWriter, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	return nil
}

func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := h.resolver.Resolve(r)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.ToContext(r.Context(), id)))
	})
}

func identity(r *http.Request) auth.Identity {
	id, _ := auth.FromContext(r.Context())
	return id
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateIntent handles POST /v1/checkout/intents
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createIntentRequest
	if err := decodeJSON(r, w, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id := identity(r)
	if req.UserID != "" && req.UserID != id.UserID {
		writeError(ctx, w, checkout.ErrUnauthorized)
		return
	}

	intent, err := h.checkout.CreateIntent(ctx, checkout.Request{
		EventID:   req.EventID,
		UserID:    id.UserID,
		UserEmail: id.Email,

		Tickets:      req.Tickets,
		Participants: req.Participants,
		Upsells:      req.Upsells,
		PromoCode:    req.PromoCode,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toIntentResponse(intent))
}

// Reconcile handles POST /v1/checkout/reconcile
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reconcileRequest
	if err := decodeJSON(r, w, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id := identity(r)
	if req.UserID != "" && req.UserID != id.UserID {
		writeError(ctx, w, reconcile.ErrUnauthorized)
		return
	}

	var sig *reconcile.Signature
	if req.Signature != nil {
		sig = &reconcile.Signature{
			RegulationVersion: req.Signature.RegulationVersion,
			Data:              req.Signature.Data,
			Disclaimer:        req.Disclaimer,
		}
	}

	result, err := h.reconcile.Reconcile(ctx, reconcile.Request{
		ChargeID:  req.PaymentIntentID,
		EventID:   req.EventID,
		UserID:    id.UserID,
		Signature: sig,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReconcileResponse(result))
}

// Claim handles POST /v1/registrations/claim
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req claimRequest
	if err := decodeJSON(r, w, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id := identity(r)
	reg, err := h.claimer.Claim(ctx, token.ClaimInput{
		TransferToken: req.TransferToken,
		UserID:        id.UserID,
		Name:          req.Name,
		Email:         id.Email,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRegistration(reg))
}

// PaymentWebhook handles POST /v1/webhooks/payment, a 5xx makes the provider retry
func (h *Handler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookSize))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", errBadBody, err))
		return
	}

	result, err := h.reconcile.HandleWebhook(ctx, payload, r.Header.Get(webhookSignatureHeader))
	if errors.Is(err, payment.ErrIgnoredEvent) {
		writeJSON(w, http.StatusOK, webhookResponse{Received: true, Ignored: true})
		return
	}
	if errors.Is(err, reconcile.ErrUnknownCharge) {
		otellib.Extract(ctx).Info("payment webhook for unknown charge", zap.Error(err))
		writeJSON(w, http.StatusOK, webhookResponse{Received: true, Ignored: true})
		return
	}
	if err != nil {
		otellib.Extract(ctx).Warn("payment webhook failed", zap.Error(err))
		writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{Received: true, State: result.State.String()})
}

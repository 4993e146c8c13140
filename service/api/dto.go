package api

import (
	"encoding/json"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/service/checkout"
	"github.com/QuangTung97/event-checkout/service/pricing"
	"github.com/QuangTung97/event-checkout/service/reconcile"
)

type errorResponse struct {
	Error string `json:"error"`
}

type createIntentRequest struct {
	EventID int64 `json:"event_id"`

	// UserID is optional, when present it must match the caller
	UserID string `json:"user_id,omitempty"`

	Tickets      []pricing.TicketSelection `json:"tickets"`
	Participants []checkout.Participant    `json:"participants"`
	Upsells      []pricing.UpsellSelection `json:"upsells"`
	PromoCode    string                    `json:"promo_code,omitempty"`
}

type moneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func toMoney(m model.Money) moneyResponse {
	return moneyResponse{Amount: m.Amount, Currency: m.Currency}
}

type lineResponse struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Quantity  int64         `json:"quantity"`
	UnitPrice moneyResponse `json:"unit_price"`
	Subtotal  moneyResponse `json:"subtotal"`
}

type createIntentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`

	Tickets []lineResponse `json:"tickets"`
	Upsells []lineResponse `json:"upsells"`

	TicketSubtotal moneyResponse `json:"ticket_subtotal"`
	UpsellSubtotal moneyResponse `json:"upsell_subtotal"`
	Discount       moneyResponse `json:"discount"`
	Total          moneyResponse `json:"total"`
	AppliedPromo   string        `json:"applied_promo,omitempty"`
}

func toIntentResponse(intent checkout.Intent) createIntentResponse {
	q := intent.Quote

	tickets := make([]lineResponse, 0, len(q.Tickets))
	for _, line := range q.Tickets {
		tickets = append(tickets, lineResponse{
			ID:        line.TicketID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: toMoney(line.UnitPrice),
			Subtotal:  toMoney(line.Subtotal),
		})
	}

	upsells := make([]lineResponse, 0, len(q.Upsells))
	for _, line := range q.Upsells {
		upsells = append(upsells, lineResponse{
			ID:        line.UpsellID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: toMoney(line.UnitPrice),
			Subtotal:  toMoney(line.Subtotal),
		})
	}

	return createIntentResponse{
		IntentID:     intent.IntentID,
		ClientSecret: intent.ProviderHandle,

		Tickets: tickets,
		Upsells: upsells,

		TicketSubtotal: toMoney(q.TicketSubtotal),
		UpsellSubtotal: toMoney(q.UpsellSubtotal),
		Discount:       toMoney(q.Discount),
		Total:          toMoney(q.Total),
		AppliedPromo:   intent.AppliedPromo,
	}
}

type signatureRequest struct {
	RegulationVersion string          `json:"regulation_version"`
	Data              json.RawMessage `json:"data"`
}

// reconcileRequest selections in the body are ignored, the charge snapshot is authoritative
type reconcileRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
	EventID         int64  `json:"event_id"`
	UserID          string `json:"user_id,omitempty"`

	Tickets      []pricing.TicketSelection `json:"tickets,omitempty"`
	Participants []checkout.Participant    `json:"participants,omitempty"`
	Upsells      []pricing.UpsellSelection `json:"upsells,omitempty"`
	PromoCode    string                    `json:"promo_code,omitempty"`

	Signature  *signatureRequest `json:"signature,omitempty"`
	Disclaimer string            `json:"disclaimer,omitempty"`
}

type registrationResponse struct {
	ID               int64  `json:"id"`
	TicketID         int64  `json:"ticket_id"`
	ParticipantName  string `json:"participant_name"`
	ParticipantEmail string `json:"participant_email"`
	ClaimStatus      string `json:"claim_status"`
	ApprovalStatus   string `json:"approval_status"`
	CheckInToken     string `json:"check_in_token"`
	TransferToken    string `json:"transfer_token"`
}

func toRegistration(reg model.Registration) registrationResponse {
	return registrationResponse{
		ID:               reg.ID,
		TicketID:         reg.TicketID,
		ParticipantName:  reg.ParticipantName,
		ParticipantEmail: reg.ParticipantEmail,
		ClaimStatus:      reg.ClaimStatus.String(),
		ApprovalStatus:   reg.ApprovalStatus.String(),
		CheckInToken:     reg.CheckInToken,
		TransferToken:    reg.TransferToken,
	}
}

type orderSummary struct {
	OrderID       int64                  `json:"order_id"`
	EventID       int64                  `json:"event_id"`
	ChargeID      string                 `json:"payment_intent_id"`
	Amount        moneyResponse          `json:"amount"`
	Discount      int64                  `json:"discount"`
	PromoCode     string                 `json:"promo_code,omitempty"`
	Registrations []registrationResponse `json:"registrations"`
}

type reconcileResponse struct {
	Success      bool         `json:"success"`
	State        string       `json:"state"`
	OrderSummary orderSummary `json:"order_summary"`
}

func toReconcileResponse(result reconcile.Result) reconcileResponse {
	order := result.Summary.Order

	regs := make([]registrationResponse, 0, len(result.Summary.Registrations))
	for _, reg := range result.Summary.Registrations {
		regs = append(regs, toRegistration(reg))
	}

	return reconcileResponse{
		Success: true,
		State:   result.State.String(),
		OrderSummary: orderSummary{
			OrderID:       order.ID,
			EventID:       order.EventID,
			ChargeID:      order.ProviderChargeID,
			Amount:        toMoney(order.Money()),
			Discount:      order.Discount,
			PromoCode:     order.PromoCode.String,
			Registrations: regs,
		},
	}
}

type claimRequest struct {
	TransferToken string `json:"transfer_token"`
	Name          string `json:"name"`
}

type webhookResponse struct {
	Received bool   `json:"received"`
	Ignored  bool   `json:"ignored,omitempty"`
	State    string `json:"state,omitempty"`
}

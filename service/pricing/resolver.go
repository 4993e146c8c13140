package pricing

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTicket when a selected ticket is unknown for the event
	ErrInvalidTicket = errors.New("invalid ticket")

	// ErrUnpricedTicket when no usable price can be resolved for a ticket
	ErrUnpricedTicket = fmt.Errorf("%w: ticket has no price", ErrInvalidTicket)

	// ErrInvalidQuantity ...
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidUpsell when an upsell is unknown, inactive or scoped to another event
	ErrInvalidUpsell = errors.New("invalid upsell")

	// ErrInvalidPromoCode when a promo code can not be applied
	ErrInvalidPromoCode = errors.New("invalid promo code")

	// ErrInvalidAmount when the total due is not positive
	ErrInvalidAmount = errors.New("total amount must be positive")

	// ErrEmptySelection ...
	ErrEmptySelection = errors.New("no ticket selected")
)

// TicketSelection ...
type TicketSelection struct {
	TicketID int64 `json:"ticket_id"`
	Quantity int64 `json:"quantity"`
}

// UpsellSelection ...
type UpsellSelection struct {
	UpsellID int64 `json:"upsell_id"`
	Quantity int64 `json:"quantity"`
}

// Catalog is the pricing state read at one instant
type Catalog struct {
	EventID int64
	Tickets []model.Ticket
	Tiers   []model.PriceTier
	Upsells []model.Upsell
}

// Input ...
type Input struct {
	Catalog Catalog

	Tickets []TicketSelection
	Upsells []UpsellSelection

	// Promo is nil when no code was submitted
	Promo *model.PromoCode

	At time.Time
}

// TicketLine ...
type TicketLine struct {
	TicketID  int64
	Name      string
	Quantity  int64
	TierID    int64 // zero when the base price was used
	UnitPrice model.Money
	Subtotal  model.Money

	RequiresDocument bool
}

// UpsellLine ...
type UpsellLine struct {
	UpsellID  int64
	Name      string
	Quantity  int64
	UnitPrice model.Money
	Subtotal  model.Money
}

// Quote is the priced result of a cart
type Quote struct {
	EventID  int64
	Currency string

	Tickets []TicketLine
	Upsells []UpsellLine

	TicketSubtotal model.Money
	UpsellSubtotal model.Money
	Discount       model.Money
	Total          model.Money

	// PromoCode is empty when no discount applied
	PromoCode string
	PricedAt  time.Time
}

// TicketQuantity total number of admissions
func (q Quote) TicketQuantity() int64 {
	var n int64
	for _, line := range q.Tickets {
		n += line.Quantity
	}
	return n
}

// ResolveUnitPrice picks the first tier in display order containing at, falling back to the base price
func ResolveUnitPrice(ticket model.Ticket, tiers []model.PriceTier, at time.Time) (model.Money, int64) {
	sorted := make([]model.PriceTier, 0, len(tiers))
	for _, tier := range tiers {
		if tier.TicketID == ticket.ID {
			sorted = append(sorted, tier)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})

	for _, tier := range sorted {
		if tier.Contains(at) {
			return model.NewMoney(tier.Price, ticket.Currency), tier.ID
		}
	}
	return ticket.BaseMoney(), 0
}

func mergeTickets(selections []TicketSelection) ([]TicketSelection, error) {
	quantities := map[int64]int64{}
	for _, s := range selections {
		if s.Quantity <= 0 {
			return nil, fmt.Errorf("%w: ticket %d", ErrInvalidQuantity, s.TicketID)
		}
		quantities[s.TicketID] += s.Quantity
	}

	result := make([]TicketSelection, 0, len(quantities))
	for id, qty := range quantities {
		result = append(result, TicketSelection{TicketID: id, Quantity: qty})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TicketID < result[j].TicketID
	})
	return result, nil
}

func mergeUpsells(selections []UpsellSelection) ([]UpsellSelection, error) {
	quantities := map[int64]int64{}
	for _, s := range selections {
		if s.Quantity <= 0 {
			return nil, fmt.Errorf("%w: upsell %d", ErrInvalidQuantity, s.UpsellID)
		}
		quantities[s.UpsellID] += s.Quantity
	}

	result := make([]UpsellSelection, 0, len(quantities))
	for id, qty := range quantities {
		result = append(result, UpsellSelection{UpsellID: id, Quantity: qty})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpsellID < result[j].UpsellID
	})
	return result, nil
}

// Resolve prices the selections at the given instant. It does not touch any store.
func Resolve(input Input) (Quote, error) {
	if len(input.Tickets) == 0 {
		return Quote{}, ErrEmptySelection
	}

	ticketSelections, err := mergeTickets(input.Tickets)
	if err != nil {
		return Quote{}, err
	}
	upsellSelections, err := mergeUpsells(input.Upsells)
	if err != nil {
		return Quote{}, err
	}

	ticketMap := map[int64]model.Ticket{}
	for _, t := range input.Catalog.Tickets {
		if t.EventID == input.Catalog.EventID {
			ticketMap[t.ID] = t
		}
	}

	quote := Quote{
		EventID:  input.Catalog.EventID,
		PricedAt: input.At,
	}

	for _, s := range ticketSelections {
		ticket, ok := ticketMap[s.TicketID]
		if !ok {
			return Quote{}, fmt.Errorf("%w: %d", ErrInvalidTicket, s.TicketID)
		}

		unitPrice, tierID := ResolveUnitPrice(ticket, input.Catalog.Tiers, input.At)
		if unitPrice.Amount < 0 || unitPrice.Currency == "" {
			return Quote{}, fmt.Errorf("%w: %d", ErrUnpricedTicket, s.TicketID)
		}
		if quote.Currency == "" {
			quote.Currency = unitPrice.Currency
			quote.TicketSubtotal = model.Zero(quote.Currency)
		}

		subtotal := unitPrice.Mul(s.Quantity)
		quote.TicketSubtotal, err = quote.TicketSubtotal.Add(subtotal)
		if err != nil {
			return Quote{}, err
		}

		quote.Tickets = append(quote.Tickets, TicketLine{
			TicketID:  ticket.ID,
			Name:      ticket.DisplayName(),
			Quantity:  s.Quantity,
			TierID:    tierID,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,

			RequiresDocument: ticket.RequiresDocument,
		})
	}

	quote.UpsellSubtotal, err = resolveUpsells(&quote, input.Catalog, upsellSelections)
	if err != nil {
		return Quote{}, err
	}

	quote.Discount = model.Zero(quote.Currency)
	if input.Promo != nil {
		discount, err := ComputeDiscount(*input.Promo, quote.EventID, quote.TicketSubtotal, input.At)
		if err != nil {
			return Quote{}, err
		}
		quote.Discount = discount
		quote.PromoCode = input.Promo.Code
	}

	gross, err := quote.TicketSubtotal.Add(quote.UpsellSubtotal)
	if err != nil {
		return Quote{}, err
	}
	total, err := gross.Sub(quote.Discount)
	if err != nil {
		return Quote{}, err
	}
	if total.Amount < 0 {
		total.Amount = 0
	}
	quote.Total = total

	if !quote.Total.IsPositive() {
		return Quote{}, ErrInvalidAmount
	}
	return quote, nil
}

func resolveUpsells(quote *Quote, catalog Catalog, selections []UpsellSelection) (model.Money, error) {
	upsellMap := map[int64]model.Upsell{}
	for _, u := range catalog.Upsells {
		upsellMap[u.ID] = u
	}

	total := model.Zero(quote.Currency)
	for _, s := range selections {
		upsell, ok := upsellMap[s.UpsellID]
		if !ok || !upsell.AvailableFor(catalog.EventID) {
			return model.Money{}, fmt.Errorf("%w: %d", ErrInvalidUpsell, s.UpsellID)
		}

		unitPrice := upsell.Money()
		subtotal := unitPrice.Mul(s.Quantity)

		var err error
		total, err = total.Add(subtotal)
		if err != nil {
			return model.Money{}, err
		}

		quote.Upsells = append(quote.Upsells, UpsellLine{
			UpsellID:  upsell.ID,
			Name:      upsell.Name,
			Quantity:  s.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
	}
	return total, nil
}

// ComputeDiscount applies a promo code to the ticket subtotal only
func ComputeDiscount(
	promo model.PromoCode, eventID int64, ticketSubtotal model.Money, at time.Time,
) (model.Money, error) {
	switch {
	case promo.Status != model.PromoCodeStatusActive:
		return model.Money{}, fmt.Errorf("%w: inactive", ErrInvalidPromoCode)
	case !promo.InWindow(at):
		return model.Money{}, fmt.Errorf("%w: outside validity window", ErrInvalidPromoCode)
	case !promo.UsageAvailable():
		return model.Money{}, fmt.Errorf("%w: usage limit reached", ErrInvalidPromoCode)
	case !promo.AppliesToEvent(eventID):
		return model.Money{}, fmt.Errorf("%w: not valid for this event", ErrInvalidPromoCode)
	}

	var amount int64
	switch {
	case promo.PercentOff.Valid && !promo.AmountOff.Valid:
		amount = decimal.NewFromInt(ticketSubtotal.Amount).
			Mul(promo.PercentOff.Decimal).
			Div(decimal.NewFromInt(100)).
			Round(0).IntPart()
	case promo.AmountOff.Valid && !promo.PercentOff.Valid:
		amount = promo.AmountOff.Int64
	default:
		return model.Money{}, fmt.Errorf("%w: discount kind", ErrInvalidPromoCode)
	}

	if amount < 0 {
		amount = 0
	}
	if amount > ticketSubtotal.Amount {
		amount = ticketSubtotal.Amount
	}
	return model.NewMoney(amount, ticketSubtotal.Currency), nil
}

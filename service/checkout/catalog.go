package checkout

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/QuangTung97/event-checkout/model"
	"github.com/QuangTung97/event-checkout/pkg/memtable"
	"github.com/QuangTung97/event-checkout/repository"
	"github.com/QuangTung97/event-checkout/service/pricing"
)

// CatalogLoader reads tickets and tiers of an event, optionally through a short lived local cache.
// The cache is safe because reconciliation reads the charge snapshot, never the catalog.
type CatalogLoader struct {
	ticketRepo repository.Ticket
	upsellRepo repository.Upsell

	mem *memtable.MemTable
	ttl time.Duration
}

type cachedCatalog struct {
	Tickets []model.Ticket    `json:"tickets"`
	Tiers   []model.PriceTier `json:"tiers"`
}

// NewCatalogLoader mem can be nil to disable caching
func NewCatalogLoader(
	ticketRepo repository.Ticket, upsellRepo repository.Upsell,
	mem *memtable.MemTable, ttl time.Duration,
) *CatalogLoader {
	return &CatalogLoader{
		ticketRepo: ticketRepo,
		upsellRepo: upsellRepo,
		mem:        mem,
		ttl:        ttl,
	}
}

func catalogKey(eventID int64) string {
	return "catalog:" + strconv.FormatInt(eventID, 10)
}

func (l *CatalogLoader) getCached(eventID int64) (cachedCatalog, bool) {
	if l.mem == nil {
		return cachedCatalog{}, false
	}
	data, ok := l.mem.Get(catalogKey(eventID))
	if !ok {
		return cachedCatalog{}, false
	}
	var c cachedCatalog
	if err := json.Unmarshal(data, &c); err != nil {
		return cachedCatalog{}, false
	}
	return c, true
}

func (l *CatalogLoader) setCached(eventID int64, c cachedCatalog) {
	if l.mem == nil || l.ttl <= 0 {
		return
	}
	data, err := json.Marshal(c)
	if err != nil {
		return
	}
	l.mem.Set(catalogKey(eventID), data, l.ttl)
}

func (l *CatalogLoader) loadTickets(ctx context.Context, eventID int64) (cachedCatalog, error) {
	if c, ok := l.getCached(eventID); ok {
		return c, nil
	}

	tickets, err := l.ticketRepo.GetTicketsByEvent(ctx, eventID)
	if err != nil {
		return cachedCatalog{}, err
	}

	ticketIDs := make([]int64, 0, len(tickets))
	for _, t := range tickets {
		ticketIDs = append(ticketIDs, t.ID)
	}

	tiers, err := l.ticketRepo.GetPriceTiersByTickets(ctx, ticketIDs)
	if err != nil {
		return cachedCatalog{}, err
	}

	c := cachedCatalog{Tickets: tickets, Tiers: tiers}
	l.setCached(eventID, c)
	return c, nil
}

// Load returns the pricing catalog for the selected upsells of one event
func (l *CatalogLoader) Load(
	ctx context.Context, eventID int64, upsells []pricing.UpsellSelection,
) (pricing.Catalog, error) {
	c, err := l.loadTickets(ctx, eventID)
	if err != nil {
		return pricing.Catalog{}, err
	}

	upsellIDs := make([]int64, 0, len(upsells))
	for _, u := range upsells {
		upsellIDs = append(upsellIDs, u.UpsellID)
	}

	upsellList, err := l.upsellRepo.GetUpsellsByIDs(ctx, upsellIDs)
	if err != nil {
		return pricing.Catalog{}, err
	}

	return pricing.Catalog{
		EventID: eventID,
		Tickets: c.Tickets,
		Tiers:   c.Tiers,
		Upsells: upsellList,
	}, nil
}

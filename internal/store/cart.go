package store

import (
	"sync"

	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/models"
)

// Cart holds at most one line item per event id, in the order events were
// first added. Quantities for an event already in the cart are merged into
// its existing line item.
type Cart struct {
	mu    sync.Mutex
	items []models.CartLineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges normal/vip ticket quantities into the line item for event, or
// creates one snapshotting the event's current title and the fixed prices.
// At least one ticket is required.
func (c *Cart) Add(event models.Event, normal, vip int) error {
	if normal < 0 || vip < 0 {
		return apperrors.NewValidationError("tickets", "ticket quantities cannot be negative")
	}
	if normal+vip == 0 {
		return apperrors.NewValidationError("tickets", "select at least one ticket")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].EventID == event.ID {
			c.items[i].NormalTickets += normal
			c.items[i].VIPTickets += vip
			return nil
		}
	}

	c.items = append(c.items, models.CartLineItem{
		EventID:       event.ID,
		EventTitle:    event.Title,
		NormalTickets: normal,
		VIPTickets:    vip,
		NormalPrice:   models.NormalTicketPrice,
		VIPPrice:      models.VIPTicketPrice,
	})
	return nil
}

// Remove deletes the line item for the event id, reporting whether one
// existed.
func (c *Cart) Remove(eventID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].EventID == eventID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []models.CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems returns the ticket count across all line items.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, li := range c.items {
		total += li.Quantity()
	}
	return total
}

// TotalPrice returns the price across all line items.
func (c *Cart) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, li := range c.items {
		total += li.LineTotal()
	}
	return total
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cart. Called by checkout after a successful purchase.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

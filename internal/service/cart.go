package service

import (
	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/models"
	"ticketpub/internal/store"
)

type CartService struct {
	catalog *store.Catalog
}

func NewCartService(catalog *store.Catalog) *CartService {
	return &CartService{catalog: catalog}
}

// Add puts tickets for an event into the session's cart. The event must
// still exist in the catalog at add time; from then on the line item lives
// off its own snapshot.
func (s *CartService) Add(sess *store.Session, req models.AddToCartRequest) (models.CartResponse, error) {
	if err := req.Validate(); err != nil {
		return models.CartResponse{}, err
	}

	event, ok := s.catalog.Get(req.EventID)
	if !ok {
		return models.CartResponse{}, apperrors.ErrNotFound
	}

	if err := sess.Cart.Add(event, req.NormalTickets, req.VIPTickets); err != nil {
		return models.CartResponse{}, err
	}
	return s.Summary(sess), nil
}

// Remove drops the line item for the event id. Removing an absent line item
// is a no-op.
func (s *CartService) Remove(sess *store.Session, eventID int64) models.CartResponse {
	sess.Cart.Remove(eventID)
	return s.Summary(sess)
}

// Summary returns the cart contents with totals.
func (s *CartService) Summary(sess *store.Session) models.CartResponse {
	return models.CartResponse{
		Items:      sess.Cart.Items(),
		TotalItems: sess.Cart.TotalItems(),
		TotalPrice: sess.Cart.TotalPrice(),
	}
}

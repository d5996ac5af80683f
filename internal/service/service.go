package service

import (
	"ticketpub/internal/auth"
	"ticketpub/internal/checkout"
	"ticketpub/internal/store"
)

type Services struct {
	Events   *EventService
	Cart     *CartService
	Profile  *ProfileService
	Checkout *CheckoutService
}

func NewServices(catalog *store.Catalog, sessions *store.Sessions, tokens *auth.Tokens) *Services {
	process := checkout.NewProcess()

	return &Services{
		Events:   NewEventService(catalog),
		Cart:     NewCartService(catalog),
		Profile:  NewProfileService(sessions, tokens),
		Checkout: NewCheckoutService(process),
	}
}

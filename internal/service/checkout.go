package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ticketpub/internal/checkout"
	"ticketpub/internal/models"
	"ticketpub/internal/store"
)

var (
	purchasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketpub_purchases_total",
		Help: "Number of completed checkouts.",
	})
	ticketsSoldTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketpub_tickets_sold_total",
		Help: "Number of tickets sold across all checkouts.",
	})
	revenueTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketpub_revenue_dollars_total",
		Help: "Revenue across all checkouts, in dollars.",
	})
)

type CheckoutService struct {
	process *checkout.Process
}

func NewCheckoutService(process *checkout.Process) *CheckoutService {
	return &CheckoutService{process: process}
}

// Checkout runs the purchase transition for the session.
func (s *CheckoutService) Checkout(sess *store.Session) (models.CheckoutResponse, error) {
	resp, err := s.process.Checkout(sess)
	if err != nil {
		return resp, err
	}

	purchasesTotal.Inc()
	for _, t := range resp.Tickets {
		ticketsSoldTotal.Add(float64(t.NormalTickets + t.VIPTickets))
		revenueTotal.Add(float64(t.TotalPrice))
	}
	return resp, nil
}

// State reports the session's position in the checkout flow.
func (s *CheckoutService) State(sess *store.Session) checkout.State {
	return s.process.StateOf(sess)
}

// RenderTicket formats a purchase record for download.
func (s *CheckoutService) RenderTicket(t models.PurchasedTicket) string {
	return checkout.RenderTicket(t)
}

package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/models"
	"ticketpub/internal/store"
)

// State is the position of a session in the checkout flow.
type State string

const (
	StateEmpty         State = "empty"
	StateHasItems      State = "has_items"
	StateAwaitingLogin State = "awaiting_login"
	StateConfirmed     State = "confirmed"
)

// Process turns a session's cart into purchase records. The clock and the
// ticket-id suffix generator are injectable so tests get deterministic ids.
type Process struct {
	now    func() time.Time
	suffix func() string
}

func NewProcess() *Process {
	return &Process{
		now:    time.Now,
		suffix: randomSuffix,
	}
}

// NewProcessWithClock builds a process with a fixed clock and suffix source.
func NewProcessWithClock(now func() time.Time, suffix func() string) *Process {
	return &Process{now: now, suffix: suffix}
}

// StateOf reports where the session currently is in the flow.
func (p *Process) StateOf(sess *store.Session) State {
	if sess.Cart.Len() == 0 {
		return StateEmpty
	}
	if !sess.LoggedIn() {
		return StateAwaitingLogin
	}
	return StateHasItems
}

// Checkout converts every cart line item into a PurchasedTicket, appends
// them to the profile and clears the cart. Without a logged-in profile the
// purchase is aborted and the cart left untouched. Once a profile is present
// the whole transition runs to completion; there is no partial-failure path.
func (p *Process) Checkout(sess *store.Session) (models.CheckoutResponse, error) {
	if !sess.LoggedIn() {
		return models.CheckoutResponse{State: string(StateAwaitingLogin)}, apperrors.ErrUnauthorized
	}

	items := sess.Cart.Items()
	if len(items) == 0 {
		return models.CheckoutResponse{State: string(StateEmpty)}, apperrors.ErrCartEmpty
	}

	now := p.now()
	tickets := make([]models.PurchasedTicket, len(items))
	for i, li := range items {
		tickets[i] = models.PurchasedTicket{
			ID:            fmt.Sprintf("%d-%d-%s", li.EventID, now.UnixMilli(), p.suffix()),
			EventID:       li.EventID,
			EventTitle:    li.EventTitle,
			NormalTickets: li.NormalTickets,
			VIPTickets:    li.VIPTickets,
			PurchaseDate:  now.Format("1/2/2006"),
			TotalPrice:    li.LineTotal(),
		}
	}

	if err := sess.AppendTickets(tickets); err != nil {
		return models.CheckoutResponse{State: string(StateAwaitingLogin)}, err
	}
	sess.Cart.Clear()

	return models.CheckoutResponse{
		State:   string(StateConfirmed),
		Tickets: tickets,
	}, nil
}

// randomSuffix yields the 9-character alphanumeric tail of a ticket id.
func randomSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
}

// RenderTicket formats a purchase record as the downloadable plain-text
// ticket.
func RenderTicket(t models.PurchasedTicket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s\n", t.EventTitle)
	fmt.Fprintf(&b, "Tickets: %d Normal, %d VIP\n", t.NormalTickets, t.VIPTickets)
	fmt.Fprintf(&b, "Purchase Date: %s\n", t.PurchaseDate)
	fmt.Fprintf(&b, "Total: $%d\n", t.TotalPrice)
	fmt.Fprintf(&b, "Ticket ID: %s\n", t.ID)
	return b.String()
}

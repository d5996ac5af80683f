package checkout

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/models"
	"ticketpub/internal/store"
)

func fixedProcess() *Process {
	at := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	n := 0
	return NewProcessWithClock(
		func() time.Time { return at },
		func() string {
			n++
			return fmt.Sprintf("suffix%03d", n)
		},
	)
}

func loggedInSession(t *testing.T) *store.Session {
	t.Helper()
	sess := store.NewSessions().Create()
	_, err := sess.Login(models.LoginRequest{Email: "a@b.com", Password: "x"})
	assert.NoError(t, err)
	return sess
}

func TestStateOf(t *testing.T) {
	p := fixedProcess()

	anon := store.NewSessions().Create()
	assert.Equal(t, StateEmpty, p.StateOf(anon))

	assert.NoError(t, anon.Cart.Add(models.Event{ID: 1, Title: "A"}, 1, 0))
	assert.Equal(t, StateAwaitingLogin, p.StateOf(anon))

	sess := loggedInSession(t)
	assert.Equal(t, StateEmpty, p.StateOf(sess))
	assert.NoError(t, sess.Cart.Add(models.Event{ID: 1, Title: "A"}, 1, 0))
	assert.Equal(t, StateHasItems, p.StateOf(sess))
}

func TestCheckoutWithoutLoginLeavesCartUntouched(t *testing.T) {
	p := fixedProcess()
	sess := store.NewSessions().Create()
	assert.NoError(t, sess.Cart.Add(models.Event{ID: 1, Title: "A"}, 2, 1))

	resp, err := p.Checkout(sess)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, string(StateAwaitingLogin), resp.State)
	assert.Empty(t, resp.Tickets)
	assert.Equal(t, 3, sess.Cart.TotalItems())
}

func TestCheckoutEmptyCart(t *testing.T) {
	p := fixedProcess()
	sess := loggedInSession(t)

	resp, err := p.Checkout(sess)

	assert.ErrorIs(t, err, apperrors.ErrCartEmpty)
	assert.Equal(t, string(StateEmpty), resp.State)
	profile, _ := sess.Profile()
	assert.Empty(t, profile.Tickets)
}

func TestCheckoutConvertsCartToTickets(t *testing.T) {
	p := fixedProcess()
	sess := loggedInSession(t)
	assert.NoError(t, sess.Cart.Add(models.Event{ID: 1, Title: "Rock Night"}, 2, 1))
	assert.NoError(t, sess.Cart.Add(models.Event{ID: 3, Title: "Techno Marathon"}, 0, 2))
	priorTotal := sess.Cart.TotalPrice()

	resp, err := p.Checkout(sess)

	assert.NoError(t, err)
	assert.Equal(t, string(StateConfirmed), resp.State)
	assert.Len(t, resp.Tickets, 2)

	millis := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, fmt.Sprintf("1-%d-suffix001", millis), resp.Tickets[0].ID)
	assert.Equal(t, fmt.Sprintf("3-%d-suffix002", millis), resp.Tickets[1].ID)

	assert.Equal(t, "Rock Night", resp.Tickets[0].EventTitle)
	assert.Equal(t, "3/5/2024", resp.Tickets[0].PurchaseDate)
	assert.Equal(t, 200, resp.Tickets[0].TotalPrice)
	assert.Equal(t, 200, resp.Tickets[1].TotalPrice)

	sum := 0
	for _, tk := range resp.Tickets {
		sum += tk.TotalPrice
	}
	assert.Equal(t, priorTotal, sum)

	assert.Equal(t, 0, sess.Cart.Len())
	profile, _ := sess.Profile()
	assert.Len(t, profile.Tickets, 2)
}

func TestCheckoutAccumulatesHistory(t *testing.T) {
	p := fixedProcess()
	sess := loggedInSession(t)

	assert.NoError(t, sess.Cart.Add(models.Event{ID: 1, Title: "A"}, 1, 0))
	_, err := p.Checkout(sess)
	assert.NoError(t, err)

	assert.NoError(t, sess.Cart.Add(models.Event{ID: 2, Title: "B"}, 0, 1))
	_, err = p.Checkout(sess)
	assert.NoError(t, err)

	profile, _ := sess.Profile()
	assert.Len(t, profile.Tickets, 2)
}

func TestRandomSuffixShape(t *testing.T) {
	for i := 0; i < 10; i++ {
		s := randomSuffix()
		assert.Len(t, s, 9)
		assert.NotContains(t, s, "-")
	}
}

func TestRenderTicket(t *testing.T) {
	body := RenderTicket(models.PurchasedTicket{
		ID:            "1-1709640000000-abc123def",
		EventTitle:    "Rock Night",
		NormalTickets: 2,
		VIPTickets:    1,
		PurchaseDate:  "3/5/2024",
		TotalPrice:    200,
	})

	assert.Equal(t,
		"Event: Rock Night\n"+
			"Tickets: 2 Normal, 1 VIP\n"+
			"Purchase Date: 3/5/2024\n"+
			"Total: $200\n"+
			"Ticket ID: 1-1709640000000-abc123def\n",
		body)
}

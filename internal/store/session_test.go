package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/models"
)

func TestSessionLoginDerivesNameFromEmail(t *testing.T) {
	sess := NewSessions().Create()

	profile, err := sess.Login(models.LoginRequest{Email: "a@b.com", Password: "x"})

	assert.NoError(t, err)
	assert.Equal(t, "a", profile.Name)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Empty(t, profile.Tickets)
	assert.True(t, sess.LoggedIn())
}

func TestSessionLoginRejectsEmptyFields(t *testing.T) {
	sess := NewSessions().Create()

	var ve *apperrors.ValidationError
	_, err := sess.Login(models.LoginRequest{Email: "a@b.com"})
	assert.ErrorAs(t, err, &ve)

	_, err = sess.Login(models.LoginRequest{Password: "x"})
	assert.ErrorAs(t, err, &ve)

	assert.False(t, sess.LoggedIn())
}

func TestSessionUpdateProfileKeepsEmailAndTickets(t *testing.T) {
	sess := NewSessions().Create()
	_, err := sess.Login(models.LoginRequest{Email: "a@b.com", Password: "x"})
	assert.NoError(t, err)
	assert.NoError(t, sess.AppendTickets([]models.PurchasedTicket{{ID: "1-1-abc"}}))

	updated, err := sess.UpdateProfile(models.ProfilePatch{
		Name:            "Alice",
		City:            "Berlin",
		PreferredGenres: []string{"Techno"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "Berlin", updated.City)
	assert.Equal(t, []string{"Techno"}, updated.PreferredGenres)
	assert.Equal(t, "a@b.com", updated.Email)
	assert.Len(t, updated.Tickets, 1)
}

func TestSessionUpdateProfileRequiresLogin(t *testing.T) {
	sess := NewSessions().Create()

	_, err := sess.UpdateProfile(models.ProfilePatch{Name: "Alice"})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestSessionLogoutKeepsCart(t *testing.T) {
	sess := NewSessions().Create()
	_, err := sess.Login(models.LoginRequest{Email: "a@b.com", Password: "x"})
	assert.NoError(t, err)
	assert.NoError(t, sess.Cart.Add(testEvent(1, "A"), 2, 0))

	sess.Logout()

	assert.False(t, sess.LoggedIn())
	_, ok := sess.Profile()
	assert.False(t, ok)
	assert.Equal(t, 2, sess.Cart.TotalItems())
}

func TestSessionProfileReturnsCopy(t *testing.T) {
	sess := NewSessions().Create()
	_, err := sess.Login(models.LoginRequest{Email: "a@b.com", Password: "x"})
	assert.NoError(t, err)

	profile, ok := sess.Profile()
	assert.True(t, ok)
	profile.Name = "mutated"
	profile.PreferredGenres = append(profile.PreferredGenres, "Rock")

	fresh, _ := sess.Profile()
	assert.Equal(t, "a", fresh.Name)
	assert.Empty(t, fresh.PreferredGenres)
}

func TestSessionsRegistry(t *testing.T) {
	reg := NewSessions()

	sess := reg.Create()
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, reg.Count())

	got, ok := reg.Get(sess.ID)
	assert.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	reg.Delete(sess.ID)
	assert.Equal(t, 0, reg.Count())
}

package service

import (
	"fmt"

	"ticketpub/internal/auth"
	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/models"
	"ticketpub/internal/store"
)

type ProfileService struct {
	sessions *store.Sessions
	tokens   *auth.Tokens
}

func NewProfileService(sessions *store.Sessions, tokens *auth.Tokens) *ProfileService {
	return &ProfileService{sessions: sessions, tokens: tokens}
}

// Login attaches a fabricated profile to the session and mints a token for
// it. When sess is nil a fresh session is created, so logging in without a
// prior cart interaction also works.
func (s *ProfileService) Login(sess *store.Session, req models.LoginRequest) (models.LoginResponse, error) {
	if sess == nil {
		sess = s.sessions.Create()
	}

	profile, err := sess.Login(req)
	if err != nil {
		return models.LoginResponse{}, err
	}

	token, err := s.tokens.Mint(sess.ID)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("failed to mint session token: %w", err)
	}

	return models.LoginResponse{Token: token, Profile: profile}, nil
}

// Logout discards the profile but keeps the session and its cart alive.
func (s *ProfileService) Logout(sess *store.Session) error {
	if sess == nil || !sess.LoggedIn() {
		return apperrors.ErrUnauthorized
	}
	sess.Logout()
	return nil
}

// Get returns the logged-in profile.
func (s *ProfileService) Get(sess *store.Session) (models.UserProfile, error) {
	if sess == nil {
		return models.UserProfile{}, apperrors.ErrUnauthorized
	}
	profile, ok := sess.Profile()
	if !ok {
		return models.UserProfile{}, apperrors.ErrUnauthorized
	}
	return profile, nil
}

// Update replaces the mutable profile fields with the patch values.
func (s *ProfileService) Update(sess *store.Session, patch models.ProfilePatch) (models.UserProfile, error) {
	if sess == nil {
		return models.UserProfile{}, apperrors.ErrUnauthorized
	}
	return sess.UpdateProfile(patch)
}

// Tickets returns the purchase history of the logged-in profile.
func (s *ProfileService) Tickets(sess *store.Session) ([]models.PurchasedTicket, error) {
	profile, err := s.Get(sess)
	if err != nil {
		return nil, err
	}
	return profile.Tickets, nil
}

// Ticket looks up one purchase record by its id.
func (s *ProfileService) Ticket(sess *store.Session, id string) (models.PurchasedTicket, error) {
	tickets, err := s.Tickets(sess)
	if err != nil {
		return models.PurchasedTicket{}, err
	}
	for _, t := range tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.PurchasedTicket{}, apperrors.ErrNotFound
}

// Token mints a session token for an existing session, used when a cart
// interaction creates an anonymous session before any login.
func (s *ProfileService) Token(sess *store.Session) (string, error) {
	return s.tokens.Mint(sess.ID)
}

// Resolve maps a raw session token to a live session. Unknown or expired
// tokens yield ErrSessionExpired; the handler then starts the caller over
// with a fresh anonymous session.
func (s *ProfileService) Resolve(token string) (*store.Session, error) {
	sid, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.ErrSessionExpired
	}
	sess, ok := s.sessions.Get(sid)
	if !ok {
		return nil, apperrors.ErrSessionExpired
	}
	return sess, nil
}

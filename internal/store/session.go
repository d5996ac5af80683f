package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/models"
)

// Session is one browser tab's worth of state: its cart plus the profile of
// whoever is logged in, if anyone. The cart outlives login and logout; the
// profile, including purchase history, does not survive logout.
type Session struct {
	ID        string
	Cart      *Cart
	CreatedAt time.Time

	mu      sync.Mutex
	profile *models.UserProfile
}

// Login fabricates a profile from any non-empty email/password pair. There
// is no credential verification here; a real identity provider would be
// injected in front of this boundary.
func (s *Session) Login(req models.LoginRequest) (models.UserProfile, error) {
	if err := req.Validate(); err != nil {
		return models.UserProfile{}, err
	}

	profile := models.UserProfile{
		Email:           req.Email,
		Name:            req.LocalPart(),
		PreferredGenres: []string{},
		Tickets:         []models.PurchasedTicket{},
	}

	s.mu.Lock()
	s.profile = &profile
	s.mu.Unlock()

	return copyProfile(profile), nil
}

// UpdateProfile replaces every mutable field with the patch values. Email
// stays as it was at login and the ticket history is never touched here.
func (s *Session) UpdateProfile(patch models.ProfilePatch) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return models.UserProfile{}, apperrors.ErrUnauthorized
	}

	s.profile.Name = patch.Name
	s.profile.Phone = patch.Phone
	s.profile.Location = patch.Location
	s.profile.City = patch.City
	s.profile.ZipCode = patch.ZipCode
	s.profile.PreferredGenres = append([]string(nil), patch.PreferredGenres...)
	return copyProfile(*s.profile), nil
}

// AppendTickets adds purchase records to the profile. Only checkout calls
// this.
func (s *Session) AppendTickets(tickets []models.PurchasedTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return apperrors.ErrUnauthorized
	}
	s.profile.Tickets = append(s.profile.Tickets, tickets...)
	return nil
}

// Logout discards the profile entirely. With no persistence layer behind the
// session, the purchase history is gone with it.
func (s *Session) Logout() {
	s.mu.Lock()
	s.profile = nil
	s.mu.Unlock()
}

// Profile returns a copy of the logged-in profile.
func (s *Session) Profile() (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return models.UserProfile{}, false
	}
	return copyProfile(*s.profile), true
}

// LoggedIn reports whether a profile is attached.
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil
}

func copyProfile(p models.UserProfile) models.UserProfile {
	p.PreferredGenres = append([]string(nil), p.PreferredGenres...)
	p.Tickets = append([]models.PurchasedTicket(nil), p.Tickets...)
	return p
}

// Sessions is the in-memory session registry. Sessions die with the process;
// there is deliberately nothing durable behind this map.
type Sessions struct {
	mu   sync.RWMutex
	byID map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byID: make(map[string]*Session)}
}

// Create registers a new anonymous session with an empty cart.
func (r *Sessions) Create() *Session {
	sess := &Session{
		ID:        uuid.New().String(),
		Cart:      NewCart(),
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	r.byID[sess.ID] = sess
	r.mu.Unlock()

	return sess
}

// Get returns the session with the given id.
func (r *Sessions) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.byID[id]
	return sess, ok
}

// Delete drops a session from the registry.
func (r *Sessions) Delete(id string) {
	r.mu.Lock()
	delete(r.byID, id)
	r.mu.Unlock()
}

// Count returns the number of live sessions.
func (r *Sessions) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

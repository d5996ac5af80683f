package service

import (
	"ticketpub/internal/models"
	"ticketpub/internal/store"
)

type EventService struct {
	catalog *store.Catalog
}

func NewEventService(catalog *store.Catalog) *EventService {
	return &EventService{catalog: catalog}
}

// Create validates the draft and appends a new event to the catalog.
func (s *EventService) Create(draft models.EventDraft) (models.Event, error) {
	return s.catalog.Add(draft)
}

// Update replaces the event matching id. ErrNotFound bubbles up so the
// handler can apply the silent no-op policy for unknown ids.
func (s *EventService) Update(id int64, draft models.EventDraft) (models.Event, error) {
	return s.catalog.Update(id, draft)
}

// Remove deletes the event if it exists. Removing an unknown id is a no-op.
func (s *EventService) Remove(id int64) bool {
	return s.catalog.Remove(id)
}

// Get returns a single event by id.
func (s *EventService) Get(id int64) (models.Event, bool) {
	return s.catalog.Get(id)
}

// List filters the catalog. When usePreferred is set and the session has a
// logged-in profile, the genre axis comes from the profile's preferred
// genres and the genre argument is ignored; otherwise both axes filter
// normally with "all" as a wildcard.
func (s *EventService) List(genre, intensity string, sess *store.Session, usePreferred bool) []models.Event {
	opts := store.FilterOptions{
		Genre:     genre,
		Intensity: intensity,
	}

	if usePreferred && sess != nil {
		if profile, ok := sess.Profile(); ok {
			opts.UsePreferred = true
			opts.PreferredGenres = profile.PreferredGenres
		}
	}

	return s.catalog.Filter(opts)
}

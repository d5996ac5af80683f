package store

import (
	"sync"

	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/models"
)

// FilterOptions describes one catalog query. An empty or "all" genre or
// intensity is a wildcard for that axis. When UsePreferred is set the genre
// axis is driven by PreferredGenres instead of Genre.
type FilterOptions struct {
	Genre           string
	Intensity       string
	PreferredGenres []string
	UsePreferred    bool
}

// Catalog holds the ordered set of events. All mutations go through Add,
// Update and Remove; reads always return fresh slices so callers can never
// reach the internal state.
type Catalog struct {
	mu     sync.RWMutex
	events []models.Event
	nextID int64
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add validates the draft, fills genre defaults and appends a new event.
// Ids come from a counter that never reuses values, so a delete followed by
// an add cannot produce a duplicate id.
func (c *Catalog) Add(draft models.EventDraft) (models.Event, error) {
	if err := draft.Validate(); err != nil {
		return models.Event{}, err
	}
	draft = draft.Normalized()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	event := models.Event{
		ID:               c.nextID,
		Title:            draft.Title,
		ShortDescription: draft.ShortDescription,
		FullDescription:  draft.FullDescription,
		Genre:            draft.Genre,
		GenreColor:       draft.GenreColor,
		Intensity:        draft.Intensity,
	}
	c.events = append(c.events, event)
	return event, nil
}

// Update replaces the full record matching id with the validated draft.
// Returns ErrNotFound when no event has that id; the caller decides whether
// that is worth reporting (the UI treats it as a silent no-op).
func (c *Catalog) Update(id int64, draft models.EventDraft) (models.Event, error) {
	if err := draft.Validate(); err != nil {
		return models.Event{}, err
	}
	draft = draft.Normalized()

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.events {
		if c.events[i].ID == id {
			c.events[i] = models.Event{
				ID:               id,
				Title:            draft.Title,
				ShortDescription: draft.ShortDescription,
				FullDescription:  draft.FullDescription,
				Genre:            draft.Genre,
				GenreColor:       draft.GenreColor,
				Intensity:        draft.Intensity,
			}
			return c.events[i], nil
		}
	}
	return models.Event{}, apperrors.ErrNotFound
}

// Remove deletes the event with the given id and reports whether it existed.
// Surviving events keep their ids. Cart line items referencing the removed
// event are untouched; they carry their own title and price snapshots.
func (c *Catalog) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.events {
		if c.events[i].ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the event with the given id.
func (c *Catalog) Get(id int64) (models.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// List returns all events in insertion order.
func (c *Catalog) List() []models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Count returns the number of events in the catalog.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.events)
}

// Filter returns the events matching opts, preserving insertion order. Each
// call evaluates the predicate against current state from the start, so the
// returned view is always restartable.
func (c *Catalog) Filter(opts FilterOptions) []models.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Event, 0, len(c.events))
	for _, e := range c.events {
		if !matchIntensity(e, opts.Intensity) {
			continue
		}
		if opts.UsePreferred {
			if !containsGenre(opts.PreferredGenres, e.Genre) {
				continue
			}
		} else if !matchGenre(e, opts.Genre) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchGenre(e models.Event, genre string) bool {
	return genre == "" || genre == "all" || e.Genre == genre
}

func matchIntensity(e models.Event, intensity string) bool {
	return intensity == "" || intensity == "all" || string(e.Intensity) == intensity
}

func containsGenre(genres []string, genre string) bool {
	for _, g := range genres {
		if g == genre {
			return true
		}
	}
	return false
}

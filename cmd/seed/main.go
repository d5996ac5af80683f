package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ticketpub/internal/models"
	"ticketpub/internal/store"
)

var (
	baseURL = flag.String("url", "http://localhost:8081", "Base URL of a running ticketpub API")
	dryRun  = flag.Bool("dry-run", false, "Show what would be seeded without making requests")
)

type Seeder struct {
	baseURL string
	client  *http.Client
}

func main() {
	flag.Parse()

	slog.Info("Starting demo catalog seeder...")

	seeder := &Seeder{baseURL: *baseURL, client: http.DefaultClient}

	if err := seeder.SeedEvents(); err != nil {
		slog.Error("Failed to seed demo catalog", "error", err)
		os.Exit(1)
	}

	slog.Info("Demo catalog seeding completed successfully!")
}

func (s *Seeder) SeedEvents() error {
	drafts := store.DemoDrafts()

	for _, draft := range drafts {
		if *dryRun {
			slog.Info("[DRY RUN] Would create event", "title", draft.Title, "genre", draft.Genre)
			continue
		}

		event, err := s.createEvent(draft)
		if err != nil {
			slog.Error("Failed to create event", "title", draft.Title, "error", err)
			continue
		}
		slog.Info("Created event", "event_id", event.ID, "title", event.Title)
	}

	return nil
}

func (s *Seeder) createEvent(draft models.EventDraft) (*models.Event, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Post(s.baseURL+"/api/events", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var event models.Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

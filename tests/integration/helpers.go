package integration

import (
	"os"
	"testing"

	"ticketpub/internal/models"
)

const defaultBaseURL = "http://localhost:8081"

// BaseURL returns the address of the API under test. The suite needs a
// running server seeded with the demo catalog; without API_BASE_URL it is
// skipped so `go test ./...` stays self-contained.
func BaseURL(t *testing.T) string {
	if url := os.Getenv("API_BASE_URL"); url != "" {
		return url
	}
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Set API_BASE_URL or RUN_INTEGRATION_TESTS to run integration tests")
	}
	return defaultBaseURL
}

// AssertEventExists checks if an event exists in the list
func AssertEventExists(t *testing.T, events []models.Event, eventID int64) {
	for _, event := range events {
		if event.ID == eventID {
			return
		}
	}
	t.Fatalf("Event with ID %d not found in events list, %+v", eventID, events)
}

// AssertEventExistsWithTitle checks if an event with specific title exists
func AssertEventExistsWithTitle(t *testing.T, events []models.Event, eventID int64, expectedTitle string) {
	for _, event := range events {
		if event.ID == eventID {
			if event.Title != expectedTitle {
				t.Fatalf("Event %d has title '%s', expected '%s'", eventID, event.Title, expectedTitle)
			}
			return
		}
	}
	t.Fatalf("Event with ID %d not found in events list", eventID)
}

// LogTestStep logs a test step for better debugging
func LogTestStep(t *testing.T, step string, args ...interface{}) {
	t.Logf("🔹 "+step, args...)
}

// LogTestResult logs a test result
func LogTestResult(t *testing.T, result string, args ...interface{}) {
	t.Logf("✅ "+result, args...)
}

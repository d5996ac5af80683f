package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"ticketpub/internal/models"
)

// TestClient provides methods for testing the API
type TestClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Session token carried on every request once set.
	Token string
}

// NewTestClient creates a new test client
func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response
func (c *TestClient) makeRequest(t *testing.T, method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}

	// A lazily created anonymous session hands its token back in a header.
	if token := resp.Header.Get("X-Session-Token"); token != "" && c.Token == "" {
		c.Token = token
	}

	return resp
}

// ListEvents lists catalog events with optional query string ("genre=Rock")
func (c *TestClient) ListEvents(t *testing.T, query string) []models.Event {
	path := "/api/events"
	if query != "" {
		path += "?" + query
	}

	resp := c.makeRequest(t, "GET", path, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var events []models.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		t.Fatalf("Failed to decode events response: %v", err)
	}

	return events
}

// CreateEvent adds an event to the catalog
func (c *TestClient) CreateEvent(t *testing.T, draft models.EventDraft) models.Event {
	resp := c.makeRequest(t, "POST", "/api/events", draft)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var event models.Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		t.Fatalf("Failed to decode event response: %v", err)
	}

	return event
}

// DeleteEvent removes an event from the catalog
func (c *TestClient) DeleteEvent(t *testing.T, eventID int64) {
	resp := c.makeRequest(t, "DELETE", fmt.Sprintf("/api/events/%d", eventID), nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

// AddToCart puts tickets for an event into the cart
func (c *TestClient) AddToCart(t *testing.T, eventID int64, normal, vip int) models.CartResponse {
	req := models.AddToCartRequest{
		EventID:       eventID,
		NormalTickets: normal,
		VIPTickets:    vip,
	}

	resp := c.makeRequest(t, "POST", "/api/cart/items", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var cart models.CartResponse
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		t.Fatalf("Failed to decode cart response: %v", err)
	}

	return cart
}

// GetCart returns the current cart contents
func (c *TestClient) GetCart(t *testing.T) models.CartResponse {
	resp := c.makeRequest(t, "GET", "/api/cart", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var cart models.CartResponse
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		t.Fatalf("Failed to decode cart response: %v", err)
	}

	return cart
}

// RemoveCartItem drops the line item for an event
func (c *TestClient) RemoveCartItem(t *testing.T, eventID int64) models.CartResponse {
	resp := c.makeRequest(t, "DELETE", fmt.Sprintf("/api/cart/items/%d", eventID), nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var cart models.CartResponse
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		t.Fatalf("Failed to decode cart response: %v", err)
	}

	return cart
}

// Login signs in and switches the client to the returned session token
func (c *TestClient) Login(t *testing.T, email, password string) models.LoginResponse {
	req := models.LoginRequest{Email: email, Password: password}

	resp := c.makeRequest(t, "POST", "/api/auth/login", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var login models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		t.Fatalf("Failed to decode login response: %v", err)
	}

	c.Token = login.Token
	return login
}

// Logout signs the session out
func (c *TestClient) Logout(t *testing.T) {
	resp := c.makeRequest(t, "POST", "/api/auth/logout", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
}

// Checkout runs the purchase and expects it to succeed
func (c *TestClient) Checkout(t *testing.T) models.CheckoutResponse {
	resp := c.makeRequest(t, "POST", "/api/checkout", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var checkout models.CheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&checkout); err != nil {
		t.Fatalf("Failed to decode checkout response: %v", err)
	}

	return checkout
}

// CheckoutExpectingStatus runs the purchase and asserts the HTTP status
func (c *TestClient) CheckoutExpectingStatus(t *testing.T, status int) {
	resp := c.makeRequest(t, "POST", "/api/checkout", nil)
	defer resp.Body.Close()

	if resp.StatusCode != status {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status %d, got %d. Body: %s", status, resp.StatusCode, string(body))
	}
}

// ListTickets returns the purchase history
func (c *TestClient) ListTickets(t *testing.T) []models.PurchasedTicket {
	resp := c.makeRequest(t, "GET", "/api/tickets", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var tickets []models.PurchasedTicket
	if err := json.NewDecoder(resp.Body).Decode(&tickets); err != nil {
		t.Fatalf("Failed to decode tickets response: %v", err)
	}

	return tickets
}

// DownloadTicket fetches the plain-text rendition of a purchased ticket
func (c *TestClient) DownloadTicket(t *testing.T, ticketID string) string {
	resp := c.makeRequest(t, "GET", "/api/tickets/"+ticketID+"/download", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read ticket body: %v", err)
	}
	return string(body)
}

// HealthCheck checks if the API is healthy
func (c *TestClient) HealthCheck(t *testing.T) {
	resp := c.makeRequest(t, "GET", "/health", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Health check failed with status %d", resp.StatusCode)
	}
}

package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"ticketpub/internal/models"
)

// SpecValidator - дымовая проверка работающего API витрины
type SpecValidator struct {
	baseURL string
	client  *http.Client

	sessionToken string
}

// NewSpecValidator создает новый валидатор
func NewSpecValidator(baseURL string) *SpecValidator {
	return &SpecValidator{baseURL: baseURL, client: http.DefaultClient}
}

// RunValidation запускает проверку против API_BASE_URL (по умолчанию локальный сервер)
func RunValidation() {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8081"
	}

	v := NewSpecValidator(baseURL)
	if err := v.ValidateAll(); err != nil {
		log.Fatalf("Validation failed: %v", err)
	}
}

// ValidateAll проверяет сквозной сценарий витрины: каталог, корзина, вход, покупка
func (v *SpecValidator) ValidateAll() error {
	log.Println("Начинаю валидацию API витрины...")

	if err := v.validateCatalog(); err != nil {
		return fmt.Errorf("Catalog validation failed: %w", err)
	}
	if err := v.validateLoginRejectsEmptyFields(); err != nil {
		return fmt.Errorf("Login validation failed: %w", err)
	}
	if err := v.validateCartAndCheckout(); err != nil {
		return fmt.Errorf("Cart/checkout validation failed: %w", err)
	}

	log.Println("✅ Все проверки прошли успешно!")
	return nil
}

func (v *SpecValidator) validateCatalog() error {
	log.Println("Проверяю каталог событий...")

	resp, err := v.makeRequest("GET", "/api/events", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /api/events: expected 200, got %d", resp.StatusCode)
	}

	var events []models.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return fmt.Errorf("GET /api/events: failed to decode response: %w", err)
	}
	if len(events) == 0 {
		return fmt.Errorf("GET /api/events: catalog is empty, start the server with SEED_DEMO=true or run cmd/seed")
	}

	log.Println("✅ Каталог отвечает")
	return nil
}

func (v *SpecValidator) validateLoginRejectsEmptyFields() error {
	log.Println("Проверяю валидацию формы входа...")

	resp, err := v.makeRequest("POST", "/api/auth/login", models.LoginRequest{Email: "smoke@example.com"})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("POST /api/auth/login with empty password: expected 400, got %d", resp.StatusCode)
	}

	log.Println("✅ Пустой пароль отклоняется")
	return nil
}

func (v *SpecValidator) validateCartAndCheckout() error {
	log.Println("Проверяю корзину и оформление покупки...")

	// Anonymous add to cart: the server must hand back a session token.
	resp, err := v.makeRequest("POST", "/api/cart/items", models.AddToCartRequest{
		EventID:       1,
		NormalTickets: 2,
		VIPTickets:    1,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST /api/cart/items: expected 200, got %d", resp.StatusCode)
	}
	if token := resp.Header.Get("X-Session-Token"); token != "" {
		v.sessionToken = token
	}
	if v.sessionToken == "" {
		return fmt.Errorf("POST /api/cart/items: no X-Session-Token header on anonymous request")
	}

	var cart models.CartResponse
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		return fmt.Errorf("POST /api/cart/items: failed to decode response: %w", err)
	}
	if cart.TotalItems != 3 {
		return fmt.Errorf("POST /api/cart/items: expected 3 items in cart, got %d", cart.TotalItems)
	}

	// Checkout before login must be refused without touching the cart.
	resp, err = v.makeRequest("POST", "/api/checkout", nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		return fmt.Errorf("POST /api/checkout without login: expected 401, got %d", resp.StatusCode)
	}

	resp, err = v.makeRequest("POST", "/api/auth/login", models.LoginRequest{
		Email:    "smoke@example.com",
		Password: "secret",
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST /api/auth/login: expected 200, got %d", resp.StatusCode)
	}

	var login models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return fmt.Errorf("POST /api/auth/login: failed to decode response: %w", err)
	}
	if login.Profile.Name != "smoke" {
		return fmt.Errorf("POST /api/auth/login: expected profile name %q, got %q", "smoke", login.Profile.Name)
	}
	v.sessionToken = login.Token

	resp, err = v.makeRequest("POST", "/api/checkout", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST /api/checkout: expected 200, got %d", resp.StatusCode)
	}

	var checkout models.CheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&checkout); err != nil {
		return fmt.Errorf("POST /api/checkout: failed to decode response: %w", err)
	}
	if checkout.State != "confirmed" {
		return fmt.Errorf("POST /api/checkout: expected state %q, got %q", "confirmed", checkout.State)
	}
	if len(checkout.Tickets) != 1 {
		return fmt.Errorf("POST /api/checkout: expected 1 purchased ticket, got %d", len(checkout.Tickets))
	}

	// Cart must be empty after a confirmed purchase.
	resp, err = v.makeRequest("GET", "/api/cart", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	cart = models.CartResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		return fmt.Errorf("GET /api/cart: failed to decode response: %w", err)
	}
	if cart.TotalItems != 0 {
		return fmt.Errorf("GET /api/cart after checkout: expected empty cart, got %d items", cart.TotalItems)
	}

	log.Println("✅ Сценарий покупки проходит")
	return nil
}

func (v *SpecValidator) makeRequest(method, path string, body interface{}) (*http.Response, error) {
	var buf *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewBuffer(payload)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, v.baseURL+path, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if v.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+v.sessionToken)
	}

	return v.client.Do(req)
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ticketpub/internal/errors"
)

// Checkout - POST /api/checkout
// Оформить покупку: корзина превращается в билеты и очищается
func (h *Handlers) Checkout(c *gin.Context) {
	sess := h.ensureSession(c)

	resp, err := h.services.Checkout.Checkout(sess)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			// The purchase is aborted and the cart left as it was; the
			// frontend shows the login dialog.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required", "state": resp.State})
		case errors.Is(err, apperrors.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty", "state": resp.State})
		default:
			respondError(c, err)
		}
		return
	}

	slog.Info("Checkout confirmed", "session_id", sess.ID, "tickets", len(resp.Tickets))
	c.JSON(http.StatusOK, resp)
}

// CheckoutState - GET /api/checkout/state
// Текущее состояние процесса оформления для сессии
func (h *Handlers) CheckoutState(c *gin.Context) {
	sess := h.ensureSession(c)
	c.JSON(http.StatusOK, gin.H{"state": h.services.Checkout.State(sess)})
}

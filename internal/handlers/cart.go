package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketpub/internal/models"
)

// GetCart - GET /api/cart
// Получить содержимое корзины с итогами
func (h *Handlers) GetCart(c *gin.Context) {
	sess := h.ensureSession(c)
	c.JSON(http.StatusOK, h.services.Cart.Summary(sess))
}

// AddToCart - POST /api/cart/items
// Добавить билеты события в корзину
func (h *Handlers) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := h.ensureSession(c)
	summary, err := h.services.Cart.Add(sess, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// RemoveCartItem - DELETE /api/cart/items/:eventId
// Убрать позицию из корзины; отсутствующая позиция молча игнорируется
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("eventId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	sess := h.ensureSession(c)
	c.JSON(http.StatusOK, h.services.Cart.Remove(sess, eventID))
}

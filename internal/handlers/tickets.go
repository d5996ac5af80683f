package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListTickets - GET /api/tickets
// История покупок залогиненного пользователя
func (h *Handlers) ListTickets(c *gin.Context) {
	tickets, err := h.services.Profile.Tickets(h.sessionOrNil(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// DownloadTicket - GET /api/tickets/:id/download
// Скачать билет текстовым файлом
func (h *Handlers) DownloadTicket(c *gin.Context) {
	ticket, err := h.services.Profile.Ticket(h.sessionOrNil(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	body := h.services.Checkout.RenderTicket(ticket)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ticket-%s.txt", ticket.ID))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

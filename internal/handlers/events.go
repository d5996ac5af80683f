package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/models"
)

// CreateEvent - POST /api/events
// Добавить событие в каталог (админ)
func (h *Handlers) CreateEvent(c *gin.Context) {
	var draft models.EventDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.services.Events.Create(draft)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("Event created", "event_id", event.ID, "title", event.Title)
	c.JSON(http.StatusCreated, event)
}

// ListEvents - GET /api/events
// Получить события каталога с фильтрами по жанру и интенсивности
func (h *Handlers) ListEvents(c *gin.Context) {
	genre := c.DefaultQuery("genre", "all")
	intensity := c.DefaultQuery("intensity", "all")
	usePreferred := c.Query("preferred") == "true"

	events := h.services.Events.List(genre, intensity, h.sessionOrNil(c), usePreferred)
	c.JSON(http.StatusOK, events)
}

// UpdateEvent - PUT /api/events/:id
// Заменить событие целиком (админ); неизвестный id молча игнорируется
func (h *Handlers) UpdateEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var draft models.EventDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.services.Events.Update(id, draft)
	if err != nil {
		// Unknown ids are a silent no-op: the UI only edits events it has
		// already displayed.
		if errors.Is(err, apperrors.ErrNotFound) {
			c.Status(http.StatusOK)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent - DELETE /api/events/:id
// Удалить событие (админ); неизвестный id молча игнорируется
func (h *Handlers) DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if removed := h.services.Events.Remove(id); removed {
		slog.Info("Event removed", "event_id", id)
	}
	c.Status(http.StatusOK)
}

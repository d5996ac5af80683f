package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ticketpub/internal/errors"
	"ticketpub/internal/middleware"
	"ticketpub/internal/service"
	"ticketpub/internal/store"
)

// SessionTokenHeader carries the token of a lazily created anonymous
// session back to the browser.
const SessionTokenHeader = "X-Session-Token"

type Handlers struct {
	services *service.Services
	sessions *store.Sessions
}

func NewHandlers(services *service.Services, sessions *store.Sessions) *Handlers {
	return &Handlers{
		services: services,
		sessions: sessions,
	}
}

// sessionOrNil returns the session resolved by the middleware, or nil for
// anonymous requests.
func (h *Handlers) sessionOrNil(c *gin.Context) *store.Session {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return nil
	}
	return sess
}

// ensureSession returns the request's session, lazily creating an anonymous
// one. The minted token travels back in the X-Session-Token header so the
// browser can keep its cart across requests before logging in.
func (h *Handlers) ensureSession(c *gin.Context) *store.Session {
	if sess, ok := middleware.SessionFromContext(c); ok {
		return sess
	}

	sess := h.sessions.Create()
	c.Set(middleware.SessionKey, sess)

	token, err := h.services.Profile.Token(sess)
	if err != nil {
		slog.Error("Failed to mint token for new session", "error", err)
	} else {
		c.Header(SessionTokenHeader, token)
	}
	return sess
}

// respondError переводит доменные ошибки в HTTP статусы
func respondError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
	case errors.Is(err, apperrors.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	default:
		slog.Error("Unhandled error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketpub/internal/models"
)

// Login - POST /api/auth/login
// Войти с любой непустой парой email/пароль; возвращает токен сессии
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reuse the caller's anonymous session when there is one, so a cart
	// filled before logging in survives the login.
	resp, err := h.services.Profile.Login(h.sessionOrNil(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("User logged in", "name", resp.Profile.Name)
	c.JSON(http.StatusOK, resp)
}

// Logout - POST /api/auth/logout
// Выйти; профиль и история покупок уничтожаются, корзина остается
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.services.Profile.Logout(h.sessionOrNil(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GetProfile - GET /api/profile
// Получить профиль залогиненного пользователя
func (h *Handlers) GetProfile(c *gin.Context) {
	profile, err := h.services.Profile.Get(h.sessionOrNil(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile - PUT /api/profile
// Сохранить профиль; email и купленные билеты не изменяются
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.services.Profile.Update(h.sessionOrNil(c), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

package models

import (
	"strings"

	apperrors "ticketpub/internal/errors"
)

// EventDraft - модель формы добавления/редактирования события
type EventDraft struct {
	Title            string     `json:"title"`
	ShortDescription string     `json:"short_description"`
	FullDescription  string     `json:"full_description"`
	Genre            string     `json:"genre,omitempty"`
	GenreColor       GenreColor `json:"genre_color,omitempty"`
	Intensity        Intensity  `json:"intensity,omitempty"`
}

// Validate проверяет обязательные поля и словари значений
func (d *EventDraft) Validate() error {
	if d.Title == "" {
		return apperrors.NewValidationError("title", "title is required")
	}
	if d.ShortDescription == "" {
		return apperrors.NewValidationError("short_description", "short description is required")
	}
	if d.FullDescription == "" {
		return apperrors.NewValidationError("full_description", "full description is required")
	}
	if d.Genre != "" && !ValidGenre(d.Genre) {
		return apperrors.NewValidationError("genre", "unknown genre")
	}
	if d.GenreColor != "" && !d.GenreColor.Valid() {
		return apperrors.NewValidationError("genre_color", "unknown genre color")
	}
	if d.Intensity != "" && !d.Intensity.Valid() {
		return apperrors.NewValidationError("intensity", "unknown intensity")
	}
	return nil
}

// Normalized возвращает копию черновика с подставленными значениями по умолчанию
func (d EventDraft) Normalized() EventDraft {
	if d.Genre == "" {
		d.Genre = DefaultGenre
	}
	if d.GenreColor == "" {
		d.GenreColor = DefaultGenreColor
	}
	if d.Intensity == "" {
		d.Intensity = DefaultIntensity
	}
	return d
}

// LoginRequest - модель формы входа
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate принимает любую непустую пару email/пароль
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return apperrors.NewValidationError("email", "please fill in all fields")
	}
	if r.Password == "" {
		return apperrors.NewValidationError("password", "please fill in all fields")
	}
	return nil
}

// LocalPart returns the part of the email before '@', used as the default
// profile name.
func (r *LoginRequest) LocalPart() string {
	if i := strings.Index(r.Email, "@"); i >= 0 {
		return r.Email[:i]
	}
	return r.Email
}

// ProfilePatch - модель сохранения профиля; email и билеты не изменяются
type ProfilePatch struct {
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Location        string   `json:"location"`
	City            string   `json:"city"`
	ZipCode         string   `json:"zip_code"`
	PreferredGenres []string `json:"preferred_genres"`
}

// AddToCartRequest - модель добавления билетов в корзину
type AddToCartRequest struct {
	EventID       int64 `json:"event_id" binding:"required"`
	NormalTickets int   `json:"normal_tickets"`
	VIPTickets    int   `json:"vip_tickets"`
}

// Validate требует хотя бы один билет и неотрицательные количества
func (r *AddToCartRequest) Validate() error {
	if r.NormalTickets < 0 || r.VIPTickets < 0 {
		return apperrors.NewValidationError("tickets", "ticket quantities cannot be negative")
	}
	if r.NormalTickets+r.VIPTickets == 0 {
		return apperrors.NewValidationError("tickets", "select at least one ticket")
	}
	return nil
}

// LoginResponse - ответ на успешный вход
type LoginResponse struct {
	Token   string      `json:"token"`
	Profile UserProfile `json:"profile"`
}

// CartResponse - содержимое корзины с итогами
type CartResponse struct {
	Items      []CartLineItem `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPrice int            `json:"total_price"`
}

// CheckoutResponse - результат оформления покупки
type CheckoutResponse struct {
	State   string            `json:"state"`
	Tickets []PurchasedTicket `json:"tickets,omitempty"`
}

package errors

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")
var ErrUnauthorized = errors.New("login required")
var ErrCartEmpty = errors.New("cart is empty")
var ErrSessionExpired = errors.New("session expired or unknown")

// ValidationError - ошибка валидации формы, привязанная к полю
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError создает ошибку валидации для поля формы
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

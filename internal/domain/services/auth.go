// Package services содержит доменные типы и ошибки сервисного слоя.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailAlreadyExists    = errors.New("account with this email already exists")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication token")
)

// IssuedToken представляет выданный bearer токен.
type IssuedToken struct {
	ActorID   string
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

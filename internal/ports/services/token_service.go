package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для операций с bearer токенами.
type TokenService interface {
	GenerateToken(ctx context.Context, actorID string) (string, time.Time, error)

	ValidateToken(ctx context.Context, token string) (string, error)
}

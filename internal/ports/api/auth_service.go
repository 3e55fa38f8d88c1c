// Package api определяет основные порты бизнес-логики.
package api

import (
	"context"

	"coursebay/internal/domain/entities"
	"coursebay/internal/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	SignUp(ctx context.Context, kind entities.ActorKind, name, email, password string) error

	SignIn(ctx context.Context, kind entities.ActorKind, email, password string) (*services.IssuedToken, error)

	GetProfile(ctx context.Context, kind entities.ActorKind, actorID string) (*entities.Account, error)
}

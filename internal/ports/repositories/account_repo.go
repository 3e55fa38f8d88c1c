// Package repositories определяет интерфейсы хранилища.
package repositories

import (
	"context"

	"coursebay/internal/domain/entities"
)

// AccountRepository определяет операции сохранения учетных записей.
// Вид учетной записи выбирает таблицу (users или creators).
type AccountRepository interface {
	Create(ctx context.Context, kind entities.ActorKind, account *entities.Account) (*entities.Account, error)

	FindByID(ctx context.Context, kind entities.ActorKind, id string) (*entities.Account, error)

	FindByEmail(ctx context.Context, kind entities.ActorKind, email string) (*entities.Account, error)
}

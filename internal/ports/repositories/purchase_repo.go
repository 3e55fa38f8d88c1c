package repositories

import (
	"context"

	"coursebay/internal/domain/entities"
)

// PurchaseRepository определяет операции журнала покупок.
type PurchaseRepository interface {
	Create(ctx context.Context, userID, courseID string) (*entities.Purchase, error)

	FindByUserAndCourse(ctx context.Context, userID, courseID string) (*entities.Purchase, error)

	// ListByUser возвращает покупки пользователя, развернутые записями курсов.
	ListByUser(ctx context.Context, userID string) ([]*entities.PurchasedCourse, error)
}

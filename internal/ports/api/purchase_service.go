package api

import (
	"context"

	"coursebay/internal/domain/entities"
)

// PurchaseUseCase определяет основной порт для операций журнала покупок.
type PurchaseUseCase interface {
	PurchaseCourse(ctx context.Context, userID, courseID string) (*entities.Purchase, error)

	ListPurchases(ctx context.Context, userID string) ([]*entities.PurchasedCourse, error)
}

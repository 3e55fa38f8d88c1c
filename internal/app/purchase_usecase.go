package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"coursebay/internal/domain/entities"
	"coursebay/internal/ports/api"
	"coursebay/internal/ports/repositories"
	"coursebay/pkg/logger"
)

const (
	methodPurchaseCourse = "PurchaseCourse"
	methodListPurchases  = "ListPurchases"

	msgPurchasing        = "recording course purchase"
	msgAlreadyPurchased  = "course already purchased by this user"
	msgPurchaseRecorded  = "purchase recorded successfully"
	msgListingPurchases  = "listing purchases"
	msgPurchasesListed   = "purchases listed"

	msgErrCheckPurchase  = "failed to check existing purchase"
	msgErrFindCourse     = "failed to find course for purchase"
	msgErrCreatePurchase = "failed to record purchase"
	msgErrListPurchases  = "failed to list purchases"

	errCtxCheckingPurchase = "checking existing purchase"
	errCtxFindingCourse    = "finding course"
	errCtxDuplicatePair    = "duplicate purchase"
	errCtxCreatingPurchase = "recording purchase"
	errCtxListingPurchases = "listing purchases"
)

// PurchaseUseCaseImpl реализует интерфейс api.PurchaseUseCase.
type PurchaseUseCaseImpl struct {
	purchaseRepo repositories.PurchaseRepository
	courseRepo   repositories.CourseRepository
}

// NewPurchaseUseCase создает новый экземпляр журнала покупок.
func NewPurchaseUseCase(purchaseRepo repositories.PurchaseRepository, courseRepo repositories.CourseRepository) api.PurchaseUseCase {
	return &PurchaseUseCaseImpl{
		purchaseRepo: purchaseRepo,
		courseRepo:   courseRepo,
	}
}

// PurchaseCourse фиксирует покупку курса пользователем. Курс должен
// существовать, пара (userId, courseId) должна быть новой.
func (p *PurchaseUseCaseImpl) PurchaseCourse(ctx context.Context, userID, courseID string) (*entities.Purchase, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodPurchaseCourse),
		zap.String("userID", userID),
		zap.String("courseID", courseID),
	)
	log.Debug(ctx, msgPurchasing)

	if _, err := p.courseRepo.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, entities.ErrCourseNotFound) {
			return nil, fmt.Errorf("%s: %w", errCtxFindingCourse, entities.ErrCourseNotFound)
		}
		log.Error(ctx, msgErrFindCourse, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingCourse, err)
	}

	existing, err := p.purchaseRepo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil && !errors.Is(err, entities.ErrPurchaseNotFound) {
		log.Error(ctx, msgErrCheckPurchase, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingPurchase, err)
	}
	if existing != nil {
		log.Debug(ctx, msgAlreadyPurchased)
		return nil, fmt.Errorf("%s: %w", errCtxDuplicatePair, entities.ErrAlreadyPurchased)
	}

	purchase, err := p.purchaseRepo.Create(ctx, userID, courseID)
	if err != nil {
		log.Error(ctx, msgErrCreatePurchase, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingPurchase, err)
	}

	log.Info(ctx, msgPurchaseRecorded, zap.String("purchaseID", purchase.ID))
	return purchase, nil
}

// ListPurchases возвращает покупки пользователя с полными записями курсов.
// Отсутствие покупок - пустой список, не ошибка.
func (p *PurchaseUseCaseImpl) ListPurchases(ctx context.Context, userID string) ([]*entities.PurchasedCourse, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodListPurchases),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgListingPurchases)

	purchases, err := p.purchaseRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrListPurchases, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingPurchases, err)
	}

	log.Debug(ctx, msgPurchasesListed, zap.Int("count", len(purchases)))
	return purchases, nil
}

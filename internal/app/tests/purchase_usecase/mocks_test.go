package purchaseusecase_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"coursebay/internal/domain/entities"
)

const (
	ErrCreatePurchase = "failed to create purchase"
	ErrFindPurchase   = "failed to find purchase"
	ErrListPurchases  = "failed to list purchases"
	ErrFindCourse     = "failed to find course"
)

type mockPurchaseRepository struct {
	mock.Mock
}

func (m *mockPurchaseRepository) Create(ctx context.Context, userID, courseID string) (*entities.Purchase, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreatePurchase, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Purchase), args.Error(1)
}

func (m *mockPurchaseRepository) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*entities.Purchase, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindPurchase, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Purchase), args.Error(1)
}

func (m *mockPurchaseRepository) ListByUser(ctx context.Context, userID string) ([]*entities.PurchasedCourse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrListPurchases, err)
		}
		return nil, nil
	}
	return args.Get(0).([]*entities.PurchasedCourse), args.Error(1)
}

type mockCourseRepository struct {
	mock.Mock
}

func (m *mockCourseRepository) Create(ctx context.Context, course *entities.Course) (*entities.Course, error) {
	args := m.Called(ctx, course)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Course), args.Error(1)
}

func (m *mockCourseRepository) List(ctx context.Context) ([]*entities.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Course), args.Error(1)
}

func (m *mockCourseRepository) FindByID(ctx context.Context, id string) (*entities.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindCourse, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Course), args.Error(1)
}

func (m *mockCourseRepository) FindByCreatorAndTitle(ctx context.Context, creatorID, title string) (*entities.Course, error) {
	args := m.Called(ctx, creatorID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Course), args.Error(1)
}

func (m *mockCourseRepository) DeleteCascade(ctx context.Context, id string) (*entities.Course, int64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*entities.Course), args.Get(1).(int64), args.Error(2)
}

package courseusecase_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"coursebay/internal/domain/entities"
)

const (
	ErrCreateCourse = "failed to create course"
	ErrListCourses  = "failed to list courses"
	ErrFindCourse   = "failed to find course"
	ErrDeleteCourse = "failed to delete course"
)

type mockCourseRepository struct {
	mock.Mock
}

func (m *mockCourseRepository) Create(ctx context.Context, course *entities.Course) (*entities.Course, error) {
	args := m.Called(ctx, course)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateCourse, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Course), args.Error(1)
}

func (m *mockCourseRepository) List(ctx context.Context) ([]*entities.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrListCourses, err)
		}
		return nil, nil
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
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindCourse, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Course), args.Error(1)
}

func (m *mockCourseRepository) DeleteCascade(ctx context.Context, id string) (*entities.Course, int64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		err := args.Error(2)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", ErrDeleteCourse, err)
		}
		return nil, 0, nil
	}
	return args.Get(0).(*entities.Course), args.Get(1).(int64), args.Error(2)
}

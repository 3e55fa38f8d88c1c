package api

import (
	"context"

	"coursebay/internal/domain/entities"
)

// CourseUseCase определяет основной порт для операций каталога курсов.
type CourseUseCase interface {
	ListCourses(ctx context.Context) ([]*entities.Course, error)

	CreateCourse(ctx context.Context, creatorID, title, description string, price float64, imageURL string) (*entities.Course, error)

	DeleteCourse(ctx context.Context, courseID string) (*entities.Course, int64, error)
}

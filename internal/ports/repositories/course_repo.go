package repositories

import (
	"context"

	"coursebay/internal/domain/entities"
)

// CourseRepository определяет операции сохранения курсов.
type CourseRepository interface {
	Create(ctx context.Context, course *entities.Course) (*entities.Course, error)

	List(ctx context.Context) ([]*entities.Course, error)

	FindByID(ctx context.Context, id string) (*entities.Course, error)

	FindByCreatorAndTitle(ctx context.Context, creatorID, title string) (*entities.Course, error)

	// DeleteCascade удаляет курс и все ссылающиеся на него покупки в одной
	// транзакции. Возвращает удаленный курс и число удаленных покупок.
	DeleteCascade(ctx context.Context, id string) (*entities.Course, int64, error)
}

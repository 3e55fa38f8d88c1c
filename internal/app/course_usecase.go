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
	methodListCourses  = "ListCourses"
	methodCreateCourse = "CreateCourse"
	methodDeleteCourse = "DeleteCourse"

	msgListingCourses    = "listing courses"
	msgCoursesListed     = "courses listed"
	msgCreatingCourse    = "creating course"
	msgDuplicateTitle    = "course with this title already exists for the creator"
	msgCourseCreated     = "course created successfully"
	msgDeletingCourse    = "deleting course with purchases"
	msgCourseDeleted     = "course deleted with purchases"
	msgCourseNotFound    = "course not found"

	msgErrListCourses    = "failed to list courses"
	msgErrCheckDuplicate = "failed to check duplicate title"
	msgErrCreateCourse   = "failed to create course"
	msgErrDeleteCourse   = "failed to delete course"

	errCtxListingCourses = "listing courses"
	errCtxCheckingTitle  = "checking course title"
	errCtxDuplicateTitle = "duplicate course title"
	errCtxCreatingCourse = "creating course"
	errCtxDeletingCourse = "deleting course"
)

// CourseUseCaseImpl реализует интерфейс api.CourseUseCase.
type CourseUseCaseImpl struct {
	courseRepo repositories.CourseRepository
}

// NewCourseUseCase создает новый экземпляр сервиса каталога курсов.
func NewCourseUseCase(courseRepo repositories.CourseRepository) api.CourseUseCase {
	return &CourseUseCaseImpl{courseRepo: courseRepo}
}

// ListCourses возвращает все курсы каталога без фильтрации и пагинации.
func (c *CourseUseCaseImpl) ListCourses(ctx context.Context) ([]*entities.Course, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListCourses))
	log.Debug(ctx, msgListingCourses)

	courses, err := c.courseRepo.List(ctx)
	if err != nil {
		log.Error(ctx, msgErrListCourses, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingCourses, err)
	}

	log.Debug(ctx, msgCoursesListed, zap.Int("count", len(courses)))
	return courses, nil
}

// CreateCourse публикует новый курс от имени автора. Название должно быть
// уникально в пределах одного автора; разные авторы могут использовать
// одинаковые названия.
func (c *CourseUseCaseImpl) CreateCourse(ctx context.Context, creatorID, title, description string, price float64, imageURL string) (*entities.Course, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodCreateCourse),
		zap.String("creatorID", creatorID),
		zap.String("title", title),
	)
	log.Debug(ctx, msgCreatingCourse)

	existing, err := c.courseRepo.FindByCreatorAndTitle(ctx, creatorID, title)
	if err != nil && !errors.Is(err, entities.ErrCourseNotFound) {
		log.Error(ctx, msgErrCheckDuplicate, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingTitle, err)
	}
	if existing != nil {
		log.Debug(ctx, msgDuplicateTitle)
		return nil, fmt.Errorf("%s: %w", errCtxDuplicateTitle, entities.ErrDuplicateCourseTitle)
	}

	course := entities.NewCourse(creatorID, title, description, price, imageURL)

	created, err := c.courseRepo.Create(ctx, course)
	if err != nil {
		log.Error(ctx, msgErrCreateCourse, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingCourse, err)
	}

	log.Info(ctx, msgCourseCreated, zap.String("courseID", created.ID))
	return created, nil
}

// DeleteCourse удаляет курс и каскадно все его покупки в одной транзакции.
// Возвращает удаленный курс и число удаленных покупок.
func (c *CourseUseCaseImpl) DeleteCourse(ctx context.Context, courseID string) (*entities.Course, int64, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodDeleteCourse),
		zap.String("courseID", courseID),
	)
	log.Debug(ctx, msgDeletingCourse)

	deleted, purchases, err := c.courseRepo.DeleteCascade(ctx, courseID)
	if err != nil {
		if errors.Is(err, entities.ErrCourseNotFound) {
			log.Debug(ctx, msgCourseNotFound)
			return nil, 0, fmt.Errorf("%s: %w", errCtxDeletingCourse, entities.ErrCourseNotFound)
		}
		log.Error(ctx, msgErrDeleteCourse, zap.Error(err))
		return nil, 0, fmt.Errorf("%s: %w", errCtxDeletingCourse, err)
	}

	log.Info(ctx, msgCourseDeleted, zap.Int64("deletedPurchases", purchases))
	return deleted, purchases, nil
}

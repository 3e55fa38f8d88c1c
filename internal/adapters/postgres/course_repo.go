package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"coursebay/internal/domain/entities"
	"coursebay/internal/ports/repositories"
	"coursebay/pkg/logger"
)

// CourseRepository реализует repositories.CourseRepository для Postgres.
type CourseRepository struct {
	pool PgxPoolInterface
}

// NewCourseRepository создает новый экземпляр репозитория курсов.
func NewCourseRepository(pool PgxPoolInterface) repositories.CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create создает новый курс.
func (r *CourseRepository) Create(ctx context.Context, course *entities.Course) (*entities.Course, error) {
	log := logger.Log(ctx).With(zap.String("repository", "course"), zap.String("method", "Create"))

	query := `
        INSERT INTO courses (title, description, price, image_url, creator_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, description, price, image_url, creator_id, created_at, updated_at
    `

	var created entities.Course
	err := r.pool.QueryRow(ctx, query,
		course.Title,
		course.Description,
		course.Price,
		course.ImageURL,
		course.CreatorID,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.Price,
		&created.ImageURL,
		&created.CreatorID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		log.Error(ctx, "error creating course", zap.Error(err))
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return &created, nil
}

// List возвращает все курсы каталога.
func (r *CourseRepository) List(ctx context.Context) ([]*entities.Course, error) {
	log := logger.Log(ctx).With(zap.String("repository", "course"), zap.String("method", "List"))

	query := `
        SELECT id, title, description, price, image_url, creator_id, created_at, updated_at
        FROM courses
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing courses", zap.Error(err))
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*entities.Course, 0)
	for rows.Next() {
		var course entities.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.Price,
			&course.ImageURL,
			&course.CreatorID,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			log.Error(ctx, "error scanning course row", zap.Error(err))
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating course rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// FindByID находит курс по ID.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*entities.Course, error) {
	log := logger.Log(ctx).With(zap.String("repository", "course"), zap.String("method", "FindByID"))

	query := `
        SELECT id, title, description, price, image_url, creator_id, created_at, updated_at
        FROM courses
        WHERE id = $1
    `

	var course entities.Course
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Price,
		&course.ImageURL,
		&course.CreatorID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "course not found", zap.String("id", id))
			return nil, entities.ErrCourseNotFound
		}
		log.Error(ctx, "error finding course by id", zap.Error(err))
		return nil, fmt.Errorf("error querying course by id: %w", err)
	}

	return &course, nil
}

// FindByCreatorAndTitle находит курс по паре (автор, название).
func (r *CourseRepository) FindByCreatorAndTitle(ctx context.Context, creatorID, title string) (*entities.Course, error) {
	log := logger.Log(ctx).With(zap.String("repository", "course"), zap.String("method", "FindByCreatorAndTitle"))

	query := `
        SELECT id, title, description, price, image_url, creator_id, created_at, updated_at
        FROM courses
        WHERE creator_id = $1 AND title = $2
    `

	var course entities.Course
	err := r.pool.QueryRow(ctx, query, creatorID, title).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Price,
		&course.ImageURL,
		&course.CreatorID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "course not found", zap.String("creatorID", creatorID), zap.String("title", title))
			return nil, entities.ErrCourseNotFound
		}
		log.Error(ctx, "error finding course by creator and title", zap.Error(err))
		return nil, fmt.Errorf("error querying course by creator and title: %w", err)
	}

	return &course, nil
}

// DeleteCascade удаляет курс и все ссылающиеся на него покупки в одной
// транзакции, исключая осиротевшие записи журнала покупок.
func (r *CourseRepository) DeleteCascade(ctx context.Context, id string) (*entities.Course, int64, error) {
	log := logger.Log(ctx).With(zap.String("repository", "course"), zap.String("method", "DeleteCascade"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return nil, 0, fmt.Errorf("error starting transaction: %w", err)
	}

	deleteCourse := `
        DELETE FROM courses
        WHERE id = $1
        RETURNING id, title, description, price, image_url, creator_id, created_at, updated_at
    `

	var deleted entities.Course
	err = tx.QueryRow(ctx, deleteCourse, id).Scan(
		&deleted.ID,
		&deleted.Title,
		&deleted.Description,
		&deleted.Price,
		&deleted.ImageURL,
		&deleted.CreatorID,
		&deleted.CreatedAt,
		&deleted.UpdatedAt,
	)

	if err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "course not found for deletion", zap.String("id", id))
			return nil, 0, entities.ErrCourseNotFound
		}
		log.Error(ctx, "error deleting course", zap.Error(err))
		return nil, 0, fmt.Errorf("error deleting course: %w", err)
	}

	deletePurchases := `
        DELETE FROM purchases
        WHERE course_id = $1
    `

	result, err := tx.Exec(ctx, deletePurchases, id)
	if err != nil {
		_ = tx.Rollback(ctx)
		log.Error(ctx, "error deleting purchases for course", zap.Error(err))
		return nil, 0, fmt.Errorf("error deleting purchases for course: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing course deletion", zap.Error(err))
		return nil, 0, fmt.Errorf("error committing course deletion: %w", err)
	}

	return &deleted, result.RowsAffected(), nil
}

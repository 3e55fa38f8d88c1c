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

// PurchaseRepository реализует repositories.PurchaseRepository для Postgres.
type PurchaseRepository struct {
	pool PgxPoolInterface
}

// NewPurchaseRepository создает новый экземпляр репозитория покупок.
func NewPurchaseRepository(pool PgxPoolInterface) repositories.PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

// Create фиксирует покупку курса пользователем.
func (r *PurchaseRepository) Create(ctx context.Context, userID, courseID string) (*entities.Purchase, error) {
	log := logger.Log(ctx).With(zap.String("repository", "purchase"), zap.String("method", "Create"))

	query := `
        INSERT INTO purchases (user_id, course_id)
        VALUES ($1, $2)
        RETURNING id, user_id, course_id, created_at, updated_at
    `

	var purchase entities.Purchase
	err := r.pool.QueryRow(ctx, query, userID, courseID).Scan(
		&purchase.ID,
		&purchase.UserID,
		&purchase.CourseID,
		&purchase.CreatedAt,
		&purchase.UpdatedAt,
	)

	if err != nil {
		log.Error(ctx, "error creating purchase", zap.Error(err))
		return nil, fmt.Errorf("error creating purchase: %w", err)
	}

	return &purchase, nil
}

// FindByUserAndCourse находит покупку по паре (пользователь, курс).
func (r *PurchaseRepository) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*entities.Purchase, error) {
	log := logger.Log(ctx).With(zap.String("repository", "purchase"), zap.String("method", "FindByUserAndCourse"))

	query := `
        SELECT id, user_id, course_id, created_at, updated_at
        FROM purchases
        WHERE user_id = $1 AND course_id = $2
    `

	var purchase entities.Purchase
	err := r.pool.QueryRow(ctx, query, userID, courseID).Scan(
		&purchase.ID,
		&purchase.UserID,
		&purchase.CourseID,
		&purchase.CreatedAt,
		&purchase.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "purchase not found", zap.String("userID", userID), zap.String("courseID", courseID))
			return nil, entities.ErrPurchaseNotFound
		}
		log.Error(ctx, "error finding purchase", zap.Error(err))
		return nil, fmt.Errorf("error querying purchase: %w", err)
	}

	return &purchase, nil
}

// ListByUser возвращает покупки пользователя, развернутые полными записями
// курсов. Один JOIN заменяет раскрытие ссылок по одной.
func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string) ([]*entities.PurchasedCourse, error) {
	log := logger.Log(ctx).With(zap.String("repository", "purchase"), zap.String("method", "ListByUser"))

	query := `
        SELECT p.id, p.user_id, p.course_id, p.created_at, p.updated_at,
               c.id, c.title, c.description, c.price, c.image_url, c.creator_id, c.created_at, c.updated_at
        FROM purchases p
        JOIN courses c ON c.id = p.course_id
        WHERE p.user_id = $1
        ORDER BY p.created_at
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error listing purchases", zap.Error(err))
		return nil, fmt.Errorf("error querying purchases: %w", err)
	}
	defer rows.Close()

	purchases := make([]*entities.PurchasedCourse, 0)
	for rows.Next() {
		var item entities.PurchasedCourse
		if err := rows.Scan(
			&item.Purchase.ID,
			&item.Purchase.UserID,
			&item.Purchase.CourseID,
			&item.Purchase.CreatedAt,
			&item.Purchase.UpdatedAt,
			&item.Course.ID,
			&item.Course.Title,
			&item.Course.Description,
			&item.Course.Price,
			&item.Course.ImageURL,
			&item.Course.CreatorID,
			&item.Course.CreatedAt,
			&item.Course.UpdatedAt,
		); err != nil {
			log.Error(ctx, "error scanning purchase row", zap.Error(err))
			return nil, fmt.Errorf("error scanning purchase row: %w", err)
		}
		purchases = append(purchases, &item)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating purchase rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}

	return purchases, nil
}

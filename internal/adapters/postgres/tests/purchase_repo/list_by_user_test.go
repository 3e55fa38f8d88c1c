package purchaserepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursebay/internal/adapters/postgres"
	"coursebay/pkg/logger"
)

var purchasedColumns = []string{
	"id", "user_id", "course_id", "created_at", "updated_at",
	"c_id", "title", "description", "price", "image_url", "creator_id", "c_created_at", "c_updated_at",
}

func TestPurchaseRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	userID := "user-1"
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Покупки развернуты записями курсов", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(purchasedColumns).
			AddRow("purchase-1", userID, "course-1", now, now,
				"course-1", "Go from Scratch", "Intro course on Go backend development.", 49.99, "https://img.example.com/go.png", "creator-1", now, now).
			AddRow("purchase-2", userID, "course-2", now, now,
				"course-2", "Practical PostgreSQL", "Queries, indexes and transactions in practice.", 39.99, "https://img.example.com/pg.png", "creator-2", now, now)

		mock.ExpectQuery("SELECT p.id, p.user_id, p.course_id, p.created_at, p.updated_at").
			WithArgs(userID).
			WillReturnRows(rows)

		repo := postgres.NewPurchaseRepository(mock)

		purchased, err := repo.ListByUser(ctx, userID)

		require.NoError(t, err)
		require.Len(t, purchased, 2)
		assert.Equal(t, "purchase-1", purchased[0].Purchase.ID)
		assert.Equal(t, "Go from Scratch", purchased[0].Course.Title)
		assert.Equal(t, "course-2", purchased[1].Purchase.CourseID)
		assert.Equal(t, "creator-2", purchased[1].Course.CreatorID)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Пустой журнал покупок возвращает пустой срез", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT p.id, p.user_id, p.course_id, p.created_at, p.updated_at").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(purchasedColumns))

		repo := postgres.NewPurchaseRepository(mock)

		purchased, err := repo.ListByUser(ctx, userID)

		require.NoError(t, err)
		assert.NotNil(t, purchased)
		assert.Empty(t, purchased)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery("SELECT p.id, p.user_id, p.course_id, p.created_at, p.updated_at").
			WithArgs(userID).
			WillReturnError(dbError)

		repo := postgres.NewPurchaseRepository(mock)

		purchased, err := repo.ListByUser(ctx, userID)

		assert.Nil(t, purchased)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error querying purchases")

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}

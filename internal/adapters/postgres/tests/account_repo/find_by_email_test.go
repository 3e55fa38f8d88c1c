package accountrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursebay/internal/adapters/postgres"
	"coursebay/internal/domain/entities"
	"coursebay/pkg/logger"
)

func TestAccountRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	testAccount := entities.Account{
		ID:           "test-account-id",
		Name:         "Jane Roe",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("Успешное получение по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(testAccount.ID, testAccount.Name, testAccount.Email, testAccount.PasswordHash, testAccount.CreatedAt, testAccount.UpdatedAt)

		mock.ExpectQuery("SELECT id, name, email, password_hash, created_at, updated_at").
			WithArgs(testAccount.Email).
			WillReturnRows(rows)

		repo := postgres.NewAccountRepository(mock)

		account, err := repo.FindByEmail(ctx, entities.KindUser, testAccount.Email)

		require.NoError(t, err)
		assert.Equal(t, testAccount.ID, account.ID)
		assert.Equal(t, entities.KindUser, account.Kind)
		assert.Equal(t, testAccount.Email, account.Email)
		assert.Equal(t, testAccount.PasswordHash, account.PasswordHash)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Учетная запись не найдена по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		nonExistingEmail := "nonexistent@example.com"
		mock.ExpectQuery("SELECT id, name, email, password_hash, created_at, updated_at").
			WithArgs(nonExistingEmail).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewAccountRepository(mock)

		account, err := repo.FindByEmail(ctx, entities.KindCreator, nonExistingEmail)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, entities.ErrAccountNotFound)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка базы данных при поиске по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery("SELECT id, name, email, password_hash, created_at, updated_at").
			WithArgs(testAccount.Email).
			WillReturnError(dbError)

		repo := postgres.NewAccountRepository(mock)

		account, err := repo.FindByEmail(ctx, entities.KindUser, testAccount.Email)

		assert.Nil(t, account)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error querying account by email")

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}

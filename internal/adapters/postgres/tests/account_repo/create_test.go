package accountrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursebay/internal/adapters/postgres"
	"coursebay/internal/domain/entities"
	"coursebay/pkg/logger"
)

func TestAccountRepository_Create(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	inputAccount := &entities.Account{
		Name:         "Jane Roe",
		Email:        "new@example.com",
		PasswordHash: "hashed_new_password",
	}

	expectedAccount := entities.Account{
		ID:           "generated-uuid",
		Name:         inputAccount.Name,
		Email:        inputAccount.Email,
		PasswordHash: inputAccount.PasswordHash,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputAccount.Name, inputAccount.Email, inputAccount.PasswordHash).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
					AddRow(expectedAccount.ID, expectedAccount.Name, expectedAccount.Email, expectedAccount.PasswordHash, expectedAccount.CreatedAt, expectedAccount.UpdatedAt),
			)

		repo := postgres.NewAccountRepository(mock)
		created, err := repo.Create(ctx, entities.KindUser, inputAccount)

		require.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, expectedAccount.ID, created.ID)
		assert.Equal(t, entities.KindUser, created.Kind)
		assert.Equal(t, expectedAccount.Email, created.Email)
		assert.Equal(t, expectedAccount.PasswordHash, created.PasswordHash)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Автор создается в таблице creators", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO creators .+").
			WithArgs(inputAccount.Name, inputAccount.Email, inputAccount.PasswordHash).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
					AddRow(expectedAccount.ID, expectedAccount.Name, expectedAccount.Email, expectedAccount.PasswordHash, expectedAccount.CreatedAt, expectedAccount.UpdatedAt),
			)

		repo := postgres.NewAccountRepository(mock)
		created, err := repo.Create(ctx, entities.KindCreator, inputAccount)

		require.NoError(t, err)
		assert.Equal(t, entities.KindCreator, created.Kind)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка при создании - общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputAccount.Name, inputAccount.Email, inputAccount.PasswordHash).
			WillReturnError(dbError)

		repo := postgres.NewAccountRepository(mock)
		created, err := repo.Create(ctx, entities.KindUser, inputAccount)

		assert.Nil(t, created)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error creating account")

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}

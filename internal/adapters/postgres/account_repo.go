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

// AccountRepository реализует repositories.AccountRepository для Postgres.
// Покупатели и авторы живут в отдельных таблицах с одинаковой схемой,
// поэтому уникальность email действует внутри каждого вида отдельно.
type AccountRepository struct {
	pool PgxPoolInterface
}

// NewAccountRepository создает новый экземпляр репозитория учетных записей.
func NewAccountRepository(pool PgxPoolInterface) repositories.AccountRepository {
	return &AccountRepository{pool: pool}
}

// tableFor возвращает имя таблицы для вида учетной записи.
func tableFor(kind entities.ActorKind) string {
	if kind == entities.KindCreator {
		return "creators"
	}
	return "users"
}

// Create создает новую учетную запись указанного вида.
func (r *AccountRepository) Create(ctx context.Context, kind entities.ActorKind, account *entities.Account) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("repository", "account"), zap.String("method", "Create"))

	query := fmt.Sprintf(`
        INSERT INTO %s (name, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id, name, email, password_hash, created_at, updated_at
    `, tableFor(kind))

	var created entities.Account
	err := r.pool.QueryRow(ctx, query,
		account.Name,
		account.Email,
		account.PasswordHash,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.PasswordHash,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		log.Error(ctx, "error creating account", zap.Error(err))
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	created.Kind = kind
	return &created, nil
}

// FindByID находит учетную запись по ID.
func (r *AccountRepository) FindByID(ctx context.Context, kind entities.ActorKind, id string) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("repository", "account"), zap.String("method", "FindByID"))

	query := fmt.Sprintf(`
        SELECT id, name, email, password_hash, created_at, updated_at
        FROM %s
        WHERE id = $1
    `, tableFor(kind))

	var account entities.Account
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "account not found", zap.String("id", id))
			return nil, entities.ErrAccountNotFound
		}
		log.Error(ctx, "error finding account by id", zap.Error(err))
		return nil, fmt.Errorf("error querying account by id: %w", err)
	}

	account.Kind = kind
	return &account, nil
}

// FindByEmail находит учетную запись по email.
func (r *AccountRepository) FindByEmail(ctx context.Context, kind entities.ActorKind, email string) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("repository", "account"), zap.String("method", "FindByEmail"))

	query := fmt.Sprintf(`
        SELECT id, name, email, password_hash, created_at, updated_at
        FROM %s
        WHERE email = $1
    `, tableFor(kind))

	var account entities.Account
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "account not found", zap.String("email", email))
			return nil, entities.ErrAccountNotFound
		}
		log.Error(ctx, "error finding account by email", zap.Error(err))
		return nil, fmt.Errorf("error querying account by email: %w", err)
	}

	account.Kind = kind
	return &account, nil
}

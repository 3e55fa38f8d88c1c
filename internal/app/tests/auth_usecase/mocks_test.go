package authusecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"coursebay/internal/domain/entities"
)

const (
	ErrCreateAccount      = "failed to create account"
	ErrFindAccountByID    = "failed to find account by ID"
	ErrFindAccountByEmail = "failed to find account by email"
)

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) Create(ctx context.Context, kind entities.ActorKind, account *entities.Account) (*entities.Account, error) {
	args := m.Called(ctx, kind, account)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateAccount, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *mockAccountRepository) FindByID(ctx context.Context, kind entities.ActorKind, id string) (*entities.Account, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindAccountByID, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, kind entities.ActorKind, email string) (*entities.Account, error) {
	args := m.Called(ctx, kind, email)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindAccountByEmail, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(ctx context.Context, actorID string) (string, time.Time, error) {
	args := m.Called(ctx, actorID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) ValidateToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

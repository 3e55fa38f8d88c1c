// Package app реализует бизнес-логику каталога курсов.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"coursebay/internal/domain/entities"
	"coursebay/internal/domain/services"
	"coursebay/internal/ports/api"
	"coursebay/internal/ports/repositories"
	svc "coursebay/internal/ports/services"
	"coursebay/pkg/logger"
)

const (
	methodSignUp     = "SignUp"
	methodSignIn     = "SignIn"
	methodGetProfile = "GetProfile"

	msgStartSignUp      = "starting signup"
	msgEmailExists      = "account with this email already exists"
	msgAccountCreated   = "account created successfully"
	msgSignInAttempt    = "signin attempt"
	msgSignInNonExist   = "signin attempt with non-existent email"
	msgInvalidPassword  = "invalid password provided"
	msgTokenIssued      = "bearer token issued"
	msgFetchingProfile  = "fetching profile"
	msgProfileNotFound  = "profile not found"
	msgProfileFetched   = "profile fetched successfully"

	msgErrCheckExisting = "failed to check existing account"
	msgErrHashPassword  = "failed to hash password"
	msgErrCreateAccount = "failed to create account"
	msgErrFindAccount   = "error finding account by email"
	msgErrVerifyPass    = "error verifying password"
	msgErrIssueToken    = "failed to issue bearer token"

	errCtxCheckingAccount   = "checking existing account"
	errCtxEmailRegistered   = "email already registered"
	errCtxHashingPassword   = "hashing password"
	errCtxCreatingAccount   = "creating account"
	errCtxFindingAccount    = "finding account"
	errCtxVerifyingPassword = "verifying password"
	errCtxInvalidCreds      = "invalid credentials"
	errCtxIssuingToken      = "issuing token"
	errCtxFetchingProfile   = "fetching profile"
)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase для двух видов
// учетных записей: покупателей и авторов.
type AuthUseCaseImpl struct {
	accountRepo repositories.AccountRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	accountRepo repositories.AccountRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		accountRepo: accountRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// SignUp создает новую учетную запись указанного вида.
// Токен при регистрации не выдается: вход выполняется отдельно.
func (a *AuthUseCaseImpl) SignUp(ctx context.Context, kind entities.ActorKind, name, email, password string) error {
	log := logger.Log(ctx).With(
		zap.String("method", methodSignUp),
		zap.String("kind", string(kind)),
		zap.String("email", email),
	)
	log.Debug(ctx, msgStartSignUp)

	existing, err := a.accountRepo.FindByEmail(ctx, kind, email)
	if err != nil && !errors.Is(err, entities.ErrAccountNotFound) {
		log.Error(ctx, msgErrCheckExisting, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingAccount, err)
	}
	if existing != nil {
		log.Debug(ctx, msgEmailExists)
		return fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	account := &entities.Account{
		Kind:         kind,
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	created, err := a.accountRepo.Create(ctx, kind, account)
	if err != nil {
		log.Error(ctx, msgErrCreateAccount, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCreatingAccount, err)
	}

	log.Info(ctx, msgAccountCreated, zap.String("accountID", created.ID))
	return nil
}

// SignIn аутентифицирует учетную запись по email и паролю и выдает bearer токен.
func (a *AuthUseCaseImpl) SignIn(ctx context.Context, kind entities.ActorKind, email, password string) (*services.IssuedToken, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodSignIn),
		zap.String("kind", string(kind)),
		zap.String("email", email),
	)
	log.Debug(ctx, msgSignInAttempt)

	account, err := a.accountRepo.FindByEmail(ctx, kind, email)
	if err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			log.Debug(ctx, msgSignInNonExist)
			return nil, fmt.Errorf("%s: %w", errCtxFindingAccount, entities.ErrAccountNotFound)
		}
		log.Error(ctx, msgErrFindAccount, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingAccount, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, account.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyPass, zap.Error(err), zap.String("accountID", account.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword, zap.String("accountID", account.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCreds, services.ErrInvalidCredentials)
	}

	token, expiresAt, err := a.tokenSvc.GenerateToken(ctx, account.ID)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err), zap.String("accountID", account.ID))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgTokenIssued, zap.String("accountID", account.ID), zap.Time("expiresAt", expiresAt))

	return &services.IssuedToken{
		ActorID:   account.ID,
		Token:     token,
		IssuedAt:  time.Now().UTC(),
		ExpiresAt: expiresAt,
	}, nil
}

// GetProfile возвращает учетную запись по проверенному идентификатору из токена.
func (a *AuthUseCaseImpl) GetProfile(ctx context.Context, kind entities.ActorKind, actorID string) (*entities.Account, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetProfile),
		zap.String("kind", string(kind)),
		zap.String("accountID", actorID),
	)
	log.Debug(ctx, msgFetchingProfile)

	if actorID == "" {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, entities.ErrEmptyAccountID)
	}

	account, err := a.accountRepo.FindByID(ctx, kind, actorID)
	if err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			log.Debug(ctx, msgProfileNotFound)
			return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, entities.ErrAccountNotFound)
		}
		log.Error(ctx, msgErrFindAccount, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	log.Debug(ctx, msgProfileFetched)
	return account, nil
}

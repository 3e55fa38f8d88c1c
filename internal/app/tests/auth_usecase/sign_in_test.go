package authusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coursebay/internal/app"
	"coursebay/internal/domain/entities"
	"coursebay/internal/domain/services"
)

var (
	ErrPasswordVerification = errors.New("password verification error")
	ErrTokenGeneration      = errors.New("token generation failed")
)

func TestSignIn(t *testing.T) {
	testEmail := "jane@example.com"
	testPassword := "Sup3rSecret!"
	accountID := "account-123"
	hashedPassword := "hashed_password"

	now := time.Now()
	tokenExpiry := now.Add(360 * time.Hour)
	bearerToken := "bearer-token-123"

	testAccount := &entities.Account{
		ID:           accountID,
		Kind:         entities.KindUser,
		Name:         "Jane Roe",
		Email:        testEmail,
		PasswordHash: hashedPassword,
		CreatedAt:    now.Add(-24 * time.Hour),
		UpdatedAt:    now.Add(-24 * time.Hour),
	}

	tests := []struct {
		name         string
		email        string
		password     string
		setupMocks   func(mockRepo *mockAccountRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService)
		expectedErr  error
		errorContext string
	}{
		{
			name:     "success - token issued",
			email:    testEmail,
			password: testPassword,
			setupMocks: func(mockRepo *mockAccountRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockRepo.On("FindByEmail", mock.Anything, entities.KindUser, testEmail).
					Return(testAccount, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).
					Return(true, nil).Once()
				mockTokenSvc.On("GenerateToken", mock.Anything, accountID).
					Return(bearerToken, tokenExpiry, nil).Once()
			},
			expectedErr: nil,
		},
		{
			name:     "error - account not found",
			email:    "nobody@example.com",
			password: testPassword,
			setupMocks: func(mockRepo *mockAccountRepository, _ *mockPasswordService, _ *mockTokenService) {
				mockRepo.On("FindByEmail", mock.Anything, entities.KindUser, "nobody@example.com").
					Return(nil, entities.ErrAccountNotFound).Once()
			},
			expectedErr:  entities.ErrAccountNotFound,
			errorContext: "finding account",
		},
		{
			name:     "error - database error finding account",
			email:    testEmail,
			password: testPassword,
			setupMocks: func(mockRepo *mockAccountRepository, _ *mockPasswordService, _ *mockTokenService) {
				mockRepo.On("FindByEmail", mock.Anything, entities.KindUser, testEmail).
					Return(nil, ErrDatabaseConnection).Once()
			},
			expectedErr:  ErrDatabaseConnection,
			errorContext: "finding account",
		},
		{
			name:     "error - password verification error",
			email:    testEmail,
			password: testPassword,
			setupMocks: func(mockRepo *mockAccountRepository, mockPasswordSvc *mockPasswordService, _ *mockTokenService) {
				mockRepo.On("FindByEmail", mock.Anything, entities.KindUser, testEmail).
					Return(testAccount, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).
					Return(false, ErrPasswordVerification).Once()
			},
			expectedErr:  ErrPasswordVerification,
			errorContext: "verifying password",
		},
		{
			name:     "error - wrong password",
			email:    testEmail,
			password: "wrongpassword",
			setupMocks: func(mockRepo *mockAccountRepository, mockPasswordSvc *mockPasswordService, _ *mockTokenService) {
				mockRepo.On("FindByEmail", mock.Anything, entities.KindUser, testEmail).
					Return(testAccount, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, "wrongpassword", hashedPassword).
					Return(false, nil).Once()
			},
			expectedErr:  services.ErrInvalidCredentials,
			errorContext: "invalid credentials",
		},
		{
			name:     "error - token generation fails",
			email:    testEmail,
			password: testPassword,
			setupMocks: func(mockRepo *mockAccountRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockRepo.On("FindByEmail", mock.Anything, entities.KindUser, testEmail).
					Return(testAccount, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).
					Return(true, nil).Once()
				mockTokenSvc.On("GenerateToken", mock.Anything, accountID).
					Return("", time.Time{}, ErrTokenGeneration).Once()
			},
			expectedErr:  services.ErrTokenGenerationFailed,
			errorContext: "issuing token",
		},
	}

	for _, ttt := range tests {
		t.Run(ttt.name, func(t *testing.T) {
			mockRepo := new(mockAccountRepository)
			mockPasswordSvc := new(mockPasswordService)
			mockTokenSvc := new(mockTokenService)

			ttt.setupMocks(mockRepo, mockPasswordSvc, mockTokenSvc)

			authUseCase := app.NewAuthUseCase(mockRepo, mockPasswordSvc, mockTokenSvc)

			ctx := context.Background()
			issued, err := authUseCase.SignIn(ctx, entities.KindUser, ttt.email, ttt.password)

			if ttt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, ttt.expectedErr)
				assert.Contains(t, err.Error(), ttt.errorContext)
				assert.Nil(t, issued)
			} else {
				require.NoError(t, err)
				require.NotNil(t, issued)
				assert.Equal(t, accountID, issued.ActorID)
				assert.Equal(t, bearerToken, issued.Token)
				assert.WithinDuration(t, time.Now(), issued.IssuedAt, 5*time.Second)
				assert.Equal(t, tokenExpiry, issued.ExpiresAt)
			}

			mockRepo.AssertExpectations(t)
			mockPasswordSvc.AssertExpectations(t)
			mockTokenSvc.AssertExpectations(t)
		})
	}
}

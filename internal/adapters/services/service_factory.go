// Package services предоставляет реализации сервисов паролей и токенов
// и фабрику для их создания.
package services

import (
	"time"

	"coursebay/internal/ports/services"
)

// ServiceFactory создает все необходимые сервисы аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(secretKey string, tokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    NewJWT(secretKey, tokenTTL),
	}
}

// PasswordService возвращает сервис работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает сервис работы с токенами.
func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}

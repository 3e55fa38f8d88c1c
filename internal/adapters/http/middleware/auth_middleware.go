// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	svc "coursebay/internal/ports/services"
	"coursebay/pkg/logger"
)

// ActorIDKey - ключ Locals с проверенным идентификатором учетной записи.
// Обработчики обязаны использовать только его, а не поля тела запроса.
const ActorIDKey = "actorID"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "token verification failed"

	msgUnauthorized = "Unauthorized"
)

// NewAuthMiddleware создает промежуточное ПО проверки bearer токена.
// Любая причина отказа отвечает одинаковым 401 без деталей.
func NewAuthMiddleware(tokenService svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return unauthorized(ctx)
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return unauthorized(ctx)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		actorID, err := tokenService.ValidateToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return unauthorized(ctx)
		}

		ctx.Locals(ActorIDKey, actorID)

		return ctx.Next()
	}
}

// unauthorized отправляет единый ответ 401.
func unauthorized(ctx fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": msgUnauthorized,
	})
}

// ActorID извлекает проверенный идентификатор учетной записи из контекста запроса.
func ActorID(ctx fiber.Ctx) (string, bool) {
	actorID, ok := ctx.Locals(ActorIDKey).(string)
	return actorID, ok && actorID != ""
}

// Package accounts содержит HTTP обработчики регистрации, входа и профиля.
package accounts

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"coursebay/internal/adapters/http/dto"
	"coursebay/internal/adapters/http/middleware"
	"coursebay/internal/domain/entities"
	"coursebay/internal/domain/services"
	"coursebay/internal/ports/api"
	"coursebay/internal/validation"
	"coursebay/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerSignUp  = "account handler: signup"
	LogHandlerSignIn  = "account handler: signin"
	LogHandlerProfile = "account handler: profile"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"

	msgBadRequest     = "Bad Request"
	msgUnauthorized   = "Unauthorized"
	msgInternalError  = "Internal Server Error"
	msgSignUpComplete = "Signup completed successfully"
	msgSignInComplete = "Signin completed successfully"
)

// Handler содержит HTTP обработчики учетных записей одного вида.
// Один и тот же код обслуживает /user и /creator, меняется только вид.
type Handler struct {
	authUseCase api.AuthUseCase
	validator   *validation.Validator
	kind        entities.ActorKind
}

// NewHandler создает новый экземпляр обработчика учетных записей.
func NewHandler(authUseCase api.AuthUseCase, validator *validation.Validator, kind entities.ActorKind) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		validator:   validator,
		kind:        kind,
	}
}

// label возвращает имя вида для текстов ответов.
func (h *Handler) label() string {
	if h.kind == entities.KindCreator {
		return "Creator"
	}
	return "User"
}

// sendJSON отправляет ответ с указанным статусом.
func sendJSON(ctx fiber.Ctx, statusCode int, body fiber.Map) error {
	if err := ctx.Status(statusCode).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// SignUp обрабатывает запрос на регистрацию.
func (h *Handler) SignUp(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("kind", string(h.kind)))
	log.Info(requestCtx, LogHandlerSignUp)

	var req dto.SignUpRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendJSON(ctx, http.StatusBadRequest, fiber.Map{"message": msgBadRequest})
	}

	if violations := h.validator.Struct(&req); len(violations) > 0 {
		return sendJSON(ctx, http.StatusBadRequest, fiber.Map{
			"message": msgBadRequest,
			"errors":  violations,
		})
	}

	if err := h.authUseCase.SignUp(requestCtx, h.kind, req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			return sendJSON(ctx, http.StatusBadRequest, fiber.Map{
				"message": fmt.Sprintf("%s with %s email already exists!", h.label(), req.Email),
			})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendJSON(ctx, http.StatusInternalServerError, fiber.Map{"message": msgInternalError})
	}

	return sendJSON(ctx, http.StatusCreated, fiber.Map{"message": msgSignUpComplete})
}

// SignIn обрабатывает запрос на вход и выдает bearer токен.
func (h *Handler) SignIn(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("kind", string(h.kind)))
	log.Info(requestCtx, LogHandlerSignIn)

	var req dto.SignInRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendJSON(ctx, http.StatusBadRequest, fiber.Map{"message": msgBadRequest})
	}

	if violations := h.validator.Struct(&req); len(violations) > 0 {
		return sendJSON(ctx, http.StatusBadRequest, fiber.Map{
			"message": msgBadRequest,
			"errors":  violations,
		})
	}

	issued, err := h.authUseCase.SignIn(requestCtx, h.kind, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrAccountNotFound):
			return sendJSON(ctx, http.StatusNotFound, fiber.Map{
				"message": fmt.Sprintf("%s with %s email not present!", h.label(), req.Email),
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			return sendJSON(ctx, http.StatusUnauthorized, fiber.Map{"message": msgUnauthorized})
		default:
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return sendJSON(ctx, http.StatusInternalServerError, fiber.Map{"message": msgInternalError})
		}
	}

	return sendJSON(ctx, http.StatusCreated, fiber.Map{
		"message": msgSignInComplete,
		"token":   issued.Token,
	})
}

// Profile возвращает профиль учетной записи, определенной токеном.
// Идентификатор берется только из проверенного токена, не из тела запроса.
func (h *Handler) Profile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("kind", string(h.kind)))
	log.Info(requestCtx, LogHandlerProfile)

	actorID, ok := middleware.ActorID(ctx)
	if !ok {
		return sendJSON(ctx, http.StatusUnauthorized, fiber.Map{"message": msgUnauthorized})
	}

	account, err := h.authUseCase.GetProfile(requestCtx, h.kind, actorID)
	if err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			return sendJSON(ctx, http.StatusNotFound, fiber.Map{
				"message": fmt.Sprintf("%s not found!", h.label()),
			})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendJSON(ctx, http.StatusInternalServerError, fiber.Map{"message": msgInternalError})
	}

	return sendJSON(ctx, http.StatusOK, fiber.Map{
		"message": fmt.Sprintf("%s found", h.label()),
		"data":    dto.NewProfileResponse(account),
	})
}

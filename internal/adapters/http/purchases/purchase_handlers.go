// Package purchases содержит HTTP обработчики журнала покупок.
package purchases

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"coursebay/internal/adapters/http/dto"
	"coursebay/internal/adapters/http/middleware"
	"coursebay/internal/domain/entities"
	"coursebay/internal/ports/api"
	"coursebay/internal/validation"
	"coursebay/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerBuy  = "purchase handler: buy course"
	LogHandlerList = "purchase handler: list purchases"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"

	msgBadRequest       = "Bad Request"
	msgUnauthorized     = "Unauthorized"
	msgInternalError    = "Internal Server Error"
	msgCourseNotFound   = "Course not found"
	msgAlreadyPurchased = "You have already purchased this course!"
	msgPurchased        = "You have successfully purchased this course!"
	msgNoPurchases      = "You did not purchase any courses!"
)

// Handler содержит HTTP обработчики покупок.
type Handler struct {
	purchaseUseCase api.PurchaseUseCase
	validator       *validation.Validator
}

// NewHandler создает новый экземпляр обработчика покупок.
func NewHandler(purchaseUseCase api.PurchaseUseCase, validator *validation.Validator) *Handler {
	return &Handler{
		purchaseUseCase: purchaseUseCase,
		validator:       validator,
	}
}

// sendJSON отправляет ответ с указанным статусом.
func sendJSON(ctx fiber.Ctx, statusCode int, body fiber.Map) error {
	if err := ctx.Status(statusCode).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Buy фиксирует покупку курса пользователем из токена.
func (h *Handler) Buy(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerBuy)

	userID, ok := middleware.ActorID(ctx)
	if !ok {
		return sendJSON(ctx, http.StatusUnauthorized, fiber.Map{"message": msgUnauthorized})
	}

	var req dto.BuyCourseRequest
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

	if _, err := h.purchaseUseCase.PurchaseCourse(requestCtx, userID, req.CourseID); err != nil {
		switch {
		case errors.Is(err, entities.ErrAlreadyPurchased):
			return sendJSON(ctx, http.StatusBadRequest, fiber.Map{"message": msgAlreadyPurchased})
		case errors.Is(err, entities.ErrCourseNotFound):
			return sendJSON(ctx, http.StatusNotFound, fiber.Map{"message": msgCourseNotFound})
		default:
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return sendJSON(ctx, http.StatusInternalServerError, fiber.Map{"message": msgInternalError})
		}
	}

	return sendJSON(ctx, http.StatusOK, fiber.Map{"message": msgPurchased})
}

// List возвращает покупки пользователя с полными записями курсов.
// Пустой журнал - сообщение, не ошибка.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	userID, ok := middleware.ActorID(ctx)
	if !ok {
		return sendJSON(ctx, http.StatusUnauthorized, fiber.Map{"message": msgUnauthorized})
	}

	purchased, err := h.purchaseUseCase.ListPurchases(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendJSON(ctx, http.StatusInternalServerError, fiber.Map{"message": msgInternalError})
	}

	if len(purchased) == 0 {
		return sendJSON(ctx, http.StatusOK, fiber.Map{"message": msgNoPurchases})
	}

	return sendJSON(ctx, http.StatusOK, fiber.Map{"data": purchased})
}

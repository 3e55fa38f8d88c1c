// Package courses содержит HTTP обработчики каталога курсов.
package courses

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
	LogHandlerList       = "course handler: list"
	LogHandlerCreate     = "course handler: create"
	LogHandlerDelete     = "course handler: delete"
	LogHandlerUpdate     = "course handler: update"
	LogHandlerAddContent = "course handler: add content"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"

	msgBadRequest     = "Bad Request"
	msgUnauthorized   = "Unauthorized"
	msgInternalError  = "Internal Server Error"
	msgCourseAdded    = "New Course Added Successfully!"
	msgCourseDeleted  = "Course deleted successfully"
	msgCourseNotFound = "Course not found"
	msgNotImplemented = "Not implemented"
)

// Handler содержит HTTP обработчики каталога курсов.
type Handler struct {
	courseUseCase api.CourseUseCase
	validator     *validation.Validator
}

// NewHandler создает новый экземпляр обработчика курсов.
func NewHandler(courseUseCase api.CourseUseCase, validator *validation.Validator) *Handler {
	return &Handler{
		courseUseCase: courseUseCase,
		validator:     validator,
	}
}

// sendJSON отправляет ответ с указанным статусом.
func sendJSON(ctx fiber.Ctx, statusCode int, body fiber.Map) error {
	if err := ctx.Status(statusCode).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// List возвращает все курсы каталога. Маршрут публичный.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	courses, err := h.courseUseCase.ListCourses(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendJSON(ctx, http.StatusInternalServerError, fiber.Map{"message": msgInternalError})
	}

	return sendJSON(ctx, http.StatusOK, fiber.Map{"courses": courses})
}

// Create публикует новый курс от имени автора из токена.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	creatorID, ok := middleware.ActorID(ctx)
	if !ok {
		return sendJSON(ctx, http.StatusUnauthorized, fiber.Map{"message": msgUnauthorized})
	}

	var req dto.CreateCourseRequest
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

	course, err := h.courseUseCase.CreateCourse(requestCtx, creatorID, req.Title, req.Description, *req.Price, req.ImageURL)
	if err != nil {
		if errors.Is(err, entities.ErrDuplicateCourseTitle) {
			return sendJSON(ctx, http.StatusBadRequest, fiber.Map{
				"message": fmt.Sprintf("Course already exists with %s title!", req.Title),
			})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendJSON(ctx, http.StatusInternalServerError, fiber.Map{"message": msgInternalError})
	}

	return sendJSON(ctx, http.StatusOK, fiber.Map{
		"message": msgCourseAdded,
		"course":  course,
	})
}

// Delete удаляет курс вместе с его покупками.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	courseID := ctx.Params("courseId")

	deleted, purchases, err := h.courseUseCase.DeleteCourse(requestCtx, courseID)
	if err != nil {
		if errors.Is(err, entities.ErrCourseNotFound) {
			return sendJSON(ctx, http.StatusNotFound, fiber.Map{"message": msgCourseNotFound})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendJSON(ctx, http.StatusInternalServerError, fiber.Map{"message": msgInternalError})
	}

	return sendJSON(ctx, http.StatusOK, fiber.Map{
		"message":          msgCourseDeleted,
		"deletedCourse":    deleted,
		"deletedPurchased": purchases,
	})
}

// Update заявлен контрактом, но намеренно не реализован. Явный ответ 501
// не дает клиенту считать запись успешной.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerUpdate)

	return sendJSON(ctx, http.StatusNotImplemented, fiber.Map{
		"message": fmt.Sprintf("%s: updating a course is not supported yet", msgNotImplemented),
	})
}

// AddContent заявлен контрактом, но намеренно не реализован.
func (h *Handler) AddContent(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerAddContent)

	return sendJSON(ctx, http.StatusNotImplemented, fiber.Map{
		"message": fmt.Sprintf("%s: adding course content is not supported yet", msgNotImplemented),
	})
}

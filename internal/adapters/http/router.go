// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"coursebay/internal/adapters/http/accounts"
	"coursebay/internal/adapters/http/courses"
	"coursebay/internal/adapters/http/middleware"
	"coursebay/internal/adapters/http/purchases"
	"coursebay/internal/domain/entities"
	"coursebay/internal/ports/api"
	svc "coursebay/internal/ports/services"
	"coursebay/internal/validation"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	courseUseCase api.CourseUseCase,
	purchaseUseCase api.PurchaseUseCase,
	tokenService svc.TokenService,
) {
	validator := validation.New()

	userHandler := accounts.NewHandler(authUseCase, validator, entities.KindUser)
	creatorHandler := accounts.NewHandler(authUseCase, validator, entities.KindCreator)
	courseHandler := courses.NewHandler(courseUseCase, validator)
	purchaseHandler := purchases.NewHandler(purchaseUseCase, validator)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Проверка живости сервиса.
	app.Get("/ping", func(ctx fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "pong"})
	})

	// Каталог курсов (публичный).
	app.Get("/courses", courseHandler.List)

	// Маршруты пользователей.
	userRoutes := app.Group("/user")
	userRoutes.Post("/signup", userHandler.SignUp)
	userRoutes.Post("/signin", userHandler.SignIn)

	// Защищенные маршруты пользователей.
	userProtected := userRoutes.Group("")
	userProtected.Use(middleware.NewAuthMiddleware(tokenService))
	userProtected.Get("/profile", userHandler.Profile)
	userProtected.Post("/buy-course", purchaseHandler.Buy)
	userProtected.Get("/purchased-courses-list", purchaseHandler.List)

	// Маршруты авторов.
	creatorRoutes := app.Group("/creator")
	creatorRoutes.Post("/signup", creatorHandler.SignUp)
	creatorRoutes.Post("/signin", creatorHandler.SignIn)

	// Защищенные маршруты авторов.
	creatorProtected := creatorRoutes.Group("")
	creatorProtected.Use(middleware.NewAuthMiddleware(tokenService))
	creatorProtected.Get("/profile", creatorHandler.Profile)
	creatorProtected.Post("/course", courseHandler.Create)
	creatorProtected.Put("/course", courseHandler.Update)
	creatorProtected.Delete("/delete-course/:courseId", courseHandler.Delete)
	creatorProtected.Post("/add-course-content/:courseId", courseHandler.AddContent)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Route not found",
		})
	})
}

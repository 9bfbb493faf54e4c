package routes

import (
	"ewarga-backend/internal/handler"
	"ewarga-backend/internal/middleware"
	"ewarga-backend/internal/model"
	"ewarga-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHolidayRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewHolidayRepository(db)
	hdl := handler.NewHolidayHandler(repo)

	api := app.Group("/api/admin/holidays", middleware.Auth, middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.List)
	api.Post("/", hdl.Create)
	api.Delete("/:id", hdl.Delete)
}

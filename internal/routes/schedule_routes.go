package routes

import (
	"ewarga-backend/internal/handler"
	"ewarga-backend/internal/middleware"
	"ewarga-backend/internal/model"
	"ewarga-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupScheduleRoutes(app *fiber.App, db *gorm.DB) {
	svc := service.NewSchedulerService(db)
	hdl := handler.NewScheduleHandler(svc)

	// Staff can read their own month of schedules.
	mine := app.Group("/api/schedules", middleware.Auth)
	mine.Get("/mine", hdl.ListMine)

	api := app.Group("/api/admin/schedules", middleware.Auth, middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.ListByDate)
	api.Post("/", hdl.Create)
	api.Post("/bulk", hdl.BulkCreate)
	api.Post("/auto-generate", hdl.AutoGenerate)
	api.Delete("/:id", hdl.Delete)
}

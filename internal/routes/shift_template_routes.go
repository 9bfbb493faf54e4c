package routes

import (
	"ewarga-backend/config"
	"ewarga-backend/internal/handler"
	"ewarga-backend/internal/middleware"
	"ewarga-backend/internal/model"
	"ewarga-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupShiftTemplateRoutes(app *fiber.App, db *gorm.DB) {
	svc := service.NewShiftTemplateService(db, config.ClockOffset())
	hdl := handler.NewShiftTemplateHandler(svc)

	api := app.Group("/api/admin/shift-templates", middleware.Auth, middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.List)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.Get)
	api.Put("/:id", hdl.Update)
	api.Post("/:id/retire", hdl.Retire)
}

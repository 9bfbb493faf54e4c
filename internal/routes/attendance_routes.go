package routes

import (
	"ewarga-backend/config"
	"ewarga-backend/internal/handler"
	"ewarga-backend/internal/middleware"
	"ewarga-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	svc := service.NewAttendanceService(db, config.CachedGeofence{}, config.ClockOffset())
	hdl := handler.NewAttendanceHandler(svc)

	api := app.Group("/api/attendance", middleware.Auth)

	api.Post("/clock-in", hdl.ClockIn)
	api.Post("/clock-out", hdl.ClockOut)
	api.Get("/history", hdl.GetHistory)
	api.Get("/recap", hdl.GetRecap)
	api.Get("/today", hdl.GetToday)
}

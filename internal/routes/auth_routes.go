package routes

import (
	"ewarga-backend/internal/handler"
	"ewarga-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	staffRepo := repository.NewStaffRepository(db)
	hdl := handler.NewAuthHandler(staffRepo)

	api := app.Group("/api/auth")
	api.Post("/login", hdl.Login)
}

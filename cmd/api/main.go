package main

import (
	"fmt"

	"ewarga-backend/config"
	"ewarga-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file, using system environment variables")
	}

	config.ConnectDB()

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New())

	// Uploaded attendance photos are served back to clients directly.
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupShiftTemplateRoutes(app, config.DB)
	routes.SetupScheduleRoutes(app, config.DB)
	routes.SetupHolidayRoutes(app, config.DB)

	addr := ":" + config.GetEnv("PORT", "3000")
	fmt.Println("Server listening on", addr)
	app.Listen(addr)
}

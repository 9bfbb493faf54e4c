package main

import (
	"fmt"
	"log"

	"ewarga-backend/config"
	"ewarga-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Starting database seeding...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file, using system environment variables")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)

	fmt.Println("Seeding done")
}

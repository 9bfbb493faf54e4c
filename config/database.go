package config

import (
	"fmt"

	"ewarga-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=UTC
	// loc=UTC: timestamps are stored in UTC, civil-time conversion happens
	// in the timeclock package.
	dsn := GetEnv("DATABASE_DSN",
		"root:@tcp(127.0.0.1:3306)/ewarga?charset=utf8mb4&parseTime=True&loc=UTC")

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	fmt.Println("Database connected")

	db.AutoMigrate(&model.Staff{})
	db.AutoMigrate(&model.ShiftTemplate{})
	db.AutoMigrate(&model.StaffSchedule{})
	db.AutoMigrate(&model.Attendance{})
	db.AutoMigrate(&model.Holiday{})

	DB = db
}

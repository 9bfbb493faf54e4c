package service

import (
	"fmt"
	"testing"

	"ewarga-backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Staff{},
		&model.ShiftTemplate{},
		&model.StaffSchedule{},
		&model.Attendance{},
		&model.Holiday{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedStaff(t *testing.T, db *gorm.DB, name string, category model.JobCategory) *model.Staff {
	t.Helper()
	staff := &model.Staff{
		Name:        name,
		EmployeeNo:  fmt.Sprintf("%s-%s", category, name),
		JobCategory: category,
		Role:        model.RoleStaff,
		IsActive:    true,
	}
	if err := db.Create(staff).Error; err != nil {
		t.Fatalf("seed staff %s: %v", name, err)
	}
	return staff
}

func seedAdmin(t *testing.T, db *gorm.DB) *model.Staff {
	t.Helper()
	admin := &model.Staff{
		Name:        "Admin",
		EmployeeNo:  "ADM-TEST",
		JobCategory: model.JobCategoryOther,
		Role:        model.RoleAdmin,
		IsActive:    true,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func seedTemplate(t *testing.T, db *gorm.DB, category model.JobCategory, name, start string, required int) *model.ShiftTemplate {
	t.Helper()
	template := &model.ShiftTemplate{
		JobCategory:        category,
		Name:               name,
		StartTime:          start,
		EndTime:            "14:00",
		ToleranceMinutes:   15,
		RequiredStaffCount: required,
		IsActive:           true,
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("seed template %s: %v", name, err)
	}
	return template
}

func countSchedules(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&model.StaffSchedule{}).Count(&count).Error; err != nil {
		t.Fatalf("count schedules: %v", err)
	}
	return count
}

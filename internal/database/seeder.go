package database

import (
	"log"

	"ewarga-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	// 1. Admin account
	admin := model.Staff{
		Name:        "Portal Administrator",
		EmployeeNo:  "ADM-001",
		Password:    string(hashedPassword),
		JobCategory: model.JobCategoryOther,
		Role:        model.RoleAdmin,
		IsActive:    true,
	}
	result := db.FirstOrCreate(&admin, model.Staff{EmployeeNo: admin.EmployeeNo})
	if result.Error == nil {
		// Keep the password in sync with "admin123" even if the row exists.
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Seeded admin account")
	}

	// 2. Sample workers per category
	workers := []model.Staff{
		{Name: "Agus Santoso", EmployeeNo: "SEC-001", JobCategory: model.JobCategorySecurity},
		{Name: "Budi Hartono", EmployeeNo: "SEC-002", JobCategory: model.JobCategorySecurity},
		{Name: "Citra Dewi", EmployeeNo: "SEC-003", JobCategory: model.JobCategorySecurity},
		{Name: "Dedi Firmansyah", EmployeeNo: "SEC-004", JobCategory: model.JobCategorySecurity},
		{Name: "Eka Putri", EmployeeNo: "CLN-001", JobCategory: model.JobCategoryCleaning},
		{Name: "Fajar Nugroho", EmployeeNo: "CLN-002", JobCategory: model.JobCategoryCleaning},
		{Name: "Gita Lestari", EmployeeNo: "GRD-001", JobCategory: model.JobCategoryGardening},
	}
	for _, w := range workers {
		w.Password = string(hashedPassword)
		w.Role = model.RoleStaff
		w.IsActive = true
		db.FirstOrCreate(&w, model.Staff{EmployeeNo: w.EmployeeNo})
	}

	// 3. Default shift templates
	templates := []model.ShiftTemplate{
		{JobCategory: model.JobCategorySecurity, Name: "Morning", StartTime: "06:00", EndTime: "14:00", ToleranceMinutes: 15, RequiredStaffCount: 2},
		{JobCategory: model.JobCategorySecurity, Name: "Evening", StartTime: "14:00", EndTime: "22:00", ToleranceMinutes: 15, RequiredStaffCount: 1},
		{JobCategory: model.JobCategorySecurity, Name: "Night", StartTime: "22:00", EndTime: "06:00", ToleranceMinutes: 15, RequiredStaffCount: 1},
		{JobCategory: model.JobCategoryCleaning, Name: "Day", StartTime: "07:00", EndTime: "15:00", ToleranceMinutes: 30, RequiredStaffCount: 1},
		{JobCategory: model.JobCategoryGardening, Name: "Day", StartTime: "07:00", EndTime: "15:00", ToleranceMinutes: 30, RequiredStaffCount: 1},
	}
	for _, t := range templates {
		t.IsActive = true
		db.FirstOrCreate(&t, model.ShiftTemplate{JobCategory: t.JobCategory, Name: t.Name})
	}

	// 4. Sample national holiday
	holiday := model.Holiday{Date: "2026-08-17", Label: "Hari Kemerdekaan"}
	db.FirstOrCreate(&holiday, model.Holiday{Date: holiday.Date})

	log.Println("Seeding finished")
}

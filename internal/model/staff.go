package model

import "gorm.io/gorm"

// JobCategory classifies a worker and constrains which shift templates
// apply to them.
type JobCategory string

const (
	JobCategorySecurity    JobCategory = "SECURITY"
	JobCategoryCleaning    JobCategory = "CLEANING"
	JobCategoryGardening   JobCategory = "GARDENING"
	JobCategoryMaintenance JobCategory = "MAINTENANCE"
	JobCategoryOther       JobCategory = "OTHER"
)

func (c JobCategory) Valid() bool {
	switch c {
	case JobCategorySecurity, JobCategoryCleaning, JobCategoryGardening,
		JobCategoryMaintenance, JobCategoryOther:
		return true
	}
	return false
}

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

type Staff struct {
	gorm.Model
	Name        string      `json:"name"`
	EmployeeNo  string      `json:"employee_no" gorm:"unique;not null"`
	Password    string      `json:"-"`
	JobCategory JobCategory `json:"job_category" gorm:"index"`
	Role        string      `json:"role" gorm:"default:STAFF"`
	IsActive    bool        `json:"is_active" gorm:"default:true"`

	// Relasi
	Schedules   []StaffSchedule `json:"schedules,omitempty" gorm:"foreignKey:StaffID"`
	Attendances []Attendance    `json:"attendances,omitempty" gorm:"foreignKey:StaffID"`
}

package model

import "gorm.io/gorm"

// ShiftTemplate is a reusable work-window definition for one job category.
// (JobCategory, Name) is unique; StartTime/EndTime are wall-clock "HH:mm".
type ShiftTemplate struct {
	gorm.Model
	JobCategory        JobCategory `json:"job_category" gorm:"index;uniqueIndex:idx_template_category_name"`
	Name               string      `json:"name" gorm:"uniqueIndex:idx_template_category_name"`
	StartTime          string      `json:"start_time"`
	EndTime            string      `json:"end_time"`
	ToleranceMinutes   int         `json:"tolerance_minutes"`
	RequiredStaffCount int         `json:"required_staff_count"`
	IsActive           bool        `json:"is_active" gorm:"default:true"`
}

package model

import "gorm.io/gorm"

// StaffSchedule assigns one worker to one shift template on one calendar
// date (stored as "YYYY-MM-DD"). A worker holds at most one schedule per
// date, enforced by the composite unique index.
type StaffSchedule struct {
	gorm.Model
	StaffID         uint   `json:"staff_id" gorm:"uniqueIndex:idx_schedule_staff_date"`
	ShiftTemplateID uint   `json:"shift_template_id" gorm:"index"`
	Date            string `json:"date" gorm:"size:10;uniqueIndex:idx_schedule_staff_date"`
	Notes           string `json:"notes"`
	CreatedBy       uint   `json:"created_by"`

	// Relasi
	Staff         Staff         `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	ShiftTemplate ShiftTemplate `json:"shift_template,omitempty" gorm:"foreignKey:ShiftTemplateID"`
}

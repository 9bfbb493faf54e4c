package model

import (
	"time"

	"gorm.io/gorm"
)

// Attendance is one clock-in/clock-out session. A row with a nil
// ClockOutAt is an open session; a worker has at most one open session
// at any time. Rows are kept as history and never deleted.
type Attendance struct {
	gorm.Model
	StaffID    uint  `json:"staff_id" gorm:"index"`
	ScheduleID *uint `json:"schedule_id"`

	ClockInAt      time.Time `json:"clock_in_at"`
	Date           string    `json:"date" gorm:"size:10;index"` // civil date of the clock-in
	ShiftStartTime string    `json:"shift_start_time"`
	LateMinutes    *int      `json:"late_minutes"`
	ClockInLat     float64   `json:"clock_in_lat"`
	ClockInLon     float64   `json:"clock_in_lon"`
	ClockInPhoto   string    `json:"clock_in_photo"`

	ClockOutAt    *time.Time `json:"clock_out_at"`
	ClockOutLat   *float64   `json:"clock_out_lat"`
	ClockOutLon   *float64   `json:"clock_out_lon"`
	ClockOutPhoto *string    `json:"clock_out_photo"`

	// Relasi
	Schedule *StaffSchedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID"`
}

type Holiday struct {
	gorm.Model
	Date  string `json:"date" gorm:"size:10;unique;not null"` // "YYYY-MM-DD"
	Label string `json:"label"`
}

package repository

import (
	"ewarga-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(attendance *model.Attendance) error
	Update(attendance *model.Attendance) error
	FindOpenByStaff(staffID uint) (*model.Attendance, error)
	ListByStaff(staffID uint) ([]model.Attendance, error)
	ListByStaffAndMonth(staffID uint, month, year string) ([]model.Attendance, error)
	FindByStaffAndDate(staffID uint, date string) (*model.Attendance, error)
	CountBySchedule(scheduleID uint) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(attendance *model.Attendance) error {
	return r.db.Create(attendance).Error
}

func (r *attendanceRepository) Update(attendance *model.Attendance) error {
	return r.db.Save(attendance).Error
}

// FindOpenByStaff returns the worker's open session (clock-in without
// clock-out), or nil when the worker is off duty.
func (r *attendanceRepository) FindOpenByStaff(staffID uint) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.Where("staff_id = ? AND clock_out_at IS NULL", staffID).
		Limit(1).Find(&attendance).Error
	if err != nil {
		return nil, err
	}
	if attendance.ID == 0 {
		return nil, nil
	}
	return &attendance, nil
}

func (r *attendanceRepository) ListByStaff(staffID uint) ([]model.Attendance, error) {
	var history []model.Attendance
	err := r.db.Where("staff_id = ?", staffID).
		Order("clock_in_at desc").Find(&history).Error
	return history, err
}

func (r *attendanceRepository) ListByStaffAndMonth(staffID uint, month, year string) ([]model.Attendance, error) {
	var list []model.Attendance
	datePattern := year + "-" + month + "%"
	err := r.db.Where("staff_id = ? AND date LIKE ?", staffID, datePattern).
		Order("clock_in_at asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) FindByStaffAndDate(staffID uint, date string) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.Where("staff_id = ? AND date = ?", staffID, date).
		Order("clock_in_at desc").Limit(1).Find(&attendance).Error
	if err != nil {
		return nil, err
	}
	if attendance.ID == 0 {
		return nil, nil
	}
	return &attendance, nil
}

func (r *attendanceRepository) CountBySchedule(scheduleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attendance{}).
		Where("schedule_id = ?", scheduleID).Count(&count).Error
	return count, err
}

package repository

import (
	"ewarga-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StaffScheduleRepository interface {
	Create(schedule *model.StaffSchedule) error
	CreateManySkipDuplicates(schedules []model.StaffSchedule) (int64, error)
	GetByID(id uint) (*model.StaffSchedule, error)
	FindByStaffAndDate(staffID uint, date string) (*model.StaffSchedule, error)
	ListByStaffAndRange(staffID uint, startDate, endDate string) ([]model.StaffSchedule, error)
	ListByStaffIDsAndRange(staffIDs []uint, startDate, endDate string) ([]model.StaffSchedule, error)
	ListByDate(date string) ([]model.StaffSchedule, error)
	ListByStaffAndMonth(staffID uint, month, year string) ([]model.StaffSchedule, error)
	CountFutureByTemplate(templateID uint, afterDate string) (int64, error)
	Delete(id uint) error
}

type staffScheduleRepository struct {
	db *gorm.DB
}

func NewStaffScheduleRepository(db *gorm.DB) StaffScheduleRepository {
	return &staffScheduleRepository{db}
}

func (r *staffScheduleRepository) Create(schedule *model.StaffSchedule) error {
	return r.db.Create(schedule).Error
}

// CreateManySkipDuplicates bulk-inserts schedules, silently ignoring rows
// that collide with the (staff_id, date) unique index. A concurrent or
// retried run therefore cannot create duplicate assignments. Returns the
// number of rows actually inserted, which can be lower than len(schedules)
// when another writer got there first.
func (r *staffScheduleRepository) CreateManySkipDuplicates(schedules []model.StaffSchedule) (int64, error) {
	if len(schedules) == 0 {
		return 0, nil
	}
	tx := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&schedules)
	return tx.RowsAffected, tx.Error
}

func (r *staffScheduleRepository) GetByID(id uint) (*model.StaffSchedule, error) {
	var schedule model.StaffSchedule
	err := r.db.Preload("ShiftTemplate").First(&schedule, id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *staffScheduleRepository) FindByStaffAndDate(staffID uint, date string) (*model.StaffSchedule, error) {
	var schedule model.StaffSchedule
	err := r.db.Preload("ShiftTemplate").
		Where("staff_id = ? AND date = ?", staffID, date).
		Limit(1).Find(&schedule).Error
	if err != nil {
		return nil, err
	}
	if schedule.ID == 0 {
		return nil, nil
	}
	return &schedule, nil
}

func (r *staffScheduleRepository) ListByStaffAndRange(staffID uint, startDate, endDate string) ([]model.StaffSchedule, error) {
	var schedules []model.StaffSchedule
	err := r.db.Where("staff_id = ? AND date BETWEEN ? AND ?", staffID, startDate, endDate).
		Find(&schedules).Error
	return schedules, err
}

func (r *staffScheduleRepository) ListByStaffIDsAndRange(staffIDs []uint, startDate, endDate string) ([]model.StaffSchedule, error) {
	if len(staffIDs) == 0 {
		return nil, nil
	}
	var schedules []model.StaffSchedule
	err := r.db.Where("staff_id IN ? AND date BETWEEN ? AND ?", staffIDs, startDate, endDate).
		Find(&schedules).Error
	return schedules, err
}

func (r *staffScheduleRepository) ListByDate(date string) ([]model.StaffSchedule, error) {
	var schedules []model.StaffSchedule
	err := r.db.Preload("Staff").Preload("ShiftTemplate").
		Where("date = ?", date).
		Order("staff_id asc").Find(&schedules).Error
	return schedules, err
}

func (r *staffScheduleRepository) ListByStaffAndMonth(staffID uint, month, year string) ([]model.StaffSchedule, error) {
	var schedules []model.StaffSchedule
	datePattern := year + "-" + month + "%"
	err := r.db.Preload("ShiftTemplate").
		Where("staff_id = ? AND date LIKE ?", staffID, datePattern).
		Order("date asc").Find(&schedules).Error
	return schedules, err
}

func (r *staffScheduleRepository) CountFutureByTemplate(templateID uint, afterDate string) (int64, error) {
	var count int64
	err := r.db.Model(&model.StaffSchedule{}).
		Where("shift_template_id = ? AND date > ?", templateID, afterDate).
		Count(&count).Error
	return count, err
}

// Delete removes the row outright; the (staff_id, date) unique index must
// stay truthful, so soft delete is not used here.
func (r *staffScheduleRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&model.StaffSchedule{}, id).Error
}

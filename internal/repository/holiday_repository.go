package repository

import (
	"ewarga-backend/internal/model"

	"gorm.io/gorm"
)

type HolidayRepository interface {
	Create(holiday *model.Holiday) error
	FindByDate(date string) (*model.Holiday, error)
	List() ([]model.Holiday, error)
	Delete(id uint) error
	ListDatesBetween(startDate, endDate string) ([]string, error)
}

type holidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) HolidayRepository {
	return &holidayRepository{db}
}

func (r *holidayRepository) Create(holiday *model.Holiday) error {
	return r.db.Create(holiday).Error
}

func (r *holidayRepository) FindByDate(date string) (*model.Holiday, error) {
	var holiday model.Holiday
	err := r.db.Where("date = ?", date).Limit(1).Find(&holiday).Error
	if err != nil {
		return nil, err
	}
	if holiday.ID == 0 {
		return nil, nil
	}
	return &holiday, nil
}

func (r *holidayRepository) List() ([]model.Holiday, error) {
	var holidays []model.Holiday
	err := r.db.Order("date asc").Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepository) Delete(id uint) error {
	return r.db.Delete(&model.Holiday{}, id).Error
}

// ListDatesBetween loads every holiday date in one query so range loops can
// check a set instead of hitting the database per day.
func (r *holidayRepository) ListDatesBetween(startDate, endDate string) ([]string, error) {
	var dates []string
	err := r.db.Model(&model.Holiday{}).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date asc").Pluck("date", &dates).Error
	return dates, err
}

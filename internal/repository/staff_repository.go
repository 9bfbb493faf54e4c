package repository

import (
	"ewarga-backend/internal/model"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(staff *model.Staff) error
	GetByID(id uint) (*model.Staff, error)
	FindByEmployeeNo(employeeNo string) (*model.Staff, error)
	ListActiveByCategory(category model.JobCategory) ([]model.Staff, error)
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db}
}

func (r *staffRepository) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepository) GetByID(id uint) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindByEmployeeNo(employeeNo string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.Where("employee_no = ?", employeeNo).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// ListActiveByCategory returns the roster in a stable order; the rotation
// cursor depends on it.
func (r *staffRepository) ListActiveByCategory(category model.JobCategory) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.Where("job_category = ? AND is_active = ?", category, true).
		Order("id asc").Find(&staff).Error
	return staff, err
}

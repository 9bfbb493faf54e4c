package repository

import (
	"ewarga-backend/internal/model"

	"gorm.io/gorm"
)

type ShiftTemplateRepository interface {
	Create(template *model.ShiftTemplate) error
	Update(template *model.ShiftTemplate) error
	GetByID(id uint) (*model.ShiftTemplate, error)
	List(category model.JobCategory, activeOnly bool) ([]model.ShiftTemplate, error)
	FindByCategoryAndName(category model.JobCategory, name string) (*model.ShiftTemplate, error)
	ListActiveByCategory(category model.JobCategory) ([]model.ShiftTemplate, error)
}

type shiftTemplateRepository struct {
	db *gorm.DB
}

func NewShiftTemplateRepository(db *gorm.DB) ShiftTemplateRepository {
	return &shiftTemplateRepository{db}
}

func (r *shiftTemplateRepository) Create(template *model.ShiftTemplate) error {
	return r.db.Create(template).Error
}

func (r *shiftTemplateRepository) Update(template *model.ShiftTemplate) error {
	return r.db.Save(template).Error
}

func (r *shiftTemplateRepository) GetByID(id uint) (*model.ShiftTemplate, error) {
	var template model.ShiftTemplate
	err := r.db.First(&template, id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *shiftTemplateRepository) List(category model.JobCategory, activeOnly bool) ([]model.ShiftTemplate, error) {
	var templates []model.ShiftTemplate
	query := r.db.Order("job_category asc").Order("start_time asc")
	if category != "" {
		query = query.Where("job_category = ?", category)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&templates).Error
	return templates, err
}

// FindByCategoryAndName is the duplicate-name lookup. Gunakan Limit(1) +
// Find agar GORM tidak mencetak log error "record not found".
func (r *shiftTemplateRepository) FindByCategoryAndName(category model.JobCategory, name string) (*model.ShiftTemplate, error) {
	var template model.ShiftTemplate
	err := r.db.Where("job_category = ? AND name = ?", category, name).
		Limit(1).Find(&template).Error
	if err != nil {
		return nil, err
	}
	if template.ID == 0 {
		return nil, nil
	}
	return &template, nil
}

// ListActiveByCategory returns active templates ordered by start time;
// auto-generation processes shifts in that order.
func (r *shiftTemplateRepository) ListActiveByCategory(category model.JobCategory) ([]model.ShiftTemplate, error) {
	var templates []model.ShiftTemplate
	err := r.db.Where("job_category = ? AND is_active = ?", category, true).
		Order("start_time asc").Find(&templates).Error
	return templates, err
}

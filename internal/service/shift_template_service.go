package service

import (
	"strings"
	"time"

	"ewarga-backend/internal/apperr"
	"ewarga-backend/internal/model"
	"ewarga-backend/internal/repository"
	"ewarga-backend/internal/timeclock"

	"gorm.io/gorm"
)

const (
	minToleranceMinutes = 0
	maxToleranceMinutes = 120
	minStaffCount       = 1
	maxStaffCount       = 20
)

// ShiftTemplateService is the catalog of reusable shift definitions.
type ShiftTemplateService struct {
	templateRepo repository.ShiftTemplateRepository
	scheduleRepo repository.StaffScheduleRepository
	offset       timeclock.Offset
	now          func() time.Time
}

func NewShiftTemplateService(db *gorm.DB, offset timeclock.Offset) *ShiftTemplateService {
	return &ShiftTemplateService{
		templateRepo: repository.NewShiftTemplateRepository(db),
		scheduleRepo: repository.NewStaffScheduleRepository(db),
		offset:       offset,
		now:          time.Now,
	}
}

type CreateTemplateInput struct {
	JobCategory        model.JobCategory `json:"job_category"`
	Name               string            `json:"name"`
	StartTime          string            `json:"start_time"`
	EndTime            string            `json:"end_time"`
	ToleranceMinutes   int               `json:"tolerance_minutes"`
	RequiredStaffCount int               `json:"required_staff_count"`
}

func (s *ShiftTemplateService) Create(input CreateTemplateInput) (*model.ShiftTemplate, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateTemplateFields(input.JobCategory, input.Name, input.StartTime, input.EndTime,
		input.ToleranceMinutes, input.RequiredStaffCount); err != nil {
		return nil, err
	}

	existing, err := s.templateRepo.FindByCategoryAndName(input.JobCategory, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflictf("shift template %q already exists for category %s", input.Name, input.JobCategory)
	}

	template := model.ShiftTemplate{
		JobCategory:        input.JobCategory,
		Name:               input.Name,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		ToleranceMinutes:   input.ToleranceMinutes,
		RequiredStaffCount: input.RequiredStaffCount,
		IsActive:           true,
	}
	if err := s.templateRepo.Create(&template); err != nil {
		return nil, err
	}
	return &template, nil
}

// UpdateTemplateInput carries partial updates; nil fields keep their
// current value.
type UpdateTemplateInput struct {
	Name               *string `json:"name"`
	StartTime          *string `json:"start_time"`
	EndTime            *string `json:"end_time"`
	ToleranceMinutes   *int    `json:"tolerance_minutes"`
	RequiredStaffCount *int    `json:"required_staff_count"`
	IsActive           *bool   `json:"is_active"`
}

func (s *ShiftTemplateService) Update(id uint, input UpdateTemplateInput) (*model.ShiftTemplate, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Referencef("shift template %d not found", id)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != template.Name {
			existing, err := s.templateRepo.FindByCategoryAndName(template.JobCategory, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != template.ID {
				return nil, apperr.Conflictf("shift template %q already exists for category %s", name, template.JobCategory)
			}
		}
		template.Name = name
	}
	if input.StartTime != nil {
		template.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		template.EndTime = *input.EndTime
	}
	if input.ToleranceMinutes != nil {
		template.ToleranceMinutes = *input.ToleranceMinutes
	}
	if input.RequiredStaffCount != nil {
		template.RequiredStaffCount = *input.RequiredStaffCount
	}
	if input.IsActive != nil {
		// Deactivation through Update obeys the same guard as Retire;
		// reactivating is always allowed.
		if !*input.IsActive && template.IsActive {
			if err := s.checkNoFutureSchedules(template); err != nil {
				return nil, err
			}
		}
		template.IsActive = *input.IsActive
	}

	if err := validateTemplateFields(template.JobCategory, template.Name, template.StartTime,
		template.EndTime, template.ToleranceMinutes, template.RequiredStaffCount); err != nil {
		return nil, err
	}

	if err := s.templateRepo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

// Retire clears the active flag. A template still holding future-dated
// schedules cannot be retired; the count is reported so the admin knows how
// many assignments block it. Templates are never hard-deleted.
func (s *ShiftTemplateService) Retire(id uint) (*model.ShiftTemplate, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Referencef("shift template %d not found", id)
	}

	if err := s.checkNoFutureSchedules(template); err != nil {
		return nil, err
	}

	template.IsActive = false
	if err := s.templateRepo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *ShiftTemplateService) checkNoFutureSchedules(template *model.ShiftTemplate) error {
	today := timeclock.CivilDate(s.now(), s.offset)
	count, err := s.scheduleRepo.CountFutureByTemplate(template.ID, today)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflictf("shift template %q still has %d future-dated schedule(s)", template.Name, count)
	}
	return nil
}

func (s *ShiftTemplateService) Get(id uint) (*model.ShiftTemplate, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, apperr.Referencef("shift template %d not found", id)
	}
	return template, nil
}

func (s *ShiftTemplateService) List(category model.JobCategory, activeOnly bool) ([]model.ShiftTemplate, error) {
	if category != "" && !category.Valid() {
		return nil, apperr.Validationf("unknown job category %q", string(category))
	}
	return s.templateRepo.List(category, activeOnly)
}

func validateTemplateFields(category model.JobCategory, name, startTime, endTime string, tolerance, staffCount int) error {
	if !category.Valid() {
		return apperr.Validationf("unknown job category %q", string(category))
	}
	if name == "" {
		return apperr.Validationf("shift name is required")
	}
	if _, _, err := timeclock.ParseWallClock(startTime); err != nil {
		return err
	}
	if _, _, err := timeclock.ParseWallClock(endTime); err != nil {
		return err
	}
	if tolerance < minToleranceMinutes || tolerance > maxToleranceMinutes {
		return apperr.Validationf("tolerance must be between %d and %d minutes", minToleranceMinutes, maxToleranceMinutes)
	}
	if staffCount < minStaffCount || staffCount > maxStaffCount {
		return apperr.Validationf("required staff count must be between %d and %d", minStaffCount, maxStaffCount)
	}
	return nil
}

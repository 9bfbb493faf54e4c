package service

import (
	"ewarga-backend/internal/apperr"
	"ewarga-backend/internal/model"
	"ewarga-backend/internal/repository"
	"ewarga-backend/internal/timeclock"

	"gorm.io/gorm"
)

// SchedulerService creates staff schedules: one at a time, in bulk over a
// date range, or through the fair-rotation auto-generation run.
type SchedulerService struct {
	staffRepo    repository.StaffRepository
	templateRepo repository.ShiftTemplateRepository
	scheduleRepo repository.StaffScheduleRepository
	attRepo      repository.AttendanceRepository
	holidayRepo  repository.HolidayRepository
}

func NewSchedulerService(db *gorm.DB) *SchedulerService {
	return &SchedulerService{
		staffRepo:    repository.NewStaffRepository(db),
		templateRepo: repository.NewShiftTemplateRepository(db),
		scheduleRepo: repository.NewStaffScheduleRepository(db),
		attRepo:      repository.NewAttendanceRepository(db),
		holidayRepo:  repository.NewHolidayRepository(db),
	}
}

type CreateScheduleInput struct {
	StaffID         uint   `json:"staff_id"`
	ShiftTemplateID uint   `json:"shift_template_id"`
	Date            string `json:"date"`
	Notes           string `json:"notes"`
	CreatedBy       uint   `json:"-"`
}

// CreateSchedule assigns one worker to one shift on one date. The worker's
// job category must match the template's, and the worker must not already
// hold any schedule on that date.
func (s *SchedulerService) CreateSchedule(input CreateScheduleInput) (*model.StaffSchedule, error) {
	date, err := timeclock.NormalizeDate(input.Date)
	if err != nil {
		return nil, err
	}

	staff, template, err := s.resolveStaffAndTemplate(input.StaffID, input.ShiftTemplateID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCreator(input.CreatedBy); err != nil {
		return nil, err
	}

	existing, err := s.scheduleRepo.FindByStaffAndDate(staff.ID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflictf("%s is already scheduled on %s", staff.Name, date)
	}

	schedule := model.StaffSchedule{
		StaffID:         staff.ID,
		ShiftTemplateID: template.ID,
		Date:            date,
		Notes:           input.Notes,
		CreatedBy:       input.CreatedBy,
	}
	if err := s.scheduleRepo.Create(&schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

type BulkCreateInput struct {
	StaffID         uint   `json:"staff_id"`
	ShiftTemplateID uint   `json:"shift_template_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Notes           string `json:"notes"`
	SkipHolidays    bool   `json:"skip_holidays"`
	CreatedBy       uint   `json:"-"`
}

type BulkCreateResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// BulkCreateSchedules expands one assignment across every date in an
// inclusive range. Dates where the worker already holds a schedule are
// skipped and counted instead of failing the batch.
func (s *SchedulerService) BulkCreateSchedules(input BulkCreateInput) (*BulkCreateResult, error) {
	startDate, endDate, err := normalizeRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	staff, template, err := s.resolveStaffAndTemplate(input.StaffID, input.ShiftTemplateID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCreator(input.CreatedBy); err != nil {
		return nil, err
	}

	existing, err := s.scheduleRepo.ListByStaffAndRange(staff.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, sched := range existing {
		taken[sched.Date] = true
	}

	holidays, err := s.holidaySet(input.SkipHolidays, startDate, endDate)
	if err != nil {
		return nil, err
	}

	result := &BulkCreateResult{Total: timeclock.DaysBetween(startDate, endDate)}
	var batch []model.StaffSchedule
	for d := startDate; d <= endDate; d = timeclock.AddDays(d, 1) {
		if taken[d] || holidays[d] {
			result.Skipped++
			continue
		}
		batch = append(batch, model.StaffSchedule{
			StaffID:         staff.ID,
			ShiftTemplateID: template.ID,
			Date:            d,
			Notes:           input.Notes,
			CreatedBy:       input.CreatedBy,
		})
	}

	// The insert reports how many rows it really wrote; a row lost to a
	// concurrent writer counts as skipped, not created.
	inserted, err := s.scheduleRepo.CreateManySkipDuplicates(batch)
	if err != nil {
		return nil, err
	}
	result.Created = int(inserted)
	result.Skipped = result.Total - result.Created
	return result, nil
}

// DeleteSchedule removes an assignment, unless an attendance record already
// references it.
func (s *SchedulerService) DeleteSchedule(id uint) error {
	schedule, err := s.scheduleRepo.GetByID(id)
	if err != nil {
		return apperr.Referencef("schedule %d not found", id)
	}

	count, err := s.attRepo.CountBySchedule(schedule.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflictf("schedule %d is referenced by an attendance record", id)
	}
	return s.scheduleRepo.Delete(schedule.ID)
}

func (s *SchedulerService) ListByDate(date string) ([]model.StaffSchedule, error) {
	normalized, err := timeclock.NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	return s.scheduleRepo.ListByDate(normalized)
}

func (s *SchedulerService) ListByStaffAndMonth(staffID uint, month, year string) ([]model.StaffSchedule, error) {
	return s.scheduleRepo.ListByStaffAndMonth(staffID, month, year)
}

func (s *SchedulerService) resolveStaffAndTemplate(staffID, templateID uint) (*model.Staff, *model.ShiftTemplate, error) {
	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return nil, nil, apperr.Referencef("staff %d not found", staffID)
	}
	if !staff.IsActive {
		return nil, nil, apperr.Referencef("staff %s is not active", staff.Name)
	}

	template, err := s.templateRepo.GetByID(templateID)
	if err != nil {
		return nil, nil, apperr.Referencef("shift template %d not found", templateID)
	}
	if staff.JobCategory != template.JobCategory {
		return nil, nil, apperr.Referencef("staff %s has category %s, shift %q requires %s",
			staff.Name, staff.JobCategory, template.Name, template.JobCategory)
	}
	return staff, template, nil
}

func (s *SchedulerService) checkCreator(creatorID uint) error {
	if _, err := s.staffRepo.GetByID(creatorID); err != nil {
		return apperr.Referencef("creator %d not found", creatorID)
	}
	return nil
}

func (s *SchedulerService) holidaySet(skip bool, startDate, endDate string) (map[string]bool, error) {
	if !skip {
		return map[string]bool{}, nil
	}
	dates, err := s.holidayRepo.ListDatesBetween(startDate, endDate)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set, nil
}

func normalizeRange(start, end string) (string, string, error) {
	startDate, err := timeclock.NormalizeDate(start)
	if err != nil {
		return "", "", err
	}
	endDate, err := timeclock.NormalizeDate(end)
	if err != nil {
		return "", "", err
	}
	if endDate < startDate {
		return "", "", apperr.Validationf("end date %s precedes start date %s", endDate, startDate)
	}
	return startDate, endDate, nil
}

package service

import (
	"errors"
	"testing"

	"ewarga-backend/internal/apperr"
	"ewarga-backend/internal/model"
	"ewarga-backend/internal/repository"
)

func TestCreateScheduleValidations(t *testing.T) {
	db := newTestDB(t)
	svc := NewSchedulerService(db)
	admin := seedAdmin(t, db)
	guard := seedStaff(t, db, "Guard", model.JobCategorySecurity)
	cleaner := seedStaff(t, db, "Cleaner", model.JobCategoryCleaning)
	template := seedTemplate(t, db, model.JobCategorySecurity, "Morning", "06:00", 2)

	// Bad date.
	_, err := svc.CreateSchedule(CreateScheduleInput{StaffID: guard.ID, ShiftTemplateID: template.ID, Date: "10-08-2026", CreatedBy: admin.ID})
	var validationErr *apperr.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for bad date, got %v", err)
	}

	// Unknown staff.
	_, err = svc.CreateSchedule(CreateScheduleInput{StaffID: 9999, ShiftTemplateID: template.ID, Date: "2026-08-10", CreatedBy: admin.ID})
	var referenceErr *apperr.ReferenceError
	if !errors.As(err, &referenceErr) {
		t.Fatalf("expected ReferenceError for unknown staff, got %v", err)
	}

	// Category mismatch.
	_, err = svc.CreateSchedule(CreateScheduleInput{StaffID: cleaner.ID, ShiftTemplateID: template.ID, Date: "2026-08-10", CreatedBy: admin.ID})
	if !errors.As(err, &referenceErr) {
		t.Fatalf("expected ReferenceError for category mismatch, got %v", err)
	}

	// Unknown creator.
	_, err = svc.CreateSchedule(CreateScheduleInput{StaffID: guard.ID, ShiftTemplateID: template.ID, Date: "2026-08-10", CreatedBy: 9999})
	if !errors.As(err, &referenceErr) {
		t.Fatalf("expected ReferenceError for unknown creator, got %v", err)
	}

	if n := countSchedules(t, db); n != 0 {
		t.Fatalf("failed validations must not write, found %d rows", n)
	}
}

func TestCreateScheduleDoubleBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewSchedulerService(db)
	admin := seedAdmin(t, db)
	guard := seedStaff(t, db, "Guard", model.JobCategorySecurity)
	morning := seedTemplate(t, db, model.JobCategorySecurity, "Morning", "06:00", 2)
	evening := seedTemplate(t, db, model.JobCategorySecurity, "Evening", "14:00", 1)

	if _, err := svc.CreateSchedule(CreateScheduleInput{StaffID: guard.ID, ShiftTemplateID: morning.ID, Date: "2026-08-10", CreatedBy: admin.ID}); err != nil {
		t.Fatalf("first schedule: %v", err)
	}

	// Same day on a DIFFERENT shift is still a double booking.
	_, err := svc.CreateSchedule(CreateScheduleInput{StaffID: guard.ID, ShiftTemplateID: evening.ID, Date: "2026-08-10", CreatedBy: admin.ID})
	var conflictErr *apperr.ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError for double booking, got %v", err)
	}

	if n := countSchedules(t, db); n != 1 {
		t.Fatalf("expected 1 schedule, got %d", n)
	}
}

func TestBulkCreateSkipsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewSchedulerService(db)
	admin := seedAdmin(t, db)
	guard := seedStaff(t, db, "Guard", model.JobCategorySecurity)
	template := seedTemplate(t, db, model.JobCategorySecurity, "Morning", "06:00", 2)

	if _, err := svc.CreateSchedule(CreateScheduleInput{StaffID: guard.ID, ShiftTemplateID: template.ID, Date: "2026-08-11", CreatedBy: admin.ID}); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	result, err := svc.BulkCreateSchedules(BulkCreateInput{
		StaffID:         guard.ID,
		ShiftTemplateID: template.ID,
		StartDate:       "2026-08-10",
		EndDate:         "2026-08-12",
		CreatedBy:       admin.ID,
	})
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	if result.Total != 3 || result.Created != 2 || result.Skipped != 1 {
		t.Fatalf("expected total=3 created=2 skipped=1, got %+v", result)
	}
	if n := countSchedules(t, db); n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}
}

func TestBulkCreateRejectsInvertedRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewSchedulerService(db)
	admin := seedAdmin(t, db)
	guard := seedStaff(t, db, "Guard", model.JobCategorySecurity)
	template := seedTemplate(t, db, model.JobCategorySecurity, "Morning", "06:00", 2)

	_, err := svc.BulkCreateSchedules(BulkCreateInput{
		StaffID:         guard.ID,
		ShiftTemplateID: template.ID,
		StartDate:       "2026-08-12",
		EndDate:         "2026-08-10",
		CreatedBy:       admin.ID,
	})
	var validationErr *apperr.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for inverted range, got %v", err)
	}
}

func TestBulkCreateSkipsHolidays(t *testing.T) {
	db := newTestDB(t)
	svc := NewSchedulerService(db)
	admin := seedAdmin(t, db)
	guard := seedStaff(t, db, "Guard", model.JobCategorySecurity)
	template := seedTemplate(t, db, model.JobCategorySecurity, "Morning", "06:00", 2)
	if err := db.Create(&model.Holiday{Date: "2026-08-17", Label: "Hari Kemerdekaan"}).Error; err != nil {
		t.Fatalf("seed holiday: %v", err)
	}

	result, err := svc.BulkCreateSchedules(BulkCreateInput{
		StaffID:         guard.ID,
		ShiftTemplateID: template.ID,
		StartDate:       "2026-08-16",
		EndDate:         "2026-08-18",
		SkipHolidays:    true,
		CreatedBy:       admin.ID,
	})
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	if result.Created != 2 || result.Skipped != 1 {
		t.Fatalf("expected created=2 skipped=1, got %+v", result)
	}
}

func TestDeleteScheduleBlockedByAttendance(t *testing.T) {
	db := newTestDB(t)
	svc := NewSchedulerService(db)
	admin := seedAdmin(t, db)
	guard := seedStaff(t, db, "Guard", model.JobCategorySecurity)
	template := seedTemplate(t, db, model.JobCategorySecurity, "Morning", "06:00", 2)

	schedule, err := svc.CreateSchedule(CreateScheduleInput{StaffID: guard.ID, ShiftTemplateID: template.ID, Date: "2026-08-10", CreatedBy: admin.ID})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}

	attendance := model.Attendance{StaffID: guard.ID, ScheduleID: &schedule.ID, Date: "2026-08-10"}
	if err := db.Create(&attendance).Error; err != nil {
		t.Fatalf("seed attendance: %v", err)
	}

	err = svc.DeleteSchedule(schedule.ID)
	var conflictErr *apperr.ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError while attendance references schedule, got %v", err)
	}

	// Without the reference the delete goes through.
	if err := db.Unscoped().Delete(&attendance).Error; err != nil {
		t.Fatalf("remove attendance: %v", err)
	}
	if err := svc.DeleteSchedule(schedule.ID); err != nil {
		t.Fatalf("delete schedule: %v", err)
	}
	if n := countSchedules(t, db); n != 0 {
		t.Fatalf("expected schedule gone, found %d", n)
	}
}

func TestBulkInsertCountsOnlyInsertedRows(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewStaffScheduleRepository(db)
	guard := seedStaff(t, db, "Guard", model.JobCategorySecurity)
	other := seedStaff(t, db, "Other", model.JobCategorySecurity)
	template := seedTemplate(t, db, model.JobCategorySecurity, "Morning", "06:00", 2)

	held := model.StaffSchedule{StaffID: guard.ID, ShiftTemplateID: template.ID, Date: "2026-08-10", CreatedBy: guard.ID}
	if err := db.Create(&held).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	// One row collides with the (staff, date) index, one does not; only the
	// second counts as inserted.
	inserted, err := repo.CreateManySkipDuplicates([]model.StaffSchedule{
		{StaffID: guard.ID, ShiftTemplateID: template.ID, Date: "2026-08-10", CreatedBy: guard.ID},
		{StaffID: other.ID, ShiftTemplateID: template.ID, Date: "2026-08-10", CreatedBy: guard.ID},
	})
	if err != nil {
		t.Fatalf("bulk insert: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("expected 1 inserted row, got %d", inserted)
	}
	if n := countSchedules(t, db); n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
}

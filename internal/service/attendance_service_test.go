package service

import (
	"errors"
	"testing"
	"time"

	"ewarga-backend/internal/apperr"
	"ewarga-backend/internal/geo"
	"ewarga-backend/internal/model"

	"gorm.io/gorm"
)

type staticFence struct {
	fence geo.Fence
}

func (s staticFence) Geofence() geo.Fence { return s.fence }

var testFence = staticFence{fence: geo.Fence{Latitude: -6.2350, Longitude: 106.9945, RadiusMeters: 200}}

// newAttendanceService pins the civil offset to WIB (UTC+7) and the clock
// to 2026-08-10 06:20 local time.
func newAttendanceService(t *testing.T, db *gorm.DB) *AttendanceService {
	t.Helper()
	svc := NewAttendanceService(db, testFence, 420)
	svc.now = func() time.Time { return time.Date(2026, 8, 9, 23, 20, 0, 0, time.UTC) }
	return svc
}

func seedSchedule(t *testing.T, db *gorm.DB, staffID, templateID uint, date string) *model.StaffSchedule {
	t.Helper()
	schedule := &model.StaffSchedule{
		StaffID:         staffID,
		ShiftTemplateID: templateID,
		Date:            date,
		CreatedBy:       staffID,
	}
	if err := db.Create(schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	return schedule
}

func TestClockInScoredAgainstSchedule(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)

	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)
	template := seedTemplate(t, db, model.JobCategorySecurity, "Morning", "06:00", 2)
	schedule := seedSchedule(t, db, guard.ID, template.ID, "2026-08-10")

	attendance, err := svc.ClockIn(ClockInInput{
		StaffID:    guard.ID,
		Latitude:   -6.2350,
		Longitude:  106.9945,
		PhotoRef:   "uploads/attendance/in.jpg",
		ScheduleID: &schedule.ID,
	})
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}

	// 06:20 against 06:00 with 15 min tolerance: 5 minutes late.
	if attendance.LateMinutes == nil || *attendance.LateMinutes != 5 {
		t.Fatalf("expected late_minutes=5, got %v", attendance.LateMinutes)
	}
	if attendance.ShiftStartTime != "06:00" {
		t.Fatalf("expected shift start from template, got %q", attendance.ShiftStartTime)
	}
	if attendance.Date != "2026-08-10" {
		t.Fatalf("expected civil date 2026-08-10, got %s", attendance.Date)
	}
	if attendance.ScheduleID == nil || *attendance.ScheduleID != schedule.ID {
		t.Fatalf("expected schedule reference %d, got %v", schedule.ID, attendance.ScheduleID)
	}
	if attendance.ClockOutAt != nil {
		t.Fatalf("fresh session must be open")
	}
}

func TestClockInWithinTolerance(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)

	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)
	template := seedTemplate(t, db, model.JobCategorySecurity, "Dawn", "06:10", 1)
	schedule := seedSchedule(t, db, guard.ID, template.ID, "2026-08-10")

	attendance, err := svc.ClockIn(ClockInInput{
		StaffID:    guard.ID,
		Latitude:   -6.2350,
		Longitude:  106.9945,
		ScheduleID: &schedule.ID,
	})
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}
	// 06:20 against 06:10 with 15 min tolerance: on time.
	if attendance.LateMinutes != nil {
		t.Fatalf("expected on time, got %d", *attendance.LateMinutes)
	}
}

func TestClockInWithoutScheduleIsUnscored(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)
	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)

	attendance, err := svc.ClockIn(ClockInInput{
		StaffID:        guard.ID,
		ShiftStartTime: "06:00",
		Latitude:       -6.2350,
		Longitude:      106.9945,
	})
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if attendance.LateMinutes != nil {
		t.Fatalf("unscheduled clock-in must be unscored, got %d", *attendance.LateMinutes)
	}
	if attendance.ShiftStartTime != "06:00" {
		t.Fatalf("expected caller-provided shift start, got %q", attendance.ShiftStartTime)
	}
}

func TestClockInRejectsForeignSchedule(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)

	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)
	other := seedStaff(t, db, "Budi", model.JobCategorySecurity)
	template := seedTemplate(t, db, model.JobCategorySecurity, "Morning", "06:00", 2)
	foreign := seedSchedule(t, db, other.ID, template.ID, "2026-08-10")

	_, err := svc.ClockIn(ClockInInput{
		StaffID:    guard.ID,
		Latitude:   -6.2350,
		Longitude:  106.9945,
		ScheduleID: &foreign.ID,
	})
	var referenceErr *apperr.ReferenceError
	if !errors.As(err, &referenceErr) {
		t.Fatalf("expected ReferenceError for foreign schedule, got %v", err)
	}

	var count int64
	db.Model(&model.Attendance{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected clock-in must not write, found %d rows", count)
	}
}

func TestClockInOutsideGeofence(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)
	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)

	_, err := svc.ClockIn(ClockInInput{
		StaffID:   guard.ID,
		Latitude:  -6.1751, // ~16 km away
		Longitude: 106.8650,
	})
	var rangeErr *apperr.OutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}

	// Location is validated before any state mutation.
	var count int64
	db.Model(&model.Attendance{}).Count(&count)
	if count != 0 {
		t.Fatalf("out-of-range clock-in must not write, found %d rows", count)
	}
}

func TestDoubleClockInConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)
	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)

	if _, err := svc.ClockIn(ClockInInput{StaffID: guard.ID, Latitude: -6.2350, Longitude: 106.9945}); err != nil {
		t.Fatalf("first clock in: %v", err)
	}

	_, err := svc.ClockIn(ClockInInput{StaffID: guard.ID, Latitude: -6.2350, Longitude: 106.9945})
	var conflictErr *apperr.ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError for second clock-in, got %v", err)
	}

	var count int64
	db.Model(&model.Attendance{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single open session, found %d rows", count)
	}
}

func TestClockOutWithoutOpenSession(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)
	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)

	_, err := svc.ClockOut(ClockOutInput{StaffID: guard.ID, Latitude: -6.2350, Longitude: 106.9945})
	var conflictErr *apperr.ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError without open session, got %v", err)
	}
}

func TestClockOutClosesSessionOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)
	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)

	if _, err := svc.ClockIn(ClockInInput{StaffID: guard.ID, Latitude: -6.2350, Longitude: 106.9945, PhotoRef: "in.jpg"}); err != nil {
		t.Fatalf("clock in: %v", err)
	}

	// Clock out eight hours later.
	svc.now = func() time.Time { return time.Date(2026, 8, 10, 7, 20, 0, 0, time.UTC) }
	attendance, err := svc.ClockOut(ClockOutInput{StaffID: guard.ID, Latitude: -6.2351, Longitude: 106.9946, PhotoRef: "out.jpg"})
	if err != nil {
		t.Fatalf("clock out: %v", err)
	}
	if attendance.ClockOutAt == nil || attendance.ClockOutLat == nil || attendance.ClockOutLon == nil || attendance.ClockOutPhoto == nil {
		t.Fatalf("clock-out fields not filled: %+v", attendance)
	}
	if *attendance.ClockOutPhoto != "out.jpg" {
		t.Fatalf("expected clock-out photo, got %q", *attendance.ClockOutPhoto)
	}

	// The closed row never reopens; a second clock-out has nothing to close.
	_, err = svc.ClockOut(ClockOutInput{StaffID: guard.ID, Latitude: -6.2350, Longitude: 106.9945})
	var conflictErr *apperr.ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError after session closed, got %v", err)
	}

	// And a fresh clock-in is allowed again.
	if _, err := svc.ClockIn(ClockInInput{StaffID: guard.ID, Latitude: -6.2350, Longitude: 106.9945}); err != nil {
		t.Fatalf("clock in after close: %v", err)
	}
}

func TestClockOutOutsideGeofenceKeepsSessionOpen(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)
	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)

	if _, err := svc.ClockIn(ClockInInput{StaffID: guard.ID, Latitude: -6.2350, Longitude: 106.9945}); err != nil {
		t.Fatalf("clock in: %v", err)
	}

	_, err := svc.ClockOut(ClockOutInput{StaffID: guard.ID, Latitude: -6.1751, Longitude: 106.8650})
	var rangeErr *apperr.OutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}

	var open model.Attendance
	if err := db.Where("staff_id = ? AND clock_out_at IS NULL", guard.ID).First(&open).Error; err != nil {
		t.Fatalf("session should still be open: %v", err)
	}
}

func TestRecapCountsLateAndOnTime(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)
	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)

	late := 5
	rows := []model.Attendance{
		{StaffID: guard.ID, Date: "2026-08-03", ClockInAt: time.Date(2026, 8, 2, 23, 0, 0, 0, time.UTC)},
		{StaffID: guard.ID, Date: "2026-08-04", ClockInAt: time.Date(2026, 8, 3, 23, 20, 0, 0, time.UTC), LateMinutes: &late},
		{StaffID: guard.ID, Date: "2026-07-30", ClockInAt: time.Date(2026, 7, 29, 23, 0, 0, 0, time.UTC)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed attendance: %v", err)
		}
	}

	recap, err := svc.Recap(guard.ID, "08", "2026")
	if err != nil {
		t.Fatalf("recap: %v", err)
	}
	if recap.OnTime != 1 || recap.Late != 1 {
		t.Fatalf("expected on_time=1 late=1 for August, got %+v", recap)
	}
	if len(recap.Detail) != 2 {
		t.Fatalf("expected 2 August rows, got %d", len(recap.Detail))
	}
}

func TestTodayStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(t, db)

	guard := seedStaff(t, db, "Agus", model.JobCategorySecurity)
	template := seedTemplate(t, db, model.JobCategorySecurity, "Morning", "06:00", 2)
	schedule := seedSchedule(t, db, guard.ID, template.ID, "2026-08-10")

	status, err := svc.Today(guard.ID)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if status.Date != "2026-08-10" {
		t.Fatalf("expected civil date 2026-08-10, got %s", status.Date)
	}
	if status.Schedule == nil || status.Schedule.ID != schedule.ID {
		t.Fatalf("expected today's schedule, got %+v", status.Schedule)
	}
	if status.OnDuty || status.Attendance != nil {
		t.Fatalf("expected off duty before clock-in")
	}

	if _, err := svc.ClockIn(ClockInInput{StaffID: guard.ID, Latitude: -6.2350, Longitude: 106.9945, ScheduleID: &schedule.ID}); err != nil {
		t.Fatalf("clock in: %v", err)
	}

	status, err = svc.Today(guard.ID)
	if err != nil {
		t.Fatalf("today after clock-in: %v", err)
	}
	if !status.OnDuty || status.Attendance == nil {
		t.Fatalf("expected on duty after clock-in")
	}
}

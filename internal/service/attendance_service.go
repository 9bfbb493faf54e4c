package service

import (
	"time"

	"ewarga-backend/internal/apperr"
	"ewarga-backend/internal/geo"
	"ewarga-backend/internal/model"
	"ewarga-backend/internal/repository"
	"ewarga-backend/internal/timeclock"

	"gorm.io/gorm"
)

// GeofenceSource supplies the community geofence; the production
// implementation caches an external configuration.
type GeofenceSource interface {
	Geofence() geo.Fence
}

// AttendanceService runs the per-worker clock-in/clock-out state machine:
// off duty -> one open attendance row -> off duty. Location is validated
// before any state is touched.
type AttendanceService struct {
	db           *gorm.DB
	staffRepo    repository.StaffRepository
	scheduleRepo repository.StaffScheduleRepository
	attRepo      repository.AttendanceRepository
	geofence     GeofenceSource
	offset       timeclock.Offset
	now          func() time.Time
}

func NewAttendanceService(db *gorm.DB, geofence GeofenceSource, offset timeclock.Offset) *AttendanceService {
	return &AttendanceService{
		db:           db,
		staffRepo:    repository.NewStaffRepository(db),
		scheduleRepo: repository.NewStaffScheduleRepository(db),
		attRepo:      repository.NewAttendanceRepository(db),
		geofence:     geofence,
		offset:       offset,
		now:          time.Now,
	}
}

type ClockInInput struct {
	StaffID        uint
	ShiftStartTime string // wall-clock "HH:mm"; ignored when ScheduleID is set
	Latitude       float64
	Longitude      float64
	PhotoRef       string
	ScheduleID     *uint
}

// ClockIn opens a session. When a schedule is supplied it must belong to
// the worker and lateness is scored against its template; without one the
// session is unscored. The open-session check and the insert run in one
// transaction so two concurrent clock-ins cannot both pass.
func (s *AttendanceService) ClockIn(input ClockInInput) (*model.Attendance, error) {
	staff, err := s.staffRepo.GetByID(input.StaffID)
	if err != nil {
		return nil, apperr.Referencef("staff %d not found", input.StaffID)
	}
	if !staff.IsActive {
		return nil, apperr.Referencef("staff %s is not active", staff.Name)
	}

	if err := s.geofence.Geofence().Validate(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	shiftStart := input.ShiftStartTime
	if input.ScheduleID == nil && shiftStart != "" {
		if _, _, err := timeclock.ParseWallClock(shiftStart); err != nil {
			return nil, err
		}
	}

	now := s.now()
	attendance := &model.Attendance{
		StaffID:      staff.ID,
		ClockInAt:    now,
		Date:         timeclock.CivilDate(now, s.offset),
		ClockInLat:   input.Latitude,
		ClockInLon:   input.Longitude,
		ClockInPhoto: input.PhotoRef,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		attRepo := repository.NewAttendanceRepository(tx)

		open, err := attRepo.FindOpenByStaff(staff.ID)
		if err != nil {
			return err
		}
		if open != nil {
			return apperr.Conflictf("%s already has an open shift since %s",
				staff.Name, open.ClockInAt.Format(time.RFC3339))
		}

		if input.ScheduleID != nil {
			schedule, err := repository.NewStaffScheduleRepository(tx).GetByID(*input.ScheduleID)
			if err != nil {
				return apperr.Referencef("schedule %d not found", *input.ScheduleID)
			}
			if schedule.StaffID != staff.ID {
				return apperr.Referencef("schedule %d does not belong to %s", schedule.ID, staff.Name)
			}

			late, err := timeclock.Lateness(schedule.ShiftTemplate.StartTime,
				schedule.ShiftTemplate.ToleranceMinutes, now, s.offset)
			if err != nil {
				return err
			}
			attendance.ScheduleID = &schedule.ID
			attendance.ShiftStartTime = schedule.ShiftTemplate.StartTime
			attendance.LateMinutes = late
		} else {
			attendance.ShiftStartTime = shiftStart
		}

		return attRepo.Create(attendance)
	})
	if err != nil {
		return nil, err
	}
	return attendance, nil
}

type ClockOutInput struct {
	StaffID   uint
	Latitude  float64
	Longitude float64
	PhotoRef  string
}

// ClockOut closes the worker's open session, filling the clock-out fields
// exactly once. A closed row is never reopened.
func (s *AttendanceService) ClockOut(input ClockOutInput) (*model.Attendance, error) {
	staff, err := s.staffRepo.GetByID(input.StaffID)
	if err != nil {
		return nil, apperr.Referencef("staff %d not found", input.StaffID)
	}

	if err := s.geofence.Geofence().Validate(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	var attendance *model.Attendance
	err = s.db.Transaction(func(tx *gorm.DB) error {
		attRepo := repository.NewAttendanceRepository(tx)

		open, err := attRepo.FindOpenByStaff(staff.ID)
		if err != nil {
			return err
		}
		if open == nil {
			return apperr.Conflictf("%s has no open shift to close", staff.Name)
		}

		now := s.now()
		open.ClockOutAt = &now
		open.ClockOutLat = &input.Latitude
		open.ClockOutLon = &input.Longitude
		open.ClockOutPhoto = &input.PhotoRef

		if err := attRepo.Update(open); err != nil {
			return err
		}
		attendance = open
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attendance, nil
}

func (s *AttendanceService) History(staffID uint) ([]model.Attendance, error) {
	return s.attRepo.ListByStaff(staffID)
}

// MonthlyRecap summarizes one worker's month: on-time vs late sessions.
type MonthlyRecap struct {
	OnTime int                `json:"on_time"`
	Late   int                `json:"late"`
	Detail []model.Attendance `json:"detail"`
}

func (s *AttendanceService) Recap(staffID uint, month, year string) (*MonthlyRecap, error) {
	list, err := s.attRepo.ListByStaffAndMonth(staffID, month, year)
	if err != nil {
		return nil, err
	}
	recap := &MonthlyRecap{Detail: list}
	for _, a := range list {
		if a.LateMinutes != nil {
			recap.Late++
		} else {
			recap.OnTime++
		}
	}
	return recap, nil
}

// TodayStatus reports the worker's schedule for the current civil day
// together with today's attendance record, if any.
type TodayStatus struct {
	Date       string               `json:"date"`
	Schedule   *model.StaffSchedule `json:"schedule"`
	Attendance *model.Attendance    `json:"attendance"`
	OnDuty     bool                 `json:"on_duty"`
}

func (s *AttendanceService) Today(staffID uint) (*TodayStatus, error) {
	today := timeclock.CivilDate(s.now(), s.offset)

	schedule, err := s.scheduleRepo.FindByStaffAndDate(staffID, today)
	if err != nil {
		return nil, err
	}
	attendance, err := s.attRepo.FindByStaffAndDate(staffID, today)
	if err != nil {
		return nil, err
	}

	return &TodayStatus{
		Date:       today,
		Schedule:   schedule,
		Attendance: attendance,
		OnDuty:     attendance != nil && attendance.ClockOutAt == nil,
	}, nil
}

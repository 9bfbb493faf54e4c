package service

import (
	"ewarga-backend/internal/apperr"
	"ewarga-backend/internal/model"
	"ewarga-backend/internal/timeclock"
)

// consecutiveDayCap: a worker may hold the same shift on at most this many
// consecutive days.
const consecutiveDayCap = 2

type AutoGenerateInput struct {
	JobCategory  model.JobCategory `json:"job_category"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	SkipHolidays bool              `json:"skip_holidays"`
	CreatedBy    uint              `json:"-"`
}

// Shortfall records a shift whose headcount could not be fully met on a
// given day; the run continues, the gap is reported.
type Shortfall struct {
	Date      string `json:"date"`
	ShiftName string `json:"shift_name"`
	Missing   int    `json:"missing"`
}

type AutoGenerateResult struct {
	Created    int         `json:"created"`
	Reused     int         `json:"reused"` // slots already covered by identical existing schedules
	Shortfalls []Shortfall `json:"shortfalls"`
}

// AutoGenerate rotates every active worker of a job category across that
// category's active shifts over a date range.
//
// Shifts are processed per day in ascending start-time order and each must
// receive its required headcount. Candidates are drawn from a rotation
// cursor that advances one roster position per calendar day, while the
// in-day scan continues from wherever the previous shift stopped, so shifts
// on the same day draw from different parts of the roster. The run is
// additive-only: existing schedules are never removed or reassigned, and an
// identical existing (worker, shift, date) row counts as a filled slot, so
// re-running the same range is a no-op.
func (s *SchedulerService) AutoGenerate(input AutoGenerateInput) (*AutoGenerateResult, error) {
	if !input.JobCategory.Valid() {
		return nil, apperr.Validationf("unknown job category %q", string(input.JobCategory))
	}
	startDate, endDate, err := normalizeRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if err := s.checkCreator(input.CreatedBy); err != nil {
		return nil, err
	}

	roster, err := s.staffRepo.ListActiveByCategory(input.JobCategory)
	if err != nil {
		return nil, err
	}
	templates, err := s.templateRepo.ListActiveByCategory(input.JobCategory)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, apperr.Validationf("no active shift templates for category %s", input.JobCategory)
	}

	// Pre-flight: full daily coverage is structurally impossible when the
	// shifts together need more workers than the roster holds.
	totalRequired := 0
	for _, tpl := range templates {
		totalRequired += tpl.RequiredStaffCount
	}
	if totalRequired > len(roster) {
		return nil, &apperr.CapacityError{Required: totalRequired, Roster: len(roster)}
	}

	// One pre-fetch covers the requested range plus the lookback needed by
	// the consecutive-day rule, so a run starting mid-rotation still sees
	// prior assignments.
	staffIDs := make([]uint, len(roster))
	for i, st := range roster {
		staffIDs[i] = st.ID
	}
	lookbackStart := timeclock.AddDays(startDate, -consecutiveDayCap)
	existing, err := s.scheduleRepo.ListByStaffIDsAndRange(staffIDs, lookbackStart, endDate)
	if err != nil {
		return nil, err
	}
	idx := newScheduleIndex(existing)

	holidays, err := s.holidaySet(input.SkipHolidays, startDate, endDate)
	if err != nil {
		return nil, err
	}

	result := &AutoGenerateResult{Shortfalls: []Shortfall{}}
	var batch []model.StaffSchedule

	dayStart := 0
	for d := startDate; d <= endDate; d = timeclock.AddDays(d, 1) {
		if holidays[d] {
			dayStart = (dayStart + 1) % len(roster)
			continue
		}

		cursor := dayStart
		for _, tpl := range templates {
			picked, reused, next, missing := fillShift(roster, tpl, d, cursor, idx)
			cursor = next
			result.Reused += reused
			if missing > 0 {
				result.Shortfalls = append(result.Shortfalls, Shortfall{
					Date:      d,
					ShiftName: tpl.Name,
					Missing:   missing,
				})
			}
			for _, staffID := range picked {
				batch = append(batch, model.StaffSchedule{
					StaffID:         staffID,
					ShiftTemplateID: tpl.ID,
					Date:            d,
					CreatedBy:       input.CreatedBy,
				})
			}
		}

		// The starting index advances exactly one position per calendar
		// day, independent of how far the in-day scan travelled.
		dayStart = (dayStart + 1) % len(roster)
	}

	// Single write phase; the conflict clause makes a concurrent or retried
	// run unable to duplicate (staff, date) rows, and the created count
	// comes from the rows the insert really wrote.
	inserted, err := s.scheduleRepo.CreateManySkipDuplicates(batch)
	if err != nil {
		return nil, err
	}
	result.Created = int(inserted)
	return result, nil
}

// fillShift picks the workers for one shift on one day, scanning the roster
// from the cursor position and wrapping modulo roster size. The scan is
// bounded so heavy skipping cannot loop forever. Picked workers are
// recorded in the index immediately, keeping later shifts and days honest.
//
// Returns the newly picked staff ids, the number of slots already covered
// by identical existing schedules, the cursor position after the scan, and
// the unfilled headcount.
func fillShift(roster []model.Staff, tpl model.ShiftTemplate, date string, cursor int, idx *scheduleIndex) (picked []uint, reused, next, missing int) {
	n := len(roster)
	filled := 0
	maxAttempts := 3 * n

	for attempts := 0; attempts < maxAttempts && filled < tpl.RequiredStaffCount; attempts++ {
		staffID := roster[cursor%n].ID
		cursor++

		if tplID, ok := idx.templateOn(staffID, date); ok {
			if tplID == tpl.ID {
				// Identical assignment from a prior run: the slot is
				// already covered, no new row.
				filled++
				reused++
			}
			// Booked on another shift that day: skip.
			continue
		}

		if idx.onTemplateBothDays(staffID, tpl.ID, timeclock.AddDays(date, -1), timeclock.AddDays(date, -2)) {
			continue
		}

		idx.add(staffID, tpl.ID, date)
		picked = append(picked, staffID)
		filled++
	}

	return picked, reused, cursor, tpl.RequiredStaffCount - filled
}

// scheduleIndex answers the rotation loop's two questions without further
// queries: which shift (if any) a worker holds on a date, and whether a
// worker held a given shift on specific prior dates.
type scheduleIndex struct {
	byStaffDate map[uint]map[string]uint // staff -> date -> template
}

func newScheduleIndex(schedules []model.StaffSchedule) *scheduleIndex {
	idx := &scheduleIndex{byStaffDate: make(map[uint]map[string]uint)}
	for _, sched := range schedules {
		idx.add(sched.StaffID, sched.ShiftTemplateID, sched.Date)
	}
	return idx
}

func (idx *scheduleIndex) add(staffID, templateID uint, date string) {
	dates, ok := idx.byStaffDate[staffID]
	if !ok {
		dates = make(map[string]uint)
		idx.byStaffDate[staffID] = dates
	}
	dates[date] = templateID
}

func (idx *scheduleIndex) templateOn(staffID uint, date string) (uint, bool) {
	tplID, ok := idx.byStaffDate[staffID][date]
	return tplID, ok
}

func (idx *scheduleIndex) onTemplateBothDays(staffID, templateID uint, d1, d2 string) bool {
	t1, ok1 := idx.templateOn(staffID, d1)
	t2, ok2 := idx.templateOn(staffID, d2)
	return ok1 && ok2 && t1 == templateID && t2 == templateID
}

// Package timeclock holds the wall-clock and calendar-date arithmetic used
// by scheduling and attendance. Wall-clock times are "HH:mm" strings in a
// fixed civil timezone expressed as a UTC offset; calendar dates are
// "YYYY-MM-DD" strings. The runtime's local timezone is never consulted.
package timeclock

import (
	"math"
	"time"

	"ewarga-backend/internal/apperr"
)

const (
	DateLayout      = "2006-01-02"
	WallClockLayout = "15:04"
)

// Offset is a fixed civil-timezone offset in minutes east of UTC.
type Offset int

func (o Offset) Duration() time.Duration {
	return time.Duration(o) * time.Minute
}

// ParseWallClock validates an "HH:mm" string and returns its components.
func ParseWallClock(s string) (hour, minute int, err error) {
	t, perr := time.Parse(WallClockLayout, s)
	if perr != nil {
		return 0, 0, apperr.Validationf("invalid time %q, expected HH:mm", s)
	}
	return t.Hour(), t.Minute(), nil
}

// NormalizeDate validates a "YYYY-MM-DD" string and returns it in canonical
// form, dropping any time-of-day component the caller may have sent.
func NormalizeDate(s string) (string, error) {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", apperr.Validationf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t.Format(DateLayout), nil
}

// AddDays shifts a canonical date string by n calendar days. The input is
// assumed already normalized.
func AddDays(date string, n int) string {
	t, _ := time.Parse(DateLayout, date)
	return t.AddDate(0, 0, n).Format(DateLayout)
}

// DaysBetween returns the inclusive number of days from start to end,
// or 0 when end precedes start.
func DaysBetween(start, end string) int {
	s, _ := time.Parse(DateLayout, start)
	e, _ := time.Parse(DateLayout, end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// CivilDate returns the calendar date of an instant as seen in the civil
// timezone.
func CivilDate(instant time.Time, offset Offset) string {
	return instant.UTC().Add(offset.Duration()).Format(DateLayout)
}

// Lateness compares a clock-in instant against a scheduled wall-clock start.
//
// The instant is first shifted into the civil timezone so the scheduled
// start is anchored to the correct calendar day; a clock-in shortly after
// local midnight must not resolve against the previous UTC day. The
// scheduled start is then shifted back to an absolute instant and the
// elapsed minutes are floored. Within tolerance the result is nil (on
// time); beyond it, the result is elapsed minus tolerance, always >= 1.
func Lateness(scheduledStart string, toleranceMinutes int, clockIn time.Time, offset Offset) (*int, error) {
	hour, minute, err := ParseWallClock(scheduledStart)
	if err != nil {
		return nil, err
	}

	civil := clockIn.UTC().Add(offset.Duration())
	year, month, day := civil.Date()

	scheduledCivil := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	scheduledInstant := scheduledCivil.Add(-offset.Duration())

	elapsed := int(math.Floor(clockIn.Sub(scheduledInstant).Minutes()))
	if elapsed <= toleranceMinutes {
		return nil, nil
	}

	late := elapsed - toleranceMinutes
	return &late, nil
}

// Package apperr defines the error kinds the core surfaces to callers.
// Handlers map each kind to an HTTP status; services never wrap one kind
// inside another.
package apperr

import "fmt"

// ValidationError reports malformed input (bad time format, out-of-range
// tolerance or headcount, bad date ordering). Always raised before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a state collision: duplicate template name, worker
// already scheduled that day, open session already exists, nothing to close.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func Conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ReferenceError reports an unknown or mismatched entity reference
// (worker, template, creator, schedule, or a job-category mismatch).
type ReferenceError struct {
	Message string
}

func (e *ReferenceError) Error() string { return e.Message }

func Referencef(format string, args ...any) *ReferenceError {
	return &ReferenceError{Message: fmt.Sprintf(format, args...)}
}

// OutOfRangeError reports a geolocation beyond the geofence radius. The
// rounded distance is carried for user display.
type OutOfRangeError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("location is %.0f m from the geofence center, beyond the allowed %.0f m radius",
		e.DistanceMeters, e.RadiusMeters)
}

// CapacityError rejects an auto-generation run whose total required
// headcount exceeds the roster size.
type CapacityError struct {
	Required int
	Roster   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("total required headcount %d exceeds roster size %d", e.Required, e.Roster)
}

package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrInvalidGeofence  = errors.New("GPS position is not available, retry with a location fix")
	ErrOutOfGeofence    = errors.New("you are outside the office radius")
	ErrEvidenceMissing  = errors.New("attendance selfie evidence is required")

	// Check-out errors
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrNoActiveCheckIn   = errors.New("no active check-in found for today or yesterday")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)

// OutOfFenceError reports how far outside the office fence the coordinates
// were. It unwraps to ErrOutOfGeofence so callers can match the kind while
// still surfacing the distance verbatim.
type OutOfFenceError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *OutOfFenceError) Error() string {
	return fmt.Sprintf("you are %.2fm from the office, beyond the allowed %.0fm radius", e.DistanceMeters, e.RadiusMeters)
}

func (e *OutOfFenceError) Unwrap() error {
	return ErrOutOfGeofence
}

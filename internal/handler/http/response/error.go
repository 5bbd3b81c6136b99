package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bntng-project/esensi-backend/internal/domain/attendance"
	"github.com/bntng-project/esensi-backend/internal/domain/employee"
	"github.com/bntng-project/esensi-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence rejections carry the measured distance for the client to show.
	var fenceErr *attendance.OutOfFenceError
	if errors.As(err, &fenceErr) {
		BadRequest(w, fenceErr.Error(), map[string]string{
			"distance_meters": fmt.Sprintf("%.2f", fenceErr.DistanceMeters),
			"radius_meters":   fmt.Sprintf("%.0f", fenceErr.RadiusMeters),
		})
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidGeofence):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrOutOfGeofence):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrEvidenceMissing):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNoActiveCheckIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

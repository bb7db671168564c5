package response

import (
	"errors"
	"net/http"

	"github.com/team-alpha/ams-backend-go/internal/domain/attendance"
	"github.com/team-alpha/ams-backend-go/internal/domain/auth"
	"github.com/team-alpha/ams-backend-go/internal/domain/holiday"
	"github.com/team-alpha/ams-backend-go/internal/domain/leave"
	"github.com/team-alpha/ams-backend-go/internal/domain/shift"
	"github.com/team-alpha/ams-backend-go/internal/domain/user"
	"github.com/team-alpha/ams-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrApproverAccessRequired):
		Forbidden(w, "Approver access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrHolidayToday):
		Conflict(w, "Cannot check in on a holiday")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		NotFound(w, "No check-in found for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out cannot be before check-in", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date cannot be before start date", nil)
	case errors.Is(err, leave.ErrPastStartDate):
		BadRequest(w, "Start date cannot be in the past", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Overlapping approved leave exists")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrSelfApproval):
		Forbidden(w, "Cannot decide your own leave request")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Decision must be Approved or Rejected", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrDuplicateAssignment):
		Conflict(w, "Shift already assigned for this date")
	case errors.Is(err, shift.ErrInvalidTimeWindow):
		BadRequest(w, "Shift end time must be after start time", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrOverlappingHoliday):
		Conflict(w, "Holiday overlaps an existing holiday")
	case errors.Is(err, holiday.ErrInvalidDateRange):
		BadRequest(w, "End date cannot be before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package shift

import "errors"

var (
	ErrShiftNotFound       = errors.New("shift not found")
	ErrAssignmentNotFound  = errors.New("shift assignment not found")
	ErrDuplicateAssignment = errors.New("user already has a shift assignment for that date")
	ErrInvalidTimeWindow   = errors.New("shift end time must be after start time")
)

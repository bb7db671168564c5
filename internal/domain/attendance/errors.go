package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrHolidayToday     = errors.New("today is a holiday, attendance is not recorded")
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")

	// Check-out errors
	ErrNotCheckedIn          = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut     = errors.New("you have already checked out")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time cannot be earlier than check-in")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)

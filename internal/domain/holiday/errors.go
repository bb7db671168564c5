package holiday

import "errors"

var (
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrOverlappingHoliday = errors.New("holiday overlaps an existing holiday")
	ErrInvalidDateRange   = errors.New("holiday end date must not be before start date")
)

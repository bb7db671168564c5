package calendar

import (
	"context"
	"time"
)

// Gate answers holiday and shift-window membership queries. It is read-only:
// a missing shift assignment is reported as "not within shift" rather than an
// error, so the absence of data fails closed.
type Gate interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
	IsWithinAssignedShift(ctx context.Context, userID string, date, instant time.Time) (bool, error)
}

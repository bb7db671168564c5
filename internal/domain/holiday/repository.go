package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context) ([]Holiday, error)

	// ContainsDate reports whether any holiday range contains date.
	ContainsDate(ctx context.Context, date time.Time) (bool, error)

	// ExistsOverlapping reports whether any holiday range shares at least one
	// day with [start, end].
	ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error)

	// AcquireWriteLock serializes holiday writers for the remainder of the
	// surrounding transaction. Must be taken before the overlap check so two
	// concurrent overlapping inserts cannot both pass it.
	AcquireWriteLock(ctx context.Context) error
}

package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts a new record. The (user_id, date) unique constraint is the
	// serialization point for concurrent check-ins: the losing writer gets
	// ErrAlreadyCheckedIn.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByUserAndDate returns nil when no record exists for that day.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Record, error)

	// SetCheckOut closes an open record. The write is conditional on check_out
	// still being NULL, so of two concurrent check-outs exactly one commits and
	// the loser gets ErrAlreadyCheckedOut.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) error

	List(ctx context.Context, filter RecordFilter) ([]Record, error)
}

package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
}

type AssignmentRepository interface {
	// Create inserts a new assignment. The (user_id, date) unique constraint is
	// the serialization point for concurrent assignment attempts.
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Assignment, error)
	ListByUser(ctx context.Context, userID string) ([]Assignment, error)
}

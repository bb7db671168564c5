package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, error)

	// HasApprovedOverlap reports whether the employee holds an Approved request
	// sharing at least one day with [start, end]. excludeID skips the request
	// being decided.
	HasApprovedOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)

	// UpdateDecision moves a request out of Pending. The write is conditional
	// on status still being Pending; a concurrent writer that loses the race
	// gets ErrAlreadyProcessed.
	UpdateDecision(ctx context.Context, id string, status Status, approvedBy string, approvedAt time.Time) error
}

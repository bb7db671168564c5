package shift

import (
	"context"
	"time"

	"github.com/team-alpha/ams-backend-go/internal/domain/user"
)

type ShiftService interface {
	CreateShift(ctx context.Context, ident user.Identity, req CreateShiftRequest) (ShiftResponse, error)
	ListShifts(ctx context.Context) ([]ShiftResponse, error)
	AssignShift(ctx context.Context, ident user.Identity, req AssignShiftRequest) (AssignmentResponse, error)
	CheckWithinShift(ctx context.Context, ident user.Identity, at time.Time) (WithinShiftResponse, error)
}

package attendance

import (
	"context"

	"github.com/team-alpha/ams-backend-go/internal/domain/user"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, ident user.Identity) (RecordResponse, error)
	CheckOut(ctx context.Context, ident user.Identity) (RecordResponse, error)
	GetMyRecords(ctx context.Context, ident user.Identity, filter RecordFilter) ([]RecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)
}

package leave

import (
	"context"

	"github.com/team-alpha/ams-backend-go/internal/domain/user"
)

type LeaveService interface {
	Submit(ctx context.Context, ident user.Identity, req SubmitRequest) (RequestResponse, error)
	Decide(ctx context.Context, ident user.Identity, requestID string, decision DecideRequest) (RequestResponse, error)
	GetMyRequests(ctx context.Context, ident user.Identity) ([]RequestResponse, error)
	ListRequests(ctx context.Context, filter RequestFilter) ([]RequestResponse, error)
}

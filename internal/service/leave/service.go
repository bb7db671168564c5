package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/team-alpha/ams-backend-go/internal/domain/leave"
	"github.com/team-alpha/ams-backend-go/internal/domain/user"
	"github.com/team-alpha/ams-backend-go/internal/pkg/clock"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	policy user.AccessPolicy
	clock  clock.Clock
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, ident user.Identity, req leave.SubmitRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if endDate.Before(startDate) {
		return leave.RequestResponse{}, leave.ErrInvalidDateRange
	}

	now := l.clock.Now()
	today := clock.DateOf(now)
	if startDate.Before(today) {
		return leave.RequestResponse{}, leave.ErrPastStartDate
	}

	hasOverlap, err := l.LeaveRequestRepository.HasApprovedOverlap(ctx, ident.ID, startDate, endDate, "")
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to check overlapping approved leaves: %w", err)
	}
	if hasOverlap {
		return leave.RequestResponse{}, leave.ErrOverlappingLeave
	}

	request := leave.Request{
		EmployeeID: ident.ID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		AppliedAt:  now,
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapRequestToResponse(created), nil
}

// Decide implements leave.LeaveService.
//
// Self-approval is rejected before the role check so that a misconfigured
// approver set can never let an employee decide their own request. The final
// write is conditional on the request still being Pending; the loser of two
// concurrent decisions gets ErrAlreadyProcessed.
func (l *LeaveServiceImpl) Decide(ctx context.Context, ident user.Identity, requestID string, decision leave.DecideRequest) (leave.RequestResponse, error) {
	status := leave.Status(decision.Status)
	if status != leave.StatusApproved && status != leave.StatusRejected {
		return leave.RequestResponse{}, leave.ErrInvalidDecision
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if user.IsSelf(ident.ID, request.EmployeeID) {
		return leave.RequestResponse{}, leave.ErrSelfApproval
	}
	if !l.policy.IsApprover(ident.Role) {
		return leave.RequestResponse{}, user.ErrApproverAccessRequired
	}
	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	if status == leave.StatusApproved {
		hasOverlap, err := l.LeaveRequestRepository.HasApprovedOverlap(
			ctx, request.EmployeeID, request.StartDate, request.EndDate, request.ID)
		if err != nil {
			return leave.RequestResponse{}, fmt.Errorf("failed to check overlapping approved leaves: %w", err)
		}
		if hasOverlap {
			return leave.RequestResponse{}, leave.ErrOverlappingLeave
		}
	}

	now := l.clock.Now()
	if err := l.LeaveRequestRepository.UpdateDecision(ctx, request.ID, status, ident.ID, now); err != nil {
		return leave.RequestResponse{}, err
	}

	request.Status = status
	request.ApprovedBy = &ident.ID
	request.ApprovedAt = &now

	return mapRequestToResponse(request), nil
}

// GetMyRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyRequests(ctx context.Context, ident user.Identity) ([]leave.RequestResponse, error) {
	filter := leave.RequestFilter{EmployeeID: &ident.ID}
	requests, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapRequestToResponse(req))
	}

	return responses, nil
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.RequestFilter) ([]leave.RequestResponse, error) {
	requests, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapRequestToResponse(req))
	}

	return responses, nil
}

// mapRequestToResponse converts a Request entity to RequestResponse
func mapRequestToResponse(req leave.Request) leave.RequestResponse {
	return leave.RequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		LeaveType:    string(req.LeaveType),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Days:         req.Days(),
		Reason:       req.Reason,
		Status:       string(req.Status),
		ApprovedBy:   req.ApprovedBy,
		AppliedAt:    req.AppliedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	policy user.AccessPolicy,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		policy:                 policy,
		clock:                  clk,
	}
}

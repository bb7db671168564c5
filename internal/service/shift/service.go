package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/team-alpha/ams-backend-go/internal/domain/calendar"
	"github.com/team-alpha/ams-backend-go/internal/domain/shift"
	"github.com/team-alpha/ams-backend-go/internal/domain/user"
	"github.com/team-alpha/ams-backend-go/internal/pkg/clock"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	shift.AssignmentRepository
	gate  calendar.Gate
	clock clock.Clock
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, ident user.Identity, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	startTime, _ := time.Parse("15:04:05", req.StartTime)
	endTime, _ := time.Parse("15:04:05", req.EndTime)
	if !endTime.After(startTime) {
		return shift.ShiftResponse{}, shift.ErrInvalidTimeWindow
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		Name:      req.Name,
		StartTime: startTime,
		EndTime:   endTime,
		IsActive:  isActive,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return mapShiftToResponse(created), nil
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh))
	}

	return responses, nil
}

// AssignShift implements shift.ShiftService. An assignment is unique per
// (user, date); the repository reports a concurrent duplicate insert as
// ErrDuplicateAssignment.
func (s *ShiftServiceImpl) AssignShift(ctx context.Context, ident user.Identity, req shift.AssignShiftRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return shift.AssignmentResponse{}, fmt.Errorf("failed to parse assignment date: %w", err)
	}

	if _, err := s.ShiftRepository.GetByID(ctx, req.ShiftID); err != nil {
		return shift.AssignmentResponse{}, err
	}

	created, err := s.AssignmentRepository.Create(ctx, shift.Assignment{
		UserID:  req.UserID,
		ShiftID: req.ShiftID,
		Date:    date,
	})
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	return mapAssignmentToResponse(created), nil
}

// CheckWithinShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CheckWithinShift(ctx context.Context, ident user.Identity, at time.Time) (shift.WithinShiftResponse, error) {
	if at.IsZero() {
		at = s.clock.Now()
	}
	date := clock.DateOf(at)

	within, err := s.gate.IsWithinAssignedShift(ctx, ident.ID, date, at)
	if err != nil {
		return shift.WithinShiftResponse{}, err
	}

	return shift.WithinShiftResponse{
		WithinShift: within,
		CheckedAt:   at.UTC().Format(time.RFC3339),
	}, nil
}

func mapShiftToResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime.Format("15:04:05"),
		EndTime:   s.EndTime.Format("15:04:05"),
		IsActive:  s.IsActive,
	}
}

func mapAssignmentToResponse(a shift.Assignment) shift.AssignmentResponse {
	return shift.AssignmentResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		ShiftID:   a.ShiftID,
		ShiftName: a.ShiftName,
		Date:      a.Date.Format("2006-01-02"),
	}
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
	gate calendar.Gate,
	clk clock.Clock,
) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository:      shiftRepo,
		AssignmentRepository: assignmentRepo,
		gate:                 gate,
		clock:                clk,
	}
}

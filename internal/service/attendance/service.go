package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/team-alpha/ams-backend-go/internal/domain/attendance"
	"github.com/team-alpha/ams-backend-go/internal/domain/calendar"
	"github.com/team-alpha/ams-backend-go/internal/domain/user"
	"github.com/team-alpha/ams-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	gate  calendar.Gate
	clock clock.Clock
}

// CheckIn implements attendance.AttendanceService.
//
// The state machine per (user, date) is NoRecord -> CheckedIn -> CheckedOut.
// A second check-in on an already-open day is rejected outright rather than
// converted into an implicit check-out.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, ident user.Identity) (attendance.RecordResponse, error) {
	now := a.clock.Now()
	today := clock.DateOf(now)

	isHoliday, err := a.gate.IsHoliday(ctx, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to consult holiday calendar: %w", err)
	}
	if isHoliday {
		return attendance.RecordResponse{}, attendance.ErrHolidayToday
	}

	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, ident.ID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	rec := attendance.Record{
		UserID:  ident.ID,
		Date:    today,
		CheckIn: &now,
		Status:  attendance.StatusCheckedIn,
	}

	// The unique (user_id, date) constraint closes the race between two
	// concurrent check-ins; the repository reports the loser as a duplicate.
	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return mapRecordToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, ident user.Identity) (attendance.RecordResponse, error) {
	now := a.clock.Now()
	today := clock.DateOf(now)

	rec, err := a.AttendanceRepository.GetByUserAndDate(ctx, ident.ID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if rec == nil || rec.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if now.Before(*rec.CheckIn) {
		return attendance.RecordResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	// The conditional write closes the race between two concurrent check-outs;
	// the losing writer gets ErrAlreadyCheckedOut from the repository.
	if err := a.AttendanceRepository.SetCheckOut(ctx, rec.ID, now); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec.CheckOut = &now
	rec.Status = attendance.StatusCheckedOut

	return mapRecordToResponse(*rec), nil
}

// GetMyRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyRecords(ctx context.Context, ident user.Identity, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	filter.UserID = &ident.ID
	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return responses, nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return responses, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format("15:04:05")
	return &format
}

// mapRecordToResponse converts a Record entity to RecordResponse
func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	var worked *string
	if d, ok := rec.WorkedDuration(); ok {
		s := d.String()
		worked = &s
	}

	return attendance.RecordResponse{
		ID:             rec.ID,
		UserID:         rec.UserID,
		Date:           rec.Date.Format("2006-01-02"),
		CheckInTime:    timePtrToString(rec.CheckIn),
		CheckOutTime:   timePtrToString(rec.CheckOut),
		Status:         string(rec.Status),
		WorkedDuration: worked,
	}
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	gate calendar.Gate,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		gate:                 gate,
		clock:                clk,
	}
}

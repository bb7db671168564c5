package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/team-alpha/ams-backend-go/internal/domain/calendar"
	"github.com/team-alpha/ams-backend-go/internal/domain/holiday"
	"github.com/team-alpha/ams-backend-go/internal/domain/shift"
)

type GateImpl struct {
	holiday.HolidayRepository
	shift.ShiftRepository
	shift.AssignmentRepository
}

// IsHoliday implements calendar.Gate.
func (g *GateImpl) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	contains, err := g.HolidayRepository.ContainsDate(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday calendar: %w", err)
	}
	return contains, nil
}

// IsWithinAssignedShift implements calendar.Gate. A user with no assignment
// for the date is outside any shift window; that is a closed gate, not an
// error.
func (g *GateImpl) IsWithinAssignedShift(ctx context.Context, userID string, date, instant time.Time) (bool, error) {
	assignment, err := g.AssignmentRepository.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, shift.ErrAssignmentNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	assignedShift, err := g.ShiftRepository.GetByID(ctx, assignment.ShiftID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get assigned shift: %w", err)
	}

	if !assignedShift.IsActive {
		return false, nil
	}

	windowStart := anchorTimeOfDay(date, assignedShift.StartTime)
	windowEnd := anchorTimeOfDay(date, assignedShift.EndTime)
	instant = instant.UTC()

	return !instant.Before(windowStart) && !instant.After(windowEnd), nil
}

// anchorTimeOfDay places a shift's clock time onto a concrete calendar day.
func anchorTimeOfDay(date, timeOfDay time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), timeOfDay.Second(), 0, time.UTC)
}

func NewCalendarGate(
	holidayRepo holiday.HolidayRepository,
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
) calendar.Gate {
	return &GateImpl{
		HolidayRepository:    holidayRepo,
		ShiftRepository:      shiftRepo,
		AssignmentRepository: assignmentRepo,
	}
}

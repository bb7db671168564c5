package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-alpha/ams-backend-go/internal/domain/holiday"
	"github.com/team-alpha/ams-backend-go/internal/domain/shift"
)

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (r *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	r.holidays = append(r.holidays, h)
	return h, nil
}

func (r *fakeHolidayRepo) List(ctx context.Context) ([]holiday.Holiday, error) {
	return r.holidays, nil
}

func (r *fakeHolidayRepo) ContainsDate(ctx context.Context, date time.Time) (bool, error) {
	for _, h := range r.holidays {
		if !date.Before(h.StartDate) && !date.After(h.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeHolidayRepo) ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error) {
	for _, h := range r.holidays {
		if !start.After(h.EndDate) && !h.StartDate.After(end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeHolidayRepo) AcquireWriteLock(ctx context.Context) error {
	return nil
}

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
}

func (r *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	r.shifts[s.ID] = s
	return s, nil
}

func (r *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *fakeShiftRepo) List(ctx context.Context) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.shifts {
		out = append(out, s)
	}
	return out, nil
}

type fakeAssignmentRepo struct {
	assignments map[string]shift.Assignment
}

func assignmentKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (r *fakeAssignmentRepo) Create(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	key := assignmentKey(a.UserID, a.Date)
	if _, exists := r.assignments[key]; exists {
		return shift.Assignment{}, shift.ErrDuplicateAssignment
	}
	r.assignments[key] = a
	return a, nil
}

func (r *fakeAssignmentRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (shift.Assignment, error) {
	a, ok := r.assignments[assignmentKey(userID, date)]
	if !ok {
		return shift.Assignment{}, shift.ErrAssignmentNotFound
	}
	return a, nil
}

func (r *fakeAssignmentRepo) ListByUser(ctx context.Context, userID string) ([]shift.Assignment, error) {
	var out []shift.Assignment
	for _, a := range r.assignments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func timeOfDay(hour, min, sec int) time.Time {
	return time.Date(0, 1, 1, hour, min, sec, 0, time.UTC)
}

func newTestGate() (*fakeHolidayRepo, *fakeShiftRepo, *fakeAssignmentRepo, *GateImpl) {
	holidayRepo := &fakeHolidayRepo{}
	shiftRepo := &fakeShiftRepo{shifts: make(map[string]shift.Shift)}
	assignmentRepo := &fakeAssignmentRepo{assignments: make(map[string]shift.Assignment)}
	gate := NewCalendarGate(holidayRepo, shiftRepo, assignmentRepo).(*GateImpl)
	return holidayRepo, shiftRepo, assignmentRepo, gate
}

var march2 = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestCalendarGate_IsHoliday(t *testing.T) {
	holidayRepo, _, _, gate := newTestGate()
	holidayRepo.holidays = append(holidayRepo.holidays, holiday.Holiday{
		Name:      "Spring Break",
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	})

	for _, tc := range []struct {
		date time.Time
		want bool
	}{
		{time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), false},
	} {
		got, err := gate.IsHoliday(context.Background(), tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "date %s", tc.date.Format("2006-01-02"))
	}
}

func TestCalendarGate_IsHoliday_Idempotent(t *testing.T) {
	holidayRepo, _, _, gate := newTestGate()
	holidayRepo.holidays = append(holidayRepo.holidays, holiday.Holiday{
		Name:      "Founders Day",
		StartDate: march2,
		EndDate:   march2,
	})

	first, err := gate.IsHoliday(context.Background(), march2)
	require.NoError(t, err)
	second, err := gate.IsHoliday(context.Background(), march2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestCalendarGate_IsWithinAssignedShift_NoAssignment(t *testing.T) {
	_, _, _, gate := newTestGate()

	// No assignment means the gate is closed, not an error.
	within, err := gate.IsWithinAssignedShift(context.Background(), "user-1", march2, march2.Add(10*time.Hour))

	require.NoError(t, err)
	assert.False(t, within)
}

func TestCalendarGate_IsWithinAssignedShift_WindowBounds(t *testing.T) {
	_, shiftRepo, assignmentRepo, gate := newTestGate()
	shiftRepo.shifts["shift-1"] = shift.Shift{
		ID:        "shift-1",
		Name:      "Day",
		StartTime: timeOfDay(9, 0, 0),
		EndTime:   timeOfDay(17, 0, 0),
		IsActive:  true,
	}
	assignmentRepo.assignments[assignmentKey("user-1", march2)] = shift.Assignment{
		UserID:  "user-1",
		ShiftID: "shift-1",
		Date:    march2,
	}

	for _, tc := range []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"before window", time.Date(2026, 3, 2, 8, 59, 59, 0, time.UTC), false},
		{"window start", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), true},
		{"mid window", time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC), true},
		{"window end", time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), true},
		{"after window", time.Date(2026, 3, 2, 17, 0, 1, 0, time.UTC), false},
	} {
		within, err := gate.IsWithinAssignedShift(context.Background(), "user-1", march2, tc.instant)
		require.NoError(t, err)
		assert.Equal(t, tc.want, within, tc.name)
	}
}

func TestCalendarGate_IsWithinAssignedShift_InactiveShift(t *testing.T) {
	_, shiftRepo, assignmentRepo, gate := newTestGate()
	shiftRepo.shifts["shift-1"] = shift.Shift{
		ID:        "shift-1",
		Name:      "Retired",
		StartTime: timeOfDay(9, 0, 0),
		EndTime:   timeOfDay(17, 0, 0),
		IsActive:  false,
	}
	assignmentRepo.assignments[assignmentKey("user-1", march2)] = shift.Assignment{
		UserID:  "user-1",
		ShiftID: "shift-1",
		Date:    march2,
	}

	within, err := gate.IsWithinAssignedShift(context.Background(), "user-1", march2, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.False(t, within)
}

func TestCalendarGate_IsWithinAssignedShift_DanglingShift(t *testing.T) {
	_, _, assignmentRepo, gate := newTestGate()
	assignmentRepo.assignments[assignmentKey("user-1", march2)] = shift.Assignment{
		UserID:  "user-1",
		ShiftID: "gone",
		Date:    march2,
	}

	within, err := gate.IsWithinAssignedShift(context.Background(), "user-1", march2, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.False(t, within)
}

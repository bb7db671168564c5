package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-alpha/ams-backend-go/internal/domain/attendance"
	"github.com/team-alpha/ams-backend-go/internal/domain/leave"
	"github.com/team-alpha/ams-backend-go/internal/domain/user"
	"github.com/team-alpha/ams-backend-go/internal/pkg/database"
	"github.com/team-alpha/ams-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

var testDB *database.DB

// testDBOrSkip connects once; tests skip when no test database is configured.
func testDBOrSkip(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err)
	}
	return testDB
}

func truncateTables(t *testing.T, db *database.DB) {
	ctx := context.Background()
	for _, table := range []string{"leave_requests", "attendance_records", "shift_assignments", "holidays", "users", "shifts"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T, db *database.DB, email string) string {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := postgresql.NewUserRepository(db)
	created, err := repo.Create(ctx, user.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)
	return created.ID
}

func TestAttendanceRepository_UniquePerUserAndDate(t *testing.T) {
	db := testDBOrSkip(t)
	truncateTables(t, db)
	ctx := context.Background()

	userID := createTestUser(t, db, "attendance@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rec := attendance.Record{
		UserID:  userID,
		Date:    date,
		CheckIn: &checkIn,
		Status:  attendance.StatusCheckedIn,
	}

	_, err := repo.Create(ctx, rec)
	require.NoError(t, err)

	// Second insert for the same (user, date) hits the unique constraint.
	_, err = repo.Create(ctx, rec)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceRepository_SetCheckOut_SecondWriterLoses(t *testing.T) {
	db := testDBOrSkip(t)
	truncateTables(t, db)
	ctx := context.Background()

	userID := createTestUser(t, db, "checkout@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rec, err := repo.Create(ctx, attendance.Record{
		UserID:  userID,
		Date:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		CheckIn: &checkIn,
		Status:  attendance.StatusCheckedIn,
	})
	require.NoError(t, err)

	err = repo.SetCheckOut(ctx, rec.ID, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// The write matches open records only; a second check-out cannot move the
	// committed time.
	err = repo.SetCheckOut(ctx, rec.ID, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)

	stored, err := repo.GetByUserAndDate(ctx, userID, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, stored.CheckOut)
	assert.Equal(t, 17, stored.CheckOut.UTC().Hour())
}

func TestAttendanceRepository_GetByUserAndDate_Missing(t *testing.T) {
	db := testDBOrSkip(t)
	truncateTables(t, db)
	ctx := context.Background()

	userID := createTestUser(t, db, "missing@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	rec, err := repo.GetByUserAndDate(ctx, userID, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLeaveRequestRepository_HasApprovedOverlap_EmptyExcludeID(t *testing.T) {
	db := testDBOrSkip(t)
	truncateTables(t, db)
	ctx := context.Background()

	employeeID := createTestUser(t, db, "overlap@example.com")
	repo := postgresql.NewLeaveRequestRepository(db)

	created, err := repo.Create(ctx, leave.Request{
		EmployeeID: employeeID,
		LeaveType:  leave.TypeEarned,
		StartDate:  time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		Reason:     "vacation",
		Status:     leave.StatusApproved,
		AppliedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	// The submit path passes an empty exclude ID against the uuid id column.
	overlaps, err := repo.HasApprovedOverlap(ctx, employeeID,
		time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.True(t, overlaps)

	// Excluding the request itself leaves nothing to collide with.
	overlaps, err = repo.HasApprovedOverlap(ctx, employeeID,
		time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), created.ID)
	require.NoError(t, err)
	assert.False(t, overlaps)
}

func TestLeaveRequestRepository_UpdateDecision_CompareAndSwap(t *testing.T) {
	db := testDBOrSkip(t)
	truncateTables(t, db)
	ctx := context.Background()

	employeeID := createTestUser(t, db, "employee@example.com")
	approverID := createTestUser(t, db, "approver@example.com")
	repo := postgresql.NewLeaveRequestRepository(db)

	created, err := repo.Create(ctx, leave.Request{
		EmployeeID: employeeID,
		LeaveType:  leave.TypeCasual,
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Reason:     "family event",
		Status:     leave.StatusPending,
		AppliedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	err = repo.UpdateDecision(ctx, created.ID, leave.StatusApproved, approverID, now)
	require.NoError(t, err)

	// The conditional write only matches Pending rows; a second decision loses.
	err = repo.UpdateDecision(ctx, created.ID, leave.StatusRejected, approverID, now)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

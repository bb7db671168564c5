package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/team-alpha/ams-backend-go/internal/domain/shift"
	"github.com/team-alpha/ams-backend-go/internal/pkg/database"
)

type shiftAssignmentRepository struct {
	db *database.DB
}

// Create implements shift.AssignmentRepository.
func (r *shiftAssignmentRepository) Create(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO shift_assignments (id, user_id, shift_id, date)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.UserID, a.ShiftID, a.Date,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return shift.Assignment{}, shift.ErrDuplicateAssignment
		}
		return shift.Assignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return a, nil
}

// GetByUserAndDate implements shift.AssignmentRepository.
func (r *shiftAssignmentRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.user_id, sa.shift_id, sa.date, sa.created_at, sa.updated_at,
			   s.name AS shift_name
		FROM shift_assignments sa
		LEFT JOIN shifts s ON s.id = sa.shift_id
		WHERE sa.user_id = $1
		  AND sa.date = $2
		LIMIT 1
	`

	var a shift.Assignment
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&a.ID, &a.UserID, &a.ShiftID, &a.Date, &a.CreatedAt, &a.UpdatedAt,
		&a.ShiftName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return a, nil
}

// ListByUser implements shift.AssignmentRepository.
func (r *shiftAssignmentRepository) ListByUser(ctx context.Context, userID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.user_id, sa.shift_id, sa.date, sa.created_at, sa.updated_at,
			   s.name AS shift_name
		FROM shift_assignments sa
		LEFT JOIN shifts s ON s.id = sa.shift_id
		WHERE sa.user_id = $1
		ORDER BY sa.date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		var a shift.Assignment
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.ShiftID, &a.Date, &a.CreatedAt, &a.UpdatedAt,
			&a.ShiftName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func NewShiftAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/team-alpha/ams-backend-go/internal/domain/holiday"
	"github.com/team-alpha/ams-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

// Writers of the holidays table serialize on this advisory lock key.
const holidayWriteLockKey = int64(7403921)

// AcquireWriteLock implements holiday.HolidayRepository. The lock is
// transaction scoped and released automatically on commit or rollback.
func (r *holidayRepository) AcquireWriteLock(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", holidayWriteLockKey); err != nil {
		return fmt.Errorf("failed to acquire holiday write lock: %w", err)
	}

	return nil
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	if h.ID == "" {
		h.ID = uuid.NewString()
	}

	query := `
		INSERT INTO holidays (id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		h.ID, h.Name, h.StartDate, h.EndDate,
	).Scan(&h.CreatedAt, &h.UpdatedAt)

	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, created_at, updated_at
		FROM holidays
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(
			&h.ID, &h.Name, &h.StartDate, &h.EndDate,
			&h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}

// ContainsDate implements holiday.HolidayRepository.
func (r *holidayRepository) ContainsDate(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM holidays
			WHERE start_date <= $1
			  AND end_date >= $1
		)
	`

	var contains bool
	if err := q.QueryRow(ctx, query, date).Scan(&contains); err != nil {
		return false, fmt.Errorf("failed to check holiday date: %w", err)
	}

	return contains, nil
}

// ExistsOverlapping implements holiday.HolidayRepository.
func (r *holidayRepository) ExistsOverlapping(ctx context.Context, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM holidays
			WHERE start_date <= $2
			  AND end_date >= $1
		)
	`

	var overlaps bool
	if err := q.QueryRow(ctx, query, start, end).Scan(&overlaps); err != nil {
		return false, fmt.Errorf("failed to check overlapping holidays: %w", err)
	}

	return overlaps, nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

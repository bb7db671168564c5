package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/team-alpha/ams-backend-go/internal/domain/holiday"
	"github.com/team-alpha/ams-backend-go/internal/domain/user"
	"github.com/team-alpha/ams-backend-go/internal/pkg/database"
	"github.com/team-alpha/ams-backend-go/internal/repository/postgresql"
)

type HolidayServiceImpl struct {
	db *database.DB
	holiday.HolidayRepository
}

// CreateHoliday implements holiday.HolidayService. The overlap check and the
// insert run in one transaction holding the holiday write lock, so two
// concurrent overlapping inserts cannot both commit.
func (h *HolidayServiceImpl) CreateHoliday(ctx context.Context, ident user.Identity, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	if endDate.Before(startDate) {
		return holiday.HolidayResponse{}, holiday.ErrInvalidDateRange
	}

	var created holiday.Holiday
	err := postgresql.WithTransaction(ctx, h.db, func(txCtx context.Context) error {
		if err := h.HolidayRepository.AcquireWriteLock(txCtx); err != nil {
			return err
		}

		overlaps, err := h.HolidayRepository.ExistsOverlapping(txCtx, startDate, endDate)
		if err != nil {
			return err
		}
		if overlaps {
			return holiday.ErrOverlappingHoliday
		}

		created, err = h.HolidayRepository.Create(txCtx, holiday.Holiday{
			Name:      req.Name,
			StartDate: startDate,
			EndDate:   endDate,
		})
		return err
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return mapHolidayToResponse(created), nil
}

// ListHolidays implements holiday.HolidayService.
func (h *HolidayServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := h.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hd := range holidays {
		responses = append(responses, mapHolidayToResponse(hd))
	}

	return responses, nil
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:        h.ID,
		Name:      h.Name,
		StartDate: h.StartDate.Format("2006-01-02"),
		EndDate:   h.EndDate.Format("2006-01-02"),
	}
}

func NewHolidayService(db *database.DB, holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		db:                db,
		HolidayRepository: holidayRepo,
	}
}

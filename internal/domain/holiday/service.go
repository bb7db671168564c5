package holiday

import (
	"context"

	"github.com/team-alpha/ams-backend-go/internal/domain/user"
)

type HolidayService interface {
	CreateHoliday(ctx context.Context, ident user.Identity, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
}

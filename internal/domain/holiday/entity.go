package holiday

import "time"

// Holiday is an inclusive [StartDate, EndDate] range of non-working days.
// Ranges must not overlap each other.
type Holiday struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

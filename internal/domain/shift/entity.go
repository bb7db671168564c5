package shift

import "time"

// Shift is a recurring daily time window. Start and end are times of day; the
// date component is ignored.
type Shift struct {
	ID        string
	Name      string
	StartTime time.Time
	EndTime   time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assignment pins a user to a shift for a single calendar day. Unique per
// (user, date).
type Assignment struct {
	ID        string
	UserID    string
	ShiftID   string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// joined for responses
	ShiftName *string
}

package attendance

import "time"

type Status string

const (
	StatusPresent    Status = "Present"
	StatusAbsent     Status = "Absent"
	StatusOnLeave    Status = "On-Leave"
	StatusCheckedIn  Status = "Checked-In"
	StatusCheckedOut Status = "Checked-Out"
)

// Record is the attendance state for one (user, date) pair. At most one
// record exists per pair; it is created lazily on first check-in.
type Record struct {
	ID        string
	UserID    string
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkedDuration returns check-out minus check-in with both instants anchored
// to the record's date in UTC, so a stored clock time can never straddle a
// zone change. The second return is false when either time is missing.
func (r Record) WorkedDuration() (time.Duration, bool) {
	if r.CheckIn == nil || r.CheckOut == nil {
		return 0, false
	}
	in := anchorToDate(r.Date, *r.CheckIn)
	out := anchorToDate(r.Date, *r.CheckOut)
	return out.Sub(in), true
}

func anchorToDate(date, t time.Time) time.Time {
	t = t.UTC()
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Type string

const (
	TypeSick   Type = "Sick"
	TypeCasual Type = "Casual"
	TypeEarned Type = "Earned"
	TypeUnpaid Type = "Unpaid"
)

var TypeValues = []string{
	string(TypeSick),
	string(TypeCasual),
	string(TypeEarned),
	string(TypeUnpaid),
}

// Request is a leave request. It is created Pending and leaves Pending
// exactly once; after that only the approver fields are meaningful.
type Request struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ApprovedBy *string
	ApprovedAt *time.Time
	AppliedAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// joined for responses
	EmployeeName *string
}

// Days is the inclusive day count of the requested range.
func (r Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// Overlaps reports whether two inclusive date ranges share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

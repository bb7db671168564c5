package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrInvalidDateRange = errors.New("leave end date cannot be earlier than start date")
	ErrPastStartDate    = errors.New("leave start date cannot be in the past")
	ErrOverlappingLeave = errors.New("an approved leave already covers part of this range")
	ErrAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrSelfApproval     = errors.New("employees cannot decide their own leave requests")
	ErrInvalidDecision  = errors.New("decision must be Approved or Rejected")
)

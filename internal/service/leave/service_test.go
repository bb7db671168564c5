package leave

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-alpha/ams-backend-go/internal/domain/leave"
	"github.com/team-alpha/ams-backend-go/internal/domain/user"
	"github.com/team-alpha/ams-backend-go/internal/pkg/clock"
)

type fakeLeaveRepo struct {
	mu   sync.Mutex
	seq  int
	reqs map[string]*leave.Request
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{reqs: make(map[string]*leave.Request)}
}

func (r *fakeLeaveRepo) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	req.ID = fmt.Sprintf("leave-%d", r.seq)
	stored := req
	r.reqs[req.ID] = &stored
	return req, nil
}

func (r *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.reqs[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return *req, nil
}

func (r *fakeLeaveRepo) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []leave.Request
	for _, req := range r.reqs {
		if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(req.Status) != *filter.Status {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (r *fakeLeaveRepo) HasApprovedOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.reqs {
		if req.EmployeeID != employeeID || req.ID == excludeID {
			continue
		}
		if req.Status != leave.StatusApproved {
			continue
		}
		if leave.Overlaps(start, end, req.StartDate, req.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

// UpdateDecision mirrors the conditional UPDATE of the real repository: the
// write succeeds only while the request is still Pending.
func (r *fakeLeaveRepo) UpdateDecision(ctx context.Context, id string, status leave.Status, approvedBy string, approvedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.reqs[id]
	if !ok {
		return leave.ErrRequestNotFound
	}
	if req.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}
	req.Status = status
	req.ApprovedBy = &approvedBy
	req.ApprovedAt = &approvedAt
	return nil
}

var (
	testNow      = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	testEmployee = user.Identity{ID: "emp-1", Role: user.RoleEmployee}
	testApprover = user.Identity{ID: "hr-1", Role: user.RoleHR}
)

func newTestLeaveService(repo leave.LeaveRequestRepository) leave.LeaveService {
	policy := user.NewAccessPolicy([]user.Role{user.RoleAdmin, user.RoleHR})
	return NewLeaveService(repo, policy, clock.Fixed{T: testNow})
}

func submitPending(t *testing.T, svc leave.LeaveService, ident user.Identity, start, end string) leave.RequestResponse {
	t.Helper()
	resp, err := svc.Submit(context.Background(), ident, leave.SubmitRequest{
		LeaveType: string(leave.TypeCasual),
		StartDate: start,
		EndDate:   end,
		Reason:    "family event",
	})
	require.NoError(t, err)
	return resp
}

func TestLeaveService_Submit_Success(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())

	resp := submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")

	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, testEmployee.ID, resp.EmployeeID)
}

func TestLeaveService_Submit_SingleDay(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())

	resp := submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-10")

	assert.Equal(t, 1, resp.Days)
}

func TestLeaveService_Submit_InvalidDateRange(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())

	_, err := svc.Submit(context.Background(), testEmployee, leave.SubmitRequest{
		LeaveType: string(leave.TypeSick),
		StartDate: "2026-03-12",
		EndDate:   "2026-03-10",
		Reason:    "flu",
	})

	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestLeaveService_Submit_PastStartDate(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())

	_, err := svc.Submit(context.Background(), testEmployee, leave.SubmitRequest{
		LeaveType: string(leave.TypeSick),
		StartDate: "2026-03-01",
		EndDate:   "2026-03-03",
		Reason:    "flu",
	})

	assert.ErrorIs(t, err, leave.ErrPastStartDate)
}

func TestLeaveService_Submit_TodayIsAllowed(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())

	resp := submitPending(t, svc, testEmployee, "2026-03-02", "2026-03-02")

	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestLeaveService_Submit_OverlappingApproved(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo)

	first := submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")
	_, err := svc.Decide(context.Background(), testApprover, first.ID, leave.DecideRequest{Status: string(leave.StatusApproved)})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), testEmployee, leave.SubmitRequest{
		LeaveType: string(leave.TypeEarned),
		StartDate: "2026-03-12",
		EndDate:   "2026-03-14",
		Reason:    "trip",
	})

	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestLeaveService_Submit_PendingOverlapIsAllowed(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())

	submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")

	// Only Approved requests block; a second Pending one may coexist.
	resp := submitPending(t, svc, testEmployee, "2026-03-11", "2026-03-13")
	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestLeaveService_Decide_Approve(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())
	pending := submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")

	decided, err := svc.Decide(context.Background(), testApprover, pending.ID, leave.DecideRequest{Status: string(leave.StatusApproved)})

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, testApprover.ID, *decided.ApprovedBy)
}

func TestLeaveService_Decide_Reject(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())
	pending := submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")

	decided, err := svc.Decide(context.Background(), testApprover, pending.ID, leave.DecideRequest{Status: string(leave.StatusRejected)})

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), decided.Status)
}

func TestLeaveService_Decide_InvalidDecision(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())
	pending := submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")

	_, err := svc.Decide(context.Background(), testApprover, pending.ID, leave.DecideRequest{Status: "Maybe"})

	assert.ErrorIs(t, err, leave.ErrInvalidDecision)
}

func TestLeaveService_Decide_NotFound(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())

	_, err := svc.Decide(context.Background(), testApprover, "missing", leave.DecideRequest{Status: string(leave.StatusApproved)})

	assert.ErrorIs(t, err, leave.ErrRequestNotFound)
}

func TestLeaveService_Decide_SelfApproval(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())

	// Even an admin cannot decide their own request; the self check runs
	// before the role check.
	admin := user.Identity{ID: "admin-1", Role: user.RoleAdmin}
	pending := submitPending(t, svc, admin, "2026-03-10", "2026-03-12")

	_, err := svc.Decide(context.Background(), admin, pending.ID, leave.DecideRequest{Status: string(leave.StatusApproved)})

	assert.ErrorIs(t, err, leave.ErrSelfApproval)
}

func TestLeaveService_Decide_NotApprover(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())
	pending := submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")

	other := user.Identity{ID: "emp-2", Role: user.RoleEmployee}
	_, err := svc.Decide(context.Background(), other, pending.ID, leave.DecideRequest{Status: string(leave.StatusApproved)})

	assert.ErrorIs(t, err, user.ErrApproverAccessRequired)
}

func TestLeaveService_Decide_AlreadyProcessed(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())
	pending := submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")

	_, err := svc.Decide(context.Background(), testApprover, pending.ID, leave.DecideRequest{Status: string(leave.StatusRejected)})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), testApprover, pending.ID, leave.DecideRequest{Status: string(leave.StatusApproved)})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Decide_OverlapRecheckOnApprove(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())

	first := submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")
	second := submitPending(t, svc, testEmployee, "2026-03-11", "2026-03-13")

	_, err := svc.Decide(context.Background(), testApprover, first.ID, leave.DecideRequest{Status: string(leave.StatusApproved)})
	require.NoError(t, err)

	// Approving the second would create two overlapping approved leaves.
	_, err = svc.Decide(context.Background(), testApprover, second.ID, leave.DecideRequest{Status: string(leave.StatusApproved)})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)

	// Rejecting it is still fine.
	decided, err := svc.Decide(context.Background(), testApprover, second.ID, leave.DecideRequest{Status: string(leave.StatusRejected)})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), decided.Status)
}

func TestLeaveService_Decide_ConcurrentDecisionsOneWins(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())
	pending := submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")

	secondApprover := user.Identity{ID: "admin-1", Role: user.RoleAdmin}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	decisions := []struct {
		ident  user.Identity
		status leave.Status
	}{
		{testApprover, leave.StatusApproved},
		{secondApprover, leave.StatusRejected},
	}

	for i, d := range decisions {
		wg.Add(1)
		go func(i int, ident user.Identity, status leave.Status) {
			defer wg.Done()
			_, errs[i] = svc.Decide(context.Background(), ident, pending.ID, leave.DecideRequest{Status: string(status)})
		}(i, d.ident, d.status)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestLeaveService_GetMyRequests_ScopedToCaller(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo())

	submitPending(t, svc, testEmployee, "2026-03-10", "2026-03-12")
	submitPending(t, svc, user.Identity{ID: "emp-2", Role: user.RoleEmployee}, "2026-03-10", "2026-03-12")

	mine, err := svc.GetMyRequests(context.Background(), testEmployee)

	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, testEmployee.ID, mine[0].EmployeeID)
}

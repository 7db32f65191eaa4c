package overtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haergo/haergo-backend-go/internal/domain/approval"
	"github.com/haergo/haergo-backend-go/internal/domain/overtime"
	"github.com/haergo/haergo-backend-go/internal/domain/user"
)

type fakeOvertimeRepo struct {
	mu       sync.Mutex
	requests map[string]overtime.OvertimeRequest
	order    []string
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{requests: make(map[string]overtime.OvertimeRequest)}
}

func (f *fakeOvertimeRepo) seed(o overtime.OvertimeRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests[o.ID] = o
	f.order = append(f.order, o.ID)
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, o overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.CreatedAt = time.Now()
	f.requests[o.ID] = o
	f.order = append(f.order, o.ID)
	return o, nil
}

func (f *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.requests[id]
	if !ok {
		return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
	}
	return o, nil
}

func (f *fakeOvertimeRepo) List(ctx context.Context, filter overtime.ListOvertimeFilter) ([]overtime.OvertimeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []overtime.OvertimeRequest
	for _, id := range f.order {
		o := f.requests[id]
		if filter.EmployeeID != nil && o.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(o.Status) != *filter.Status {
			continue
		}
		if filter.Month != nil && o.Date.Format("2006-01") != *filter.Month {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOvertimeRepo) ListPending(ctx context.Context) ([]overtime.OvertimeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []overtime.OvertimeRequest
	for _, id := range f.order {
		if o := f.requests[id]; o.Status == approval.StatusPending {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) ResolveIfPending(ctx context.Context, o overtime.OvertimeRequest) (overtime.OvertimeRequest, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.requests[o.ID]
	if !ok || stored.Status != approval.StatusPending {
		return overtime.OvertimeRequest{}, false, nil
	}
	f.requests[o.ID] = o
	return o, true, nil
}

func (f *fakeOvertimeRepo) ListApprovedInRange(ctx context.Context, employeeID string, startDate, endDate string) ([]overtime.OvertimeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	start, _ := time.Parse("2006-01-02", startDate)
	end, _ := time.Parse("2006-01-02", endDate)
	var out []overtime.OvertimeRequest
	for _, id := range f.order {
		o := f.requests[id]
		if o.EmployeeID == employeeID && o.Status == approval.StatusApproved && !o.Date.Before(start) && !o.Date.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) ListAllApprovedInRange(ctx context.Context, startDate, endDate string) ([]overtime.OvertimeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	start, _ := time.Parse("2006-01-02", startDate)
	end, _ := time.Parse("2006-01-02", endDate)
	var out []overtime.OvertimeRequest
	for _, id := range f.order {
		o := f.requests[id]
		if o.Status == approval.StatusApproved && !o.Date.Before(start) && !o.Date.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func authedContext(t *testing.T, userID string, role user.Role, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	claims := map[string]interface{}{
		"user_id": userID,
		"email":   "test@haergo.com",
		"role":    string(role),
		"type":    "access",
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *fakeOvertimeRepo) *OvertimeServiceImpl {
	return &OvertimeServiceImpl{
		OvertimeRepository: repo,
		now: func() time.Time {
			return time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)
		},
	}
}

func TestOvertimeService_Submit_Success(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())
	ctx := authedContext(t, "user-1", user.RoleEmployee, "emp-1")

	resp, err := svc.Submit(ctx, overtime.SubmitOvertimeRequest{
		Date:       "2026-03-02",
		StartClock: "19:00",
		EndClock:   "21:30",
		Reason:     "release deployment",
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 2.5, resp.Hours)
	assert.Equal(t, string(approval.StatusPending), resp.Status)
}

func TestOvertimeService_Submit_OvernightWrap(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())
	ctx := authedContext(t, "user-1", user.RoleEmployee, "emp-1")

	// An end before the start rolls over to the next day.
	resp, err := svc.Submit(ctx, overtime.SubmitOvertimeRequest{
		Date:       "2026-03-02",
		StartClock: "22:00",
		EndClock:   "02:00",
		Reason:     "incident response",
	})

	require.NoError(t, err)
	assert.Equal(t, 4.0, resp.Hours)
}

func TestOvertimeService_Submit_ZeroDuration(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())
	ctx := authedContext(t, "user-1", user.RoleEmployee, "emp-1")

	_, err := svc.Submit(ctx, overtime.SubmitOvertimeRequest{
		Date:       "2026-03-02",
		StartClock: "20:00",
		EndClock:   "20:00",
		Reason:     "nothing really",
	})

	assert.ErrorIs(t, err, overtime.ErrZeroDuration)
}

func TestOvertimeService_Pending_EmployeeForbidden(t *testing.T) {
	svc := newTestService(newFakeOvertimeRepo())
	ctx := authedContext(t, "user-1", user.RoleEmployee, "emp-1")

	_, err := svc.Pending(ctx)

	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestOvertimeService_Resolve_RejectWithoutNote(t *testing.T) {
	repo := newFakeOvertimeRepo()
	repo.seed(overtime.OvertimeRequest{
		ID:         "ot-1",
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartClock: "19:00",
		EndClock:   "21:00",
		Hours:      2,
		Status:     approval.StatusPending,
	})
	svc := newTestService(repo)
	ctx := authedContext(t, "user-mgr", user.RoleManager, "emp-mgr")

	// Overtime rejections do not require a note.
	resp, err := svc.Resolve(ctx, overtime.ResolveOvertimeRequest{RequestID: "ot-1", Approve: false})

	require.NoError(t, err)
	assert.Equal(t, string(approval.StatusRejected), resp.Status)
	require.NotNil(t, resp.ResolvedBy)
	assert.Equal(t, "user-mgr", *resp.ResolvedBy)
}

func TestOvertimeService_Resolve_AlreadyProcessed(t *testing.T) {
	repo := newFakeOvertimeRepo()
	repo.seed(overtime.OvertimeRequest{
		ID:         "ot-1",
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartClock: "19:00",
		EndClock:   "21:00",
		Hours:      2,
		Status:     approval.StatusPending,
	})
	svc := newTestService(repo)
	ctx := authedContext(t, "user-mgr", user.RoleManager, "emp-mgr")

	_, err := svc.Resolve(ctx, overtime.ResolveOvertimeRequest{RequestID: "ot-1", Approve: true})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, overtime.ResolveOvertimeRequest{RequestID: "ot-1", Approve: true})
	assert.ErrorIs(t, err, overtime.ErrOvertimeRequestAlreadyProcessed)
}

func TestOvertimeService_MyRequests_ScopedToCaller(t *testing.T) {
	repo := newFakeOvertimeRepo()
	repo.seed(overtime.OvertimeRequest{
		ID:         "ot-1",
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartClock: "19:00",
		EndClock:   "21:00",
		Hours:      2,
		Status:     approval.StatusPending,
	})
	repo.seed(overtime.OvertimeRequest{
		ID:         "ot-2",
		EmployeeID: "emp-2",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartClock: "19:00",
		EndClock:   "20:00",
		Hours:      1,
		Status:     approval.StatusPending,
	})
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1", user.RoleEmployee, "emp-1")

	requests, err := svc.MyRequests(ctx, overtime.ListOvertimeFilter{})

	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "ot-1", requests[0].ID)
}

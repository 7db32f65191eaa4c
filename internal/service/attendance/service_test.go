package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haergo/haergo-backend-go/internal/config"
	"github.com/haergo/haergo-backend-go/internal/domain/attendance"
	"github.com/haergo/haergo-backend-go/internal/domain/employee"
	"github.com/haergo/haergo-backend-go/internal/domain/leave"
	"github.com/haergo/haergo-backend-go/internal/domain/user"
)

// fakeAttendanceRepo enforces the one-record-per-day and single-close
// guarantees in memory, matching the postgresql repository's conditional
// writes.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) CreateIfAbsent(ctx context.Context, a attendance.Attendance) (attendance.Attendance, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := recordKey(a.EmployeeID, a.Date)
	if existing, ok := f.records[key]; ok {
		return existing, false, nil
	}
	f.records[key] = a
	return a, true, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.records[recordKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (f *fakeAttendanceRepo) CloseOpenSession(ctx context.Context, employeeID string, date time.Time, a attendance.Attendance) (attendance.Attendance, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := recordKey(employeeID, date)
	stored, ok := f.records[key]
	if !ok || stored.ClockOut != nil {
		return attendance.Attendance{}, false, nil
	}
	f.records[key] = a
	return a, true, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, a := range f.records {
		if a.EmployeeID == filter.EmployeeID {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListByEmployees(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = true
	}
	var out []attendance.Attendance
	for _, a := range f.records {
		if ids[a.EmployeeID] && !a.Date.Before(start) && !a.Date.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, a := range f.records {
		if a.EmployeeID == employeeID && !a.Date.Before(start) && !a.Date.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) ListIDsByDepartment(ctx context.Context, department string) ([]string, error) {
	var out []string
	for _, e := range f.employees {
		if e.Department != nil && *e.Department == department {
			out = append(out, e.ID)
		}
	}
	return out, nil
}

// fakeLeaveRepo only serves ListApprovedInRange here; the rest of the
// interface is unused by the attendance service.
type fakeLeaveRepo struct {
	approved []leave.LeaveRequest
}

func (f *fakeLeaveRepo) CreateReserving(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	return lr, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.ListLeaveRequestsFilter) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ResolveIfPending(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, bool, error) {
	return lr, false, nil
}

func (f *fakeLeaveRepo) DeleteIfPending(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func (f *fakeLeaveRepo) SumDaysByStatus(ctx context.Context, employeeID, typeCode string, year int, statuses []string) (int, error) {
	return 0, nil
}

func (f *fakeLeaveRepo) ListApprovedInRange(ctx context.Context, employeeID string, startDate, endDate string) ([]leave.LeaveRequest, error) {
	return f.approved, nil
}

func (f *fakeLeaveRepo) ListAllApprovedInRange(ctx context.Context, startDate, endDate string) ([]leave.LeaveRequest, error) {
	return f.approved, nil
}

var testOffices = []config.OfficeLocation{{
	ID:        "hq",
	Name:      "Headquarters",
	Latitude:  -6.161777101062483,
	Longitude: 106.87519933469652,
	Radius:    100,
	IsDefault: true,
}}

var testWorkHours = config.WorkHoursConfig{
	Start:            "09:00",
	End:              "18:00",
	ToleranceMinutes: 15,
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newTestService(repo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo, leaveRepo *fakeLeaveRepo, clock *testClock) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		EmployeeRepository:   empRepo,
		LeaveRepository:      leaveRepo,
		workHours:            testWorkHours,
		offices:              testOffices,
		now:                  clock.Now,
	}
}

func authedContext(t *testing.T, role user.Role, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	claims := map[string]interface{}{
		"user_id": "user-1",
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

func TestAttendanceService_ClockIn_Office(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 3, 2, 8, 55, 0, 0, time.UTC)}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeLeaveRepo{}, clock)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	resp, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		Latitude:  testOffices[0].Latitude,
		Longitude: testOffices[0].Longitude,
		Mode:      string(attendance.ModeOffice),
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, "2026-03-02", resp.Date)
	require.NotNil(t, resp.OfficeID)
	assert.Equal(t, "hq", *resp.OfficeID)
	assert.Nil(t, resp.LateMinutes)
}

func TestAttendanceService_ClockIn_Late(t *testing.T) {
	// 09:20 is five minutes past the 15-minute tolerance.
	clock := &testClock{now: time.Date(2026, 3, 2, 9, 20, 0, 0, time.UTC)}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeLeaveRepo{}, clock)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	resp, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		Latitude:  testOffices[0].Latitude,
		Longitude: testOffices[0].Longitude,
		Mode:      string(attendance.ModeOffice),
	})

	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 20, *resp.LateMinutes)
}

func TestAttendanceService_ClockIn_OutsideOfficeRadius(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 3, 2, 8, 55, 0, 0, time.UTC)}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeLeaveRepo{}, clock)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		Latitude:  -6.2,
		Longitude: 106.9,
		Mode:      string(attendance.ModeOffice),
	})

	assert.ErrorIs(t, err, attendance.ErrOutsideOfficeRadius)
}

func TestAttendanceService_ClockIn_ClientVisitNeedsAddress(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 3, 2, 8, 55, 0, 0, time.UTC)}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeLeaveRepo{}, clock)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		Latitude:  -6.2,
		Longitude: 106.9,
		Mode:      string(attendance.ModeClientVisit),
	})

	assert.Error(t, err)
}

// Two concurrent clock-ins on the same day must produce exactly one record.
func TestAttendanceService_ClockIn_Concurrent(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 3, 2, 8, 55, 0, 0, time.UTC)}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeLeaveRepo{}, clock)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
				Latitude:  -6.2,
				Longitude: 106.9,
				Mode:      string(attendance.ModeRemote),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, dup)
}

func TestAttendanceService_ClockOut(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeLeaveRepo{}, clock)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		Latitude:  -6.2,
		Longitude: 106.9,
		Mode:      string(attendance.ModeRemote),
	})
	require.NoError(t, err)

	clock.Set(time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC))
	resp, err := svc.ClockOut(ctx, attendance.ClockOutRequest{Latitude: -6.2, Longitude: 106.9})

	require.NoError(t, err)
	require.NotNil(t, resp.ClockOut)
	require.NotNil(t, resp.WorkHours)
	assert.Equal(t, 8.5, *resp.WorkHours)

	// A second clock-out is rejected.
	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{Latitude: -6.2, Longitude: 106.9})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestAttendanceService_ClockOut_NotClockedIn(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeLeaveRepo{}, clock)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{Latitude: -6.2, Longitude: 106.9})

	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestAttendanceService_Stats(t *testing.T) {
	repo := newFakeAttendanceRepo()
	hours := func(v float64) *float64 { return &v }
	seed := func(day int, status attendance.Status, worked *float64) {
		date := time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
		repo.records[recordKey("emp-1", date)] = attendance.Attendance{
			ID:         "att-" + date.Format("02"),
			EmployeeID: "emp-1",
			Date:       date,
			Mode:       attendance.ModeOffice,
			Status:     status,
			WorkHours:  worked,
		}
	}
	seed(2, attendance.StatusPresent, hours(8.5))
	seed(3, attendance.StatusPresent, hours(8))
	seed(4, attendance.StatusPresent, nil)
	seed(5, attendance.StatusLate, nil)

	leaveRepo := &fakeLeaveRepo{approved: []leave.LeaveRequest{{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		TypeCode:   "annual",
		StartDate:  time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}}}

	clock := &testClock{now: time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, newFakeEmployeeRepo(), leaveRepo, clock)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	stats, err := svc.Stats(ctx, "2026-03")

	require.NoError(t, err)
	assert.Equal(t, 22, stats.WorkingDays)
	assert.Equal(t, 3, stats.PresentDays)
	assert.Equal(t, 1, stats.LateDays)
	assert.Equal(t, 2, stats.ExcusedDays)
	// Ten working days have elapsed through March 13.
	assert.Equal(t, 4, stats.AbsentDays)
	assert.Equal(t, 16.5, stats.TotalWorkHours)
	assert.Equal(t, 27.3, stats.AttendanceRate)
}

func TestAttendanceService_Stats_InvalidMonth(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC)}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeLeaveRepo{}, clock)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	_, err := svc.Stats(ctx, "March 2026")

	assert.Error(t, err)
}

func TestAttendanceService_Team_ManagerScopedToDepartment(t *testing.T) {
	engineering := "Engineering"
	sales := "Sales"
	empRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-mgr", UserID: "user-mgr", FullName: "Mara Lim", Role: user.RoleManager, Department: &engineering},
		employee.Employee{ID: "emp-1", UserID: "user-1", FullName: "Ana Wijaya", Role: user.RoleEmployee, Department: &engineering},
		employee.Employee{ID: "emp-2", UserID: "user-2", FullName: "Bud Santoso", Role: user.RoleEmployee, Department: &sales},
	)

	repo := newFakeAttendanceRepo()
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"emp-mgr", "emp-1", "emp-2"} {
		repo.records[recordKey(id, today)] = attendance.Attendance{
			ID:         "att-" + id,
			EmployeeID: id,
			Date:       today,
			Mode:       attendance.ModeOffice,
			Status:     attendance.StatusPresent,
		}
	}

	clock := &testClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, empRepo, &fakeLeaveRepo{}, clock)

	ctx := authedContext(t, user.RoleManager, "emp-mgr")
	resp, err := svc.Team(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	for _, r := range resp.Records {
		assert.NotEqual(t, "emp-2", r.EmployeeID)
	}
}

func TestAttendanceService_Team_EmployeeForbidden(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeLeaveRepo{}, clock)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	_, err := svc.Team(ctx, "")

	assert.ErrorIs(t, err, attendance.ErrUnauthorized)
}

func TestAttendanceService_Settings(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(), &fakeLeaveRepo{}, clock)

	resp, err := svc.Settings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.WorkStart)
	assert.Equal(t, "18:00", resp.WorkEnd)
	assert.Equal(t, 15, resp.ToleranceMinutes)
	require.Len(t, resp.Offices, 1)
	assert.True(t, resp.Offices[0].IsDefault)
}

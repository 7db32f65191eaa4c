package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// CreateIfAbsent inserts the day's record for the employee. It returns
	// false (and no error) when a record for (employee, date) already
	// exists, so concurrent clock-ins resolve to exactly one row.
	CreateIfAbsent(ctx context.Context, a Attendance) (Attendance, bool, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// calendar day. Returns ErrAttendanceNotFound when absent.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// CloseOpenSession records the clock-out on the employee's open record
	// for the day. It returns false (and no error) when the record was
	// already closed, so concurrent clock-outs resolve to exactly one.
	CloseOpenSession(ctx context.Context, employeeID string, date time.Time, a Attendance) (Attendance, bool, error)

	// ListByEmployee retrieves history for one employee, newest first.
	ListByEmployee(ctx context.Context, filter HistoryFilter) ([]Attendance, int64, error)

	// ListByEmployees retrieves records for a set of employees in a date
	// range, used for team views.
	ListByEmployees(ctx context.Context, employeeIDs []string, start, end time.Time) ([]Attendance, error)

	// ListByEmployeeAndRange retrieves one employee's records in a range,
	// used for stats and calendar aggregation.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}

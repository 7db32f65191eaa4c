package leave

import (
	"context"
)

// LeaveRepository defines data access for leave requests.
type LeaveRepository interface {
	// CreateReserving inserts the request after re-checking the employee's
	// remaining quota for (type, year) under a per-key lock, so two
	// concurrent submissions cannot both pass the balance check. Pending
	// and approved requests both count against the reservation. Returns
	// ErrInsufficientBalance when the quota cannot cover the request.
	CreateReserving(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves requests matching the filter, newest first.
	List(ctx context.Context, filter ListLeaveRequestsFilter) ([]LeaveRequest, error)

	// ListPending retrieves all pending requests, oldest first.
	ListPending(ctx context.Context) ([]LeaveRequest, error)

	// ResolveIfPending flips a pending request to approved or rejected.
	// Returns false (and no error) when the request was already resolved,
	// so concurrent approvals resolve to exactly one winner.
	ResolveIfPending(ctx context.Context, lr LeaveRequest) (LeaveRequest, bool, error)

	// DeleteIfPending withdraws a pending request. Returns false when the
	// request was no longer pending.
	DeleteIfPending(ctx context.Context, id string) (bool, error)

	// SumDaysByStatus totals working days for one employee, type and year
	// across the given statuses.
	SumDaysByStatus(ctx context.Context, employeeID, typeCode string, year int, statuses []string) (int, error)

	// ListApprovedInRange retrieves one employee's approved requests
	// overlapping a date range, used for excused-day marking.
	ListApprovedInRange(ctx context.Context, employeeID string, startDate, endDate string) ([]LeaveRequest, error)

	// ListAllApprovedInRange retrieves every employee's approved requests
	// overlapping a date range, with employee names, for the shared
	// calendar.
	ListAllApprovedInRange(ctx context.Context, startDate, endDate string) ([]LeaveRequest, error)
}

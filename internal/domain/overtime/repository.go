package overtime

import (
	"context"
)

type OvertimeRepository interface {
	Create(ctx context.Context, o OvertimeRequest) (OvertimeRequest, error)

	GetByID(ctx context.Context, id string) (OvertimeRequest, error)

	// List retrieves requests matching the filter, newest first.
	List(ctx context.Context, filter ListOvertimeFilter) ([]OvertimeRequest, error)

	// ListPending retrieves all pending requests, oldest first.
	ListPending(ctx context.Context) ([]OvertimeRequest, error)

	// ResolveIfPending flips a pending request to approved or rejected.
	// Returns false (and no error) when the request was already resolved.
	ResolveIfPending(ctx context.Context, o OvertimeRequest) (OvertimeRequest, bool, error)

	// ListApprovedInRange retrieves one employee's approved requests in a
	// date range.
	ListApprovedInRange(ctx context.Context, employeeID string, startDate, endDate string) ([]OvertimeRequest, error)

	// ListAllApprovedInRange retrieves every employee's approved requests
	// in a date range, with employee names, for the shared calendar.
	ListAllApprovedInRange(ctx context.Context, startDate, endDate string) ([]OvertimeRequest, error)
}

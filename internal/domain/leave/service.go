package leave

import (
	"context"
)

// LeaveService defines business logic for the leave workflow.
type LeaveService interface {
	// Types lists the leave catalog.
	Types(ctx context.Context) []LeaveType

	// Submit validates a request against the catalog policy and reserves
	// balance for quota-deducting types.
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)

	// Balance reports the authenticated employee's annual consumption.
	// Only approved requests count as used.
	Balance(ctx context.Context, year int) (BalanceResponse, error)

	// MyRequests lists the authenticated employee's requests.
	MyRequests(ctx context.Context, filter ListLeaveRequestsFilter) ([]LeaveRequestResponse, error)

	// Pending lists requests the caller is allowed to resolve, filtered
	// by the caller's approval tier.
	Pending(ctx context.Context) ([]LeaveRequestResponse, error)

	// Resolve approves or rejects a pending request. Rejection requires
	// a note.
	Resolve(ctx context.Context, req ResolveLeaveRequest) (LeaveRequestResponse, error)

	// Withdraw deletes the caller's own request while still pending.
	Withdraw(ctx context.Context, requestID string) error
}

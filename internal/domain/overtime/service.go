package overtime

import (
	"context"
)

// OvertimeService defines business logic for overtime requests.
type OvertimeService interface {
	// Submit records an overtime request. End times earlier than start
	// times wrap past midnight.
	Submit(ctx context.Context, req SubmitOvertimeRequest) (OvertimeRequestResponse, error)

	// MyRequests lists the authenticated employee's requests.
	MyRequests(ctx context.Context, filter ListOvertimeFilter) ([]OvertimeRequestResponse, error)

	// Pending lists pending requests for approvers.
	Pending(ctx context.Context) ([]OvertimeRequestResponse, error)

	// Resolve approves or rejects a pending request. A note is optional
	// either way.
	Resolve(ctx context.Context, req ResolveOvertimeRequest) (OvertimeRequestResponse, error)
}

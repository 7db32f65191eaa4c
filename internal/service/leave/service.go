package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haergo/haergo-backend-go/internal/domain/approval"
	"github.com/haergo/haergo-backend-go/internal/domain/leave"
	"github.com/haergo/haergo-backend-go/internal/domain/user"
	"github.com/haergo/haergo-backend-go/internal/pkg/utils"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	now func() time.Time
}

func NewLeaveService(leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
		now:             time.Now,
	}
}

// Types implements leave.LeaveService.
func (l *LeaveServiceImpl) Types(ctx context.Context) []leave.LeaveType {
	types := make([]leave.LeaveType, 0, len(leave.CatalogOrder))
	for _, code := range leave.CatalogOrder {
		types = append(types, leave.Catalog[code])
	}
	return types
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	policy, ok := leave.Catalog[req.TypeCode]
	if !ok {
		return leave.LeaveRequestResponse{}, leave.ErrUnknownLeaveType
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	workingDays := utils.CountWorkingDays(start, end)
	if workingDays == 0 {
		return leave.LeaveRequestResponse{}, leave.ErrNoWorkingDays
	}
	if workingDays > policy.MaxDaysPerRequest {
		return leave.LeaveRequestResponse{}, fmt.Errorf("%w: %s allows at most %d days", leave.ErrMaxSpanExceeded, policy.Name, policy.MaxDaysPerRequest)
	}

	// Notice is checked for every type: zero-notice types still reject
	// start dates in the past.
	notice := int(start.Sub(l.today()).Hours() / 24)
	if notice < policy.MinNoticeDays {
		if policy.MinNoticeDays > 0 {
			return leave.LeaveRequestResponse{}, fmt.Errorf("%w: %s requires %d days notice", leave.ErrMinNoticeViolation, policy.Name, policy.MinNoticeDays)
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("%w: %s cannot start in the past", leave.ErrMinNoticeViolation, policy.Name)
	}

	request := leave.LeaveRequest{
		ID:            uuid.NewString(),
		EmployeeID:    caller.EmployeeID,
		TypeCode:      policy.Code,
		StartDate:     start,
		EndDate:       end,
		WorkingDays:   workingDays,
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
		Status:        approval.StatusPending,
	}

	// Quota-deducting types go through the balance reservation; the rest
	// insert directly.
	created, err := l.LeaveRepository.CreateReserving(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return created.ToResponse(), nil
}

// Balance implements leave.LeaveService.
func (l *LeaveServiceImpl) Balance(ctx context.Context, year int) (leave.BalanceResponse, error) {
	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	if year == 0 {
		year = l.now().Year()
	}

	resp := leave.BalanceResponse{
		Year:    year,
		Entries: make([]leave.BalanceEntry, 0, len(leave.CatalogOrder)),
	}
	for _, code := range leave.CatalogOrder {
		policy := leave.Catalog[code]
		// Unlimited-quota types carry no balance to report.
		if policy.AnnualQuota == nil {
			continue
		}

		used, err := l.LeaveRepository.SumDaysByStatus(ctx, caller.EmployeeID, code, year, []string{string(approval.StatusApproved)})
		if err != nil {
			return leave.BalanceResponse{}, fmt.Errorf("failed to sum approved days for %s: %w", code, err)
		}

		remaining := *policy.AnnualQuota - used
		if remaining < 0 {
			remaining = 0
		}
		resp.Entries = append(resp.Entries, leave.BalanceEntry{
			Type:      code,
			TypeName:  policy.Name,
			Quota:     policy.AnnualQuota,
			Used:      used,
			Remaining: &remaining,
		})
	}
	return resp, nil
}

// MyRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) MyRequests(ctx context.Context, filter leave.ListLeaveRequestsFilter) ([]leave.LeaveRequestResponse, error) {
	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return nil, err
	}
	filter.EmployeeID = &caller.EmployeeID

	requests, err := l.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// Pending implements leave.LeaveService.
func (l *LeaveServiceImpl) Pending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	caller, err := utils.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if caller.Role == user.RoleEmployee {
		return nil, user.ErrInsufficientPermissions
	}

	requests, err := l.LeaveRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	// Only requests whose tier the caller can satisfy.
	visible := make([]leave.LeaveRequest, 0, len(requests))
	for i := range requests {
		policy, ok := leave.Catalog[requests[i].TypeCode]
		if !ok {
			continue
		}
		if approval.Authorize(caller.Role, policy.RequiredTier) {
			visible = append(visible, requests[i])
		}
	}
	return toResponses(visible), nil
}

// Resolve implements leave.LeaveService.
func (l *LeaveServiceImpl) Resolve(ctx context.Context, req leave.ResolveLeaveRequest) (leave.LeaveRequestResponse, error) {
	caller, err := utils.CallerFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	policy, ok := leave.Catalog[request.TypeCode]
	if !ok {
		return leave.LeaveRequestResponse{}, leave.ErrUnknownLeaveType
	}
	if !approval.Authorize(caller.Role, policy.RequiredTier) {
		return leave.LeaveRequestResponse{}, user.ErrInsufficientPermissions
	}

	workflow := approval.Policy{RequiredTier: policy.RequiredTier, ReasonRequiredOnReject: true}
	if !req.Approve && workflow.ReasonRequiredOnReject && (req.Note == nil || *req.Note == "") {
		return leave.LeaveRequestResponse{}, leave.ErrRejectReasonRequired
	}

	now := l.now()
	request.Status = approval.StatusApproved
	if !req.Approve {
		request.Status = approval.StatusRejected
	}
	request.ResolvedBy = &caller.UserID
	request.ResolvedAt = &now
	request.ResolveNote = req.Note

	resolved, won, err := l.LeaveRepository.ResolveIfPending(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to resolve leave request: %w", err)
	}
	if !won {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	return resolved.ToResponse(), nil
}

// Withdraw implements leave.LeaveService.
func (l *LeaveServiceImpl) Withdraw(ctx context.Context, requestID string) error {
	caller, err := utils.CallerFromContext(ctx)
	if err != nil {
		return err
	}

	request, err := l.LeaveRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	// HR and admin may withdraw on any employee's behalf; everyone else
	// only their own requests.
	if caller.Role != user.RoleHR && caller.Role != user.RoleAdmin && request.EmployeeID != caller.EmployeeID {
		return leave.ErrNotRequestOwner
	}

	deleted, err := l.LeaveRepository.DeleteIfPending(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to withdraw leave request: %w", err)
	}
	if !deleted {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	return nil
}

// today is midnight UTC, matching how request dates are parsed.
func (l *LeaveServiceImpl) today() time.Time {
	now := l.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	out := make([]leave.LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, requests[i].ToResponse())
	}
	return out
}

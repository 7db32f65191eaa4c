package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haergo/haergo-backend-go/internal/domain/approval"
	"github.com/haergo/haergo-backend-go/internal/domain/overtime"
	"github.com/haergo/haergo-backend-go/internal/domain/user"
	"github.com/haergo/haergo-backend-go/internal/pkg/utils"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRepository
	now func() time.Time
}

func NewOvertimeService(overtimeRepository overtime.OvertimeRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		OvertimeRepository: overtimeRepository,
		now:                time.Now,
	}
}

// Submit implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) Submit(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.OvertimeRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	hours, err := utils.OvertimeHours(req.StartClock, req.EndClock)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to compute overtime duration: %w", err)
	}
	if hours <= 0 {
		return overtime.OvertimeRequestResponse{}, overtime.ErrZeroDuration
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := o.OvertimeRepository.Create(ctx, overtime.OvertimeRequest{
		ID:         uuid.NewString(),
		EmployeeID: caller.EmployeeID,
		Date:       date,
		StartClock: req.StartClock,
		EndClock:   req.EndClock,
		Hours:      hours,
		Reason:     req.Reason,
		Status:     approval.StatusPending,
	})
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return created.ToResponse(), nil
}

// MyRequests implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) MyRequests(ctx context.Context, filter overtime.ListOvertimeFilter) ([]overtime.OvertimeRequestResponse, error) {
	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return nil, err
	}
	filter.EmployeeID = &caller.EmployeeID

	requests, err := o.OvertimeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	return toResponses(requests), nil
}

// Pending implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) Pending(ctx context.Context) ([]overtime.OvertimeRequestResponse, error) {
	caller, err := utils.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !approval.Authorize(caller.Role, overtime.Policy.RequiredTier) {
		return nil, user.ErrInsufficientPermissions
	}

	requests, err := o.OvertimeRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending overtime requests: %w", err)
	}
	return toResponses(requests), nil
}

// Resolve implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) Resolve(ctx context.Context, req overtime.ResolveOvertimeRequest) (overtime.OvertimeRequestResponse, error) {
	caller, err := utils.CallerFromContext(ctx)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	if !approval.Authorize(caller.Role, overtime.Policy.RequiredTier) {
		return overtime.OvertimeRequestResponse{}, user.ErrInsufficientPermissions
	}

	request, err := o.OvertimeRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	now := o.now()
	request.Status = approval.StatusApproved
	if !req.Approve {
		request.Status = approval.StatusRejected
	}
	request.ResolvedBy = &caller.UserID
	request.ResolvedAt = &now
	request.ResolveNote = req.Note

	resolved, won, err := o.OvertimeRepository.ResolveIfPending(ctx, request)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to resolve overtime request: %w", err)
	}
	if !won {
		return overtime.OvertimeRequestResponse{}, overtime.ErrOvertimeRequestAlreadyProcessed
	}

	return resolved.ToResponse(), nil
}

func toResponses(requests []overtime.OvertimeRequest) []overtime.OvertimeRequestResponse {
	out := make([]overtime.OvertimeRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, requests[i].ToResponse())
	}
	return out
}

package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haergo/haergo-backend-go/internal/domain/employee"
	"github.com/haergo/haergo-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	shift.ShiftAssignmentRepository
	employee.EmployeeRepository
}

func NewShiftService(
	shiftRepository shift.ShiftRepository,
	assignmentRepository shift.ShiftAssignmentRepository,
	employeeRepository employee.EmployeeRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository:           shiftRepository,
		ShiftAssignmentRepository: assignmentRepository,
		EmployeeRepository:        employeeRepository,
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		ID:         uuid.NewString(),
		Name:       req.Name,
		StartClock: req.StartClock,
		EndClock:   req.EndClock,
		Color:      req.Color,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return created.ToResponse(), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	out := make([]shift.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, shifts[i].ToResponse())
	}
	return out, nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.ShiftRepository.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	existing.Name = req.Name
	existing.StartClock = req.StartClock
	existing.EndClock = req.EndClock
	existing.Color = req.Color

	updated, err := s.ShiftRepository.Update(ctx, existing)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return updated.ToResponse(), nil
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.ShiftRepository.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.ShiftAssignmentRepository.CountByShift(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count shift assignments: %w", err)
	}
	if count > 0 {
		return shift.ErrShiftInUse
	}

	return s.ShiftRepository.Delete(ctx, id)
}

// Assign implements shift.ShiftService.
func (s *ShiftServiceImpl) Assign(ctx context.Context, req shift.AssignShiftRequest) (shift.ShiftAssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftAssignmentResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.ShiftAssignmentResponse{}, err
	}
	if _, err := s.ShiftRepository.GetByID(ctx, req.ShiftID); err != nil {
		return shift.ShiftAssignmentResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.EffectiveFrom)
	assignment := shift.ShiftAssignment{
		ID:            uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		ShiftID:       req.ShiftID,
		EffectiveFrom: from,
	}
	if req.EffectiveTo != nil {
		to, _ := time.Parse("2006-01-02", *req.EffectiveTo)
		assignment.EffectiveTo = &to
	}

	replaced, err := s.ShiftAssignmentRepository.Replace(ctx, assignment)
	if err != nil {
		return shift.ShiftAssignmentResponse{}, fmt.Errorf("failed to assign shift: %w", err)
	}
	return replaced.ToResponse(), nil
}

// Assignments implements shift.ShiftService.
func (s *ShiftServiceImpl) Assignments(ctx context.Context, department *string) ([]shift.ShiftAssignmentResponse, error) {
	assignments, err := s.ShiftAssignmentRepository.List(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	out := make([]shift.ShiftAssignmentResponse, 0, len(assignments))
	for i := range assignments {
		out = append(out, assignments[i].ToResponse())
	}
	return out, nil
}

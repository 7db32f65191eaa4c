package shift

import (
	"context"
)

// ShiftService defines shift catalog management and assignment.
type ShiftService interface {
	Create(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)
	List(ctx context.Context) ([]ShiftResponse, error)
	Update(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error

	// Assign binds an employee to a shift, replacing any prior assignment.
	Assign(ctx context.Context, req AssignShiftRequest) (ShiftAssignmentResponse, error)

	// Assignments lists current assignments, optionally by department.
	Assignments(ctx context.Context, department *string) ([]ShiftAssignmentResponse, error)
}

package shift

import (
	"context"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, s Shift) (Shift, error)

	// Delete removes a shift. Returns ErrShiftInUse when assignments still
	// reference it.
	Delete(ctx context.Context, id string) error
}

type ShiftAssignmentRepository interface {
	// Replace retires any existing assignment for the employee and inserts
	// the new one as a single transaction.
	Replace(ctx context.Context, a ShiftAssignment) (ShiftAssignment, error)

	GetByEmployee(ctx context.Context, employeeID string) (ShiftAssignment, error)

	// List retrieves assignments, optionally narrowed to one department,
	// joined with employee and shift display names.
	List(ctx context.Context, department *string) ([]ShiftAssignment, error)

	// CountByShift reports how many assignments reference a shift.
	CountByShift(ctx context.Context, shiftID string) (int, error)
}

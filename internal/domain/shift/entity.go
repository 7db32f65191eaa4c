package shift

import "time"

type Shift struct {
	ID         string
	Name       string
	StartClock string // HH:MM
	EndClock   string // HH:MM
	Color      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ShiftAssignment binds an employee to a shift. At most one assignment
// exists per employee; assigning again replaces the previous one.
type ShiftAssignment struct {
	ID            string
	EmployeeID    string
	ShiftID       string
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	CreatedAt     time.Time

	// DTO / Join
	EmployeeName *string
	ShiftName    *string
	Department   *string
}

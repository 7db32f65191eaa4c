package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/haergo/haergo-backend-go/internal/domain/shift"
	"github.com/haergo/haergo-backend-go/internal/pkg/database"
)

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.ShiftAssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}

const assignmentColumns = `sa.id, sa.employee_id, sa.shift_id, sa.effective_from, sa.effective_to, sa.created_at`

// Replace implements shift.ShiftAssignmentRepository.
// Delete-then-insert runs in one transaction so an employee never holds
// two assignments, even with concurrent assigns.
func (r *shiftAssignmentRepositoryImpl) Replace(ctx context.Context, a shift.ShiftAssignment) (shift.ShiftAssignment, error) {
	var created shift.ShiftAssignment
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM shift_assignments WHERE employee_id = $1`, a.EmployeeID); err != nil {
			return fmt.Errorf("retire prior assignment: %w", err)
		}

		query := `
			INSERT INTO shift_assignments AS sa (id, employee_id, shift_id, effective_from, effective_to)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING ` + assignmentColumns + `
		`
		err := tx.QueryRow(ctx, query, a.ID, a.EmployeeID, a.ShiftID, a.EffectiveFrom, a.EffectiveTo).Scan(
			&created.ID, &created.EmployeeID, &created.ShiftID, &created.EffectiveFrom, &created.EffectiveTo, &created.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.ShiftAssignment{}, err
	}
	return created, nil
}

// GetByEmployee implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM shift_assignments sa WHERE sa.employee_id = $1`

	var a shift.ShiftAssignment
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&a.ID, &a.EmployeeID, &a.ShiftID, &a.EffectiveFrom, &a.EffectiveTo, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftAssignment{}, shift.ErrAssignmentNotFound
		}
		return shift.ShiftAssignment{}, fmt.Errorf("get assignment by employee: %w", err)
	}
	return a, nil
}

// List implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) List(ctx context.Context, department *string) ([]shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `, e.full_name, e.department, s.name
		FROM shift_assignments sa
		INNER JOIN employees e ON sa.employee_id = e.id
		INNER JOIN shifts s ON sa.shift_id = s.id
	`
	args := []interface{}{}
	if department != nil {
		query += ` WHERE e.department = $1`
		args = append(args, *department)
	}
	query += ` ORDER BY e.full_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.ShiftAssignment
	for rows.Next() {
		var a shift.ShiftAssignment
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.ShiftID, &a.EffectiveFrom, &a.EffectiveTo, &a.CreatedAt,
			&a.EmployeeName, &a.Department, &a.ShiftName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// CountByShift implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) CountByShift(ctx context.Context, shiftID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM shift_assignments WHERE shift_id = $1`, shiftID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count assignments by shift: %w", err)
	}
	return count, nil
}

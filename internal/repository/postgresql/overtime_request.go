package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/haergo/haergo-backend-go/internal/domain/overtime"
	"github.com/haergo/haergo-backend-go/internal/pkg/database"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `o.id, o.employee_id, o.date, o.start_clock, o.end_clock, o.hours,
	o.reason, o.status, o.resolved_by, o.resolved_at, o.resolve_note, o.created_at, o.updated_at`

func scanOvertimeRequest(row pgx.Row) (overtime.OvertimeRequest, error) {
	var o overtime.OvertimeRequest
	err := row.Scan(
		&o.ID, &o.EmployeeID, &o.Date, &o.StartClock, &o.EndClock, &o.Hours,
		&o.Reason, &o.Status, &o.ResolvedBy, &o.ResolvedAt, &o.ResolveNote, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) Create(ctx context.Context, o overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests AS o (id, employee_id, date, start_clock, end_clock, hours, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + overtimeColumns + `
	`

	created, err := scanOvertimeRequest(q.QueryRow(ctx, query,
		o.ID, o.EmployeeID, o.Date, o.StartClock, o.EndClock, o.Hours, o.Reason, o.Status,
	))
	if err != nil {
		return overtime.OvertimeRequest{}, fmt.Errorf("insert overtime request: %w", err)
	}
	return created, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests o WHERE o.id = $1`
	o, err := scanOvertimeRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
		}
		return overtime.OvertimeRequest{}, fmt.Errorf("get overtime request by id: %w", err)
	}
	return o, nil
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) List(ctx context.Context, filter overtime.ListOvertimeFilter) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests o WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND o.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND o.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND to_char(o.date, 'YYYY-MM') = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		o, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan overtime request: %w", err)
		}
		requests = append(requests, o)
	}
	return requests, rows.Err()
}

// ListPending implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListPending(ctx context.Context) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `, e.full_name
		FROM overtime_requests o
		INNER JOIN employees e ON o.employee_id = e.id
		WHERE o.status = 'pending'
		ORDER BY o.created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		var o overtime.OvertimeRequest
		err := rows.Scan(
			&o.ID, &o.EmployeeID, &o.Date, &o.StartClock, &o.EndClock, &o.Hours,
			&o.Reason, &o.Status, &o.ResolvedBy, &o.ResolvedAt, &o.ResolveNote, &o.CreatedAt, &o.UpdatedAt,
			&o.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan pending overtime request: %w", err)
		}
		requests = append(requests, o)
	}
	return requests, rows.Err()
}

// ResolveIfPending implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ResolveIfPending(ctx context.Context, o overtime.OvertimeRequest) (overtime.OvertimeRequest, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests
		SET status = $2, resolved_by = $3, resolved_at = $4, resolve_note = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, o.ID, o.Status, o.ResolvedBy, o.ResolvedAt, o.ResolveNote)
	if err != nil {
		return overtime.OvertimeRequest{}, false, fmt.Errorf("resolve overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.OvertimeRequest{}, false, nil
	}

	resolved, err := r.GetByID(ctx, o.ID)
	if err != nil {
		return overtime.OvertimeRequest{}, false, err
	}
	return resolved, true, nil
}

// ListApprovedInRange implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeID string, startDate, endDate string) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		WHERE o.employee_id = $1 AND o.status = 'approved'
		  AND o.date >= $2 AND o.date <= $3
		ORDER BY o.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list approved overtime in range: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		o, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan approved overtime: %w", err)
		}
		requests = append(requests, o)
	}
	return requests, rows.Err()
}

// ListAllApprovedInRange implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListAllApprovedInRange(ctx context.Context, startDate, endDate string) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `, e.full_name
		FROM overtime_requests o
		INNER JOIN employees e ON o.employee_id = e.id
		WHERE o.status = 'approved'
		  AND o.date >= $1 AND o.date <= $2
		ORDER BY o.date ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list all approved overtime in range: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		var o overtime.OvertimeRequest
		err := rows.Scan(
			&o.ID, &o.EmployeeID, &o.Date, &o.StartClock, &o.EndClock, &o.Hours,
			&o.Reason, &o.Status, &o.ResolvedBy, &o.ResolvedAt, &o.ResolveNote, &o.CreatedAt, &o.UpdatedAt,
			&o.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan approved overtime: %w", err)
		}
		requests = append(requests, o)
	}
	return requests, rows.Err()
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/haergo/haergo-backend-go/internal/domain/approval"
	"github.com/haergo/haergo-backend-go/internal/domain/leave"
	"github.com/haergo/haergo-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `lr.id, lr.employee_id, lr.type_code, lr.start_date, lr.end_date, lr.working_days,
	lr.reason, lr.attachment_url, lr.status, lr.resolved_by, lr.resolved_at, lr.resolve_note,
	lr.created_at, lr.updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.TypeCode, &lr.StartDate, &lr.EndDate, &lr.WorkingDays,
		&lr.Reason, &lr.AttachmentURL, &lr.Status, &lr.ResolvedBy, &lr.ResolvedAt, &lr.ResolveNote,
		&lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

// CreateReserving implements leave.LeaveRepository.
// For quota-deducting types the balance check and the insert run inside
// one transaction holding an advisory lock on (employee, type, year), so
// two concurrent submissions against the same balance serialize and the
// second one sees the first one's pending days.
func (r *leaveRepositoryImpl) CreateReserving(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	policy, ok := leave.Catalog[lr.TypeCode]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrUnknownLeaveType
	}

	var created leave.LeaveRequest
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)

		if policy.DeductsBalance && policy.AnnualQuota != nil {
			lockKey := fmt.Sprintf("%s:%s:%d", lr.EmployeeID, lr.TypeCode, lr.StartDate.Year())
			if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
				return fmt.Errorf("acquire leave balance lock: %w", err)
			}

			// Pending and approved both reserve balance.
			reserved, err := r.sumDaysByStatus(txCtx, lr.EmployeeID, lr.TypeCode, lr.StartDate.Year(),
				[]string{string(approval.StatusPending), string(approval.StatusApproved)})
			if err != nil {
				return err
			}
			if reserved+lr.WorkingDays > *policy.AnnualQuota {
				return fmt.Errorf("%w: %d of %d days already reserved", leave.ErrInsufficientBalance, reserved, *policy.AnnualQuota)
			}
		}

		query := `
			INSERT INTO leave_requests AS lr (id, employee_id, type_code, start_date, end_date, working_days, reason, attachment_url, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING ` + leaveColumns + `
		`

		var err error
		created, err = scanLeaveRequest(tx.QueryRow(ctx, query,
			lr.ID, lr.EmployeeID, lr.TypeCode, lr.StartDate, lr.EndDate, lr.WorkingDays,
			lr.Reason, lr.AttachmentURL, lr.Status,
		))
		if err != nil {
			return fmt.Errorf("insert leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests lr WHERE lr.id = $1`
	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("get leave request by id: %w", err)
	}
	return lr, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.ListLeaveRequestsFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests lr WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND lr.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND lr.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM lr.start_date) = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}
	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// ListPending implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.status = 'pending'
		ORDER BY lr.created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.TypeCode, &lr.StartDate, &lr.EndDate, &lr.WorkingDays,
			&lr.Reason, &lr.AttachmentURL, &lr.Status, &lr.ResolvedBy, &lr.ResolvedAt, &lr.ResolveNote,
			&lr.CreatedAt, &lr.UpdatedAt, &lr.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan pending leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// ResolveIfPending implements leave.LeaveRepository.
// The status = 'pending' guard makes racing approvers resolve to exactly
// one winner.
func (r *leaveRepositoryImpl) ResolveIfPending(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, resolved_by = $3, resolved_at = $4, resolve_note = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, lr.ID, lr.Status, lr.ResolvedBy, lr.ResolvedAt, lr.ResolveNote)
	if err != nil {
		return leave.LeaveRequest{}, false, fmt.Errorf("resolve leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.LeaveRequest{}, false, nil
	}

	resolved, err := r.GetByID(ctx, lr.ID)
	if err != nil {
		return leave.LeaveRequest{}, false, err
	}
	return resolved, true, nil
}

// DeleteIfPending implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) DeleteIfPending(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1 AND status = 'pending'`, id)
	if err != nil {
		return false, fmt.Errorf("delete leave request: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SumDaysByStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) SumDaysByStatus(ctx context.Context, employeeID, typeCode string, year int, statuses []string) (int, error) {
	return r.sumDaysByStatus(ctx, employeeID, typeCode, year, statuses)
}

func (r *leaveRepositoryImpl) sumDaysByStatus(ctx context.Context, employeeID, typeCode string, year int, statuses []string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(working_days), 0)
		FROM leave_requests
		WHERE employee_id = $1 AND type_code = $2
		  AND EXTRACT(YEAR FROM start_date) = $3
		  AND status = ANY($4)
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, typeCode, year, statuses).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum leave days: %w", err)
	}
	return total, nil
}

// ListApprovedInRange implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeID string, startDate, endDate string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1 AND lr.status = 'approved'
		  AND lr.start_date <= $3 AND lr.end_date >= $2
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list approved leave in range: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan approved leave: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// ListAllApprovedInRange implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListAllApprovedInRange(ctx context.Context, startDate, endDate string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.status = 'approved'
		  AND lr.start_date <= $2 AND lr.end_date >= $1
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list all approved leave in range: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.TypeCode, &lr.StartDate, &lr.EndDate, &lr.WorkingDays,
			&lr.Reason, &lr.AttachmentURL, &lr.Status, &lr.ResolvedBy, &lr.ResolvedAt, &lr.ResolveNote,
			&lr.CreatedAt, &lr.UpdatedAt, &lr.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan approved leave: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

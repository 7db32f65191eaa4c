package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/haergo/haergo-backend-go/internal/domain/attendance"
	"github.com/haergo/haergo-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.mode, a.status, a.clock_in, a.clock_out,
	a.clock_in_latitude, a.clock_in_longitude, a.clock_out_latitude, a.clock_out_longitude,
	a.clock_in_photo_url, a.clock_out_photo_url, a.office_id, a.client_address,
	a.work_hours, a.late_minutes, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Mode, &a.Status, &a.ClockIn, &a.ClockOut,
		&a.ClockInLatitude, &a.ClockInLongitude, &a.ClockOutLatitude, &a.ClockOutLongitude,
		&a.ClockInPhotoURL, &a.ClockOutPhotoURL, &a.OfficeID, &a.ClientAddress,
		&a.WorkHours, &a.LateMinutes, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// CreateIfAbsent implements attendance.AttendanceRepository.
// The unique index on (employee_id, date) plus ON CONFLICT DO NOTHING
// guarantees exactly one record per employee per day even under
// concurrent clock-ins.
func (r *attendanceRepositoryImpl) CreateIfAbsent(ctx context.Context, a attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, mode, status, clock_in,
			clock_in_latitude, clock_in_longitude, clock_in_photo_url,
			office_id, client_address, late_minutes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query,
		a.ID, a.EmployeeID, a.Date, a.Mode, a.Status, a.ClockIn,
		a.ClockInLatitude, a.ClockInLongitude, a.ClockInPhotoURL,
		a.OfficeID, a.ClientAddress, a.LateMinutes,
	)
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("insert attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.Attendance{}, false, nil
	}

	created, err := r.GetByEmployeeAndDate(ctx, a.EmployeeID, a.Date)
	if err != nil {
		return attendance.Attendance{}, false, err
	}
	return created, true, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1 AND a.date = $2
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("get attendance by employee and date: %w", err)
	}
	return a, nil
}

// CloseOpenSession implements attendance.AttendanceRepository.
// The clock_out IS NULL guard makes concurrent clock-outs resolve to one
// winner; the loser sees zero affected rows.
func (r *attendanceRepositoryImpl) CloseOpenSession(ctx context.Context, employeeID string, date time.Time, a attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_out = $3, clock_out_latitude = $4, clock_out_longitude = $5,
			clock_out_photo_url = $6, work_hours = $7, updated_at = NOW()
		WHERE employee_id = $1 AND date = $2 AND clock_out IS NULL
	`

	tag, err := q.Exec(ctx, query,
		employeeID, date, a.ClockOut, a.ClockOutLatitude, a.ClockOutLongitude,
		a.ClockOutPhotoURL, a.WorkHours,
	)
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("close attendance session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.Attendance{}, false, nil
	}

	closed, err := r.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.Attendance{}, false, err
	}
	return closed, true, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE a.employee_id = $1`
	args := []interface{}{filter.EmployeeID}
	argPos := 2

	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendance_records a
		%s
		ORDER BY a.date DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list attendance history: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM attendance_records a ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args[:argPos-1]...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count attendance history: %w", err)
	}

	return records, total, nil
}

// ListByEmployees implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployees(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.Attendance, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.full_name, e.position
		FROM attendance_records a
		INNER JOIN employees e ON a.employee_id = e.id
		WHERE a.employee_id = ANY($1) AND a.date >= $2 AND a.date <= $3
		ORDER BY e.full_name ASC, a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("list team attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.Mode, &a.Status, &a.ClockIn, &a.ClockOut,
			&a.ClockInLatitude, &a.ClockInLongitude, &a.ClockOutLatitude, &a.ClockOutLongitude,
			&a.ClockInPhotoURL, &a.ClockOutPhotoURL, &a.OfficeID, &a.ClientAddress,
			&a.WorkHours, &a.LateMinutes, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName, &a.EmployeePosition,
		)
		if err != nil {
			return nil, fmt.Errorf("scan team attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

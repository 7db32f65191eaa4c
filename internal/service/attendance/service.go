package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haergo/haergo-backend-go/internal/config"
	"github.com/haergo/haergo-backend-go/internal/domain/attendance"
	"github.com/haergo/haergo-backend-go/internal/domain/employee"
	"github.com/haergo/haergo-backend-go/internal/domain/leave"
	"github.com/haergo/haergo-backend-go/internal/domain/user"
	"github.com/haergo/haergo-backend-go/internal/pkg/utils"
	"github.com/haergo/haergo-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveRepository
	workHours config.WorkHoursConfig
	offices   []config.OfficeLocation
	now       func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	leaveRepository leave.LeaveRepository,
	workHours config.WorkHoursConfig,
	offices []config.OfficeLocation,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		LeaveRepository:      leaveRepository,
		workHours:            workHours,
		offices:              offices,
		now:                  time.Now,
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !utils.IsValidCoordinate(req.Latitude, req.Longitude) {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidCoordinates
	}

	now := a.now()
	record := attendance.Attendance{
		ID:               uuid.NewString(),
		EmployeeID:       caller.EmployeeID,
		Date:             truncateToDay(now),
		Mode:             attendance.Mode(req.Mode),
		Status:           attendance.StatusPresent,
		ClockIn:          &now,
		ClockInLatitude:  &req.Latitude,
		ClockInLongitude: &req.Longitude,
		ClockInPhotoURL:  req.PhotoURL,
		ClientAddress:    req.ClientAddress,
	}

	// Office mode requires being inside one of the configured zones.
	if record.Mode == attendance.ModeOffice {
		result := utils.EvaluateGeofence(req.Latitude, req.Longitude, a.zones())
		if !result.Inside {
			return attendance.AttendanceResponse{}, fmt.Errorf("%w: %.0fm from the nearest office", attendance.ErrOutsideOfficeRadius, result.Distance)
		}
		officeID := a.officeIDByName(result.ZoneName)
		record.OfficeID = &officeID
	}

	late, lateMinutes, err := a.lateness(now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if late {
		record.Status = attendance.StatusLate
		record.LateMinutes = &lateMinutes
	}

	created, inserted, err := a.AttendanceRepository.CreateIfAbsent(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	if !inserted {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	return created.ToResponse(), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !utils.IsValidCoordinate(req.Latitude, req.Longitude) {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidCoordinates
	}

	now := a.now()
	today := truncateToDay(now)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}
	if record.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	hours := utils.RoundHours(now.Sub(*record.ClockIn))
	if hours < 0 {
		hours = 0
	}

	record.ClockOut = &now
	record.ClockOutLatitude = &req.Latitude
	record.ClockOutLongitude = &req.Longitude
	record.ClockOutPhotoURL = req.PhotoURL
	record.WorkHours = &hours

	closed, updated, err := a.AttendanceRepository.CloseOpenSession(ctx, caller.EmployeeID, today, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance session: %w", err)
	}
	if !updated {
		// A concurrent clock-out won the race.
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	return closed.ToResponse(), nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (attendance.AttendanceResponse, error) {
	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, truncateToDay(a.now()))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	return record.ToResponse(), nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	filter.EmployeeID = caller.EmployeeID
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 31
	}

	records, total, err := a.AttendanceRepository.ListByEmployee(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Records: make([]attendance.AttendanceResponse, 0, len(records)),
		Total:   total,
	}
	for i := range records {
		resp.Records = append(resp.Records, records[i].ToResponse())
	}
	return resp, nil
}

// Stats implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Stats(ctx context.Context, month string) (attendance.StatsResponse, error) {
	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	monthStart, ok := validator.IsValidMonth(month)
	if !ok {
		return attendance.StatsResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	records, err := a.AttendanceRepository.ListByEmployeeAndRange(ctx, caller.EmployeeID, monthStart, monthEnd)
	if err != nil {
		return attendance.StatsResponse{}, fmt.Errorf("failed to list attendance for stats: %w", err)
	}

	approvedLeave, err := a.LeaveRepository.ListApprovedInRange(ctx, caller.EmployeeID, monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02"))
	if err != nil {
		return attendance.StatsResponse{}, fmt.Errorf("failed to list approved leave for stats: %w", err)
	}

	stats := attendance.StatsResponse{
		Month:       month,
		WorkingDays: utils.WorkingDaysInMonth(monthStart.Year(), monthStart.Month()),
	}

	attended := make(map[string]bool, len(records))
	for i := range records {
		r := &records[i]
		attended[r.Date.Format("2006-01-02")] = true
		switch r.Status {
		case attendance.StatusLate:
			stats.LateDays++
		default:
			stats.PresentDays++
		}
		if r.WorkHours != nil {
			stats.TotalWorkHours += *r.WorkHours
		}
	}
	stats.TotalWorkHours = utils.RoundHoursValue(stats.TotalWorkHours)

	// Approved leave covers working days not otherwise attended.
	for i := range approvedLeave {
		lr := &approvedLeave[i]
		for d := lr.StartDate; !d.After(lr.EndDate); d = d.AddDate(0, 0, 1) {
			if d.Before(monthStart) || d.After(monthEnd) {
				continue
			}
			if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
				continue
			}
			if !attended[d.Format("2006-01-02")] {
				stats.ExcusedDays++
			}
		}
	}

	// Absent counts only elapsed working days in the queried month.
	today := truncateToDay(a.now())
	elapsed := 0
	for d := monthStart; !d.After(monthEnd) && !d.After(today); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			elapsed++
		}
	}
	stats.AbsentDays = elapsed - stats.PresentDays - stats.LateDays - stats.ExcusedDays
	if stats.AbsentDays < 0 {
		stats.AbsentDays = 0
	}

	if stats.WorkingDays > 0 {
		rate := float64(stats.PresentDays+stats.LateDays+stats.ExcusedDays) / float64(stats.WorkingDays) * 100
		stats.AttendanceRate = utils.RoundPercent(rate)
	}

	return stats, nil
}

// Team implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Team(ctx context.Context, date string) (attendance.ListAttendanceResponse, error) {
	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if caller.Role == user.RoleEmployee {
		return attendance.ListAttendanceResponse{}, attendance.ErrUnauthorized
	}

	day := truncateToDay(a.now())
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return attendance.ListAttendanceResponse{}, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
		day = parsed
	}

	me, err := a.EmployeeRepository.GetByID(ctx, caller.EmployeeID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var ids []string
	if me.Department != nil && caller.Role == user.RoleManager {
		// Managers see their own department; hr and admin see everyone.
		ids, err = a.EmployeeRepository.ListIDsByDepartment(ctx, *me.Department)
	} else {
		var all []employee.Employee
		all, err = a.EmployeeRepository.List(ctx, employee.ListEmployeesFilter{})
		for i := range all {
			ids = append(ids, all[i].ID)
		}
	}
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to resolve team members: %w", err)
	}

	records, err := a.AttendanceRepository.ListByEmployees(ctx, ids, day, day)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list team attendance: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Records: make([]attendance.AttendanceResponse, 0, len(records)),
		Total:   int64(len(records)),
	}
	for i := range records {
		resp.Records = append(resp.Records, records[i].ToResponse())
	}
	return resp, nil
}

// Settings implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Settings(ctx context.Context) (attendance.SettingsResponse, error) {
	resp := attendance.SettingsResponse{
		WorkStart:        a.workHours.Start,
		WorkEnd:          a.workHours.End,
		ToleranceMinutes: a.workHours.ToleranceMinutes,
		Offices:          make([]attendance.OfficeResponse, 0, len(a.offices)),
	}
	for _, o := range a.offices {
		resp.Offices = append(resp.Offices, attendance.OfficeResponse{
			ID:        o.ID,
			Name:      o.Name,
			Latitude:  o.Latitude,
			Longitude: o.Longitude,
			Radius:    o.Radius,
			IsDefault: o.IsDefault,
		})
	}
	return resp, nil
}

func (a *AttendanceServiceImpl) zones() []utils.GeofenceZone {
	zones := make([]utils.GeofenceZone, 0, len(a.offices))
	for _, o := range a.offices {
		zones = append(zones, utils.GeofenceZone{
			Name:      o.Name,
			Latitude:  o.Latitude,
			Longitude: o.Longitude,
			Radius:    o.Radius,
		})
	}
	return zones
}

func (a *AttendanceServiceImpl) officeIDByName(name string) string {
	for _, o := range a.offices {
		if o.Name == name {
			return o.ID
		}
	}
	return ""
}

func (a *AttendanceServiceImpl) lateness(clockIn time.Time) (bool, int, error) {
	late, err := utils.IsLate(clockIn, a.workHours.Start, a.workHours.ToleranceMinutes)
	if err != nil {
		return false, 0, fmt.Errorf("failed to evaluate lateness: %w", err)
	}
	if !late {
		return false, 0, nil
	}

	startHour, startMinute, _ := utils.ParseClock(a.workHours.Start)
	workStart := time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(), startHour, startMinute, 0, 0, clockIn.Location())
	minutes := int(clockIn.Sub(workStart).Minutes())
	return true, minutes, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

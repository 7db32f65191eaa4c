package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn opens today's attendance record for the authenticated
	// employee, enforcing geofence and mode rules.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's open record and computes worked hours.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// Today retrieves the authenticated employee's record for today,
	// or ErrAttendanceNotFound when they have not clocked in.
	Today(ctx context.Context) (AttendanceResponse, error)

	// History retrieves the authenticated employee's attendance history.
	History(ctx context.Context, filter HistoryFilter) (ListAttendanceResponse, error)

	// Stats summarizes the authenticated employee's month (YYYY-MM).
	Stats(ctx context.Context, month string) (StatsResponse, error)

	// Team retrieves today's records for the caller's department
	// (manager and above).
	Team(ctx context.Context, date string) (ListAttendanceResponse, error)

	// Settings exposes the active work-hour policy and office zones.
	Settings(ctx context.Context) (SettingsResponse, error)
}

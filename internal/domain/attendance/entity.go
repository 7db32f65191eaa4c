package attendance

import (
	"time"
)

// Mode describes where the employee works from for the day.
type Mode string

const (
	ModeOffice      Mode = "office"
	ModeRemote      Mode = "remote"
	ModeClientVisit Mode = "client_visit"
)

// Status of a day's attendance record.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusExcused Status = "excused" // covered by an approved leave
)

type Attendance struct {
	ID                string
	EmployeeID        string
	Date              time.Time // midnight, employee-local calendar day
	Mode              Mode
	Status            Status
	ClockIn           *time.Time
	ClockOut          *time.Time
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	ClockInPhotoURL   *string
	ClockOutPhotoURL  *string
	OfficeID          *string
	ClientAddress     *string
	WorkHours         *float64
	LateMinutes       *int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO / Join
	EmployeeName     *string
	EmployeePosition *string
}

package attendance

import (
	"github.com/haergo/haergo-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID    string  `json:"-"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Mode          string  `json:"mode"`
	PhotoURL      *string `json:"photo_url,omitempty"`
	ClientAddress *string `json:"client_address,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if validator.IsEmpty(r.Mode) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode is required",
		})
	} else {
		validModes := []string{string(ModeOffice), string(ModeRemote), string(ModeClientVisit)}
		if !validator.IsInSlice(r.Mode, validModes) {
			errs = append(errs, validator.ValidationError{
				Field:   "mode",
				Message: "mode must be one of office, remote, client_visit",
			})
		}
	}

	if r.Mode == string(ModeClientVisit) && (r.ClientAddress == nil || validator.IsEmpty(*r.ClientAddress)) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_address",
			Message: "client_address is required for client visits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EmployeeID string  `json:"-"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	PhotoURL   *string `json:"photo_url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     *string  `json:"employee_name,omitempty"`
	EmployeePosition *string  `json:"employee_position,omitempty"`
	Date             string   `json:"date"`
	Mode             string   `json:"mode"`
	Status           string   `json:"status"`
	ClockIn          *string  `json:"clock_in,omitempty"`
	ClockOut         *string  `json:"clock_out,omitempty"`
	OfficeID         *string  `json:"office_id,omitempty"`
	ClientAddress    *string  `json:"client_address,omitempty"`
	WorkHours        *float64 `json:"work_hours,omitempty"`
	LateMinutes      *int     `json:"late_minutes,omitempty"`
}

// HistoryFilter narrows attendance history queries.
type HistoryFilter struct {
	EmployeeID string
	StartDate  *string // YYYY-MM-DD
	EndDate    *string
	Limit      int
	Offset     int
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Total   int64                `json:"total"`
}

// StatsResponse summarizes one employee's month.
type StatsResponse struct {
	Month          string  `json:"month"`
	WorkingDays    int     `json:"working_days"`
	PresentDays    int     `json:"present_days"`
	LateDays       int     `json:"late_days"`
	ExcusedDays    int     `json:"excused_days"`
	AbsentDays     int     `json:"absent_days"`
	TotalWorkHours float64 `json:"total_work_hours"`
	AttendanceRate float64 `json:"attendance_rate"` // percentage, one decimal
}

// SettingsResponse exposes the active work-hour policy and office zones.
type SettingsResponse struct {
	WorkStart        string           `json:"work_start"`
	WorkEnd          string           `json:"work_end"`
	ToleranceMinutes int              `json:"tolerance_minutes"`
	Offices          []OfficeResponse `json:"offices"`
}

type OfficeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
	IsDefault bool    `json:"is_default"`
}

func (a *Attendance) ToResponse() AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID,
		EmployeeID:       a.EmployeeID,
		EmployeeName:     a.EmployeeName,
		EmployeePosition: a.EmployeePosition,
		Date:             a.Date.Format("2006-01-02"),
		Mode:             string(a.Mode),
		Status:           string(a.Status),
		OfficeID:         a.OfficeID,
		ClientAddress:    a.ClientAddress,
		WorkHours:        a.WorkHours,
		LateMinutes:      a.LateMinutes,
	}
	if a.ClockIn != nil {
		s := a.ClockIn.Format("2006-01-02T15:04:05Z07:00")
		resp.ClockIn = &s
	}
	if a.ClockOut != nil {
		s := a.ClockOut.Format("2006-01-02T15:04:05Z07:00")
		resp.ClockOut = &s
	}
	return resp
}

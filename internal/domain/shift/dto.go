package shift

import (
	"github.com/haergo/haergo-backend-go/internal/pkg/validator"
)

type UpsertShiftRequest struct {
	ID         string `json:"-"`
	Name       string `json:"name"`
	StartClock string `json:"start_time"`
	EndClock   string `json:"end_time"`
	Color      string `json:"color"`
}

func (r *UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if !validator.IsValidClock(r.StartClock) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidClock(r.EndClock) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignShiftRequest struct {
	EmployeeID    string  `json:"employee_id"`
	ShiftID       string  `json:"shift_id"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.EffectiveFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be in YYYY-MM-DD format",
		})
	}
	if r.EffectiveTo != nil {
		to, toOK := validator.IsValidDate(*r.EffectiveTo)
		if !toOK {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must be in YYYY-MM-DD format",
			})
		} else if fromOK && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must not be before effective_from",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`
}

func (s *Shift) ToResponse() ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartClock,
		EndTime:   s.EndClock,
		Color:     s.Color,
	}
}

type ShiftAssignmentResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Department    *string `json:"department,omitempty"`
	ShiftID       string  `json:"shift_id"`
	ShiftName     *string `json:"shift_name,omitempty"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
}

func (a *ShiftAssignment) ToResponse() ShiftAssignmentResponse {
	resp := ShiftAssignmentResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		Department:    a.Department,
		ShiftID:       a.ShiftID,
		ShiftName:     a.ShiftName,
		EffectiveFrom: a.EffectiveFrom.Format("2006-01-02"),
	}
	if a.EffectiveTo != nil {
		s := a.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &s
	}
	return resp
}

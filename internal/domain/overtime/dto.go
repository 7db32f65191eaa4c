package overtime

import (
	"github.com/haergo/haergo-backend-go/internal/pkg/validator"
)

type SubmitOvertimeRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"date"`
	StartClock string `json:"start_time"`
	EndClock   string `json:"end_time"`
	Reason     string `json:"reason"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
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

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResolveOvertimeRequest struct {
	RequestID string  `json:"-"`
	Approve   bool    `json:"approve"`
	Note      *string `json:"note,omitempty"`
}

type OvertimeRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Hours        float64 `json:"hours"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ResolvedBy   *string `json:"resolved_by,omitempty"`
	ResolvedAt   *string `json:"resolved_at,omitempty"`
	ResolveNote  *string `json:"resolve_note,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func (o *OvertimeRequest) ToResponse() OvertimeRequestResponse {
	resp := OvertimeRequestResponse{
		ID:           o.ID,
		EmployeeID:   o.EmployeeID,
		EmployeeName: o.EmployeeName,
		Date:         o.Date.Format("2006-01-02"),
		StartTime:    o.StartClock,
		EndTime:      o.EndClock,
		Hours:        o.Hours,
		Reason:       o.Reason,
		Status:       string(o.Status),
		ResolvedBy:   o.ResolvedBy,
		ResolveNote:  o.ResolveNote,
		CreatedAt:    o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if o.ResolvedAt != nil {
		s := o.ResolvedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ResolvedAt = &s
	}
	return resp
}

// ListOvertimeFilter narrows overtime request listings.
type ListOvertimeFilter struct {
	EmployeeID *string
	Status     *string
	Month      *string // YYYY-MM
}

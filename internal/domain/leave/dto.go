package leave

import (
	"github.com/haergo/haergo-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID    string  `json:"-"`
	TypeCode      string  `json:"type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TypeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if startOK && endOK && start.Year() != end.Year() {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "leave ranges may not cross a year boundary",
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

type ResolveLeaveRequest struct {
	RequestID string  `json:"-"`
	Approve   bool    `json:"approve"`
	Note      *string `json:"note,omitempty"`
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Type            string  `json:"type"`
	TypeName        string  `json:"type_name"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	WorkingDays     int     `json:"working_days"`
	Reason          string  `json:"reason"`
	AttachmentURL   *string `json:"attachment_url,omitempty"`
	NeedsAttachment bool    `json:"needs_attachment"`
	Status          string  `json:"status"`
	ResolvedBy      *string `json:"resolved_by,omitempty"`
	ResolvedAt      *string `json:"resolved_at,omitempty"`
	ResolveNote     *string `json:"resolve_note,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func (lr *LeaveRequest) ToResponse() LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:            lr.ID,
		EmployeeID:    lr.EmployeeID,
		EmployeeName:  lr.EmployeeName,
		Type:          lr.TypeCode,
		StartDate:     lr.StartDate.Format("2006-01-02"),
		EndDate:       lr.EndDate.Format("2006-01-02"),
		WorkingDays:   lr.WorkingDays,
		Reason:        lr.Reason,
		AttachmentURL: lr.AttachmentURL,
		Status:        string(lr.Status),
		ResolvedBy:    lr.ResolvedBy,
		ResolveNote:   lr.ResolveNote,
		CreatedAt:     lr.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if lt, ok := Catalog[lr.TypeCode]; ok {
		resp.TypeName = lt.Name
		resp.NeedsAttachment = lt.NeedsAttachment && lr.AttachmentURL == nil
	}
	if lr.ResolvedAt != nil {
		s := lr.ResolvedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ResolvedAt = &s
	}
	return resp
}

// BalanceEntry reports one leave type's annual consumption for an employee.
// Used only reflects approved requests.
type BalanceEntry struct {
	Type      string `json:"type"`
	TypeName  string `json:"type_name"`
	Quota     *int   `json:"quota"` // nil means unlimited
	Used      int    `json:"used"`
	Remaining *int   `json:"remaining"` // nil means unlimited
}

type BalanceResponse struct {
	Year    int            `json:"year"`
	Entries []BalanceEntry `json:"entries"`
}

// ListLeaveRequestsFilter narrows leave request listings.
type ListLeaveRequestsFilter struct {
	EmployeeID *string
	Status     *string
	Year       *int
}

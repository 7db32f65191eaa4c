// Package calendar merges approved leave and overtime into a single
// chronological event feed. Read-only, recomputed per query.
package calendar

import (
	"context"

	"github.com/haergo/haergo-backend-go/internal/pkg/validator"
)

type EventKind string

const (
	KindLeave    EventKind = "leave"
	KindOvertime EventKind = "overtime"
)

// Presentation colors per event kind.
const (
	ColorLeave    = "#F59E0B"
	ColorOvertime = "#8B5CF6"
)

type Event struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	Title     string    `json:"title"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Color     string    `json:"color"`
}

type EventsRequest struct {
	StartDate string
	EndDate   string
}

func (r *EventsRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CalendarService interface {
	// Events lists the authenticated employee's approved leave and
	// overtime in the range, sorted by start date.
	Events(ctx context.Context, req EventsRequest) ([]Event, error)
}

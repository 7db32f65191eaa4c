package calendar

import (
	"context"
	"fmt"
	"sort"

	"github.com/haergo/haergo-backend-go/internal/domain/calendar"
	"github.com/haergo/haergo-backend-go/internal/domain/leave"
	"github.com/haergo/haergo-backend-go/internal/domain/overtime"
	"github.com/haergo/haergo-backend-go/internal/pkg/utils"
)

type CalendarServiceImpl struct {
	leave.LeaveRepository
	overtime.OvertimeRepository
}

func NewCalendarService(
	leaveRepository leave.LeaveRepository,
	overtimeRepository overtime.OvertimeRepository,
) calendar.CalendarService {
	return &CalendarServiceImpl{
		LeaveRepository:    leaveRepository,
		OvertimeRepository: overtimeRepository,
	}
}

// Events implements calendar.CalendarService.
// The calendar is shared: every employee's approved leave and overtime in
// the range is merged into one feed.
func (c *CalendarServiceImpl) Events(ctx context.Context, req calendar.EventsRequest) ([]calendar.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := utils.CallerFromContext(ctx); err != nil {
		return nil, err
	}

	leaves, err := c.LeaveRepository.ListAllApprovedInRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	overtimes, err := c.OvertimeRepository.ListAllApprovedInRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved overtime: %w", err)
	}

	events := make([]calendar.Event, 0, len(leaves)+len(overtimes))
	for i := range leaves {
		lr := &leaves[i]
		label := lr.TypeCode
		if lt, ok := leave.Catalog[lr.TypeCode]; ok {
			label = lt.Name
		}
		events = append(events, calendar.Event{
			ID:        lr.ID,
			Kind:      calendar.KindLeave,
			Title:     fmt.Sprintf("%s - %s", displayName(lr.EmployeeName, lr.EmployeeID), label),
			StartDate: lr.StartDate.Format("2006-01-02"),
			EndDate:   lr.EndDate.Format("2006-01-02"),
			Color:     calendar.ColorLeave,
		})
	}
	for i := range overtimes {
		o := &overtimes[i]
		events = append(events, calendar.Event{
			ID:        o.ID,
			Kind:      calendar.KindOvertime,
			Title:     fmt.Sprintf("%s - Overtime %gh", displayName(o.EmployeeName, o.EmployeeID), o.Hours),
			StartDate: o.Date.Format("2006-01-02"),
			EndDate:   o.Date.Format("2006-01-02"),
			Color:     calendar.ColorOvertime,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].StartDate != events[j].StartDate {
			return events[i].StartDate < events[j].StartDate
		}
		return events[i].Kind < events[j].Kind
	})

	return events, nil
}

func displayName(name *string, employeeID string) string {
	if name != nil && *name != "" {
		return *name
	}
	return employeeID
}

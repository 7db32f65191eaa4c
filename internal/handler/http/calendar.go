package http

import (
	"net/http"

	"github.com/haergo/haergo-backend-go/internal/domain/calendar"
	"github.com/haergo/haergo-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	Events(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// Events implements CalendarHandler.
func (h *calendarHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	req := calendar.EventsRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	events, err := h.calendarService.Events(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, events)
}

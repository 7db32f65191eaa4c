package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/haergo/haergo-backend-go/internal/handler/http/middleware"
	"github.com/haergo/haergo-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Overtime   OvertimeHandler
	Shift      ShiftHandler
	Face       FaceHandler
	Calendar   CalendarHandler
	Seed       SeedHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "haergo-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		r.Post("/seed", h.Seed.Seed)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/me", h.Employee.Me)
				r.Get("/{id}", h.Employee.Get)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)
				r.Get("/stats", h.Attendance.Stats)
				r.Get("/settings", h.Attendance.Settings)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/team", h.Attendance.Team)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/types", h.Leave.Types)
				r.Get("/balance", h.Leave.Balance)
				r.Post("/requests", h.Leave.Submit)
				r.Get("/requests", h.Leave.MyRequests)
				r.Delete("/requests/{id}", h.Leave.Withdraw)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", h.Leave.Pending)
					r.Put("/requests/{id}/resolve", h.Leave.Resolve)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/requests", h.Overtime.Submit)
				r.Get("/requests", h.Overtime.MyRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", h.Overtime.Pending)
					r.Put("/requests/{id}/resolve", h.Overtime.Resolve)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/assignments", h.Shift.Assignments)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Shift.Create)
					r.Put("/{id}", h.Shift.Update)
					r.Delete("/{id}", h.Shift.Delete)
					r.Post("/assign", h.Shift.Assign)
				})
			})

			r.Route("/face", func(r chi.Router) {
				r.Post("/register", h.Face.Register)
				r.Get("/check", h.Face.Check)
				r.Get("/descriptor", h.Face.Descriptor)
			})

			r.Get("/calendar/events", h.Calendar.Events)
		})
	})

	return r
}

package main

import (
	"fmt"
	"net/http"

	"github.com/haergo/haergo-backend-go/internal/config"
	appHTTP "github.com/haergo/haergo-backend-go/internal/handler/http"
	"github.com/haergo/haergo-backend-go/internal/pkg/database"
	"github.com/haergo/haergo-backend-go/internal/pkg/jwt"
	"github.com/haergo/haergo-backend-go/internal/repository/postgresql"
	attendanceService "github.com/haergo/haergo-backend-go/internal/service/attendance"
	authService "github.com/haergo/haergo-backend-go/internal/service/auth"
	calendarService "github.com/haergo/haergo-backend-go/internal/service/calendar"
	employeeService "github.com/haergo/haergo-backend-go/internal/service/employee"
	faceService "github.com/haergo/haergo-backend-go/internal/service/face"
	leaveService "github.com/haergo/haergo-backend-go/internal/service/leave"
	overtimeService "github.com/haergo/haergo-backend-go/internal/service/overtime"
	shiftService "github.com/haergo/haergo-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	shiftAssignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	faceRepo := postgresql.NewFaceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, leaveRepo, cfg.WorkHours, cfg.Offices)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, shiftAssignmentRepo, employeeRepo)
	faceSvc := faceService.NewFaceService(faceRepo)
	calendarSvc := calendarService.NewCalendarService(leaveRepo, overtimeRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Overtime:   appHTTP.NewOvertimeHandler(overtimeSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Face:       appHTTP.NewFaceHandler(faceSvc),
		Calendar:   appHTTP.NewCalendarHandler(calendarSvc),
		Seed:       appHTTP.NewSeedHandler(authSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

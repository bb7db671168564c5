package main

import (
	"fmt"
	"net/http"

	"github.com/team-alpha/ams-backend-go/internal/config"
	"github.com/team-alpha/ams-backend-go/internal/domain/user"
	appHTTP "github.com/team-alpha/ams-backend-go/internal/handler/http"
	"github.com/team-alpha/ams-backend-go/internal/pkg/clock"
	"github.com/team-alpha/ams-backend-go/internal/pkg/database"
	"github.com/team-alpha/ams-backend-go/internal/pkg/jwt"
	"github.com/team-alpha/ams-backend-go/internal/repository/postgresql"
	attendanceService "github.com/team-alpha/ams-backend-go/internal/service/attendance"
	serviceAuth "github.com/team-alpha/ams-backend-go/internal/service/auth"
	calendarService "github.com/team-alpha/ams-backend-go/internal/service/calendar"
	holidayService "github.com/team-alpha/ams-backend-go/internal/service/holiday"
	leaveService "github.com/team-alpha/ams-backend-go/internal/service/leave"
	shiftService "github.com/team-alpha/ams-backend-go/internal/service/shift"
	userService "github.com/team-alpha/ams-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	approverRoles := make([]user.Role, 0, len(cfg.Policy.ApproverRoles))
	for _, r := range cfg.Policy.ApproverRoles {
		approverRoles = append(approverRoles, user.Role(r))
	}
	policy := user.NewAccessPolicy(approverRoles)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	clk := clock.System{}

	gate := calendarService.NewCalendarGate(holidayRepo, shiftRepo, assignmentRepo)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, gate, clk)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, policy, clk)
	shiftSvc := shiftService.NewShiftService(shiftRepo, assignmentRepo, gate, clk)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		userHandler,
		attendanceHandler,
		leaveHandler,
		shiftHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"fmt"
	"net/http"

	"github.com/chronohr/timekeeping-backend-go/internal/config"
	appHTTP "github.com/chronohr/timekeeping-backend-go/internal/handler/http"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/clock"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/database"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/jwt"
	"github.com/chronohr/timekeeping-backend-go/internal/repository/postgresql"
	attendanceService "github.com/chronohr/timekeeping-backend-go/internal/service/attendance"
	authService "github.com/chronohr/timekeeping-backend-go/internal/service/auth"
	reportService "github.com/chronohr/timekeeping-backend-go/internal/service/report"
	scheduleService "github.com/chronohr/timekeeping-backend-go/internal/service/schedule"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	workScheduleTimeRepo := postgresql.NewWorkScheduleTimeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	clk := clock.System()

	authSvc := authService.NewAuthService(userRepo, JWTService)
	scheduleSvc := scheduleService.NewScheduleService(db, workScheduleRepo, workScheduleTimeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		workScheduleRepo,
		workScheduleTimeRepo,
		clk,
	)
	reportSvc := reportService.NewReportService(reportRepo, clk)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		scheduleHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/autotrack-hq/payroll-backend-go/internal/config"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/payroll"
	appHTTP "github.com/autotrack-hq/payroll-backend-go/internal/handler/http"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/clock"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/cron"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/database"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/jwt"
	"github.com/autotrack-hq/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/autotrack-hq/payroll-backend-go/internal/service/attendance"
	serviceAuth "github.com/autotrack-hq/payroll-backend-go/internal/service/auth"
	employeeService "github.com/autotrack-hq/payroll-backend-go/internal/service/employee"
	payrollService "github.com/autotrack-hq/payroll-backend-go/internal/service/payroll"
	salaryService "github.com/autotrack-hq/payroll-backend-go/internal/service/salary"
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
	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	clk := clock.System()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	salarySvc := salaryService.NewSalaryService(salaryRepo, employeeRepo, clk)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, salaryRepo, attendanceRepo, payrollRepo, clk)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		salaryHandler,
		attendanceHandler,
		payrollHandler,
	)

	if cfg.Payroll.AutoRunEnabled {
		scheduler := cron.NewScheduler()
		scheduler.AddJob("payroll-auto-run", cfg.Payroll.AutoRunInterval, func(ctx context.Context) error {
			_, err := payrollSvc.RunPayroll(ctx, payroll.RunPayrollRequest{})
			return err
		})
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

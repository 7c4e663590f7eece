package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/hrms-suite/hrms-backend-go/internal/config"
	"github.com/hrms-suite/hrms-backend-go/internal/fixtures"
	appHTTP "github.com/hrms-suite/hrms-backend-go/internal/handler/http"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	activityService "github.com/hrms-suite/hrms-backend-go/internal/service/activity"
	attendanceService "github.com/hrms-suite/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/hrms-suite/hrms-backend-go/internal/service/auth"
	departmentService "github.com/hrms-suite/hrms-backend-go/internal/service/department"
	employeeService "github.com/hrms-suite/hrms-backend-go/internal/service/employee"
	jobTitleService "github.com/hrms-suite/hrms-backend-go/internal/service/jobtitle"
	"github.com/hrms-suite/hrms-backend-go/internal/service/leave"
	notificationService "github.com/hrms-suite/hrms-backend-go/internal/service/notification"
	payrollService "github.com/hrms-suite/hrms-backend-go/internal/service/payroll"
	performanceService "github.com/hrms-suite/hrms-backend-go/internal/service/performance"
	recruitmentService "github.com/hrms-suite/hrms-backend-go/internal/service/recruitment"
	trainingService "github.com/hrms-suite/hrms-backend-go/internal/service/training"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(!cfg.App.IsDevelopment())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.App.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)
	response.ExposeInternalErrors(cfg.App.IsDevelopment())

	db, err := database.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seeded, err := fixtures.SeedIfEmpty(ctx, db, cfg.Database.SeedDemo)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	if seeded != nil {
		slog.Info("seeded demo data", "admin", fixtures.AdminEmail)
	}

	userRepo := sqlite.NewUserRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)
	departmentRepo := sqlite.NewDepartmentRepository(db)
	jobTitleRepo := sqlite.NewJobTitleRepository(db)
	attendanceRepo := sqlite.NewAttendanceRepository(db)
	leaveRequestRepo := sqlite.NewLeaveRequestRepository(db)
	payrollRepo := sqlite.NewPayrollRepository(db)
	reviewRepo := sqlite.NewReviewRepository(db)
	trainingRepo := sqlite.NewTrainingRepository(db)
	notificationRepo := sqlite.NewNotificationRepository(db)
	activityLogRepo := sqlite.NewActivityLogRepository(db)
	recruitmentRepo := sqlite.NewRecruitmentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	activitySvc := activityService.NewActivityService(activityLogRepo)

	authSvc := serviceAuth.NewAuthService(userRepo, employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(db, departmentRepo, employeeRepo)
	jobTitleSvc := jobTitleService.NewJobTitleService(jobTitleRepo, departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leave.NewLeaveService(db, leaveRequestRepo, userRepo, notificationSvc)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, userRepo, notificationSvc)
	performanceSvc := performanceService.NewPerformanceService(reviewRepo, employeeRepo)
	trainingSvc := trainingService.NewTrainingService(db, trainingRepo, employeeRepo)
	recruitmentSvc := recruitmentService.NewRecruitmentService(db, recruitmentRepo, departmentRepo, jobTitleRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			AllowedOrigins: cfg.App.AllowedOrigins,
			StaticDir:      cfg.App.StaticDir,
		},
		JWTService,
		userRepo,
		activitySvc,
		appHTTP.Handlers{
			Auth:         appHTTP.NewAuthHandler(authSvc),
			Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
			Department:   appHTTP.NewDepartmentHandler(departmentSvc),
			JobTitle:     appHTTP.NewJobTitleHandler(jobTitleSvc),
			Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
			Leave:        appHTTP.NewLeaveHandler(leaveSvc),
			Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
			Performance:  appHTTP.NewPerformanceHandler(performanceSvc),
			Training:     appHTTP.NewTrainingHandler(trainingSvc),
			Notification: appHTTP.NewNotificationHandler(notificationSvc),
			Activity:     appHTTP.NewActivityHandler(activitySvc),
			Recruitment:  appHTTP.NewRecruitmentHandler(recruitmentSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "db", cfg.Database.Path)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

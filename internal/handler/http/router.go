package http

import (
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/activity"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	StaticDir      string
}

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Department   DepartmentHandler
	JobTitle     JobTitleHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Performance  PerformanceHandler
	Training     TrainingHandler
	Notification NotificationHandler
	Activity     ActivityHandler
	Recruitment  RecruitmentHandler
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	userRepo user.UserRepository,
	activityService activity.Service,
	h Handlers,
) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.Recoverer)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})

	admin := middleware.RequireRole(user.RoleAdmin)
	adminHR := middleware.RequireRole(user.RoleAdmin, user.RoleHR)
	payrollStaff := middleware.RequireRole(user.RoleAdmin, user.RoleHR, user.RoleFinance)
	reviewers := middleware.RequireRole(user.RoleAdmin, user.RoleHR, user.RoleManager)
	selfAttendance := middleware.RequirePermission(user.PermissionAttendanceSelf)
	logged := func(action, entityType string) func(http.Handler) http.Handler {
		return middleware.LogActivity(action, entityType, activityService)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		r.Route("/recruitment", func(r chi.Router) {
			r.Get("/postings", h.Recruitment.ListPostings)
			r.Get("/postings/{id}", h.Recruitment.GetPosting)
			r.With(logged("submit job application", "job_application")).Post("/apply", h.Recruitment.Apply)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService, userRepo))
				r.Use(adminHR)
				r.With(logged("create job posting", "job_posting")).Post("/postings", h.Recruitment.CreatePosting)
				r.With(logged("update job posting", "job_posting")).Put("/postings/{id}", h.Recruitment.UpdatePosting)
				r.With(admin, logged("delete job posting", "job_posting")).Delete("/postings/{id}", h.Recruitment.DeletePosting)
				r.Get("/applications", h.Recruitment.ListApplications)
				r.Get("/applications/{id}", h.Recruitment.GetApplication)
				r.With(logged("update application status", "job_application")).Put("/applications/{id}/status", h.Recruitment.UpdateApplicationStatus)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService, userRepo))

			r.Route("/auth", func(r chi.Router) {
				r.With(adminHR).Post("/register", h.Auth.Register)
				r.Get("/me", h.Auth.Me)
				r.Put("/me", h.Auth.UpdatePassword)
				r.Put("/update-password", h.Auth.UpdatePassword)
				r.Post("/logout", h.Auth.Logout)
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/", h.Auth.ListUsers)
				r.With(logged("update user status", "user")).Put("/{id}/status", h.Auth.UpdateUserStatus)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.With(adminHR).Get("/stats/overview", h.Employee.GetStats)
				r.With(adminHR).Get("/export", h.Employee.ExportEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.With(adminHR, logged("create employee", "employee")).Post("/", h.Employee.CreateEmployee)
				r.With(adminHR, logged("update employee", "employee")).Put("/{id}", h.Employee.UpdateEmployee)
				r.With(admin, logged("delete employee", "employee")).Delete("/{id}", h.Employee.DeleteEmployee)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Get("/tree", h.Department.Tree)
				r.With(adminHR).Get("/stats/overview", h.Department.Stats)
				r.Get("/{id}", h.Department.Get)
				r.With(adminHR, logged("create department", "department")).Post("/", h.Department.Create)
				r.With(adminHR, logged("update department", "department")).Put("/{id}", h.Department.Update)
				r.With(admin, logged("delete department", "department")).Delete("/{id}", h.Department.Delete)
			})

			r.Route("/job-titles", func(r chi.Router) {
				r.Get("/", h.JobTitle.List)
				r.Get("/{id}", h.JobTitle.Get)
				r.With(adminHR, logged("create job title", "job_title")).Post("/", h.JobTitle.Create)
				r.With(adminHR, logged("update job title", "job_title")).Put("/{id}", h.JobTitle.Update)
				r.With(admin, logged("delete job title", "job_title")).Delete("/{id}", h.JobTitle.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(selfAttendance, logged("check in", "attendance")).Post("/check-in", h.Attendance.CheckIn)
				r.With(selfAttendance, logged("check out", "attendance")).Post("/check-out", h.Attendance.CheckOut)
				r.Get("/", h.Attendance.List)
				r.Get("/stats", h.Attendance.Stats)
				r.With(adminHR, logged("update attendance", "attendance")).Put("/{id}", h.Attendance.Update)
			})

			r.Route("/leave", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate), logged("request leave", "leave")).Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.With(logged("approve leave", "leave")).Put("/{id}/approve", h.Leave.Approve)
					r.With(logged("reject leave", "leave")).Put("/{id}/reject", h.Leave.Reject)
				})
				r.With(logged("cancel leave", "leave")).Put("/{id}/cancel", h.Leave.Cancel)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.List)
				r.With(payrollStaff).Get("/stats", h.Payroll.Stats)
				r.Get("/{id}", h.Payroll.Get)
				r.Get("/{id}/payslip", h.Payroll.Payslip)
				r.With(payrollStaff, logged("create payroll record", "payroll")).Post("/", h.Payroll.Create)
				r.With(payrollStaff, logged("generate monthly payroll", "payroll")).Post("/generate-monthly", h.Payroll.GenerateMonthly)
				r.With(payrollStaff, logged("update payroll record", "payroll")).Put("/{id}", h.Payroll.Update)
				r.With(middleware.RequireRole(user.RoleAdmin, user.RoleFinance), logged("approve payroll", "payroll")).Put("/{id}/approve", h.Payroll.Approve)
				r.With(admin, logged("delete payroll record", "payroll")).Delete("/{id}", h.Payroll.Delete)
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/", h.Performance.List)
				r.With(adminHR).Get("/stats", h.Performance.Stats)
				r.Get("/{id}", h.Performance.Get)
				r.With(reviewers, logged("create performance review", "performance")).Post("/", h.Performance.Create)
				r.With(reviewers, logged("update performance review", "performance")).Put("/{id}", h.Performance.Update)
				r.With(admin, logged("delete performance review", "performance")).Delete("/{id}", h.Performance.Delete)
			})

			r.Route("/training", func(r chi.Router) {
				r.Get("/", h.Training.ListPrograms)
				r.With(adminHR).Get("/stats", h.Training.Stats)
				r.Get("/{id}", h.Training.GetProgram)
				r.With(adminHR, logged("create training program", "training")).Post("/", h.Training.CreateProgram)
				r.With(adminHR, logged("update training program", "training")).Put("/{id}", h.Training.UpdateProgram)
				r.With(admin, logged("delete training program", "training")).Delete("/{id}", h.Training.DeleteProgram)
				r.With(adminHR, logged("enroll employee", "training")).Post("/{id}/enroll", h.Training.Enroll)
				r.With(adminHR, logged("update enrollment", "training")).Put("/enrollments/{id}", h.Training.UpdateEnrollment)
				r.With(adminHR, logged("remove enrollment", "training")).Delete("/enrollments/{id}", h.Training.Unenroll)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Put("/read-all", h.Notification.MarkAllAsRead)
				r.Put("/{id}/read", h.Notification.MarkAsRead)
			})

			r.With(middleware.RequirePermission(user.PermissionActivityView)).Get("/activity-logs", h.Activity.List)
		})
	})

	if cfg.StaticDir != "" {
		r.Get("/*", staticFiles(cfg.StaticDir))
	}

	return r
}

// staticFiles serves the frontend bundle and answers unknown paths with
// the JSON 404 envelope.
func staticFiles(dir string) http.HandlerFunc {
	root := http.Dir(dir)
	fileServer := http.FileServer(root)
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := root.Open(path.Clean("/" + r.URL.Path))
		if err != nil {
			response.NotFound(w, "Route not found")
			return
		}
		_ = f.Close()
		fileServer.ServeHTTP(w, r)
	}
}

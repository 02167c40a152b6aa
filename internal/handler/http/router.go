package http

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce-app/workforce-backend-go/internal/config"
	"github.com/workforce-app/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Advance      AdvanceHandler
	Payroll      PayrollHandler
	Attendance   AttendanceHandler
	WorkRecord   WorkRecordHandler
	Item         ItemHandler
	Subscription SubscriptionHandler
	Activity     ActivityHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, subscriptionMw *middleware.SubscriptionMiddleware, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	level := logLevel(cfg.App.LogLevel)
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  level,
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.With(subscriptionMw.RequireCanAddEmployee).Post("/", h.Employee.CreateEmployee)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.Put("/", h.Employee.UpdateEmployee)
					r.Delete("/", h.Employee.DeleteEmployee)

					r.Get("/payslip", h.Payroll.GetPayslip)

					r.Route("/advances", func(r chi.Router) {
						r.Get("/", h.Advance.ListAdvances)
						r.With(subscriptionMw.RequireCanAddAdvance).Post("/", h.Advance.CreateAdvance)
					})

					r.Route("/work-records", func(r chi.Router) {
						r.Get("/", h.WorkRecord.ListWorkRecords)
						r.Post("/", h.WorkRecord.CreateWorkRecord)
						r.Delete("/{recordID}", h.WorkRecord.DeleteWorkRecord)
					})

					r.Route("/attendance", func(r chi.Router) {
						r.Get("/", h.Attendance.ListAttendance)
						r.Post("/", h.Attendance.MarkAttendance)
					})
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/sweep", h.Advance.RunSweep)
				r.Post("/{advanceID}/deduct", h.Advance.DeductPartial)
				r.Post("/{advanceID}/deduct-all", h.Advance.MarkFullyDeducted)
			})

			r.Get("/payroll/summary", h.Payroll.GetSummary)

			r.Route("/attendance/summary", func(r chi.Router) {
				r.Get("/daily", h.Attendance.GetDailySummary)
				r.Get("/monthly", h.Attendance.GetMonthlySummary)
				r.Get("/yearly", h.Attendance.GetYearlySummary)
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", h.Item.ListItems)
				r.Post("/", h.Item.UpsertItem)
				r.Post("/bulk", h.Item.BulkUpsertItems)
				r.Post("/import", h.Item.ImportCSV)
				r.Get("/export", h.Item.ExportCSV)
				r.Get("/{id}", h.Item.GetItem)
				r.Delete("/{id}", h.Item.DeleteItem)
			})

			r.Get("/subscriptions/my", h.Subscription.GetMySubscription)
			r.Get("/activity", h.Activity.ListActivity)
		})
	})

	return r
}

// logLevel maps the LOG_LEVEL setting onto slog levels, defaulting
// to info for unrecognized values.
func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

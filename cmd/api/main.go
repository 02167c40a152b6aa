package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/workforce-app/workforce-backend-go/internal/config"
	appHTTP "github.com/workforce-app/workforce-backend-go/internal/handler/http"
	"github.com/workforce-app/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/cron"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/jwt"
	"github.com/workforce-app/workforce-backend-go/internal/repository/postgresql"
	activityService "github.com/workforce-app/workforce-backend-go/internal/service/activity"
	advanceService "github.com/workforce-app/workforce-backend-go/internal/service/advance"
	attendanceService "github.com/workforce-app/workforce-backend-go/internal/service/attendance"
	authService "github.com/workforce-app/workforce-backend-go/internal/service/auth"
	employeeService "github.com/workforce-app/workforce-backend-go/internal/service/employee"
	itemService "github.com/workforce-app/workforce-backend-go/internal/service/item"
	payrollService "github.com/workforce-app/workforce-backend-go/internal/service/payroll"
	subscriptionService "github.com/workforce-app/workforce-backend-go/internal/service/subscription"
	workRecordService "github.com/workforce-app/workforce-backend-go/internal/service/workrecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	workRecordRepo := postgresql.NewWorkRecordRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	itemRepo := postgresql.NewItemRepository(db)
	subscriptionRepo := postgresql.NewSubscriptionRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	activitySvc := activityService.NewActivityService(activityRepo, activityService.Config{})
	defer activitySvc.Stop()

	authSvc := authService.NewAuthService(db, userRepo, companyRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, activitySvc)
	advanceSvc := advanceService.NewAdvanceService(db, advanceRepo, employeeRepo, activitySvc)
	workRecordSvc := workRecordService.NewWorkRecordService(workRecordRepo, employeeRepo, itemRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, workRecordRepo, advanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	itemSvc := itemService.NewItemService(itemRepo)
	subscriptionSvc := subscriptionService.NewSubscriptionService(subscriptionRepo, employeeRepo, advanceRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Advance:      appHTTP.NewAdvanceHandler(advanceSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		WorkRecord:   appHTTP.NewWorkRecordHandler(workRecordSvc),
		Item:         appHTTP.NewItemHandler(itemSvc),
		Subscription: appHTTP.NewSubscriptionHandler(subscriptionSvc),
		Activity:     appHTTP.NewActivityHandler(activitySvc),
	}
	subscriptionMw := middleware.NewSubscriptionMiddleware(subscriptionSvc)

	router := appHTTP.NewRouter(cfg, jwtService, subscriptionMw, handlers)

	scheduler := cron.NewScheduler()
	advanceJobs := cron.NewAdvanceJobs(advanceSvc, companyRepo)
	advanceJobs.RegisterJobs(scheduler, cfg.Sweep.Interval)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		fmt.Println("Server listening on", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if err := server.Shutdown(context.Background()); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}

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

	"github.com/foratask/foratask-backend-go/internal/config"
	appHTTP "github.com/foratask/foratask-backend-go/internal/handler/http"
	"github.com/foratask/foratask-backend-go/internal/pkg/database"
	"github.com/foratask/foratask-backend-go/internal/pkg/jwt"
	"github.com/foratask/foratask-backend-go/internal/pkg/sse"
	"github.com/foratask/foratask-backend-go/internal/repository/postgresql"
	attendanceService "github.com/foratask/foratask-backend-go/internal/service/attendance"
	leaveService "github.com/foratask/foratask-backend-go/internal/service/leave"
	notificationService "github.com/foratask/foratask-backend-go/internal/service/notification"
	organizationService "github.com/foratask/foratask-backend-go/internal/service/organization"
	payrollService "github.com/foratask/foratask-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})).With(
		slog.String("app", "foratask-backend"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	settingsRepo := postgresql.NewSettingsRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	salaryConfigRepo := postgresql.NewSalaryConfigRepository(db)
	salaryRecordRepo := postgresql.NewSalaryRecordRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	timelineRepo := postgresql.NewTaskTimelineRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	notifService := notificationService.NewNotificationService(notificationRepo, hub, logger, notificationService.Config{})
	defer notifService.Stop()

	settingsService := organizationService.NewSettingsService(settingsRepo)
	attService := attendanceService.NewAttendanceService(attendanceRepo, settingsRepo, employeeRepo, timelineRepo, logger)
	lvService := leaveService.NewLeaveService(db, leaveRequestRepo, attendanceRepo, employeeRepo, settingsRepo, notifService)
	payService := payrollService.NewPayrollService(salaryConfigRepo, salaryRecordRepo, attendanceRepo, employeeRepo, settingsRepo, notifService, cfg.Payroll)

	router := appHTTP.NewRouter(jwtService, logger, appHTTP.Handlers{
		Attendance:   appHTTP.NewAttendanceHandler(attService),
		Leave:        appHTTP.NewLeaveHandler(lvService),
		Payroll:      appHTTP.NewPayrollHandler(payService),
		Organization: appHTTP.NewOrganizationHandler(settingsService),
		Notification: appHTTP.NewNotificationHandler(notifService, jwtService, hub),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.Int("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", slog.Any("error", err))
	}
}

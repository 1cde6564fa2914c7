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

	"github.com/labourhub/labour-backend-go/internal/config"
	appHTTP "github.com/labourhub/labour-backend-go/internal/handler/http"
	"github.com/labourhub/labour-backend-go/internal/pkg/database"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
	"github.com/labourhub/labour-backend-go/internal/repository/postgresql"
	advanceService "github.com/labourhub/labour-backend-go/internal/service/advance"
	attendanceService "github.com/labourhub/labour-backend-go/internal/service/attendance"
	serviceAuth "github.com/labourhub/labour-backend-go/internal/service/auth"
	deductionService "github.com/labourhub/labour-backend-go/internal/service/deduction"
	labourService "github.com/labourhub/labour-backend-go/internal/service/labour"
	leaveService "github.com/labourhub/labour-backend-go/internal/service/leave"
	salaryService "github.com/labourhub/labour-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			slog.Error("Error applying schema", "error", err)
			os.Exit(1)
		}
	}

	userRepo := postgresql.NewUserRepository(db)
	labourRepo := postgresql.NewLabourRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	labourSvc := labourService.NewLabourService(labourRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, labourRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, labourRepo)
	deductionSvc := deductionService.NewDeductionService(deductionRepo, labourRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, labourRepo)
	salarySvc := salaryService.NewSalaryService(
		postgresql.NewTransactor(db),
		salaryRepo,
		labourRepo,
		attendanceRepo,
		advanceRepo,
		deductionRepo,
	)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewLabourHandler(labourSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewAdvanceHandler(advanceSvc),
		appHTTP.NewDeductionHandler(deductionSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewSalaryHandler(salarySvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}

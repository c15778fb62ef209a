package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	api "videostore-admin/internal/api/http"
	"videostore-admin/internal/config"
	"videostore-admin/internal/database"
	"videostore-admin/internal/jobs"
	"videostore-admin/internal/logger"
	"videostore-admin/internal/repository/postgres"
	"videostore-admin/internal/scheduler"
	"videostore-admin/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting videostore admin backend", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// The shell drives the connection lifecycle, but try an initial
	// connect so a correctly configured deployment is ready at once.
	db := database.New(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.Connect(ctx); err != nil {
		var connErr *database.ConnectionError
		if errors.As(err, &connErr) {
			logger.Warn("Initial database connect failed, waiting for explicit connect", "error", err)
		} else {
			logger.Error("Unexpected connect failure", "error", err)
		}
	}
	cancel()
	defer db.Disconnect()

	store := postgres.NewStore(db)

	timeout := time.Duration(cfg.Pool.StatementTimeoutSeconds) * time.Second
	filmSvc := service.NewFilmService(store.FilmRepository, timeout)
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.DashboardRepository, timeout)
	staffSvc := service.NewStaffService(store.StaffRepository, timeout)
	rentalSvc := service.NewRentalService(store.RentalRepository, timeout)
	dashboardSvc := service.NewDashboardService(store.DashboardRepository, store.RentalRepository, timeout)

	jobRunner := jobs.NewJobRunner(db, store.DashboardRepository, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	if sched.IsRunning() {
		sched.Start()
		defer sched.Stop()
	}

	router := api.NewRouter(api.Handlers{
		DB:        db,
		Films:     filmSvc,
		Customers: customerSvc,
		Staff:     staffSvc,
		Rentals:   rentalSvc,
		Dashboard: dashboardSvc,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

package jobs

import (
	"context"
	"errors"
	"time"

	"videostore-admin/internal/config"
	"videostore-admin/internal/database"
	"videostore-admin/internal/logger"
	"videostore-admin/internal/repository"
)

const jobTimeout = time.Minute

// JobRunner coordinates the scheduled jobs.
type JobRunner struct {
	db        *database.Manager
	dashboard repository.DashboardRepository
	config    *config.Config
}

func NewJobRunner(db *database.Manager, dashboard repository.DashboardRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:        db,
		dashboard: dashboard,
		config:    cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// OverdueReport logs how many open rentals have outlived their film's
// rental duration. When the store is not connected the job skips
// quietly; the shell may simply not have connected yet.
func (jr *JobRunner) OverdueReport() {
	jr.runWithRecovery("OverdueReport", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		overdue, err := jr.dashboard.CountOverdueRentals(ctx)
		if errors.Is(err, database.ErrNotConnected) {
			logger.Debug("Overdue report skipped, not connected")
			return
		}
		if err != nil {
			logger.Error("Overdue report failed", "error", err)
			return
		}

		active, err := jr.dashboard.CountActiveRentals(ctx)
		if err != nil {
			logger.Error("Overdue report failed", "error", err)
			return
		}

		logger.Info("Overdue rental report", "overdue", overdue, "active", active)
	})
}

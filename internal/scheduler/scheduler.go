package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"videostore-admin/internal/jobs"
	"videostore-admin/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler.
// Jobs with an empty schedule stay disabled.
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	if cfg.OverdueReport != "" {
		if _, err := s.cron.AddFunc(cfg.OverdueReport, s.jobs.OverdueReport); err != nil {
			logger.Error("Failed to register OverdueReport job", "error", err)
		}
	}

	logger.Info("Cron jobs registered", "count", len(s.cron.Entries()))
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Cron scheduler started")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if any jobs are registered
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}

package scheduler

import (
	"time"

	"firedept-backoffice/internal/jobs"
	"firedept-backoffice/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner.
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

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.OverdueRequestDigest, s.jobs.OverdueRequestDigest)
	if err != nil {
		logger.Error("Failed to register OverdueRequestDigest job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.DeadlineReminderDigest, s.jobs.DeadlineReminderDigest)
	if err != nil {
		logger.Error("Failed to register DeadlineReminderDigest job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Cron scheduler started")
}

// Stop gracefully stops the cron scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

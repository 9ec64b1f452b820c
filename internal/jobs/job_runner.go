package jobs

import (
	"firedept-backoffice/internal/config"
	"firedept-backoffice/internal/logger"
	"firedept-backoffice/internal/service"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	reporting service.ReportingService
	config    *config.Config
}

func NewJobRunner(reporting service.ReportingService, cfg *config.Config) *JobRunner {
	return &JobRunner{reporting: reporting, config: cfg}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery.
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

// RunAllDailyJobs runs every daily digest (for manual execution).
func (jr *JobRunner) RunAllDailyJobs() {
	jr.OverdueRequestDigest()
	jr.DeadlineReminderDigest()
}

package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"firedept-backoffice/internal/config"
	"firedept-backoffice/internal/jobs"
	"firedept-backoffice/internal/logger"
	"firedept-backoffice/internal/repository/postgres"
	"firedept-backoffice/internal/scheduler"
	"firedept-backoffice/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ('overdue-digest', 'deadline-digest', 'all')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting cronjob runner...", "log_level", cfg.Log.Level)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	reportingSvc := service.NewReportingService(store.BudgetRepository, store.SupplyRequestRepository)
	jobRunner := jobs.NewJobRunner(reportingSvc, cfg)

	if *runOnce != "" {
		switch *runOnce {
		case "overdue-digest":
			jobRunner.OverdueRequestDigest()
		case "deadline-digest":
			jobRunner.DeadlineReminderDigest()
		case "all":
			jobRunner.RunAllDailyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received")
}

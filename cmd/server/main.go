package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	api "firedept-backoffice/internal/api/http"
	"firedept-backoffice/internal/config"
	"firedept-backoffice/internal/logger"
	"firedept-backoffice/internal/repository/postgres"
	"firedept-backoffice/internal/security"
	"firedept-backoffice/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	migrate := flag.Bool("migrate", true, "Run schema migrations on startup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting fire-department back-office server...",
		"address", cfg.GetServerAddress(), "log_level", cfg.Log.Level)

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
	logger.Info("Database connection established")

	if *migrate {
		if err := postgres.Migrate(context.Background(), db); err != nil {
			logger.Error("Failed to run migrations", "error", err)
			log.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Schema migrations applied")
	}

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TokenExpiryMinute)*time.Minute)
	authMiddleware := api.NewAuthMiddleware(tokenManager)

	budgetSvc := service.NewBudgetService(store.BudgetRepository)
	procurementSvc := service.NewProcurementService(store.SupplyRequestRepository)
	payrollSvc := service.NewPayrollService(store.SalaryRepository, store.TransactionRepository, budgetSvc)
	reportingSvc := service.NewReportingService(store.BudgetRepository, store.SupplyRequestRepository)
	authSvc := service.NewAuthService(store.UserRepository, store.SupplierRepository, tokenManager)

	router := api.NewRouter(api.Handlers{
		Auth:        api.NewAuthHandler(authSvc),
		Budget:      api.NewBudgetHandler(budgetSvc, cfg.Budget.DefaultSeedAmount),
		Procurement: api.NewProcurementHandler(procurementSvc),
		Payroll:     api.NewPayrollHandler(payrollSvc),
		Reporting:   api.NewReportingHandler(reportingSvc),
	}, authMiddleware)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}

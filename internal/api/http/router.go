package http

import (
	"net/http"

	"firedept-backoffice/internal/domain"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Auth        *AuthHandler
	Budget      *BudgetHandler
	Procurement *ProcurementHandler
	Payroll     *PayrollHandler
	Reporting   *ReportingHandler
}

// NewRouter builds the full route table. Role gates here are preconditions;
// the services re-check anything that is a business rule.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/login", h.Auth.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.Authenticate)

	api.HandleFunc("/budget/periods", requireRole(domain.RoleFinanceManager, h.Budget.InitializePeriod)).Methods(http.MethodPost)
	api.HandleFunc("/budget/periods/current", h.Budget.GetCurrentPeriod).Methods(http.MethodGet)
	api.HandleFunc("/budget/transfer", requireRole(domain.RoleFinanceManager, h.Budget.TransferAllocation)).Methods(http.MethodPost)

	api.HandleFunc("/requests", h.Procurement.CreateRequest).Methods(http.MethodPost)
	api.HandleFunc("/requests", h.Procurement.ListRequests).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}", h.Procurement.GetRequest).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}/bids", requireRole(domain.RoleSupplier, h.Procurement.SubmitBid)).Methods(http.MethodPost)
	api.HandleFunc("/requests/{id}/bids", requireRole(domain.RoleSupplier, h.Procurement.UpdateBid)).Methods(http.MethodPut)
	api.HandleFunc("/requests/{id}/bids", requireRole(domain.RoleSupplier, h.Procurement.RetractBid)).Methods(http.MethodDelete)
	api.HandleFunc("/requests/{id}/award", requireRole(domain.RoleSupplyManager, h.Procurement.AwardSupplier)).Methods(http.MethodPost)

	api.HandleFunc("/salaries", requireRole(domain.RoleFinanceManager, h.Payroll.CreateSalary)).Methods(http.MethodPost)
	api.HandleFunc("/salaries", requireRole(domain.RoleFinanceManager, h.Payroll.ListSalaries)).Methods(http.MethodGet)
	api.HandleFunc("/salaries/{id}/decision", requireRole(domain.RoleFinanceManager, h.Payroll.DecideSalary)).Methods(http.MethodPost)

	api.HandleFunc("/transactions", requireRole(domain.RoleFinanceManager, h.Payroll.RecordTransaction)).Methods(http.MethodPost)
	api.HandleFunc("/transactions", requireRole(domain.RoleFinanceManager, h.Payroll.ListTransactions)).Methods(http.MethodGet)

	api.HandleFunc("/reports/utilization", h.Reporting.Utilization).Methods(http.MethodGet)
	api.HandleFunc("/reports/category-spend", h.Reporting.CategorySpend).Methods(http.MethodGet)
	api.HandleFunc("/reports/monthly", h.Reporting.MonthlySeries).Methods(http.MethodGet)
	api.HandleFunc("/reports/alerts", h.Reporting.Alerts).Methods(http.MethodGet)

	return r
}

package http

import (
	"net/http"
	"strconv"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/service"
)

type ReportingHandler struct {
	reportingSvc service.ReportingService
}

func NewReportingHandler(reportingSvc service.ReportingService) *ReportingHandler {
	return &ReportingHandler{reportingSvc: reportingSvc}
}

func (h *ReportingHandler) Utilization(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	utilization, err := h.reportingSvc.CurrentUtilization(r.Context(), principal.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, utilization)
}

func (h *ReportingHandler) CategorySpend(w http.ResponseWriter, r *http.Request) {
	from, to, err := dateRange(r)
	if err != nil {
		writeError(w, err)
		return
	}

	spend, err := h.reportingSvc.CategorySpend(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	if spend == nil {
		spend = []domain.CategorySpend{}
	}
	writeJSON(w, http.StatusOK, spend)
}

func (h *ReportingHandler) MonthlySeries(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, domain.NewValidationError("year", "must be an integer"))
			return
		}
		year = parsed
	}

	series, err := h.reportingSvc.MonthlyUtilization(r.Context(), principal.ID, year)
	if err != nil {
		writeError(w, err)
		return
	}
	if series == nil {
		series = []domain.BudgetUtilization{}
	}
	writeJSON(w, http.StatusOK, series)
}

func (h *ReportingHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.reportingSvc.Alerts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if alerts == nil {
		alerts = []domain.RequestAlert{}
	}
	writeJSON(w, http.StatusOK, alerts)
}

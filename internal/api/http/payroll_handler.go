package http

import (
	"net/http"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/service"
)

type PayrollHandler struct {
	payrollSvc service.PayrollService
}

func NewPayrollHandler(payrollSvc service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollSvc: payrollSvc}
}

type createSalaryRequest struct {
	EmployeeID   int32  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	AttendedDays int32  `json:"attended_days"`
	AbsentDays   int32  `json:"absent_days"`
	BaseSalary   int64  `json:"base_salary"`
}

func (h *PayrollHandler) CreateSalary(w http.ResponseWriter, r *http.Request) {
	var req createSalaryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	salary, err := h.payrollSvc.CreateSalary(r.Context(), service.CreateSalaryInput{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Month:        req.Month,
		Year:         req.Year,
		AttendedDays: req.AttendedDays,
		AbsentDays:   req.AbsentDays,
		BaseSalary:   req.BaseSalary,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, salary)
}

type salaryDecisionRequest struct {
	Action string `json:"action"`
}

func (h *PayrollHandler) DecideSalary(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req salaryDecisionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	salary, err := h.payrollSvc.PayOrRejectSalary(r.Context(), principal.ID, id, domain.SalaryAction(req.Action))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, salary)
}

func (h *PayrollHandler) ListSalaries(w http.ResponseWriter, r *http.Request) {
	status := domain.SalaryStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.SalaryStatusPending
	}

	salaries, err := h.payrollSvc.ListSalaries(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	if salaries == nil {
		salaries = []domain.Salary{}
	}
	writeJSON(w, http.StatusOK, salaries)
}

type recordTransactionRequest struct {
	Amount      int64     `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func (h *PayrollHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	var req recordTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tx, err := h.payrollSvc.RecordTransaction(r.Context(), principal.ID, req.Amount, domain.TransactionType(req.Type), req.Description, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (h *PayrollHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	from, to, err := dateRange(r)
	if err != nil {
		writeError(w, err)
		return
	}

	txs, err := h.payrollSvc.ListTransactions(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

// dateRange parses optional from/to query parameters (RFC 3339 dates),
// defaulting to the current calendar month.
func dateRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("from", "must be YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("to", "must be YYYY-MM-DD")
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

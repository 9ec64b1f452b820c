package http

import (
	"net/http"
	"time"

	"firedept-backoffice/internal/service"
)

type BudgetHandler struct {
	budgetSvc   service.BudgetService
	defaultSeed int64
}

func NewBudgetHandler(budgetSvc service.BudgetService, defaultSeed int64) *BudgetHandler {
	return &BudgetHandler{budgetSvc: budgetSvc, defaultSeed: defaultSeed}
}

type initializePeriodRequest struct {
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	SeedAmount *int64 `json:"seed_amount"`
}

func (h *BudgetHandler) InitializePeriod(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	var req initializePeriodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	seed := h.defaultSeed
	if req.SeedAmount != nil {
		seed = *req.SeedAmount
	}

	period, err := h.budgetSvc.InitializePeriod(r.Context(), principal.ID, req.Month, req.Year, seed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, period)
}

type transferAllocationRequest struct {
	ToOwnerID int32 `json:"to_owner_id"`
	Amount    int64 `json:"amount"`
	Month     int   `json:"month"`
	Year      int   `json:"year"`
}

func (h *BudgetHandler) TransferAllocation(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	var req transferAllocationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Month == 0 && req.Year == 0 {
		now := time.Now()
		req.Month, req.Year = int(now.Month()), now.Year()
	}

	created, err := h.budgetSvc.TransferAllocation(r.Context(), principal.ID, req.ToOwnerID, req.Amount, req.Month, req.Year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BudgetHandler) GetCurrentPeriod(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	now := time.Now()
	period, err := h.budgetSvc.GetPeriod(r.Context(), principal.ID, int(now.Month()), now.Year())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, period)
}

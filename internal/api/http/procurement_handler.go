package http

import (
	"net/http"
	"strconv"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type ProcurementHandler struct {
	procurementSvc service.ProcurementService
}

func NewProcurementHandler(procurementSvc service.ProcurementService) *ProcurementHandler {
	return &ProcurementHandler{procurementSvc: procurementSvc}
}

type createRequestRequest struct {
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	Quantity            int32     `json:"quantity"`
	Unit                string    `json:"unit"`
	ApplicationDeadline time.Time `json:"application_deadline"`
}

func (h *ProcurementHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	var req createRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.procurementSvc.CreateRequest(r.Context(), principal, service.CreateRequestInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.SupplyCategory(req.Category),
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Deadline:    req.ApplicationDeadline,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProcurementHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	requests, err := h.procurementSvc.ListRequests(r.Context(), principal)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.SupplyRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ProcurementHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.procurementSvc.GetRequest(r.Context(), principal, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type bidRequest struct {
	OfferPrice int64  `json:"offer_price"`
	Notes      string `json:"notes"`
}

func (h *ProcurementHandler) SubmitBid(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req bidRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	bid, err := h.procurementSvc.SubmitBid(r.Context(), id, principal.ID, req.OfferPrice, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bid)
}

func (h *ProcurementHandler) UpdateBid(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req bidRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	bid, err := h.procurementSvc.UpdateBid(r.Context(), id, principal.ID, req.OfferPrice, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bid)
}

func (h *ProcurementHandler) RetractBid(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.procurementSvc.RetractBid(r.Context(), id, principal.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type awardRequest struct {
	SupplierID int32 `json:"supplier_id"`
}

func (h *ProcurementHandler) AwardSupplier(w http.ResponseWriter, r *http.Request) {
	principal, _ := PrincipalFromContext(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req awardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	awarded, err := h.procurementSvc.AwardSupplier(r.Context(), principal, id, req.SupplierID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, awarded)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return int32(id), nil
}

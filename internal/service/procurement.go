package service

import (
	"context"
	"strings"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/logger"
	"firedept-backoffice/internal/repository"

	"github.com/google/uuid"
)

type procurementService struct {
	requestRepo repository.SupplyRequestRepository
}

func NewProcurementService(requestRepo repository.SupplyRequestRepository) ProcurementService {
	return &procurementService{requestRepo: requestRepo}
}

func (s *procurementService) CreateRequest(ctx context.Context, principal domain.Principal, input CreateRequestInput) (*domain.SupplyRequest, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}
	if !domain.ValidCategory(input.Category) {
		return nil, domain.NewValidationError("category", "unknown category")
	}
	if input.Quantity < 1 {
		return nil, domain.NewValidationError("quantity", "must be at least 1")
	}
	if !input.Deadline.After(time.Now()) {
		return nil, domain.NewValidationError("application_deadline", "must be in the future")
	}

	req := &domain.SupplyRequest{
		Code:                uuid.NewString(),
		OwnerID:             principal.ID,
		Title:               input.Title,
		Description:         input.Description,
		Category:            input.Category,
		Quantity:            input.Quantity,
		Unit:                input.Unit,
		// Visibility is policy, not caller input: only supply-manager
		// requests go out to the supplier pool.
		Public: principal.HasRole(domain.RoleSupplyManager),
		Status: domain.RequestStatusOpen,
		ApplicationDeadline: input.Deadline,
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	logger.Info("supply request created",
		"request_id", req.ID, "code", req.Code, "owner_id", req.OwnerID, "category", req.Category, "public", req.Public)
	return req, nil
}

func (s *procurementService) ListRequests(ctx context.Context, principal domain.Principal) ([]domain.SupplyRequest, error) {
	switch {
	case principal.IsSupplier():
		return s.requestRepo.ListPublicOpen(ctx)
	case principal.HasRole(domain.RoleSupplyManager):
		return s.requestRepo.List(ctx)
	default:
		return s.requestRepo.ListByOwner(ctx, principal.ID)
	}
}

func (s *procurementService) GetRequest(ctx context.Context, principal domain.Principal, id int32) (*domain.SupplyRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visibleTo(principal, req) {
		return nil, domain.ErrUnauthorized
	}
	return req, nil
}

func visibleTo(principal domain.Principal, req *domain.SupplyRequest) bool {
	switch {
	case principal.IsSupplier():
		return req.Public
	case principal.HasRole(domain.RoleSupplyManager):
		return true
	default:
		return req.OwnerID == principal.ID
	}
}

func (s *procurementService) SubmitBid(ctx context.Context, requestID, supplierID int32, offerPrice int64, notes string) (*domain.Bid, error) {
	req, err := s.guardBiddingWindow(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if offerPrice < 0 {
		return nil, domain.NewValidationError("offer_price", "must not be negative")
	}
	if req.BidBy(supplierID) != nil {
		return nil, domain.ErrDuplicateBid
	}

	bid := &domain.Bid{
		RequestID:   requestID,
		SupplierID:  supplierID,
		OfferPrice:  offerPrice,
		Notes:       notes,
		SubmittedAt: time.Now(),
	}
	// The (request_id, supplier_id) constraint catches the race two identical
	// submissions can win against the check above.
	if err := s.requestRepo.AddBid(ctx, bid); err != nil {
		return nil, err
	}

	logger.Info("bid submitted", "request_id", requestID, "supplier_id", supplierID, "offer_price", offerPrice)
	return bid, nil
}

func (s *procurementService) UpdateBid(ctx context.Context, requestID, supplierID int32, offerPrice int64, notes string) (*domain.Bid, error) {
	req, err := s.guardBiddingWindow(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if offerPrice < 0 {
		return nil, domain.NewValidationError("offer_price", "must not be negative")
	}
	if req.BidBy(supplierID) == nil {
		return nil, domain.ErrBidNotFound
	}

	bid := &domain.Bid{
		RequestID:   requestID,
		SupplierID:  supplierID,
		OfferPrice:  offerPrice,
		Notes:       notes,
		SubmittedAt: time.Now(),
	}
	if err := s.requestRepo.UpdateBid(ctx, bid); err != nil {
		return nil, err
	}
	return bid, nil
}

func (s *procurementService) RetractBid(ctx context.Context, requestID, supplierID int32) error {
	if _, err := s.guardBiddingWindow(ctx, requestID); err != nil {
		return err
	}
	if err := s.requestRepo.DeleteBid(ctx, requestID, supplierID); err != nil {
		return err
	}
	logger.Info("bid retracted", "request_id", requestID, "supplier_id", supplierID)
	return nil
}

// guardBiddingWindow loads the request and enforces the shared preconditions
// of every bid mutation: the request is open and the deadline has not passed.
func (s *procurementService) guardBiddingWindow(ctx context.Context, requestID int32) (*domain.SupplyRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.RequestStatusOpen {
		return nil, domain.ErrRequestNotOpen
	}
	if time.Now().After(req.ApplicationDeadline) {
		return nil, domain.ErrDeadlinePassed
	}
	return req, nil
}

func (s *procurementService) AwardSupplier(ctx context.Context, principal domain.Principal, requestID, supplierID int32) (*domain.SupplyRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status == domain.RequestStatusClosed {
		return nil, domain.ErrRequestClosed
	}
	// Award only opens after bidding ends, so every offer is on the table.
	if time.Now().Before(req.ApplicationDeadline) {
		return nil, domain.ErrDeadlineNotReached
	}
	if req.BidBy(supplierID) == nil {
		return nil, domain.ErrSupplierHasNoBid
	}

	if err := s.requestRepo.Award(ctx, requestID, supplierID); err != nil {
		return nil, err
	}

	logger.Info("supplier awarded",
		"request_id", requestID, "supplier_id", supplierID, "awarded_by", principal.ID)
	return s.requestRepo.GetByID(ctx, requestID)
}

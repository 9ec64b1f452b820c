package service

import (
	"context"
	"sort"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/repository"
)

// notAssignedWindow is how close a deadline has to be before an unawarded
// open request raises a not-assigned alert.
const notAssignedWindow = 72 * time.Hour

type reportingService struct {
	budgetRepo  repository.BudgetRepository
	requestRepo repository.SupplyRequestRepository
}

func NewReportingService(budgetRepo repository.BudgetRepository, requestRepo repository.SupplyRequestRepository) ReportingService {
	return &reportingService{budgetRepo: budgetRepo, requestRepo: requestRepo}
}

func (s *reportingService) CurrentUtilization(ctx context.Context, ownerID int32) (*domain.BudgetUtilization, error) {
	now := time.Now()
	period, err := s.budgetRepo.GetPeriod(ctx, ownerID, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}
	return utilizationOf(period), nil
}

func (s *reportingService) MonthlyUtilization(ctx context.Context, ownerID int32, year int) ([]domain.BudgetUtilization, error) {
	periods, err := s.budgetRepo.ListPeriodsByYear(ctx, ownerID, year)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var series []domain.BudgetUtilization
	for i := range periods {
		p := &periods[i]
		if year == now.Year() && p.Month > int(now.Month()) {
			continue
		}
		series = append(series, *utilizationOf(p))
	}
	return series, nil
}

func (s *reportingService) CategorySpend(ctx context.Context, from, to time.Time) ([]domain.CategorySpend, error) {
	closed, err := s.requestRepo.ListClosedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[domain.SupplyCategory]*domain.CategorySpend)
	for i := range closed {
		req := &closed[i]
		won := req.AwardedBid()
		if won == nil {
			continue
		}
		entry, ok := byCategory[req.Category]
		if !ok {
			entry = &domain.CategorySpend{Category: req.Category}
			byCategory[req.Category] = entry
		}
		entry.Total += won.OfferPrice
		entry.Requests++
	}

	spend := make([]domain.CategorySpend, 0, len(byCategory))
	for _, entry := range byCategory {
		spend = append(spend, *entry)
	}
	sort.Slice(spend, func(i, j int) bool { return spend[i].Total > spend[j].Total })
	return spend, nil
}

func (s *reportingService) Alerts(ctx context.Context) ([]domain.RequestAlert, error) {
	now := time.Now()

	overdue, err := s.requestRepo.ListOpenPastDeadline(ctx, now)
	if err != nil {
		return nil, err
	}
	approaching, err := s.requestRepo.ListOpenDeadlineWithin(ctx, now, notAssignedWindow)
	if err != nil {
		return nil, err
	}

	alerts := make([]domain.RequestAlert, 0, len(overdue)+len(approaching))
	for i := range overdue {
		alerts = append(alerts, alertFor(domain.AlertOverdue, &overdue[i]))
	}
	for i := range approaching {
		alerts = append(alerts, alertFor(domain.AlertNotAssigned, &approaching[i]))
	}
	return alerts, nil
}

func alertFor(kind domain.AlertKind, req *domain.SupplyRequest) domain.RequestAlert {
	return domain.RequestAlert{
		Kind:        kind,
		RequestID:   req.ID,
		RequestCode: req.Code,
		Title:       req.Title,
		Deadline:    req.ApplicationDeadline,
		BidCount:    int32(len(req.Bids)),
	}
}

func utilizationOf(p *domain.BudgetPeriod) *domain.BudgetUtilization {
	return &domain.BudgetUtilization{
		Month:           p.Month,
		Year:            p.Year,
		BudgetAmount:    p.BudgetAmount,
		RemainingAmount: p.RemainingAmount,
		SpentAmount:     p.BudgetAmount - p.RemainingAmount,
		Utilization:     p.Utilization(),
	}
}

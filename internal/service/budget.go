package service

import (
	"context"
	"errors"
	"fmt"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/logger"
	"firedept-backoffice/internal/repository"
)

type budgetService struct {
	budgetRepo repository.BudgetRepository
}

func NewBudgetService(budgetRepo repository.BudgetRepository) BudgetService {
	return &budgetService{budgetRepo: budgetRepo}
}

func (s *budgetService) InitializePeriod(ctx context.Context, ownerID int32, month, year int, seedAmount int64) (*domain.BudgetPeriod, error) {
	if month < 1 || month > 12 {
		return nil, domain.NewValidationError("month", "must be between 1 and 12")
	}
	if seedAmount < 0 {
		return nil, domain.NewValidationError("seed_amount", "must not be negative")
	}

	period := &domain.BudgetPeriod{
		OwnerID:         ownerID,
		Month:           month,
		Year:            year,
		BudgetAmount:    seedAmount,
		RemainingAmount: seedAmount,
	}

	// Carry-forward: the previous calendar month's earmarked revenue opens
	// with the new period.
	prevMonth, prevYear := domain.PreviousPeriod(month, year)
	prev, err := s.budgetRepo.GetPeriod(ctx, ownerID, prevMonth, prevYear)
	switch {
	case err == nil:
		period.BudgetAmount += prev.Revenue
		period.RemainingAmount += prev.Revenue
	case errors.Is(err, domain.ErrPeriodNotFound):
		// first period for this owner, nothing to roll over
	default:
		return nil, fmt.Errorf("looking up previous period: %w", err)
	}

	if err := s.budgetRepo.CreatePeriod(ctx, period); err != nil {
		return nil, err
	}

	logger.Info("budget period initialized",
		"owner_id", ownerID, "month", month, "year", year, "budget_amount", period.BudgetAmount)
	return period, nil
}

func (s *budgetService) TransferAllocation(ctx context.Context, fromOwnerID, toOwnerID int32, amount int64, month, year int) (*domain.BudgetPeriod, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	if fromOwnerID == toOwnerID {
		return nil, domain.NewValidationError("to_owner_id", "cannot transfer to the same owner")
	}

	// Validate before debiting: a duplicate target period must fail the whole
	// operation without touching the source balance.
	if _, err := s.budgetRepo.GetPeriod(ctx, toOwnerID, month, year); err == nil {
		return nil, domain.ErrDuplicatePeriod
	} else if !errors.Is(err, domain.ErrPeriodNotFound) {
		return nil, err
	}

	if err := s.budgetRepo.Debit(ctx, fromOwnerID, month, year, amount); err != nil {
		return nil, err
	}

	created, err := s.InitializePeriod(ctx, toOwnerID, month, year, amount)
	if err != nil {
		// A racing transfer created the target period after our check. Give
		// the money back so the source period is exactly as it was.
		if creditErr := s.budgetRepo.Credit(ctx, fromOwnerID, month, year, amount); creditErr != nil {
			logger.Error("failed to compensate transfer debit",
				"from_owner_id", fromOwnerID, "month", month, "year", year, "amount", amount, "error", creditErr)
			return nil, creditErr
		}
		return nil, err
	}

	logger.Info("budget allocation transferred",
		"from_owner_id", fromOwnerID, "to_owner_id", toOwnerID, "month", month, "year", year, "amount", amount)
	return created, nil
}

func (s *budgetService) GetPeriod(ctx context.Context, ownerID int32, month, year int) (*domain.BudgetPeriod, error) {
	return s.budgetRepo.GetPeriod(ctx, ownerID, month, year)
}

func (s *budgetService) CanAfford(ctx context.Context, ownerID int32, month, year int, amount int64) (bool, error) {
	period, err := s.budgetRepo.GetPeriod(ctx, ownerID, month, year)
	if err != nil {
		return false, err
	}
	return period.RemainingAmount >= amount, nil
}

func (s *budgetService) Debit(ctx context.Context, ownerID int32, month, year int, amount int64) error {
	if amount <= 0 {
		return domain.NewValidationError("amount", "must be positive")
	}
	return s.budgetRepo.Debit(ctx, ownerID, month, year, amount)
}

func (s *budgetService) Credit(ctx context.Context, ownerID int32, month, year int, amount int64) error {
	if amount <= 0 {
		return domain.NewValidationError("amount", "must be positive")
	}
	return s.budgetRepo.Credit(ctx, ownerID, month, year, amount)
}

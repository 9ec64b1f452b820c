package service

import (
	"context"
	"strings"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/logger"
	"firedept-backoffice/internal/repository"
	"firedept-backoffice/internal/utils"
)

type payrollService struct {
	salaryRepo repository.SalaryRepository
	txRepo     repository.TransactionRepository
	budgetSvc  BudgetService
}

func NewPayrollService(salaryRepo repository.SalaryRepository, txRepo repository.TransactionRepository, budgetSvc BudgetService) PayrollService {
	return &payrollService{salaryRepo: salaryRepo, txRepo: txRepo, budgetSvc: budgetSvc}
}

func (s *payrollService) CreateSalary(ctx context.Context, input CreateSalaryInput) (*domain.Salary, error) {
	if strings.TrimSpace(input.EmployeeName) == "" {
		return nil, domain.NewValidationError("employee_name", "must not be empty")
	}
	if input.Month < 1 || input.Month > 12 {
		return nil, domain.NewValidationError("month", "must be between 1 and 12")
	}
	if input.AttendedDays < 0 || input.AbsentDays < 0 {
		return nil, domain.NewValidationError("attendance", "day counts must not be negative")
	}
	if input.BaseSalary <= 0 {
		return nil, domain.NewValidationError("base_salary", "must be positive")
	}

	salary := &domain.Salary{
		EmployeeID:   input.EmployeeID,
		EmployeeName: input.EmployeeName,
		Month:        input.Month,
		Year:         input.Year,
		AttendedDays: input.AttendedDays,
		AbsentDays:   input.AbsentDays,
		BaseSalary:   input.BaseSalary,
		FinalSalary:  utils.ProratedSalary(input.BaseSalary, input.AttendedDays, input.AbsentDays),
		Status:       domain.SalaryStatusPending,
	}
	if err := s.salaryRepo.Create(ctx, salary); err != nil {
		return nil, err
	}
	return salary, nil
}

func (s *payrollService) PayOrRejectSalary(ctx context.Context, actorID, salaryID int32, action domain.SalaryAction) (*domain.Salary, error) {
	salary, err := s.salaryRepo.GetByID(ctx, salaryID)
	if err != nil {
		return nil, err
	}
	if salary.Status != domain.SalaryStatusPending {
		return nil, domain.ErrSalaryFinalized
	}

	switch action {
	case domain.SalaryActionReject:
		if err := s.salaryRepo.SetStatus(ctx, salaryID, domain.SalaryStatusRejected); err != nil {
			return nil, err
		}
		salary.Status = domain.SalaryStatusRejected
		logger.Info("salary rejected", "salary_id", salaryID, "actor_id", actorID)
		return salary, nil

	case domain.SalaryActionPay:
		now := time.Now()
		month, year := int(now.Month()), now.Year()
		// Atomic conditional debit against the actor's current-month period.
		// On insufficient funds the salary stays pending.
		if err := s.budgetSvc.Debit(ctx, actorID, month, year, salary.FinalSalary); err != nil {
			return nil, err
		}
		if err := s.salaryRepo.SetStatus(ctx, salaryID, domain.SalaryStatusPaid); err != nil {
			// A racing decision finalized the record between our read and this
			// write; return the money so the period is unchanged.
			if creditErr := s.budgetSvc.Credit(ctx, actorID, month, year, salary.FinalSalary); creditErr != nil {
				logger.Error("failed to compensate salary debit",
					"salary_id", salaryID, "actor_id", actorID, "amount", salary.FinalSalary, "error", creditErr)
				return nil, creditErr
			}
			return nil, err
		}
		salary.Status = domain.SalaryStatusPaid
		logger.Info("salary paid", "salary_id", salaryID, "actor_id", actorID, "amount", salary.FinalSalary)
		return salary, nil

	default:
		return nil, domain.NewValidationError("action", "must be pay or reject")
	}
}

func (s *payrollService) ListSalaries(ctx context.Context, status domain.SalaryStatus) ([]domain.Salary, error) {
	return s.salaryRepo.ListByStatus(ctx, status)
}

// RecordTransaction appends to the expenditure log. It deliberately does not
// check or debit any budget period; operational expenses and payroll run as
// two separate books.
func (s *payrollService) RecordTransaction(ctx context.Context, actorID int32, amount int64, txType domain.TransactionType, description string, date time.Time) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	if !domain.ValidTransactionType(txType) {
		return nil, domain.NewValidationError("type", "unknown transaction type")
	}
	if date.IsZero() {
		date = time.Now()
	}

	tx := &domain.Transaction{
		RecordedBy:  actorID,
		Amount:      amount,
		Type:        txType,
		Description: description,
		Date:        date,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	logger.Info("transaction recorded", "transaction_id", tx.ID, "type", tx.Type, "amount", tx.Amount)
	return tx, nil
}

func (s *payrollService) ListTransactions(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	return s.txRepo.ListBetween(ctx, from, to)
}

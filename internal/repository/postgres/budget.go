package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/repository"

	"github.com/lib/pq"
)

type budgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) repository.BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) CreatePeriod(ctx context.Context, p *domain.BudgetPeriod) error {
	query := `INSERT INTO budget_periods (owner_id, month, year, budget_amount, remaining_amount, revenue, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, p.OwnerID, p.Month, p.Year, p.BudgetAmount, p.RemainingAmount, p.Revenue, now, now).Scan(&p.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicatePeriod
	}
	return err
}

func (r *budgetRepository) GetPeriod(ctx context.Context, ownerID int32, month, year int) (*domain.BudgetPeriod, error) {
	p := &domain.BudgetPeriod{}
	query := `SELECT id, owner_id, month, year, budget_amount, remaining_amount, revenue, created_on, updated_on
	          FROM budget_periods WHERE owner_id = $1 AND month = $2 AND year = $3`
	err := r.db.QueryRowContext(ctx, query, ownerID, month, year).
		Scan(&p.ID, &p.OwnerID, &p.Month, &p.Year, &p.BudgetAmount, &p.RemainingAmount, &p.Revenue, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPeriodNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Debit is the only way money leaves a period. The balance check lives in the
// WHERE clause so concurrent debits cannot both pass against a stale read.
func (r *budgetRepository) Debit(ctx context.Context, ownerID int32, month, year int, amount int64) error {
	query := `UPDATE budget_periods SET remaining_amount = remaining_amount - $1, updated_on = $2
	          WHERE owner_id = $3 AND month = $4 AND year = $5 AND remaining_amount >= $1`
	res, err := r.db.ExecContext(ctx, query, amount, time.Now(), ownerID, month, year)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish a missing period from a failed balance check.
		if _, err := r.GetPeriod(ctx, ownerID, month, year); err != nil {
			return err
		}
		return domain.ErrInsufficientFunds
	}
	return nil
}

func (r *budgetRepository) Credit(ctx context.Context, ownerID int32, month, year int, amount int64) error {
	query := `UPDATE budget_periods SET remaining_amount = remaining_amount + $1, updated_on = $2
	          WHERE owner_id = $3 AND month = $4 AND year = $5`
	res, err := r.db.ExecContext(ctx, query, amount, time.Now(), ownerID, month, year)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPeriodNotFound
	}
	return nil
}

func (r *budgetRepository) ListPeriodsByYear(ctx context.Context, ownerID int32, year int) ([]domain.BudgetPeriod, error) {
	query := `SELECT id, owner_id, month, year, budget_amount, remaining_amount, revenue, created_on, updated_on
	          FROM budget_periods WHERE owner_id = $1 AND year = $2 ORDER BY month`
	rows, err := r.db.QueryContext(ctx, query, ownerID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []domain.BudgetPeriod
	for rows.Next() {
		var p domain.BudgetPeriod
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Month, &p.Year, &p.BudgetAmount, &p.RemainingAmount, &p.Revenue, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

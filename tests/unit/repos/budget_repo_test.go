package repos

import (
	"context"
	"testing"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBudgetRepository_CreatePeriod(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBudgetRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := &domain.BudgetPeriod{
			OwnerID:         1,
			Month:           4,
			Year:            2026,
			BudgetAmount:    1_000_000,
			RemainingAmount: 1_000_000,
		}

		mock.ExpectQuery("INSERT INTO budget_periods").
			WithArgs(p.OwnerID, p.Month, p.Year, p.BudgetAmount, p.RemainingAmount, p.Revenue, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.CreatePeriod(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), p.ID)
	})

	t.Run("DuplicateMonth", func(t *testing.T) {
		p := &domain.BudgetPeriod{OwnerID: 1, Month: 4, Year: 2026}

		mock.ExpectQuery("INSERT INTO budget_periods").
			WithArgs(p.OwnerID, p.Month, p.Year, p.BudgetAmount, p.RemainingAmount, p.Revenue, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreatePeriod(ctx, p)
		assert.ErrorIs(t, err, domain.ErrDuplicatePeriod)
	})
}

func TestBudgetRepository_GetPeriod(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBudgetRepository(db)
	ctx := context.Background()

	columns := []string{"id", "owner_id", "month", "year", "budget_amount", "remaining_amount", "revenue", "created_on", "updated_on"}

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM budget_periods WHERE owner_id").
			WithArgs(int32(1), 4, 2026).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(1, 1, 4, 2026, 1_000_000, 800_000, 25_000, now, now))

		p, err := repo.GetPeriod(ctx, 1, 4, 2026)
		assert.NoError(t, err)
		assert.Equal(t, int64(800_000), p.RemainingAmount)
		assert.Equal(t, int64(25_000), p.Revenue)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM budget_periods WHERE owner_id").
			WithArgs(int32(1), 5, 2026).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetPeriod(ctx, 1, 5, 2026)
		assert.ErrorIs(t, err, domain.ErrPeriodNotFound)
	})
}

func TestBudgetRepository_Debit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBudgetRepository(db)
	ctx := context.Background()

	columns := []string{"id", "owner_id", "month", "year", "budget_amount", "remaining_amount", "revenue", "created_on", "updated_on"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE budget_periods SET remaining_amount = remaining_amount -").
			WithArgs(int64(5_000), sqlmock.AnyArg(), int32(1), 4, 2026).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Debit(ctx, 1, 4, 2026, 5_000)
		assert.NoError(t, err)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		// Guarded update matches nothing, but the period itself exists.
		mock.ExpectExec("UPDATE budget_periods SET remaining_amount = remaining_amount -").
			WithArgs(int64(5_000), sqlmock.AnyArg(), int32(1), 4, 2026).
			WillReturnResult(sqlmock.NewResult(0, 0))
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM budget_periods WHERE owner_id").
			WithArgs(int32(1), 4, 2026).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(1, 1, 4, 2026, 10_000, 3_000, 0, now, now))

		err := repo.Debit(ctx, 1, 4, 2026, 5_000)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("PeriodMissing", func(t *testing.T) {
		mock.ExpectExec("UPDATE budget_periods SET remaining_amount = remaining_amount -").
			WithArgs(int64(5_000), sqlmock.AnyArg(), int32(1), 9, 2026).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM budget_periods WHERE owner_id").
			WithArgs(int32(1), 9, 2026).
			WillReturnRows(sqlmock.NewRows(columns))

		err := repo.Debit(ctx, 1, 9, 2026, 5_000)
		assert.ErrorIs(t, err, domain.ErrPeriodNotFound)
	})
}

func TestBudgetRepository_Credit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBudgetRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE budget_periods SET remaining_amount = remaining_amount \\+").
			WithArgs(int64(5_000), sqlmock.AnyArg(), int32(1), 4, 2026).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Credit(ctx, 1, 4, 2026, 5_000)
		assert.NoError(t, err)
	})

	t.Run("PeriodMissing", func(t *testing.T) {
		mock.ExpectExec("UPDATE budget_periods SET remaining_amount = remaining_amount \\+").
			WithArgs(int64(5_000), sqlmock.AnyArg(), int32(1), 9, 2026).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Credit(ctx, 1, 9, 2026, 5_000)
		assert.ErrorIs(t, err, domain.ErrPeriodNotFound)
	})
}

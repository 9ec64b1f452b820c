package repository

import (
	"context"
	"time"

	"firedept-backoffice/internal/domain"
)

// BudgetRepository owns the ledger periods. Debit and Credit are atomic
// conditional updates at the storage layer; callers never read-then-write a
// balance.
type BudgetRepository interface {
	CreatePeriod(ctx context.Context, period *domain.BudgetPeriod) error
	GetPeriod(ctx context.Context, ownerID int32, month, year int) (*domain.BudgetPeriod, error)
	// Debit subtracts amount iff remaining_amount >= amount, in one statement.
	// Returns ErrInsufficientFunds or ErrPeriodNotFound otherwise.
	Debit(ctx context.Context, ownerID int32, month, year int, amount int64) error
	// Credit adds amount unconditionally. Used for rollover funding and for
	// compensating a failed transfer.
	Credit(ctx context.Context, ownerID int32, month, year int, amount int64) error
	ListPeriodsByYear(ctx context.Context, ownerID int32, year int) ([]domain.BudgetPeriod, error)
}

type SupplyRequestRepository interface {
	Create(ctx context.Context, req *domain.SupplyRequest) error
	GetByID(ctx context.Context, id int32) (*domain.SupplyRequest, error)
	List(ctx context.Context) ([]domain.SupplyRequest, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.SupplyRequest, error)
	ListPublicOpen(ctx context.Context) ([]domain.SupplyRequest, error)

	AddBid(ctx context.Context, bid *domain.Bid) error
	UpdateBid(ctx context.Context, bid *domain.Bid) error
	DeleteBid(ctx context.Context, requestID, supplierID int32) error

	// Award sets the assigned supplier and closes the request in a single
	// compare-and-swap on status OPEN -> CLOSED. Returns ErrRequestClosed when
	// a concurrent award got there first.
	Award(ctx context.Context, requestID, supplierID int32) error

	ListClosedBetween(ctx context.Context, from, to time.Time) ([]domain.SupplyRequest, error)
	ListOpenPastDeadline(ctx context.Context, now time.Time) ([]domain.SupplyRequest, error)
	ListOpenDeadlineWithin(ctx context.Context, now time.Time, window time.Duration) ([]domain.SupplyRequest, error)
}

type SalaryRepository interface {
	Create(ctx context.Context, salary *domain.Salary) error
	GetByID(ctx context.Context, id int32) (*domain.Salary, error)
	// SetStatus transitions PENDING -> status via compare-and-swap; returns
	// ErrSalaryFinalized when the record is no longer pending.
	SetStatus(ctx context.Context, id int32, status domain.SalaryStatus) error
	ListByStatus(ctx context.Context, status domain.SalaryStatus) ([]domain.Salary, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id int32) (*domain.Supplier, error)
	GetByEmail(ctx context.Context, email string) (*domain.Supplier, error)
}

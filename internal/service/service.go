package service

import (
	"context"
	"time"

	"firedept-backoffice/internal/domain"
)

type BudgetService interface {
	// InitializePeriod creates the (owner, month, year) period seeded with
	// seedAmount, applying the carry-forward rule from the previous calendar
	// month's revenue.
	InitializePeriod(ctx context.Context, ownerID int32, month, year int, seedAmount int64) (*domain.BudgetPeriod, error)
	// TransferAllocation funds toOwner's period for (month, year) out of
	// fromOwner's. At most one successful transfer per (toOwner, month, year).
	TransferAllocation(ctx context.Context, fromOwnerID, toOwnerID int32, amount int64, month, year int) (*domain.BudgetPeriod, error)
	GetPeriod(ctx context.Context, ownerID int32, month, year int) (*domain.BudgetPeriod, error)
	CanAfford(ctx context.Context, ownerID int32, month, year int, amount int64) (bool, error)
	Debit(ctx context.Context, ownerID int32, month, year int, amount int64) error
	Credit(ctx context.Context, ownerID int32, month, year int, amount int64) error
}

type CreateRequestInput struct {
	Title       string
	Description string
	Category    domain.SupplyCategory
	Quantity    int32
	Unit        string
	Deadline    time.Time
}

type ProcurementService interface {
	CreateRequest(ctx context.Context, principal domain.Principal, input CreateRequestInput) (*domain.SupplyRequest, error)
	// ListRequests applies the visibility contract: supply managers see all,
	// suppliers see public open requests, everyone else sees their own.
	ListRequests(ctx context.Context, principal domain.Principal) ([]domain.SupplyRequest, error)
	GetRequest(ctx context.Context, principal domain.Principal, id int32) (*domain.SupplyRequest, error)
	SubmitBid(ctx context.Context, requestID, supplierID int32, offerPrice int64, notes string) (*domain.Bid, error)
	UpdateBid(ctx context.Context, requestID, supplierID int32, offerPrice int64, notes string) (*domain.Bid, error)
	RetractBid(ctx context.Context, requestID, supplierID int32) error
	AwardSupplier(ctx context.Context, principal domain.Principal, requestID, supplierID int32) (*domain.SupplyRequest, error)
}

type CreateSalaryInput struct {
	EmployeeID   int32
	EmployeeName string
	Month        int
	Year         int
	AttendedDays int32
	AbsentDays   int32
	BaseSalary   int64
}

type PayrollService interface {
	CreateSalary(ctx context.Context, input CreateSalaryInput) (*domain.Salary, error)
	// PayOrRejectSalary resolves a pending salary. Paying debits the actor's
	// current-month budget period by the final salary; rejecting never touches
	// the ledger. Either way the record is terminal afterwards.
	PayOrRejectSalary(ctx context.Context, actorID, salaryID int32, action domain.SalaryAction) (*domain.Salary, error)
	ListSalaries(ctx context.Context, status domain.SalaryStatus) ([]domain.Salary, error)
	RecordTransaction(ctx context.Context, actorID int32, amount int64, txType domain.TransactionType, description string, date time.Time) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
}

type ReportingService interface {
	CurrentUtilization(ctx context.Context, ownerID int32) (*domain.BudgetUtilization, error)
	CategorySpend(ctx context.Context, from, to time.Time) ([]domain.CategorySpend, error)
	MonthlyUtilization(ctx context.Context, ownerID int32, year int) ([]domain.BudgetUtilization, error)
	Alerts(ctx context.Context) ([]domain.RequestAlert, error)
}

type AuthService interface {
	LoginUser(ctx context.Context, email, password string) (string, *domain.User, error)
	LoginSupplier(ctx context.Context, email, password string) (string, *domain.Supplier, error)
}

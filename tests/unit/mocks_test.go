package unit

import (
	"context"
	"time"

	"firedept-backoffice/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBudgetRepo
type MockBudgetRepo struct {
	mock.Mock
}

func (m *MockBudgetRepo) CreatePeriod(ctx context.Context, period *domain.BudgetPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}
func (m *MockBudgetRepo) GetPeriod(ctx context.Context, ownerID int32, month, year int) (*domain.BudgetPeriod, error) {
	args := m.Called(ctx, ownerID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetPeriod), args.Error(1)
}
func (m *MockBudgetRepo) Debit(ctx context.Context, ownerID int32, month, year int, amount int64) error {
	args := m.Called(ctx, ownerID, month, year, amount)
	return args.Error(0)
}
func (m *MockBudgetRepo) Credit(ctx context.Context, ownerID int32, month, year int, amount int64) error {
	args := m.Called(ctx, ownerID, month, year, amount)
	return args.Error(0)
}
func (m *MockBudgetRepo) ListPeriodsByYear(ctx context.Context, ownerID int32, year int) ([]domain.BudgetPeriod, error) {
	args := m.Called(ctx, ownerID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetPeriod), args.Error(1)
}

// MockSupplyRequestRepo
type MockSupplyRequestRepo struct {
	mock.Mock
}

func (m *MockSupplyRequestRepo) Create(ctx context.Context, req *domain.SupplyRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockSupplyRequestRepo) GetByID(ctx context.Context, id int32) (*domain.SupplyRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyRequest), args.Error(1)
}
func (m *MockSupplyRequestRepo) List(ctx context.Context) ([]domain.SupplyRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyRequest), args.Error(1)
}
func (m *MockSupplyRequestRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.SupplyRequest, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyRequest), args.Error(1)
}
func (m *MockSupplyRequestRepo) ListPublicOpen(ctx context.Context) ([]domain.SupplyRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyRequest), args.Error(1)
}
func (m *MockSupplyRequestRepo) AddBid(ctx context.Context, bid *domain.Bid) error {
	args := m.Called(ctx, bid)
	return args.Error(0)
}
func (m *MockSupplyRequestRepo) UpdateBid(ctx context.Context, bid *domain.Bid) error {
	args := m.Called(ctx, bid)
	return args.Error(0)
}
func (m *MockSupplyRequestRepo) DeleteBid(ctx context.Context, requestID, supplierID int32) error {
	args := m.Called(ctx, requestID, supplierID)
	return args.Error(0)
}
func (m *MockSupplyRequestRepo) Award(ctx context.Context, requestID, supplierID int32) error {
	args := m.Called(ctx, requestID, supplierID)
	return args.Error(0)
}
func (m *MockSupplyRequestRepo) ListClosedBetween(ctx context.Context, from, to time.Time) ([]domain.SupplyRequest, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyRequest), args.Error(1)
}
func (m *MockSupplyRequestRepo) ListOpenPastDeadline(ctx context.Context, now time.Time) ([]domain.SupplyRequest, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyRequest), args.Error(1)
}
func (m *MockSupplyRequestRepo) ListOpenDeadlineWithin(ctx context.Context, now time.Time, window time.Duration) ([]domain.SupplyRequest, error) {
	args := m.Called(ctx, now, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyRequest), args.Error(1)
}

// MockSalaryRepo
type MockSalaryRepo struct {
	mock.Mock
}

func (m *MockSalaryRepo) Create(ctx context.Context, salary *domain.Salary) error {
	args := m.Called(ctx, salary)
	return args.Error(0)
}
func (m *MockSalaryRepo) GetByID(ctx context.Context, id int32) (*domain.Salary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salary), args.Error(1)
}
func (m *MockSalaryRepo) SetStatus(ctx context.Context, id int32, status domain.SalaryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockSalaryRepo) ListByStatus(ctx context.Context, status domain.SalaryStatus) ([]domain.Salary, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Salary), args.Error(1)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockSupplierRepo
type MockSupplierRepo struct {
	mock.Mock
}

func (m *MockSupplierRepo) Create(ctx context.Context, supplier *domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}
func (m *MockSupplierRepo) GetByID(ctx context.Context, id int32) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}
func (m *MockSupplierRepo) GetByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

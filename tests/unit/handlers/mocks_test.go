package handlers

import (
	"context"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockBudgetService
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) InitializePeriod(ctx context.Context, ownerID int32, month, year int, seedAmount int64) (*domain.BudgetPeriod, error) {
	args := m.Called(ctx, ownerID, month, year, seedAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetPeriod), args.Error(1)
}
func (m *MockBudgetService) TransferAllocation(ctx context.Context, fromOwnerID, toOwnerID int32, amount int64, month, year int) (*domain.BudgetPeriod, error) {
	args := m.Called(ctx, fromOwnerID, toOwnerID, amount, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetPeriod), args.Error(1)
}
func (m *MockBudgetService) GetPeriod(ctx context.Context, ownerID int32, month, year int) (*domain.BudgetPeriod, error) {
	args := m.Called(ctx, ownerID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetPeriod), args.Error(1)
}
func (m *MockBudgetService) CanAfford(ctx context.Context, ownerID int32, month, year int, amount int64) (bool, error) {
	args := m.Called(ctx, ownerID, month, year, amount)
	return args.Bool(0), args.Error(1)
}
func (m *MockBudgetService) Debit(ctx context.Context, ownerID int32, month, year int, amount int64) error {
	args := m.Called(ctx, ownerID, month, year, amount)
	return args.Error(0)
}
func (m *MockBudgetService) Credit(ctx context.Context, ownerID int32, month, year int, amount int64) error {
	args := m.Called(ctx, ownerID, month, year, amount)
	return args.Error(0)
}

// MockProcurementService
type MockProcurementService struct {
	mock.Mock
}

func (m *MockProcurementService) CreateRequest(ctx context.Context, principal domain.Principal, input service.CreateRequestInput) (*domain.SupplyRequest, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyRequest), args.Error(1)
}
func (m *MockProcurementService) ListRequests(ctx context.Context, principal domain.Principal) ([]domain.SupplyRequest, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyRequest), args.Error(1)
}
func (m *MockProcurementService) GetRequest(ctx context.Context, principal domain.Principal, id int32) (*domain.SupplyRequest, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyRequest), args.Error(1)
}
func (m *MockProcurementService) SubmitBid(ctx context.Context, requestID, supplierID int32, offerPrice int64, notes string) (*domain.Bid, error) {
	args := m.Called(ctx, requestID, supplierID, offerPrice, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bid), args.Error(1)
}
func (m *MockProcurementService) UpdateBid(ctx context.Context, requestID, supplierID int32, offerPrice int64, notes string) (*domain.Bid, error) {
	args := m.Called(ctx, requestID, supplierID, offerPrice, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bid), args.Error(1)
}
func (m *MockProcurementService) RetractBid(ctx context.Context, requestID, supplierID int32) error {
	args := m.Called(ctx, requestID, supplierID)
	return args.Error(0)
}
func (m *MockProcurementService) AwardSupplier(ctx context.Context, principal domain.Principal, requestID, supplierID int32) (*domain.SupplyRequest, error) {
	args := m.Called(ctx, principal, requestID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyRequest), args.Error(1)
}

// MockPayrollService
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) CreateSalary(ctx context.Context, input service.CreateSalaryInput) (*domain.Salary, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salary), args.Error(1)
}
func (m *MockPayrollService) PayOrRejectSalary(ctx context.Context, actorID, salaryID int32, action domain.SalaryAction) (*domain.Salary, error) {
	args := m.Called(ctx, actorID, salaryID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salary), args.Error(1)
}
func (m *MockPayrollService) ListSalaries(ctx context.Context, status domain.SalaryStatus) ([]domain.Salary, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Salary), args.Error(1)
}
func (m *MockPayrollService) RecordTransaction(ctx context.Context, actorID int32, amount int64, txType domain.TransactionType, description string, date time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, actorID, amount, txType, description, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockPayrollService) ListTransactions(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockReportingService
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) CurrentUtilization(ctx context.Context, ownerID int32) (*domain.BudgetUtilization, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetUtilization), args.Error(1)
}
func (m *MockReportingService) CategorySpend(ctx context.Context, from, to time.Time) ([]domain.CategorySpend, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySpend), args.Error(1)
}
func (m *MockReportingService) MonthlyUtilization(ctx context.Context, ownerID int32, year int) ([]domain.BudgetUtilization, error) {
	args := m.Called(ctx, ownerID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetUtilization), args.Error(1)
}
func (m *MockReportingService) Alerts(ctx context.Context) ([]domain.RequestAlert, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequestAlert), args.Error(1)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) LoginUser(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockAuthService) LoginSupplier(ctx context.Context, email, password string) (string, *domain.Supplier, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Supplier), args.Error(2)
}

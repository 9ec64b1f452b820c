package postgres

import (
	"database/sql"

	"firedept-backoffice/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BudgetRepository
	repository.SupplyRequestRepository
	repository.SalaryRepository
	repository.TransactionRepository
	repository.UserRepository
	repository.SupplierRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		BudgetRepository:        NewBudgetRepository(db),
		SupplyRequestRepository: NewSupplyRequestRepository(db),
		SalaryRepository:        NewSalaryRepository(db),
		TransactionRepository:   NewTransactionRepository(db),
		UserRepository:          NewUserRepository(db),
		SupplierRepository:      NewSupplierRepository(db),
	}
}

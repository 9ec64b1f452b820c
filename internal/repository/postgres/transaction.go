package postgres

import (
	"context"
	"database/sql"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (recorded_by, amount, type, description, date, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, tx.RecordedBy, tx.Amount, tx.Type, tx.Description, tx.Date, time.Now()).Scan(&tx.ID)
}

func (r *transactionRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	query := `SELECT id, recorded_by, amount, type, description, date, created_on
	          FROM transactions WHERE date >= $1 AND date <= $2 ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.RecordedBy, &tx.Amount, &tx.Type, &tx.Description, &tx.Date, &tx.CreatedOn); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

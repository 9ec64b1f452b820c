package domain

import "time"

type TransactionType string

const (
	TransactionTypeOperational TransactionType = "OPERATIONAL"
	TransactionTypeMaintenance TransactionType = "MAINTENANCE"
	TransactionTypeTraining    TransactionType = "TRAINING"
	TransactionTypeUtilities   TransactionType = "UTILITIES"
	TransactionTypeOther       TransactionType = "OTHER"
)

func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeOperational, TransactionTypeMaintenance,
		TransactionTypeTraining, TransactionTypeUtilities, TransactionTypeOther:
		return true
	}
	return false
}

// Transaction is an append-only expenditure log entry. It is a separate book
// from the budget periods: recording one does not debit any period, while
// salary payment does. Keep the asymmetry; it mirrors how the department
// actually runs its two ledgers.
type Transaction struct {
	ID          int32           `json:"id"`
	RecordedBy  int32           `json:"recorded_by"`
	Amount      int64           `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedOn   time.Time       `json:"created_on"`
}

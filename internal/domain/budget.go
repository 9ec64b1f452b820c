package domain

import "time"

// BudgetPeriod is one owner's spendable ledger balance for a month/year.
// (owner_id, month, year) is unique at the storage layer. RemainingAmount
// only moves through atomic debit/credit operations.
type BudgetPeriod struct {
	ID              int32     `json:"id"`
	OwnerID         int32     `json:"owner_id"`
	Month           int       `json:"month"` // 1-12
	Year            int       `json:"year"`
	BudgetAmount    int64     `json:"budget_amount"`
	RemainingAmount int64     `json:"remaining_amount"`
	Revenue         int64     `json:"revenue"` // earmarked to roll into the next period
	CreatedOn       time.Time `json:"created_on"`
	UpdatedOn       time.Time `json:"updated_on"`
}

// Utilization returns the spent fraction of the period ceiling, 0 when the
// ceiling is zero.
func (p *BudgetPeriod) Utilization() float64 {
	if p.BudgetAmount == 0 {
		return 0
	}
	return float64(p.BudgetAmount-p.RemainingAmount) / float64(p.BudgetAmount)
}

// PreviousPeriod returns the calendar month preceding (month, year),
// wrapping January back to December of the prior year.
func PreviousPeriod(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

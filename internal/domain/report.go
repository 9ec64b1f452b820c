package domain

import "time"

// BudgetUtilization is the read-side view of one period's spend.
type BudgetUtilization struct {
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	BudgetAmount    int64   `json:"budget_amount"`
	RemainingAmount int64   `json:"remaining_amount"`
	SpentAmount     int64   `json:"spent_amount"`
	Utilization     float64 `json:"utilization"`
}

// CategorySpend aggregates awarded bid prices of closed requests per category.
type CategorySpend struct {
	Category SupplyCategory `json:"category"`
	Total    int64          `json:"total"`
	Requests int32          `json:"requests"`
}

type AlertKind string

const (
	AlertOverdue     AlertKind = "overdue"      // open and past its deadline
	AlertNotAssigned AlertKind = "not-assigned" // open, deadline within 72h, no award
)

// RequestAlert flags a supply request that needs attention.
type RequestAlert struct {
	Kind        AlertKind `json:"kind"`
	RequestID   int32     `json:"request_id"`
	RequestCode string    `json:"request_code"`
	Title       string    `json:"title"`
	Deadline    time.Time `json:"deadline"`
	BidCount    int32     `json:"bid_count"`
}

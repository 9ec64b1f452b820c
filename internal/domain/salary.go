package domain

import "time"

type SalaryStatus string

const (
	SalaryStatusPending  SalaryStatus = "PENDING"
	SalaryStatusPaid     SalaryStatus = "PAID"
	SalaryStatusRejected SalaryStatus = "REJECTED"
)

// Salary is a payroll record for one employee and month. Paying it debits the
// finance budget period by exactly FinalSalary; rejecting it never touches the
// ledger. Both outcomes are terminal.
type Salary struct {
	ID           int32        `json:"id"`
	EmployeeID   int32        `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	Month        int          `json:"month"`
	Year         int          `json:"year"`
	AttendedDays int32        `json:"attended_days"`
	AbsentDays   int32        `json:"absent_days"`
	BaseSalary   int64        `json:"base_salary"`
	FinalSalary  int64        `json:"final_salary"`
	Status       SalaryStatus `json:"status"`
	CreatedOn    time.Time    `json:"created_on"`
	UpdatedOn    time.Time    `json:"updated_on"`
}

type SalaryAction string

const (
	SalaryActionPay    SalaryAction = "pay"
	SalaryActionReject SalaryAction = "reject"
)

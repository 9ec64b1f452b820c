package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/repository"
)

type salaryRepository struct {
	db *sql.DB
}

func NewSalaryRepository(db *sql.DB) repository.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `id, employee_id, employee_name, month, year, attended_days, absent_days, base_salary, final_salary, status, created_on, updated_on`

func (r *salaryRepository) Create(ctx context.Context, s *domain.Salary) error {
	query := `INSERT INTO salaries (employee_id, employee_name, month, year, attended_days, absent_days, base_salary, final_salary, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, s.EmployeeID, s.EmployeeName, s.Month, s.Year,
		s.AttendedDays, s.AbsentDays, s.BaseSalary, s.FinalSalary, s.Status, now, now).Scan(&s.ID)
}

func (r *salaryRepository) GetByID(ctx context.Context, id int32) (*domain.Salary, error) {
	s := &domain.Salary{}
	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.EmployeeID, &s.EmployeeName, &s.Month, &s.Year,
		&s.AttendedDays, &s.AbsentDays, &s.BaseSalary, &s.FinalSalary, &s.Status, &s.CreatedOn, &s.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSalaryNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SetStatus moves PENDING to a terminal status. The guard is in the WHERE
// clause so a second decision on the same record fails instead of overwriting.
func (r *salaryRepository) SetStatus(ctx context.Context, id int32, status domain.SalaryStatus) error {
	query := `UPDATE salaries SET status = $1, updated_on = $2 WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id, domain.SalaryStatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrSalaryFinalized
	}
	return nil
}

func (r *salaryRepository) ListByStatus(ctx context.Context, status domain.SalaryStatus) ([]domain.Salary, error) {
	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE status = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var salaries []domain.Salary
	for rows.Next() {
		var s domain.Salary
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.EmployeeName, &s.Month, &s.Year,
			&s.AttendedDays, &s.AbsentDays, &s.BaseSalary, &s.FinalSalary, &s.Status, &s.CreatedOn, &s.UpdatedOn); err != nil {
			return nil, err
		}
		salaries = append(salaries, s)
	}
	return salaries, rows.Err()
}

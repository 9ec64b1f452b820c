package postgres

import (
	"context"
	"database/sql"
)

// Migrate creates the schema if it does not exist. The uniqueness constraints
// here back the money invariants: one period per (owner, month, year) and one
// bid per (request, supplier).
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			roles TEXT[] NOT NULL DEFAULT '{}',
			created_on TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id SERIAL PRIMARY KEY,
			company_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_on TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS budget_periods (
			id SERIAL PRIMARY KEY,
			owner_id INTEGER NOT NULL REFERENCES users(id),
			month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
			year INTEGER NOT NULL,
			budget_amount BIGINT NOT NULL CHECK (budget_amount >= 0),
			remaining_amount BIGINT NOT NULL CHECK (remaining_amount >= 0),
			revenue BIGINT NOT NULL DEFAULT 0,
			created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_on TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (owner_id, month, year)
		)`,
		`CREATE TABLE IF NOT EXISTS supply_requests (
			id SERIAL PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			owner_id INTEGER NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			unit TEXT NOT NULL DEFAULT '',
			public BOOLEAN NOT NULL DEFAULT false,
			status TEXT NOT NULL DEFAULT 'OPEN',
			application_deadline TIMESTAMPTZ NOT NULL,
			assigned_supplier_id INTEGER REFERENCES suppliers(id),
			created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bids (
			id SERIAL PRIMARY KEY,
			request_id INTEGER NOT NULL REFERENCES supply_requests(id),
			supplier_id INTEGER NOT NULL REFERENCES suppliers(id),
			offer_price BIGINT NOT NULL CHECK (offer_price >= 0),
			notes TEXT NOT NULL DEFAULT '',
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (request_id, supplier_id)
		)`,
		`CREATE TABLE IF NOT EXISTS salaries (
			id SERIAL PRIMARY KEY,
			employee_id INTEGER NOT NULL,
			employee_name TEXT NOT NULL,
			month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
			year INTEGER NOT NULL,
			attended_days INTEGER NOT NULL DEFAULT 0,
			absent_days INTEGER NOT NULL DEFAULT 0,
			base_salary BIGINT NOT NULL,
			final_salary BIGINT NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING',
			created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id SERIAL PRIMARY KEY,
			recorded_by INTEGER NOT NULL REFERENCES users(id),
			amount BIGINT NOT NULL CHECK (amount > 0),
			type TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ NOT NULL,
			created_on TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

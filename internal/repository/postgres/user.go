package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, roles, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, pq.Array(u.Roles), time.Now()).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.get(ctx, `SELECT id, name, email, password_hash, roles, created_on FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `SELECT id, name, email, password_hash, roles, created_on FROM users WHERE email = $1`, email)
}

func (r *userRepository) get(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, pq.Array(&u.Roles), &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

type supplierRepository struct {
	db *sql.DB
}

func NewSupplierRepository(db *sql.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	query := `INSERT INTO suppliers (company_name, email, password_hash, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.CompanyName, s.Email, s.PasswordHash, time.Now()).Scan(&s.ID)
}

func (r *supplierRepository) GetByID(ctx context.Context, id int32) (*domain.Supplier, error) {
	return r.get(ctx, `SELECT id, company_name, email, password_hash, created_on FROM suppliers WHERE id = $1`, id)
}

func (r *supplierRepository) GetByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	return r.get(ctx, `SELECT id, company_name, email, password_hash, created_on FROM suppliers WHERE email = $1`, email)
}

func (r *supplierRepository) get(ctx context.Context, query string, arg interface{}) (*domain.Supplier, error) {
	s := &domain.Supplier{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&s.ID, &s.CompanyName, &s.Email, &s.PasswordHash, &s.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/repository"
)

type supplyRequestRepository struct {
	db *sql.DB
}

func NewSupplyRequestRepository(db *sql.DB) repository.SupplyRequestRepository {
	return &supplyRequestRepository{db: db}
}

const requestColumns = `id, code, owner_id, title, description, category, quantity, unit, public, status, application_deadline, assigned_supplier_id, created_on, updated_on`

func (r *supplyRequestRepository) Create(ctx context.Context, req *domain.SupplyRequest) error {
	query := `INSERT INTO supply_requests (code, owner_id, title, description, category, quantity, unit, public, status, application_deadline, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, req.Code, req.OwnerID, req.Title, req.Description, req.Category,
		req.Quantity, req.Unit, req.Public, req.Status, req.ApplicationDeadline, now, now).Scan(&req.ID)
}

func (r *supplyRequestRepository) GetByID(ctx context.Context, id int32) (*domain.SupplyRequest, error) {
	req := &domain.SupplyRequest{}
	query := `SELECT ` + requestColumns + ` FROM supply_requests WHERE id = $1`
	err := scanRequest(r.db.QueryRowContext(ctx, query, id), req)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadBids(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *supplyRequestRepository) List(ctx context.Context) ([]domain.SupplyRequest, error) {
	return r.list(ctx, `SELECT `+requestColumns+` FROM supply_requests ORDER BY created_on DESC`)
}

func (r *supplyRequestRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.SupplyRequest, error) {
	return r.list(ctx, `SELECT `+requestColumns+` FROM supply_requests WHERE owner_id = $1 ORDER BY created_on DESC`, ownerID)
}

func (r *supplyRequestRepository) ListPublicOpen(ctx context.Context) ([]domain.SupplyRequest, error) {
	return r.list(ctx, `SELECT `+requestColumns+` FROM supply_requests WHERE public = true AND status = $1 ORDER BY application_deadline`, domain.RequestStatusOpen)
}

func (r *supplyRequestRepository) AddBid(ctx context.Context, bid *domain.Bid) error {
	query := `INSERT INTO bids (request_id, supplier_id, offer_price, notes, submitted_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, bid.RequestID, bid.SupplierID, bid.OfferPrice, bid.Notes, bid.SubmittedAt).Scan(&bid.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateBid
	}
	return err
}

func (r *supplyRequestRepository) UpdateBid(ctx context.Context, bid *domain.Bid) error {
	query := `UPDATE bids SET offer_price = $1, notes = $2, submitted_at = $3 WHERE request_id = $4 AND supplier_id = $5`
	res, err := r.db.ExecContext(ctx, query, bid.OfferPrice, bid.Notes, bid.SubmittedAt, bid.RequestID, bid.SupplierID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBidNotFound
	}
	return nil
}

func (r *supplyRequestRepository) DeleteBid(ctx context.Context, requestID, supplierID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bids WHERE request_id = $1 AND supplier_id = $2`, requestID, supplierID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBidNotFound
	}
	return nil
}

// Award closes the request and records the winner in one compare-and-swap on
// status, so exactly one of two racing awards succeeds.
func (r *supplyRequestRepository) Award(ctx context.Context, requestID, supplierID int32) error {
	query := `UPDATE supply_requests SET assigned_supplier_id = $1, status = $2, updated_on = $3
	          WHERE id = $4 AND status = $5`
	res, err := r.db.ExecContext(ctx, query, supplierID, domain.RequestStatusClosed, time.Now(), requestID, domain.RequestStatusOpen)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, requestID); err != nil {
			return err
		}
		return domain.ErrRequestClosed
	}
	return nil
}

func (r *supplyRequestRepository) ListClosedBetween(ctx context.Context, from, to time.Time) ([]domain.SupplyRequest, error) {
	return r.list(ctx, `SELECT `+requestColumns+` FROM supply_requests
	        WHERE status = $1 AND updated_on >= $2 AND updated_on <= $3 ORDER BY updated_on`, domain.RequestStatusClosed, from, to)
}

func (r *supplyRequestRepository) ListOpenPastDeadline(ctx context.Context, now time.Time) ([]domain.SupplyRequest, error) {
	return r.list(ctx, `SELECT `+requestColumns+` FROM supply_requests
	        WHERE status = $1 AND application_deadline < $2 ORDER BY application_deadline`, domain.RequestStatusOpen, now)
}

func (r *supplyRequestRepository) ListOpenDeadlineWithin(ctx context.Context, now time.Time, window time.Duration) ([]domain.SupplyRequest, error) {
	return r.list(ctx, `SELECT `+requestColumns+` FROM supply_requests
	        WHERE status = $1 AND application_deadline >= $2 AND application_deadline <= $3 AND assigned_supplier_id IS NULL
	        ORDER BY application_deadline`, domain.RequestStatusOpen, now, now.Add(window))
}

func (r *supplyRequestRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.SupplyRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.SupplyRequest
	for rows.Next() {
		var req domain.SupplyRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range reqs {
		if err := r.loadBids(ctx, &reqs[i]); err != nil {
			return nil, err
		}
	}
	return reqs, nil
}

func (r *supplyRequestRepository) loadBids(ctx context.Context, req *domain.SupplyRequest) error {
	query := `SELECT id, request_id, supplier_id, offer_price, notes, submitted_at FROM bids WHERE request_id = $1 ORDER BY submitted_at`
	rows, err := r.db.QueryContext(ctx, query, req.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.Bid
		if err := rows.Scan(&b.ID, &b.RequestID, &b.SupplierID, &b.OfferPrice, &b.Notes, &b.SubmittedAt); err != nil {
			return err
		}
		req.Bids = append(req.Bids, b)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner, req *domain.SupplyRequest) error {
	return row.Scan(&req.ID, &req.Code, &req.OwnerID, &req.Title, &req.Description, &req.Category,
		&req.Quantity, &req.Unit, &req.Public, &req.Status, &req.ApplicationDeadline,
		&req.AssignedSupplierID, &req.CreatedOn, &req.UpdatedOn)
}

package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/alovak/payment-gateway/gateway/models"
	"github.com/jackc/pgconn"
	"github.com/lib/pq"
)

var (
	ErrNotFound = fmt.Errorf("not found")
	ErrConflict = fmt.Errorf("conflict")
)

// PaymentRepository is the store of completed payment records. Add is
// append-only; records are never updated or deleted. Absence on Get is a
// normal outcome reported as ErrNotFound.
type PaymentRepository interface {
	Add(ctx context.Context, payment *models.Payment) error
	Get(ctx context.Context, id string) (*models.Payment, error)
	Ping(ctx context.Context) error
}

// Repository stores payments in memory by default, or in Postgres when
// constructed with a database handle. Both backends are safe for concurrent
// use from simultaneously executing requests.
type Repository struct {
	mu       sync.RWMutex
	payments map[string]models.Payment

	db *sql.DB
}

func NewRepository() *Repository {
	return &Repository{
		payments: make(map[string]models.Payment),
	}
}

// NewPGRepository constructs a db-backed repository.
func NewPGRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(ctx context.Context, payment *models.Payment) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.payments[payment.ID]; ok {
			return fmt.Errorf("payment id exists: %w", ErrConflict)
		}
		r.payments[payment.ID] = *payment
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO payments(id, last_four, expiry_month, expiry_year, currency, amount, status, authorization_code)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, payment.ID, payment.CardNumberLastFour, payment.ExpiryMonth, payment.ExpiryYear,
		payment.Currency, payment.Amount, string(payment.Status), payment.AuthorizationCode)
	if isUniqueViolation(err) {
		return fmt.Errorf("payment id exists: %w", ErrConflict)
	}
	return err
}

func (r *Repository) Get(ctx context.Context, id string) (*models.Payment, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		payment, ok := r.payments[id]
		if !ok {
			return nil, ErrNotFound
		}
		return &payment, nil
	}
	row := r.db.QueryRowContext(ctx, `
        SELECT id, last_four, expiry_month, expiry_year, currency, amount, status, authorization_code
          FROM payments WHERE id=$1
    `, id)
	var p models.Payment
	var status string
	if err := row.Scan(&p.ID, &p.CardNumberLastFour, &p.ExpiryMonth, &p.ExpiryYear,
		&p.Currency, &p.Amount, &status, &p.AuthorizationCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Status = models.Status(status)
	return &p, nil
}

// Ping reports store readiness.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code == "23505" {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		return true
	}
	return false
}

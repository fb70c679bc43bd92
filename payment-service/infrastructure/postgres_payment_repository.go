package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ordersaga/choreography/payment-service/domain"
	"github.com/ordersaga/choreography/shared/models"
	"github.com/pkg/errors"
)

var _ domain.PaymentRepository = (*PostgresPaymentRepository)(nil)

// Migrations creates the payment schema
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL,
		transaction_id VARCHAR(128) NOT NULL,
		total_items INTEGER NOT NULL,
		total_amount NUMERIC(14, 2) NOT NULL,
		status VARCHAR(16) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (order_id, transaction_id)
	)`,
}

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL
type PostgresPaymentRepository struct {
	db *sqlx.DB
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(db *sqlx.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// postgresPayment represents payment in database
type postgresPayment struct {
	ID            string    `db:"id"`
	OrderID       string    `db:"order_id"`
	TransactionID string    `db:"transaction_id"`
	TotalItems    int       `db:"total_items"`
	TotalAmount   float64   `db:"total_amount"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r *PostgresPaymentRepository) ExistsByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE order_id = $1 AND transaction_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, orderID, transactionID); err != nil {
		return false, errors.Wrap(err, "failed to check payment")
	}
	return exists, nil
}

// FindByOrderIDAndTransactionID finds the payment of a saga attempt
func (r *PostgresPaymentRepository) FindByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (*domain.Payment, error) {
	query := `
		SELECT id, order_id, transaction_id, total_items, total_amount, status, created_at, updated_at
		FROM payments
		WHERE order_id = $1 AND transaction_id = $2`

	var pgPayment postgresPayment
	if err := r.db.GetContext(ctx, &pgPayment, query, orderID, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return r.toDomain(&pgPayment), nil
}

// Save upserts on (order_id, transaction_id); only status and updated_at change after insert
func (r *PostgresPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id, order_id, transaction_id, total_items, total_amount, status, created_at, updated_at
		) VALUES (
			:id, :order_id, :transaction_id, :total_items, :total_amount, :status, :created_at, :updated_at
		)
		ON CONFLICT (order_id, transaction_id)
		DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, r.toPostgres(payment)); err != nil {
		return errors.Wrap(err, "failed to save payment")
	}
	return nil
}

func (r *PostgresPaymentRepository) toPostgres(payment *domain.Payment) postgresPayment {
	return postgresPayment{
		ID:            payment.ID.String(),
		OrderID:       payment.OrderID,
		TransactionID: payment.TransactionID,
		TotalItems:    payment.TotalItems,
		TotalAmount:   payment.TotalAmount,
		Status:        string(payment.Status),
		CreatedAt:     payment.Timestamps.CreatedAt,
		UpdatedAt:     payment.Timestamps.UpdatedAt,
	}
}

func (r *PostgresPaymentRepository) toDomain(pgPayment *postgresPayment) *domain.Payment {
	return &domain.Payment{
		ID:            models.ID(pgPayment.ID),
		OrderID:       pgPayment.OrderID,
		TransactionID: pgPayment.TransactionID,
		TotalItems:    pgPayment.TotalItems,
		TotalAmount:   pgPayment.TotalAmount,
		Status:        domain.PaymentStatus(pgPayment.Status),
		Timestamps: models.Timestamps{
			CreatedAt: pgPayment.CreatedAt,
			UpdatedAt: pgPayment.UpdatedAt,
		},
	}
}

package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/ordersaga/choreography/product-validation-service/domain"
	"github.com/ordersaga/choreography/shared/models"
	"github.com/pkg/errors"
)

var (
	_ domain.ProductRepository    = (*PostgresProductRepository)(nil)
	_ domain.ValidationRepository = (*PostgresValidationRepository)(nil)
)

// Migrations creates the product validation schema
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		code VARCHAR(64) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS validations (
		id UUID PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL,
		transaction_id VARCHAR(128) NOT NULL,
		success BOOLEAN NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (order_id, transaction_id)
	)`,
}

// PostgresProductRepository implements ProductRepository using PostgreSQL
type PostgresProductRepository struct {
	db *sqlx.DB
}

func NewPostgresProductRepository(db *sqlx.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

// Seed inserts the given product codes, keeping the ones already present
func (r *PostgresProductRepository) Seed(ctx context.Context, codes []string) error {
	query := `INSERT INTO products (code) SELECT unnest($1::text[]) ON CONFLICT (code) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, pq.Array(codes)); err != nil {
		return errors.Wrap(err, "failed to seed products")
	}
	return nil
}

func (r *PostgresProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM products WHERE code = $1)`, code)
	if err != nil {
		return false, errors.Wrap(err, "failed to check product")
	}
	return exists, nil
}

// PostgresValidationRepository implements ValidationRepository using PostgreSQL
type PostgresValidationRepository struct {
	db *sqlx.DB
}

func NewPostgresValidationRepository(db *sqlx.DB) *PostgresValidationRepository {
	return &PostgresValidationRepository{db: db}
}

// postgresValidation represents validation in database
type postgresValidation struct {
	ID            string    `db:"id"`
	OrderID       string    `db:"order_id"`
	TransactionID string    `db:"transaction_id"`
	Success       bool      `db:"success"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r *PostgresValidationRepository) ExistsByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM validations WHERE order_id = $1 AND transaction_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, orderID, transactionID); err != nil {
		return false, errors.Wrap(err, "failed to check validation")
	}
	return exists, nil
}

func (r *PostgresValidationRepository) FindByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (*domain.Validation, error) {
	query := `
		SELECT id, order_id, transaction_id, success, created_at, updated_at
		FROM validations
		WHERE order_id = $1 AND transaction_id = $2`

	var row postgresValidation
	if err := r.db.GetContext(ctx, &row, query, orderID, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrValidationNotFound
		}
		return nil, errors.Wrap(err, "failed to find validation")
	}

	return &domain.Validation{
		ID:            models.ID(row.ID),
		OrderID:       row.OrderID,
		TransactionID: row.TransactionID,
		Success:       row.Success,
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}, nil
}

// Save upserts on (order_id, transaction_id)
func (r *PostgresValidationRepository) Save(ctx context.Context, validation *domain.Validation) error {
	query := `
		INSERT INTO validations (id, order_id, transaction_id, success, created_at, updated_at)
		VALUES (:id, :order_id, :transaction_id, :success, :created_at, :updated_at)
		ON CONFLICT (order_id, transaction_id)
		DO UPDATE SET success = EXCLUDED.success, updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, postgresValidation{
		ID:            validation.ID.String(),
		OrderID:       validation.OrderID,
		TransactionID: validation.TransactionID,
		Success:       validation.Success,
		CreatedAt:     validation.Timestamps.CreatedAt,
		UpdatedAt:     validation.Timestamps.UpdatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to save validation")
	}
	return nil
}

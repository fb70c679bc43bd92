package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ordersaga/choreography/inventory-service/domain"
	sharedinfra "github.com/ordersaga/choreography/shared/infrastructure"
	"github.com/ordersaga/choreography/shared/models"
	"github.com/pkg/errors"
)

var (
	_ domain.InventoryRepository      = (*PostgresInventoryRepository)(nil)
	_ domain.OrderInventoryRepository = (*PostgresOrderInventoryRepository)(nil)
)

// Migrations creates the inventory schema
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS inventories (
		id UUID PRIMARY KEY,
		product_code VARCHAR(64) NOT NULL UNIQUE,
		available INTEGER NOT NULL CHECK (available >= 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_inventories (
		id UUID PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL,
		transaction_id VARCHAR(128) NOT NULL,
		inventory_id UUID NOT NULL REFERENCES inventories (id),
		old_quantity INTEGER NOT NULL,
		order_quantity INTEGER NOT NULL,
		new_quantity INTEGER NOT NULL,
		applied BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`ALTER TABLE order_inventories ADD COLUMN IF NOT EXISTS applied BOOLEAN NOT NULL DEFAULT FALSE`,
	`CREATE INDEX IF NOT EXISTS order_inventories_order_transaction_idx
		ON order_inventories (order_id, transaction_id)`,
}

// PostgresInventoryRepository implements InventoryRepository using PostgreSQL
type PostgresInventoryRepository struct {
	db *sqlx.DB
}

func NewPostgresInventoryRepository(db *sqlx.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

type postgresInventory struct {
	ID          string    `db:"id"`
	ProductCode string    `db:"product_code"`
	Available   int       `db:"available"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Seed inserts the given stock for products that have no inventory yet
func (r *PostgresInventoryRepository) Seed(ctx context.Context, stock map[string]int) error {
	if len(stock) == 0 {
		return nil
	}

	rows := make([]postgresInventory, 0, len(stock))
	for code, available := range stock {
		inventory := domain.NewInventory(code, available)
		rows = append(rows, postgresInventory{
			ID:          inventory.ID.String(),
			ProductCode: inventory.ProductCode,
			Available:   inventory.Available,
			CreatedAt:   inventory.Timestamps.CreatedAt,
			UpdatedAt:   inventory.Timestamps.UpdatedAt,
		})
	}

	query := `
		INSERT INTO inventories (id, product_code, available, created_at, updated_at)
		VALUES (:id, :product_code, :available, :created_at, :updated_at)
		ON CONFLICT (product_code) DO NOTHING`
	if _, err := r.db.NamedExecContext(ctx, query, rows); err != nil {
		return errors.Wrap(err, "failed to seed inventories")
	}
	return nil
}

func (r *PostgresInventoryRepository) FindByProductCode(ctx context.Context, productCode string) (*domain.Inventory, error) {
	query := `
		SELECT id, product_code, available, created_at, updated_at
		FROM inventories
		WHERE product_code = $1`

	var row postgresInventory
	if err := r.db.GetContext(ctx, &row, query, productCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, errors.Wrap(err, "failed to find inventory")
	}

	return &domain.Inventory{
		ID:          models.ID(row.ID),
		ProductCode: row.ProductCode,
		Available:   row.Available,
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}, nil
}

// Decrement guards each update with the available quantity; one short line rolls back the whole order
func (r *PostgresInventoryRepository) Decrement(ctx context.Context, items []domain.OrderInventory) error {
	query := `
		UPDATE inventories
		SET available = available - $1, updated_at = $2
		WHERE id = $3 AND available >= $1`

	return sharedinfra.RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		now := time.Now().UTC()
		for _, item := range items {
			result, err := tx.ExecContext(ctx, query, item.OrderQuantity, now, item.InventoryID.String())
			if err != nil {
				return errors.Wrap(err, "failed to decrement inventory")
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return errors.Wrap(err, "failed to decrement inventory")
			}
			if affected == 0 {
				return domain.ErrOutOfStock
			}
		}
		return nil
	})
}

func (r *PostgresInventoryRepository) Restore(ctx context.Context, items []domain.OrderInventory) error {
	query := `UPDATE inventories SET available = available + $1, updated_at = $2 WHERE id = $3`

	return sharedinfra.RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		now := time.Now().UTC()
		for _, item := range items {
			if _, err := tx.ExecContext(ctx, query, item.OrderQuantity, now, item.InventoryID.String()); err != nil {
				return errors.Wrap(err, "failed to restore inventory")
			}
		}
		return nil
	})
}

// PostgresOrderInventoryRepository implements OrderInventoryRepository using PostgreSQL
type PostgresOrderInventoryRepository struct {
	db *sqlx.DB
}

func NewPostgresOrderInventoryRepository(db *sqlx.DB) *PostgresOrderInventoryRepository {
	return &PostgresOrderInventoryRepository{db: db}
}

type postgresOrderInventory struct {
	ID            string    `db:"id"`
	OrderID       string    `db:"order_id"`
	TransactionID string    `db:"transaction_id"`
	InventoryID   string    `db:"inventory_id"`
	OldQuantity   int       `db:"old_quantity"`
	OrderQuantity int       `db:"order_quantity"`
	NewQuantity   int       `db:"new_quantity"`
	Applied       bool      `db:"applied"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r *PostgresOrderInventoryRepository) ExistsByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM order_inventories WHERE order_id = $1 AND transaction_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, orderID, transactionID); err != nil {
		return false, errors.Wrap(err, "failed to check order inventory")
	}
	return exists, nil
}

func (r *PostgresOrderInventoryRepository) FindByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) ([]domain.OrderInventory, error) {
	query := `
		SELECT id, order_id, transaction_id, inventory_id, old_quantity, order_quantity, new_quantity, applied, created_at, updated_at
		FROM order_inventories
		WHERE order_id = $1 AND transaction_id = $2
		ORDER BY created_at`

	var rows []postgresOrderInventory
	if err := r.db.SelectContext(ctx, &rows, query, orderID, transactionID); err != nil {
		return nil, errors.Wrap(err, "failed to find order inventory")
	}

	items := make([]domain.OrderInventory, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.OrderInventory{
			ID:            models.ID(row.ID),
			OrderID:       row.OrderID,
			TransactionID: row.TransactionID,
			InventoryID:   models.ID(row.InventoryID),
			OldQuantity:   row.OldQuantity,
			OrderQuantity: row.OrderQuantity,
			NewQuantity:   row.NewQuantity,
			Applied:       row.Applied,
			Timestamps: models.Timestamps{
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
		})
	}
	return items, nil
}

// SaveAll inserts the order lines in one statement
func (r *PostgresOrderInventoryRepository) SaveAll(ctx context.Context, items []domain.OrderInventory) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]postgresOrderInventory, 0, len(items))
	for _, item := range items {
		rows = append(rows, postgresOrderInventory{
			ID:            item.ID.String(),
			OrderID:       item.OrderID,
			TransactionID: item.TransactionID,
			InventoryID:   item.InventoryID.String(),
			OldQuantity:   item.OldQuantity,
			OrderQuantity: item.OrderQuantity,
			NewQuantity:   item.NewQuantity,
			Applied:       item.Applied,
			CreatedAt:     item.Timestamps.CreatedAt,
			UpdatedAt:     item.Timestamps.UpdatedAt,
		})
	}

	query := `
		INSERT INTO order_inventories (
			id, order_id, transaction_id, inventory_id, old_quantity, order_quantity, new_quantity, applied, created_at, updated_at
		) VALUES (
			:id, :order_id, :transaction_id, :inventory_id, :old_quantity, :order_quantity, :new_quantity, :applied, :created_at, :updated_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, rows); err != nil {
		return errors.Wrap(err, "failed to save order inventory")
	}
	return nil
}

func (r *PostgresOrderInventoryRepository) MarkApplied(ctx context.Context, orderID, transactionID string) error {
	query := `
		UPDATE order_inventories
		SET applied = TRUE, updated_at = $3
		WHERE order_id = $1 AND transaction_id = $2`
	if _, err := r.db.ExecContext(ctx, query, orderID, transactionID, time.Now().UTC()); err != nil {
		return errors.Wrap(err, "failed to mark order inventory applied")
	}
	return nil
}

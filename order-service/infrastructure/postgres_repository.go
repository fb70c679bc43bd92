package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/ordersaga/choreography/order-service/domain"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/pkg/errors"
)

var (
	_ domain.OrderRepository = (*PostgresOrderRepository)(nil)
	_ domain.EventRepository = (*PostgresEventRepository)(nil)
)

// Migrations creates the order and audit schema
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		transaction_id VARCHAR(128) NOT NULL UNIQUE,
		products JSONB NOT NULL,
		total_amount NUMERIC(14, 2) NOT NULL,
		total_items INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL,
		transaction_id VARCHAR(128) NOT NULL,
		source VARCHAR(64) NOT NULL,
		status VARCHAR(32) NOT NULL,
		body JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_order_id_created_at ON events (order_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_events_transaction_id_created_at ON events (transaction_id, created_at DESC)`,
}

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	db *sqlx.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(db *sqlx.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

type postgresOrder struct {
	ID            string         `db:"id"`
	TransactionID string         `db:"transaction_id"`
	Products      types.JSONText `db:"products"`
	TotalAmount   float64        `db:"total_amount"`
	TotalItems    int            `db:"total_items"`
	CreatedAt     time.Time      `db:"created_at"`
}

// Save inserts the order; orders are immutable once created
func (r *PostgresOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	products, err := json.Marshal(order.Products)
	if err != nil {
		return errors.Wrap(err, "failed to marshal products")
	}

	query := `
		INSERT INTO orders (id, transaction_id, products, total_amount, total_items, created_at)
		VALUES (:id, :transaction_id, :products, :total_amount, :total_items, :created_at)
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.NamedExecContext(ctx, query, postgresOrder{
		ID:            order.ID,
		TransactionID: order.TransactionID,
		Products:      types.JSONText(products),
		TotalAmount:   order.TotalAmount,
		TotalItems:    order.TotalItems,
		CreatedAt:     order.CreatedAt,
	}); err != nil {
		return errors.Wrap(err, "failed to save order")
	}
	return nil
}

// FindByID finds an order by id
func (r *PostgresOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, transaction_id, products, total_amount, total_items, created_at
		FROM orders
		WHERE id = $1`

	var pgOrder postgresOrder
	if err := r.db.GetContext(ctx, &pgOrder, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "failed to find order")
	}

	order := &domain.Order{
		ID:            pgOrder.ID,
		TransactionID: pgOrder.TransactionID,
		TotalAmount:   pgOrder.TotalAmount,
		TotalItems:    pgOrder.TotalItems,
		CreatedAt:     pgOrder.CreatedAt,
	}
	if err := pgOrder.Products.Unmarshal(&order.Products); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal products")
	}
	return order, nil
}

// PostgresEventRepository stores each saga event as a JSONB document keyed by event id
type PostgresEventRepository struct {
	db *sqlx.DB
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(db *sqlx.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

type postgresEvent struct {
	ID            string         `db:"id"`
	OrderID       string         `db:"order_id"`
	TransactionID string         `db:"transaction_id"`
	Source        string         `db:"source"`
	Status        string         `db:"status"`
	Body          types.JSONText `db:"body"`
	CreatedAt     time.Time      `db:"created_at"`
}

// Save upserts the event by id
func (r *PostgresEventRepository) Save(ctx context.Context, event *events.Event) error {
	body, err := event.ToJSON()
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	query := `
		INSERT INTO events (id, order_id, transaction_id, source, status, body, created_at)
		VALUES (:id, :order_id, :transaction_id, :source, :status, :body, :created_at)
		ON CONFLICT (id)
		DO UPDATE SET
			order_id = EXCLUDED.order_id,
			source = EXCLUDED.source,
			status = EXCLUDED.status,
			body = EXCLUDED.body,
			created_at = EXCLUDED.created_at`

	if _, err := r.db.NamedExecContext(ctx, query, postgresEvent{
		ID:            event.ID.String(),
		OrderID:       event.OrderID,
		TransactionID: event.TransactionID,
		Source:        event.Source(),
		Status:        event.Status().String(),
		Body:          types.JSONText(body),
		CreatedAt:     event.CreatedAt,
	}); err != nil {
		return errors.Wrap(err, "failed to save event")
	}
	return nil
}

func (r *PostgresEventRepository) FindTopByOrderID(ctx context.Context, orderID string) (*events.Event, error) {
	return r.findTop(ctx, `SELECT body FROM events WHERE order_id = $1 ORDER BY created_at DESC LIMIT 1`, orderID)
}

func (r *PostgresEventRepository) FindTopByTransactionID(ctx context.Context, transactionID string) (*events.Event, error) {
	return r.findTop(ctx, `SELECT body FROM events WHERE transaction_id = $1 ORDER BY created_at DESC LIMIT 1`, transactionID)
}

// FindAll lists every event, most recent first
func (r *PostgresEventRepository) FindAll(ctx context.Context) ([]*events.Event, error) {
	var bodies []types.JSONText
	if err := r.db.SelectContext(ctx, &bodies, `SELECT body FROM events ORDER BY created_at DESC`); err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	all := make([]*events.Event, 0, len(bodies))
	for _, body := range bodies {
		event, err := events.FromJSON(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal event")
		}
		all = append(all, event)
	}
	return all, nil
}

func (r *PostgresEventRepository) findTop(ctx context.Context, query string, arg string) (*events.Event, error) {
	var body types.JSONText
	if err := r.db.GetContext(ctx, &body, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, errors.Wrap(err, "failed to find event")
	}

	event, err := events.FromJSON(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal event")
	}
	return event, nil
}

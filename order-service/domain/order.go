package domain

import (
	"context"
	"time"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/models"
	"github.com/pkg/errors"
)

var (
	ErrOrderNotFound = errors.New("Order not found.")
	ErrNoProducts    = errors.New("Order must have at least one product.")
	ErrInvalidLine   = errors.New("Every product must have a code and a positive quantity.")
)

// Order is a customer request that starts one saga attempt
type Order struct {
	ID            string                 `json:"id"`
	TransactionID string                 `json:"transactionId"`
	Products      []events.OrderProducts `json:"products"`
	TotalAmount   float64                `json:"totalAmount"`
	TotalItems    int                    `json:"totalItems"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// NewOrder creates an order with a fresh id and transaction id
func NewOrder(products []events.OrderProducts, now time.Time) (*Order, error) {
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	order := &Order{
		ID:            models.GenerateUUID().String(),
		TransactionID: models.NewTransactionID(now),
		Products:      make([]events.OrderProducts, len(products)),
		CreatedAt:     now,
	}
	copy(order.Products, products)

	for _, line := range order.Products {
		if line.Product.Code == "" || line.Quantity <= 0 {
			return nil, ErrInvalidLine
		}
		order.TotalAmount += line.Product.UnitValue * float64(line.Quantity)
		order.TotalItems += line.Quantity
	}

	return order, nil
}

// Payload returns the saga payload of the order
func (o *Order) Payload() events.Order {
	return events.Order{
		ID:            o.ID,
		TransactionID: o.TransactionID,
		Products:      o.Products,
	}
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
}

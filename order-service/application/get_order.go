package application

import (
	"context"

	"github.com/ordersaga/choreography/order-service/domain"
	"github.com/pkg/errors"
)

// GetOrder use case
type GetOrder struct {
	orderRepository domain.OrderRepository
}

// NewGetOrder creates a new GetOrder use case
func NewGetOrder(orderRepository domain.OrderRepository) *GetOrder {
	return &GetOrder{
		orderRepository: orderRepository,
	}
}

// Execute returns the order with the given id
func (uc *GetOrder) Execute(ctx context.Context, id string) (*domain.Order, error) {
	order, err := uc.orderRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find order")
	}
	return order, nil
}

package application

import (
	"context"
	"time"

	"github.com/ordersaga/choreography/order-service/domain"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const SagaStartedMessage = "Saga started!"

// CreateOrderCommand represents the command to create an order
type CreateOrderCommand struct {
	Products []events.OrderProducts `json:"products"`
}

// CreateOrderResponse represents the response after creating an order
type CreateOrderResponse struct {
	OrderID       string  `json:"orderId"`
	TransactionID string  `json:"transactionId"`
	TotalAmount   float64 `json:"totalAmount"`
	TotalItems    int     `json:"totalItems"`
}

// CreateOrder starts the saga of a new order
type CreateOrder struct {
	orderRepository domain.OrderRepository
	eventRepository domain.EventRepository
	dispatcher      saga.Dispatcher
	logger          *zap.Logger
	now             func() time.Time
}

// NewCreateOrder creates a new CreateOrder use case
func NewCreateOrder(
	orderRepository domain.OrderRepository,
	eventRepository domain.EventRepository,
	dispatcher saga.Dispatcher,
	logger *zap.Logger,
) *CreateOrder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreateOrder{
		orderRepository: orderRepository,
		eventRepository: eventRepository,
		dispatcher:      dispatcher,
		logger:          logger.With(zap.String("component", "create-order")),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute persists the order, records the first saga event and hands it to the router
func (uc *CreateOrder) Execute(ctx context.Context, cmd *CreateOrderCommand) (*CreateOrderResponse, error) {
	now := uc.now()

	order, err := domain.NewOrder(cmd.Products, now)
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepository.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	event := events.NewEvent(order.Payload(), events.OrderSource, SagaStartedMessage, now)
	if err := uc.eventRepository.Save(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to save event")
	}

	topic, err := uc.dispatcher.Dispatch(ctx, event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start saga")
	}

	uc.logger.Info("order saga started",
		zap.String("order_id", order.ID),
		zap.String("transaction_id", order.TransactionID),
		zap.String("topic", topic.String()),
	)

	return &CreateOrderResponse{
		OrderID:       order.ID,
		TransactionID: order.TransactionID,
		TotalAmount:   order.TotalAmount,
		TotalItems:    order.TotalItems,
	}, nil
}

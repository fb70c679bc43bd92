package main

import (
	"context"

	"github.com/go-chi/chi/v5"
	inventoryconfig "github.com/ordersaga/choreography/inventory-service/config"
	orderapp "github.com/ordersaga/choreography/order-service/application"
	orderconfig "github.com/ordersaga/choreography/order-service/config"
	paymentconfig "github.com/ordersaga/choreography/payment-service/config"
	validationconfig "github.com/ordersaga/choreography/product-validation-service/config"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/infrastructure"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// sandbox runs every participant of the saga in one process on the memory bus
type sandbox struct {
	bus *infrastructure.MemoryBus

	order      *orderconfig.Dependencies
	validation *validationconfig.Dependencies
	payment    *paymentconfig.Dependencies
	inventory  *inventoryconfig.Dependencies
}

func newSandbox(ctx context.Context, logger *zap.Logger) (*sandbox, error) {
	bus := infrastructure.NewMemoryBus(logger)
	locker := saga.NewMemoryKeyLocker()

	s := &sandbox{
		bus:        bus,
		order:      &orderconfig.Dependencies{},
		validation: &validationconfig.Dependencies{},
		payment:    &paymentconfig.Dependencies{},
		inventory:  &inventoryconfig.Dependencies{},
	}

	s.order.UseMemoryRepositories()
	s.order.Wire(bus, logger.Named(orderconfig.ServiceName))

	s.validation.UseMemoryRepositories()
	s.validation.Wire(bus, locker, logger.Named(validationconfig.ServiceName))

	s.payment.UseMemoryRepositories()
	s.payment.Wire(bus, locker, logger.Named(paymentconfig.ServiceName))

	s.inventory.UseMemoryRepositories()
	s.inventory.Wire(bus, locker, logger.Named(inventoryconfig.ServiceName))

	subscriptions := []struct {
		topics  []events.Topic
		handler events.Handler
	}{
		{s.order.OrderEventHandlers.Topics(), s.order.OrderEventHandlers},
		{s.validation.ValidationEventHandlers.Topics(), s.validation.ValidationEventHandlers},
		{s.payment.PaymentEventHandlers.Topics(), s.payment.PaymentEventHandlers},
		{s.inventory.InventoryEventHandlers.Topics(), s.inventory.InventoryEventHandlers},
	}
	for _, sub := range subscriptions {
		if err := bus.Subscribe(ctx, sub.topics, sub.handler); err != nil {
			bus.Close()
			return nil, errors.Wrap(err, "failed to subscribe")
		}
	}

	return s, nil
}

// routes registers the HTTP API of every participant on one router
func (s *sandbox) routes(r chi.Router) {
	s.order.OrderHandlers.RegisterRoutes(r)
	s.validation.ValidationHandlers.RegisterRoutes(r)
	s.payment.PaymentHandlers.RegisterRoutes(r)
	s.inventory.InventoryHandlers.RegisterRoutes(r)
}

// placeOrder starts a saga and returns its final event once the bus is idle
func (s *sandbox) placeOrder(ctx context.Context, products []events.OrderProducts) (*events.Event, error) {
	created, err := s.order.CreateOrder.Execute(ctx, &orderapp.CreateOrderCommand{Products: products})
	if err != nil {
		return nil, err
	}

	if err := s.bus.WaitIdle(ctx); err != nil {
		return nil, errors.Wrap(err, "saga did not settle")
	}

	return s.order.GetEvents.FindByFilters(ctx, orderapp.EventFilters{TransactionID: created.TransactionID})
}

func (s *sandbox) Close() error {
	return s.bus.Close()
}

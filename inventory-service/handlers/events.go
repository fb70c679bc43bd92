package handlers

import (
	"context"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ events.Handler = (*InventoryEventHandlers)(nil)

// InventoryEventHandlers handles the inventory topics of the saga
type InventoryEventHandlers struct {
	step   saga.Step
	router *saga.TopicRouter
	logger *zap.Logger
}

// NewInventoryEventHandlers creates new inventory event handlers
func NewInventoryEventHandlers(step saga.Step, logger *zap.Logger) *InventoryEventHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &InventoryEventHandlers{
		step:   step,
		router: saga.NewTopicRouter("inventory-service-event-handler", logger),
		logger: logger.With(zap.String("component", "inventory-event-handlers")),
	}
	h.router.RegisterFunc(events.InventorySuccessTopic, h.HandleInventoryUpdate)
	h.router.RegisterFunc(events.InventoryFailTopic, h.HandleInventoryRollback)
	return h
}

// Handle implements the events.Handler interface
func (h *InventoryEventHandlers) Handle(ctx context.Context, topic events.Topic, event *events.Event) error {
	return h.router.Handle(ctx, topic, event)
}

// Topics returns the topics this service consumes
func (h *InventoryEventHandlers) Topics() []events.Topic {
	return h.router.Topics()
}

// HandlerID returns the unique identifier for this event handler
func (h *InventoryEventHandlers) HandlerID() string {
	return h.router.HandlerID()
}

// HandleInventoryUpdate reserves the order quantities
func (h *InventoryEventHandlers) HandleInventoryUpdate(ctx context.Context, event *events.Event) error {
	_, err := h.step.Execute(ctx, event)
	return h.drop(event, err)
}

// HandleInventoryRollback gives the order quantities back
func (h *InventoryEventHandlers) HandleInventoryRollback(ctx context.Context, event *events.Event) error {
	_, err := h.step.Compensate(ctx, event)
	return h.drop(event, err)
}

func (h *InventoryEventHandlers) drop(event *events.Event, err error) error {
	if !errors.Is(err, saga.ErrMisrouted) {
		return err
	}
	h.logger.Warn("dropping misrouted event",
		zap.String("transaction_id", event.TransactionID),
		zap.String("source", event.Source()),
		zap.String("status", event.Status().String()),
	)
	return nil
}

package handlers

import (
	"context"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ events.Handler = (*ValidationEventHandlers)(nil)

// ValidationEventHandlers consumes the product validation topics of the saga
type ValidationEventHandlers struct {
	step   saga.Step
	router *saga.TopicRouter
	logger *zap.Logger
}

// NewValidationEventHandlers creates new validation event handlers
func NewValidationEventHandlers(step saga.Step, logger *zap.Logger) *ValidationEventHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &ValidationEventHandlers{
		step:   step,
		router: saga.NewTopicRouter("product-validation-service-event-handler", logger),
		logger: logger.With(zap.String("component", "validation-event-handlers")),
	}
	h.router.RegisterFunc(events.ProductValidationSuccessTopic, h.HandleValidationRequested)
	h.router.RegisterFunc(events.ProductValidationFailTopic, h.HandleValidationRollback)
	return h
}

// Handle implements the events.Handler interface
func (h *ValidationEventHandlers) Handle(ctx context.Context, topic events.Topic, event *events.Event) error {
	return h.router.Handle(ctx, topic, event)
}

// Topics returns the topics this service consumes
func (h *ValidationEventHandlers) Topics() []events.Topic {
	return h.router.Topics()
}

// HandlerID returns the unique identifier for this event handler
func (h *ValidationEventHandlers) HandlerID() string {
	return h.router.HandlerID()
}

// HandleValidationRequested validates the order products
func (h *ValidationEventHandlers) HandleValidationRequested(ctx context.Context, event *events.Event) error {
	_, err := h.step.Execute(ctx, event)
	return h.result(event, err)
}

// HandleValidationRollback rolls back the order validation
func (h *ValidationEventHandlers) HandleValidationRollback(ctx context.Context, event *events.Event) error {
	_, err := h.step.Compensate(ctx, event)
	return h.result(event, err)
}

// Misrouted events are dropped, redelivery would not change their status
func (h *ValidationEventHandlers) result(event *events.Event, err error) error {
	if errors.Is(err, saga.ErrMisrouted) {
		h.logger.Warn("dropping misrouted event",
			zap.String("transaction_id", event.TransactionID),
			zap.String("status", event.Status().String()),
		)
		return nil
	}
	return err
}

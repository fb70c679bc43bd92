package handlers

import (
	"context"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ events.Handler = (*PaymentEventHandlers)(nil)

// PaymentEventHandlers handles the payment topics of the saga
type PaymentEventHandlers struct {
	step   saga.Step
	router *saga.TopicRouter
	logger *zap.Logger
}

// NewPaymentEventHandlers creates new payment event handlers
func NewPaymentEventHandlers(step saga.Step, logger *zap.Logger) *PaymentEventHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &PaymentEventHandlers{
		step:   step,
		router: saga.NewTopicRouter("payment-service-event-handler", logger),
		logger: logger.With(zap.String("component", "payment-event-handlers")),
	}
	h.router.RegisterFunc(events.PaymentSuccessTopic, h.HandlePaymentRequested)
	h.router.RegisterFunc(events.PaymentFailTopic, h.HandlePaymentRefund)
	return h
}

// Handle implements the events.Handler interface
func (h *PaymentEventHandlers) Handle(ctx context.Context, topic events.Topic, event *events.Event) error {
	return h.router.Handle(ctx, topic, event)
}

// Topics returns the topics this service consumes
func (h *PaymentEventHandlers) Topics() []events.Topic {
	return h.router.Topics()
}

// HandlerID returns the unique identifier for this event handler
func (h *PaymentEventHandlers) HandlerID() string {
	return h.router.HandlerID()
}

// HandlePaymentRequested charges the order
func (h *PaymentEventHandlers) HandlePaymentRequested(ctx context.Context, event *events.Event) error {
	_, err := h.step.Execute(ctx, event)
	if errors.Is(err, saga.ErrMisrouted) {
		h.logger.Warn("dropping misrouted payment request",
			zap.String("transaction_id", event.TransactionID),
			zap.String("status", event.Status().String()),
		)
		return nil
	}
	return err
}

// HandlePaymentRefund refunds the order
func (h *PaymentEventHandlers) HandlePaymentRefund(ctx context.Context, event *events.Event) error {
	_, err := h.step.Compensate(ctx, event)
	if errors.Is(err, saga.ErrMisrouted) {
		h.logger.Warn("dropping misrouted refund",
			zap.String("transaction_id", event.TransactionID),
			zap.String("status", event.Status().String()),
		)
		return nil
	}
	return err
}

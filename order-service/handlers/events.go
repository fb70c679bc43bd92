package handlers

import (
	"context"

	"github.com/ordersaga/choreography/order-service/application"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"go.uber.org/zap"
)

var _ events.Handler = (*OrderEventHandlers)(nil)

// OrderEventHandlers closes sagas delivered on the ending topic
type OrderEventHandlers struct {
	notifyEnding *application.NotifyEnding
	router       *saga.TopicRouter
}

// NewOrderEventHandlers creates new order event handlers
func NewOrderEventHandlers(notifyEnding *application.NotifyEnding, logger *zap.Logger) *OrderEventHandlers {
	h := &OrderEventHandlers{
		notifyEnding: notifyEnding,
		router:       saga.NewTopicRouter("order-service-event-handler", logger),
	}
	h.router.RegisterFunc(events.NotifyEndingTopic, h.HandleNotifyEnding)
	return h
}

// Handle implements the events.Handler interface
func (h *OrderEventHandlers) Handle(ctx context.Context, topic events.Topic, event *events.Event) error {
	return h.router.Handle(ctx, topic, event)
}

// Topics returns the topics this service consumes
func (h *OrderEventHandlers) Topics() []events.Topic {
	return h.router.Topics()
}

// HandlerID returns the unique identifier for this event handler
func (h *OrderEventHandlers) HandlerID() string {
	return h.router.HandlerID()
}

// HandleNotifyEnding stores the final version of a saga
func (h *OrderEventHandlers) HandleNotifyEnding(ctx context.Context, event *events.Event) error {
	_, err := h.notifyEnding.Execute(ctx, event)
	return err
}

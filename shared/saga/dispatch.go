package saga

import (
	"context"

	"github.com/ordersaga/choreography/shared/events"
	"go.uber.org/zap"
)

var _ events.Handler = (*TopicRouter)(nil)

// TopicRouter delivers bus events to the handlers registered for their topic
type TopicRouter struct {
	id       string
	handlers map[events.Topic][]events.Handler
	logger   *zap.Logger
}

// NewTopicRouter creates a new topic router
func NewTopicRouter(id string, logger *zap.Logger) *TopicRouter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TopicRouter{
		id:       id,
		handlers: make(map[events.Topic][]events.Handler),
		logger:   logger.With(zap.String("component", "topic-router"), zap.String("router", id)),
	}
}

// RegisterHandler registers an event handler for a specific topic
func (r *TopicRouter) RegisterHandler(topic events.Topic, handler events.Handler) {
	r.handlers[topic] = append(r.handlers[topic], handler)
}

// RegisterFunc registers a function for a specific topic
func (r *TopicRouter) RegisterFunc(topic events.Topic, fn func(ctx context.Context, event *events.Event) error) {
	r.RegisterHandler(topic, events.HandlerFunc(func(ctx context.Context, _ events.Topic, event *events.Event) error {
		return fn(ctx, event)
	}))
}

// Topics returns every topic with at least one handler
func (r *TopicRouter) Topics() []events.Topic {
	topics := make([]events.Topic, 0, len(r.handlers))
	for topic := range r.handlers {
		topics = append(topics, topic)
	}
	return topics
}

// HandlerID returns the unique identifier for this router
func (r *TopicRouter) HandlerID() string {
	return r.id
}

// Handle delivers the event to every handler of its topic.
// The first handler error is returned so the transport can redeliver.
func (r *TopicRouter) Handle(ctx context.Context, topic events.Topic, event *events.Event) error {
	handlers, exists := r.handlers[topic]
	if !exists {
		r.logger.Debug("no handlers registered", zap.String("topic", topic.String()))
		return nil
	}

	var firstErr error
	for _, handler := range handlers {
		if err := handler.Handle(ctx, topic, event); err != nil {
			r.logger.Error("handler failed",
				zap.String("topic", topic.String()),
				zap.String("transaction_id", event.TransactionID),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

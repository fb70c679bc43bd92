package application

import (
	"context"
	"time"

	"github.com/ordersaga/choreography/order-service/domain"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/telemetry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	SagaFinishedMessage           = "Saga finished successfully!"
	SagaFinishedWithErrorsMessage = "Saga finished with errors!"
)

// NotifyEnding closes a saga: it stamps the final event and stores it in the audit store
type NotifyEnding struct {
	eventRepository domain.EventRepository
	logger          *zap.Logger
	now             func() time.Time
}

// NewNotifyEnding creates a new NotifyEnding use case
func NewNotifyEnding(eventRepository domain.EventRepository, logger *zap.Logger) *NotifyEnding {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotifyEnding{
		eventRepository: eventRepository,
		logger:          logger.With(zap.String("component", "notify-ending")),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute appends the closing history entry without changing the status
func (uc *NotifyEnding) Execute(ctx context.Context, event *events.Event) (*events.Event, error) {
	now := uc.now()

	message := SagaFinishedWithErrorsMessage
	if event.Status() == events.StatusSuccess {
		message = SagaFinishedMessage
	}

	final := event.Annotate(events.OrderSource, message, now)
	final.OrderID = event.Payload.ID
	final.CreatedAt = now

	if err := uc.eventRepository.Save(ctx, final); err != nil {
		return nil, errors.Wrap(err, "failed to save event")
	}

	telemetry.RecordSagaEnding(ctx, final.Status().String())

	uc.logger.Info("order saga finished",
		zap.String("order_id", final.OrderID),
		zap.String("transaction_id", final.TransactionID),
		zap.String("status", final.Status().String()),
	)

	return final, nil
}

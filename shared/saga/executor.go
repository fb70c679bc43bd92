package saga

import (
	"context"
	"time"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Messages are the history texts a participant writes
type Messages struct {
	Success               string
	FailurePrefix         string
	Duplicate             string
	Rollback              string
	RollbackFailurePrefix string
}

// Participant is the domain side of a saga step.
//
// Apply must persist the participant's step record before returning nil, so that a later
// Compensate can read the prior state back. Compensate restores that prior state.
type Participant interface {
	Source() string
	Messages() Messages
	Apply(ctx context.Context, event *events.Event) error
	Compensate(ctx context.Context, event *events.Event) error
}

// Step is what a participant's event handlers drive
type Step interface {
	Execute(ctx context.Context, event *events.Event) (*events.Event, error)
	Compensate(ctx context.Context, event *events.Event) (*events.Event, error)
}

var _ Step = (*StepExecutor)(nil)

// StepExecutor runs the forward and backward templates shared by every participant
type StepExecutor struct {
	participant Participant
	guard       *Guard
	dispatcher  Dispatcher
	logger      *zap.Logger
	now         func() time.Time
}

// ExecutorOption configures a StepExecutor
type ExecutorOption func(*StepExecutor)

// WithClock overrides the time source used for history entries
func WithClock(now func() time.Time) ExecutorOption {
	return func(e *StepExecutor) {
		e.now = now
	}
}

// NewStepExecutor creates a new step executor
func NewStepExecutor(
	participant Participant,
	guard *Guard,
	dispatcher Dispatcher,
	logger *zap.Logger,
	opts ...ExecutorOption,
) *StepExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &StepExecutor{
		participant: participant,
		guard:       guard,
		dispatcher:  dispatcher,
		logger:      logger.With(zap.String("component", "step-executor"), zap.String("source", participant.Source())),
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the forward step and publishes the resulting event.
// Step failures never surface as errors; they become a ROLLBACK_PENDING event.
// The returned error is reserved for misrouted events, lock and publish failures,
// which the transport answers with redelivery.
func (e *StepExecutor) Execute(ctx context.Context, event *events.Event) (*events.Event, error) {
	if event.Status() != events.StatusSuccess {
		return nil, errors.Wrapf(ErrMisrouted, "forward step of %s received %s", e.participant.Source(), event.Status())
	}

	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "saga_step",
		trace.WithAttributes(
			attribute.String("source", e.participant.Source()),
			attribute.String("order_id", event.OrderID),
			attribute.String("transaction_id", event.TransactionID),
		),
	)
	defer span.End()

	unlock, err := e.guard.Lock(ctx, event.OrderID, event.TransactionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	stepErr := e.runStep(ctx, event)
	unlock()

	var next *events.Event
	messages := e.participant.Messages()
	if stepErr == nil {
		next, err = event.Record(e.participant.Source(), events.StatusSuccess, messages.Success, e.now())
	} else {
		span.RecordError(stepErr)
		e.logger.Error("saga step failed",
			zap.String("order_id", event.OrderID),
			zap.String("transaction_id", event.TransactionID),
			zap.String("status", events.StatusRollbackPending.String()),
			zap.String("kind", string(KindOf(stepErr))),
			zap.Error(stepErr),
		)
		next, err = event.Record(e.participant.Source(), events.StatusRollbackPending, messages.FailurePrefix+stepErr.Error(), e.now())
	}
	if err != nil {
		return nil, err
	}

	e.record(ctx, "forward", next.Status(), time.Since(start))

	return e.dispatch(ctx, next)
}

func (e *StepExecutor) runStep(ctx context.Context, event *events.Event) error {
	if err := e.guard.Check(ctx, event.OrderID, event.TransactionID, e.participant.Messages().Duplicate); err != nil {
		return err
	}

	if err := ValidatePayload(event); err != nil {
		return err
	}

	return e.participant.Apply(ctx, event)
}

// Compensate undoes the participant's step and publishes the resulting FAIL event.
// A failed restore is written into history and does not stop the saga from terminating.
func (e *StepExecutor) Compensate(ctx context.Context, event *events.Event) (*events.Event, error) {
	if !events.CanTransition(event.Status(), events.StatusFail) {
		return nil, errors.Wrapf(ErrMisrouted, "compensation of %s received %s", e.participant.Source(), event.Status())
	}

	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "saga_compensation",
		trace.WithAttributes(
			attribute.String("source", e.participant.Source()),
			attribute.String("order_id", event.OrderID),
			attribute.String("transaction_id", event.TransactionID),
		),
	)
	defer span.End()

	unlock, err := e.guard.Lock(ctx, event.OrderID, event.TransactionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	compensateErr := e.participant.Compensate(ctx, event)
	unlock()

	messages := e.participant.Messages()
	message := messages.Rollback
	if compensateErr != nil {
		span.RecordError(compensateErr)
		e.logger.Error("saga compensation failed",
			zap.String("order_id", event.OrderID),
			zap.String("transaction_id", event.TransactionID),
			zap.String("status", events.StatusFail.String()),
			zap.Error(compensateErr),
		)
		message = messages.RollbackFailurePrefix + compensateErr.Error()
	}

	next, err := event.Record(e.participant.Source(), events.StatusFail, message, e.now())
	if err != nil {
		return nil, err
	}

	e.record(ctx, "compensation", next.Status(), time.Since(start))

	return e.dispatch(ctx, next)
}

func (e *StepExecutor) dispatch(ctx context.Context, next *events.Event) (*events.Event, error) {
	if _, err := e.dispatcher.Dispatch(ctx, next); err != nil {
		return next, err
	}
	return next, nil
}

func (e *StepExecutor) record(ctx context.Context, direction string, status events.Status, duration time.Duration) {
	telemetry.RecordSagaStep(ctx, e.participant.Source(), direction, status.String(), duration)
}

// ValidatePayload checks the structural preconditions every forward step needs
func ValidatePayload(event *events.Event) error {
	if len(event.Payload.Products) == 0 {
		return MalformedPayload("Product list is empty!")
	}
	if event.OrderID == "" || event.Payload.ID == "" || event.TransactionID == "" {
		return MalformedPayload("OrderID and TransactionID must be informed!")
	}
	for _, line := range event.Payload.Products {
		if line.Quantity <= 0 {
			return MalformedPayload("Product quantity must be greater than zero!")
		}
	}
	return nil
}

package saga

import (
	"context"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Dispatcher routes an event and publishes it to the computed destination
type Dispatcher interface {
	Dispatch(ctx context.Context, event *events.Event) (events.Topic, error)
}

var _ Dispatcher = (*ExecutionController)(nil)

// ExecutionController decides which participant acts next.
// It keeps no state: the destination is derived from the event's source and status only.
type ExecutionController struct {
	topology  *Topology
	publisher events.Publisher
	logger    *zap.Logger
}

// NewExecutionController creates a new saga execution controller
func NewExecutionController(topology *Topology, publisher events.Publisher, logger *zap.Logger) *ExecutionController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecutionController{
		topology:  topology,
		publisher: publisher,
		logger:    logger.With(zap.String("component", "saga-execution-controller")),
	}
}

// Route returns the topic the event must be published to next.
//
//	initiator, SUCCESS          -> first participant forward topic
//	initiator, otherwise        -> ending topic
//	participant, SUCCESS        -> next participant forward topic, or ending after the last one
//	participant, ROLLBACK_PENDING -> own compensation topic
//	participant, FAIL           -> previous participant compensation topic, or ending after the first one
func (c *ExecutionController) Route(event *events.Event) (events.Topic, error) {
	nodes := c.topology.nodes
	source := event.Source()

	if source == c.topology.initiator {
		if event.Status() == events.StatusSuccess {
			return nodes[0].ForwardTopic, nil
		}
		return c.topology.endingTopic, nil
	}

	i, ok := c.topology.positions[source]
	if !ok {
		return "", errors.Wrapf(ErrUnknownSource, "source %q", source)
	}

	switch event.Status() {
	case events.StatusSuccess:
		if i == len(nodes)-1 {
			return c.topology.endingTopic, nil
		}
		return nodes[i+1].ForwardTopic, nil
	case events.StatusRollbackPending:
		return nodes[i].CompensationTopic, nil
	case events.StatusFail:
		if i == 0 {
			return c.topology.endingTopic, nil
		}
		return nodes[i-1].CompensationTopic, nil
	default:
		return "", errors.Errorf("unroutable status %q", event.Status())
	}
}

// Dispatch routes the event and publishes it
func (c *ExecutionController) Dispatch(ctx context.Context, event *events.Event) (events.Topic, error) {
	topic, err := c.Route(event)
	if err != nil {
		return "", err
	}

	if err := c.publisher.Publish(ctx, topic, event); err != nil {
		return "", errors.Wrapf(err, "failed to publish event %s to %s", event.ID, topic)
	}

	c.logger.Info("saga event dispatched",
		zap.String("order_id", event.OrderID),
		zap.String("transaction_id", event.TransactionID),
		zap.String("source", event.Source()),
		zap.String("status", event.Status().String()),
		zap.String("topic", topic.String()),
	)

	return topic, nil
}

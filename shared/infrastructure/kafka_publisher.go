package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var _ events.Publisher = (*KafkaEventPublisher)(nil)

// KafkaWriter is the part of kafka.Writer the publisher needs
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventPublisher writes saga events keyed by transaction id, so every event of a saga
// lands on the same partition of its topic
type KafkaEventPublisher struct {
	writer KafkaWriter
	logger *zap.Logger
}

// NewKafkaWriter creates a writer without a fixed topic; each message names its own
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		MaxAttempts:            5,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaEventPublisher(writer KafkaWriter, logger *zap.Logger) *KafkaEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaEventPublisher{
		writer: writer,
		logger: logger.With(zap.String("component", "kafka-publisher")),
	}
}

// Publish writes event to topic
func (p *KafkaEventPublisher) Publish(ctx context.Context, topic events.Topic, event *events.Event) error {
	message, err := events.NewMessage(topic, event)
	if err != nil {
		return err
	}

	value, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "failed to marshal message")
	}

	headers := make([]kafka.Header, 0, len(message.Metadata))
	for k, v := range message.Metadata {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic:   topic.String(),
		Key:     []byte(event.TransactionID),
		Value:   value,
		Headers: headers,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to write message to %s", topic)
	}

	p.logger.Debug("event published", zap.String("topic", topic.String()), zap.String("transaction_id", event.TransactionID))
	return nil
}

func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}

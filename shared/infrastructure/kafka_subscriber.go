package infrastructure

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var _ events.Subscriber = (*KafkaEventSubscriber)(nil)

// KafkaReader is the part of kafka.Reader the subscriber needs
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaReaderFactory opens a reader on one topic
type KafkaReaderFactory func(topic string) KafkaReader

// NewKafkaReaderFactory returns a factory of consumer group readers
func NewKafkaReaderFactory(brokers []string, groupID string) KafkaReaderFactory {
	return func(topic string) KafkaReader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:     brokers,
			Topic:       topic,
			GroupID:     groupID,
			MinBytes:    1,
			MaxBytes:    10e6,
			MaxWait:     time.Second,
			StartOffset: kafka.FirstOffset,
			Dialer: &kafka.Dialer{
				Timeout: 10 * time.Second,
			},
		})
	}
}

// KafkaEventSubscriber reads one topic per reader. An offset is committed only once the handler
// accepted the message; a failed message is retried with backoff before the reader moves on.
type KafkaEventSubscriber struct {
	mux       sync.Mutex
	newReader KafkaReaderFactory
	readers   []KafkaReader
	cancel    context.CancelFunc
	done      chan error
	backoff   time.Duration
	logger    *zap.Logger
}

func NewKafkaEventSubscriber(newReader KafkaReaderFactory, logger *zap.Logger) *KafkaEventSubscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaEventSubscriber{
		newReader: newReader,
		backoff:   time.Second,
		logger:    logger.With(zap.String("component", "kafka-subscriber")),
	}
}

// Subscribe starts one reader per topic. Kafka topics are concrete names, so wildcard patterns are rejected.
func (s *KafkaEventSubscriber) Subscribe(ctx context.Context, topics []events.Topic, handler events.Handler) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.cancel != nil {
		return errors.New("subscriber is already running")
	}
	for _, topic := range topics {
		if strings.ContainsAny(topic.String(), "*#") {
			return errors.Wrapf(events.ErrInvalidTopic, "kafka cannot subscribe to pattern %q", topic)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	gr, ctx := errgroup.WithContext(ctx)

	s.readers = make([]KafkaReader, 0, len(topics))
	for _, topic := range topics {
		reader := s.newReader(topic.String())
		s.readers = append(s.readers, reader)
		topic := topic
		gr.Go(func() error {
			return s.consume(ctx, topic, reader, handler)
		})
	}

	done := make(chan error, 1)
	s.cancel = cancel
	s.done = done
	go func() {
		done <- gr.Wait()
	}()

	s.logger.Info("kafka subscriber started", zap.Int("topics", len(topics)))
	return nil
}

func (s *KafkaEventSubscriber) consume(ctx context.Context, topic events.Topic, reader KafkaReader, handler events.Handler) error {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrapf(err, "failed to fetch from %s", topic)
		}

		event, err := s.decode(msg)
		if err != nil {
			s.logger.Warn("skipping malformed message",
				zap.String("topic", topic.String()),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		} else if !s.deliver(ctx, topic, event, handler) {
			return nil
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrapf(err, "failed to commit offset on %s", topic)
		}
	}
}

// deliver retries the handler until it succeeds; false means the subscriber is stopping
func (s *KafkaEventSubscriber) deliver(ctx context.Context, topic events.Topic, event *events.Event, handler events.Handler) bool {
	for attempt := 1; ; attempt++ {
		err := handler.Handle(ctx, topic, event)
		if err == nil {
			return true
		}

		s.logger.Error("handler failed, retrying",
			zap.String("topic", topic.String()),
			zap.String("transaction_id", event.TransactionID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		sleep(ctx, s.backoff*time.Duration(min(attempt, 30)))
		if ctx.Err() != nil {
			return false
		}
	}
}

func (s *KafkaEventSubscriber) decode(msg kafka.Message) (*events.Event, error) {
	envelope, err := events.DecodeMessage(msg.Value)
	if err != nil {
		return nil, err
	}
	return envelope.Event()
}

// Close stops every reader and returns the first consumption error
func (s *KafkaEventSubscriber) Close() error {
	s.mux.Lock()
	cancel, done, readers := s.cancel, s.done, s.readers
	s.cancel, s.done, s.readers = nil, nil, nil
	s.mux.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	err := <-done

	for _, reader := range readers {
		if closeErr := reader.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "failed to close kafka reader")
		}
	}
	return err
}

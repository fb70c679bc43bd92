package infrastructure

import (
	"context"

	"github.com/ordersaga/choreography/shared/config"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Transport is the publisher/subscriber pair selected by bus.driver
type Transport struct {
	Publisher  events.Publisher
	Subscriber events.Subscriber

	closers []func() error
}

// NewTransport builds the bus adapters for the configured driver.
// The memory driver publishes and subscribes on the same in-process bus.
func NewTransport(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Transport, error) {
	switch cfg.Bus.Driver {
	case config.DriverMemory:
		bus := NewMemoryBus(logger)
		return &Transport{
			Publisher:  bus,
			Subscriber: bus,
			closers:    []func() error{bus.Close},
		}, nil

	case config.DriverSNS:
		awsCfg, err := NewAWSConfig(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		subscriber := NewSQSEventSubscriber(
			NewSQSClient(awsCfg, cfg.AWS.EndpointSQS),
			cfg.Bus.SQSQueueURL,
			logger,
			WithWorkers(cfg.Bus.Workers),
		)
		return &Transport{
			Publisher:  NewSNSEventPublisher(NewSNSClient(awsCfg, cfg.AWS.EndpointSNS), cfg.Bus.SNSTopicArn, logger),
			Subscriber: subscriber,
			closers:    []func() error{subscriber.Close},
		}, nil

	case config.DriverKafka:
		if len(cfg.Bus.KafkaBrokers) == 0 {
			return nil, errors.New("kafka bus requires at least one broker")
		}
		publisher := NewKafkaEventPublisher(NewKafkaWriter(cfg.Bus.KafkaBrokers), logger)
		subscriber := NewKafkaEventSubscriber(NewKafkaReaderFactory(cfg.Bus.KafkaBrokers, cfg.Bus.KafkaGroupID), logger)
		return &Transport{
			Publisher:  publisher,
			Subscriber: subscriber,
			closers:    []func() error{subscriber.Close, publisher.Close},
		}, nil

	default:
		return nil, errors.Errorf("unknown bus driver %q", cfg.Bus.Driver)
	}
}

// Close stops consumption before closing the publisher
func (t *Transport) Close() error {
	var errs []error
	for _, closeFn := range t.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Errorf("errors closing transport: %v", errs)
	}
	return nil
}

// NewKeyLocker builds the idempotency key locker selected by lock.driver.
// The returned close function releases the backing client, if any.
func NewKeyLocker(ctx context.Context, cfg *config.Config, logger *zap.Logger) (saga.KeyLocker, func() error, error) {
	switch cfg.Lock.Driver {
	case config.DriverMemory:
		return saga.NewMemoryKeyLocker(), func() error { return nil }, nil

	case config.DriverRedis:
		client, err := NewRedisClient(ctx, cfg.Lock.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisKeyLocker(client, cfg.Lock.TTL, logger), client.Close, nil

	default:
		return nil, nil, errors.Errorf("unknown lock driver %q", cfg.Lock.Driver)
	}
}

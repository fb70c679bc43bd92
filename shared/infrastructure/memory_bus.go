package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	_ events.Publisher  = (*MemoryBus)(nil)
	_ events.Subscriber = (*MemoryBus)(nil)

	ErrBusClosed = errors.New("bus is closed")
)

// Delivery is one event published on the bus
type Delivery struct {
	Topic events.Topic
	Event *events.Event
}

// MemoryBus is an in-process transport. Every subscription gets its own queue and goroutine;
// a failed delivery is retried up to maxAttempts times.
type MemoryBus struct {
	mu            sync.Mutex
	subscriptions []*memorySubscription
	published     []Delivery
	pending       int
	closed        bool
	wg            sync.WaitGroup

	maxAttempts int
	retryDelay  time.Duration
	logger      *zap.Logger
}

type memorySubscription struct {
	topics  []events.Topic
	handler events.Handler
	queue   []Delivery
	notify  chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
}

type MemoryBusOption func(*MemoryBus)

func WithMaxAttempts(attempts int) MemoryBusOption {
	return func(b *MemoryBus) {
		b.maxAttempts = attempts
	}
}

func WithRetryDelay(d time.Duration) MemoryBusOption {
	return func(b *MemoryBus) {
		b.retryDelay = d
	}
}

func NewMemoryBus(logger *zap.Logger, opts ...MemoryBusOption) *MemoryBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &MemoryBus{
		maxAttempts: 3,
		retryDelay:  10 * time.Millisecond,
		logger:      logger.With(zap.String("component", "memory-bus")),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish queues a copy of event for every subscription matching topic
func (b *MemoryBus) Publish(ctx context.Context, topic events.Topic, event *events.Event) error {
	if topic == "" {
		return events.ErrInvalidTopic
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.published = append(b.published, Delivery{Topic: topic, Event: event.Clone()})
	for _, sub := range b.subscriptions {
		if !sub.matches(topic) {
			continue
		}
		b.pending++
		sub.queue = append(sub.queue, Delivery{Topic: topic, Event: event.Clone()})
		select {
		case sub.notify <- struct{}{}:
		default:
		}
	}
	return nil
}

// Subscribe registers handler for the topic patterns and starts delivering
func (b *MemoryBus) Subscribe(ctx context.Context, topics []events.Topic, handler events.Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &memorySubscription{
		topics:  topics,
		handler: handler,
		notify:  make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
	}
	b.subscriptions = append(b.subscriptions, sub)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.run(sub)
	}()
	return nil
}

func (s *memorySubscription) matches(topic events.Topic) bool {
	for _, pattern := range s.topics {
		if topic.Matches(pattern) {
			return true
		}
	}
	return false
}

func (b *MemoryBus) run(sub *memorySubscription) {
	for {
		delivery, ok := b.next(sub)
		if !ok {
			select {
			case <-sub.ctx.Done():
				return
			case <-sub.notify:
				continue
			}
		}

		b.deliver(sub, delivery)

		b.mu.Lock()
		b.pending--
		b.mu.Unlock()
	}
}

func (b *MemoryBus) next(sub *memorySubscription) (Delivery, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(sub.queue) == 0 {
		return Delivery{}, false
	}
	delivery := sub.queue[0]
	sub.queue = sub.queue[1:]
	return delivery, true
}

func (b *MemoryBus) deliver(sub *memorySubscription, delivery Delivery) {
	for attempt := 1; attempt <= b.maxAttempts; attempt++ {
		err := sub.handler.Handle(sub.ctx, delivery.Topic, delivery.Event)
		if err == nil {
			return
		}
		if sub.ctx.Err() != nil {
			return
		}

		b.logger.Warn("delivery failed",
			zap.String("topic", delivery.Topic.String()),
			zap.String("transaction_id", delivery.Event.TransactionID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		sleep(sub.ctx, b.retryDelay)
	}

	b.logger.Error("delivery dropped after retries",
		zap.String("topic", delivery.Topic.String()),
		zap.String("transaction_id", delivery.Event.TransactionID),
	)
}

// Published returns every event published so far, in publication order
func (b *MemoryBus) Published() []Delivery {
	b.mu.Lock()
	defer b.mu.Unlock()
	published := make([]Delivery, len(b.published))
	copy(published, b.published)
	return published
}

// WaitIdle blocks until no delivery is queued or running
func (b *MemoryBus) WaitIdle(ctx context.Context) error {
	ticker := time.NewTicker(2 * time.Millisecond)
	defer ticker.Stop()
	for {
		b.mu.Lock()
		idle := b.pending == 0
		b.mu.Unlock()
		if idle {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Close stops every subscription. Queued deliveries are discarded.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for _, sub := range b.subscriptions {
		b.pending -= len(sub.queue)
		sub.queue = nil
		sub.cancel()
	}
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}

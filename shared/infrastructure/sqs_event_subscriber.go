package infrastructure

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ events.Subscriber = (*SQSEventSubscriber)(nil)

// SQSAPI is the part of the SQS client the subscriber needs
type SQSAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	ChangeMessageVisibility(ctx context.Context, params *sqs.ChangeMessageVisibilityInput, optFns ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityOutput, error)
}

type sqsMessage struct {
	Message types.Message
	Topic   events.Topic
	Event   *events.Event
	Err     error
	Skip    bool
}

// snsNotification is the body SQS receives from SNS without raw message delivery
type snsNotification struct {
	Type    string `json:"Type"`
	Message string `json:"Message"`
}

// SQSEventSubscriber consumes the service queue, which SNS fans the saga topics into.
// Readers receive, workers run the handler and cleaners ack or back off.
type SQSEventSubscriber struct {
	mux              sync.Mutex
	inboundMessages  chan *sqsMessage
	outboundMessages chan *sqsMessage
	cancel           context.CancelFunc
	wg               sync.WaitGroup
	options          *sqsSubscriberOptions

	client   SQSAPI
	queueURL string
	topics   []events.Topic
	handler  events.Handler
	logger   *zap.Logger
}

type sqsSubscriberOptions struct {
	workers                        int
	readers                        int
	cleaners                       int
	maxNumberOfMessages            int32
	waitTimeSeconds                int32
	visibilityTimeout              int32
	sleepTimeAfterEmptyReceive     time.Duration
	sleepTimeAfterError            time.Duration
	ack                            bool
	extendVisibilityTimeoutOnError bool
	receiveCountRange              int32
	visibilityTimeoutOffset        int32
	maxVisibilityTimeout           int32
}

type SQSSubscriberOption func(*sqsSubscriberOptions)

func WithWorkers(workers int) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.workers = workers
	}
}

func WithReaders(readers int) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.readers = readers
	}
}

func WithVisibilityTimeout(timeout int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.visibilityTimeout = timeout
	}
}

func WithEmptyReceiveSleep(d time.Duration) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.sleepTimeAfterEmptyReceive = d
	}
}

// NewSQSEventSubscriber creates a new SQS event subscriber
func NewSQSEventSubscriber(client SQSAPI, queueURL string, logger *zap.Logger, opts ...SQSSubscriberOption) *SQSEventSubscriber {
	options := &sqsSubscriberOptions{
		workers:                        8,
		readers:                        1,
		cleaners:                       2,
		maxNumberOfMessages:            5,
		waitTimeSeconds:                15,
		visibilityTimeout:              30,
		sleepTimeAfterEmptyReceive:     time.Second,
		sleepTimeAfterError:            20 * time.Second,
		ack:                            true,
		extendVisibilityTimeoutOnError: true,
		receiveCountRange:              3,
		visibilityTimeoutOffset:        30,
		maxVisibilityTimeout:           900,
	}

	for _, opt := range opts {
		opt(options)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &SQSEventSubscriber{
		client:   client,
		queueURL: queueURL,
		options:  options,
		logger:   logger.With(zap.String("component", "sqs-subscriber"), zap.String("queue_url", queueURL)),
	}
}

// Subscribe starts consuming the queue and delivers events of the given topics to handler.
// Messages of other topics are acknowledged and dropped.
func (s *SQSEventSubscriber) Subscribe(ctx context.Context, topics []events.Topic, handler events.Handler) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.cancel != nil {
		return errors.New("subscriber is already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.topics = topics
	s.handler = handler
	s.inboundMessages = make(chan *sqsMessage, s.options.workers)
	s.outboundMessages = make(chan *sqsMessage, s.options.workers)

	s.spawn(ctx, s.options.workers, s.startWorker)
	s.spawn(ctx, s.options.readers, s.startReader)
	s.spawn(ctx, s.options.cleaners, s.startCleaner)

	s.logger.Info("sqs subscriber started", zap.Int("topics", len(topics)))
	return nil
}

func (s *SQSEventSubscriber) spawn(ctx context.Context, n int, fn func(context.Context)) {
	for i := 0; i < n; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			fn(ctx)
		}()
	}
}

// Close stops the subscriber and waits for in-flight messages
func (s *SQSEventSubscriber) Close() error {
	s.mux.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mux.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	s.wg.Wait()
	return nil
}

func (s *SQSEventSubscriber) startWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.inboundMessages:
			s.handle(ctx, message)
		}
	}
}

func (s *SQSEventSubscriber) startReader(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if err := s.read(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("failed to read from SQS", zap.Error(err))
			sleep(ctx, s.options.sleepTimeAfterError)
		}
	}
}

func (s *SQSEventSubscriber) startCleaner(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.outboundMessages:
			if err := s.clean(ctx, message); err != nil {
				s.logger.Error("failed to settle SQS message", zap.Error(err))
			}
		}
	}
}

func (s *SQSEventSubscriber) read(ctx context.Context) error {
	output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.queueURL),
		MaxNumberOfMessages: s.options.maxNumberOfMessages,
		WaitTimeSeconds:     s.options.waitTimeSeconds,
		VisibilityTimeout:   s.options.visibilityTimeout,
		MessageSystemAttributeNames: []types.MessageSystemAttributeName{
			types.MessageSystemAttributeNameApproximateReceiveCount,
		},
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to receive message from SQS")
	}

	if len(output.Messages) == 0 {
		sleep(ctx, s.options.sleepTimeAfterEmptyReceive)
		return nil
	}

	for _, message := range output.Messages {
		inbound := s.decode(message)
		if inbound == nil {
			continue
		}

		select {
		case s.inboundMessages <- inbound:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// decode returns nil for bodies that are not saga messages; they stay on the queue for the redrive policy
func (s *SQSEventSubscriber) decode(message types.Message) *sqsMessage {
	body := []byte(aws.ToString(message.Body))

	var notification snsNotification
	if err := json.Unmarshal(body, &notification); err == nil && notification.Type == "Notification" {
		body = []byte(notification.Message)
	}

	envelope, err := events.DecodeMessage(body)
	if err != nil {
		s.logger.Warn("skipping malformed message", zap.String("message_id", aws.ToString(message.MessageId)), zap.Error(err))
		return nil
	}

	if !s.subscribed(envelope.Topic) {
		return &sqsMessage{Message: message, Topic: envelope.Topic, Skip: true}
	}

	event, err := envelope.Event()
	if err != nil {
		s.logger.Warn("skipping malformed event", zap.String("message_id", aws.ToString(message.MessageId)), zap.Error(err))
		return nil
	}

	return &sqsMessage{Message: message, Topic: envelope.Topic, Event: event}
}

func (s *SQSEventSubscriber) subscribed(topic events.Topic) bool {
	for _, pattern := range s.topics {
		if topic.Matches(pattern) {
			return true
		}
	}
	return false
}

func (s *SQSEventSubscriber) handle(ctx context.Context, message *sqsMessage) {
	if !message.Skip {
		message.Err = s.handler.Handle(ctx, message.Topic, message.Event)
	}

	select {
	case s.outboundMessages <- message:
	case <-ctx.Done():
	}
}

func (s *SQSEventSubscriber) clean(ctx context.Context, message *sqsMessage) error {
	if message.Err != nil {
		if !s.options.extendVisibilityTimeoutOnError {
			return nil
		}

		receiveCount, err := strconv.Atoi(message.Message.Attributes[string(types.MessageSystemAttributeNameApproximateReceiveCount)])
		if err != nil {
			receiveCount = 1
		}

		_, err = s.client.ChangeMessageVisibility(ctx, &sqs.ChangeMessageVisibilityInput{
			QueueUrl:          aws.String(s.queueURL),
			ReceiptHandle:     message.Message.ReceiptHandle,
			VisibilityTimeout: s.backoff(receiveCount),
		})
		if err != nil {
			return errors.Wrap(err, "failed to extend visibility timeout")
		}
		return nil
	}

	if s.options.ack {
		_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
			QueueUrl:      aws.String(s.queueURL),
			ReceiptHandle: message.Message.ReceiptHandle,
		})
		if err != nil {
			return errors.Wrap(err, "failed to delete message from SQS")
		}
	}

	return nil
}

// backoff grows the visibility timeout every receiveCountRange deliveries, capped at maxVisibilityTimeout
func (s *SQSEventSubscriber) backoff(receiveCount int) int32 {
	timeout := s.options.visibilityTimeout + (int32(receiveCount)/s.options.receiveCountRange)*s.options.visibilityTimeoutOffset
	if timeout > s.options.maxVisibilityTimeout {
		return s.options.maxVisibilityTimeout
	}
	return timeout
}

func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

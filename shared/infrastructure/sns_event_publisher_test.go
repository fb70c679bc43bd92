package infrastructure

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTopicArn = "arn:aws:sns:us-east-1:000000000000:saga-events"

func TestSNSEventPublisher_Publish(t *testing.T) {
	client := mocks.NewMockSNSAPI(t)
	event := testEvent()

	client.EXPECT().PublishBatch(mock.Anything, mock.MatchedBy(func(input *sns.PublishBatchInput) bool {
		if aws.ToString(input.TopicArn) != testTopicArn || len(input.PublishBatchRequestEntries) != 1 {
			return false
		}
		entry := input.PublishBatchRequestEntries[0]
		if aws.ToString(entry.MessageAttributes[TopicAttribute].StringValue) != events.ProductValidationSuccessTopic.String() {
			return false
		}
		message, err := events.DecodeMessage([]byte(aws.ToString(entry.Message)))
		if err != nil || message.Topic != events.ProductValidationSuccessTopic {
			return false
		}
		decoded, err := message.Event()
		return err == nil && decoded.TransactionID == event.TransactionID
	})).Return(&sns.PublishBatchOutput{}, nil).Once()

	publisher := NewSNSEventPublisher(client, testTopicArn, nil)
	require.NoError(t, publisher.Publish(context.Background(), events.ProductValidationSuccessTopic, event))
}

func TestSNSEventPublisher_PublishBatchSplitsIntoChunks(t *testing.T) {
	client := mocks.NewMockSNSAPI(t)

	var (
		mu    sync.Mutex
		sizes []int
	)
	client.EXPECT().PublishBatch(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input *sns.PublishBatchInput, _ ...func(*sns.Options)) {
			mu.Lock()
			defer mu.Unlock()
			sizes = append(sizes, len(input.PublishBatchRequestEntries))
		}).
		Return(&sns.PublishBatchOutput{}, nil).Times(2)

	evts := make([]*events.Event, 12)
	for i := range evts {
		evts[i] = testEvent()
	}

	publisher := NewSNSEventPublisher(client, testTopicArn, nil)
	require.NoError(t, publisher.PublishBatch(context.Background(), events.PaymentSuccessTopic, evts...))
	assert.ElementsMatch(t, []int{10, 2}, sizes)
}

func TestSNSEventPublisher_RejectedEntries(t *testing.T) {
	client := mocks.NewMockSNSAPI(t)
	event := testEvent()

	client.EXPECT().PublishBatch(mock.Anything, mock.Anything).Return(&sns.PublishBatchOutput{
		Failed: []types.BatchResultErrorEntry{{
			Id:      aws.String(event.ID.String()),
			Code:    aws.String("InternalError"),
			Message: aws.String("try again"),
		}},
	}, nil).Once()

	publisher := NewSNSEventPublisher(client, testTopicArn, nil)
	err := publisher.Publish(context.Background(), events.PaymentSuccessTopic, event)
	assert.ErrorContains(t, err, "1 of 1 events rejected by SNS")
}

func TestSplitToChunks(t *testing.T) {
	chunks := splitToChunks([]int{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
	assert.Nil(t, splitToChunks([]int{}, 2))
}

func TestSNSEventPublisher_MessageBodyIsEnvelope(t *testing.T) {
	client := mocks.NewMockSNSAPI(t)

	var body string
	client.EXPECT().PublishBatch(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input *sns.PublishBatchInput, _ ...func(*sns.Options)) {
			body = aws.ToString(input.PublishBatchRequestEntries[0].Message)
		}).
		Return(&sns.PublishBatchOutput{}, nil).Once()

	publisher := NewSNSEventPublisher(client, testTopicArn, nil)
	require.NoError(t, publisher.Publish(context.Background(), events.NotifyEndingTopic, testEvent()))

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	assert.Equal(t, "notify-ending", raw["topic"])
	assert.Contains(t, raw, "payload")
}

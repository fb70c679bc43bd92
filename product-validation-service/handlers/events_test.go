package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/mocks"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func testEvent() *events.Event {
	return events.NewEvent(events.Order{
		ID:            "order-1",
		TransactionID: "1772366400000_tx",
		Products: []events.OrderProducts{
			{Product: events.Product{Code: "BOOKS", UnitValue: 20}, Quantity: 1},
		},
	}, events.OrderSource, "Saga started!", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
}

func TestValidationEventHandlers_Handle(t *testing.T) {
	event := testEvent()

	tests := []struct {
		name          string
		topic         events.Topic
		setupMocks    func(*mocks.MockStep)
		expectedError string
	}{
		{
			name:  "validation request runs the forward step",
			topic: events.ProductValidationSuccessTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Execute(context.Background(), event).Return(event, nil).Once()
			},
		},
		{
			name:  "rollback runs the compensation",
			topic: events.ProductValidationFailTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Compensate(context.Background(), event).Return(event, nil).Once()
			},
		},
		{
			name:  "misrouted events are dropped",
			topic: events.ProductValidationFailTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Compensate(context.Background(), event).
					Return(nil, errors.Wrap(saga.ErrMisrouted, "compensation received SUCCESS")).Once()
			},
		},
		{
			name:  "publish failures are returned for redelivery",
			topic: events.ProductValidationSuccessTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Execute(context.Background(), event).Return(event, errors.New("broker unavailable")).Once()
			},
			expectedError: "broker unavailable",
		},
		{
			name:       "other topics are ignored",
			topic:      events.PaymentSuccessTopic,
			setupMocks: func(*mocks.MockStep) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := mocks.NewMockStep(t)
			tt.setupMocks(step)

			h := NewValidationEventHandlers(step, nil)
			err := h.Handle(context.Background(), tt.topic, event)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationEventHandlers_Topics(t *testing.T) {
	h := NewValidationEventHandlers(mocks.NewMockStep(t), nil)

	assert.ElementsMatch(t, []events.Topic{
		events.ProductValidationSuccessTopic,
		events.ProductValidationFailTopic,
	}, h.Topics())
	assert.Equal(t, "product-validation-service-event-handler", h.HandlerID())
}

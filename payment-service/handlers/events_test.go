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

func TestPaymentEventHandlers_Handle(t *testing.T) {
	event := events.NewEvent(events.Order{
		ID:            "order-1",
		TransactionID: "1772366400000_tx",
		Products:      []events.OrderProducts{{Product: events.Product{Code: "MUSIC", UnitValue: 9}, Quantity: 1}},
	}, events.OrderSource, "Saga started!", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name          string
		topic         events.Topic
		setupMocks    func(*mocks.MockStep)
		expectedError string
	}{
		{
			name:  "payment request",
			topic: events.PaymentSuccessTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Execute(context.Background(), event).Return(event, nil).Once()
			},
		},
		{
			name:  "refund",
			topic: events.PaymentFailTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Compensate(context.Background(), event).Return(event, nil).Once()
			},
		},
		{
			name:  "misrouted payment request is dropped",
			topic: events.PaymentSuccessTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Execute(context.Background(), event).Return(nil, errors.WithStack(saga.ErrMisrouted)).Once()
			},
		},
		{
			name:  "lock failure is returned",
			topic: events.PaymentFailTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Compensate(context.Background(), event).Return(nil, errors.New("failed to lock idempotency key")).Once()
			},
			expectedError: "failed to lock idempotency key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := mocks.NewMockStep(t)
			tt.setupMocks(step)

			err := NewPaymentEventHandlers(step, nil).Handle(context.Background(), tt.topic, event)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

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

func TestInventoryEventHandlers_Handle(t *testing.T) {
	event := events.NewEvent(events.Order{
		ID:            "order-1",
		TransactionID: "1772366400000_tx",
		Products:      []events.OrderProducts{{Product: events.Product{Code: "BOOKS", UnitValue: 12}, Quantity: 1}},
	}, events.OrderSource, "Saga started!", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name          string
		topic         events.Topic
		setupMocks    func(*mocks.MockStep)
		expectedError string
	}{
		{
			name:  "inventory update",
			topic: events.InventorySuccessTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Execute(context.Background(), event).Return(event, nil).Once()
			},
		},
		{
			name:  "inventory rollback",
			topic: events.InventoryFailTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Compensate(context.Background(), event).Return(event, nil).Once()
			},
		},
		{
			name:  "misrouted rollback is dropped",
			topic: events.InventoryFailTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Compensate(context.Background(), event).Return(nil, errors.WithStack(saga.ErrMisrouted)).Once()
			},
		},
		{
			name:  "publish failure is returned",
			topic: events.InventorySuccessTopic,
			setupMocks: func(step *mocks.MockStep) {
				step.EXPECT().Execute(context.Background(), event).Return(event, errors.New("failed to publish event")).Once()
			},
			expectedError: "failed to publish event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := mocks.NewMockStep(t)
			tt.setupMocks(step)

			err := NewInventoryEventHandlers(step, nil).Handle(context.Background(), tt.topic, event)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInventoryEventHandlers_Topics(t *testing.T) {
	h := NewInventoryEventHandlers(mocks.NewMockStep(t), nil)

	assert.ElementsMatch(t, []events.Topic{events.InventorySuccessTopic, events.InventoryFailTopic}, h.Topics())
	assert.Equal(t, "inventory-service-event-handler", h.HandlerID())
}

package saga_test

import (
	"context"
	"testing"
	"time"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/mocks"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var paymentMessages = saga.Messages{
	Success:               "Payment realized successfully!",
	FailurePrefix:         "Fail to realize payment: ",
	Duplicate:             "There's another transactionId for this payment.",
	Rollback:              "Rollback executed for payment!",
	RollbackFailurePrefix: "Rollback not executed for payment: ",
}

func newParticipant(t *testing.T) *mocks.MockParticipant {
	participant := mocks.NewMockParticipant(t)
	participant.EXPECT().Source().Return(events.PaymentSource).Maybe()
	participant.EXPECT().Messages().Return(paymentMessages).Maybe()
	return participant
}

func TestStepExecutor_Execute(t *testing.T) {
	tests := []struct {
		name            string
		event           func(t *testing.T) *events.Event
		setupMocks      func(*mocks.MockParticipant, *mocks.MockRecordStore, *mocks.MockDispatcher)
		expectedStatus  events.Status
		expectedMessage string
		expectedError   string
	}{
		{
			name:  "step succeeds",
			event: func(t *testing.T) *events.Event { return eventAt(t, events.ProductValidationSource, events.StatusSuccess) },
			setupMocks: func(participant *mocks.MockParticipant, records *mocks.MockRecordStore, dispatcher *mocks.MockDispatcher) {
				records.EXPECT().ExistsByOrderIDAndTransactionID(mock.Anything, "order-1", "1772366400000_tx").Return(false, nil).Once()
				participant.EXPECT().Apply(mock.Anything, mock.Anything).Return(nil).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.Status() == events.StatusSuccess && evt.Source() == events.PaymentSource
				})).Return(events.InventorySuccessTopic, nil).Once()
			},
			expectedStatus:  events.StatusSuccess,
			expectedMessage: "Payment realized successfully!",
		},
		{
			name:  "duplicate transaction is not applied",
			event: func(t *testing.T) *events.Event { return eventAt(t, events.ProductValidationSource, events.StatusSuccess) },
			setupMocks: func(participant *mocks.MockParticipant, records *mocks.MockRecordStore, dispatcher *mocks.MockDispatcher) {
				records.EXPECT().ExistsByOrderIDAndTransactionID(mock.Anything, "order-1", "1772366400000_tx").Return(true, nil).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(events.PaymentFailTopic, nil).Once()
			},
			expectedStatus:  events.StatusRollbackPending,
			expectedMessage: "Fail to realize payment: There's another transactionId for this payment.",
		},
		{
			name: "empty product list",
			event: func(t *testing.T) *events.Event {
				order := testOrder()
				order.Products = nil
				return events.NewEvent(order, events.OrderSource, "Saga started!", testNow)
			},
			setupMocks: func(participant *mocks.MockParticipant, records *mocks.MockRecordStore, dispatcher *mocks.MockDispatcher) {
				records.EXPECT().ExistsByOrderIDAndTransactionID(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(events.PaymentFailTopic, nil).Once()
			},
			expectedStatus:  events.StatusRollbackPending,
			expectedMessage: "Fail to realize payment: Product list is empty!",
		},
		{
			name: "missing transaction id",
			event: func(t *testing.T) *events.Event {
				event := eventAt(t, events.ProductValidationSource, events.StatusSuccess)
				event.TransactionID = ""
				return event
			},
			setupMocks: func(participant *mocks.MockParticipant, records *mocks.MockRecordStore, dispatcher *mocks.MockDispatcher) {
				records.EXPECT().ExistsByOrderIDAndTransactionID(mock.Anything, "order-1", "").Return(false, nil).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(events.PaymentFailTopic, nil).Once()
			},
			expectedStatus:  events.StatusRollbackPending,
			expectedMessage: "Fail to realize payment: OrderID and TransactionID must be informed!",
		},
		{
			name: "non-positive quantity",
			event: func(t *testing.T) *events.Event {
				order := testOrder()
				order.Products[0].Quantity = -3
				return events.NewEvent(order, events.OrderSource, "Saga started!", testNow)
			},
			setupMocks: func(participant *mocks.MockParticipant, records *mocks.MockRecordStore, dispatcher *mocks.MockDispatcher) {
				records.EXPECT().ExistsByOrderIDAndTransactionID(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(events.PaymentFailTopic, nil).Once()
			},
			expectedStatus:  events.StatusRollbackPending,
			expectedMessage: "Fail to realize payment: Product quantity must be greater than zero!",
		},
		{
			name:  "domain rule violation",
			event: func(t *testing.T) *events.Event { return eventAt(t, events.ProductValidationSource, events.StatusSuccess) },
			setupMocks: func(participant *mocks.MockParticipant, records *mocks.MockRecordStore, dispatcher *mocks.MockDispatcher) {
				records.EXPECT().ExistsByOrderIDAndTransactionID(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
				participant.EXPECT().Apply(mock.Anything, mock.Anything).
					Return(saga.DomainRuleViolation("The minimum amount available is 0.1")).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(events.PaymentFailTopic, nil).Once()
			},
			expectedStatus:  events.StatusRollbackPending,
			expectedMessage: "Fail to realize payment: The minimum amount available is 0.1",
		},
		{
			name:  "record store failure becomes a rollback",
			event: func(t *testing.T) *events.Event { return eventAt(t, events.ProductValidationSource, events.StatusSuccess) },
			setupMocks: func(participant *mocks.MockParticipant, records *mocks.MockRecordStore, dispatcher *mocks.MockDispatcher) {
				records.EXPECT().ExistsByOrderIDAndTransactionID(mock.Anything, mock.Anything, mock.Anything).
					Return(false, errors.New("connection refused")).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(events.PaymentFailTopic, nil).Once()
			},
			expectedStatus:  events.StatusRollbackPending,
			expectedMessage: "Fail to realize payment: failed to check step record: connection refused",
		},
		{
			name:  "publish failure is surfaced with the new event",
			event: func(t *testing.T) *events.Event { return eventAt(t, events.ProductValidationSource, events.StatusSuccess) },
			setupMocks: func(participant *mocks.MockParticipant, records *mocks.MockRecordStore, dispatcher *mocks.MockDispatcher) {
				records.EXPECT().ExistsByOrderIDAndTransactionID(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
				participant.EXPECT().Apply(mock.Anything, mock.Anything).Return(nil).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(events.Topic(""), errors.New("broker unavailable")).Once()
			},
			expectedStatus:  events.StatusSuccess,
			expectedMessage: "Payment realized successfully!",
			expectedError:   "broker unavailable",
		},
		{
			name:          "rollback event is misrouted",
			event:         func(t *testing.T) *events.Event { return eventAt(t, events.InventorySource, events.StatusRollbackPending) },
			setupMocks:    func(*mocks.MockParticipant, *mocks.MockRecordStore, *mocks.MockDispatcher) {},
			expectedError: "event status not accepted by this step",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participant := newParticipant(t)
			records := mocks.NewMockRecordStore(t)
			dispatcher := mocks.NewMockDispatcher(t)
			tt.setupMocks(participant, records, dispatcher)

			input := tt.event(t)
			before := len(input.History())

			executor := saga.NewStepExecutor(participant, saga.NewGuard(events.PaymentSource, records, nil), dispatcher, nil,
				saga.WithClock(func() time.Time { return testNow }))
			next, err := executor.Execute(context.Background(), input)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			if tt.expectedStatus == "" {
				assert.Nil(t, next)
				return
			}

			require.NotNil(t, next)
			assert.Equal(t, tt.expectedStatus, next.Status())
			assert.Equal(t, events.PaymentSource, next.Source())
			require.Len(t, next.History(), before+1)
			last, _ := next.LastHistory()
			assert.Equal(t, tt.expectedMessage, last.Message)
			assert.Equal(t, tt.expectedStatus, last.Status)
			assert.Equal(t, testNow, last.CreatedAt)
			assert.Len(t, input.History(), before)
		})
	}
}

func TestStepExecutor_Compensate(t *testing.T) {
	tests := []struct {
		name            string
		event           func(t *testing.T) *events.Event
		setupMocks      func(*mocks.MockParticipant, *mocks.MockDispatcher)
		expectedMessage string
		expectedError   string
	}{
		{
			name:  "own failure is compensated",
			event: func(t *testing.T) *events.Event { return eventAt(t, events.PaymentSource, events.StatusRollbackPending) },
			setupMocks: func(participant *mocks.MockParticipant, dispatcher *mocks.MockDispatcher) {
				participant.EXPECT().Compensate(mock.Anything, mock.Anything).Return(nil).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.Status() == events.StatusFail
				})).Return(events.ProductValidationFailTopic, nil).Once()
			},
			expectedMessage: "Rollback executed for payment!",
		},
		{
			name:  "downstream rollback is compensated",
			event: func(t *testing.T) *events.Event { return eventAt(t, events.InventorySource, events.StatusFail) },
			setupMocks: func(participant *mocks.MockParticipant, dispatcher *mocks.MockDispatcher) {
				participant.EXPECT().Compensate(mock.Anything, mock.Anything).Return(nil).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(events.ProductValidationFailTopic, nil).Once()
			},
			expectedMessage: "Rollback executed for payment!",
		},
		{
			name:  "compensation failure still terminates",
			event: func(t *testing.T) *events.Event { return eventAt(t, events.PaymentSource, events.StatusRollbackPending) },
			setupMocks: func(participant *mocks.MockParticipant, dispatcher *mocks.MockDispatcher) {
				participant.EXPECT().Compensate(mock.Anything, mock.Anything).
					Return(saga.CompensationFailure("Payment not found by orderID and transactionID")).Once()
				dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(events.ProductValidationFailTopic, nil).Once()
			},
			expectedMessage: "Rollback not executed for payment: Payment not found by orderID and transactionID",
		},
		{
			name:          "success event is misrouted",
			event:         func(t *testing.T) *events.Event { return eventAt(t, events.InventorySource, events.StatusSuccess) },
			setupMocks:    func(*mocks.MockParticipant, *mocks.MockDispatcher) {},
			expectedError: "event status not accepted by this step",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participant := newParticipant(t)
			records := mocks.NewMockRecordStore(t)
			dispatcher := mocks.NewMockDispatcher(t)
			tt.setupMocks(participant, dispatcher)

			input := tt.event(t)
			executor := saga.NewStepExecutor(participant, saga.NewGuard(events.PaymentSource, records, nil), dispatcher, nil)
			next, err := executor.Compensate(context.Background(), input)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				assert.Nil(t, next)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, events.StatusFail, next.Status())
			assert.Equal(t, events.PaymentSource, next.Source())
			require.Len(t, next.History(), len(input.History())+1)
			last, _ := next.LastHistory()
			assert.Equal(t, tt.expectedMessage, last.Message)
		})
	}
}

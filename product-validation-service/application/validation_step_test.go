package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/ordersaga/choreography/product-validation-service/application"
	"github.com/ordersaga/choreography/product-validation-service/domain"
	"github.com/ordersaga/choreography/product-validation-service/infrastructure"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/mocks"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var stepNow = time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC)

type stepFixture struct {
	executor    *saga.StepExecutor
	validations *infrastructure.MemoryValidationRepository
	published   []events.Topic
}

func newStepFixture(t *testing.T) *stepFixture {
	f := &stepFixture{validations: infrastructure.NewMemoryValidationRepository()}

	publisher := mocks.NewMockPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, topic events.Topic, _ *events.Event) {
			f.published = append(f.published, topic)
		}).
		Return(nil).Maybe()

	participant := application.NewValidateProducts(infrastructure.NewMemoryProductRepository(domain.Catalog...), f.validations)
	f.executor = saga.NewStepExecutor(
		participant,
		saga.NewGuard(participant.Source(), f.validations, nil),
		saga.NewExecutionController(saga.OrderFulfillment(), publisher, nil),
		nil,
		saga.WithClock(func() time.Time { return stepNow }),
	)
	return f
}

func startedEvent(codes ...string) *events.Event {
	products := make([]events.OrderProducts, 0, len(codes))
	for _, code := range codes {
		products = append(products, events.OrderProducts{Product: events.Product{Code: code, UnitValue: 10}, Quantity: 2})
	}
	return events.NewEvent(events.Order{
		ID:            "order-1",
		TransactionID: "1772366400000_tx",
		Products:      products,
	}, events.OrderSource, "Saga started!", stepNow.Add(-time.Second))
}

func TestValidationStep_ValidOrderMovesToPayment(t *testing.T) {
	f := newStepFixture(t)

	next, err := f.executor.Execute(context.Background(), startedEvent("COMIC_BOOKS", "BOOKS"))
	require.NoError(t, err)

	assert.Equal(t, events.StatusSuccess, next.Status())
	assert.Equal(t, events.ProductValidationSource, next.Source())
	last, _ := next.LastHistory()
	assert.Equal(t, "Products are validated successfully!", last.Message)
	assert.Equal(t, []events.Topic{events.PaymentSuccessTopic}, f.published)

	validation, err := f.validations.FindByOrderIDAndTransactionID(context.Background(), "order-1", "1772366400000_tx")
	require.NoError(t, err)
	assert.True(t, validation.Success)
}

func TestValidationStep_UnknownProductRollsBack(t *testing.T) {
	f := newStepFixture(t)

	next, err := f.executor.Execute(context.Background(), startedEvent("UNKNOWN"))
	require.NoError(t, err)

	assert.Equal(t, events.StatusRollbackPending, next.Status())
	last, _ := next.LastHistory()
	assert.Equal(t, "Fail to validate products: Product does not exists in database!", last.Message)
	assert.Equal(t, []events.Topic{events.ProductValidationFailTopic}, f.published)

	rolledBack, err := f.executor.Compensate(context.Background(), next)
	require.NoError(t, err)

	assert.Equal(t, events.StatusFail, rolledBack.Status())
	last, _ = rolledBack.LastHistory()
	assert.Equal(t, "Rollback executed on product validation!", last.Message)
	assert.Equal(t, []events.Topic{events.ProductValidationFailTopic, events.NotifyEndingTopic}, f.published)

	validation, err := f.validations.FindByOrderIDAndTransactionID(context.Background(), "order-1", "1772366400000_tx")
	require.NoError(t, err)
	assert.False(t, validation.Success)
}

func TestValidationStep_RedeliveryIsRejected(t *testing.T) {
	f := newStepFixture(t)
	event := startedEvent("MOVIES")

	_, err := f.executor.Execute(context.Background(), event)
	require.NoError(t, err)

	again, err := f.executor.Execute(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, events.StatusRollbackPending, again.Status())
	last, _ := again.LastHistory()
	assert.Equal(t, "Fail to validate products: There's another transactionId for this validation.", last.Message)

	validation, err := f.validations.FindByOrderIDAndTransactionID(context.Background(), "order-1", "1772366400000_tx")
	require.NoError(t, err)
	assert.True(t, validation.Success)
}

func TestValidationStep_EmptyProductList(t *testing.T) {
	f := newStepFixture(t)

	next, err := f.executor.Execute(context.Background(), startedEvent())
	require.NoError(t, err)

	assert.Equal(t, events.StatusRollbackPending, next.Status())
	last, _ := next.LastHistory()
	assert.Equal(t, "Fail to validate products: Product list is empty!", last.Message)

	exists, err := f.validations.ExistsByOrderIDAndTransactionID(context.Background(), "order-1", "1772366400000_tx")
	require.NoError(t, err)
	assert.False(t, exists)
}

package application_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ordersaga/choreography/inventory-service/application"
	"github.com/ordersaga/choreography/inventory-service/infrastructure"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/mocks"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var stepNow = time.Date(2026, 3, 1, 12, 0, 3, 0, time.UTC)

type inventoryFixture struct {
	executor         *saga.StepExecutor
	inventories      *infrastructure.MemoryInventoryRepository
	orderInventories *infrastructure.MemoryOrderInventoryRepository

	mu        sync.Mutex
	published []events.Topic
}

func newInventoryFixture(t *testing.T) *inventoryFixture {
	f := &inventoryFixture{
		inventories:      infrastructure.NewMemoryInventoryRepository(map[string]int{"BOOKS": 2, "MOVIES": 5}),
		orderInventories: infrastructure.NewMemoryOrderInventoryRepository(),
	}

	publisher := mocks.NewMockPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, topic events.Topic, _ *events.Event) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.published = append(f.published, topic)
		}).
		Return(nil).Maybe()

	participant := application.NewUpdateInventory(f.inventories, f.orderInventories)
	f.executor = saga.NewStepExecutor(
		participant,
		saga.NewGuard(participant.Source(), f.orderInventories, nil),
		saga.NewExecutionController(saga.OrderFulfillment(), publisher, nil),
		nil,
		saga.WithClock(func() time.Time { return stepNow }),
	)
	return f
}

func (f *inventoryFixture) available(t *testing.T, code string) int {
	t.Helper()
	inventory, err := f.inventories.FindByProductCode(context.Background(), code)
	require.NoError(t, err)
	return inventory.Available
}

func inventoryRequest(lines ...events.OrderProducts) *events.Event {
	return sagaRequest("order-1", "1772366400000_tx", lines...)
}

func sagaRequest(orderID, transactionID string, lines ...events.OrderProducts) *events.Event {
	return events.NewEvent(events.Order{
		ID:            orderID,
		TransactionID: transactionID,
		Products:      lines,
	}, events.OrderSource, "Saga started!", stepNow.Add(-time.Second))
}

func line(code string, quantity int) events.OrderProducts {
	return events.OrderProducts{Product: events.Product{Code: code, UnitValue: 10}, Quantity: quantity}
}

func TestInventoryStep_SufficientStock(t *testing.T) {
	f := newInventoryFixture(t)

	next, err := f.executor.Execute(context.Background(), inventoryRequest(line("BOOKS", 1)))
	require.NoError(t, err)

	assert.Equal(t, events.StatusSuccess, next.Status())
	history := next.History()
	require.Len(t, history, 2)
	assert.Equal(t, "Saga started!", history[0].Message)
	assert.Equal(t, "Inventory updated successfully!", history[1].Message)
	assert.Equal(t, events.InventorySource, history[1].Source)
	assert.Equal(t, 1, f.available(t, "BOOKS"))
	assert.Equal(t, []events.Topic{events.NotifyEndingTopic}, f.published)
}

func TestInventoryStep_OutOfStockRollsBack(t *testing.T) {
	f := newInventoryFixture(t)

	failed, err := f.executor.Execute(context.Background(), inventoryRequest(line("BOOKS", 3)))
	require.NoError(t, err)

	assert.Equal(t, events.StatusRollbackPending, failed.Status())
	assert.Equal(t, 2, f.available(t, "BOOKS"))

	rolledBack, err := f.executor.Compensate(context.Background(), failed)
	require.NoError(t, err)

	assert.Equal(t, events.StatusFail, rolledBack.Status())
	assert.Equal(t, 2, f.available(t, "BOOKS"))

	var messages []string
	for _, entry := range rolledBack.History() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{
		"Saga started!",
		"Fail to update inventory: Product is out of stock.",
		"Rollback executed on inventory.",
	}, messages)
	assert.Equal(t, []events.Topic{events.InventoryFailTopic, events.PaymentFailTopic}, f.published)
}

func TestInventoryStep_LinesAreDecrementedTogether(t *testing.T) {
	f := newInventoryFixture(t)

	failed, err := f.executor.Execute(context.Background(), inventoryRequest(line("BOOKS", 1), line("MOVIES", 6)))
	require.NoError(t, err)

	assert.Equal(t, events.StatusRollbackPending, failed.Status())
	assert.Equal(t, 2, f.available(t, "BOOKS"))
	assert.Equal(t, 5, f.available(t, "MOVIES"))
}

func TestInventoryStep_ApplyThenCompensateRestores(t *testing.T) {
	f := newInventoryFixture(t)

	applied, err := f.executor.Execute(context.Background(), inventoryRequest(line("BOOKS", 2), line("MOVIES", 4)))
	require.NoError(t, err)
	require.Equal(t, events.StatusSuccess, applied.Status())
	assert.Equal(t, 0, f.available(t, "BOOKS"))
	assert.Equal(t, 1, f.available(t, "MOVIES"))

	downstream, err := applied.Record(events.InventorySource, events.StatusRollbackPending, "Fail to update inventory: timeout", stepNow)
	require.NoError(t, err)

	_, err = f.executor.Compensate(context.Background(), downstream)
	require.NoError(t, err)

	assert.Equal(t, 2, f.available(t, "BOOKS"))
	assert.Equal(t, 5, f.available(t, "MOVIES"))
}

func TestInventoryStep_RedeliveryDoesNotDecrementTwice(t *testing.T) {
	f := newInventoryFixture(t)
	event := inventoryRequest(line("MOVIES", 2))

	_, err := f.executor.Execute(context.Background(), event)
	require.NoError(t, err)

	again, err := f.executor.Execute(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, events.StatusRollbackPending, again.Status())
	last, _ := again.LastHistory()
	assert.Equal(t, "Fail to update inventory: There's another transactionId for this orderInventory", last.Message)
	assert.Equal(t, 3, f.available(t, "MOVIES"))

	items, err := f.orderInventories.FindByOrderIDAndTransactionID(context.Background(), "order-1", "1772366400000_tx")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestInventoryStep_CompensationKeepsOtherSagasDecrements(t *testing.T) {
	tests := []struct {
		name           string
		firstQuantity  int
		firstStatus    events.Status
		expectedBefore int
		expectedAfter  int
	}{
		{
			name:           "step that decremented nothing",
			firstQuantity:  100,
			firstStatus:    events.StatusRollbackPending,
			expectedBefore: 2,
			expectedAfter:  2,
		},
		{
			name:           "step that decremented",
			firstQuantity:  1,
			firstStatus:    events.StatusSuccess,
			expectedBefore: 1,
			expectedAfter:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInventoryFixture(t)
			ctx := context.Background()

			first, err := f.executor.Execute(ctx, sagaRequest("order-x", "1772366400000_x", line("MOVIES", tt.firstQuantity)))
			require.NoError(t, err)
			require.Equal(t, tt.firstStatus, first.Status())

			second, err := f.executor.Execute(ctx, sagaRequest("order-y", "1772366400000_y", line("MOVIES", 3)))
			require.NoError(t, err)
			require.Equal(t, events.StatusSuccess, second.Status())
			assert.Equal(t, tt.expectedBefore, f.available(t, "MOVIES"))

			if first.Status() == events.StatusSuccess {
				first, err = first.Record(events.InventorySource, events.StatusRollbackPending, "Fail to update inventory: timeout", stepNow)
				require.NoError(t, err)
			}
			_, err = f.executor.Compensate(ctx, first)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedAfter, f.available(t, "MOVIES"))
		})
	}
}

func TestInventoryStep_ConcurrentDuplicatesDecrementOnce(t *testing.T) {
	f := newInventoryFixture(t)
	event := inventoryRequest(line("MOVIES", 2))

	const deliveries = 50
	results := make(chan *events.Event, deliveries)
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			next, err := f.executor.Execute(context.Background(), event.Clone())
			assert.NoError(t, err)
			results <- next
		}()
	}
	wg.Wait()
	close(results)

	statuses := map[events.Status]int{}
	for next := range results {
		require.NotNil(t, next)
		statuses[next.Status()]++
	}

	assert.Equal(t, 1, statuses[events.StatusSuccess])
	assert.Equal(t, deliveries-1, statuses[events.StatusRollbackPending])
	assert.Equal(t, 3, f.available(t, "MOVIES"))

	items, err := f.orderInventories.FindByOrderIDAndTransactionID(context.Background(), "order-1", "1772366400000_tx")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/ordersaga/choreography/order-service/domain"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedEvent(orderID, transactionID string, at time.Time) *events.Event {
	return events.NewEvent(events.Order{
		ID:            orderID,
		TransactionID: transactionID,
		Products:      []events.OrderProducts{{Product: events.Product{Code: "BOOKS", UnitValue: 10}, Quantity: 1}},
	}, events.OrderSource, "Saga started!", at)
}

func TestMemoryEventRepository(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryEventRepository()

	first := startedEvent("order-1", "tx-1", base)
	second := startedEvent("order-2", "tx-2", base.Add(time.Minute))
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	final := first.Annotate(events.OrderSource, "Saga finished successfully!", base.Add(2*time.Minute))
	final.CreatedAt = base.Add(2 * time.Minute)
	require.NoError(t, repo.Save(ctx, final))

	t.Run("save replaces the version with the same id", func(t *testing.T) {
		found, err := repo.FindTopByOrderID(ctx, "order-1")
		require.NoError(t, err)
		assert.Len(t, found.History(), 2)

		found, err = repo.FindTopByTransactionID(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, found.ID)
	})

	t.Run("find all is most recent first", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "order-1", all[0].OrderID)
		assert.Equal(t, "order-2", all[1].OrderID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindTopByOrderID(ctx, "order-3")
		assert.ErrorIs(t, err, domain.ErrEventNotFound)

		_, err = repo.FindTopByTransactionID(ctx, "tx-3")
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("stored versions are isolated from callers", func(t *testing.T) {
		found, err := repo.FindTopByOrderID(ctx, "order-2")
		require.NoError(t, err)
		found.Payload.Products[0].Quantity = 99

		again, err := repo.FindTopByOrderID(ctx, "order-2")
		require.NoError(t, err)
		assert.Equal(t, 1, again.Payload.Products[0].Quantity)
	})
}

func TestMemoryOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrderRepository()

	order, err := domain.NewOrder([]events.OrderProducts{
		{Product: events.Product{Code: "MOVIES", UnitValue: 20}, Quantity: 1},
	}, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, found)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

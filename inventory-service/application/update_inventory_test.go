package application

import (
	"context"
	"testing"
	"time"

	"github.com/ordersaga/choreography/inventory-service/domain"
	"github.com/ordersaga/choreography/inventory-service/mocks"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func orderEvent(lines map[string]int) *events.Event {
	products := make([]events.OrderProducts, 0, len(lines))
	for code, quantity := range lines {
		products = append(products, events.OrderProducts{
			Product:  events.Product{Code: code, UnitValue: 10},
			Quantity: quantity,
		})
	}
	return events.NewEvent(events.Order{
		ID:            "order-1",
		TransactionID: "1772366400000_tx",
		Products:      products,
	}, events.OrderSource, "Saga started!", testNow)
}

func TestUpdateInventory_Apply(t *testing.T) {
	books := domain.NewInventory("BOOKS", 2)

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockInventoryRepository, *mocks.MockOrderInventoryRepository)
		expectedError string
		expectedKind  saga.ErrorKind
	}{
		{
			name: "inventory decremented",
			setupMocks: func(inventories *mocks.MockInventoryRepository, orderInventories *mocks.MockOrderInventoryRepository) {
				inventories.EXPECT().FindByProductCode(mock.Anything, "BOOKS").Return(books, nil).Once()
				orderInventories.EXPECT().SaveAll(mock.Anything, mock.MatchedBy(func(items []domain.OrderInventory) bool {
					return len(items) == 1 &&
						items[0].InventoryID == books.ID &&
						items[0].OldQuantity == 2 &&
						items[0].OrderQuantity == 1 &&
						items[0].NewQuantity == 1
				})).Return(nil).Once()
				inventories.EXPECT().Decrement(mock.Anything, mock.Anything).Return(nil).Once()
				orderInventories.EXPECT().MarkApplied(mock.Anything, "order-1", "1772366400000_tx").Return(nil).Once()
			},
		},
		{
			name: "unknown product",
			setupMocks: func(inventories *mocks.MockInventoryRepository, _ *mocks.MockOrderInventoryRepository) {
				inventories.EXPECT().FindByProductCode(mock.Anything, "BOOKS").Return(nil, domain.ErrInventoryNotFound).Once()
			},
			expectedError: "Inventory not found by informed product.",
			expectedKind:  saga.KindDomainRuleViolation,
		},
		{
			name: "out of stock after recording the lines",
			setupMocks: func(inventories *mocks.MockInventoryRepository, orderInventories *mocks.MockOrderInventoryRepository) {
				inventories.EXPECT().FindByProductCode(mock.Anything, "BOOKS").Return(books, nil).Once()
				orderInventories.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(nil).Once()
				inventories.EXPECT().Decrement(mock.Anything, mock.Anything).Return(domain.ErrOutOfStock).Once()
			},
			expectedError: "Product is out of stock.",
			expectedKind:  saga.KindDomainRuleViolation,
		},
		{
			name: "lines cannot be recorded",
			setupMocks: func(inventories *mocks.MockInventoryRepository, orderInventories *mocks.MockOrderInventoryRepository) {
				inventories.EXPECT().FindByProductCode(mock.Anything, "BOOKS").Return(books, nil).Once()
				orderInventories.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(errors.New("deadlock detected")).Once()
			},
			expectedError: "failed to save order inventory: deadlock detected",
		},
		{
			name: "decrement is given back when the lines cannot be marked",
			setupMocks: func(inventories *mocks.MockInventoryRepository, orderInventories *mocks.MockOrderInventoryRepository) {
				inventories.EXPECT().FindByProductCode(mock.Anything, "BOOKS").Return(books, nil).Once()
				orderInventories.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(nil).Once()
				inventories.EXPECT().Decrement(mock.Anything, mock.Anything).Return(nil).Once()
				orderInventories.EXPECT().MarkApplied(mock.Anything, "order-1", "1772366400000_tx").Return(errors.New("connection reset")).Once()
				inventories.EXPECT().Restore(mock.Anything, mock.MatchedBy(func(items []domain.OrderInventory) bool {
					return len(items) == 1 && items[0].InventoryID == books.ID && items[0].OrderQuantity == 1
				})).Return(nil).Once()
			},
			expectedError: "failed to mark order inventory applied: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inventories := mocks.NewMockInventoryRepository(t)
			orderInventories := mocks.NewMockOrderInventoryRepository(t)
			tt.setupMocks(inventories, orderInventories)

			err := NewUpdateInventory(inventories, orderInventories).Apply(context.Background(), orderEvent(map[string]int{"BOOKS": 1}))

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Equal(t, tt.expectedKind, saga.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateInventory_Compensate(t *testing.T) {
	applied := domain.NewOrderInventory("order-1", "1772366400000_tx", domain.NewInventory("BOOKS", 2), 1)
	applied.Applied = true
	recorded := []domain.OrderInventory{applied}
	notApplied := []domain.OrderInventory{
		domain.NewOrderInventory("order-1", "1772366400000_tx", domain.NewInventory("MOVIES", 5), 9),
	}

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockInventoryRepository, *mocks.MockOrderInventoryRepository)
		expectedError string
	}{
		{
			name: "recorded lines are restored",
			setupMocks: func(inventories *mocks.MockInventoryRepository, orderInventories *mocks.MockOrderInventoryRepository) {
				orderInventories.EXPECT().FindByOrderIDAndTransactionID(mock.Anything, "order-1", "1772366400000_tx").Return(recorded, nil).Once()
				inventories.EXPECT().Restore(mock.Anything, recorded).Return(nil).Once()
			},
		},
		{
			name: "nothing recorded",
			setupMocks: func(_ *mocks.MockInventoryRepository, orderInventories *mocks.MockOrderInventoryRepository) {
				orderInventories.EXPECT().FindByOrderIDAndTransactionID(mock.Anything, "order-1", "1772366400000_tx").Return(nil, nil).Once()
			},
		},
		{
			name: "lines never decremented are left alone",
			setupMocks: func(_ *mocks.MockInventoryRepository, orderInventories *mocks.MockOrderInventoryRepository) {
				orderInventories.EXPECT().FindByOrderIDAndTransactionID(mock.Anything, "order-1", "1772366400000_tx").Return(notApplied, nil).Once()
			},
		},
		{
			name: "restore fails",
			setupMocks: func(inventories *mocks.MockInventoryRepository, orderInventories *mocks.MockOrderInventoryRepository) {
				orderInventories.EXPECT().FindByOrderIDAndTransactionID(mock.Anything, "order-1", "1772366400000_tx").Return(recorded, nil).Once()
				inventories.EXPECT().Restore(mock.Anything, recorded).Return(errors.New("connection reset")).Once()
			},
			expectedError: "failed to restore inventory: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inventories := mocks.NewMockInventoryRepository(t)
			orderInventories := mocks.NewMockOrderInventoryRepository(t)
			tt.setupMocks(inventories, orderInventories)

			err := NewUpdateInventory(inventories, orderInventories).Compensate(context.Background(), orderEvent(map[string]int{"BOOKS": 1}))

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
